package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// PostgresStore keeps every record in a single documents table:
// (key TEXT PRIMARY KEY, doc JSONB, updated_at TIMESTAMPTZ).
type PostgresStore struct {
	db    *sqlx.DB
	table string
}

func NewPostgresStore(db *sqlx.DB, table string) *PostgresStore {
	if table == "" {
		table = "documents"
	}
	return &PostgresStore{db: db, table: table}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, pq.QuoteIdentifier(s.table))

	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, key string, out any) error {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE key = $1`, pq.QuoteIdentifier(s.table))

	var raw []byte
	if err := s.db.GetContext(ctx, &raw, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrDocumentNotFound
		}
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *PostgresStore) Save(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = now()`, pq.QuoteIdentifier(s.table))

	_, err = s.db.ExecContext(ctx, query, key, raw)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, pq.QuoteIdentifier(s.table))

	_, err := s.db.ExecContext(ctx, query, key)
	return err
}
