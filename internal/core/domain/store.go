package domain

import (
	"context"
	"errors"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
)

// Record keys of the persisted JSON documents. Each key maps to exactly one
// top-level record; there is no cross-document reference other than date and
// month key strings.
const (
	KeyChecklistTasks     = "checklistTasks"
	KeyChecklistResetDate = "checklistResetDate"
	KeyChecklistHistory   = "checklistHistory"
	KeyStressHistory      = "stressAnalysisHistory"
	KeyStudentWallet      = "studentWallet"
	KeyStudentProfile     = "studentProfile"
	KeyMonthlyReport      = "monthlyReportCache"
)

// DocumentStore is the key-value persistence boundary. Values are single
// JSON-serializable documents.
type DocumentStore interface {
	// Load reads the document stored under key into out.
	// Returns ErrDocumentNotFound when the key has never been written.
	Load(ctx context.Context, key string, out any) error

	// Save overwrites the document stored under key.
	Save(ctx context.Context, key string, doc any) error

	// Delete removes the document stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error
}
