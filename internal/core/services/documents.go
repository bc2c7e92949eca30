package services

import (
	"context"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// ReportNotifier is satisfied by the report worker. Services notify it
// after every history write so the cached monthly report stays fresh.
type ReportNotifier interface {
	Enqueue()
}

// The loaders below never fail: a missing or corrupt stored document is
// recovered by substituting the empty default for that record.

func loadHistory(ctx context.Context, store domain.DocumentStore, key string) domain.DailyHistory {
	var history domain.DailyHistory
	if err := store.Load(ctx, key, &history); err != nil || history == nil {
		return domain.DailyHistory{}
	}
	return history
}

func loadWallet(ctx context.Context, store domain.DocumentStore) domain.Wallet {
	var wallet domain.Wallet
	if err := store.Load(ctx, domain.KeyStudentWallet, &wallet); err != nil {
		return domain.NewWallet()
	}
	if wallet.Balance < 0 {
		return domain.NewWallet()
	}
	if wallet.Transactions == nil {
		wallet.Transactions = []domain.Transaction{}
	}
	return wallet
}

func loadChecklistAnswers(ctx context.Context, store domain.DocumentStore) []bool {
	var answers []bool
	if err := store.Load(ctx, domain.KeyChecklistTasks, &answers); err != nil {
		return domain.EmptyChecklistAnswers()
	}
	return domain.NormalizeChecklistAnswers(answers)
}

func loadResetDate(ctx context.Context, store domain.DocumentStore) string {
	var marker string
	if err := store.Load(ctx, domain.KeyChecklistResetDate, &marker); err != nil {
		return ""
	}
	return marker
}
