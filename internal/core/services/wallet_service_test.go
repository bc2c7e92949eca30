package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsolv/mindmate-engine/internal/adapters/storage"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

func seedMonth(t *testing.T, store *storage.InMemoryStore, key string, month time.Time, days, score int) {
	t.Helper()

	history := domain.DailyHistory{}
	// Merge with whatever a previous seed left so multi-month setups work.
	_ = store.Load(context.Background(), key, &history)
	for day := 1; day <= days; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		history[domain.DateKey(date)] = score
	}
	require.NoError(t, store.Save(context.Background(), key, history))
}

func TestWalletService_Report(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	t.Run("Success: Averages from the current month only", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		seedMonth(t, store, domain.KeyChecklistHistory, now, 10, 85)
		seedMonth(t, store, domain.KeyStressHistory, now, 10, 75)
		// Entries from another month must not bleed into the report.
		seedMonth(t, store, domain.KeyChecklistHistory, now.AddDate(0, -1, 0), 10, 85)

		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})
		report, err := svc.Report(ctx)

		require.NoError(t, err)
		assert.Equal(t, "2024-05", report.MonthKey)
		assert.Equal(t, 85, report.ChecklistMonthlyAverage)
		assert.Equal(t, 75, report.StressMonthlyAverage)
		assert.Equal(t, 80, report.CombinedMonthlyAverage)
		assert.Equal(t, 80, report.EligibleCoins)
		assert.False(t, report.Claimed)
	})

	t.Run("Edge Case: Untracked month reports zero", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})

		report, err := svc.Report(ctx)

		require.NoError(t, err)
		assert.Zero(t, report.CombinedMonthlyAverage)
		assert.Zero(t, report.EligibleCoins)
	})
}

func TestWalletService_Claim(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	t.Run("Success: Eligible month pays out once", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		seedMonth(t, store, domain.KeyChecklistHistory, now, 10, 90)
		seedMonth(t, store, domain.KeyStressHistory, now, 10, 85)

		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})
		wallet, report, err := svc.Claim(ctx)

		require.NoError(t, err)
		assert.Equal(t, 120, wallet.Balance)
		assert.Equal(t, "2024-05", wallet.LastRewardMonth)
		require.Len(t, wallet.Transactions, 1)
		assert.Equal(t, 120, wallet.Transactions[0].Coins)
		assert.True(t, report.Claimed)

		var stored domain.Wallet
		require.NoError(t, store.Load(ctx, domain.KeyStudentWallet, &stored))
		assert.Equal(t, 120, stored.Balance)
	})

	t.Run("Error: Second claim in the same month leaves the wallet untouched", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		seedMonth(t, store, domain.KeyChecklistHistory, now, 10, 90)
		seedMonth(t, store, domain.KeyStressHistory, now, 10, 85)

		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})
		_, _, err := svc.Claim(ctx)
		require.NoError(t, err)

		wallet, report, err := svc.Claim(ctx)

		assert.ErrorIs(t, err, domain.ErrRewardAlreadyClaimed)
		assert.Equal(t, 120, wallet.Balance)
		assert.Len(t, wallet.Transactions, 1)
		assert.True(t, report.Claimed)
	})

	t.Run("Error: Zero-coin month is not eligible", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		seedMonth(t, store, domain.KeyChecklistHistory, now, 10, 90)
		seedMonth(t, store, domain.KeyStressHistory, now, 10, 40)

		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})
		wallet, _, err := svc.Claim(ctx)

		assert.ErrorIs(t, err, domain.ErrRewardNotEligible)
		assert.Zero(t, wallet.Balance)
		assert.Empty(t, wallet.Transactions)
	})

	t.Run("Success: Next month claims again", func(t *testing.T) {
		store := storage.NewInMemoryStore()
		seedMonth(t, store, domain.KeyChecklistHistory, now, 10, 90)
		seedMonth(t, store, domain.KeyStressHistory, now, 10, 85)

		svc := services.NewWalletService(store, domain.FixedClock{Instant: now})
		_, _, err := svc.Claim(ctx)
		require.NoError(t, err)

		june := now.AddDate(0, 1, 0)
		seedMonth(t, store, domain.KeyChecklistHistory, june, 10, 75)
		seedMonth(t, store, domain.KeyStressHistory, june, 10, 72)

		juneSvc := services.NewWalletService(store, domain.FixedClock{Instant: june})
		wallet, _, err := juneSvc.Claim(ctx)

		require.NoError(t, err)
		assert.Equal(t, 200, wallet.Balance)
		require.Len(t, wallet.Transactions, 2)
		assert.Equal(t, "2024-06", wallet.Transactions[0].Month, "newest transaction first")
	})
}
