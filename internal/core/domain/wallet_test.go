package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

func TestRewardCoins(t *testing.T) {
	tests := []struct {
		checklistAvg int
		stressAvg    int
		want         int
	}{
		{80, 80, 120},
		{100, 80, 120},
		{70, 70, 80},
		{75, 72, 80},
		{79, 80, 80},
		{60, 60, 50},
		{69, 60, 50},
		{59, 60, 0},
		{0, 0, 0},
		// per-metric gating: the weaker score picks the tier, and one
		// score below every threshold pays nothing
		{85, 60, 50},
		{60, 85, 50},
		{100, 59, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("checklist %d stress %d", tt.checklistAvg, tt.stressAvg), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.RewardCoins(tt.checklistAvg, tt.stressAvg))
		})
	}
}

func TestWallet_Claim(t *testing.T) {
	rewardedOn := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	components := domain.RewardComponents{ChecklistAvg: 85, StressAvg: 82, CombinedAvg: 84}

	t.Run("Success: Credits balance and prepends transaction", func(t *testing.T) {
		wallet := domain.NewWallet()

		updated, err := wallet.Claim("2024-05", 80, components, rewardedOn)

		require.NoError(t, err)
		assert.Equal(t, 80, updated.Balance)
		assert.Equal(t, "2024-05", updated.LastRewardMonth)
		require.Len(t, updated.Transactions, 1)

		tx := updated.Transactions[0]
		assert.Equal(t, "2024-05", tx.Month)
		assert.Equal(t, 80, tx.Coins)
		assert.Equal(t, 85, tx.ChecklistMonthlyAverage)
		assert.Equal(t, 82, tx.StressMonthlyAverage)
		assert.Equal(t, 84, tx.CombinedMonthlyAverage)
		assert.Equal(t, rewardedOn, tx.RewardedOn)

		assert.Zero(t, wallet.Balance, "input wallet must not be mutated")
	})

	t.Run("No-op: Same month never pays twice", func(t *testing.T) {
		wallet := domain.NewWallet()

		first, err := wallet.Claim("2024-05", 80, components, rewardedOn)
		require.NoError(t, err)
		assert.Equal(t, 80, first.Balance)

		second, err := first.Claim("2024-05", 80, components, rewardedOn)
		assert.ErrorIs(t, err, domain.ErrRewardAlreadyClaimed)
		assert.Equal(t, 80, second.Balance)
		assert.Len(t, second.Transactions, 1)
	})

	t.Run("No-op: Zero coins is not eligible", func(t *testing.T) {
		wallet := domain.NewWallet()

		updated, err := wallet.Claim("2024-05", 0, components, rewardedOn)

		assert.ErrorIs(t, err, domain.ErrRewardNotEligible)
		assert.Zero(t, updated.Balance)
		assert.Empty(t, updated.LastRewardMonth, "an ineligible month stays claimable")
	})

	t.Run("Success: New month after a claimed one", func(t *testing.T) {
		wallet := domain.NewWallet()

		may, err := wallet.Claim("2024-05", 50, components, rewardedOn)
		require.NoError(t, err)

		june, err := may.Claim("2024-06", 120, components, rewardedOn.AddDate(0, 1, 0))
		require.NoError(t, err)

		assert.Equal(t, 170, june.Balance)
		require.Len(t, june.Transactions, 2)
		assert.Equal(t, "2024-06", june.Transactions[0].Month, "most recent first")
		assert.Equal(t, "2024-05", june.Transactions[1].Month)
	})

	t.Run("Invariant: History capped at six most recent transactions", func(t *testing.T) {
		wallet := domain.NewWallet()

		for month := 1; month <= 8; month++ {
			key := fmt.Sprintf("2024-%02d", month)
			next, err := wallet.Claim(key, 50, components, rewardedOn)
			require.NoError(t, err)
			wallet = next
		}

		assert.Equal(t, 400, wallet.Balance, "balance keeps the full total")
		require.Len(t, wallet.Transactions, domain.MaxWalletTransactions)
		assert.Equal(t, "2024-08", wallet.Transactions[0].Month)
		assert.Equal(t, "2024-03", wallet.Transactions[5].Month)
	})
}
