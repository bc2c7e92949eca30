package domain

import (
	"errors"
	"time"
)

var (
	ErrRewardAlreadyClaimed = errors.New("monthly reward already claimed")
	ErrRewardNotEligible    = errors.New("not eligible for a monthly reward")
)

// MaxWalletTransactions bounds the retained reward history,
// most-recent-first.
const MaxWalletTransactions = 6

// Reward tiers. Both monthly averages must independently clear a tier's
// threshold; the averages are never combined for gating.
const (
	rewardTierGold   = 120
	rewardTierSilver = 80
	rewardTierBronze = 50
)

type Wallet struct {
	Balance         int           `json:"balance"`
	LastRewardMonth string        `json:"lastRewardMonth,omitempty"`
	Transactions    []Transaction `json:"transactions"`
}

// Transaction is immutable once appended to a wallet.
type Transaction struct {
	Month                   string    `json:"month"`
	Coins                   int       `json:"coins"`
	ChecklistMonthlyAverage int       `json:"checklistMonthlyAverage"`
	StressMonthlyAverage    int       `json:"stressMonthlyAverage"`
	CombinedMonthlyAverage  int       `json:"combinedMonthlyAverage"`
	RewardedOn              time.Time `json:"rewardedOn"`
}

func NewWallet() Wallet {
	return Wallet{Transactions: []Transaction{}}
}

// RewardCoins maps two independent monthly averages to a coin amount,
// highest tier first.
func RewardCoins(checklistAvg, stressAvg int) int {
	switch {
	case checklistAvg >= 80 && stressAvg >= 80:
		return rewardTierGold
	case checklistAvg >= 70 && stressAvg >= 70:
		return rewardTierSilver
	case checklistAvg >= 60 && stressAvg >= 60:
		return rewardTierBronze
	default:
		return 0
	}
}

// RewardComponents carries the monthly averages recorded on a claim.
type RewardComponents struct {
	ChecklistAvg int
	StressAvg    int
	CombinedAvg  int
}

// Claimed reports whether the reward for monthKey has already been paid out.
func (w Wallet) Claimed(monthKey string) bool {
	return w.LastRewardMonth == monthKey
}

// Claim returns a new wallet with the monthly reward applied. Claiming the
// same month twice, or claiming zero coins, leaves the wallet untouched and
// returns one of the ledger sentinels; callers treat both as an expected
// no-op, not a failure.
func (w Wallet) Claim(monthKey string, coins int, components RewardComponents, rewardedOn time.Time) (Wallet, error) {
	if w.Claimed(monthKey) {
		return w, ErrRewardAlreadyClaimed
	}
	if coins <= 0 {
		return w, ErrRewardNotEligible
	}

	tx := Transaction{
		Month:                   monthKey,
		Coins:                   coins,
		ChecklistMonthlyAverage: components.ChecklistAvg,
		StressMonthlyAverage:    components.StressAvg,
		CombinedMonthlyAverage:  components.CombinedAvg,
		RewardedOn:              rewardedOn,
	}

	transactions := make([]Transaction, 0, len(w.Transactions)+1)
	transactions = append(transactions, tx)
	transactions = append(transactions, w.Transactions...)
	if len(transactions) > MaxWalletTransactions {
		transactions = transactions[:MaxWalletTransactions]
	}

	return Wallet{
		Balance:         w.Balance + coins,
		LastRewardMonth: monthKey,
		Transactions:    transactions,
	}, nil
}
