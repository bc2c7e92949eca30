package services

import (
	"context"
	"sync"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

type WalletService struct {
	store domain.DocumentStore
	clock domain.Clock

	mu sync.Mutex
}

func NewWalletService(store domain.DocumentStore, clock domain.Clock) *WalletService {
	return &WalletService{
		store: store,
		clock: clock,
	}
}

func (s *WalletService) Wallet(ctx context.Context) (domain.Wallet, error) {
	return loadWallet(ctx, s.store), nil
}

// Report derives the current month's reward view from both score
// histories and the wallet claim state.
func (s *WalletService) Report(ctx context.Context) (domain.MonthlyReport, error) {
	now := s.clock.Now()

	checklist := loadHistory(ctx, s.store, domain.KeyChecklistHistory)
	stress := loadHistory(ctx, s.store, domain.KeyStressHistory)
	wallet := loadWallet(ctx, s.store)

	return domain.BuildMonthlyReport(checklist, stress, wallet, domain.MonthKey(now), now), nil
}

// Claim pays out the current month's reward. Double claims and zero-coin
// months come back as the ledger sentinels; callers surface those as
// "already claimed" / "not eligible", not as failures.
func (s *WalletService) Claim(ctx context.Context) (domain.Wallet, domain.MonthlyReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.Report(ctx)
	if err != nil {
		return domain.Wallet{}, domain.MonthlyReport{}, err
	}

	wallet := loadWallet(ctx, s.store)
	components := domain.RewardComponents{
		ChecklistAvg: report.ChecklistMonthlyAverage,
		StressAvg:    report.StressMonthlyAverage,
		CombinedAvg:  report.CombinedMonthlyAverage,
	}

	updated, err := wallet.Claim(report.MonthKey, report.EligibleCoins, components, s.clock.Now())
	if err != nil {
		return wallet, report, err
	}

	if err := s.store.Save(ctx, domain.KeyStudentWallet, updated); err != nil {
		return wallet, report, err
	}

	report.Claimed = true
	return updated, report, nil
}
