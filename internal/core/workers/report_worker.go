package workers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// ReportWorker recomputes the monthly report snapshot in the background
// after every history write, so the dashboard can read one cached document
// instead of re-aggregating both histories on each request.
type ReportWorker struct {
	store domain.DocumentStore
	clock domain.Clock
	jobs  chan struct{}
}

func NewReportWorker(store domain.DocumentStore, clock domain.Clock) *ReportWorker {
	return &ReportWorker{
		store: store,
		clock: clock,
		jobs:  make(chan struct{}, 100),
	}
}

func (w *ReportWorker) Start(ctx context.Context) {
	go func() {
		log.Info("Report worker started in background...")
		for {
			select {
			case <-w.jobs:
				w.refresh(ctx)
			case <-ctx.Done():
				log.Info("Report worker shutting down...")
				return
			}
		}
	}()
}

func (w *ReportWorker) Enqueue() {
	select {
	case w.jobs <- struct{}{}:
	default:
		log.Warn("Report worker queue full, dropping refresh job")
	}
}

func (w *ReportWorker) refresh(ctx context.Context) {
	now := w.clock.Now()

	var checklist, stress domain.DailyHistory
	if err := w.store.Load(ctx, domain.KeyChecklistHistory, &checklist); err != nil {
		checklist = domain.DailyHistory{}
	}
	if err := w.store.Load(ctx, domain.KeyStressHistory, &stress); err != nil {
		stress = domain.DailyHistory{}
	}

	var wallet domain.Wallet
	if err := w.store.Load(ctx, domain.KeyStudentWallet, &wallet); err != nil {
		wallet = domain.NewWallet()
	}

	report := domain.BuildMonthlyReport(checklist, stress, wallet, domain.MonthKey(now), now)

	if err := w.store.Save(ctx, domain.KeyMonthlyReport, report); err != nil {
		log.WithError(err).Error("Report worker failed to cache monthly report")
		return
	}

	log.WithFields(log.Fields{
		"month":     report.MonthKey,
		"checklist": report.ChecklistMonthlyAverage,
		"stress":    report.StressMonthlyAverage,
		"coins":     report.EligibleCoins,
	}).Debug("Monthly report snapshot refreshed")
}
