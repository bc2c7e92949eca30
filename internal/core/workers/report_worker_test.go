package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsolv/mindmate-engine/internal/adapters/storage"
	"github.com/smartsolv/mindmate-engine/internal/core/domain"
	"github.com/smartsolv/mindmate-engine/internal/core/workers"
)

func TestReportWorker_RefreshesSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	store := storage.NewInMemoryStore()

	history := domain.DailyHistory{"2024-05-19": 90, "2024-05-20": 80}
	require.NoError(t, store.Save(ctx, domain.KeyChecklistHistory, history))
	require.NoError(t, store.Save(ctx, domain.KeyStressHistory, domain.DailyHistory{"2024-05-20": 70}))

	worker := workers.NewReportWorker(store, domain.FixedClock{Instant: now})
	worker.Start(ctx)

	worker.Enqueue()

	require.Eventually(t, func() bool {
		var report domain.MonthlyReport
		return store.Load(ctx, domain.KeyMonthlyReport, &report) == nil
	}, 2*time.Second, 10*time.Millisecond, "worker should cache the snapshot")

	var report domain.MonthlyReport
	require.NoError(t, store.Load(ctx, domain.KeyMonthlyReport, &report))
	assert.Equal(t, "2024-05", report.MonthKey)
	assert.Equal(t, 85, report.ChecklistMonthlyAverage)
	assert.Equal(t, 70, report.StressMonthlyAverage)
	assert.Equal(t, 78, report.CombinedMonthlyAverage)
	assert.Equal(t, 80, report.EligibleCoins)
}

func TestReportWorker_EnqueueNeverBlocks(t *testing.T) {
	store := storage.NewInMemoryStore()
	worker := workers.NewReportWorker(store, domain.FixedClock{Instant: time.Now()})

	// The worker is intentionally not started: a full queue must drop
	// jobs instead of blocking the request path.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			worker.Enqueue()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
