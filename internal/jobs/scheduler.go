// Package jobs runs the background schedule: the nightly checklist reset.
package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/smartsolv/mindmate-engine/internal/core/services"
)

type Scheduler struct {
	cron      *cron.Cron
	checklist *services.ChecklistService
}

func NewScheduler(checklist *services.ChecklistService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		checklist: checklist,
	}
}

// Start registers the midnight reset and launches the cron loop. The reset
// clears only the in-progress answer set; recorded history stays.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.AddFunc("0 0 * * *", func() {
		log.Info("[CRON] Daily checklist reset")
		if err := s.checklist.ResetDay(ctx); err != nil {
			log.WithError(err).Error("[CRON] Checklist reset failed")
		}
	})

	s.cron.Start()
	log.Info("Scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Scheduler stopped")
}
