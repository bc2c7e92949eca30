package services

import (
	"context"
	"sync"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

type StressService struct {
	store    domain.DocumentStore
	clock    domain.Clock
	notifier ReportNotifier

	mu sync.Mutex
}

func NewStressService(store domain.DocumentStore, clock domain.Clock, notifier ReportNotifier) *StressService {
	return &StressService{
		store:    store,
		clock:    clock,
		notifier: notifier,
	}
}

type StressAnalysis struct {
	Result             domain.StressResult `json:"result"`
	YesCount           int                 `json:"yesCount"`
	StressControlScore int                 `json:"stressControlScore"`
}

func (s *StressService) Questions() []string {
	return domain.StressQuestions
}

// Analyze scores a full questionnaire submission and records today's
// stress-control score. Partial submissions are rejected before anything
// is written.
func (s *StressService) Analyze(ctx context.Context, answers []string) (StressAnalysis, error) {
	yesCount, err := domain.StressYesCount(answers)
	if err != nil {
		return StressAnalysis{}, err
	}
	score := domain.StressControlScore(yesCount)

	s.mu.Lock()
	defer s.mu.Unlock()

	history := loadHistory(ctx, s.store, domain.KeyStressHistory)
	history = domain.RecordScore(history, domain.DateKey(s.clock.Now()), score)

	if err := s.store.Save(ctx, domain.KeyStressHistory, history); err != nil {
		return StressAnalysis{}, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue()
	}

	return StressAnalysis{
		Result:             domain.ClassifyStressLevel(yesCount),
		YesCount:           yesCount,
		StressControlScore: score,
	}, nil
}

// Window builds the trailing stress-control window ending today, graded
// with the stress wording.
func (s *StressService) Window(ctx context.Context, days int) (WindowReport, error) {
	history := loadHistory(ctx, s.store, domain.KeyStressHistory)

	points := domain.BuildWindow(history, days, s.clock.Now())
	average := domain.WindowAverage(points)

	return WindowReport{
		Days:    days,
		Points:  points,
		Average: average,
		Grade:   domain.Classify(average, domain.MetricStress),
	}, nil
}
