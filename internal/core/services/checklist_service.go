package services

import (
	"context"
	"sync"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

type ChecklistService struct {
	store    domain.DocumentStore
	clock    domain.Clock
	notifier ReportNotifier

	// Serializes read-modify-write of the checklist records so handlers
	// invoked concurrently in one process cannot lose updates.
	mu sync.Mutex
}

func NewChecklistService(store domain.DocumentStore, clock domain.Clock, notifier ReportNotifier) *ChecklistService {
	return &ChecklistService{
		store:    store,
		clock:    clock,
		notifier: notifier,
	}
}

type ChecklistState struct {
	Tasks          []string `json:"tasks"`
	Answers        []bool   `json:"answers"`
	CompletedCount int      `json:"completedCount"`
	Progress       int      `json:"progress"`
}

type WindowReport struct {
	Days    int                  `json:"days"`
	Points  []domain.WindowPoint `json:"points"`
	Average int                  `json:"average"`
	Grade   domain.GradeInfo     `json:"grade"`
}

// State returns today's checklist, resetting the in-progress answer set
// first when the stored marker belongs to an earlier day. History entries
// are never touched by the reset.
func (s *ChecklistService) State(ctx context.Context) (ChecklistState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, err := s.bootstrapDay(ctx)
	if err != nil {
		return ChecklistState{}, err
	}
	return newChecklistState(answers), nil
}

// SetTask marks a single task done or not done and records today's
// completion percentage into the history.
func (s *ChecklistService) SetTask(ctx context.Context, index int, done bool) (ChecklistState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers, err := s.bootstrapDay(ctx)
	if err != nil {
		return ChecklistState{}, err
	}

	if index < 0 || index >= len(answers) {
		return ChecklistState{}, domain.ErrTaskIndexOutOfRange
	}
	answers[index] = done

	if err := s.persistDay(ctx, answers); err != nil {
		return ChecklistState{}, err
	}
	return newChecklistState(answers), nil
}

// ReplaceAnswers overwrites the whole answer set in one submission.
func (s *ChecklistService) ReplaceAnswers(ctx context.Context, answers []bool) (ChecklistState, error) {
	if len(answers) != len(domain.ChecklistTasks) {
		return ChecklistState{}, domain.ErrTaskCountMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.bootstrapDay(ctx); err != nil {
		return ChecklistState{}, err
	}
	if err := s.persistDay(ctx, answers); err != nil {
		return ChecklistState{}, err
	}
	return newChecklistState(answers), nil
}

// ResetDay forces a fresh answer set for today. Invoked by the midnight
// scheduler; the daily history is left intact.
func (s *ChecklistService) ResetDay(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resetAnswers(ctx)
}

// Window builds the trailing completion window ending today and grades its
// average with the checklist wording.
func (s *ChecklistService) Window(ctx context.Context, days int) (WindowReport, error) {
	history := loadHistory(ctx, s.store, domain.KeyChecklistHistory)

	points := domain.BuildWindow(history, days, s.clock.Now())
	average := domain.WindowAverage(points)

	return WindowReport{
		Days:    days,
		Points:  points,
		Average: average,
		Grade:   domain.Classify(average, domain.MetricChecklist),
	}, nil
}

func (s *ChecklistService) bootstrapDay(ctx context.Context) ([]bool, error) {
	if domain.ChecklistNeedsReset(loadResetDate(ctx, s.store), s.clock.Now()) {
		if err := s.resetAnswers(ctx); err != nil {
			return nil, err
		}
		return domain.EmptyChecklistAnswers(), nil
	}
	return loadChecklistAnswers(ctx, s.store), nil
}

func (s *ChecklistService) resetAnswers(ctx context.Context) error {
	if err := s.store.Save(ctx, domain.KeyChecklistTasks, domain.EmptyChecklistAnswers()); err != nil {
		return err
	}
	return s.store.Save(ctx, domain.KeyChecklistResetDate, s.clock.Now().Format(domain.ResetDateLayout))
}

func (s *ChecklistService) persistDay(ctx context.Context, answers []bool) error {
	if err := s.store.Save(ctx, domain.KeyChecklistTasks, answers); err != nil {
		return err
	}

	today := domain.DateKey(s.clock.Now())
	history := loadHistory(ctx, s.store, domain.KeyChecklistHistory)
	history = domain.RecordScore(history, today, domain.ChecklistScore(answers))

	if err := s.store.Save(ctx, domain.KeyChecklistHistory, history); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.Enqueue()
	}
	return nil
}

func newChecklistState(answers []bool) ChecklistState {
	done := 0
	for _, answered := range answers {
		if answered {
			done++
		}
	}

	return ChecklistState{
		Tasks:          domain.ChecklistTasks,
		Answers:        answers,
		CompletedCount: done,
		Progress:       domain.ChecklistScore(answers),
	}
}
