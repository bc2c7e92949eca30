package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/smartsolv/mindmate-engine/internal/core/domain"
)

// SessionService keeps the student's profile record. There is no
// authentication: any complete profile is accepted, and the password is
// never checked against anything. It is hashed before it touches the
// store so it is not persisted as plaintext.
type SessionService struct {
	store domain.DocumentStore
	clock domain.Clock

	mu sync.Mutex
}

func NewSessionService(store domain.DocumentStore, clock domain.Clock) *SessionService {
	return &SessionService{
		store: store,
		clock: clock,
	}
}

type LoginInput struct {
	StudentName   string
	Age           int
	Email         string
	Password      string
	Qualification string
}

func (s *SessionService) Login(ctx context.Context, input LoginInput) (domain.Profile, error) {
	if err := domain.ValidateProfileInput(input.StudentName, input.Email, input.Password, input.Qualification, input.Age); err != nil {
		return domain.Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		SessionID:     uuid.NewString(),
		StudentName:   input.StudentName,
		Age:           input.Age,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Qualification: input.Qualification,
		LoggedInAt:    s.clock.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, domain.KeyStudentProfile, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *SessionService) Current(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile
	if err := s.store.Load(ctx, domain.KeyStudentProfile, &profile); err != nil {
		return domain.Profile{}, domain.ErrProfileSessionNotFound
	}
	if profile.SessionID == "" {
		return domain.Profile{}, domain.ErrProfileSessionNotFound
	}
	return profile, nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, domain.KeyStudentProfile)
}
