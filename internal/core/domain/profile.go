package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrProfileIncomplete      = errors.New("all profile fields are required")
	ErrInvalidQualification   = errors.New("unknown education qualification")
	ErrProfileSessionNotFound = errors.New("no active session")
)

// Qualifications selectable on the login form.
var Qualifications = []string{
	"SCHOOLING",
	"INTERMEDIATE",
	"UNDERGRADUATION",
	"POSTGRADUATION",
}

// Profile is the student record captured at login. There is no credential
// verification anywhere; the password is retained only as a bcrypt hash so
// it never sits in the store as plaintext.
type Profile struct {
	SessionID     string    `json:"sessionId"`
	StudentName   string    `json:"studentName"`
	Age           int       `json:"age"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash"`
	Qualification string    `json:"qualification"`
	LoggedInAt    time.Time `json:"loggedInAt"`
}

// ValidateProfileInput enforces required-field presence, the only
// validation the login form performs.
func ValidateProfileInput(name, email, password, qualification string, age int) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" ||
		strings.TrimSpace(password) == "" || strings.TrimSpace(qualification) == "" || age <= 0 {
		return ErrProfileIncomplete
	}

	for _, q := range Qualifications {
		if q == qualification {
			return nil
		}
	}
	return ErrInvalidQualification
}
