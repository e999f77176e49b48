package candidate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Candidate is a job seeker account. Email is unique within the
// candidate set, independently of company emails.
type Candidate struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	PasswordHash    string
	ResumeURL       string
	LinkedInProfile string
	PortfolioURL    string
	Skills          []string
	CreatedAt       time.Time
}

var (
	ErrNotFound   = errors.New("candidate not found")
	ErrEmailTaken = errors.New("candidate email already registered")
)

// Repository is the persistence port for candidates. Delete cascades
// to the candidate's applications.
type Repository interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	GetByEmail(ctx context.Context, email string) (Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
