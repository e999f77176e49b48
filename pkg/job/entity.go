package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JobPost belongs to exactly one company; CompanyID is immutable after
// creation. Salary bounds are optional independently of each other.
type JobPost struct {
	ID               uuid.UUID
	CompanyID        uuid.UUID
	Title            string
	Description      string
	Location         string
	JobType          string
	SalaryRangeStart *float64
	SalaryRangeEnd   *float64
	PostedAt         time.Time
	ExpiresAt        time.Time
	IsActive         bool
}

// Summary is a job post with its company name resolved.
type Summary struct {
	JobPost
	CompanyName string
}

// SearchFilter holds the optional, conjunctive listing filters. Empty
// strings and nil pointers mean "no constraint".
type SearchFilter struct {
	Keyword     string
	Title       string
	Location    string
	CompanyName string
	MinSalary   *float64
	MaxSalary   *float64
	FromDate    *time.Time
	ToDate      *time.Time
	IsActive    *bool
}

var ErrNotFound = errors.New("job post not found")

// Repository is the persistence port for job posts.
type Repository interface {
	Create(ctx context.Context, p JobPost) error
	GetByID(ctx context.Context, id uuid.UUID) (JobPost, error)
	GetByIDWithCompany(ctx context.Context, id uuid.UUID) (Summary, error)
	Search(ctx context.Context, f SearchFilter) ([]Summary, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]JobPost, error)
	Update(ctx context.Context, p JobPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
