package job

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdesk/backend/pkg/company"
)

// UseCase covers the job post directory: creation, public lookup and
// search, owner updates and deletion.
type UseCase interface {
	Create(ctx context.Context, companyID uuid.UUID, in CreateInput) (JobPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (Summary, error)
	Search(ctx context.Context, f SearchFilter) ([]Summary, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]JobPost, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (JobPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateInput struct {
	Title            string
	Description      string
	Location         string
	JobType          string
	SalaryRangeStart *float64
	SalaryRangeEnd   *float64
	ExpiresAt        time.Time
}

// UpdateInput overwrites the mutable fields of a post as a whole;
// partial nulling of individual fields is not supported.
type UpdateInput struct {
	Title            string
	Description      string
	Location         string
	JobType          string
	SalaryRangeStart *float64
	SalaryRangeEnd   *float64
	ExpiresAt        time.Time
	IsActive         bool
}

// ErrValidation reports malformed job post input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo      Repository
	companies company.Repository
}

func NewService(repo Repository, companies company.Repository) UseCase {
	return &service{repo: repo, companies: companies}
}

func validateSalaryRange(start, end *float64) error {
	if start != nil && end != nil && *start > *end {
		return ErrValidation("salary range start must not exceed end")
	}
	return nil
}

func (s *service) Create(ctx context.Context, companyID uuid.UUID, in CreateInput) (JobPost, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return JobPost{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return JobPost{}, ErrValidation("title is required")
	}
	if err := validateSalaryRange(in.SalaryRangeStart, in.SalaryRangeEnd); err != nil {
		return JobPost{}, err
	}

	p := JobPost{
		ID:               uuid.New(),
		CompanyID:        companyID,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		Location:         in.Location,
		JobType:          in.JobType,
		SalaryRangeStart: in.SalaryRangeStart,
		SalaryRangeEnd:   in.SalaryRangeEnd,
		PostedAt:         time.Now().UTC(),
		ExpiresAt:        in.ExpiresAt,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return JobPost{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Summary, error) {
	return s.repo.GetByIDWithCompany(ctx, id)
}

func (s *service) Search(ctx context.Context, f SearchFilter) ([]Summary, error) {
	return s.repo.Search(ctx, f)
}

func (s *service) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]JobPost, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (JobPost, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return JobPost{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return JobPost{}, ErrValidation("title is required")
	}
	if err := validateSalaryRange(in.SalaryRangeStart, in.SalaryRangeEnd); err != nil {
		return JobPost{}, err
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Description = in.Description
	p.Location = in.Location
	p.JobType = in.JobType
	p.SalaryRangeStart = in.SalaryRangeStart
	p.SalaryRangeEnd = in.SalaryRangeEnd
	p.ExpiresAt = in.ExpiresAt
	p.IsActive = in.IsActive
	if err := s.repo.Update(ctx, p); err != nil {
		return JobPost{}, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
