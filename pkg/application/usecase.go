package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/job"
)

// UseCase owns the application lifecycle: submission with dedup and
// referential checks, status transitions, withdrawal and listing.
type UseCase interface {
	Submit(ctx context.Context, in SubmitInput) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Details, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error)
	// Withdraw reports whether a record was removed; withdrawing an
	// already-withdrawn application is a no-op, not an error.
	Withdraw(ctx context.Context, id uuid.UUID) (bool, error)
	ListByJobPost(ctx context.Context, jobPostID uuid.UUID) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
}

type SubmitInput struct {
	CandidateID     uuid.UUID
	JobPostID       uuid.UUID
	CoverLetter     string
	AdditionalNotes string
}

type service struct {
	repo       Repository
	jobs       job.Repository
	candidates candidate.Repository
}

// NewService returns the default lifecycle implementation.
func NewService(repo Repository, jobs job.Repository, candidates candidate.Repository) UseCase {
	return &service{repo: repo, jobs: jobs, candidates: candidates}
}

func (s *service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	if _, err := s.jobs.GetByID(ctx, in.JobPostID); err != nil {
		return Application{}, err
	}
	if _, err := s.candidates.GetByID(ctx, in.CandidateID); err != nil {
		return Application{}, err
	}
	exists, err := s.repo.ExistsFor(ctx, in.CandidateID, in.JobPostID)
	if err != nil {
		return Application{}, err
	}
	if exists {
		return Application{}, ErrAlreadyApplied
	}

	a := Application{
		ID:              uuid.New(),
		JobPostID:       in.JobPostID,
		CandidateID:     in.CandidateID,
		CoverLetter:     strings.TrimSpace(in.CoverLetter),
		AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
		Status:          StatusPending,
		AppliedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Details, error) {
	return s.repo.GetByIDWithDetails(ctx, id)
}

// UpdateStatus accepts any canonical status regardless of the current
// one; no transition graph is enforced.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Application{}, err
	}
	parsed, err := ParseStatus(status)
	if err != nil {
		return Application{}, err
	}
	return s.repo.UpdateStatus(ctx, id, parsed)
}

func (s *service) Withdraw(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return deleted, nil
}

func (s *service) ListByJobPost(ctx context.Context, jobPostID uuid.UUID) ([]Application, error) {
	if _, err := s.jobs.GetByID(ctx, jobPostID); err != nil {
		return nil, err
	}
	return s.repo.ListByJobPost(ctx, jobPostID)
}

func (s *service) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error) {
	if _, err := s.candidates.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return s.repo.ListByCandidate(ctx, candidateID)
}
