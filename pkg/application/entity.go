package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/job"
)

// Status is the lifecycle state of a job application. Only the five
// canonical values below are ever persisted.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusUnderReview Status = "UnderReview"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
	StatusAccepted    Status = "Accepted"
)

// Statuses returns the canonical status values in declaration order.
func Statuses() []Status {
	return []Status{StatusPending, StatusUnderReview, StatusShortlisted, StatusRejected, StatusAccepted}
}

// ParseStatus matches s against the canonical names case-insensitively,
// so "pending", "PENDING" and "Pending" all resolve to StatusPending.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", &InvalidStatusError{Value: s}
}

// InvalidStatusError reports a status name outside the enumeration,
// carrying the list of valid names for the caller.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	names := make([]string, 0, len(Statuses()))
	for _, st := range Statuses() {
		names = append(names, string(st))
	}
	return fmt.Sprintf("invalid application status %q, valid statuses are: %s", e.Value, strings.Join(names, ", "))
}

// Application links one candidate to one job post. JobPostID and
// CandidateID are immutable after creation.
type Application struct {
	ID              uuid.UUID
	JobPostID       uuid.UUID
	CandidateID     uuid.UUID
	CoverLetter     string
	AdditionalNotes string
	Status          Status
	AppliedAt       time.Time
}

// Details is an application with its related job post (company resolved)
// and candidate.
type Details struct {
	Application
	JobPost   job.Summary
	Candidate candidate.Candidate
}

var (
	ErrNotFound       = errors.New("application not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
)

// Repository is the persistence port for applications. Implementations
// must back the (candidate_id, job_post_id) pair with a uniqueness
// constraint; the use case pre-check alone does not serialize
// concurrent submissions.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetByIDWithDetails(ctx context.Context, id uuid.UUID) (Details, error)
	ExistsFor(ctx context.Context, candidateID, jobPostID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Application, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByJobPost(ctx context.Context, jobPostID uuid.UUID) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
}
