package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/job"
)

type fakeApplicationRepo struct {
	byID map[uuid.UUID]Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[uuid.UUID]Application)}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a Application) error {
	for _, existing := range r.byID {
		if existing.CandidateID == a.CandidateID && existing.JobPostID == a.JobPostID {
			return ErrAlreadyApplied
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (r *fakeApplicationRepo) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (Details, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return Details{}, err
	}
	return Details{Application: a}, nil
}

func (r *fakeApplicationRepo) ExistsFor(_ context.Context, candidateID, jobPostID uuid.UUID) (bool, error) {
	for _, a := range r.byID {
		if a.CandidateID == candidateID && a.JobPostID == jobPostID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) (Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return a, nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *fakeApplicationRepo) ListByJobPost(_ context.Context, jobPostID uuid.UUID) ([]Application, error) {
	out := []Application{}
	for _, a := range r.byID {
		if a.JobPostID == jobPostID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]Application, error) {
	out := []Application{}
	for _, a := range r.byID {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	byID map[uuid.UUID]job.JobPost
}

func newFakeJobRepo(posts ...job.JobPost) *fakeJobRepo {
	r := &fakeJobRepo{byID: make(map[uuid.UUID]job.JobPost)}
	for _, p := range posts {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, p job.JobPost) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.JobPost, error) {
	p, ok := r.byID[id]
	if !ok {
		return job.JobPost{}, job.ErrNotFound
	}
	return p, nil
}

func (r *fakeJobRepo) GetByIDWithCompany(ctx context.Context, id uuid.UUID) (job.Summary, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return job.Summary{}, err
	}
	return job.Summary{JobPost: p}, nil
}

func (r *fakeJobRepo) Search(_ context.Context, _ job.SearchFilter) ([]job.Summary, error) {
	return nil, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, _ uuid.UUID) ([]job.JobPost, error) {
	return nil, nil
}

func (r *fakeJobRepo) Update(_ context.Context, p job.JobPost) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeCandidateRepo struct {
	byID map[uuid.UUID]candidate.Candidate
}

func newFakeCandidateRepo(cands ...candidate.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{byID: make(map[uuid.UUID]candidate.Candidate)}
	for _, c := range cands {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Create(_ context.Context, c candidate.Candidate) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) GetByEmail(_ context.Context, email string) (candidate.Candidate, error) {
	for _, c := range r.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return candidate.Candidate{}, candidate.ErrNotFound
}

func (r *fakeCandidateRepo) Update(_ context.Context, c candidate.Candidate) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func newLifecycleFixture(t *testing.T) (UseCase, *fakeApplicationRepo, job.JobPost, candidate.Candidate) {
	t.Helper()
	post := job.JobPost{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Title:     "Backend Engineer",
		PostedAt:  time.Now().UTC(),
		IsActive:  true,
	}
	cand := candidate.Candidate{
		ID:        uuid.New(),
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     "dana@example.com",
	}
	repo := newFakeApplicationRepo()
	uc := NewService(repo, newFakeJobRepo(post), newFakeCandidateRepo(cand))
	return uc, repo, post, cand
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	a, err := uc.Submit(context.Background(), SubmitInput{
		CandidateID: cand.ID,
		JobPostID:   post.ID,
		CoverLetter: "  I would love to join.  ",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, cand.ID, a.CandidateID)
	assert.Equal(t, post.ID, a.JobPostID)
	assert.Equal(t, "I would love to join.", a.CoverLetter)
	assert.False(t, a.AppliedAt.IsZero())
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	in := SubmitInput{CandidateID: cand.ID, JobPostID: post.ID}
	_, err := uc.Submit(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Submit(context.Background(), in)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSubmitUnknownJobPost(t *testing.T) {
	uc, _, _, cand := newLifecycleFixture(t)

	_, err := uc.Submit(context.Background(), SubmitInput{
		CandidateID: cand.ID,
		JobPostID:   uuid.New(),
	})
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestSubmitUnknownCandidate(t *testing.T) {
	uc, _, post, _ := newLifecycleFixture(t)

	_, err := uc.Submit(context.Background(), SubmitInput{
		CandidateID: uuid.New(),
		JobPostID:   post.ID,
	})
	assert.ErrorIs(t, err, candidate.ErrNotFound)
}

func TestParseStatusCaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Pending", StatusPending},
		{"pending", StatusPending},
		{"PENDING", StatusPending},
		{"underreview", StatusUnderReview},
		{"UnderReview", StatusUnderReview},
		{"shortlisted", StatusShortlisted},
		{"REJECTED", StatusRejected},
		{"accepted", StatusAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusInvalidListsValidNames(t *testing.T) {
	_, err := ParseStatus("Archived")
	require.Error(t, err)

	var inv *InvalidStatusError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "Archived", inv.Value)

	msg := err.Error()
	for _, st := range Statuses() {
		assert.Contains(t, msg, string(st))
	}
}

func TestUpdateStatusPersistsCanonicalCase(t *testing.T) {
	uc, repo, post, cand := newLifecycleFixture(t)

	a, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), a.ID, "shortlisted")
	require.NoError(t, err)
	assert.Equal(t, StatusShortlisted, updated.Status)

	stored, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusShortlisted, stored.Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	a, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), a.ID, "OnHold")
	var inv *InvalidStatusError
	assert.ErrorAs(t, err, &inv)

	// Existence is reported before the status value is inspected.
	_, err = uc.UpdateStatus(context.Background(), uuid.New(), "OnHold")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusNoTransitionGraph(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	a, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	// Any canonical status is reachable from any other.
	for _, st := range []string{"Rejected", "Accepted", "Pending", "UnderReview"} {
		updated, err := uc.UpdateStatus(context.Background(), a.ID, st)
		require.NoError(t, err)
		assert.Equal(t, Status(st), updated.Status)
	}
}

func TestWithdrawIsIdempotent(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	a, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	removed, err := uc.Withdraw(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = uc.GetByID(context.Background(), a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = uc.Withdraw(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = uc.Withdraw(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestWithdrawFreesSlotForResubmission(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	in := SubmitInput{CandidateID: cand.ID, JobPostID: post.ID}
	a, err := uc.Submit(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Withdraw(context.Background(), a.ID)
	require.NoError(t, err)

	b, err := uc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, StatusPending, b.Status)
}

func TestListByJobPostRequiresExistingPost(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	_, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	apps, err := uc.ListByJobPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = uc.ListByJobPost(context.Background(), uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)
}

func TestListByCandidateRequiresExistingCandidate(t *testing.T) {
	uc, _, post, cand := newLifecycleFixture(t)

	_, err := uc.Submit(context.Background(), SubmitInput{CandidateID: cand.ID, JobPostID: post.ID})
	require.NoError(t, err)

	apps, err := uc.ListByCandidate(context.Background(), cand.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = uc.ListByCandidate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, candidate.ErrNotFound)
}
