package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdesk/backend/pkg/company"
)

type fakeJobRepo struct {
	byID map[uuid.UUID]JobPost
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]JobPost)}
}

func (r *fakeJobRepo) Create(_ context.Context, p JobPost) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (JobPost, error) {
	p, ok := r.byID[id]
	if !ok {
		return JobPost{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeJobRepo) GetByIDWithCompany(ctx context.Context, id uuid.UUID) (Summary, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return Summary{}, err
	}
	return Summary{JobPost: p, CompanyName: "Acme"}, nil
}

func (r *fakeJobRepo) Search(_ context.Context, _ SearchFilter) ([]Summary, error) {
	out := []Summary{}
	for _, p := range r.byID {
		out = append(out, Summary{JobPost: p, CompanyName: "Acme"})
	}
	return out, nil
}

func (r *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]JobPost, error) {
	out := []JobPost{}
	for _, p := range r.byID {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Update(_ context.Context, p JobPost) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeCompanyRepo struct {
	byID map[uuid.UUID]company.Company
}

func newFakeCompanyRepo(cs ...company.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{byID: make(map[uuid.UUID]company.Company)}
	for _, c := range cs {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetByEmail(_ context.Context, _ string) (company.Company, error) {
	return company.Company{}, company.ErrNotFound
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]company.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c company.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func f64(v float64) *float64 { return &v }

func newJobFixture() (UseCase, *fakeJobRepo, company.Company) {
	owner := company.Company{ID: uuid.New(), Name: "Acme", Email: "jobs@acme.example"}
	repo := newFakeJobRepo()
	return NewService(repo, newFakeCompanyRepo(owner)), repo, owner
}

func TestCreateJobPost(t *testing.T) {
	uc, _, owner := newJobFixture()

	p, err := uc.Create(context.Background(), owner.ID, CreateInput{
		Title:            "  Backend Engineer ",
		Location:         "Berlin",
		JobType:          "FullTime",
		SalaryRangeStart: f64(60000),
		SalaryRangeEnd:   f64(90000),
		ExpiresAt:        time.Now().UTC().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, p.CompanyID)
	assert.Equal(t, "Backend Engineer", p.Title)
	assert.True(t, p.IsActive)
	assert.False(t, p.PostedAt.IsZero())
}

func TestCreateRequiresExistingCompany(t *testing.T) {
	uc, _, _ := newJobFixture()

	_, err := uc.Create(context.Background(), uuid.New(), CreateInput{Title: "Backend Engineer"})
	assert.ErrorIs(t, err, company.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	uc, _, owner := newJobFixture()

	_, err := uc.Create(context.Background(), owner.ID, CreateInput{Title: "   "})
	var v ErrValidation
	assert.ErrorAs(t, err, &v)

	_, err = uc.Create(context.Background(), owner.ID, CreateInput{
		Title:            "Backend Engineer",
		SalaryRangeStart: f64(90000),
		SalaryRangeEnd:   f64(60000),
	})
	assert.ErrorAs(t, err, &v)

	// A single open-ended bound is fine.
	_, err = uc.Create(context.Background(), owner.ID, CreateInput{
		Title:            "Backend Engineer",
		SalaryRangeStart: f64(60000),
	})
	assert.NoError(t, err)
}

func TestUpdateOverwritesMutableFields(t *testing.T) {
	uc, repo, owner := newJobFixture()

	p, err := uc.Create(context.Background(), owner.ID, CreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), p.ID, UpdateInput{
		Title:    "Senior Backend Engineer",
		Location: "Remote",
		IsActive: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, "Remote", updated.Location)
	assert.False(t, updated.IsActive)
	// Ownership and posting time survive updates.
	assert.Equal(t, owner.ID, updated.CompanyID)
	assert.Equal(t, p.PostedAt, updated.PostedAt)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateUnknownPost(t *testing.T) {
	uc, _, _ := newJobFixture()

	_, err := uc.Update(context.Background(), uuid.New(), UpdateInput{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByCompanyRequiresExistingCompany(t *testing.T) {
	uc, _, owner := newJobFixture()

	_, err := uc.Create(context.Background(), owner.ID, CreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	posts, err := uc.ListByCompany(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	_, err = uc.ListByCompany(context.Background(), uuid.New())
	assert.ErrorIs(t, err, company.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, _, owner := newJobFixture()

	p, err := uc.Create(context.Background(), owner.ID, CreateInput{Title: "Backend Engineer"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), p.ID))
	_, err = uc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
