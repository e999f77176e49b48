package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("Company")
	require.True(t, ok)
	assert.Equal(t, RoleCompany, r)

	r, ok = ParseRole("Candidate")
	require.True(t, ok)
	assert.Equal(t, RoleCandidate, r)

	_, ok = ParseRole("company")
	assert.False(t, ok)
	_, ok = ParseRole("admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestViewApplication(t *testing.T) {
	owner := uuid.New()
	applicant := uuid.New()
	other := uuid.New()
	ref := ApplicationRef{CandidateID: applicant, CompanyID: owner}

	tests := []struct {
		name    string
		subject Subject
		allowed bool
	}{
		{"submitting candidate", Subject{ID: applicant, Role: RoleCandidate}, true},
		{"owning company", Subject{ID: owner, Role: RoleCompany}, true},
		{"other candidate", Subject{ID: other, Role: RoleCandidate}, false},
		{"other company", Subject{ID: other, Role: RoleCompany}, false},
		{"candidate id matching company id", Subject{ID: owner, Role: RoleCandidate}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ViewApplication(tt.subject, ref)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}

func TestWithdrawApplication(t *testing.T) {
	owner := uuid.New()
	applicant := uuid.New()
	ref := ApplicationRef{CandidateID: applicant, CompanyID: owner}

	assert.NoError(t, WithdrawApplication(Subject{ID: applicant, Role: RoleCandidate}, ref))
	// The owning company may view but never withdraw.
	assert.ErrorIs(t, WithdrawApplication(Subject{ID: owner, Role: RoleCompany}, ref), ErrForbidden)
	assert.ErrorIs(t, WithdrawApplication(Subject{ID: uuid.New(), Role: RoleCandidate}, ref), ErrForbidden)
}

func TestUpdateApplicationStatus(t *testing.T) {
	owner := uuid.New()
	applicant := uuid.New()
	ref := ApplicationRef{CandidateID: applicant, CompanyID: owner}

	assert.NoError(t, UpdateApplicationStatus(Subject{ID: owner, Role: RoleCompany}, ref))
	// The candidate may view but never change status, not even on their own application.
	assert.ErrorIs(t, UpdateApplicationStatus(Subject{ID: applicant, Role: RoleCandidate}, ref), ErrForbidden)
	assert.ErrorIs(t, UpdateApplicationStatus(Subject{ID: uuid.New(), Role: RoleCompany}, ref), ErrForbidden)
}

func TestMutateJobPost(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, MutateJobPost(Subject{ID: owner, Role: RoleCompany}, owner))
	assert.ErrorIs(t, MutateJobPost(Subject{ID: uuid.New(), Role: RoleCompany}, owner), ErrForbidden)
	assert.ErrorIs(t, MutateJobPost(Subject{ID: owner, Role: RoleCandidate}, owner), ErrForbidden)
}

func TestMutateOwnProfileOnly(t *testing.T) {
	id := uuid.New()

	assert.NoError(t, MutateCompany(Subject{ID: id, Role: RoleCompany}, id))
	assert.ErrorIs(t, MutateCompany(Subject{ID: uuid.New(), Role: RoleCompany}, id), ErrForbidden)
	assert.ErrorIs(t, MutateCompany(Subject{ID: id, Role: RoleCandidate}, id), ErrForbidden)

	assert.NoError(t, MutateCandidate(Subject{ID: id, Role: RoleCandidate}, id))
	assert.ErrorIs(t, MutateCandidate(Subject{ID: uuid.New(), Role: RoleCandidate}, id), ErrForbidden)
	assert.ErrorIs(t, MutateCandidate(Subject{ID: id, Role: RoleCompany}, id), ErrForbidden)
}
