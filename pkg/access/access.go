// Package access decides whether an authenticated subject may act on a
// resource. Decisions are pure ownership comparisons over the two
// roles; there are no permission tables. Existence is always checked
// by the caller before ownership, so a missing resource surfaces as
// not-found rather than forbidden.
package access

import (
	"errors"

	"github.com/google/uuid"
)

// Role is the single role carried by a subject.
type Role string

const (
	RoleCompany   Role = "Company"
	RoleCandidate Role = "Candidate"
)

// ParseRole validates a role claim coming off a token.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCompany, RoleCandidate:
		return Role(s), true
	}
	return "", false
}

// Subject is the authenticated caller.
type Subject struct {
	ID   uuid.UUID
	Role Role
}

// ErrForbidden carries no detail about the denied resource.
var ErrForbidden = errors.New("forbidden")

// ApplicationRef names the two ownership fields of an application: the
// candidate that submitted it and the company owning its job post.
type ApplicationRef struct {
	CandidateID uuid.UUID
	CompanyID   uuid.UUID
}

// ViewApplication allows the submitting candidate and the company
// owning the job post.
func ViewApplication(s Subject, a ApplicationRef) error {
	switch s.Role {
	case RoleCandidate:
		if s.ID == a.CandidateID {
			return nil
		}
	case RoleCompany:
		if s.ID == a.CompanyID {
			return nil
		}
	}
	return ErrForbidden
}

// WithdrawApplication allows only the submitting candidate.
func WithdrawApplication(s Subject, a ApplicationRef) error {
	if s.Role == RoleCandidate && s.ID == a.CandidateID {
		return nil
	}
	return ErrForbidden
}

// UpdateApplicationStatus allows only the company owning the job post.
func UpdateApplicationStatus(s Subject, a ApplicationRef) error {
	if s.Role == RoleCompany && s.ID == a.CompanyID {
		return nil
	}
	return ErrForbidden
}

// MutateJobPost covers create, update, delete and reading a post's
// applications; public listing needs no check at all.
func MutateJobPost(s Subject, ownerCompanyID uuid.UUID) error {
	if s.Role == RoleCompany && s.ID == ownerCompanyID {
		return nil
	}
	return ErrForbidden
}

// MutateCompany allows a company to change only its own profile.
func MutateCompany(s Subject, companyID uuid.UUID) error {
	if s.Role == RoleCompany && s.ID == companyID {
		return nil
	}
	return ErrForbidden
}

// MutateCandidate allows a candidate to change only its own profile.
func MutateCandidate(s Subject, candidateID uuid.UUID) error {
	if s.Role == RoleCandidate && s.ID == candidateID {
		return nil
	}
	return ErrForbidden
}
