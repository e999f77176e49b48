package candidate

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UseCase is the candidate directory: lookup and owner-scoped profile
// mutation. Registration happens through the auth use case.
type UseCase interface {
	GetByID(ctx context.Context, id uuid.UUID) (Candidate, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateInput overwrites the mutable profile fields as a whole.
type UpdateInput struct {
	FirstName       string
	LastName        string
	Phone           string
	ResumeURL       string
	LinkedInProfile string
	PortfolioURL    string
	Skills          []string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Candidate, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Candidate{}, err
	}
	c.FirstName = strings.TrimSpace(in.FirstName)
	c.LastName = strings.TrimSpace(in.LastName)
	c.Phone = in.Phone
	c.ResumeURL = in.ResumeURL
	c.LinkedInProfile = in.LinkedInProfile
	c.PortfolioURL = in.PortfolioURL
	c.Skills = in.Skills
	if err := s.repo.Update(ctx, c); err != nil {
		return Candidate{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
