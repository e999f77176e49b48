package company

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// UseCase is the company directory: lookup, listing and owner-scoped
// profile mutation. Registration happens through the auth use case.
type UseCase interface {
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateInput overwrites the mutable profile fields as a whole.
type UpdateInput struct {
	Name        string
	Description string
	Location    string
	Industry    string
	Phone       string
	Website     string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Company, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Company, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Company{}, err
	}
	c.Name = strings.TrimSpace(in.Name)
	c.Description = in.Description
	c.Location = in.Location
	c.Industry = in.Industry
	c.Phone = in.Phone
	c.Website = in.Website
	if err := s.repo.Update(ctx, c); err != nil {
		return Company{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
