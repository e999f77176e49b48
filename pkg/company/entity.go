package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Company is an employer account. Email is unique within the company
// set; the password hash never leaves this layer.
type Company struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Location     string
	Industry     string
	Email        string
	Phone        string
	Website      string
	PasswordHash string
	CreatedAt    time.Time
}

var (
	ErrNotFound   = errors.New("company not found")
	ErrEmailTaken = errors.New("company email already registered")
)

// Repository is the persistence port for companies. Delete cascades to
// the company's job posts and their applications.
type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
