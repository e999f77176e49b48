package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobdesk/backend/pkg/access"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, subjectID uuid.UUID, email string, role access.Role) (string, error)
}
