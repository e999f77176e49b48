package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobdesk/backend/pkg/access"
)

var errNoSubject = errors.New("could not resolve authenticated subject")

// subjectFromCtx rebuilds the access subject from the locals the JWT
// middleware set.
func subjectFromCtx(c *fiber.Ctx) (access.Subject, error) {
	idStr, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return access.Subject{}, errNoSubject
	}
	roleStr, _ := c.Locals("role").(string)
	role, ok := access.ParseRole(roleStr)
	if !ok {
		return access.Subject{}, errNoSubject
	}
	return access.Subject{ID: id, Role: role}, nil
}
