package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/application"
	"github.com/jobdesk/backend/pkg/auth"
	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/company"
	"github.com/jobdesk/backend/pkg/job"
)

// domainError translates use-case errors into transport status codes.
// A forbidden decision carries no resource detail.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, application.ErrNotFound),
		errors.Is(err, job.ErrNotFound),
		errors.Is(err, company.ErrNotFound),
		errors.Is(err, candidate.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrAlreadyApplied),
		errors.Is(err, company.ErrEmailTaken),
		errors.Is(err, candidate.ErrEmailTaken):
		return presenter.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, access.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}

	var invalidStatus *application.InvalidStatusError
	if errors.As(err, &invalidStatus) {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	var validation job.ErrValidation
	if errors.As(err, &validation) {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}
