package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/application"
	"github.com/jobdesk/backend/pkg/candidate"
)

type CandidateHandler struct {
	uc           candidate.UseCase
	applications application.UseCase
}

func NewCandidateHandler(uc candidate.UseCase, applications application.UseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc, applications: applications}
}

// GetByID returns the candidate's own profile.
// @Summary Get candidate by ID
// @Tags    candidates
// @Produce json
// @Param   id path string true "candidate ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} candidateDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	ca, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if err := access.MutateCandidate(sub, id); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toCandidateDTO(ca))
}

type updateCandidateRequest struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Phone           string   `json:"phone"`
	ResumeURL       string   `json:"resumeUrl"`
	LinkedInProfile string   `json:"linkedInProfile"`
	PortfolioURL    string   `json:"portfolioUrl"`
	Skills          []string `json:"skills"`
}

// Update overwrites the candidate's own profile fields.
// @Summary Update candidate
// @Tags    candidates
// @Accept  json
// @Produce json
// @Param   id path string true "candidate ID (UUID)"
// @Param   input body updateCandidateRequest true "profile payload"
// @Security BearerAuth
// @Success 200 {object} candidateDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if _, err := h.uc.GetByID(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	if err := access.MutateCandidate(sub, id); err != nil {
		return domainError(c, err)
	}

	ca, err := h.uc.Update(c.Context(), id, candidate.UpdateInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		ResumeURL:       req.ResumeURL,
		LinkedInProfile: req.LinkedInProfile,
		PortfolioURL:    req.PortfolioURL,
		Skills:          req.Skills,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toCandidateDTO(ca))
}

// Delete removes the candidate account; its applications cascade.
// @Summary Delete candidate
// @Tags    candidates
// @Produce json
// @Param   id path string true "candidate ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	if _, err := h.uc.GetByID(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	if err := access.MutateCandidate(sub, id); err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListApplications returns the candidate's own applications.
// @Summary List a candidate's applications
// @Tags    candidates
// @Produce json
// @Param   id path string true "candidate ID (UUID)"
// @Security BearerAuth
// @Success 200 {array} applicationDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/applications [get]
func (h *CandidateHandler) ListApplications(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	if _, err := h.uc.GetByID(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	if err := access.MutateCandidate(sub, id); err != nil {
		return domainError(c, err)
	}

	apps, err := h.applications.ListByCandidate(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toApplicationDTOs(apps))
}
