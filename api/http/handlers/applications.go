package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/application"
)

type ApplicationHandler struct {
	uc application.UseCase
}

func NewApplicationHandler(uc application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationRequest struct {
	JobPostID       string `json:"jobPostId"`
	CoverLetter     string `json:"coverLetter"`
	AdditionalNotes string `json:"additionalNotes"`
}

// Submit creates an application for the authenticated candidate.
// @Summary Submit application
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   input body submitApplicationRequest true "application payload"
// @Security BearerAuth
// @Success 201 {object} applicationDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	if sub.Role != access.RoleCandidate {
		return presenter.Error(c, http.StatusForbidden, "forbidden")
	}
	var req submitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	jobPostID, err := uuid.Parse(req.JobPostID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid jobPostId")
	}

	a, err := h.uc.Submit(c.Context(), application.SubmitInput{
		CandidateID:     sub.ID,
		JobPostID:       jobPostID,
		CoverLetter:     req.CoverLetter,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toApplicationDTO(a))
}

// GetByID returns an application with its related records; visible to
// the submitting candidate and to the company owning the job post.
// @Summary Get application by ID
// @Tags    applications
// @Produce json
// @Param   id path string true "application ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} applicationDetailsDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	d, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	ref := access.ApplicationRef{CandidateID: d.CandidateID, CompanyID: d.JobPost.CompanyID}
	if err := access.ViewApplication(sub, ref); err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toApplicationDetailsDTO(d))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets a new lifecycle status; company-owner only. The
// status name is matched case-insensitively.
// @Summary Update application status
// @Tags    applications
// @Accept  json
// @Produce json
// @Param   id path string true "application ID (UUID)"
// @Param   input body updateStatusRequest true "new status"
// @Security BearerAuth
// @Success 200 {object} applicationDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	d, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	ref := access.ApplicationRef{CandidateID: d.CandidateID, CompanyID: d.JobPost.CompanyID}
	if err := access.UpdateApplicationStatus(sub, ref); err != nil {
		return domainError(c, err)
	}

	a, err := h.uc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toApplicationDTO(a))
}

// Withdraw removes the candidate's own application. Withdrawing twice
// is a no-op.
// @Summary Withdraw application
// @Tags    applications
// @Produce json
// @Param   id path string true "application ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	d, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	ref := access.ApplicationRef{CandidateID: d.CandidateID, CompanyID: d.JobPost.CompanyID}
	if err := access.WithdrawApplication(sub, ref); err != nil {
		return domainError(c, err)
	}

	if _, err := h.uc.Withdraw(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
