package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/company"
	"github.com/jobdesk/backend/pkg/job"
)

type CompanyHandler struct {
	uc   company.UseCase
	jobs job.UseCase
}

func NewCompanyHandler(uc company.UseCase, jobs job.UseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, jobs: jobs}
}

// List returns the public company directory.
// @Summary List companies
// @Tags    companies
// @Produce json
// @Success 200 {array} companyDTO
// @Router  /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	companies, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	res := make([]companyDTO, 0, len(companies))
	for _, co := range companies {
		res = append(res, toCompanyDTO(co))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID returns a company's public profile.
// @Summary Get company by ID
// @Tags    companies
// @Produce json
// @Param   id path string true "company ID (UUID)"
// @Success 200 {object} companyDTO
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	co, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toCompanyDTO(co))
}

// ListJobs returns the public job posts of one company.
// @Summary List a company's job posts
// @Tags    companies
// @Produce json
// @Param   id path string true "company ID (UUID)"
// @Success 200 {array} jobPostDTO
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id}/jobs [get]
func (h *CompanyHandler) ListJobs(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	posts, err := h.jobs.ListByCompany(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	res := make([]jobPostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toJobPostDTO(p))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

type updateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
}

// Update overwrites the company's own profile fields.
// @Summary Update company
// @Tags    companies
// @Accept  json
// @Produce json
// @Param   id path string true "company ID (UUID)"
// @Param   input body updateCompanyRequest true "profile payload"
// @Security BearerAuth
// @Success 200 {object} companyDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	// Existence first, then ownership.
	if _, err := h.uc.GetByID(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	if err := access.MutateCompany(sub, id); err != nil {
		return domainError(c, err)
	}

	co, err := h.uc.Update(c.Context(), id, company.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Industry:    req.Industry,
		Phone:       req.Phone,
		Website:     req.Website,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toCompanyDTO(co))
}

// Delete removes the company account; its job posts and their
// applications cascade.
// @Summary Delete company
// @Tags    companies
// @Produce json
// @Param   id path string true "company ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
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
	if err := access.MutateCompany(sub, id); err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
