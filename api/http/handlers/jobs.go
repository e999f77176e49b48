package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/application"
	"github.com/jobdesk/backend/pkg/job"
)

type JobHandler struct {
	uc           job.UseCase
	applications application.UseCase
}

func NewJobHandler(uc job.UseCase, applications application.UseCase) *JobHandler {
	return &JobHandler{uc: uc, applications: applications}
}

type jobPostRequest struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	JobType          string    `json:"jobType"`
	SalaryRangeStart *float64  `json:"salaryRangeStart"`
	SalaryRangeEnd   *float64  `json:"salaryRangeEnd"`
	ExpiresAt        time.Time `json:"expiresAt"`
	IsActive         *bool     `json:"isActive"`
}

// Search lists job posts matching the optional filters.
// @Summary Search job posts
// @Tags    jobs
// @Produce json
// @Param   keyword  query string  false "substring matched against title, description and location"
// @Param   title    query string  false "title substring"
// @Param   location query string  false "location substring"
// @Param   company  query string  false "company name substring"
// @Param   minSalary query number false "lower salary bound"
// @Param   maxSalary query number false "upper salary bound"
// @Param   fromDate query string  false "posted after (RFC 3339)"
// @Param   toDate   query string  false "posted before (RFC 3339)"
// @Param   active   query boolean false "active flag"
// @Success 200 {array} jobPostDTO
// @Router  /jobs [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	f := job.SearchFilter{
		Keyword:     c.Query("keyword"),
		Title:       c.Query("title"),
		Location:    c.Query("location"),
		CompanyName: c.Query("company"),
	}
	if v := strings.TrimSpace(c.Query("minSalary")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid minSalary")
		}
		f.MinSalary = &n
	}
	if v := strings.TrimSpace(c.Query("maxSalary")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid maxSalary")
		}
		f.MaxSalary = &n
	}
	if v := strings.TrimSpace(c.Query("fromDate")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid fromDate")
		}
		f.FromDate = &t
	}
	if v := strings.TrimSpace(c.Query("toDate")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid toDate")
		}
		f.ToDate = &t
	}
	if v := strings.TrimSpace(c.Query("active")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid active flag")
		}
		f.IsActive = &b
	}

	posts, err := h.uc.Search(c.Context(), f)
	if err != nil {
		return domainError(c, err)
	}
	res := make([]jobPostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, toJobSummaryDTO(p))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID returns a single job post; public, no ownership check.
// @Summary Get job post by ID
// @Tags    jobs
// @Produce json
// @Param   id path string true "job post ID (UUID)"
// @Success 200 {object} jobPostDTO
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toJobSummaryDTO(p))
}

// Create posts a new job for the authenticated company.
// @Summary Create job post
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body jobPostRequest true "job post payload"
// @Security BearerAuth
// @Success 201 {object} jobPostDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	if sub.Role != access.RoleCompany {
		return presenter.Error(c, http.StatusForbidden, "forbidden")
	}
	var req jobPostRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	p, err := h.uc.Create(c.Context(), sub.ID, job.CreateInput{
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		JobType:          req.JobType,
		SalaryRangeStart: req.SalaryRangeStart,
		SalaryRangeEnd:   req.SalaryRangeEnd,
		ExpiresAt:        req.ExpiresAt,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toJobPostDTO(p))
}

// Update overwrites the mutable fields of an owned job post.
// @Summary Update job post
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   id path string true "job post ID (UUID)"
// @Param   input body jobPostRequest true "job post payload"
// @Security BearerAuth
// @Success 200 {object} jobPostDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req jobPostRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	// Existence first, then ownership.
	existing, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if err := access.MutateJobPost(sub, existing.CompanyID); err != nil {
		return domainError(c, err)
	}

	active := existing.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p, err := h.uc.Update(c.Context(), id, job.UpdateInput{
		Title:            req.Title,
		Description:      req.Description,
		Location:         req.Location,
		JobType:          req.JobType,
		SalaryRangeStart: req.SalaryRangeStart,
		SalaryRangeEnd:   req.SalaryRangeEnd,
		ExpiresAt:        req.ExpiresAt,
		IsActive:         active,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toJobPostDTO(p))
}

// Delete removes an owned job post; its applications cascade.
// @Summary Delete job post
// @Tags    jobs
// @Produce json
// @Param   id path string true "job post ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	existing, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if err := access.MutateJobPost(sub, existing.CompanyID); err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListApplications returns the applications submitted to an owned post.
// @Summary List applications for a job post
// @Tags    jobs
// @Produce json
// @Param   id path string true "job post ID (UUID)"
// @Security BearerAuth
// @Success 200 {array} applicationDTO
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/applications [get]
func (h *JobHandler) ListApplications(c *fiber.Ctx) error {
	sub, err := subjectFromCtx(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}

	existing, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	if err := access.MutateJobPost(sub, existing.CompanyID); err != nil {
		return domainError(c, err)
	}

	apps, err := h.applications.ListByJobPost(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toApplicationDTOs(apps))
}
