package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jobdesk/backend/api/http/presenter"
	"github.com/jobdesk/backend/pkg/auth"
)

type AuthHandler struct {
	useCase auth.UseCase
}

func NewAuthHandler(useCase auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerCompanyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
}

type authResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// RegisterCompany handles employer registration.
// @Summary Register company
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerCompanyRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register/company [post]
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	var req registerCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return presenter.Error(c, http.StatusBadRequest, "name, email and password are required")
	}

	result, err := h.useCase.RegisterCompany(c.Context(), auth.RegisterCompanyInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Industry:    req.Industry,
		Location:    req.Location,
		Phone:       req.Phone,
		Website:     req.Website,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toAuthResponse(result))
}

type registerCandidateRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Phone     string   `json:"phone"`
	ResumeURL string   `json:"resumeUrl"`
	Skills    []string `json:"skills"`
}

// RegisterCandidate handles job seeker registration.
// @Summary Register candidate
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerCandidateRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register/candidate [post]
func (h *AuthHandler) RegisterCandidate(c *fiber.Ctx) error {
	var req registerCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.RegisterCandidate(c.Context(), auth.RegisterCandidateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		ResumeURL: req.ResumeURL,
		Skills:    req.Skills,
	})
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toAuthResponse(result))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles login for both account kinds.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return domainError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(r auth.Result) authResponse {
	return authResponse{
		ID:    r.SubjectID.String(),
		Email: r.Email,
		Role:  string(r.Role),
		Token: r.Token,
	}
}
