package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdesk/backend/pkg/access"
	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/company"
)

// UseCase describes registration and login for both account kinds.
// Each side keeps its own email namespace; a company and a candidate
// may share an address.
type UseCase interface {
	RegisterCompany(ctx context.Context, in RegisterCompanyInput) (Result, error)
	RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

type RegisterCompanyInput struct {
	Name        string
	Email       string
	Password    string
	Description string
	Industry    string
	Location    string
	Phone       string
	Website     string
}

type RegisterCandidateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	ResumeURL string
	Skills    []string
}

// Result carries the issued token together with the subject triple
// embedded in it.
type Result struct {
	SubjectID uuid.UUID
	Email     string
	Role      access.Role
	Token     string
}

var ErrInvalidCredentials = errors.New("invalid email or password")

type service struct {
	companies  company.Repository
	candidates candidate.Repository
	tokens     TokenGenerator
}

// NewService returns the default implementation of UseCase.
func NewService(companies company.Repository, candidates candidate.Repository, tokens TokenGenerator) UseCase {
	return &service{companies: companies, candidates: candidates, tokens: tokens}
}

func (s *service) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (Result, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Result{}, ErrInvalidCredentials
	}

	// Fail fast on a taken address; the unique column backs this check.
	if _, err := s.companies.GetByEmail(ctx, email); err == nil {
		return Result{}, company.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	c := company.Company{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Location:     in.Location,
		Industry:     in.Industry,
		Email:        email,
		Phone:        in.Phone,
		Website:      in.Website,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return Result{}, err
	}
	return s.issue(ctx, c.ID, c.Email, access.RoleCompany)
}

func (s *service) RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (Result, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Result{}, ErrInvalidCredentials
	}

	if _, err := s.candidates.GetByEmail(ctx, email); err == nil {
		return Result{}, candidate.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, err
	}

	c := candidate.Candidate{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		ResumeURL:    in.ResumeURL,
		Skills:       in.Skills,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.candidates.Create(ctx, c); err != nil {
		return Result{}, err
	}
	return s.issue(ctx, c.ID, c.Email, access.RoleCandidate)
}

// Login checks the company set first, then candidates. A failed match
// in either set yields the same opaque credentials error.
func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	email = normalizeEmail(email)

	if c, err := s.companies.GetByEmail(ctx, email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil {
			return s.issue(ctx, c.ID, c.Email, access.RoleCompany)
		}
	}
	if c, err := s.candidates.GetByEmail(ctx, email); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil {
			return s.issue(ctx, c.ID, c.Email, access.RoleCandidate)
		}
	}
	return Result{}, ErrInvalidCredentials
}

func (s *service) issue(ctx context.Context, id uuid.UUID, email string, role access.Role) (Result, error) {
	token, err := s.tokens.Generate(ctx, id, email, role)
	if err != nil {
		return Result{}, err
	}
	return Result{SubjectID: id, Email: email, Role: role, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
