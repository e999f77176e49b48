package handlers

import (
	"time"

	"github.com/jobdesk/backend/pkg/application"
	"github.com/jobdesk/backend/pkg/candidate"
	"github.com/jobdesk/backend/pkg/company"
	"github.com/jobdesk/backend/pkg/job"
)

// Caller-facing projections of the domain entities. Credential fields
// never appear here.

type companyDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Industry    string    `json:"industry"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCompanyDTO(c company.Company) companyDTO {
	return companyDTO{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Industry:    c.Industry,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		CreatedAt:   c.CreatedAt,
	}
}

type candidateDTO struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ResumeURL       string    `json:"resumeUrl"`
	LinkedInProfile string    `json:"linkedInProfile,omitempty"`
	PortfolioURL    string    `json:"portfolioUrl,omitempty"`
	Skills          []string  `json:"skills"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toCandidateDTO(c candidate.Candidate) candidateDTO {
	return candidateDTO{
		ID:              c.ID.String(),
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		Phone:           c.Phone,
		ResumeURL:       c.ResumeURL,
		LinkedInProfile: c.LinkedInProfile,
		PortfolioURL:    c.PortfolioURL,
		Skills:          c.Skills,
		CreatedAt:       c.CreatedAt,
	}
}

type jobPostDTO struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"companyId"`
	CompanyName      string    `json:"companyName,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	JobType          string    `json:"jobType"`
	SalaryRangeStart *float64  `json:"salaryRangeStart,omitempty"`
	SalaryRangeEnd   *float64  `json:"salaryRangeEnd,omitempty"`
	PostedAt         time.Time `json:"postedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	IsActive         bool      `json:"isActive"`
}

func toJobPostDTO(p job.JobPost) jobPostDTO {
	return jobPostDTO{
		ID:               p.ID.String(),
		CompanyID:        p.CompanyID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Location:         p.Location,
		JobType:          p.JobType,
		SalaryRangeStart: p.SalaryRangeStart,
		SalaryRangeEnd:   p.SalaryRangeEnd,
		PostedAt:         p.PostedAt,
		ExpiresAt:        p.ExpiresAt,
		IsActive:         p.IsActive,
	}
}

func toJobSummaryDTO(s job.Summary) jobPostDTO {
	dto := toJobPostDTO(s.JobPost)
	dto.CompanyName = s.CompanyName
	return dto
}

type applicationDTO struct {
	ID              string    `json:"id"`
	JobPostID       string    `json:"jobPostId"`
	CandidateID     string    `json:"candidateId"`
	CoverLetter     string    `json:"coverLetter"`
	AdditionalNotes string    `json:"additionalNotes,omitempty"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"appliedAt"`
}

func toApplicationDTO(a application.Application) applicationDTO {
	return applicationDTO{
		ID:              a.ID.String(),
		JobPostID:       a.JobPostID.String(),
		CandidateID:     a.CandidateID.String(),
		CoverLetter:     a.CoverLetter,
		AdditionalNotes: a.AdditionalNotes,
		Status:          string(a.Status),
		AppliedAt:       a.AppliedAt,
	}
}

func toApplicationDTOs(apps []application.Application) []applicationDTO {
	res := make([]applicationDTO, 0, len(apps))
	for _, a := range apps {
		res = append(res, toApplicationDTO(a))
	}
	return res
}

type applicationDetailsDTO struct {
	applicationDTO
	JobPost   jobPostDTO   `json:"jobPost"`
	Candidate candidateDTO `json:"candidate"`
}

func toApplicationDetailsDTO(d application.Details) applicationDetailsDTO {
	return applicationDetailsDTO{
		applicationDTO: toApplicationDTO(d.Application),
		JobPost:        toJobSummaryDTO(d.JobPost),
		Candidate:      toCandidateDTO(d.Candidate),
	}
}
