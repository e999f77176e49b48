package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdesk/backend/pkg/application"
)

// ApplicationRepository implements application.Repository backed by
// PostgreSQL (pgx). The UNIQUE (candidate_id, job_post_id) constraint
// closes the submit race that the use-case pre-check alone cannot.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_applications (
	id UUID PRIMARY KEY,
	job_post_id UUID NOT NULL REFERENCES job_posts(id) ON DELETE CASCADE,
	candidate_id UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	cover_letter TEXT NOT NULL,
	additional_notes TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL,
	UNIQUE (candidate_id, job_post_id)
);
CREATE INDEX IF NOT EXISTS idx_job_applications_post ON job_applications(job_post_id);
`)
	return err
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_applications (id, job_post_id, candidate_id, cover_letter, additional_notes, status, applied_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, a.ID, a.JobPostID, a.CandidateID, a.CoverLetter, a.AdditionalNotes, string(a.Status), a.AppliedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return application.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, job_post_id, candidate_id, cover_letter, additional_notes, status, applied_at
FROM job_applications WHERE id = $1
`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (application.Details, error) {
	row := r.pool.QueryRow(ctx, `
SELECT a.id, a.job_post_id, a.candidate_id, a.cover_letter, a.additional_notes, a.status, a.applied_at,
	j.id, j.company_id, j.title, j.description, j.location, j.job_type, j.salary_range_start, j.salary_range_end, j.posted_at, j.expires_at, j.is_active, co.name,
	ca.id, ca.first_name, ca.last_name, ca.email, ca.phone, ca.resume_url, ca.linkedin_profile, ca.portfolio_url, ca.skills, ca.created_at
FROM job_applications a
JOIN job_posts j ON j.id = a.job_post_id
JOIN companies co ON co.id = j.company_id
JOIN candidates ca ON ca.id = a.candidate_id
WHERE a.id = $1
`, id)

	var d application.Details
	var status string
	var applied, posted, expires, candCreated time.Time
	err := row.Scan(
		&d.ID, &d.JobPostID, &d.CandidateID, &d.CoverLetter, &d.AdditionalNotes, &status, &applied,
		&d.JobPost.ID, &d.JobPost.CompanyID, &d.JobPost.Title, &d.JobPost.Description, &d.JobPost.Location, &d.JobPost.JobType,
		&d.JobPost.SalaryRangeStart, &d.JobPost.SalaryRangeEnd, &posted, &expires, &d.JobPost.IsActive, &d.JobPost.CompanyName,
		&d.Candidate.ID, &d.Candidate.FirstName, &d.Candidate.LastName, &d.Candidate.Email, &d.Candidate.Phone,
		&d.Candidate.ResumeURL, &d.Candidate.LinkedInProfile, &d.Candidate.PortfolioURL, &d.Candidate.Skills, &candCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Details{}, application.ErrNotFound
		}
		return application.Details{}, err
	}
	d.Status = application.Status(status)
	d.AppliedAt = applied.UTC()
	d.JobPost.PostedAt = posted.UTC()
	d.JobPost.ExpiresAt = expires.UTC()
	d.Candidate.CreatedAt = candCreated.UTC()
	return d, nil
}

func (r *ApplicationRepository) ExistsFor(ctx context.Context, candidateID, jobPostID uuid.UUID) (bool, error) {
	row := r.pool.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM job_applications WHERE candidate_id = $1 AND job_post_id = $2)
`, candidateID, jobPostID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE job_applications SET status = $2 WHERE id = $1
RETURNING id, job_post_id, candidate_id, cover_letter, additional_notes, status, applied_at
`, id, string(status))
	return scanApplication(row)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ApplicationRepository) ListByJobPost(ctx context.Context, jobPostID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `
SELECT id, job_post_id, candidate_id, cover_letter, additional_notes, status, applied_at
FROM job_applications WHERE job_post_id = $1
ORDER BY applied_at, id
`, jobPostID)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `
SELECT id, job_post_id, candidate_id, cover_letter, additional_notes, status, applied_at
FROM job_applications WHERE candidate_id = $1
ORDER BY applied_at, id
`, candidateID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg any) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	var status string
	var applied time.Time
	if err := row.Scan(&a.ID, &a.JobPostID, &a.CandidateID, &a.CoverLetter, &a.AdditionalNotes, &status, &applied); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.AppliedAt = applied.UTC()
	return a, nil
}
