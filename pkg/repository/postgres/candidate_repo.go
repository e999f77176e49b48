package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdesk/backend/pkg/candidate"
)

// CandidateRepository implements candidate.Repository backed by PostgreSQL (pgx).
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) (*CandidateRepository, error) {
	r := &CandidateRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CandidateRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	resume_url TEXT NOT NULL DEFAULT '',
	linkedin_profile TEXT NOT NULL DEFAULT '',
	portfolio_url TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *CandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	if c.Skills == nil {
		c.Skills = []string{}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO candidates (id, first_name, last_name, email, phone, password_hash, resume_url, linkedin_profile, portfolio_url, skills, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, c.ID, c.FirstName, c.LastName, strings.ToLower(c.Email), c.Phone, c.PasswordHash, c.ResumeURL, c.LinkedInProfile, c.PortfolioURL, c.Skills, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return candidate.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, first_name, last_name, email, phone, password_hash, resume_url, linkedin_profile, portfolio_url, skills, created_at
FROM candidates WHERE id = $1
`, id)
	return scanCandidate(row)
}

func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, first_name, last_name, email, phone, password_hash, resume_url, linkedin_profile, portfolio_url, skills, created_at
FROM candidates WHERE email = $1
`, strings.ToLower(email))
	return scanCandidate(row)
}

func (r *CandidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	if c.Skills == nil {
		c.Skills = []string{}
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE candidates
SET first_name = $2, last_name = $3, phone = $4, resume_url = $5, linkedin_profile = $6, portfolio_url = $7, skills = $8
WHERE id = $1
`, c.ID, c.FirstName, c.LastName, c.Phone, c.ResumeURL, c.LinkedInProfile, c.PortfolioURL, c.Skills)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	var created time.Time
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.PasswordHash, &c.ResumeURL, &c.LinkedInProfile, &c.PortfolioURL, &c.Skills, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrNotFound
		}
		return candidate.Candidate{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}
