package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdesk/backend/pkg/job"
)

// JobPostRepository implements job.Repository backed by PostgreSQL (pgx).
type JobPostRepository struct {
	pool *pgxpool.Pool
}

func NewJobPostRepository(pool *pgxpool.Pool) (*JobPostRepository, error) {
	r := &JobPostRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobPostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_posts (
	id UUID PRIMARY KEY,
	company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	job_type TEXT NOT NULL DEFAULT '',
	salary_range_start DOUBLE PRECISION,
	salary_range_end DOUBLE PRECISION,
	posted_at TIMESTAMPTZ NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS idx_job_posts_company ON job_posts(company_id);
`)
	return err
}

func (r *JobPostRepository) Create(ctx context.Context, p job.JobPost) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_posts (id, company_id, title, description, location, job_type, salary_range_start, salary_range_end, posted_at, expires_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, p.ID, p.CompanyID, p.Title, p.Description, p.Location, p.JobType, p.SalaryRangeStart, p.SalaryRangeEnd, p.PostedAt, p.ExpiresAt, p.IsActive)
	return err
}

func (r *JobPostRepository) GetByID(ctx context.Context, id uuid.UUID) (job.JobPost, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, company_id, title, description, location, job_type, salary_range_start, salary_range_end, posted_at, expires_at, is_active
FROM job_posts WHERE id = $1
`, id)
	return scanJobPost(row)
}

func (r *JobPostRepository) GetByIDWithCompany(ctx context.Context, id uuid.UUID) (job.Summary, error) {
	row := r.pool.QueryRow(ctx, `
SELECT j.id, j.company_id, j.title, j.description, j.location, j.job_type, j.salary_range_start, j.salary_range_end, j.posted_at, j.expires_at, j.is_active, c.name
FROM job_posts j
JOIN companies c ON c.id = j.company_id
WHERE j.id = $1
`, id)
	return scanJobSummary(row)
}

// escapeLike neutralizes the LIKE metacharacters so user input matches
// as a literal substring. Patterns built with it must carry ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Search applies the conjunctive optional filters. Substring matching
// uses ILIKE with escaped patterns; salary bounds compare against the
// posted range edges.
func (r *JobPostRepository) Search(ctx context.Context, f job.SearchFilter) ([]job.Summary, error) {
	var (
		clauses []string
		args    []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		p := arg("%" + escapeLike(kw) + "%")
		clauses = append(clauses, fmt.Sprintf(`(j.title ILIKE %[1]s ESCAPE '\' OR j.description ILIKE %[1]s ESCAPE '\' OR j.location ILIKE %[1]s ESCAPE '\')`, p))
	}
	if t := strings.TrimSpace(f.Title); t != "" {
		clauses = append(clauses, fmt.Sprintf(`j.title ILIKE %s ESCAPE '\'`, arg("%"+escapeLike(t)+"%")))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		clauses = append(clauses, fmt.Sprintf(`j.location ILIKE %s ESCAPE '\'`, arg("%"+escapeLike(l)+"%")))
	}
	if cn := strings.TrimSpace(f.CompanyName); cn != "" {
		clauses = append(clauses, fmt.Sprintf(`c.name ILIKE %s ESCAPE '\'`, arg("%"+escapeLike(cn)+"%")))
	}
	if f.MinSalary != nil {
		clauses = append(clauses, fmt.Sprintf("j.salary_range_start >= %s", arg(*f.MinSalary)))
	}
	if f.MaxSalary != nil {
		clauses = append(clauses, fmt.Sprintf("j.salary_range_end <= %s", arg(*f.MaxSalary)))
	}
	if f.FromDate != nil {
		clauses = append(clauses, fmt.Sprintf("j.posted_at >= %s", arg(*f.FromDate)))
	}
	if f.ToDate != nil {
		clauses = append(clauses, fmt.Sprintf("j.posted_at <= %s", arg(*f.ToDate)))
	}
	if f.IsActive != nil {
		clauses = append(clauses, fmt.Sprintf("j.is_active = %s", arg(*f.IsActive)))
	}

	query := `
SELECT j.id, j.company_id, j.title, j.description, j.location, j.job_type, j.salary_range_start, j.salary_range_end, j.posted_at, j.expires_at, j.is_active, c.name
FROM job_posts j
JOIN companies c ON c.id = j.company_id
`
	if len(clauses) > 0 {
		query += "WHERE " + strings.Join(clauses, " AND ") + "\n"
	}
	query += "ORDER BY j.posted_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.Summary
	for rows.Next() {
		s, err := scanJobSummary(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *JobPostRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]job.JobPost, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, company_id, title, description, location, job_type, salary_range_start, salary_range_end, posted_at, expires_at, is_active
FROM job_posts WHERE company_id = $1
ORDER BY posted_at DESC
`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []job.JobPost
	for rows.Next() {
		p, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// Update leaves company_id and posted_at untouched.
func (r *JobPostRepository) Update(ctx context.Context, p job.JobPost) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE job_posts
SET title = $2, description = $3, location = $4, job_type = $5, salary_range_start = $6, salary_range_end = $7, expires_at = $8, is_active = $9
WHERE id = $1
`, p.ID, p.Title, p.Description, p.Location, p.JobType, p.SalaryRangeStart, p.SalaryRangeEnd, p.ExpiresAt, p.IsActive)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJobPost(row pgx.Row) (job.JobPost, error) {
	var p job.JobPost
	var posted, expires time.Time
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.Location, &p.JobType, &p.SalaryRangeStart, &p.SalaryRangeEnd, &posted, &expires, &p.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.JobPost{}, job.ErrNotFound
		}
		return job.JobPost{}, err
	}
	p.PostedAt = posted.UTC()
	p.ExpiresAt = expires.UTC()
	return p, nil
}

func scanJobSummary(row pgx.Row) (job.Summary, error) {
	var s job.Summary
	var posted, expires time.Time
	if err := row.Scan(&s.ID, &s.CompanyID, &s.Title, &s.Description, &s.Location, &s.JobType, &s.SalaryRangeStart, &s.SalaryRangeEnd, &posted, &expires, &s.IsActive, &s.CompanyName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Summary{}, job.ErrNotFound
		}
		return job.Summary{}, err
	}
	s.PostedAt = posted.UTC()
	s.ExpiresAt = expires.UTC()
	return s, nil
}
