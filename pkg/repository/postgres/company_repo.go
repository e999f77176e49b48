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

	"github.com/jobdesk/backend/pkg/company"
)

// CompanyRepository implements company.Repository backed by PostgreSQL (pgx).
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) (*CompanyRepository, error) {
	r := &CompanyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CompanyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	website TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO companies (id, name, description, location, industry, email, phone, website, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, c.ID, c.Name, c.Description, c.Location, c.Industry, strings.ToLower(c.Email), c.Phone, c.Website, c.PasswordHash, c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return company.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, description, location, industry, email, phone, website, password_hash, created_at
FROM companies WHERE id = $1
`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, description, location, industry, email, phone, website, password_hash, created_at
FROM companies WHERE email = $1
`, strings.ToLower(email))
	return scanCompany(row)
}

func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, name, description, location, industry, email, phone, website, password_hash, created_at
FROM companies
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE companies
SET name = $2, description = $3, location = $4, industry = $5, phone = $6, website = $7
WHERE id = $1
`, c.ID, c.Name, c.Description, c.Location, c.Industry, c.Phone, c.Website)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return company.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	var created time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Location, &c.Industry, &c.Email, &c.Phone, &c.Website, &c.PasswordHash, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}
