// AngelaMos | 2026
// repository.go

package lead

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/velocitycrm/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, l *Lead) error
	Update(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id string) error
}

type postgresRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, company, job_title,
		       source, status, notes, assigned_to, created_at, updated_at
		FROM leads
		ORDER BY created_at ASC`

	var leads []Lead
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, company, job_title,
		       source, status, notes, assigned_to, created_at, updated_at
		FROM leads
		WHERE id = $1`

	var l Lead
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("getting lead: %w", err)
	}
	return &l, nil
}

func (r *postgresRepository) Create(ctx context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, company,
		                   job_title, source, status, notes, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.Company,
		l.JobTitle, l.Source, l.Status, l.Notes, l.AssignedTo,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, l *Lead) error {
	query := `
		UPDATE leads
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    company = $6, job_title = $7, source = $8, status = $9,
		    notes = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone,
		l.Company, l.JobTitle, l.Source, l.Status, l.Notes,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		return fmt.Errorf("updating lead: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}
