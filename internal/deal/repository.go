// AngelaMos | 2026
// repository.go

package deal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/velocitycrm/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]WithLead, error)
	GetByID(ctx context.Context, id string) (*Deal, error)
	Create(ctx context.Context, d *Deal) error
	Update(ctx context.Context, d *Deal) error
	Delete(ctx context.Context, id string) error
}

type postgresRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]WithLead, error) {
	query := `
		SELECT d.id, d.lead_id, d.title, d.value, d.stage, d.probability,
		       d.expected_close_date, d.actual_close_date, d.assigned_to,
		       d.created_at, d.updated_at,
		       l.first_name AS lead_name,
		       l.last_name  AS lead_last_name,
		       l.company    AS lead_company,
		       l.email      AS lead_email
		FROM deals d
		LEFT JOIN leads l ON l.id = d.lead_id
		ORDER BY d.created_at ASC`

	var rows []WithLead
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("listing deals: %w", err)
	}
	return rows, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Deal, error) {
	query := `
		SELECT id, lead_id, title, value, stage, probability,
		       expected_close_date, actual_close_date, assigned_to,
		       created_at, updated_at
		FROM deals
		WHERE id = $1`

	var d Deal
	if err := r.db.GetContext(ctx, &d, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("getting deal: %w", err)
	}
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, d *Deal) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	query := `
		INSERT INTO deals (id, lead_id, title, value, stage, probability,
		                   expected_close_date, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		d.ID, d.LeadID, d.Title, d.Value, d.Stage, d.Probability,
		d.ExpectedCloseDate, d.AssignedTo,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating deal: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, d *Deal) error {
	query := `
		UPDATE deals
		SET lead_id = $2, title = $3, value = $4, stage = $5,
		    probability = $6, expected_close_date = $7,
		    actual_close_date = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		d.ID, d.LeadID, d.Title, d.Value, d.Stage,
		d.Probability, d.ExpectedCloseDate, d.ActualCloseDate,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		return fmt.Errorf("updating deal: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting deal: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting deal: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}
