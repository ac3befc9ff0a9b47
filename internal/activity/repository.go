// AngelaMos | 2026
// repository.go

package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/velocitycrm/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Activity, error)
	GetByID(ctx context.Context, id string) (*Activity, error)
	Create(ctx context.Context, a *Activity) error
}

type postgresRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]Activity, error) {
	query := `
		SELECT id, type, subject, description, lead_id, deal_id, user_id,
		       created_at
		FROM activities
		ORDER BY created_at ASC`

	var activities []Activity
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	return activities, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Activity, error) {
	query := `
		SELECT id, type, subject, description, lead_id, deal_id, user_id,
		       created_at
		FROM activities
		WHERE id = $1`

	var a Activity
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("getting activity: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *Activity) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activities (id, type, subject, description, lead_id,
		                        deal_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query,
		a.ID, a.Type, a.Subject, a.Description, a.LeadID, a.DealID, a.UserID,
	).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating activity: %w", err)
	}
	return nil
}
