// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velocitycrm/backend/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, user *User) (created bool, err error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, email, first_name, last_name, role, created_at, updated_at
		FROM users
		ORDER BY created_at ASC`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, first_name, last_name, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

type upsertRow struct {
	User
	Inserted bool `db:"inserted"`
}

// Upsert inserts the user or, when the id already exists, refreshes its
// mutable fields in a single atomic statement. id and created_at never
// change on the update path. xmax = 0 distinguishes a fresh insert from a
// conflict update on the returned row.
func (r *repository) Upsert(
	ctx context.Context,
	user *User,
) (bool, error) {
	query := `
		INSERT INTO users (id, email, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			role = EXCLUDED.role,
			updated_at = NOW()
		RETURNING id, email, first_name, last_name, role,
		          created_at, updated_at, (xmax = 0) AS inserted`

	var row upsertRow
	err := r.db.GetContext(ctx, &row, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return false, fmt.Errorf("upsert user: %w", core.ErrDuplicateKey)
		}
		return false, fmt.Errorf("upsert user: %w", err)
	}

	*user = row.User
	return row.Inserted, nil
}
