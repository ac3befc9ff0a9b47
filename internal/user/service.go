// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Sync mirrors an externally managed identity into the CRM. The same call
// serves first-time creation and subsequent profile refreshes; the returned
// flag reports which one happened.
func (s *Service) Sync(
	ctx context.Context,
	req SyncRequest,
) (*User, bool, error) {
	role := req.Role
	if role == "" {
		role = DefaultRole
	}

	user := &User{
		ID:        req.ID,
		Email:     strings.ToLower(req.Email),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	created, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}
