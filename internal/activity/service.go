// AngelaMos | 2026
// service.go

package activity

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Activity, error) {
	return s.repo.GetByID(ctx, id)
}

// Create records a new activity attributed to callerID.
func (s *Service) Create(ctx context.Context, req *CreateRequest, callerID string) (*Activity, error) {
	a := &Activity{
		Type:        req.Type,
		Subject:     req.Subject,
		Description: req.Description,
		LeadID:      req.LeadID,
		DealID:      req.DealID,
		UserID:      &callerID,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
