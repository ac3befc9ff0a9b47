// AngelaMos | 2026
// service.go

package lead

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

func (s *Service) List(ctx context.Context) ([]Lead, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new lead owned by callerID. An empty status falls back to
// the default; the caller identity always wins over anything in the payload.
func (s *Service) Create(ctx context.Context, req *CreateRequest, callerID string) (*Lead, error) {
	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	l := &Lead{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      strings.ToLower(req.Email),
		Phone:      req.Phone,
		Company:    req.Company,
		JobTitle:   req.JobTitle,
		Source:     req.Source,
		Status:     status,
		Notes:      req.Notes,
		AssignedTo: &callerID,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		l.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		l.LastName = *req.LastName
	}
	if req.Email != nil {
		l.Email = strings.ToLower(*req.Email)
	}
	if req.Phone != nil {
		l.Phone = req.Phone
	}
	if req.Company != nil {
		l.Company = req.Company
	}
	if req.JobTitle != nil {
		l.JobTitle = req.JobTitle
	}
	if req.Source != nil {
		l.Source = req.Source
	}
	if req.Status != nil {
		l.Status = *req.Status
	}
	if req.Notes != nil {
		l.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
