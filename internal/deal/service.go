// AngelaMos | 2026
// service.go

package deal

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]WithLead, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*Deal, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new deal owned by callerID. The wire value is a decimal
// amount and is converted to cents here, before persistence.
func (s *Service) Create(ctx context.Context, req *CreateRequest, callerID string) (*Deal, error) {
	stage := req.Stage
	if stage == "" {
		stage = DefaultStage
	}

	probability := 0
	if req.Probability != nil {
		probability = *req.Probability
	}

	d := &Deal{
		LeadID:            req.LeadID,
		Title:             req.Title,
		Value:             ToCents(*req.Value),
		Stage:             stage,
		Probability:       probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		AssignedTo:        &callerID,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*Deal, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		d.Title = *req.Title
	}
	if req.Value != nil {
		d.Value = ToCents(*req.Value)
	}
	if req.LeadID != nil {
		d.LeadID = req.LeadID
	}
	if req.Stage != nil {
		d.Stage = *req.Stage
	}
	if req.Probability != nil {
		d.Probability = *req.Probability
	}
	if req.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = req.ExpectedCloseDate
	}
	if req.ActualCloseDate != nil {
		d.ActualCloseDate = req.ActualCloseDate
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
