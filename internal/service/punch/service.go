package punch

import (
	"context"
	"fmt"

	"github.com/c-senju/ponto-fazenda/internal/domain/employee"
	"github.com/c-senju/ponto-fazenda/internal/domain/punch"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	directory employee.Directory
}

// CreateManual implements punch.Service.
func (s *PunchServiceImpl) CreateManual(ctx context.Context, req punch.CreateManualPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	justification := req.Justification
	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		EmployeeID:    req.EmployeeID,
		PunchedAt:     req.PunchedAtTime(),
		Origin:        punch.OriginManual,
		Justification: &justification,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create manual punch: %w", err)
	}

	return s.mapToResponse(created), nil
}

// List implements punch.Service.
func (s *PunchServiceImpl) List(ctx context.Context, filter punch.ListFilter) ([]punch.PunchResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	punches, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, s.mapToResponse(p))
	}
	return responses, nil
}

func (s *PunchServiceImpl) mapToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  s.directory.NameFor(p.EmployeeID),
		PunchedAt:     p.PunchedAt.Format("2006-01-02 15:04:05"),
		Origin:        p.Origin,
		Justification: p.Justification,
	}
}

func NewPunchService(punchRepo punch.PunchRepository, directory employee.Directory) punch.Service {
	return &PunchServiceImpl{
		PunchRepository: punchRepo,
		directory:       directory,
	}
}
