package division

import (
	"context"
	"errors"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
)

type DivisionServiceImpl struct {
	divisionRepo division.DivisionRepository
	userRepo     user.UserRepository
}

func NewDivisionService(
	divisionRepo division.DivisionRepository,
	userRepo user.UserRepository,
) division.DivisionService {
	return &DivisionServiceImpl{
		divisionRepo: divisionRepo,
		userRepo:     userRepo,
	}
}

func (s *DivisionServiceImpl) Create(ctx context.Context, req division.UpsertDivisionRequest) (division.DivisionResponse, error) {
	if err := req.Validate(); err != nil {
		return division.DivisionResponse{}, err
	}

	if _, err := s.divisionRepo.GetByName(ctx, req.Name); err == nil {
		return division.DivisionResponse{}, division.ErrDivisionNameExists
	} else if !errors.Is(err, division.ErrDivisionNotFound) {
		return division.DivisionResponse{}, err
	}

	created, err := s.divisionRepo.Create(ctx, division.Division{
		Name:   req.Name,
		Status: division.StatusActive,
	})
	if err != nil {
		return division.DivisionResponse{}, err
	}

	return toDivisionResponse(created), nil
}

func (s *DivisionServiceImpl) List(ctx context.Context) ([]division.DivisionResponse, error) {
	divisions, err := s.divisionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]division.DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		responses = append(responses, toDivisionResponse(d))
	}

	return responses, nil
}

func (s *DivisionServiceImpl) Rename(ctx context.Context, id string, req division.UpsertDivisionRequest) (division.DivisionResponse, error) {
	if err := req.Validate(); err != nil {
		return division.DivisionResponse{}, err
	}

	current, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		return division.DivisionResponse{}, err
	}

	if existing, err := s.divisionRepo.GetByName(ctx, req.Name); err == nil {
		if existing.ID != current.ID {
			return division.DivisionResponse{}, division.ErrDivisionNameExists
		}
	} else if !errors.Is(err, division.ErrDivisionNotFound) {
		return division.DivisionResponse{}, err
	}

	current.Name = req.Name
	if err := s.divisionRepo.Update(ctx, current); err != nil {
		return division.DivisionResponse{}, err
	}

	return toDivisionResponse(current), nil
}

// Retire refuses to retire a division that still has active members, so
// payroll runs never hit a retired division through a live user.
func (s *DivisionServiceImpl) Retire(ctx context.Context, id string) error {
	members, err := s.userRepo.ListActiveByDivision(ctx, id)
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return division.ErrDivisionNotEmpty
	}

	return s.divisionRepo.Retire(ctx, id)
}

func toDivisionResponse(d division.Division) division.DivisionResponse {
	return division.DivisionResponse{
		ID:            d.ID,
		Name:          d.Name,
		Status:        string(d.Status),
		EmployeeCount: d.EmployeeCount,
	}
}
