package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo     user.UserRepository
	divisionRepo division.DivisionRepository
}

func NewUserService(
	userRepo user.UserRepository,
	divisionRepo division.DivisionRepository,
) user.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		divisionRepo: divisionRepo,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if req.DivisionID != nil {
		if _, err := s.divisionRepo.GetByID(ctx, *req.DivisionID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		DivisionID:   req.DivisionID,
		BankName:     req.BankName,
		BankAccount:  req.BankAccount,
		Status:       user.StatusActive,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}

	return responses, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.DivisionID != nil {
		if _, err := s.divisionRepo.GetByID(ctx, *req.DivisionID); err != nil {
			return user.UserResponse{}, err
		}
		current.DivisionID = req.DivisionID
	}
	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Role != nil {
		current.Role = user.Role(*req.Role)
	}
	if req.BankName != nil {
		current.BankName = req.BankName
	}
	if req.BankAccount != nil {
		current.BankAccount = req.BankAccount
	}
	if req.Status != nil {
		current.Status = user.Status(*req.Status)
	}

	if err := s.userRepo.Update(ctx, current); err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(current), nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         string(u.Role),
		DivisionID:   u.DivisionID,
		DivisionName: u.DivisionName,
		Status:       string(u.Status),
	}
}
