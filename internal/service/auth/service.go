package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hris-system/hris-backend-go/internal/domain/auth"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
	"github.com/hris-system/hris-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if userData.Status != user.StatusActive {
		return auth.LoginResponse{}, auth.ErrUserInactive
	}

	var resp auth.LoginResponse
	resp.AccessToken, resp.AccessTokenExpiresAt, err =
		a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.DivisionID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresAt, err = a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp.UserID = userData.ID
	resp.Name = userData.Name
	resp.Role = string(userData.Role)

	return resp, nil
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return auth.RefreshResponse{}, auth.ErrTokenExpired
		}
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	if a.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if userData.Status != user.StatusActive {
		return auth.RefreshResponse{}, auth.ErrUserInactive
	}

	var resp auth.RefreshResponse
	resp.AccessToken, resp.AccessTokenExpiresAt, err =
		a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.DivisionID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}
