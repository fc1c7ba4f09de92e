package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hris-system/hris-backend-go/internal/domain/auth"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Refresh implements AuthHandler.
func (a *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var refreshReq auth.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&refreshReq); err != nil {
		slog.Error("Refresh decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if refreshReq.RefreshToken == "" {
		response.BadRequest(w, "Field 'refresh_token' is required", nil)
		return
	}

	result, err := a.authService.Refresh(r.Context(), refreshReq)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
