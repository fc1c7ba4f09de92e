package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type DivisionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
	Retire(w http.ResponseWriter, r *http.Request)
}

type divisionHandlerImpl struct {
	divisionService division.DivisionService
}

func NewDivisionHandler(divisionService division.DivisionService) DivisionHandler {
	return &divisionHandlerImpl{divisionService: divisionService}
}

// Create implements DivisionHandler.
func (h *divisionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req division.UpsertDivisionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create division decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.divisionService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create division service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Division created", result)
}

// List implements DivisionHandler.
func (h *divisionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.divisionService.List(r.Context())
	if err != nil {
		slog.Error("List divisions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Rename implements DivisionHandler.
func (h *divisionHandlerImpl) Rename(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req division.UpsertDivisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rename division decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.divisionService.Rename(r.Context(), id, req)
	if err != nil {
		slog.Error("Rename division service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division updated", result)
}

// Retire implements DivisionHandler.
func (h *divisionHandlerImpl) Retire(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.divisionService.Retire(r.Context(), id); err != nil {
		slog.Error("Retire division service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Division retired", nil)
}
