package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyBalance(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Process(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// GetMyBalance implements LeaveHandler. Defaults to the current year.
func (h *leaveHandlerImpl) GetMyBalance(w http.ResponseWriter, r *http.Request) {
	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'year' must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.leaveService.GetMyBalance(r.Context(), year)
	if err != nil {
		slog.Error("Get leave balance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyHistory implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.GetMyHistory(r.Context())
	if err != nil {
		slog.Error("Get leave history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements LeaveHandler. Pending requests come first.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("List leave requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Process implements LeaveHandler.
func (h *leaveHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req leave.ProcessRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Process(r.Context(), req)
	if err != nil {
		slog.Error("Process leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request processed", result)
}
