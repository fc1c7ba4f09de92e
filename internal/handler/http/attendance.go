package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.ClockRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// GetToday implements AttendanceHandler. Data is null when the employee has
// not clocked in today.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		slog.Error("GetToday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'limit' must be a number", nil)
			return
		}
		limit = parsed
	}

	result, err := h.attendanceService.GetMyHistory(r.Context(), limit)
	if err != nil {
		slog.Error("GetMyHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate implements AttendanceHandler. Defaults to today.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("ListByDate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
