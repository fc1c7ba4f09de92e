package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

// ConfigHandler serves the admin configuration endpoints: geofence,
// per-division salary, deduction rules, and leave quotas.
type ConfigHandler interface {
	GetAttendanceConfig(w http.ResponseWriter, r *http.Request)
	UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request)
	AttendanceConfigHistory(w http.ResponseWriter, r *http.Request)
	ListSalaryConfigs(w http.ResponseWriter, r *http.Request)
	UpsertSalaryConfig(w http.ResponseWriter, r *http.Request)
	ListDeductionRules(w http.ResponseWriter, r *http.Request)
	CreateDeductionRule(w http.ResponseWriter, r *http.Request)
	UpdateDeductionRule(w http.ResponseWriter, r *http.Request)
	RetireDeductionRule(w http.ResponseWriter, r *http.Request)
	ListLeaveConfigs(w http.ResponseWriter, r *http.Request)
	UpsertLeaveConfig(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	attendanceConfigService attendance.ConfigService
	salaryConfigService     payroll.SalaryConfigService
	ruleService             payroll.RuleService
	leaveConfigService      leave.ConfigService
}

func NewConfigHandler(
	attendanceConfigService attendance.ConfigService,
	salaryConfigService payroll.SalaryConfigService,
	ruleService payroll.RuleService,
	leaveConfigService leave.ConfigService,
) ConfigHandler {
	return &configHandlerImpl{
		attendanceConfigService: attendanceConfigService,
		salaryConfigService:     salaryConfigService,
		ruleService:             ruleService,
		leaveConfigService:      leaveConfigService,
	}
}

// ========== ATTENDANCE CONFIG ==========

func (h *configHandlerImpl) GetAttendanceConfig(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceConfigService.GetActive(r.Context())
	if err != nil {
		slog.Error("Get attendance config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) UpdateAttendanceConfig(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceConfigService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update attendance config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance configuration updated", result)
}

func (h *configHandlerImpl) AttendanceConfigHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'limit' must be a number", nil)
			return
		}
		limit = parsed
	}

	result, err := h.attendanceConfigService.History(r.Context(), limit)
	if err != nil {
		slog.Error("Attendance config history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== SALARY CONFIG ==========

func (h *configHandlerImpl) ListSalaryConfigs(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryConfigService.List(r.Context())
	if err != nil {
		slog.Error("List salary configs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) UpsertSalaryConfig(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertSalaryConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert salary config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.salaryConfigService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Upsert salary config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary configuration saved", result)
}

// ========== DEDUCTION RULES ==========

func (h *configHandlerImpl) ListDeductionRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.List(r.Context())
	if err != nil {
		slog.Error("List deduction rules service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) CreateDeductionRule(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRuleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create deduction rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create deduction rule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction rule created", result)
}

func (h *configHandlerImpl) UpdateDeductionRule(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateRuleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update deduction rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.ruleService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update deduction rule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction rule updated", result)
}

func (h *configHandlerImpl) RetireDeductionRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ruleService.Retire(r.Context(), id); err != nil {
		slog.Error("Retire deduction rule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction rule retired", nil)
}

// ========== LEAVE CONFIG ==========

func (h *configHandlerImpl) ListLeaveConfigs(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Query parameter 'year' must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.leaveConfigService.ListByYear(r.Context(), year)
	if err != nil {
		slog.Error("List leave configs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) UpsertLeaveConfig(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert leave config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveConfigService.Upsert(r.Context(), req)
	if err != nil {
		slog.Error("Upsert leave config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave configuration saved", result)
}
