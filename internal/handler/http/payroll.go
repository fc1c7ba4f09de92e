package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListDraft(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	MyPayslips(w http.ResponseWriter, r *http.Request)
	MyPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func periodFromQuery(r *http.Request) (month, year int, err error) {
	now := time.Now()
	month, year = int(now.Month()), now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		if month, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("query parameter 'month' must be a number")
		}
	}
	if v := r.URL.Query().Get("year"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("query parameter 'year' must be a number")
		}
	}

	return month, year, nil
}

// Generate implements PayrollHandler.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.PeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GenerateDraft(r.Context(), req)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll draft generated", result)
}

// ListDraft implements PayrollHandler.
func (h *payrollHandlerImpl) ListDraft(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.payrollService.ListDraft(r.Context(), month, year)
	if err != nil {
		slog.Error("List payroll draft service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Submit implements PayrollHandler.
func (h *payrollHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req payroll.PeriodRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	moved, err := h.payrollService.SubmitToFinance(r.Context(), req)
	if err != nil {
		slog.Error("Submit payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll sent to finance", map[string]int{"submitted": moved})
}

// MyPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) MyPayslips(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "query parameter 'limit' must be a number", nil)
			return
		}
		limit = parsed
	}

	result, err := h.payrollService.ListMyPayslips(r.Context(), limit)
	if err != nil {
		slog.Error("List payslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) MyPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetMyPayslip(r.Context(), id)
	if err != nil {
		slog.Error("Get payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements PayrollHandler.
func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.payrollService.Summary(r.Context(), month, year)
	if err != nil {
		slog.Error("Payroll summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
