package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/domain/report"
	"github.com/hris-system/hris-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	ListPending(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	payrollService payroll.PayrollService
	reportService  report.ReportService
}

func NewFinanceHandler(
	payrollService payroll.PayrollService,
	reportService report.ReportService,
) FinanceHandler {
	return &financeHandlerImpl{
		payrollService: payrollService,
		reportService:  reportService,
	}
}

// ListPending implements FinanceHandler.
func (h *financeHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPendingPayments(r.Context())
	if err != nil {
		slog.Error("List pending payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Pay implements FinanceHandler.
func (h *financeHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.MarkPaid(r.Context(), id)
	if err != nil {
		slog.Error("Mark paid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment recorded", result)
}

// History implements FinanceHandler.
func (h *financeHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPaymentHistory(r.Context())
	if err != nil {
		slog.Error("Payment history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements FinanceHandler. Streams the period's paid records as
// CSV or XLSX.
func (h *financeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	month, year, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	format := report.FormatCSV
	if v := r.URL.Query().Get("format"); v != "" {
		format = report.Format(v)
	}

	export, err := h.reportService.ExportPayments(r.Context(), report.ExportRequest{
		Month:  month,
		Year:   year,
		Format: format,
	})
	if err != nil {
		slog.Error("Export payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		slog.Error("Export payments write error", "error", err)
	}
}
