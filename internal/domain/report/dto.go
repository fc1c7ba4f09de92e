package report

import (
	"context"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type ExportRequest struct {
	Month  int
	Year   int
	Format Format
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if r.Format != FormatCSV && r.Format != FormatXLSX {
		errs = append(errs, validator.ValidationError{Field: "format", Message: "must be 'csv' or 'xlsx'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Export is a generated payment report ready to stream to the client.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

type ReportService interface {
	// ExportPayments exports the period's paid payroll records.
	ExportPayments(ctx context.Context, req ExportRequest) (Export, error)
}
