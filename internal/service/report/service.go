package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	recordRepo payroll.RecordRepository
}

func NewReportService(recordRepo payroll.RecordRepository) report.ReportService {
	return &ReportServiceImpl{recordRepo: recordRepo}
}

func (s *ReportServiceImpl) ExportPayments(ctx context.Context, req report.ExportRequest) (report.Export, error) {
	if err := req.Validate(); err != nil {
		return report.Export{}, err
	}

	records, err := s.recordRepo.ListByPeriod(ctx, req.Month, req.Year, payroll.RecordStatusPaid)
	if err != nil {
		return report.Export{}, err
	}

	baseName := fmt.Sprintf("payments_%04d_%02d", req.Year, req.Month)

	switch req.Format {
	case report.FormatXLSX:
		data, err := BuildXLSX(records)
		if err != nil {
			return report.Export{}, err
		}
		return report.Export{
			FileName:    baseName + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		data, err := BuildCSV(records)
		if err != nil {
			return report.Export{}, err
		}
		return report.Export{
			FileName:    baseName + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

var exportHeader = []string{
	"employee", "division", "bank_name", "bank_account",
	"base_salary", "total_deductions", "net_pay", "paid_at",
}

func exportRow(rec payroll.Record) []string {
	row := []string{
		deref(rec.UserName), deref(rec.DivisionName),
		deref(rec.BankName), deref(rec.BankAccount),
		rec.BaseSalary.String(), rec.TotalDeductions.String(), rec.NetPay.String(),
		"",
	}
	if rec.PaidAt != nil {
		row[7] = rec.PaidAt.Format("2006-01-02 15:04:05")
	}
	return row
}

func BuildCSV(records []payroll.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(exportRow(rec)); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func BuildXLSX(records []payroll.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payments"
	f.SetSheetName("Sheet1", sheet)

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write xlsx header: %w", err)
	}

	for i, rec := range records {
		row := exportRow(rec)
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write xlsx row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx file: %w", err)
	}

	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
