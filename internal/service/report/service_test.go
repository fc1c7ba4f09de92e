package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
)

func testRecords() []payroll.Record {
	name := "Budi Santoso"
	division := "Engineering"
	bank := "BCA"
	account := "1234567890"
	paidAt := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)

	return []payroll.Record{
		{
			UserName:        &name,
			DivisionName:    &division,
			BankName:        &bank,
			BankAccount:     &account,
			BaseSalary:      decimal.NewFromInt(5000000),
			TotalDeductions: decimal.NewFromInt(300000),
			NetPay:          decimal.NewFromInt(4700000),
			PaidAt:          &paidAt,
		},
	}
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(testRecords())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, []string{
		"Budi Santoso", "Engineering", "BCA", "1234567890",
		"5000000", "300000", "4700000", "2026-03-31 10:00:00",
	}, rows[1])
}

func TestBuildCSV_NilFields(t *testing.T) {
	data, err := BuildCSV([]payroll.Record{
		{
			BaseSalary:      decimal.NewFromInt(1000000),
			TotalDeductions: decimal.Zero,
			NetPay:          decimal.NewFromInt(1000000),
		},
	})
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"", "", "", "", "1000000", "0", "1000000", ""}, rows[1])
}

func TestBuildXLSX(t *testing.T) {
	data, err := BuildXLSX(testRecords())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payments")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "Budi Santoso", rows[1][0])
	assert.Equal(t, "4700000", rows[1][6])
}
