package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
)

// stubRecordRepo implements only the methods the payslip paths touch.
type stubRecordRepo struct {
	payroll.RecordRepository

	paid      []payroll.Record
	paidLimit int
	byID      map[string]payroll.Record
}

func (s *stubRecordRepo) ListPaidByUser(ctx context.Context, userID string, limit int) ([]payroll.Record, error) {
	s.paidLimit = limit
	var out []payroll.Record
	for _, rec := range s.paid {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubRecordRepo) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	rec, ok := s.byID[id]
	if !ok {
		return payroll.Record{}, payroll.ErrRecordNotFound
	}
	return rec, nil
}

func employeeContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("payslip-test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func paidRecord(id, userID string, month, year int) payroll.Record {
	paidAt := time.Date(year, time.Month(month)+1, 1, 9, 0, 0, 0, time.UTC)
	return payroll.Record{
		ID:              id,
		UserID:          userID,
		Month:           month,
		Year:            year,
		BaseSalary:      decimal.NewFromInt(5_000_000),
		TotalDeductions: decimal.NewFromInt(300_000),
		NetPay:          decimal.NewFromInt(4_700_000),
		Status:          payroll.RecordStatusPaid,
		PaidAt:          &paidAt,
	}
}

func TestPayrollService_ListMyPayslips(t *testing.T) {
	repo := &stubRecordRepo{
		paid: []payroll.Record{
			paidRecord("rec-2", "emp-1", 2, 2026),
			paidRecord("rec-1", "emp-1", 1, 2026),
			paidRecord("rec-3", "emp-2", 1, 2026),
		},
	}
	svc := NewPayrollService(nil, repo, nil, nil, nil)
	ctx := employeeContext(t, "emp-1")

	result, err := svc.ListMyPayslips(ctx, 0)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "rec-2", result[0].ID)
	assert.Equal(t, "rec-1", result[1].ID)
	assert.Equal(t, "paid", result[0].Status)
	assert.NotNil(t, result[0].PaidAt)
	// A zero limit falls back to the default page size.
	assert.Equal(t, 12, repo.paidLimit)
}

func TestPayrollService_ListMyPayslips_LimitClamped(t *testing.T) {
	repo := &stubRecordRepo{}
	svc := NewPayrollService(nil, repo, nil, nil, nil)
	ctx := employeeContext(t, "emp-1")

	_, err := svc.ListMyPayslips(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, 12, repo.paidLimit)

	_, err = svc.ListMyPayslips(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, repo.paidLimit)
}

func TestPayrollService_GetMyPayslip_OwnRecord(t *testing.T) {
	repo := &stubRecordRepo{
		byID: map[string]payroll.Record{
			"rec-1": paidRecord("rec-1", "emp-1", 1, 2026),
		},
	}
	svc := NewPayrollService(nil, repo, nil, nil, nil)
	ctx := employeeContext(t, "emp-1")

	result, err := svc.GetMyPayslip(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", result.ID)
	assert.Equal(t, "emp-1", result.UserID)
	assert.True(t, decimal.NewFromInt(4_700_000).Equal(result.NetPay))
}

func TestPayrollService_GetMyPayslip_OtherEmployeesRecordHidden(t *testing.T) {
	repo := &stubRecordRepo{
		byID: map[string]payroll.Record{
			"rec-9": paidRecord("rec-9", "emp-2", 1, 2026),
		},
	}
	svc := NewPayrollService(nil, repo, nil, nil, nil)
	ctx := employeeContext(t, "emp-1")

	_, err := svc.GetMyPayslip(ctx, "rec-9")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestPayrollService_GetMyPayslip_Missing(t *testing.T) {
	repo := &stubRecordRepo{byID: map[string]payroll.Record{}}
	svc := NewPayrollService(nil, repo, nil, nil, nil)
	ctx := employeeContext(t, "emp-1")

	_, err := svc.GetMyPayslip(ctx, "nope")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}
