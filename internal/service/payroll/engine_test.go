package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
)

func TestApplyRules_FixedAndPercentage(t *testing.T) {
	base := decimal.NewFromInt(5000000)
	rules := []payroll.DeductionRule{
		{ID: "r1", Name: "BPJS", Kind: payroll.RuleKindFixed, Value: decimal.NewFromInt(50000)},
		{ID: "r2", Name: "Tax", Kind: payroll.RuleKindPercentage, Value: decimal.NewFromInt(5)},
	}

	result := ApplyRules(base, rules)

	assert.True(t, result.TotalDeduction.Equal(decimal.NewFromInt(300000)),
		"expected 300000, got %s", result.TotalDeduction)
	assert.True(t, result.NetPay.Equal(decimal.NewFromInt(4700000)),
		"expected 4700000, got %s", result.NetPay)
	assert.Len(t, result.Breakdown, 2)
	assert.True(t, result.Breakdown[0].Amount.Equal(decimal.NewFromInt(50000)))
	assert.True(t, result.Breakdown[1].Amount.Equal(decimal.NewFromInt(250000)))
}

func TestApplyRules_NoRules(t *testing.T) {
	base := decimal.NewFromInt(5000000)

	result := ApplyRules(base, nil)

	assert.True(t, result.TotalDeduction.IsZero())
	assert.True(t, result.NetPay.Equal(base))
	assert.Empty(t, result.Breakdown)
}

func TestApplyRules_ZeroBaseSalary(t *testing.T) {
	rules := []payroll.DeductionRule{
		{ID: "r1", Name: "BPJS", Kind: payroll.RuleKindFixed, Value: decimal.NewFromInt(50000)},
		{ID: "r2", Name: "Tax", Kind: payroll.RuleKindPercentage, Value: decimal.NewFromInt(5)},
	}

	result := ApplyRules(decimal.Zero, rules)

	assert.True(t, result.TotalDeduction.IsZero())
	assert.True(t, result.NetPay.IsZero())
	// Raw breakdown still records the fixed rule's amount.
	assert.True(t, result.Breakdown[0].Amount.Equal(decimal.NewFromInt(50000)))
	assert.True(t, result.Breakdown[1].Amount.IsZero())
}

func TestApplyRules_DeductionsExceedSalary(t *testing.T) {
	base := decimal.NewFromInt(100000)
	rules := []payroll.DeductionRule{
		{ID: "r1", Name: "Loan", Kind: payroll.RuleKindFixed, Value: decimal.NewFromInt(150000)},
	}

	result := ApplyRules(base, rules)

	assert.True(t, result.TotalDeduction.Equal(base), "deduction capped at base salary")
	assert.True(t, result.NetPay.IsZero(), "net pay never negative")
	assert.True(t, result.Breakdown[0].Amount.Equal(decimal.NewFromInt(150000)),
		"breakdown keeps the raw amount")
}

func TestApplyRules_PercentageRounding(t *testing.T) {
	base := decimal.NewFromInt(3333333)
	rules := []payroll.DeductionRule{
		{ID: "r1", Name: "Tax", Kind: payroll.RuleKindPercentage, Value: decimal.NewFromFloat(2.5)},
	}

	result := ApplyRules(base, rules)

	expected := decimal.NewFromFloat(83333.325)
	assert.True(t, result.TotalDeduction.Equal(expected),
		"expected %s, got %s", expected, result.TotalDeduction)
}
