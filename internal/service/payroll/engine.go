package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
)

var oneHundred = decimal.NewFromInt(100)

// ApplyRules evaluates the active deduction rules against a base salary.
// Fixed rules deduct their value as-is; percentage rules deduct
// value/100 * baseSalary. The breakdown keeps each rule's raw amount, but
// the applied total is capped at the base salary so net pay never goes
// negative.
func ApplyRules(baseSalary decimal.Decimal, rules []payroll.DeductionRule) payroll.DeductionResult {
	total := decimal.Zero
	breakdown := make([]payroll.RuleContribution, 0, len(rules))

	for _, rule := range rules {
		var amount decimal.Decimal
		switch rule.Kind {
		case payroll.RuleKindFixed:
			amount = rule.Value
		case payroll.RuleKindPercentage:
			amount = baseSalary.Mul(rule.Value).Div(oneHundred)
		default:
			continue
		}

		total = total.Add(amount)
		breakdown = append(breakdown, payroll.RuleContribution{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Kind:     rule.Kind,
			Amount:   amount,
		})
	}

	applied := total
	if applied.GreaterThan(baseSalary) {
		applied = baseSalary
	}

	return payroll.DeductionResult{
		TotalDeduction: applied,
		NetPay:         baseSalary.Sub(applied),
		Breakdown:      breakdown,
	}
}
