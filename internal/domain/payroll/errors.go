package payroll

import "errors"

var (
	ErrRuleNotFound      = errors.New("deduction rule not found")
	ErrRecordNotFound    = errors.New("payroll record not found")
	ErrPeriodLocked      = errors.New("payroll period has records already sent to finance or paid")
	ErrNothingToSubmit   = errors.New("no draft payroll records exist for this period")
	ErrInvalidTransition = errors.New("payroll record is not in a state that allows this transition")
	ErrNoEmployees       = errors.New("no active employees to generate payroll for")
)
