package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/domain/payroll"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
	"github.com/hris-system/hris-backend-go/internal/pkg/database"
	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
	"github.com/hris-system/hris-backend-go/internal/repository/postgresql"
)

// ========== DEDUCTION RULES ==========

type RuleServiceImpl struct {
	ruleRepo payroll.RuleRepository
}

func NewRuleService(ruleRepo payroll.RuleRepository) payroll.RuleService {
	return &RuleServiceImpl{ruleRepo: ruleRepo}
}

func (s *RuleServiceImpl) Create(ctx context.Context, req payroll.CreateRuleRequest) (payroll.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RuleResponse{}, err
	}

	rule, err := s.ruleRepo.Create(ctx, payroll.DeductionRule{
		Name:        req.Name,
		Kind:        payroll.RuleKind(req.Kind),
		Value:       req.Value,
		Description: req.Description,
		Status:      payroll.RuleStatusActive,
	})
	if err != nil {
		return payroll.RuleResponse{}, err
	}

	return toRuleResponse(rule), nil
}

func (s *RuleServiceImpl) List(ctx context.Context) ([]payroll.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toRuleResponse(rule))
	}

	return responses, nil
}

func (s *RuleServiceImpl) Update(ctx context.Context, req payroll.UpdateRuleRequest) (payroll.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RuleResponse{}, err
	}

	rule, err := s.ruleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RuleResponse{}, err
	}
	if rule.Status != payroll.RuleStatusActive {
		return payroll.RuleResponse{}, payroll.ErrRuleNotFound
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Kind != nil {
		rule.Kind = payroll.RuleKind(*req.Kind)
	}
	if req.Value != nil {
		rule.Value = *req.Value
	}
	if req.Description != nil {
		rule.Description = req.Description
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return payroll.RuleResponse{}, err
	}

	return toRuleResponse(rule), nil
}

func (s *RuleServiceImpl) Retire(ctx context.Context, id string) error {
	return s.ruleRepo.Retire(ctx, id)
}

func toRuleResponse(rule payroll.DeductionRule) payroll.RuleResponse {
	return payroll.RuleResponse{
		ID:          rule.ID,
		Name:        rule.Name,
		Kind:        string(rule.Kind),
		Value:       rule.Value,
		Description: rule.Description,
		Status:      string(rule.Status),
	}
}

// ========== SALARY CONFIG ==========

type SalaryConfigServiceImpl struct {
	salaryRepo   payroll.SalaryConfigRepository
	divisionRepo division.DivisionRepository
}

func NewSalaryConfigService(
	salaryRepo payroll.SalaryConfigRepository,
	divisionRepo division.DivisionRepository,
) payroll.SalaryConfigService {
	return &SalaryConfigServiceImpl{
		salaryRepo:   salaryRepo,
		divisionRepo: divisionRepo,
	}
}

func (s *SalaryConfigServiceImpl) List(ctx context.Context) ([]payroll.SalaryConfigResponse, error) {
	divisions, err := s.divisionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := s.salaryRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	byDivision := make(map[string]payroll.SalaryConfig, len(configs))
	for _, cfg := range configs {
		byDivision[cfg.DivisionID] = cfg
	}

	// Every active division gets an entry so HR can see which ones still
	// lack a base salary.
	responses := make([]payroll.SalaryConfigResponse, 0, len(divisions))
	for _, d := range divisions {
		name := d.Name
		resp := payroll.SalaryConfigResponse{
			DivisionID:   d.ID,
			DivisionName: &name,
			BaseSalary:   decimal.Zero,
		}
		if cfg, ok := byDivision[d.ID]; ok {
			resp.ID = cfg.ID
			resp.BaseSalary = cfg.BaseSalary
			resp.EffectiveDate = cfg.EffectiveDate.Format("2006-01-02")
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *SalaryConfigServiceImpl) Upsert(ctx context.Context, req payroll.UpsertSalaryConfigRequest) (payroll.SalaryConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	if _, err := s.divisionRepo.GetByID(ctx, req.DivisionID); err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	effective := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveDate != "" {
		effective, _ = validator.IsValidDate(req.EffectiveDate)
	}

	cfg, err := s.salaryRepo.Upsert(ctx, payroll.SalaryConfig{
		DivisionID:    req.DivisionID,
		BaseSalary:    req.BaseSalary,
		EffectiveDate: effective,
	})
	if err != nil {
		return payroll.SalaryConfigResponse{}, err
	}

	return payroll.SalaryConfigResponse{
		ID:            cfg.ID,
		DivisionID:    cfg.DivisionID,
		BaseSalary:    cfg.BaseSalary,
		EffectiveDate: cfg.EffectiveDate.Format("2006-01-02"),
	}, nil
}

// ========== PAYROLL RUN ==========

type PayrollServiceImpl struct {
	db         *database.DB
	recordRepo payroll.RecordRepository
	ruleRepo   payroll.RuleRepository
	salaryRepo payroll.SalaryConfigRepository
	userRepo   user.UserRepository
}

func NewPayrollService(
	db *database.DB,
	recordRepo payroll.RecordRepository,
	ruleRepo payroll.RuleRepository,
	salaryRepo payroll.SalaryConfigRepository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:         db,
		recordRepo: recordRepo,
		ruleRepo:   ruleRepo,
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
	}
}

// GenerateDraft replaces the period's draft records with a fresh run over
// every active employee. The lock check, delete, and inserts share one
// transaction; the check takes row locks, so a submit landing between the
// check and the delete cannot leave the period with both submitted and
// fresh draft rows.
func (s *PayrollServiceImpl) GenerateDraft(ctx context.Context, req payroll.PeriodRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, payroll.ErrNoEmployees
	}

	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	salaryByDivision := make(map[string]decimal.Decimal, len(salaries))
	for _, cfg := range salaries {
		salaryByDivision[cfg.DivisionID] = cfg.BaseSalary
	}

	type draft struct {
		record        payroll.Record
		missingSalary bool
	}
	drafts := make([]draft, 0, len(users))
	for _, u := range users {
		base := decimal.Zero
		missing := true
		if u.DivisionID != nil {
			if salary, ok := salaryByDivision[*u.DivisionID]; ok {
				base = salary
				missing = false
			}
		}

		result := ApplyRules(base, rules)
		name := u.Name
		drafts = append(drafts, draft{
			record: payroll.Record{
				UserID:          u.ID,
				Month:           req.Month,
				Year:            req.Year,
				BaseSalary:      base,
				TotalDeductions: result.TotalDeduction,
				NetPay:          result.NetPay,
				Status:          payroll.RecordStatusDraft,
				UserName:        &name,
				DivisionName:    u.DivisionName,
			},
			missingSalary: missing,
		})
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		locked, err := s.recordRepo.CountNonDraft(txCtx, req.Month, req.Year)
		if err != nil {
			return err
		}
		if locked > 0 {
			return payroll.ErrPeriodLocked
		}

		if err := s.recordRepo.DeleteDrafts(txCtx, req.Month, req.Year); err != nil {
			return err
		}
		for i := range drafts {
			created, err := s.recordRepo.Create(txCtx, drafts[i].record)
			if err != nil {
				return err
			}
			drafts[i].record.ID = created.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(drafts))
	for _, d := range drafts {
		resp := toRecordResponse(d.record)
		resp.MissingSalaryConfig = d.missingSalary
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *PayrollServiceImpl) ListDraft(ctx context.Context, month, year int) ([]payroll.RecordResponse, error) {
	req := payroll.PeriodRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListByPeriod(ctx, month, year, payroll.RecordStatusDraft)
	if err != nil {
		return nil, err
	}

	return toRecordResponses(records), nil
}

func (s *PayrollServiceImpl) SubmitToFinance(ctx context.Context, req payroll.PeriodRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	moved, err := s.recordRepo.SubmitDrafts(ctx, req.Month, req.Year)
	if err != nil {
		return 0, err
	}
	if moved == 0 {
		return 0, payroll.ErrNothingToSubmit
	}

	return moved, nil
}

func (s *PayrollServiceImpl) ListPendingPayments(ctx context.Context) ([]payroll.RecordResponse, error) {
	records, err := s.recordRepo.ListByStatus(ctx, payroll.RecordStatusSentToFinance)
	if err != nil {
		return nil, err
	}

	return toRecordResponses(records), nil
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.recordRepo.MarkPaid(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return toRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) ListPaymentHistory(ctx context.Context) ([]payroll.RecordResponse, error) {
	records, err := s.recordRepo.ListByStatus(ctx, payroll.RecordStatusPaid)
	if err != nil {
		return nil, err
	}

	return toRecordResponses(records), nil
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *PayrollServiceImpl) ListMyPayslips(ctx context.Context, limit int) ([]payroll.RecordResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 60 {
		limit = 12
	}

	records, err := s.recordRepo.ListPaidByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return toRecordResponses(records), nil
}

func (s *PayrollServiceImpl) GetMyPayslip(ctx context.Context, id string) (payroll.RecordResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	// Another employee's record looks the same as a missing one.
	if rec.UserID != userID {
		return payroll.RecordResponse{}, payroll.ErrRecordNotFound
	}

	return toRecordResponse(rec), nil
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	req := payroll.PeriodRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.SummaryResponse{}, err
	}

	divisions, err := s.recordRepo.SummarizeByDivision(ctx, month, year)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary := payroll.SummaryResponse{
		Month:       month,
		Year:        year,
		TotalNetPay: decimal.Zero,
		Divisions:   divisions,
	}
	for _, d := range divisions {
		summary.EmployeeCount += d.EmployeeCount
		summary.TotalNetPay = summary.TotalNetPay.Add(d.TotalNetPay)
	}

	return summary, nil
}

func toRecordResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:              rec.ID,
		UserID:          rec.UserID,
		UserName:        rec.UserName,
		DivisionName:    rec.DivisionName,
		Month:           rec.Month,
		Year:            rec.Year,
		BaseSalary:      rec.BaseSalary,
		TotalDeductions: rec.TotalDeductions,
		NetPay:          rec.NetPay,
		Status:          string(rec.Status),
		BankName:        rec.BankName,
		BankAccount:     rec.BankAccount,
	}
	if rec.PaidAt != nil {
		paidAt := rec.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}

func toRecordResponses(records []payroll.Record) []payroll.RecordResponse {
	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toRecordResponse(rec))
	}
	return responses
}
