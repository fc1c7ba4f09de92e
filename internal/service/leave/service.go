package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/division"
	"github.com/hris-system/hris-backend-go/internal/domain/leave"
	"github.com/hris-system/hris-backend-go/internal/domain/user"
	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

// ========== CONFIG ==========

type ConfigServiceImpl struct {
	configRepo   leave.ConfigRepository
	divisionRepo division.DivisionRepository
}

func NewConfigService(
	configRepo leave.ConfigRepository,
	divisionRepo division.DivisionRepository,
) leave.ConfigService {
	return &ConfigServiceImpl{
		configRepo:   configRepo,
		divisionRepo: divisionRepo,
	}
}

func (s *ConfigServiceImpl) ListByYear(ctx context.Context, year int) ([]leave.ConfigResponse, error) {
	if !validator.IsValidYear(year) {
		return nil, validator.ValidationErrors{
			{Field: "year", Message: "must be a valid year"},
		}
	}

	divisions, err := s.divisionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	configs, err := s.configRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	byDivision := make(map[string]leave.Config, len(configs))
	for _, cfg := range configs {
		byDivision[cfg.DivisionID] = cfg
	}

	// Divisions without a config for the year show the default quota.
	responses := make([]leave.ConfigResponse, 0, len(divisions))
	for _, d := range divisions {
		name := d.Name
		resp := leave.ConfigResponse{
			DivisionID:      d.ID,
			DivisionName:    &name,
			AnnualQuotaDays: leave.DefaultAnnualQuotaDays,
			Year:            year,
		}
		if cfg, ok := byDivision[d.ID]; ok {
			resp.ID = cfg.ID
			resp.AnnualQuotaDays = cfg.AnnualQuotaDays
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (s *ConfigServiceImpl) Upsert(ctx context.Context, req leave.UpsertConfigRequest) (leave.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ConfigResponse{}, err
	}

	if _, err := s.divisionRepo.GetByID(ctx, req.DivisionID); err != nil {
		return leave.ConfigResponse{}, err
	}

	cfg, err := s.configRepo.Upsert(ctx, leave.Config{
		DivisionID:      req.DivisionID,
		AnnualQuotaDays: req.AnnualQuotaDays,
		Year:            req.Year,
		Status:          leave.ConfigStatusActive,
	})
	if err != nil {
		return leave.ConfigResponse{}, err
	}

	return leave.ConfigResponse{
		ID:              cfg.ID,
		DivisionID:      cfg.DivisionID,
		AnnualQuotaDays: cfg.AnnualQuotaDays,
		Year:            cfg.Year,
	}, nil
}

// ========== LEAVE REQUESTS ==========

type LeaveServiceImpl struct {
	requestRepo leave.RequestRepository
	configRepo  leave.ConfigRepository
	userRepo    user.UserRepository
}

func NewLeaveService(
	requestRepo leave.RequestRepository,
	configRepo leave.ConfigRepository,
	userRepo user.UserRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		requestRepo: requestRepo,
		configRepo:  configRepo,
		userRepo:    userRepo,
	}
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

func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlap, err := s.requestRepo.HasOverlap(ctx, userID, start, end)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if overlap {
		return leave.RequestResponse{}, leave.ErrOverlappingRequest
	}

	created, err := s.requestRepo.Create(ctx, leave.Request{
		UserID:    userID,
		Type:      leave.RequestType(req.Type),
		StartDate: start,
		EndDate:   end,
		TotalDays: leave.DaysInclusive(start, end),
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return toRequestResponse(created), nil
}

// GetMyBalance derives the balance on demand: the division quota for the
// year minus approved annual leave days. Nothing is stored, so the number
// is always consistent with the request table.
func (s *LeaveServiceImpl) GetMyBalance(ctx context.Context, year int) (leave.BalanceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	if year == 0 {
		year = time.Now().Year()
	}
	if !validator.IsValidYear(year) {
		return leave.BalanceResponse{}, validator.ValidationErrors{
			{Field: "year", Message: "must be a valid year"},
		}
	}

	balance, err := s.balanceFor(ctx, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.BalanceResponse{
		Year:            balance.Year,
		AnnualQuotaDays: balance.AnnualQuotaDays,
		UsedDays:        balance.UsedDays,
		RemainingDays:   balance.RemainingDays,
	}, nil
}

func (s *LeaveServiceImpl) balanceFor(ctx context.Context, userID string, year int) (leave.Balance, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return leave.Balance{}, err
	}

	quota := leave.DefaultAnnualQuotaDays
	if u.DivisionID != nil {
		cfg, err := s.configRepo.GetByDivisionAndYear(ctx, *u.DivisionID, year)
		if err == nil {
			quota = cfg.AnnualQuotaDays
		} else if !errors.Is(err, leave.ErrConfigNotFound) {
			return leave.Balance{}, err
		}
	}

	used, err := s.requestRepo.SumApprovedAnnualDays(ctx, userID, year)
	if err != nil {
		return leave.Balance{}, err
	}

	return leave.Balance{
		UserID:          userID,
		Year:            year,
		AnnualQuotaDays: quota,
		UsedDays:        used,
		RemainingDays:   quota - used,
	}, nil
}

func (s *LeaveServiceImpl) GetMyHistory(ctx context.Context) ([]leave.RequestResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toRequestResponses(requests), nil
}

func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return toRequestResponses(requests), nil
}

func (s *LeaveServiceImpl) Process(ctx context.Context, req leave.ProcessRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	processorID, err := getUserIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.RequestStatus(req.Status)
	request.ProcessedBy = &processorID
	request.ProcessedAt = &now
	if req.Note != "" {
		request.ProcessNote = &req.Note
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, err
	}

	resp := toRequestResponse(request)

	// Over-quota approval is allowed; HR sees the flag and decides.
	if request.Status == leave.StatusApproved && request.Type == leave.TypeAnnual {
		balance, err := s.balanceFor(ctx, request.UserID, request.StartDate.Year())
		if err != nil {
			return leave.RequestResponse{}, err
		}
		resp.OverQuota = balance.RemainingDays < 0
	}

	return resp, nil
}

func toRequestResponse(req leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:           req.ID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		DivisionName: req.DivisionName,
		Type:         string(req.Type),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		TotalDays:    req.TotalDays,
		Reason:       req.Reason,
		Status:       string(req.Status),
		ProcessNote:  req.ProcessNote,
	}
	if req.ProcessedAt != nil {
		v := req.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	return resp
}

func toRequestResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toRequestResponse(req))
	}
	return responses
}
