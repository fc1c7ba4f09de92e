package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hris-system/hris-backend-go/internal/domain/attendance"
	"github.com/hris-system/hris-backend-go/internal/pkg/geo"
	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

// ========== CONFIG ==========

type ConfigServiceImpl struct {
	configRepo attendance.ConfigRepository
}

func NewConfigService(configRepo attendance.ConfigRepository) attendance.ConfigService {
	return &ConfigServiceImpl{configRepo: configRepo}
}

func (s *ConfigServiceImpl) GetActive(ctx context.Context) (attendance.ConfigResponse, error) {
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, attendance.ErrNoActiveConfig) {
			return toConfigResponse(attendance.DefaultConfig()), nil
		}
		return attendance.ConfigResponse{}, err
	}

	return toConfigResponse(cfg), nil
}

func (s *ConfigServiceImpl) Update(ctx context.Context, req attendance.UpdateConfigRequest) (attendance.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ConfigResponse{}, err
	}

	cfg, err := s.configRepo.Activate(ctx, attendance.Config{
		MaxClockIn:      req.MaxClockIn,
		MinClockOut:     req.MinClockOut,
		OfficeLatitude:  req.OfficeLatitude,
		OfficeLongitude: req.OfficeLongitude,
		RadiusMeters:    req.RadiusMeters,
		Status:          attendance.ConfigStatusActive,
	})
	if err != nil {
		return attendance.ConfigResponse{}, err
	}

	return toConfigResponse(cfg), nil
}

func (s *ConfigServiceImpl) History(ctx context.Context, limit int) ([]attendance.ConfigResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	configs, err := s.configRepo.History(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.ConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, toConfigResponse(cfg))
	}

	return responses, nil
}

func toConfigResponse(cfg attendance.Config) attendance.ConfigResponse {
	resp := attendance.ConfigResponse{
		ID:              cfg.ID,
		MaxClockIn:      cfg.MaxClockIn,
		MinClockOut:     cfg.MinClockOut,
		OfficeLatitude:  cfg.OfficeLatitude,
		OfficeLongitude: cfg.OfficeLongitude,
		RadiusMeters:    cfg.RadiusMeters,
		Status:          string(cfg.Status),
	}
	if !cfg.CreatedAt.IsZero() {
		resp.CreatedAt = cfg.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// ========== ATTENDANCE ==========

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	configRepo     attendance.ConfigRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	configRepo attendance.ConfigRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		configRepo:     configRepo,
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

// ClockIn records the first clock-in of the day. The submitted coordinates
// are re-verified against the office geofence on the server; the client's
// own distance math is never trusted.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Clocking requires an explicitly configured office. No default here.
	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	verdict := geo.Evaluate(req.Latitude, req.Longitude, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters)
	if !verdict.WithinRadius {
		return attendance.AttendanceResponse{}, fmt.Errorf("%w: %.0fm from office, allowed %dm",
			attendance.ErrOutsideRadius, verdict.DistanceMeters, cfg.RadiusMeters)
	}

	now := time.Now()
	today := dateOnly(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil && existing.ClockIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	att := attendance.Attendance{
		UserID:           userID,
		Date:             today,
		ClockIn:          &now,
		ClockInLatitude:  &req.Latitude,
		ClockInLongitude: &req.Longitude,
		Status:           ResolveClockInStatus(now, cfg.MaxClockIn),
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := toAttendanceResponse(created)
	resp.DistanceMeters = &verdict.DistanceMeters
	return resp, nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg, err := s.configRepo.GetActive(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	verdict := geo.Evaluate(req.Latitude, req.Longitude, cfg.OfficeLatitude, cfg.OfficeLongitude, cfg.RadiusMeters)
	if !verdict.WithinRadius {
		return attendance.AttendanceResponse{}, fmt.Errorf("%w: %.0fm from office, allowed %dm",
			attendance.ErrOutsideRadius, verdict.DistanceMeters, cfg.RadiusMeters)
	}

	now := time.Now()
	today := dateOnly(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil || existing.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if existing.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	existing.ClockOut = &now
	existing.ClockOutLatitude = &req.Latitude
	existing.ClockOutLongitude = &req.Longitude
	existing.EarlyLeave = IsEarlyLeave(now, cfg.MinClockOut)

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	resp := toAttendanceResponse(*existing)
	resp.DistanceMeters = &verdict.DistanceMeters
	return resp, nil
}

func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, dateOnly(time.Now()))
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}

	resp := toAttendanceResponse(*att)
	return &resp, nil
}

func (s *AttendanceServiceImpl) GetMyHistory(ctx context.Context, limit int) ([]attendance.AttendanceResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 31
	}

	records, err := s.attendanceRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day := dateOnly(time.Now())
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return nil, validator.ValidationErrors{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}
		}
		day = parsed
	}

	records, err := s.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                att.ID,
		UserID:            att.UserID,
		UserName:          att.UserName,
		DivisionName:      att.DivisionName,
		Date:              att.Date.Format("2006-01-02"),
		ClockInLatitude:   att.ClockInLatitude,
		ClockInLongitude:  att.ClockInLongitude,
		ClockOutLatitude:  att.ClockOutLatitude,
		ClockOutLongitude: att.ClockOutLongitude,
		Status:            string(att.Status),
		EarlyLeave:        att.EarlyLeave,
	}
	if att.ClockIn != nil {
		v := att.ClockIn.Format(time.RFC3339)
		resp.ClockInTime = &v
	}
	if att.ClockOut != nil {
		v := att.ClockOut.Format(time.RFC3339)
		resp.ClockOutTime = &v
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toAttendanceResponse(att))
	}
	return responses
}
