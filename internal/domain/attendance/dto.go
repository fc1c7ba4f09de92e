package attendance

import (
	"context"

	"github.com/hris-system/hris-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateConfigRequest struct {
	MaxClockIn      string  `json:"max_clock_in"`
	MinClockOut     string  `json:"min_clock_out"`
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	RadiusMeters    int     `json:"radius_meters"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.MaxClockIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "max_clock_in", Message: "must be a time in HH:MM:SS format"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.MinClockOut); !ok {
		errs = append(errs, validator.ValidationError{Field: "min_clock_out", Message: "must be a time in HH:MM:SS format"})
	}
	if !validator.IsValidLatitude(r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{Field: "office_latitude", Message: "must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{Field: "office_longitude", Message: "must be between -180 and 180"})
	}
	if r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigResponse struct {
	ID              string  `json:"id"`
	MaxClockIn      string  `json:"max_clock_in"`
	MinClockOut     string  `json:"min_clock_out"`
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	RadiusMeters    int     `json:"radius_meters"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	UserName          *string  `json:"user_name,omitempty"`
	DivisionName      *string  `json:"division_name,omitempty"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time"`
	ClockOutTime      *string  `json:"clock_out_time"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	Status            string   `json:"status"`
	EarlyLeave        bool     `json:"early_leave"`
	DistanceMeters    *float64 `json:"distance_meters,omitempty"`
}

type ConfigService interface {
	GetActive(ctx context.Context) (ConfigResponse, error)
	// Update activates a new config version, retiring the previous one.
	Update(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
	// History lists config versions, newest first.
	History(ctx context.Context, limit int) ([]ConfigResponse, error)
}

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	GetToday(ctx context.Context) (*AttendanceResponse, error)
	GetMyHistory(ctx context.Context, limit int) ([]AttendanceResponse, error)
	// ListByDate is the HR monitoring view.
	ListByDate(ctx context.Context, date string) ([]AttendanceResponse, error)
}
