package attendance

import "errors"

// Attendance domain errors
var (
	// Clock event errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrOutsideRadius     = errors.New("you are outside the allowed office radius")

	// Config errors
	ErrNoActiveConfig = errors.New("attendance configuration has not been set up")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
