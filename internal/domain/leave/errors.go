package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("leave request has already been processed")
	ErrOverlappingRequest  = errors.New("an overlapping leave request already exists")
	ErrConfigNotFound      = errors.New("leave configuration not found")
)
