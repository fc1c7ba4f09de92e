package division

import "errors"

var (
	ErrDivisionNotFound   = errors.New("division not found")
	ErrDivisionNameExists = errors.New("division name already exists")
	ErrDivisionNotEmpty   = errors.New("division still has active members")
)
