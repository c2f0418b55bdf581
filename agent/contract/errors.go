package contract

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrIncompleteProfile = errors.New("profile is missing city or business type")
	ErrAgentInvoke       = errors.New("agent invoke failed")
	ErrSchemaViolation   = errors.New("agent reply violates pack schema")
	ErrLookupFailed      = errors.New("location lookup failed")
)
