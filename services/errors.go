package services

import "errors"

// Sentinel errors for the failure kinds the lifecycle services can raise.
// Callers branch with errors.Is; the transport layer maps each kind to a
// distinct response status. Wrapped messages carry the offending id or field.
var (
	ErrIllegalArgument = errors.New("illegal argument")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrAccessDenied    = errors.New("access denied")
)
