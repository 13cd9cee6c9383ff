package domain

import "errors"

// Error taxonomy shared by the service and transport layers.
// Components wrap these with fmt.Errorf("...: %w", ...) and callers classify with errors.Is.
var (
	ErrValidation          = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrSynthesis           = errors.New("speech synthesis failed")
	ErrInternal            = errors.New("internal error")
	ErrAlreadyExists       = errors.New("already exists")
	ErrStorageDisabled     = errors.New("persistence is not configured")
)
