package entity

import "errors"

// Standard domain errors
var (
	ErrEmptyQuery        = errors.New("query is required")
	ErrMissingCredential = errors.New("model credential not configured")
	ErrModelUnavailable  = errors.New("model call failed")
	ErrMalformedResponse = errors.New("model returned no usable text")
	ErrSourceUnavailable = errors.New("legal source lookup failed")
	ErrQuotaExhausted    = errors.New("daily query quota exhausted")
	ErrUnknownPlan       = errors.New("unknown plan tier")
	ErrPlanNotAllowed    = errors.New("feature requires a premium plan")
	ErrNotAvailable      = errors.New("feature not yet available")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidRequest    = errors.New("invalid request parameters")
	ErrResourceNotFound  = errors.New("the requested resource was not found")
)
