package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrInvalidPlan         = errors.New("invalid plan type")
	ErrProviderNotEnabled  = errors.New("provider not configured")
	ErrStateMismatch       = errors.New("oauth state mismatch")
	ErrMissingSecretKey    = errors.New("payment secret key not configured")
	ErrPriceNotConfigured  = errors.New("price ID not configured")
	ErrAuthenticationFault = errors.New("authentication failed")
)
