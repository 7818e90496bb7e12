package services

import "errors"

// Service layer errors. Handlers map these to status codes.

// ===== Membership Errors =====
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidTier      = errors.New("invalid tier")
	ErrTierNotHigher    = errors.New("new tier must be higher than the current tier")
	ErrTierChanged      = errors.New("tier changed concurrently, reload and try again")
	ErrUpgradesDisabled = errors.New("upgrades are not enabled")
)

// ===== Store Errors =====
var (
	// ErrStoreUnavailable wraps any failure talking to a record store. It is retryable.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ===== Identity Errors =====
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)
