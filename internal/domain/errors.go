package domain

import "errors"

// Validation errors are user-correctable and surface inline.
var (
	ErrNoSportsSelected    = errors.New("at least one sport preference is required")
	ErrFrequencyOutOfRange = errors.New("weekly frequency must be between 0 and 7")
	ErrHeightOutOfRange    = errors.New("height must be between 100 and 230 cm")
	ErrWeightOutOfRange    = errors.New("weight must be between 30 and 200 kg")
	ErrEmptyMessage        = errors.New("message must not be empty")
)

// Not-found errors. A missing preferences row is a normal state for a
// fresh account and drives the onboarding branch, not a failure path.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrCommunityNotFound   = errors.New("community not found")
)

// Conflict errors.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrAlreadyMember = errors.New("already a member of this community")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
