package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure, with no infrastructure dependency.

var (
	// Validation errors, rejected before events reach the engine.
	ErrInvalidGrams      = errors.New("grams must be between 1 and 1000")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidGoalOrder  = errors.New("goal tiers must satisfy minimum < standard < target")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")

	// Record errors
	ErrRecordNotFound = errors.New("record not found")

	// Engine errors
	ErrUnknownRecordType = errors.New("unknown record type")
)
