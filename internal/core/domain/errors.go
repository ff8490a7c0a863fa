package domain

import "errors"

// Validation and identity-state errors
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotEligible       = errors.New("student not on the eligibility roster")
	ErrAlreadyRegistered = errors.New("student already registered")
	ErrRecordNotFound    = errors.New("student record not found")
)

// Authentication errors
var (
	ErrInvalidCredential = errors.New("unknown access credential")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidSecret     = errors.New("recovery secret does not match")
)

// Ballot-gating errors
var (
	ErrVotingClosed = errors.New("voting period is not open")
	ErrAlreadyVoted = errors.New("ballot already cast for this voter")
)
