package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Profile errors
	ErrMsgAlreadyExists   = "profile already exists"
	ErrMsgProfileNotFound = "profile not found"

	// Crate errors
	ErrMsgBadIndex       = "crate index out of range"
	ErrMsgAlreadyClaimed = "crate already claimed"

	// Token errors
	ErrMsgTokenNotFound = "token not found"

	// Access errors
	ErrMsgUnauthorized = "caller is not authorized"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrAlreadyExists   = errors.New(ErrMsgAlreadyExists)
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	ErrBadIndex       = errors.New(ErrMsgBadIndex)
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	ErrTokenNotFound = errors.New(ErrMsgTokenNotFound)

	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
