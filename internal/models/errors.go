package models

import "errors"

var (
	// ErrForbidden is returned when the acting role lacks the capability
	// for the attempted operation.
	ErrForbidden = errors.New("role is not permitted to perform this action")

	// ErrInvalidTransition is returned when an item status change violates
	// the workflow state machine.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
)
