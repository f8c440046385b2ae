// Package types defines the entity types, patch types, configuration, and
// standard errors for the casetrack supervision-tracking system.
package types

import (
	"errors"
	"fmt"
)

// Store operation errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrRegistryClosed = errors.New("registry is closed")
	ErrAlreadyOpen    = errors.New("registry is already open")
)

// ErrValidation is the base error for boundary validation failures. Every
// field-level validation error wraps it, so callers can classify with
// errors.Is(err, ErrValidation) and still match the specific failure.
var ErrValidation = errors.New("validation failed")

// Case report validation errors.
var (
	ErrTitleRequired      = fmt.Errorf("%w: title is required", ErrValidation)
	ErrCaseTypeRequired   = fmt.Errorf("%w: case type is required", ErrValidation)
	ErrCaseTypeInvalid    = fmt.Errorf("%w: unknown case type", ErrValidation)
	ErrOutcomesRequired   = fmt.Errorf("%w: outcomes are required", ErrValidation)
	ErrInterventionsEmpty = fmt.Errorf("%w: at least one intervention is required", ErrValidation)
	ErrStatusInvalid      = fmt.Errorf("%w: unknown status", ErrValidation)
)

// Feedback validation errors.
var (
	ErrContentRequired = fmt.Errorf("%w: content is required", ErrValidation)
	ErrRoleInvalid     = fmt.Errorf("%w: unknown user role", ErrValidation)
)

// Document validation errors.
var (
	ErrFilenameRequired = fmt.Errorf("%w: filename is required", ErrValidation)
	ErrCategoryRequired = fmt.Errorf("%w: category is required", ErrValidation)
	ErrFileSizeNegative = fmt.Errorf("%w: file size must not be negative", ErrValidation)
)

// Meeting validation errors.
var (
	ErrScheduledDateRequired = fmt.Errorf("%w: scheduled date is required", ErrValidation)
	ErrLocationRequired      = fmt.Errorf("%w: location is required", ErrValidation)
	ErrTriggerCaseRequired   = fmt.Errorf("%w: trigger case number is required", ErrValidation)
)

// ErrNotOwner signals the ownership rule: a feedback entry may only be
// edited by its author. This is an affordance, not a security boundary.
var ErrNotOwner = errors.New("feedback can only be edited by its author")
