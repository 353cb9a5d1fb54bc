package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so
// callers can branch with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrConstraintViolation = errors.New("constraint violation")
)

var (
	ErrAccountNotFound           = fmt.Errorf("account %w", ErrNotFound)
	ErrDemandNotFound            = fmt.Errorf("demand %w", ErrNotFound)
	ErrReferencedAccountNotFound = fmt.Errorf("referenced account %w", ErrNotFound)

	ErrInvalidID           = fmt.Errorf("%w: id is required", ErrValidation)
	ErrMissingActor        = fmt.Errorf("%w: acting identity is required", ErrValidation)
	ErrInvalidDate         = fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrValidation)
	ErrInvalidProbability  = fmt.Errorf("%w: probability must be one of 50, 75, 90, 100", ErrValidation)
	ErrInvalidSearchEntity = fmt.Errorf("%w: entity must be accounts or demands", ErrValidation)
	ErrInvalidCloneCount   = fmt.Errorf("%w: clone count must be at least 1", ErrValidation)

	ErrAccountHasDemands = fmt.Errorf("%w: account has linked demands", ErrConstraintViolation)
)
