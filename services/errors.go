package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the quote services. Handlers map these onto
// HTTP status codes.
var (
	// ErrValidation wraps any input that fails structural validation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a quote or line item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTemplateNotFound is returned when instantiation references a
	// template id that does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)

// InvalidTransitionError is returned when a status change is not permitted
// by the lifecycle rules.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// ComputationFault signals that a pricing calculation produced an unusable
// value. The quote is still saved with clamped totals; the fault travels back
// to the caller so the condition is surfaced rather than silently absorbed.
type ComputationFault struct {
	Reason string
	Total  float64
}

func (e *ComputationFault) Error() string {
	return fmt.Sprintf("pricing computation fault: %s (got %.2f)", e.Reason, e.Total)
}

// validationErr wraps err so that errors.Is(err, ErrValidation) holds while
// keeping the underlying message.
func validationErr(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
