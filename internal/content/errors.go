package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidContent is matched by every ValidationError.
	ErrInvalidContent = errors.New("invalid content")

	// ErrStepNotFound is returned when a step ordinal has no step or no detail.
	ErrStepNotFound = errors.New("step not found")
)

// ValidationError lists every problem found in a content document.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("invalid content: %s", e.Problems[0])
	}
	return fmt.Sprintf("invalid content: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is match ErrInvalidContent.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidContent
}
