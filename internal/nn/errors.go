package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidShape        = errors.New("tensor does not match the 2-2-1 topology")
	ErrMissingForwardCache = errors.New("backward called without a matching forward pass")
)

// ShapeError provides detailed information about shape validation failures.
type ShapeError struct {
	Tensor string // Tensor name (e.g., "W1", "input")
	Want   string // Expected shape, e.g. "2x2"
	Got    string // Actual shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("invalid shape: tensor %q: want %s, got %s", e.Tensor, e.Want, e.Got)
}

// Unwrap makes ShapeError match ErrInvalidShape via errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}

// shapeErrorf builds a ShapeError for a tensor with the given expected and
// actual dimensions.
func shapeErrorf(tensor string, want string, got string) error {
	return &ShapeError{Tensor: tensor, Want: want, Got: got}
}
