package spritegen

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates an error of from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error, or any error it wraps,
// is a validation error.
func IsValidationError(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

type outOfBounds struct {
	message string
}

func (o outOfBounds) Error() string {
	return o.message
}

// NewOutOfBounds creates an error for a shape that was placed outside of
// the frame it was drawn on.
func NewOutOfBounds(msg string, v ...interface{}) error {
	return outOfBounds{"Out of bounds: " + fmt.Sprintf(msg, v...)}
}

// IsOutOfBounds checks if the given error, or any error it wraps,
// reports a shape outside of its frame.
func IsOutOfBounds(err error) bool {
	var o outOfBounds
	return errors.As(err, &o)
}

type blankFrame struct {
	message string
}

func (b blankFrame) Error() string {
	return b.message
}

// NewBlankFrame creates an error for a rendered frame without any visible
// pixels.
func NewBlankFrame(msg string, v ...interface{}) error {
	return blankFrame{"Blank frame: " + fmt.Sprintf(msg, v...)}
}

// IsBlankFrame checks if the given error, or any error it wraps,
// reports a blank frame.
func IsBlankFrame(err error) bool {
	var b blankFrame
	return errors.As(err, &b)
}
