package spritegen

import (
	"errors"
	"testing"
)

func TestIsValidationError(t *testing.T) {
	err := errors.New("some error")
	if IsValidationError(err) {
		t.Log("custom error type validationError is wrongly recognized")
		t.Fail()
	}

	err = NewValidationError("width must be positive, got %d", -1)
	if !IsValidationError(err) {
		t.Log("custom error type validationError is not recognized")
		t.Fail()
	}

	err = Wrap(err, "asset %q", "faust.png")
	if !IsValidationError(err) {
		t.Log("wrapped validationError is not recognized")
		t.Fail()
	}
	if err.Error() != `asset "faust.png": width must be positive, got -1` {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestIsOutOfBounds(t *testing.T) {
	err := Wrap(NewOutOfBounds("polygon at %v", 50.0), "frame %d", 3)
	if !IsOutOfBounds(err) {
		t.Errorf("wrapped out-of-bounds error not recognized")
	}
	if IsValidationError(err) {
		t.Errorf("out-of-bounds error recognized as validation error")
	}
	if IsBlankFrame(err) {
		t.Errorf("out-of-bounds error recognized as blank frame")
	}
}
