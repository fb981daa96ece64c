package jobs

import "errors"

// ErrInvalidInput matches every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a malformed recommendation request.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid request: " + e.Reason
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
