package viewmodel

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by construction errors caused by a missing argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ConstructionError reports that a view model could not be built.
// Callers must not use a partially constructed view model.
type ConstructionError struct {
	Param   string
	Message string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument).
func (*ConstructionError) Unwrap() error {
	return ErrInvalidArgument
}
