package resolver

import (
	"errors"
	"fmt"
)

// ErrMissingUnit is matched by every MissingUnitError.
var ErrMissingUnit = errors.New("missing unit")

// MissingUnitError reports a hook unit whose source file does not exist.
type MissingUnitError struct {
	Unit string
	Path string
	Err  error
}

func (e *MissingUnitError) Error() string {
	return fmt.Sprintf("missing unit %s: %s does not exist", e.Unit, e.Path)
}

func (e *MissingUnitError) Unwrap() error {
	return e.Err
}

func (e *MissingUnitError) Is(target error) bool {
	return target == ErrMissingUnit
}
