// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"errors"
)

var (
	ErrInvalidStack       = errors.New("invalid stack")
	ErrInvalidLevel       = errors.New("invalid level")
	ErrMissingPackageName = errors.New("package name cannot be empty")
	ErrMissingMessage     = errors.New("message cannot be empty")
)

// fieldError attaches the offending value to one of the validation sentinels.
type fieldError struct {
	err   error
	value string
}

func (e *fieldError) Error() string {
	return e.err.Error() + ": " + `"` + e.value + `"`
}

func (e *fieldError) Unwrap() error {
	return e.err
}
