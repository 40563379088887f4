// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"errors"
	"strings"

	"github.com/mia-platform/logmw/internal/destination"
)

// Prepare maps the caller input to the record accepted by the remote API.
// Every check is run and the failures are joined in the returned error; no
// record is built unless all of them pass.
func Prepare(stack, level, packageName, message string) (*destination.Record, error) {
	mappedStack := apiStack(stack)
	mappedLevel := apiLevel(normalizeLevel(level))

	var errs []error
	if _, ok := allowedStacks[mappedStack]; !ok {
		errs = append(errs, &fieldError{err: ErrInvalidStack, value: mappedStack})
	}
	if _, ok := allowedLevels[mappedLevel]; !ok {
		errs = append(errs, &fieldError{err: ErrInvalidLevel, value: mappedLevel})
	}
	if strings.TrimSpace(packageName) == "" {
		errs = append(errs, ErrMissingPackageName)
	}
	if strings.TrimSpace(message) == "" {
		errs = append(errs, ErrMissingMessage)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &destination.Record{
		Stack:   mappedStack,
		Level:   mappedLevel,
		Package: packageName,
		Message: message,
	}, nil
}
