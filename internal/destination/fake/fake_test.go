// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/logmw/internal/destination"
)

func TestFakeDestination(t *testing.T) {
	t.Parallel()

	fakeDestination := NewFakeDestination(t)
	assert.Empty(t, fakeDestination.SentRecords())

	record := &destination.Record{
		Stack:   "frontend",
		Level:   "info",
		Package: "shortener",
		Message: "hello",
	}

	assert.NoError(t, fakeDestination.Send(t.Context(), record))
	assert.Equal(t, []*destination.Record{record}, fakeDestination.SentRecords())
}

func TestFailingDestination(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("boom")
	fakeDestination := NewFailingDestination(t, sendErr)

	record := &destination.Record{Stack: "backend", Level: "warn", Package: "p", Message: "m"}
	assert.ErrorIs(t, fakeDestination.Send(t.Context(), record), sendErr)
	assert.Len(t, fakeDestination.SentRecords(), 1)
}
