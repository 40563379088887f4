// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logmw/internal/destination"
)

func TestNewWriterDestination(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)

	testDestination := NewDestination(buffer)

	require.NoError(t, testDestination.Send(t.Context(), &destination.Record{
		Stack:   "frontend",
		Level:   "info",
		Package: "shortener",
		Message: "component mounted",
	}))

	require.NoError(t, testDestination.Send(t.Context(), &destination.Record{
		Stack:   "backend",
		Level:   "error",
		Package: "handler",
		Message: "validation failed",
	}))

	expectedOutput := `Send log record:
	Stack: frontend
	Level: info
	Package: shortener
	Message: component mounted

Send log record:
	Stack: backend
	Level: error
	Package: handler
	Message: validation failed

`

	assert.Equal(t, expectedOutput, buffer.String())
}
