// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("sending: %w", &TransportError{Err: context.DeadlineExceeded})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "transport fault: context deadline exceeded", transportErr.Error())
}

func TestRejectedError(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		err      *RejectedError
		expected string
	}{
		"with body": {
			err:      &RejectedError{StatusCode: 400, Body: `{"message":"invalid"}`},
			expected: `remote rejected record: 400 Bad Request: {"message":"invalid"}`,
		},
		"without body": {
			err:      &RejectedError{StatusCode: 503},
			expected: "remote rejected record: 503 Service Unavailable",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.err.Error())

			var rejected *RejectedError
			assert.True(t, errors.As(fmt.Errorf("wrapped: %w", tc.err), &rejected))
		})
	}
}

func TestRecordMarshaling(t *testing.T) {
	t.Parallel()

	record := Record{Stack: "frontend", Level: "info", Package: "shortener", Message: "hello"}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"stack":"frontend","level":"info","package":"shortener","message":"hello"}`, string(data))
}
