// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logmw/internal/destination/fake"
	"github.com/mia-platform/logmw/internal/logger"
)

func TestLoggerSink(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	log := logger.NewLogger(buffer)
	log.SetLevel(logger.TRACE)

	emitter := New(fake.NewFakeDestination(t), NewLoggerSink(log))
	emitter.Emit("", "debug", "pkg", "debug line")
	emitter.Emit("", "warn", "pkg", "warn line")
	emitter.Emit("backend", "fatal", "pkg", "fatal line")
	emitter.Emit("", "success", "pkg", "success line")
	emitter.Wait()

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 4)

	expected := []struct {
		level   string
		message string
		success bool
	}{
		{level: "info", message: "debug line"},
		{level: "warn", message: "warn line"},
		{level: "error", message: "fatal line"},
		{level: "info", message: "success line", success: true},
	}

	for i, line := range lines {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		assert.Equal(t, expected[i].level, decoded["@level"])
		assert.Equal(t, expected[i].message, decoded["@message"])
		assert.Equal(t, "pkg", decoded["package"])
		if expected[i].success {
			assert.Equal(t, SuccessMarkerValue, decoded[SuccessMarkerKey])
		} else {
			assert.NotContains(t, decoded, SuccessMarkerKey)
		}
	}
}
