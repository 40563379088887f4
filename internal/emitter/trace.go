// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"github.com/mia-platform/logmw/internal/logger"
)

// TraceSink is the local destination of every emitted line and of the
// diagnostics produced when a record cannot be delivered.
type TraceSink interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// Success writes an informational line marked as a success.
	Success(msg string, args ...any)
}

// SuccessMarkerKey and SuccessMarkerValue mark success lines in the logger output.
const (
	SuccessMarkerKey   = "display"
	SuccessMarkerValue = "success"
)

var _ TraceSink = &loggerSink{}

type loggerSink struct {
	log logger.Logger
}

// NewLoggerSink returns a TraceSink writing to log.
func NewLoggerSink(log logger.Logger) TraceSink {
	return &loggerSink{log: log}
}

func (s *loggerSink) Info(msg string, args ...any) {
	s.log.Info(msg, args...)
}

func (s *loggerSink) Warn(msg string, args ...any) {
	s.log.Warn(msg, args...)
}

func (s *loggerSink) Error(msg string, args ...any) {
	s.log.Error(msg, args...)
}

func (s *loggerSink) Success(msg string, args ...any) {
	s.log.Info(msg, append(args, SuccessMarkerKey, SuccessMarkerValue)...)
}
