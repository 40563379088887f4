// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mia-platform/logmw/internal/destination"
)

const (
	// DefaultTimeout bounds a single delivery when no other timeout is set.
	DefaultTimeout = 5 * time.Second

	msgInvalidRecord    = "log record not sent: invalid input"
	msgRemoteRejected   = "log record not sent: remote API error"
	msgTransportFault   = "log record not sent: network error"
	msgDeliveryPanicked = "log record not sent: delivery panicked"
)

// Emitter is the shared logging middleware instance. Build one with New and
// pass it to every caller; it is safe for concurrent use.
type Emitter struct {
	sender  destination.Sender
	trace   TraceSink
	timeout time.Duration

	inFlight sync.WaitGroup
}

// Option customizes an Emitter.
type Option func(*Emitter)

// WithTimeout sets the upper bound of a single delivery. Non positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Emitter) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// New returns an Emitter tracing to trace and delivering records with sender.
func New(sender destination.Sender, trace TraceSink, opts ...Option) *Emitter {
	e := &Emitter{
		sender:  sender,
		trace:   trace,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Emit traces the message locally and, when the input maps to a valid record,
// starts its delivery in the background. An empty stack defaults to frontend
// and an empty level to INFO. Emit does not wait for the delivery and its
// outcome is only reported on the trace sink.
func (e *Emitter) Emit(stack, level, packageName, message string) {
	normalizedLevel := normalizeLevel(level)
	e.traceLocal(stack, normalizedLevel, packageName, message)

	record, err := Prepare(stack, normalizedLevel, packageName, message)
	if err != nil {
		recordsTotal.WithLabelValues(outcomeInvalid).Inc()
		e.trace.Error(msgInvalidRecord, "package", packageName, "error", err)
		return
	}

	e.inFlight.Add(1)
	go e.deliver(record)
}

// Wait blocks until every delivery started so far has completed.
func (e *Emitter) Wait() {
	e.inFlight.Wait()
}

// traceLocal writes the message on the trace channel matching its level.
func (e *Emitter) traceLocal(stack, normalizedLevel, packageName, message string) {
	switch normalizedLevel {
	case LevelError, LevelFatal:
		e.trace.Error(message, "package", packageName, "level", normalizedLevel, "stack", stack)
	case LevelWarn:
		e.trace.Warn(message, "package", packageName)
	case LevelSuccess:
		e.trace.Success(message, "package", packageName)
	default:
		e.trace.Info(message, "package", packageName, "level", normalizedLevel)
	}
}

// deliver sends record once and reports any failure on the trace sink.
func (e *Emitter) deliver(record *destination.Record) {
	defer e.inFlight.Done()
	defer func() {
		if r := recover(); r != nil {
			recordsTotal.WithLabelValues(outcomeFailed).Inc()
			e.trace.Error(msgDeliveryPanicked, "package", record.Package, "error", fmt.Sprint(r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	start := time.Now()
	err := e.sender.Send(ctx, record)
	deliveryDuration.Observe(time.Since(start).Seconds())

	var rejected *destination.RejectedError
	switch {
	case err == nil:
		recordsTotal.WithLabelValues(outcomeDelivered).Inc()
	case errors.As(err, &rejected):
		recordsTotal.WithLabelValues(outcomeRejected).Inc()
		args := []any{"package", record.Package, "status", rejected.StatusCode}
		if rejected.Body != "" {
			args = append(args, "details", rejected.Body)
		}
		e.trace.Error(msgRemoteRejected, args...)
	default:
		recordsTotal.WithLabelValues(outcomeFailed).Inc()
		e.trace.Error(msgTransportFault, "package", record.Package, "error", err)
	}
}
