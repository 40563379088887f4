// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package emitter implements the logging middleware shared by every logmw caller.
//
// An Emitter accepts a (stack, level, package, message) tuple, writes it to the
// local TraceSink, maps it to the vocabulary accepted by the remote logging API
// and hands the resulting record to a destination.Sender in the background.
// Emit never returns an error and never waits for the delivery: every failure,
// from an invalid input to a rejected request, ends up as one error line on the
// TraceSink.
package emitter
