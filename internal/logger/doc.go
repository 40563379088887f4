// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps hclog behind the Logger interface used across logmw.
// Loggers travel through context helpers, and RequestMiddlewareLogger records
// every HTTP request served by the fiber application.
package logger
