// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the HTTP server of logmw.
// It sets up the Fiber application with request logging and CORS, exposes the
// health, readiness and Prometheus metrics routes and lets callers register
// their own JSON routes.
package server
