// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package api registers the logmw HTTP routes: the log relay used by browser
// clients and the demo shortener endpoints.
package api
