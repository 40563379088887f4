// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package remote implements the destination that POSTs log records as JSON to
// the remote logging API. The endpoint, the optional credentials and the
// transport timeout are read from LOG_API_* environment variables.
package remote
