// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package writer implements a destination that prints records to an io.Writer
// instead of sending them to the remote logging API.
package writer
