// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package shortener contains the demo URL shortener that calls the logging
// middleware. Shortening and statistics are stubs behind the Shortener and
// StatsFetcher interfaces: nothing is stored and no click is counted.
package shortener
