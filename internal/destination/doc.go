// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package destination defines the remote log record and the Sender contract
// implemented by every place a record can be delivered to.
// It also holds the delivery error types shared by all the implementations.
package destination
