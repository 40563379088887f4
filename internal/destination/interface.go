// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"context"
)

// Sender delivers a single log record. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, record *Record) error
}

// Record is the payload accepted by the remote logging API.
type Record struct {
	Stack   string `json:"stack"`
	Level   string `json:"level"`
	Package string `json:"package"`
	Message string `json:"message"`
}
