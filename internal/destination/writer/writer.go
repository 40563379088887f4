// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mia-platform/logmw/internal/destination"
)

var _ destination.Sender = &writerDestination{}

type writerDestination struct {
	writer io.Writer

	lock sync.Mutex
}

func NewDestination(w io.Writer) destination.Sender {
	return &writerDestination{
		writer: w,
	}
}

func (d *writerDestination) Send(_ context.Context, record *destination.Record) error {
	builder := new(strings.Builder)
	builder.WriteString("Send log record:\n")
	builder.WriteString("\tStack: " + record.Stack + "\n")
	builder.WriteString("\tLevel: " + record.Level + "\n")
	builder.WriteString("\tPackage: " + record.Package + "\n")
	builder.WriteString("\tMessage: " + record.Message + "\n")
	builder.WriteString("\n")

	d.lock.Lock()
	defer d.lock.Unlock()
	_, err := fmt.Fprint(d.writer, builder.String())
	return err
}
