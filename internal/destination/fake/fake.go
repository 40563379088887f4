// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"sync"
	"testing"

	"github.com/mia-platform/logmw/internal/destination"
)

var _ destination.Sender = &FakeDestination{}

// FakeDestination records every Send call and returns Err, if set.
type FakeDestination struct {
	tb testing.TB

	Err error

	lock        sync.Mutex
	sentRecords []*destination.Record
}

func NewFakeDestination(tb testing.TB) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb}
}

// NewFailingDestination returns a FakeDestination whose Send always returns err.
func NewFailingDestination(tb testing.TB, err error) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb, Err: err}
}

func (f *FakeDestination) Send(_ context.Context, record *destination.Record) error {
	f.tb.Helper()

	f.lock.Lock()
	defer f.lock.Unlock()
	f.sentRecords = append(f.sentRecords, record)
	return f.Err
}

// SentRecords returns a copy of the records received so far, failed ones included.
func (f *FakeDestination) SentRecords() []*destination.Record {
	f.lock.Lock()
	defer f.lock.Unlock()

	records := make([]*destination.Record, len(f.sentRecords))
	copy(records, f.sentRecords)
	return records
}
