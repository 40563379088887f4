// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/mia-platform/logmw/internal/destination"
	"github.com/mia-platform/logmw/internal/info"
)

const (
	// maxErrorBodySize caps how much of a rejected response body ends up in the error.
	maxErrorBodySize = 4096
)

var _ destination.Sender = &remoteDestination{}

// remoteDestination implements destination.Sender for the remote logging API.
type remoteDestination struct {
	endpoint string
	client   *http.Client
}

// NewDestination returns a new destination.Sender configured to POST records
// to the remote logging API. Its configuration is read from environment variables.
func NewDestination(ctx context.Context) (destination.Sender, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return newRemoteDestination(ctx, cfg), nil
}

func newRemoteDestination(ctx context.Context, cfg *config) *remoteDestination {
	return &remoteDestination{
		endpoint: cfg.Endpoint,
		client: &http.Client{
			Transport: newTransport(ctx, cfg),
			Timeout:   cfg.Timeout,
		},
	}
}

// Send implements destination.Sender.
func (d *remoteDestination) Send(ctx context.Context, record *destination.Record) error {
	body, err := json.Marshal(record)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", info.UserAgent())

	resp, err := d.client.Do(request)
	if err != nil {
		return &destination.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		rejected := &destination.RejectedError{StatusCode: resp.StatusCode}
		if respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)); err == nil {
			rejected.Body = strings.TrimSpace(string(respBody))
		}
		return rejected
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
