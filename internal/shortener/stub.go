// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const generatedCodeLength = 7

var _ Shortener = &Stub{}

// Stub builds short URLs from a base URL without storing them.
type Stub struct {
	baseURL string
	now     func() time.Time
}

// NewStub returns a Stub producing short URLs under baseURL.
func NewStub(baseURL string) *Stub {
	return &Stub{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Shorten implements Shortener. The preferred shortcode is used when present,
// otherwise a random one is generated.
func (s *Stub) Shorten(_ context.Context, request Request) ([]Result, error) {
	now := s.now()
	results := make([]Result, 0, len(request.URLs))
	for _, entry := range request.URLs {
		code := entry.Shortcode
		if code == "" {
			code = strings.ReplaceAll(uuid.NewString(), "-", "")[:generatedCodeLength]
		}

		results = append(results, Result{
			Original: entry.LongURL,
			Short:    s.baseURL + "/" + code,
			Expiry:   now.Add(validity(entry)),
		})
	}

	return results, nil
}
