// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is a single URL to shorten. Validity is expressed in minutes.
type Entry struct {
	LongURL   string      `json:"longUrl"`
	Validity  json.Number `json:"validity,omitempty"`
	Shortcode string      `json:"shortcode,omitempty"`
}

// Request groups the URLs shortened together.
type Request struct {
	URLs []Entry `json:"urls"`
}

// Result is a shortened URL.
type Result struct {
	Original string    `json:"original"`
	Short    string    `json:"short"`
	Expiry   time.Time `json:"expiry"`
}

// Click is a single visit of a short URL.
type Click struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Source    string    `json:"source" yaml:"source"`
	Location  string    `json:"location" yaml:"location"`
}

// Stat holds the statistics of a short URL.
type Stat struct {
	ID        string    `json:"id" yaml:"id"`
	ShortURL  string    `json:"shortUrl" yaml:"shortUrl"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
	Clicks    []Click   `json:"clicks" yaml:"clicks"`
}

// Shortener turns a validated request into short URLs.
type Shortener interface {
	Shorten(ctx context.Context, request Request) ([]Result, error)
}

// StatsFetcher returns the statistics of the known short URLs.
type StatsFetcher interface {
	FetchStats(ctx context.Context) ([]Stat, error)
}

// Emitter is the logging middleware used to report what the service does.
type Emitter interface {
	Emit(stack, level, packageName, message string)
}
