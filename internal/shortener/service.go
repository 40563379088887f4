// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"context"
	"fmt"
)

// Package names reported to the logging middleware.
const (
	ShortenerPackage  = "shortener"
	StatsPackage      = "statistics"
	ValidationPackage = "validation"

	stack = "backend"
)

// Service validates requests and reports every step through the Emitter.
type Service struct {
	shortener Shortener
	stats     StatsFetcher
	emitter   Emitter
}

func NewService(shortener Shortener, stats StatsFetcher, emitter Emitter) *Service {
	return &Service{
		shortener: shortener,
		stats:     stats,
		emitter:   emitter,
	}
}

// Validate checks request, emitting a warning for every invalid row and an
// error when the request is rejected.
func (s *Service) Validate(request Request) error {
	switch {
	case len(request.URLs) == 0:
		s.emitter.Emit(stack, "WARN", ValidationPackage, "Request without URLs.")
		return ErrNoURLs
	case len(request.URLs) > MaxURLsPerRequest:
		s.emitter.Emit(stack, "WARN", ValidationPackage, fmt.Sprintf("Request with %d URLs, more than the allowed %d.", len(request.URLs), MaxURLsPerRequest))
		return ErrTooManyURLs
	}

	var problems []string
	for index, entry := range request.URLs {
		rowIssues := rowProblems(index+1, entry)
		for _, issue := range rowIssues {
			s.emitter.Emit(stack, "WARN", ValidationPackage, fmt.Sprintf("Invalid input %q: %s", entry.LongURL, issue))
		}
		problems = append(problems, rowIssues...)
	}

	if len(problems) > 0 {
		s.emitter.Emit(stack, "ERROR", ShortenerPackage, "Validation failed for one or more URLs.")
		return &ValidationError{Problems: problems}
	}

	return nil
}

// Shorten validates request and shortens its URLs.
func (s *Service) Shorten(ctx context.Context, request Request) ([]Result, error) {
	if err := s.Validate(request); err != nil {
		return nil, err
	}

	s.emitter.Emit(stack, "INFO", ShortenerPackage, fmt.Sprintf("All %d URLs passed validation.", len(request.URLs)))
	results, err := s.shortener.Shorten(ctx, request)
	if err != nil {
		s.emitter.Emit(stack, "ERROR", ShortenerPackage, "Shortening failed: "+err.Error())
		return nil, err
	}

	s.emitter.Emit(stack, "SUCCESS", ShortenerPackage, fmt.Sprintf("Shortened %d URLs.", len(results)))
	return results, nil
}

// Stats returns the statistics of the known short URLs.
func (s *Service) Stats(ctx context.Context) ([]Stat, error) {
	stats, err := s.stats.FetchStats(ctx)
	if err != nil {
		s.emitter.Emit(stack, "ERROR", StatsPackage, "Fetching statistics failed: "+err.Error())
		return nil, err
	}

	s.emitter.Emit(stack, "SUCCESS", StatsPackage, fmt.Sprintf("Fetched %d stat entries.", len(stats)))
	return stats, nil
}
