// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxURLsPerRequest is the maximum number of URLs shortened at once.
	MaxURLsPerRequest = 5
	// DefaultValidity is used for entries without an explicit validity.
	DefaultValidity = 30 * time.Minute
	// MaxValidity is the longest validity an entry can ask for.
	MaxValidity = 365 * 24 * time.Hour
)

var (
	ErrNoURLs       = errors.New("at least one URL is required")
	ErrTooManyURLs  = fmt.Errorf("at most %d URLs can be shortened at once", MaxURLsPerRequest)
	ErrInvalidEntry = errors.New("invalid URL entry")

	maxValidityMinutes = int64(MaxValidity / time.Minute)

	shortcodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
)

// ValidationError lists every problem found in a request, one per row.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "request not valid: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntry
}

// rowProblems returns the problems of entry; row is 1-based.
func rowProblems(row int, entry Entry) []string {
	var problems []string

	if parsed, err := url.Parse(entry.LongURL); err != nil || !parsed.IsAbs() || parsed.Host == "" {
		problems = append(problems, fmt.Sprintf("row %d: invalid URL format", row))
	}

	if entry.Validity != "" {
		minutes, err := strconv.ParseInt(entry.Validity.String(), 10, 64)
		switch {
		case errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(entry.Validity.String(), "-"):
			problems = append(problems, fmt.Sprintf("row %d: validity must be at most %d minutes", row, maxValidityMinutes))
		case err != nil || minutes <= 0:
			problems = append(problems, fmt.Sprintf("row %d: validity must be a positive whole number", row))
		case minutes > maxValidityMinutes:
			problems = append(problems, fmt.Sprintf("row %d: validity must be at most %d minutes", row, maxValidityMinutes))
		}
	}

	if entry.Shortcode != "" && !shortcodePattern.MatchString(entry.Shortcode) {
		problems = append(problems, fmt.Sprintf("row %d: shortcode must be 1-32 letters, digits, '-' or '_'", row))
	}

	return problems
}

// validity returns the validity of entry, which must already be valid.
func validity(entry Entry) time.Duration {
	if entry.Validity == "" {
		return DefaultValidity
	}

	minutes, _ := strconv.ParseInt(entry.Validity.String(), 10, 64)
	return time.Duration(minutes) * time.Minute
}
