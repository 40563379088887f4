// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package destination

import (
	"net/http"
	"strconv"
)

// TransportError reports a failure to reach the remote endpoint, such as a
// timeout, a DNS failure or a refused connection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport fault: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError reports a response with a non 2xx status code. Body is empty
// when the response body could not be read.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	msg := "remote rejected record: " + strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}
