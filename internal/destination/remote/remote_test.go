// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/logmw/internal/destination"
	"github.com/mia-platform/logmw/internal/info"
)

func TestSend(t *testing.T) {
	t.Parallel()

	record := &destination.Record{
		Stack:   "frontend",
		Level:   "info",
		Package: "shortener",
		Message: "component mounted",
	}

	testCases := map[string]struct {
		handler       http.HandlerFunc
		expectedError error
	}{
		"accepted with 200": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"logID":"abc"}`))
			},
		},
		"accepted with 201": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
			},
		},
		"rejected with body": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"message":"invalid level"}` + "\n"))
			},
			expectedError: &destination.RejectedError{StatusCode: http.StatusBadRequest, Body: `{"message":"invalid level"}`},
		},
		"rejected without body": {
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectedError: &destination.RejectedError{StatusCode: http.StatusUnauthorized},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/evaluation-service/logs", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, info.UserAgent(), r.Header.Get("User-Agent"))
				assert.Empty(t, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				var received destination.Record
				assert.NoError(t, json.Unmarshal(body, &received))
				assert.Equal(t, *record, received)

				tc.handler(w, r)
			}))
			defer testServer.Close()

			dest := newRemoteDestination(t.Context(), &config{
				Endpoint: testServer.URL + "/evaluation-service/logs",
				Timeout:  time.Second,
			})

			err := dest.Send(t.Context(), record)
			assert.Equal(t, int32(1), calls.Load())
			if tc.expectedError == nil {
				assert.NoError(t, err)
				return
			}

			assert.Equal(t, tc.expectedError, err)
		})
	}
}

func TestSendTransportFaults(t *testing.T) {
	t.Parallel()

	record := &destination.Record{Stack: "backend", Level: "error", Package: "p", Message: "m"}

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		testServer := httptest.NewServer(http.NotFoundHandler())
		endpoint := testServer.URL
		testServer.Close()

		dest := newRemoteDestination(t.Context(), &config{Endpoint: endpoint, Timeout: time.Second})
		err := dest.Send(t.Context(), record)

		var transportErr *destination.TransportError
		assert.ErrorAs(t, err, &transportErr)
	})

	t.Run("client timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
			w.WriteHeader(http.StatusOK)
		}))
		defer testServer.Close()
		defer close(release)

		dest := newRemoteDestination(t.Context(), &config{Endpoint: testServer.URL, Timeout: 50 * time.Millisecond})
		err := dest.Send(t.Context(), record)

		var transportErr *destination.TransportError
		require.ErrorAs(t, err, &transportErr)
		var netErr interface{ Timeout() bool }
		require.True(t, errors.As(err, &netErr))
		assert.True(t, netErr.Timeout())
	})

	t.Run("context deadline", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer testServer.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()

		dest := newRemoteDestination(t.Context(), &config{Endpoint: testServer.URL, Timeout: time.Minute})
		err := dest.Send(ctx, record)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSendWithCredentials(t *testing.T) {
	t.Parallel()

	t.Run("static token", func(t *testing.T) {
		t.Parallel()

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer testServer.Close()

		cfg := &config{Endpoint: testServer.URL + "/logs", Token: "static-token", Timeout: time.Second}
		require.NoError(t, cfg.validate())

		dest := newRemoteDestination(t.Context(), cfg)
		assert.NoError(t, dest.Send(t.Context(), &destination.Record{Stack: "backend", Level: "info", Package: "p", Message: "m"}))
	})

	t.Run("client credentials", func(t *testing.T) {
		t.Parallel()

		var tokenRequests atomic.Int32
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/oauth/token":
				tokenRequests.Add(1)
				clientID, clientSecret, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "client-id", clientID)
				assert.Equal(t, "client-secret", clientSecret)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"Bearer","expires_in":3600}`))
			case "/logs":
				assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusOK)
			default:
				assert.Fail(t, "unexpected path", r.URL.Path)
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer testServer.Close()

		cfg := &config{
			Endpoint:     testServer.URL + "/logs",
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Timeout:      time.Second,
		}
		require.NoError(t, cfg.validate())
		assert.True(t, strings.HasSuffix(cfg.AuthEndpoint, "/oauth/token"))

		dest := newRemoteDestination(t.Context(), cfg)
		record := &destination.Record{Stack: "backend", Level: "info", Package: "p", Message: "m"}
		assert.NoError(t, dest.Send(t.Context(), record))
		assert.NoError(t, dest.Send(t.Context(), record))
		assert.Equal(t, int32(1), tokenRequests.Load())
	})
}
