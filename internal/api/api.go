// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mia-platform/logmw/internal/server"
	"github.com/mia-platform/logmw/internal/shortener"
)

const (
	LogsPath    = "/api/logs"
	ShortenPath = "/api/shorten"
	StatsPath   = "/api/stats"
)

// Emitter is the logging middleware the relay hands intents to.
type Emitter interface {
	Emit(stack, level, packageName, message string)
}

// logIntent is the body accepted by the log relay.
type logIntent struct {
	Stack       string `json:"stack"`
	Level       string `json:"level"`
	PackageName string `json:"package"`
	Message     string `json:"message"`
}

// Register adds all the API routes to srv.
func Register(srv server.Server, emitter Emitter, service *shortener.Service) {
	srv.AddRoute(http.MethodPost, LogsPath, logsHandler(emitter))
	srv.AddRoute(http.MethodPost, ShortenPath, shortenHandler(service))
	srv.AddRoute(http.MethodGet, StatsPath, statsHandler(service))
}

// logsHandler relays a log intent to the emitter. The intent is accepted as
// soon as it is decoded: its validation and delivery happen in the emitter.
func logsHandler(emitter Emitter) server.HandlerFunc {
	return func(_ context.Context, _ http.Header, body []byte) (*server.Response, error) {
		var intent logIntent
		if err := json.Unmarshal(body, &intent); err != nil {
			return nil, server.NewError(http.StatusBadRequest, "body must be a JSON object with stack, level, package and message")
		}

		emitter.Emit(intent.Stack, intent.Level, intent.PackageName, intent.Message)
		return &server.Response{StatusCode: http.StatusAccepted}, nil
	}
}

func shortenHandler(service *shortener.Service) server.HandlerFunc {
	return func(ctx context.Context, _ http.Header, body []byte) (*server.Response, error) {
		var request shortener.Request
		if err := json.Unmarshal(body, &request); err != nil {
			return nil, server.NewError(http.StatusBadRequest, "body must be a JSON object with a urls list")
		}

		results, err := service.Shorten(ctx, request)
		switch {
		case errors.Is(err, shortener.ErrNoURLs),
			errors.Is(err, shortener.ErrTooManyURLs),
			errors.Is(err, shortener.ErrInvalidEntry):
			return nil, server.NewError(http.StatusBadRequest, err.Error())
		case err != nil:
			return nil, err
		}

		return &server.Response{StatusCode: http.StatusCreated, Body: results}, nil
	}
}

func statsHandler(service *shortener.Service) server.HandlerFunc {
	return func(ctx context.Context, _ http.Header, _ []byte) (*server.Response, error) {
		stats, err := service.Stats(ctx)
		if err != nil {
			return nil, err
		}

		return &server.Response{Body: stats}, nil
	}
}
