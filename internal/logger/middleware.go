// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	userAgentHeaderKey     = "user-agent"
	RequestIDHeaderName    = "x-request-id"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// httpFields groups the request and response attributes of a log line.
type httpFields struct {
	Request  *requestFields  `json:"request,omitempty"`
	Response *responseFields `json:"response,omitempty"`
}

type userAgent struct {
	Original string `json:"original,omitempty"`
}

type requestFields struct {
	Method    string    `json:"method,omitempty"`
	UserAgent userAgent `json:"userAgent"`
}

type responseBody struct {
	Bytes int `json:"bytes,omitempty"`
}

type responseFields struct {
	StatusCode int          `json:"statusCode,omitempty"`
	Body       responseBody `json:"body"`
}

type hostFields struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

type urlFields struct {
	Path string `json:"path,omitempty"`
}

// requestLog captures what the middleware needs from a fiber request, so the
// handler error can still be reflected in status code and size.
type requestLog struct {
	c          *fiber.Ctx
	handlerErr error
}

func (r *requestLog) header(key string) string {
	return r.c.Get(key, "")
}

func (r *requestLog) uri() string {
	return string(r.c.Request().URI().RequestURI())
}

func (r *requestLog) host() hostFields {
	return hostFields{
		ForwardedHost: r.header(forwardedHostHeaderKey),
		Hostname:      strings.Split(string(r.c.Request().Host()), ":")[0],
		IP:            r.header(forwardedForHeaderKey),
	}
}

func (r *requestLog) request() *requestFields {
	return &requestFields{
		Method:    r.c.Method(),
		UserAgent: userAgent{Original: r.header(userAgentHeaderKey)},
	}
}

func (r *requestLog) fiberError() *fiber.Error {
	if fiberErr, ok := r.handlerErr.(*fiber.Error); ok {
		return fiberErr
	}
	return nil
}

func (r *requestLog) statusCode() int {
	if fiberErr := r.fiberError(); fiberErr != nil {
		return fiberErr.Code
	}

	return r.c.Response().StatusCode()
}

func (r *requestLog) bodySize() int {
	if fiberErr := r.fiberError(); fiberErr != nil {
		return len(fiberErr.Error())
	}

	if content := r.c.GetRespHeader(fiber.HeaderContentLength); content != "" {
		if length, err := strconv.Atoi(content); err == nil {
			return length
		}
	}
	return len(r.c.Response().Body())
}

// requestID returns the incoming request id or generates a new random one.
func (r *requestLog) requestID() string {
	if requestID := r.header(RequestIDHeaderName); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// RequestMiddlewareLogger is a fiber middleware to log all requests.
// It logs the incoming request at TRACE and the completed request at INFO with
// its latency; paths starting with one of excludedPrefix are not logged.
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) fiber.Handler {
	return func(fiberCtx *fiber.Ctx) error {
		reqLog := &requestLog{c: fiberCtx}

		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(reqLog.uri(), prefix) {
				return fiberCtx.Next()
			}
		}

		start := time.Now()

		requestID := reqLog.requestID()
		fiberCtx.Set(RequestIDHeaderName, requestID)
		log := logger.WithName("request").With("reqId", requestID)
		fiberCtx.SetUserContext(WithContext(fiberCtx.UserContext(), log))

		log.Trace(IncomingRequestMessage,
			"http", httpFields{Request: reqLog.request()},
			"url", urlFields{Path: reqLog.uri()},
			"host", reqLog.host(),
		)

		err := fiberCtx.Next()
		reqLog.handlerErr = err

		log.Info(RequestCompletedMessage,
			"http", httpFields{
				Request: reqLog.request(),
				Response: &responseFields{
					StatusCode: reqLog.statusCode(),
					Body:       responseBody{Bytes: reqLog.bodySize()},
				},
			},
			"url", urlFields{Path: reqLog.uri()},
			"host", reqLog.host(),
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}
