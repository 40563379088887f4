// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/mia-platform/logmw/internal/logger"
)

const (
	loggerName = "logmw:server"
)

// Response is the answer of a route handler. A nil Response is sent as 204 No Content.
type Response struct {
	StatusCode int
	Body       any
}

// HandlerFunc handles a request given its headers and raw body.
type HandlerFunc func(ctx context.Context, headers http.Header, body []byte) (*Response, error)

// Error is returned by a HandlerFunc to answer with a specific status code.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError returns an Error with statusCode and message.
func NewError(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

type Server interface {
	AddRoute(method string, path string, handler HandlerFunc)
	Start() error
	Stop() error
	StartAsync(ctx context.Context) <-chan error
}

type impServer struct {
	config

	app *fiber.App
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

func NewServer(ctx context.Context) (Server, error) {
	cfg, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return newServer(ctx, cfg), nil
}

func newServer(ctx context.Context, cfg *config) *impServer {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // handlers receive the raw body and headers and may keep them after returning
	})

	app.Use(logger.RequestMiddlewareLogger(logger.FromContext(ctx), []string{"/-/"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + logger.RequestIDHeaderName,
	}))

	statusRoutes(app, serviceName)

	return &impServer{
		app:    app,
		config: *cfg,
	}
}

func (s *impServer) AddRoute(method string, path string, handler HandlerFunc) {
	s.app.Add(method, path, func(ctx *fiber.Ctx) error {
		headers := http.Header{}
		for key, values := range ctx.GetReqHeaders() {
			for _, value := range values {
				headers.Add(key, value)
			}
		}

		response, err := handler(ctx.UserContext(), headers, ctx.Body())
		if err != nil {
			return errorResponse(ctx, err)
		}

		if response == nil {
			return ctx.SendStatus(http.StatusNoContent)
		}

		statusCode := response.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusOK
		}

		if response.Body == nil {
			return ctx.SendStatus(statusCode)
		}
		return ctx.Status(statusCode).JSON(response.Body)
	})
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	statusCode := http.StatusInternalServerError
	message := "error processing request"

	var serverErr *Error
	if errors.As(err, &serverErr) {
		statusCode = serverErr.StatusCode
		message = serverErr.Message
	} else {
		logger.FromContext(ctx.UserContext()).WithName(loggerName).Error("route handler failed", "error", err)
	}

	return ctx.Status(statusCode).JSON(fiber.Map{
		"statusCode": statusCode,
		"error":      http.StatusText(statusCode),
		"message":    message,
	})
}

func (s *impServer) Start() error {
	if err := s.app.Listen(net.JoinHostPort(s.HTTPHost, strconv.Itoa(s.HTTPPort))); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *impServer) Stop() error {
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}

// StartAsync starts the server in the background. The returned channel
// receives the listen error, if any, and is closed when the server stops.
func (s *impServer) StartAsync(ctx context.Context) <-chan error {
	log := logger.FromContext(ctx).WithName(loggerName)
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Info("starting server", "host", s.HTTPHost, "port", s.HTTPPort)
		if err := s.Start(); err != nil {
			log.Error(err.Error())
			errChan <- err
		}
	}()

	return errChan
}
