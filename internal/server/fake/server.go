// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/mia-platform/logmw/internal/server"
)

var _ server.Server = &Server{}

type Route struct {
	Method  string
	Path    string
	Handler server.HandlerFunc
}

// Server is a server.Server that only records routes and lifecycle calls.
type Server struct {
	tb               testing.TB
	RegisteredRoutes []Route

	// StartErr is returned by Start and StartAsync instead of serving.
	StartErr error

	startOnce   sync.Once
	stopOnce    sync.Once
	startedChan chan struct{}
	closedChan  chan struct{}
}

func NewFakeServer(tb testing.TB) *Server {
	tb.Helper()

	return &Server{
		tb:          tb,
		startedChan: make(chan struct{}),
		closedChan:  make(chan struct{}),
	}
}

func (s *Server) AddRoute(method string, path string, handler server.HandlerFunc) {
	s.tb.Helper()
	s.RegisteredRoutes = append(s.RegisteredRoutes, Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// Route returns the handler registered for method and path, if any.
func (s *Server) Route(method, path string) (server.HandlerFunc, bool) {
	for _, route := range s.RegisteredRoutes {
		if route.Method == method && route.Path == path {
			return route.Handler, true
		}
	}
	return nil, false
}

// Call invokes the handler registered for method and path.
func (s *Server) Call(ctx context.Context, method, path string, headers http.Header, body []byte) (*server.Response, error) {
	s.tb.Helper()

	handler, ok := s.Route(method, path)
	if !ok {
		s.tb.Fatalf("no route registered for %s %s", method, path)
	}
	return handler(ctx, headers, body)
}

func (s *Server) Start() error {
	s.tb.Helper()
	s.startOnce.Do(func() { close(s.startedChan) })
	if s.StartErr != nil {
		return s.StartErr
	}
	<-s.closedChan
	return nil
}

func (s *Server) Stop() error {
	s.tb.Helper()
	s.stopOnce.Do(func() { close(s.closedChan) })
	return nil
}

func (s *Server) StartAsync(_ context.Context) <-chan error {
	s.tb.Helper()
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		if err := s.Start(); err != nil {
			errChan <- err
		}
	}()
	return errChan
}

func (s *Server) StartedServer() <-chan struct{} {
	return s.startedChan
}

func (s *Server) StoppedServer() <-chan struct{} {
	return s.closedChan
}
