// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mia-platform/logmw/internal/api"
	"github.com/mia-platform/logmw/internal/destination"
	"github.com/mia-platform/logmw/internal/emitter"
	"github.com/mia-platform/logmw/internal/logger"
	"github.com/mia-platform/logmw/internal/server"
	"github.com/mia-platform/logmw/internal/shortener"
)

const (
	serveLoggerName   = "logmw:serve"
	emitterLoggerName = "logmw:emitter"
)

// serveOptions configures the HTTP server and the emitter it shares with its routes.
type serveOptions struct {
	sender        destination.Sender
	timeout       time.Duration
	serverFactory func(context.Context) (server.Server, error)

	lock sync.Mutex
}

// execute starts the server and blocks until ctx is cancelled, a termination
// signal is received or the server fails, then waits for the in-flight deliveries.
func (o *serveOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	log := logger.Named(ctx, serveLoggerName)
	shortenerConfig, err := shortener.LoadConfig()
	if err != nil {
		return err
	}

	srv, err := o.serverFactory(ctx)
	if err != nil {
		return err
	}

	logEmitter := newEmitter(ctx, o.sender, o.timeout)
	api.Register(srv, logEmitter, shortener.NewServiceFromConfig(shortenerConfig, logEmitter))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case serveErr = <-srv.StartAsync(ctx):
	case <-ctx.Done():
		log.Info("stopping server")
		serveErr = srv.Stop()
	}

	log.Debug("waiting for pending deliveries")
	logEmitter.Wait()
	return serveErr
}

// emitOptions configures a single emission from the command line.
type emitOptions struct {
	stack       string
	level       string
	packageName string
	message     string
	sender      destination.Sender
	timeout     time.Duration
}

// execute emits the record and waits for its delivery. A failed delivery is
// only traced and never returned.
func (o *emitOptions) execute(ctx context.Context) error {
	logEmitter := newEmitter(ctx, o.sender, o.timeout)
	logEmitter.Emit(o.stack, o.level, o.packageName, o.message)
	logEmitter.Wait()
	return nil
}

func newEmitter(ctx context.Context, sender destination.Sender, timeout time.Duration) *emitter.Emitter {
	sink := emitter.NewLoggerSink(logger.Named(ctx, emitterLoggerName))
	return emitter.New(sender, sink, emitter.WithTimeout(timeout))
}
