// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mia-platform/logmw/internal/info"
)

const (
	serviceName = "logmw"

	healthzPath = "/-/healthz"
	readyPath   = "/-/ready"
	metricsPath = "/-/metrics"
)

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// statusRoutes registers the probes and the Prometheus metrics endpoint.
func statusRoutes(app *fiber.App, name string) {
	status := func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(statusResponse{
			Status:  "OK",
			Name:    name,
			Version: info.Version,
		})
	}

	app.Get(healthzPath, status)
	app.Get(readyPath, status)
	app.Get(metricsPath, adaptor.HTTPHandler(promhttp.Handler()))
}
