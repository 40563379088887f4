// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package emitter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeDelivered = "delivered"
	outcomeInvalid   = "invalid"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

var (
	recordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logmw_emitter_records_total",
			Help: "Total number of emitted log records by delivery outcome",
		},
		[]string{"outcome"},
	)

	deliveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "logmw_emitter_delivery_duration_seconds",
			Help:    "Duration of log record deliveries to the remote API in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)
