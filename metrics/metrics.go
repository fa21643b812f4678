// Package metrics exposes Prometheus collectors for training runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EpochsTotal counts completed training epochs
	EpochsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stride_epochs_total",
			Help: "The total number of completed training epochs",
		},
	)

	// EpochDurationSeconds measures the duration of training epochs
	EpochDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stride_epoch_duration_seconds",
			Help:    "Duration of training epochs",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CurrentEpoch reports the current epoch counter
	CurrentEpoch = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stride_current_epoch",
			Help: "The current epoch of the training run",
		},
	)

	// CheckpointSavesTotal counts checkpoint save operations
	CheckpointSavesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stride_checkpoint_saves_total",
			Help: "Total number of checkpoint save operations",
		},
	)

	// CheckpointBytesWritten tracks bytes written to checkpoint artifacts
	CheckpointBytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stride_checkpoint_bytes_written_total",
			Help: "Total bytes written to checkpoint artifacts",
		},
	)

	// CheckpointLoadsTotal counts checkpoint load operations
	CheckpointLoadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stride_checkpoint_loads_total",
			Help: "Total number of checkpoint load operations",
		},
	)
)
