package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricCaseImageDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showcase_case_image_deletions_total",
			Help: "Case images processed by the cleanup trigger, by outcome",
		},
		[]string{"outcome"},
	)
	MetricCleanupRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "showcase_case_cleanup_runs_total",
			Help: "Cleanup trigger invocations, by result",
		},
		[]string{"result"},
	)
)
