package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	relayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_assistant_relay_requests_total",
			Help: "Number of chat relay requests by outcome",
		},
		[]string{"outcome"},
	)

	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bi_assistant_generation_duration_seconds",
			Help:    "Duration of calls to the generation service",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"model"},
	)

	healthChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_assistant_health_checks_total",
			Help: "Number of generation service health probes by result",
		},
		[]string{"connected"},
	)

	promptTasks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bi_assistant_prompt_tasks_total",
			Help: "Number of prompts built per classified task",
		},
		[]string{"task"},
	)
)

// Register registers all metrics with the provided registerer.
func Register(r prometheus.Registerer) {
	r.MustRegister(relayRequests, generationDuration, healthChecks, promptTasks)
}

// RecordRelay increments the relay counter. outcome is "success",
// "validation_error", a generation error kind, or "unexpected_error".
func RecordRelay(outcome string) {
	relayRequests.WithLabelValues(outcome).Inc()
}

// ObserveGeneration records the duration of one generation call.
func ObserveGeneration(model string, d time.Duration) {
	generationDuration.WithLabelValues(model).Observe(d.Seconds())
}

// RecordHealthCheck increments the health probe counter.
func RecordHealthCheck(connected bool) {
	label := "false"
	if connected {
		label = "true"
	}
	healthChecks.WithLabelValues(label).Inc()
}

// RecordPromptTask increments the counter for a classified task.
func RecordPromptTask(task string) {
	promptTasks.WithLabelValues(task).Inc()
}
