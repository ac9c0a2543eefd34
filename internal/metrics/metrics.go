// Package metrics provides Prometheus metrics for generator calls and
// pipeline stages. There is no HTTP listener; a snapshot is written to a
// node-exporter textfile instead.
package metrics

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors for one process.
type Metrics struct {
	GeneratorCalls    *prometheus.CounterVec
	GeneratorDuration *prometheus.HistogramVec
	GeneratorAttempts *prometheus.CounterVec
	StageOutcomes     *prometheus.CounterVec
	DailyTasksParsed  prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		GeneratorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathwise_generator_calls_total",
				Help: "Text generator calls by task and status.",
			},
			[]string{"task", "status"},
		),
		GeneratorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathwise_generator_duration_seconds",
				Help:    "Text generator latency by task.",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"task"},
		),
		GeneratorAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathwise_generator_attempts_total",
				Help: "Individual backend attempts by task, including retries.",
			},
			[]string{"task"},
		),
		StageOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathwise_stage_outcomes_total",
				Help: "Pipeline stage outcomes (ok, empty, failed) by stage.",
			},
			[]string{"stage", "outcome"},
		),
		DailyTasksParsed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pathwise_daily_tasks_parsed_total",
				Help: "Daily tasks parsed from generated narratives.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.GeneratorCalls)
	reg.MustRegister(m.GeneratorDuration)
	reg.MustRegister(m.GeneratorAttempts)
	reg.MustRegister(m.StageOutcomes)
	reg.MustRegister(m.DailyTasksParsed)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// OnCallComplete implements llm.Observer.
func (m *Metrics) OnCallComplete(e llm.LLMCallEvent) {
	status := "ok"
	if !e.Success {
		status = e.ErrorCode
		if status == "" {
			status = "error"
		}
	}
	task := string(e.Task)
	m.GeneratorCalls.WithLabelValues(task, status).Inc()
	m.GeneratorDuration.WithLabelValues(task).Observe(time.Duration(e.LatencyMs * int64(time.Millisecond)).Seconds())
	if e.Attempts > 0 {
		m.GeneratorAttempts.WithLabelValues(task).Add(float64(e.Attempts))
	}
}

// RecordStage increments the outcome counter for a pipeline stage.
func (m *Metrics) RecordStage(stage, outcome string) {
	m.StageOutcomes.WithLabelValues(stage, outcome).Inc()
}

// AddDailyTasks counts parsed daily tasks.
func (m *Metrics) AddDailyTasks(n int) {
	if n > 0 {
		m.DailyTasksParsed.Add(float64(n))
	}
}

// WriteTextfile writes the current values in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
