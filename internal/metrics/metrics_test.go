package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnCallComplete_CountsByStatus(t *testing.T) {
	m := New()

	m.OnCallComplete(llm.LLMCallEvent{Task: llm.TaskReport, LatencyMs: 1200, Attempts: 1, Success: true})
	m.OnCallComplete(llm.LLMCallEvent{Task: llm.TaskReport, LatencyMs: 300, Attempts: 2, ErrorCode: "TIMEOUT"})
	m.OnCallComplete(llm.LLMCallEvent{Task: llm.TaskMarket})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeneratorCalls.WithLabelValues("report", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeneratorCalls.WithLabelValues("report", "TIMEOUT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeneratorCalls.WithLabelValues("market", "error")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.GeneratorAttempts.WithLabelValues("report")))
}

func TestRecordStage_AndTasks(t *testing.T) {
	m := New()

	m.RecordStage("skills", "empty")
	m.RecordStage("skills", "empty")
	m.AddDailyTasks(14)
	m.AddDailyTasks(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StageOutcomes.WithLabelValues("skills", "empty")))
	assert.Equal(t, 14.0, testutil.ToFloat64(m.DailyTasksParsed))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.RecordStage("report", "ok")
	path := filepath.Join(t.TempDir(), "pathwise.prom")

	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pathwise_stage_outcomes_total{outcome="ok",stage="report"} 1`)
}
