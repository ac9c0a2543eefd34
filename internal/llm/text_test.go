package llm

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	in := "```markdown\n### Suggested Projects\n1. Build a thing for real\n```"
	assert.Equal(t, "### Suggested Projects\n1. Build a thing for real", StripCodeFences(in))
	assert.Equal(t, "plain text", StripCodeFences("  plain text \n"))
}

func TestLogObserver_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(zerolog.New(&buf))

	obs.OnCallComplete(LLMCallEvent{Task: TaskReport, Model: "m", LatencyMs: 12, Attempts: 2, Success: false, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"task":"report"`)
	assert.Contains(t, out, `"error_code":"TIMEOUT"`)
	assert.Contains(t, out, `"component":"llm"`)
	assert.Contains(t, out, `"message":"llm_call"`)
}

func TestMultiObserver_FansOut(t *testing.T) {
	var a, b int
	m := MultiObserver{
		&captureObserver{fn: func(LLMCallEvent) { a++ }},
		nil,
		&captureObserver{fn: func(LLMCallEvent) { b++ }},
	}

	m.OnCallComplete(LLMCallEvent{})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
