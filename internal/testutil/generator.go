package testutil

import (
	"context"
	"strings"
	"sync"
)

type rule struct {
	match    string
	response string
	err      error
	times    int // 0 means unlimited
}

// ScriptedGenerator is a fake text generator. Rules are checked in the
// order they were added; the first whose substring appears in the prompt
// answers. Unmatched prompts get the fallback response.
type ScriptedGenerator struct {
	mu       sync.Mutex
	rules    []*rule
	fallback string
	prompts  []string
}

// NewScriptedGenerator returns a generator whose unmatched prompts yield
// fallback.
func NewScriptedGenerator(fallback string) *ScriptedGenerator {
	return &ScriptedGenerator{fallback: fallback}
}

// On answers prompts containing match with response.
func (g *ScriptedGenerator) On(match, response string) *ScriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, &rule{match: match, response: response})
	return g
}

// Fail returns err for prompts containing match.
func (g *ScriptedGenerator) Fail(match string, err error) *ScriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, &rule{match: match, err: err})
	return g
}

// FailOnce returns err for the next prompt containing match only.
func (g *ScriptedGenerator) FailOnce(match string, err error) *ScriptedGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, &rule{match: match, err: err, times: 1})
	return g
}

// Generate implements the text generator contract.
func (g *ScriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)

	for i, r := range g.rules {
		if !strings.Contains(prompt, r.match) {
			continue
		}
		if r.times > 0 {
			r.times--
			if r.times == 0 {
				g.rules = append(g.rules[:i:i], g.rules[i+1:]...)
			}
		}
		if r.err != nil {
			return "", r.err
		}
		return r.response, nil
	}
	return g.fallback, nil
}

// Prompts returns every prompt received so far.
func (g *ScriptedGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}

// CallsMatching counts received prompts containing substr.
func (g *ScriptedGenerator) CallsMatching(substr string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, p := range g.prompts {
		if strings.Contains(p, substr) {
			n++
		}
	}
	return n
}
