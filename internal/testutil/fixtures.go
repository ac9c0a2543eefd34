package testutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// SampleReport is a recommendation report in the shape the report prompt
// asks for.
const SampleReport = `### Matched Skills
- Python
- SQL

### Missing Skills
- Docker
- Kubernetes

### Suggested Projects
1. Build a REST API — learn backend basics (Node.js)
2. Create a CLI tool — learn scripting (Python)
3. Deploy a microservice — learn containers (Docker)
`

// SampleTitles are the titles extracted from SampleReport.
var SampleTitles = []string{
	"Build a REST API — learn backend basics (Node.js)",
	"Create a CLI tool — learn scripting (Python)",
	"Deploy a microservice — learn containers (Docker)",
}

// SampleMarket is a short market overview.
const SampleMarket = `- Docker and Kubernetes are common requirements
- Cloud certifications (AWS, GCP) are valued
- Fintech and SaaS companies are hiring`

// Date returns a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Project options
type ProjectOption func(*domain.Project)

func WithWeeks(weeks int) ProjectOption {
	return func(p *domain.Project) {
		p.DurationWeeks = weeks
	}
}

func NewTestProject(title string, opts ...ProjectOption) domain.Project {
	p := domain.NewProject(title)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Narrative options
type NarrativeOption func(*narrativeConfig)

type narrativeConfig struct {
	bold   bool
	skip   map[int]bool
	prefix string
}

// WithPlainLabels writes "Day N:" instead of "**Day N:**".
func WithPlainLabels() NarrativeOption {
	return func(c *narrativeConfig) { c.bold = false }
}

// WithoutDays leaves the given day numbers out of the narrative.
func WithoutDays(days ...int) NarrativeOption {
	return func(c *narrativeConfig) {
		for _, d := range days {
			c.skip[d] = true
		}
	}
}

// WithPreamble adds free text before the first day.
func WithPreamble(text string) NarrativeOption {
	return func(c *narrativeConfig) { c.prefix = text }
}

// Narrative builds a day-by-day narrative with one line per day, the
// way the daily plan prompt asks for it.
func Narrative(project string, days int, opts ...NarrativeOption) string {
	cfg := narrativeConfig{bold: true, skip: map[int]bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	if cfg.prefix != "" {
		b.WriteString(cfg.prefix + "\n\n")
	}
	for d := 1; d <= days; d++ {
		if cfg.skip[d] {
			continue
		}
		label := fmt.Sprintf("Day %d:", d)
		if cfg.bold {
			label = "**" + label + "**"
		}
		task := fmt.Sprintf("Work on %s step %d", project, d)
		if d%7 == 0 {
			task = "Review progress, consolidate learnings, and rest"
		}
		fmt.Fprintf(&b, "%s %s\n\n", label, task)
	}
	return b.String()
}
