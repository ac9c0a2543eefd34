package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExtractProjectTitles_NumberedList(t *testing.T) {
	report := "1. Build a REST API — learn backend basics (Node.js)\n" +
		"2. Create a CLI tool — learn scripting (Python)\n" +
		"3. Deploy a microservice — learn containers (Docker)"

	titles := ExtractProjectTitles(report)

	assert.Equal(t, []string{
		"Build a REST API — learn backend basics (Node.js)",
		"Create a CLI tool — learn scripting (Python)",
		"Deploy a microservice — learn containers (Docker)",
	}, titles)
}

func TestExtractProjectTitles_FullReport(t *testing.T) {
	report := `### Matched Skills
- Python
- SQL

### Missing Skills
- Docker
- Kubernetes

### Suggested Projects
1. **Containerized ETL Pipeline** — package a data pipeline with Docker (Docker)
2) Kubernetes Job Scheduler — run batch jobs on a cluster (Kubernetes)
3- Metrics Dashboard Service — expose Prometheus metrics (Observability)
4. Extra Fourth Project — should be truncated (Nothing)`

	titles := ExtractProjectTitles(report)

	require.Len(t, titles, 3)
	assert.Equal(t, "Containerized ETL Pipeline — package a data pipeline with Docker (Docker)", titles[0])
	assert.Equal(t, "Kubernetes Job Scheduler — run batch jobs on a cluster (Kubernetes)", titles[1])
	assert.Equal(t, "Metrics Dashboard Service — expose Prometheus metrics (Observability)", titles[2])
}

func TestExtractProjectTitles_PatternPriorityBeatsDocumentOrder(t *testing.T) {
	report := `- A bulleted project appears first
### Project 1: Heading based project idea
**Title:** Labelled project comes last`

	titles := ExtractProjectTitles(report)

	assert.Equal(t, []string{
		"Labelled project comes last",
		"Heading based project idea",
		"A bulleted project appears first",
	}, titles)
}

func TestExtractProjectTitles_TitleLabelVariants(t *testing.T) {
	report := "**Title**: Realtime chat with websockets\n" +
		"**Title:** Static site generator in Go\n" +
		"Title: Personal finance tracker app"

	titles := ExtractProjectTitles(report)

	assert.Equal(t, []string{
		"Realtime chat with websockets",
		"Static site generator in Go",
		"Personal finance tracker app",
	}, titles)
}

func TestExtractProjectTitles_DedupesAcrossPatterns(t *testing.T) {
	report := "**Title:** Build a log shipper\n1. Build a log shipper\n- Build a log shipper"

	assert.Equal(t, []string{"Build a log shipper"}, ExtractProjectTitles(report))
}

func TestExtractProjectTitles_DiscardsShortMatches(t *testing.T) {
	report := "1. Docker\n2. Two words\n- Python\n---\n3. Three word title"

	assert.Equal(t, []string{"Three word title"}, ExtractProjectTitles(report))
}

func TestExtractProjectTitles_StripsDecoration(t *testing.T) {
	report := "1. **_Build_ a #realtime• dashboard**"

	assert.Equal(t, []string{"Build a realtime dashboard"}, ExtractProjectTitles(report))
}

func TestExtractProjectTitles_NoStructure(t *testing.T) {
	assert.Empty(t, ExtractProjectTitles("You already match this role well. Keep practising."))
	assert.Empty(t, ExtractProjectTitles(""))
}

func TestExtractProjectTitles_NoMarkersProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z ,.!?\n]{0,300}`).Draw(rt, "text")
		titles := ExtractProjectTitles(text)
		if len(titles) != 0 {
			rt.Fatalf("expected no titles for %q, got %v", text, titles)
		}
	})
}

func TestExtractProjectTitles_AlwaysDistinctAndCapped(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "lines")
		var report string
		for i := 0; i < n; i++ {
			word := rapid.SampledFrom([]string{"alpha", "beta", "gamma"}).Draw(rt, "word")
			report += "1. Build the " + word + " service\n"
		}
		titles := ExtractProjectTitles(report)
		if len(titles) > 3 {
			rt.Fatalf("got %d titles, want at most 3", len(titles))
		}
		seen := map[string]bool{}
		for _, title := range titles {
			if seen[title] {
				rt.Fatalf("duplicate title %q", title)
			}
			seen[title] = true
		}
	})
}
