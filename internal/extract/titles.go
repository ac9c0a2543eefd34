// Package extract turns free-form generated text into structured planner
// input: suggested project titles and dated daily tasks.
package extract

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// titleMatcher is one structural marker a suggested project title can hang off.
type titleMatcher struct {
	name    string
	pattern *regexp.Regexp
}

// titleMatchers are applied in priority order. Results are concatenated per
// matcher, so document order only holds within a single matcher.
var titleMatchers = []titleMatcher{
	{"title_label", regexp.MustCompile(`(?m)(?:\*\*Title(?::\*\*|\*\*[ \t]*[:\-]?)|^[ \t]*Title[ \t]*:)[ \t]*(.+)`)},
	{"project_heading", regexp.MustCompile(`(?m)^[ \t]*###[ \t]*Project[ \t]*\d*[ \t]*[:\-]?[ \t]*(.+)`)},
	{"numbered_item", regexp.MustCompile(`(?m)^[ \t]*\d+[.)\-][ \t]*(.+)`)},
	{"bullet_item", regexp.MustCompile(`(?m)^[ \t]*[-•][ \t]*(.+)`)},
}

var titleDecoration = regexp.MustCompile(`[*_#\-•]+`)

// minTitleWords is the smallest word count a cleaned match needs to count as
// a title. Shorter matches are section headers or single skills.
const minTitleWords = 3

// ExtractProjectTitles returns up to domain.MaxProjects distinct project
// titles found in a recommendation report. A report with no recognised
// structure yields an empty slice.
func ExtractProjectTitles(report string) []string {
	return extractTitles(report, domain.MaxProjects)
}

func extractTitles(report string, limit int) []string {
	var candidates []string
	for _, m := range titleMatchers {
		for _, sub := range m.pattern.FindAllStringSubmatch(report, -1) {
			if title, ok := cleanTitle(sub[1]); ok {
				candidates = append(candidates, title)
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	titles := make([]string, 0, limit)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		titles = append(titles, c)
		if len(titles) == limit {
			break
		}
	}
	return titles
}

// cleanTitle strips decorative markup and rejects matches that are too short.
func cleanTitle(raw string) (string, bool) {
	cleaned := strings.TrimSpace(titleDecoration.ReplaceAllString(raw, ""))
	if len(strings.Fields(cleaned)) < minTitleWords {
		return "", false
	}
	return cleaned, true
}
