package domain

import (
	"fmt"
	"strings"
)

const (
	MinDurationWeeks     = 1
	MaxDurationWeeks     = 12
	DefaultDurationWeeks = 2

	// MaxProjects caps how many suggested projects a session plans for.
	MaxProjects = 3
)

// Project is a learning project suggested for a skill gap.
type Project struct {
	Title         string
	DurationWeeks int
}

// NewProject returns a Project with the default duration.
func NewProject(title string) Project {
	return Project{Title: strings.TrimSpace(title), DurationWeeks: DefaultDurationWeeks}
}

// Days returns the number of calendar days the project spans.
func (p Project) Days() int {
	return p.DurationWeeks * 7
}

// Validate checks the title is non-empty and the duration is within bounds.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title is required")
	}
	return ValidateDurationWeeks(p.DurationWeeks)
}

// ValidateDurationWeeks reports an error when weeks falls outside
// [MinDurationWeeks, MaxDurationWeeks].
func ValidateDurationWeeks(weeks int) error {
	if weeks < MinDurationWeeks || weeks > MaxDurationWeeks {
		return fmt.Errorf("duration must be between %d and %d weeks, got %d",
			MinDurationWeeks, MaxDurationWeeks, weeks)
	}
	return nil
}

// ProjectsFromTitles builds default-duration projects from titles, keeping
// at most MaxProjects.
func ProjectsFromTitles(titles []string) []Project {
	n := len(titles)
	if n > MaxProjects {
		n = MaxProjects
	}
	projects := make([]Project, 0, n)
	for _, t := range titles[:n] {
		projects = append(projects, NewProject(t))
	}
	return projects
}
