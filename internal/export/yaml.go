package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"gopkg.in/yaml.v3"
)

// PlanDocument is the YAML form of a whole plan.
type PlanDocument struct {
	JobTitle       string        `yaml:"job_title,omitempty"`
	Skills         []string      `yaml:"skills,omitempty"`
	GeneratedAt    string        `yaml:"generated_at,omitempty"`
	TotalWeeks     int           `yaml:"total_weeks"`
	CompletionDate string        `yaml:"completion_date,omitempty"`
	Projects       []ProjectPlan `yaml:"projects"`
}

// ProjectPlan is one scheduled project and its parsed days.
type ProjectPlan struct {
	Title     string    `yaml:"title"`
	Weeks     int       `yaml:"weeks"`
	StartDate string    `yaml:"start_date"`
	EndDate   string    `yaml:"end_date"`
	Days      []DayPlan `yaml:"days,omitempty"`
}

// DayPlan is one parsed daily task.
type DayPlan struct {
	Day  int    `yaml:"day"`
	Date string `yaml:"date"`
	Task string `yaml:"task"`
}

// NewPlanDocument assembles a PlanDocument. Tasks are grouped under their
// project by title; tasks for unscheduled projects are dropped.
func NewPlanDocument(jobTitle string, skills domain.SkillSet, s domain.Schedule, tasks []domain.DailyTask, generatedAt time.Time) PlanDocument {
	doc := PlanDocument{
		JobTitle:   jobTitle,
		Skills:     skills,
		TotalWeeks: s.TotalWeeks,
		Projects:   make([]ProjectPlan, 0, len(s.Entries)),
	}
	if !generatedAt.IsZero() {
		doc.GeneratedAt = generatedAt.UTC().Format(time.RFC3339)
	}
	if !s.Empty() {
		doc.CompletionDate = domain.FormatDate(s.CompletionDate)
	}

	index := make(map[string]int, len(s.Entries))
	for i, e := range s.Entries {
		index[e.Project.Title] = i
		doc.Projects = append(doc.Projects, ProjectPlan{
			Title:     e.Project.Title,
			Weeks:     e.Project.DurationWeeks,
			StartDate: domain.FormatDate(e.StartDate),
			EndDate:   domain.FormatDate(e.EndDate),
		})
	}
	for _, t := range tasks {
		i, ok := index[t.Project.Title]
		if !ok {
			continue
		}
		doc.Projects[i].Days = append(doc.Projects[i].Days, DayPlan{
			Day:  t.DayIndex,
			Date: domain.FormatDate(t.Date),
			Task: t.Description,
		})
	}
	return doc
}

// WriteYAML encodes doc with two-space indentation.
func WriteYAML(w io.Writer, doc PlanDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding plan yaml: %w", err)
	}
	return enc.Close()
}
