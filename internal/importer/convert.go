package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/export"
	"github.com/alexanderramin/pathwise/internal/scheduler"
)

// ErrInvalidPlan is returned by Load when a plan file fails validation.
var ErrInvalidPlan = errors.New("invalid plan file")

// Plan is an imported plan ready for display or export.
type Plan struct {
	JobTitle string
	Skills   domain.SkillSet
	Schedule domain.Schedule
	Tasks    []domain.DailyTask
}

// Convert rebuilds the schedule and daily tasks of a validated plan.
// Call ValidatePlanDocument first; Convert assumes the document is valid.
// The schedule is recomputed from the first start date and the durations,
// and every task is dated from its day number, so stored dates are not
// trusted.
func Convert(doc *export.PlanDocument) (*Plan, error) {
	if len(doc.Projects) == 0 {
		return nil, fmt.Errorf("converting plan: no projects")
	}
	start, err := domain.ParseDate(doc.Projects[0].StartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}

	projects := make([]domain.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		projects = append(projects, domain.Project{
			Title:         strings.TrimSpace(p.Title),
			DurationWeeks: p.Weeks,
		})
	}
	sched, err := scheduler.BuildSchedule(projects, start)
	if err != nil {
		return nil, fmt.Errorf("rebuilding schedule: %w", err)
	}

	plan := &Plan{
		JobTitle: doc.JobTitle,
		Skills:   domain.MergeSkills(doc.Skills, nil),
		Schedule: sched,
	}
	for i, p := range doc.Projects {
		entry := sched.Entries[i]
		for _, d := range p.Days {
			plan.Tasks = append(plan.Tasks, domain.DailyTask{
				Date:        domain.AddDays(entry.StartDate, d.Day-1),
				DayIndex:    d.Day,
				Project:     entry.Project,
				Description: strings.TrimSpace(d.Task),
			})
		}
	}
	return plan, nil
}

// Load reads, validates and converts a plan file. Validation failures are
// joined into a single error.
func Load(path string) (*Plan, error) {
	doc, err := LoadPlanDocument(path)
	if err != nil {
		return nil, err
	}
	if errs := ValidatePlanDocument(doc); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = "  - " + e.Error()
		}
		return nil, fmt.Errorf("%w:\n%s", ErrInvalidPlan, strings.Join(msgs, "\n"))
	}
	return Convert(doc)
}
