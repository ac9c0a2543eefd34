// Package scheduler assigns calendar date ranges to learning projects.
package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// BuildSchedule packs projects back to back starting at ref, in list order.
// Each project runs 7*DurationWeeks days; the next one starts the day after
// the previous one ends. The result depends only on its inputs.
func BuildSchedule(projects []domain.Project, ref time.Time) (domain.Schedule, error) {
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return domain.Schedule{}, fmt.Errorf("project %d (%q): %w", i+1, p.Title, err)
		}
	}

	sched := domain.Schedule{
		Entries: make([]domain.ScheduleEntry, 0, len(projects)),
	}
	next := domain.Day(ref)
	for _, p := range projects {
		entry := domain.ScheduleEntry{
			Project:   p,
			StartDate: next,
			EndDate:   domain.AddDays(next, p.Days()-1),
		}
		sched.Entries = append(sched.Entries, entry)
		sched.TotalWeeks += p.DurationWeeks
		sched.CompletionDate = entry.EndDate
		next = domain.AddDays(entry.EndDate, 1)
	}
	return sched, nil
}
