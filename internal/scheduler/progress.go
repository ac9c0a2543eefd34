package scheduler

import (
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// Progress describes where a date falls within a schedule.
type Progress struct {
	NotStarted bool
	Finished   bool
	// Active is the entry covering the date, nil outside the schedule.
	Active *domain.ScheduleEntry
	// DayIndex is the 1-based day within Active.
	DayIndex   int
	DaysLeft   int
	ElapsedPct float64
}

// ComputeProgress locates now within sched. DaysLeft counts calendar days
// through the completion date, including today.
func ComputeProgress(sched domain.Schedule, now time.Time) Progress {
	if sched.Empty() {
		return Progress{NotStarted: true}
	}

	today := domain.Day(now)
	first := sched.Entries[0].StartDate
	totalDays := daysBetween(first, sched.CompletionDate) + 1

	switch {
	case today.Before(first):
		return Progress{NotStarted: true, DaysLeft: totalDays}
	case today.After(sched.CompletionDate):
		return Progress{Finished: true, ElapsedPct: 100}
	}

	p := Progress{
		DaysLeft:   daysBetween(today, sched.CompletionDate) + 1,
		ElapsedPct: float64(daysBetween(first, today)) / float64(totalDays) * 100,
	}
	for i := range sched.Entries {
		e := &sched.Entries[i]
		if !today.Before(e.StartDate) && !today.After(e.EndDate) {
			p.Active = e
			p.DayIndex = daysBetween(e.StartDate, today) + 1
			break
		}
	}
	return p
}

func daysBetween(a, b time.Time) int {
	return int(domain.Day(b).Sub(domain.Day(a)).Hours() / 24)
}
