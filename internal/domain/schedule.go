package domain

import (
	"fmt"
	"time"
)

// DateLayout is the serialization format for all calendar dates.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ScheduleEntry is the date range assigned to one project.
type ScheduleEntry struct {
	Project   Project
	StartDate time.Time
	EndDate   time.Time
}

// Schedule is the ordered, contiguous set of project date ranges.
type Schedule struct {
	Entries        []ScheduleEntry
	TotalWeeks     int
	CompletionDate time.Time
}

// Empty reports whether the schedule holds no entries.
func (s Schedule) Empty() bool {
	return len(s.Entries) == 0
}

// EntryFor returns the entry for the project with the given title.
func (s Schedule) EntryFor(title string) (ScheduleEntry, bool) {
	for _, e := range s.Entries {
		if e.Project.Title == title {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// DailyTask is one dated unit of work parsed from a project's narrative.
type DailyTask struct {
	Date        time.Time
	DayIndex    int
	Project     Project
	Description string
}

// DayLabel returns the human label, e.g. "Day 3".
func (t DailyTask) DayLabel() string {
	return fmt.Sprintf("Day %d", t.DayIndex)
}
