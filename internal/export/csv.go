// Package export writes schedules and daily tasks as CSV, iCalendar and
// YAML.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/pathwise/internal/domain"
)

var (
	summaryHeader = []string{"Project", "Start Date", "End Date", "Duration (Weeks)"}
	dailyHeader   = []string{"Date", "Day", "Project", "Task"}
)

// Default file names used when exporting a whole plan to a directory.
const (
	SummaryCSVName = "career_planner_summary.csv"
	DailyCSVName   = "career_planner_detailed.csv"
	CalendarName   = "career_planner.ics"
	PlanYAMLName   = "career_planner.yaml"
)

// WriteSummaryCSV writes one row per schedule entry.
func WriteSummaryCSV(w io.Writer, s domain.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for _, e := range s.Entries {
		row := []string{
			e.Project.Title,
			domain.FormatDate(e.StartDate),
			domain.FormatDate(e.EndDate),
			strconv.Itoa(e.Project.DurationWeeks),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDailyCSV writes one row per daily task, in the given order.
func WriteDailyCSV(w io.Writer, tasks []domain.DailyTask) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dailyHeader); err != nil {
		return fmt.Errorf("writing daily header: %w", err)
	}
	for _, t := range tasks {
		row := []string{
			domain.FormatDate(t.Date),
			t.DayLabel(),
			t.Project.Title,
			t.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing daily row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
