package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/export"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/spf13/cobra"
)

// exportPaths are the optional export destinations. Empty paths are skipped.
type exportPaths struct {
	summaryCSV string
	dailyCSV   string
	ics        string
	yaml       string
}

func (e *exportPaths) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&e.summaryCSV, "summary-csv", "", "Write the schedule summary CSV to this path")
	cmd.Flags().StringVar(&e.dailyCSV, "daily-csv", "", "Write the daily task CSV to this path")
	cmd.Flags().StringVar(&e.ics, "ics", "", "Write daily tasks as an iCalendar file to this path")
	cmd.Flags().StringVar(&e.yaml, "yaml", "", "Write the whole plan as YAML to this path")
}

func defaultExportPaths(dir string) exportPaths {
	return exportPaths{
		summaryCSV: filepath.Join(dir, export.SummaryCSVName),
		dailyCSV:   filepath.Join(dir, export.DailyCSVName),
		ics:        filepath.Join(dir, export.CalendarName),
		yaml:       filepath.Join(dir, export.PlanYAMLName),
	}
}

func (e exportPaths) empty() bool {
	return e == exportPaths{}
}

// exportData is everything an export can include.
type exportData struct {
	jobTitle string
	skills   domain.SkillSet
	schedule domain.Schedule
	tasks    []domain.DailyTask
}

// sessionExportData collects the session's current plan.
func sessionExportData(s *service.Session) (exportData, error) {
	sched, ok := s.Plan().Schedule()
	if !ok {
		return exportData{}, fmt.Errorf("export: %w", planner.ErrNoSchedule)
	}
	data := exportData{schedule: sched, tasks: s.Plan().DailyTasks()}
	if an := s.Analysis(); an != nil {
		data.jobTitle, data.skills = an.JobTitle, an.Skills
	}
	return data, nil
}

// writeSession exports the session's plan.
func (e exportPaths) writeSession(out io.Writer, s *service.Session, now time.Time) error {
	if e.empty() {
		return nil
	}
	data, err := sessionExportData(s)
	if err != nil {
		return err
	}
	return e.write(out, data, now)
}

// write exports data. Daily exports are skipped with a warning when there
// are no daily tasks.
func (e exportPaths) write(out io.Writer, data exportData, now time.Time) error {
	sched, tasks := data.schedule, data.tasks

	written := func(path string) {
		fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✔ wrote"), path)
	}

	if e.summaryCSV != "" {
		if err := export.WriteFile(e.summaryCSV, func(w io.Writer) error {
			return export.WriteSummaryCSV(w, sched)
		}); err != nil {
			return err
		}
		written(e.summaryCSV)
	}

	if len(tasks) == 0 && (e.dailyCSV != "" || e.ics != "") {
		fmt.Fprintln(out, formatter.Warn("No daily tasks yet; skipping daily CSV and calendar export."))
	} else {
		if e.dailyCSV != "" {
			if err := export.WriteFile(e.dailyCSV, func(w io.Writer) error {
				return export.WriteDailyCSV(w, tasks)
			}); err != nil {
				return err
			}
			written(e.dailyCSV)
		}
		if e.ics != "" {
			if err := export.WriteFile(e.ics, func(w io.Writer) error {
				return export.WriteCalendar(w, tasks, export.CalendarOptions{Name: calendarName(data.jobTitle), Stamp: now})
			}); err != nil {
				return err
			}
			written(e.ics)
		}
	}

	if e.yaml != "" {
		doc := export.NewPlanDocument(data.jobTitle, data.skills, sched, tasks, now)
		if err := export.WriteFile(e.yaml, func(w io.Writer) error {
			return export.WriteYAML(w, doc)
		}); err != nil {
			return err
		}
		written(e.yaml)
	}
	return nil
}

func calendarName(jobTitle string) string {
	if jobTitle == "" {
		return "Learning plan"
	}
	return "Learning plan: " + jobTitle
}
