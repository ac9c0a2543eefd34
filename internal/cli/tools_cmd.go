package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/export"
	"github.com/alexanderramin/pathwise/internal/extract"
	"github.com/alexanderramin/pathwise/internal/scheduler"
	"github.com/spf13/cobra"
)

// readInput returns the contents of the named file, or stdin for "-" or no
// argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func newTitlesCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "titles [file|-]",
		Short: "Extract suggested project titles from a recommendation report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			titles := extract.ExtractProjectTitles(report)
			out := cmd.OutOrStdout()
			if plain {
				for _, t := range titles {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			fmt.Fprint(out, formatter.FormatTitles(domain.ProjectsFromTitles(titles)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print one title per line")
	return cmd
}

func newScheduleCmd(app *App) *cobra.Command {
	var (
		titles []string
		weeks  []int
		start  string
		csvOut bool
	)

	cmd := &cobra.Command{
		Use:   "schedule --project TITLE [--project TITLE ...]",
		Short: "Lay projects out back to back from a start date",
		Example: `  pathwise schedule --project "REST API" --project "CLI tool" --weeks 2,3 --start 2025-01-06`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(titles) == 0 {
				return errors.New("at least one --project is required")
			}
			if len(weeks) > len(titles) {
				return fmt.Errorf("%d durations for %d projects", len(weeks), len(titles))
			}
			projects := make([]domain.Project, len(titles))
			for i, t := range titles {
				projects[i] = domain.NewProject(t)
				if i < len(weeks) {
					projects[i].DurationWeeks = weeks[i]
				}
			}

			ref, err := parseStart(start, app.now())
			if err != nil {
				return err
			}
			sched, err := scheduler.BuildSchedule(projects, ref)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if csvOut {
				return export.WriteSummaryCSV(out, sched)
			}
			fmt.Fprint(out, formatter.FormatSchedule(sched))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&titles, "project", "p", nil, "Project title (repeatable, in order)")
	cmd.Flags().IntSliceVarP(&weeks, "weeks", "w", nil, fmt.Sprintf("Durations in weeks (default %d each)", domain.DefaultDurationWeeks))
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&csvOut, "csv", false, "Print the summary CSV instead of a table")
	return cmd
}

func newDaysCmd(app *App) *cobra.Command {
	var (
		start  string
		weeks  int
		title  string
		csvOut bool
	)

	cmd := &cobra.Command{
		Use:   "days --start DATE [file|-]",
		Short: `Parse "Day N:" lines from a project narrative into dated tasks`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateDurationWeeks(weeks); err != nil {
				return err
			}
			ref, err := parseStart(start, app.now())
			if err != nil {
				return err
			}
			narrative, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			project := domain.Project{Title: title, DurationWeeks: weeks}
			tasks, err := extract.ParseDailyTasks(narrative, project, ref)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if csvOut {
				return export.WriteDailyCSV(out, tasks)
			}
			fmt.Fprint(out, formatter.FormatDailyTasks(tasks))

			errOut := cmd.ErrOrStderr()
			if err := extract.ValidateTaskCount(tasks, weeks); err != nil {
				fmt.Fprintln(errOut, formatter.Warn(err.Error()))
			}
			if dups, missing := extract.DayIndexAnomalies(tasks); len(dups)+len(missing) > 0 {
				fmt.Fprintln(errOut, formatter.Warn(fmt.Sprintf("day numbering: duplicates %v, missing %v", dups, missing)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Date of day 1 (YYYY-MM-DD, default today)")
	cmd.Flags().IntVarP(&weeks, "weeks", "w", domain.DefaultDurationWeeks, "Project duration used to check the task count")
	cmd.Flags().StringVarP(&title, "project", "p", "Project", "Project title attached to each task")
	cmd.Flags().BoolVar(&csvOut, "csv", false, "Print the daily CSV instead of a listing")
	return cmd
}

func newSkillsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Skill list utilities",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "merge LIST LIST",
		Short: "Merge two comma-separated skill lists without duplicates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged := domain.MergeSkills(domain.ParseSkillList(args[0]), domain.ParseSkillList(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(merged.String()))
			return nil
		},
	})
	return cmd
}
