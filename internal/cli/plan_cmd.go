package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/resume"
	"github.com/alexanderramin/pathwise/internal/scheduler"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/spf13/cobra"
)

// planFlags are the non-interactive inputs of the plan command.
type planFlags struct {
	jobTitle   string
	resumePath string
	githubUser string
	weeks      []int
	start      string
	daily      bool
	exports    exportPaths
}

func newPlanCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Analyze a profile against a target role and plan learning projects",
		Long: `Analyze a resume and/or GitHub profile against a target job title,
report matched and missing skills, suggest up to three projects, and lay
them out as a sequential schedule with optional day-by-day tasks.

Without a terminal every input comes from flags. On a terminal, missing
inputs are asked for and an action menu follows the analysis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SetupErr != nil {
				return app.SetupErr
			}
			if app.Session == nil {
				return errors.New("planning session is not configured")
			}
			if app.interactive() && f.jobTitle == "" {
				return runInteractivePlan(cmd, app, f)
			}
			return runPlan(cmd, app, f)
		},
	}

	cmd.Flags().StringVarP(&f.jobTitle, "job", "j", "", "Target job title")
	cmd.Flags().StringVarP(&f.resumePath, "resume", "r", "", "Resume file (.pdf, .docx, .txt) or s3://bucket/key")
	cmd.Flags().StringVarP(&f.githubUser, "github", "g", "", "GitHub username or profile URL")
	cmd.Flags().IntSliceVarP(&f.weeks, "weeks", "w", nil, "Project durations in weeks, in suggestion order")
	cmd.Flags().StringVar(&f.start, "start", "", "Schedule start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&f.daily, "daily", false, "Generate day-by-day tasks for every project")
	f.exports.register(cmd)

	return cmd
}

// runPlan is the flag-driven flow: analyze, schedule, optional daily
// plans, exports.
func runPlan(cmd *cobra.Command, app *App, f planFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if _, err := analyze(ctx, cmd, app, profileInput{
		JobTitle:   f.jobTitle,
		ResumePath: f.resumePath,
		GitHubUser: f.githubUser,
	}); err != nil {
		return err
	}

	plan := app.Session.Plan()
	if len(plan.Projects()) == 0 {
		fmt.Fprintln(out, formatter.Warn("No projects to schedule."))
		return nil
	}

	if len(f.weeks) > 0 {
		if err := plan.SetDurations(f.weeks); err != nil {
			return err
		}
	}

	start, err := parseStart(f.start, app.now())
	if err != nil {
		return err
	}
	if err := generateSchedule(cmd, app, start); err != nil {
		return err
	}

	if f.daily {
		if err := generateDailyPlans(ctx, cmd, app); err != nil {
			return err
		}
	}

	return f.exports.writeSession(out, app.Session, app.now())
}

// analyze loads the resume if any, runs the analysis and prints it.
func analyze(ctx context.Context, cmd *cobra.Command, app *App, in profileInput) (*service.Analysis, error) {
	out := cmd.OutOrStdout()

	req := service.AnalyzeRequest{
		JobTitle:   strings.TrimSpace(in.JobTitle),
		GitHubUser: strings.TrimSpace(in.GitHubUser),
	}
	if path := strings.TrimSpace(in.ResumePath); path != "" {
		doc, err := loadResume(ctx, app, path)
		if err != nil {
			return nil, err
		}
		req.Resume = doc
	}

	stop := app.spinner(cmd.ErrOrStderr(), "Analyzing profile…")
	an, err := app.Session.Analyze(ctx, req)
	stop()

	if errors.Is(err, service.ErrNoSkills) {
		fmt.Fprintln(out, formatter.FormatAnalysis(an, nil))
		return an, err
	}
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, formatter.FormatAnalysis(an, app.Session.Plan().Projects()))
	return an, nil
}

func loadResume(ctx context.Context, app *App, path string) (*resume.Document, error) {
	loader := app.Resumes
	if loader == nil {
		loader = resume.NewLoader(nil)
	}
	doc, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading resume: %w", err)
	}
	return doc, nil
}

func parseStart(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return domain.Day(now), nil
	}
	return domain.ParseDate(strings.TrimSpace(s))
}

func generateSchedule(cmd *cobra.Command, app *App, start time.Time) error {
	sched, err := app.Session.GenerateSchedule(start)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatSchedule(sched))
	if line := formatter.FormatProgress(scheduler.ComputeProgress(sched, app.now())); line != "" {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)
	return nil
}

func generateDailyPlans(ctx context.Context, cmd *cobra.Command, app *App) error {
	stop := app.spinner(cmd.ErrOrStderr(), "Writing daily plans…")
	report, err := app.Session.GenerateDailyPlans(ctx)
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatDailyPlanReport(report))
	fmt.Fprintln(out, formatter.FormatDailyTasks(app.Session.Plan().DailyTasks()))
	return nil
}

// --- Interactive flow ---

const (
	actionDurations  = "durations"
	actionSchedule   = "schedule"
	actionDaily      = "daily"
	actionRegenerate = "regenerate"
	actionExport     = "export"
	actionReset      = "reset"
	actionQuit       = "quit"
)

// runInteractivePlan asks for the profile, analyzes it, then loops over the
// action menu until the user quits. Reset starts over with a new profile.
func runInteractivePlan(cmd *cobra.Command, app *App, f planFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	for {
		in := profileInput{ResumePath: f.resumePath, GitHubUser: f.githubUser}
		if err := profileForm(out, &in).Run(); err != nil {
			return err
		}

		_, err := analyze(ctx, cmd, app, in)
		switch {
		case errors.Is(err, service.ErrNoSkills),
			errors.Is(err, service.ErrProfileRequired),
			errors.Is(err, resume.ErrUnsupportedType),
			errors.Is(err, resume.ErrEmptyDocument):
			fmt.Fprintln(out, formatter.Warn(err.Error()))
			continue
		case err != nil:
			return err
		}

		again, err := actionLoop(ctx, cmd, app)
		if err != nil || !again {
			return err
		}
	}
}

// actionLoop runs the action menu. It returns true when the user reset the
// session and wants to start a new analysis.
func actionLoop(ctx context.Context, cmd *cobra.Command, app *App) (bool, error) {
	out := cmd.OutOrStdout()
	plan := app.Session.Plan()

	for {
		if len(plan.Projects()) == 0 {
			fmt.Fprintln(out, formatter.Warn("No projects were suggested for this profile."))
		}

		action := actionQuit
		if err := selectForm(out, "What next?", menuOptions(app), &action).Run(); err != nil {
			return false, err
		}

		var err error
		switch action {
		case actionDurations:
			err = editDurations(out, app)
		case actionSchedule:
			err = promptSchedule(cmd, app)
		case actionDaily:
			err = generateDailyPlans(ctx, cmd, app)
		case actionRegenerate:
			err = promptRegenerate(out, app)
		case actionExport:
			err = promptExport(out, app)
		case actionReset:
			confirm := false
			if err := confirmForm(out, "Discard this analysis and plan?", &confirm).Run(); err != nil {
				return false, err
			}
			if confirm {
				app.Session.Reset()
				return true, nil
			}
		case actionQuit:
			return false, nil
		}
		if err != nil {
			fmt.Fprintln(out, formatter.Warn(err.Error()))
		}
	}
}

func menuOptions(app *App) []huhOption {
	plan := app.Session.Plan()
	hasProjects := len(plan.Projects()) > 0
	_, scheduled := plan.Schedule()

	var opts []huhOption
	if hasProjects {
		opts = append(opts,
			newOption("Edit project durations", actionDurations),
			newOption("Generate schedule", actionSchedule),
		)
	}
	if scheduled {
		opts = append(opts,
			newOption("Generate daily plan", actionDaily),
			newOption("Regenerate a project's daily plan", actionRegenerate),
			newOption("Export plan", actionExport),
		)
	}
	return append(opts,
		newOption("Start over", actionReset),
		newOption("Quit", actionQuit),
	)
}

func editDurations(out io.Writer, app *App) error {
	plan := app.Session.Plan()
	projects := plan.Projects()
	values := make([]string, len(projects))
	if err := durationsForm(out, projects, values).Run(); err != nil {
		return err
	}
	weeks, err := parseWeeks(values)
	if err != nil {
		return err
	}
	if err := plan.SetDurations(weeks); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatTitles(plan.Projects()))
	return nil
}

func promptSchedule(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	today := domain.FormatDate(app.now())
	value := ""
	if err := dateForm(out, "Start date", today, &value).Run(); err != nil {
		return err
	}
	start, err := parseStart(value, app.now())
	if err != nil {
		return err
	}
	return generateSchedule(cmd, app, start)
}

func promptRegenerate(out io.Writer, app *App) error {
	plan := app.Session.Plan()
	var opts []huhOption
	for _, p := range plan.Projects() {
		label := fmt.Sprintf("%s  %s", p.Title, formatter.StatusBadge(plan.DailyPlanStatus(p.Title)))
		opts = append(opts, newOption(label, p.Title))
	}
	if len(opts) == 0 {
		return nil
	}
	title := ""
	if err := selectForm(out, "Which project?", opts, &title).Run(); err != nil {
		return err
	}
	if plan.Regenerate(title) {
		fmt.Fprintln(out, formatter.Dim("Cleared the daily plan for "+title+". Generate the daily plan to fetch a new one."))
	}
	return nil
}

func promptExport(out io.Writer, app *App) error {
	dir := "."
	if err := textForm(out, "Export directory", ".", &dir).Run(); err != nil {
		return err
	}
	return defaultExportPaths(dir).writeSession(out, app.Session, app.now())
}
