package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/alexanderramin/pathwise/internal/scheduler"
	"github.com/alexanderramin/pathwise/internal/service"
)

// FormatSkills renders a skill list as a wrapped comma-separated line.
func FormatSkills(label string, skills domain.SkillSet) string {
	if len(skills) == 0 {
		return fmt.Sprintf("%s %s", Bold(label+":"), Dim("none found"))
	}
	return fmt.Sprintf("%s %s", Bold(label+":"), StyleFg.Render(skills.String()))
}

// FormatTitles renders the numbered project suggestions.
func FormatTitles(projects []domain.Project) string {
	if len(projects) == 0 {
		return Dim("No project suggestions were found.")
	}
	var b strings.Builder
	b.WriteString(Header("Suggested projects"))
	b.WriteString("\n")
	for i, p := range projects {
		fmt.Fprintf(&b, "  %s %s %s\n",
			StylePurple.Render(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(p.Title),
			Dim("("+Weeks(p.DurationWeeks)+")"))
	}
	return b.String()
}

// FormatAnalysis renders the full analysis: profile, skills, market
// context, report and suggested titles.
func FormatAnalysis(an *service.Analysis, projects []domain.Project) string {
	var b strings.Builder

	b.WriteString(Header("Career analysis: " + an.JobTitle))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Profile:"), ModeBadge(an.Mode))
	if len(an.Repos) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Bold("Repositories:"), Dim(fmt.Sprintf("%d analyzed", len(an.Repos))))
	}
	b.WriteString(FormatSkills("Skills", an.Skills))
	b.WriteString("\n\n")

	if an.Market != "" {
		b.WriteString(Header("Market context"))
		b.WriteString("\n")
		b.WriteString(an.Market)
		b.WriteString("\n\n")
	}
	if an.Report != "" {
		b.WriteString(Header("Skill gap report"))
		b.WriteString("\n")
		b.WriteString(an.Report)
		b.WriteString("\n\n")
	}

	b.WriteString(FormatTitles(projects))

	if len(an.Issues) > 0 {
		b.WriteString("\n")
		for _, issue := range an.Issues {
			b.WriteString(Warn(issue.String()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSchedule renders the schedule as a table followed by the totals.
func FormatSchedule(s domain.Schedule) string {
	if s.Empty() {
		return Dim("No schedule generated yet.")
	}
	rows := make([][]string, 0, len(s.Entries))
	for i, e := range s.Entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Project.Title,
			domain.FormatDate(e.StartDate),
			domain.FormatDate(e.EndDate),
			Weeks(e.Project.DurationWeeks),
		})
	}
	var b strings.Builder
	b.WriteString(Header("Schedule"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "PROJECT", "START", "END", "DURATION"}, rows))
	fmt.Fprintf(&b, "\n%s %s   %s %s\n",
		Bold("Total:"), Weeks(s.TotalWeeks),
		Bold("Completion:"), HumanDate(s.CompletionDate))
	return b.String()
}

// FormatProgress renders where today falls within the schedule.
func FormatProgress(p scheduler.Progress) string {
	switch {
	case p.NotStarted:
		return Dim("Plan has not started yet.")
	case p.Finished:
		return StyleGreen.Render("Plan complete.")
	case p.Active != nil:
		return fmt.Sprintf("%s %s, day %d. %s",
			Bold("Today:"), p.Active.Project.Title, p.DayIndex,
			Dim(fmt.Sprintf("%d days left, %.0f%% elapsed", p.DaysLeft, p.ElapsedPct)))
	default:
		return ""
	}
}

// FormatDailyTasks renders parsed tasks grouped by project.
func FormatDailyTasks(tasks []domain.DailyTask) string {
	if len(tasks) == 0 {
		return Dim("No daily tasks available.")
	}
	var b strings.Builder
	current := ""
	for _, t := range tasks {
		if t.Project.Title != current {
			if current != "" {
				b.WriteString("\n")
			}
			current = t.Project.Title
			b.WriteString(Header(current))
			b.WriteString("\n")
		}
		label := t.DayLabel()
		fmt.Fprintf(&b, "  %s %s%s  %s\n",
			Dim(domain.FormatDate(t.Date)),
			StylePurple.Render(label),
			strings.Repeat(" ", max(7-len(label), 0)),
			t.Description)
	}
	return b.String()
}

// FormatDailyPlanReport renders the per-project outcome of a daily plan run.
func FormatDailyPlanReport(r planner.DailyPlanReport) string {
	if len(r.Outcomes) == 0 {
		return Dim("No projects scheduled.")
	}
	rows := make([][]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		note := ""
		switch {
		case o.Err != nil && o.Status == domain.DailyPlanFailed:
			note = Truncate(o.Err.Error(), 60)
		case o.Stale != nil:
			note = Truncate(o.Stale.Error(), 60)
		case o.Generated:
			note = "generated"
		default:
			note = "cached"
		}
		rows = append(rows, []string{
			o.Project.Title,
			StatusBadge(o.Status),
			fmt.Sprintf("%d", o.Tasks),
			Dim(note),
		})
	}
	out := RenderTable([]string{"PROJECT", "STATUS", "TASKS", "NOTE"}, rows)
	if !r.Complete() {
		out += "\n" + Warn("Some projects have no daily tasks. Run the daily plan again to retry.") + "\n"
	}
	if r.HasStale() {
		out += "\n" + Warn("Durations changed since some plans were written. Regenerate them to match.") + "\n"
	}
	return out
}
