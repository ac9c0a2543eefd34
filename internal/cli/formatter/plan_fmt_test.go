package formatter

import (
	"errors"
	"regexp"
	"testing"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/alexanderramin/pathwise/internal/scheduler"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func sampleSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	projects := []domain.Project{
		testutil.NewTestProject("Build a REST API", testutil.WithWeeks(1)),
		testutil.NewTestProject("Deploy with Kubernetes", testutil.WithWeeks(2)),
	}
	sched, err := scheduler.BuildSchedule(projects, testutil.Date(2025, 3, 3))
	require.NoError(t, err)
	return sched
}

func TestFormatSchedule(t *testing.T) {
	out := stripANSI(FormatSchedule(sampleSchedule(t)))

	assert.Contains(t, out, "SCHEDULE")
	assert.Contains(t, out, "Build a REST API")
	assert.Contains(t, out, "2025-03-03")
	assert.Contains(t, out, "2025-03-09")
	assert.Contains(t, out, "2025-03-10")
	assert.Contains(t, out, "2025-03-23")
	assert.Contains(t, out, "Total: 3 weeks")
	assert.Contains(t, out, "Sun, Mar 23 2025")
}

func TestFormatSchedule_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatSchedule(domain.Schedule{})), "No schedule")
}

func TestFormatTitles(t *testing.T) {
	projects := domain.ProjectsFromTitles(testutil.SampleTitles)
	out := stripANSI(FormatTitles(projects))

	for i, p := range projects {
		assert.Contains(t, out, p.Title)
		assert.Contains(t, out, string(rune('1'+i))+".")
	}
	assert.Contains(t, out, "(2 weeks)")
	assert.Contains(t, stripANSI(FormatTitles(nil)), "No project suggestions")
}

func TestFormatAnalysis(t *testing.T) {
	an := &service.Analysis{
		JobTitle: "Backend Engineer",
		Mode:     domain.ModeResumeAndGitHub,
		Repos:    []string{"api", "cli"},
		Skills:   domain.SkillSet{"Go", "SQL"},
		Market:   testutil.SampleMarket,
		Report:   testutil.SampleReport,
		Issues:   []service.Issue{{Stage: service.StageMarket, Err: errors.New("timeout")}},
	}
	out := stripANSI(FormatAnalysis(an, domain.ProjectsFromTitles(testutil.SampleTitles)))

	assert.Contains(t, out, "CAREER ANALYSIS: BACKEND ENGINEER")
	assert.Contains(t, out, "resume + GitHub")
	assert.Contains(t, out, "2 analyzed")
	assert.Contains(t, out, "Go, SQL")
	assert.Contains(t, out, "MARKET CONTEXT")
	assert.Contains(t, out, "SKILL GAP REPORT")
	assert.Contains(t, out, "! market: timeout")
}

func TestFormatDailyTasks_GroupsByProject(t *testing.T) {
	a := testutil.NewTestProject("Alpha", testutil.WithWeeks(1))
	b := testutil.NewTestProject("Beta", testutil.WithWeeks(1))
	tasks := []domain.DailyTask{
		{Project: a, DayIndex: 1, Date: testutil.Date(2025, 1, 6), Description: "Set up repo"},
		{Project: a, DayIndex: 2, Date: testutil.Date(2025, 1, 7), Description: "Write handlers"},
		{Project: b, DayIndex: 1, Date: testutil.Date(2025, 1, 13), Description: "Read docs"},
	}
	out := stripANSI(FormatDailyTasks(tasks))

	assert.Contains(t, out, "ALPHA")
	assert.Contains(t, out, "BETA")
	assert.Contains(t, out, "2025-01-07 Day 2    Write handlers")
	assert.Less(t, indexOf(out, "ALPHA"), indexOf(out, "BETA"))
}

func TestFormatDailyPlanReport(t *testing.T) {
	report := planner.DailyPlanReport{Outcomes: []planner.DailyPlanOutcome{
		{Project: domain.NewProject("Alpha"), Status: domain.DailyPlanCached, Generated: true, Tasks: 14},
		{Project: domain.NewProject("Beta"), Status: domain.DailyPlanFailed, Err: errors.New("llm unavailable")},
	}}
	out := stripANSI(FormatDailyPlanReport(report))

	assert.Contains(t, out, "● ready")
	assert.Contains(t, out, "✖ failed")
	assert.Contains(t, out, "llm unavailable")
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "Run the daily plan again")
	assert.NotContains(t, out, "Durations changed")
}

func TestFormatDailyPlanReport_StaleNarrative(t *testing.T) {
	report := planner.DailyPlanReport{Outcomes: []planner.DailyPlanOutcome{
		{
			Project: testutil.NewTestProject("Alpha", testutil.WithWeeks(3)),
			Status:  domain.DailyPlanCached,
			Tasks:   14,
			Stale:   errors.New("planned for 2 weeks"),
		},
	}}
	out := stripANSI(FormatDailyPlanReport(report))

	assert.Contains(t, out, "planned for 2 weeks")
	assert.Contains(t, out, "Regenerate them to match")
	assert.NotContains(t, out, "Run the daily plan again")
}

func TestFormatProgress(t *testing.T) {
	sched := sampleSchedule(t)

	assert.Contains(t, stripANSI(FormatProgress(scheduler.ComputeProgress(sched, testutil.Date(2025, 3, 1)))), "not started")
	assert.Contains(t, stripANSI(FormatProgress(scheduler.ComputeProgress(sched, testutil.Date(2025, 4, 1)))), "complete")

	out := stripANSI(FormatProgress(scheduler.ComputeProgress(sched, testutil.Date(2025, 3, 11))))
	assert.Contains(t, out, "Deploy with Kubernetes, day 2")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleGreen.Render("xx"), "1"}, {"yyyy", "2"}},
	))
	lines := splitLines(out)
	require.Len(t, lines, 4)
	assert.Equal(t, "A     B", lines[0])
	assert.Equal(t, "xx    1", lines[2])
	assert.Equal(t, "yyyy  2", lines[3])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "日本…", Truncate("日本語テキスト", 3))
}

func TestWeeks(t *testing.T) {
	assert.Equal(t, "1 week", Weeks(1))
	assert.Equal(t, "4 weeks", Weeks(4))
}
