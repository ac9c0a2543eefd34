package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/intelligence"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	resumePrompt = "Analyze this resume"
	marketPrompt = "job market for the role"
	reportPrompt = "Compare my skills"
)

func scriptedGenerator() *testutil.ScriptedGenerator {
	return testutil.NewScriptedGenerator("").
		On(resumePrompt, "Python, SQL").
		On(marketPrompt, testutil.SampleMarket).
		On(reportPrompt, testutil.SampleReport).
		On("Project: Build a REST API", testutil.Narrative("api", 7)).
		On("Project: Create a CLI tool", testutil.Narrative("cli", 14)).
		On("Project: Deploy a microservice", testutil.Narrative("svc", 7))
}

// testApp wires an App around a session backed by gen.
func testApp(t *testing.T, gen *testutil.ScriptedGenerator) *App {
	t.Helper()
	advisor := intelligence.NewAdvisorWithGenerator(gen)
	analyzer := service.NewAnalyzer(advisor, nil, nil, zerolog.Nop())
	return &App{
		Session: service.NewSession(analyzer, advisor, zerolog.Nop()),
		Logger:  zerolog.Nop(),
		Now:     func() time.Time { return testutil.Date(2025, time.March, 3) },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe. Python developer, SQL reporting."), 0o644))
	return path
}

// --- plan ---

func TestPlanCmd_AnalyzeAndSchedule(t *testing.T) {
	app := testApp(t, scriptedGenerator())

	out, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t), "--weeks", "1,2,1")

	require.NoError(t, err)
	assert.Contains(t, out, "Python, SQL")
	assert.Contains(t, out, "SKILL GAP REPORT")
	assert.Contains(t, out, "Build a REST API")
	assert.Contains(t, out, "2025-03-03")
	assert.Contains(t, out, "2025-03-30", "4 weeks from March 3 end on March 30")
	assert.Contains(t, out, "Total: 4 weeks")
	assert.NotContains(t, out, "Work on api step 1", "daily plans only with --daily")
}

func TestPlanCmd_DailyAndExports(t *testing.T) {
	gen := scriptedGenerator()
	app := testApp(t, gen)
	dir := t.TempDir()
	paths := map[string]string{
		"--summary-csv": filepath.Join(dir, "summary.csv"),
		"--daily-csv":   filepath.Join(dir, "daily.csv"),
		"--ics":         filepath.Join(dir, "plan.ics"),
		"--yaml":        filepath.Join(dir, "plan.yaml"),
	}
	args := []string{"plan", "--job", "Backend Engineer", "--resume", writeResume(t),
		"--weeks", "1,2,1", "--start", "2025-01-06", "--daily"}
	for flag, path := range paths {
		args = append(args, flag, path)
	}

	out, err := executeCmd(t, app, args...)

	require.NoError(t, err)
	assert.Contains(t, out, "● ready")
	assert.Equal(t, 3, gen.CallsMatching("Target Role: Backend Engineer\n"))
	for _, path := range paths {
		assert.FileExists(t, path)
		assert.Contains(t, out, "✔ wrote "+path)
	}

	summary, err := os.ReadFile(paths["--summary-csv"])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(summary), "Project,Start Date,End Date,Duration (Weeks)\n"))

	daily, err := os.ReadFile(paths["--daily-csv"])
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(daily)), "\n")
	assert.Len(t, lines, 1+28)
	assert.True(t, strings.HasPrefix(lines[1], "2025-01-06,Day 1,"))

	cal, err := os.ReadFile(paths["--ics"])
	require.NoError(t, err)
	assert.Equal(t, 28, strings.Count(string(cal), "BEGIN:VEVENT"))

	plan, err := os.ReadFile(paths["--yaml"])
	require.NoError(t, err)
	assert.Contains(t, string(plan), "job_title: Backend Engineer")
}

func TestPlanCmd_DailyExportsSkippedWithoutTasks(t *testing.T) {
	app := testApp(t, scriptedGenerator())
	dir := t.TempDir()
	dailyPath := filepath.Join(dir, "daily.csv")
	summaryPath := filepath.Join(dir, "summary.csv")

	out, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t),
		"--daily-csv", dailyPath, "--summary-csv", summaryPath)

	require.NoError(t, err)
	assert.Contains(t, out, "No daily tasks yet")
	assert.NoFileExists(t, dailyPath)
	assert.FileExists(t, summaryPath)
}

func TestPlanCmd_RequiresJobTitle(t *testing.T) {
	gen := scriptedGenerator()
	app := testApp(t, gen)

	_, err := executeCmd(t, app, "plan", "--resume", writeResume(t))

	assert.ErrorIs(t, err, service.ErrJobTitleRequired)
	assert.Empty(t, gen.Prompts())
}

func TestPlanCmd_RequiresProfile(t *testing.T) {
	app := testApp(t, scriptedGenerator())

	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer")

	assert.ErrorIs(t, err, service.ErrProfileRequired)
}

func TestPlanCmd_NoSkills(t *testing.T) {
	gen := testutil.NewScriptedGenerator("")
	app := testApp(t, gen)

	out, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t))

	assert.ErrorIs(t, err, service.ErrNoSkills)
	assert.Contains(t, out, "none found")
	assert.Zero(t, gen.CallsMatching(reportPrompt))
}

func TestPlanCmd_TooManyDurations(t *testing.T) {
	app := testApp(t, scriptedGenerator())

	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t), "--weeks", "1,1,1,1")

	assert.Error(t, err)
}

func TestPlanCmd_DurationOutOfRange(t *testing.T) {
	app := testApp(t, scriptedGenerator())

	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t), "--weeks", "13")

	assert.Error(t, err)
}

func TestPlanCmd_SetupError(t *testing.T) {
	app := testApp(t, scriptedGenerator())
	app.SetupErr = errors.New("missing api key")

	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer")

	assert.EqualError(t, err, "missing api key")
}

func TestPlanCmd_UnsupportedResume(t *testing.T) {
	app := testApp(t, scriptedGenerator())
	path := filepath.Join(t.TempDir(), "cv.odt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", path)

	assert.ErrorContains(t, err, "reading resume")
}

// --- offline tools ---

func TestTitlesCmd_FromStdin(t *testing.T) {
	out, err := executeCmdWithInput(t, &App{}, testutil.SampleReport, "titles", "--plain")

	require.NoError(t, err)
	assert.Equal(t, strings.Join(testutil.SampleTitles, "\n")+"\n", out)
}

func TestTitlesCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(path, []byte(testutil.SampleReport), 0o644))

	out, err := executeCmd(t, &App{}, "titles", path)

	require.NoError(t, err)
	assert.Contains(t, out, "SUGGESTED PROJECTS")
	assert.Contains(t, out, "1. "+testutil.SampleTitles[0])
}

func TestTitlesCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, &App{}, "titles", filepath.Join(t.TempDir(), "nope.md"))

	assert.ErrorContains(t, err, "reading")
}

func TestScheduleCmd_CSV(t *testing.T) {
	out, err := executeCmd(t, &App{}, "schedule",
		"--project", "API", "--project", "CLI",
		"--weeks", "1", "--start", "2025-01-06", "--csv")

	require.NoError(t, err)
	assert.Equal(t, "Project,Start Date,End Date,Duration (Weeks)\n"+
		"API,2025-01-06,2025-01-12,1\n"+
		"CLI,2025-01-13,2025-01-26,2\n", out)
}

func TestScheduleCmd_DefaultsToToday(t *testing.T) {
	app := &App{Now: func() time.Time { return testutil.Date(2025, time.June, 2) }}

	out, err := executeCmd(t, app, "schedule", "--project", "API", "--csv")

	require.NoError(t, err)
	assert.Contains(t, out, "API,2025-06-02,2025-06-15,2")
}

func TestScheduleCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no projects", []string{"schedule"}},
		{"too many durations", []string{"schedule", "--project", "A", "--weeks", "1,2"}},
		{"duration out of range", []string{"schedule", "--project", "A", "--weeks", "0"}},
		{"bad date", []string{"schedule", "--project", "A", "--start", "06/01/2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, &App{}, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestDaysCmd_CSV(t *testing.T) {
	narrative := "Intro\n**Day 1:** Set up\n**Day 2:** Build\nDay 3: Test\n"

	out, err := executeCmdWithInput(t, &App{}, narrative,
		"days", "--start", "2025-01-06", "--project", "API", "--weeks", "1", "--csv", "-")

	require.NoError(t, err)
	assert.Equal(t, "Date,Day,Project,Task\n"+
		"2025-01-06,Day 1,API,Set up\n"+
		"2025-01-07,Day 2,API,Build\n"+
		"2025-01-08,Day 3,API,Test\n", out)
}

func TestDaysCmd_WarnsOnCountMismatch(t *testing.T) {
	out, err := executeCmdWithInput(t, &App{}, "Day 1: A\nDay 3: C\n",
		"days", "--start", "2025-01-06", "--weeks", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "got 2, want 7")
	assert.Contains(t, out, "missing [2]")
}

func TestDaysCmd_Unparseable(t *testing.T) {
	_, err := executeCmdWithInput(t, &App{}, "no days here", "days", "--start", "2025-01-06")

	assert.Error(t, err)
}

func TestSkillsMergeCmd(t *testing.T) {
	out, err := executeCmd(t, &App{}, "skills", "merge", "Python, SQL", "python, Docker")

	require.NoError(t, err)
	assert.Equal(t, "Python, SQL, Docker\n", out)
}

func TestSkillsMergeCmd_EmptyLists(t *testing.T) {
	out, err := executeCmd(t, &App{}, "skills", "merge", "", " ")

	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

// --- import ---

func TestImportCmd_RoundTripsExportedPlan(t *testing.T) {
	app := testApp(t, scriptedGenerator())
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	_, err := executeCmd(t, app, "plan", "--job", "Backend Engineer", "--resume", writeResume(t),
		"--weeks", "1,2,1", "--start", "2025-01-06", "--daily", "--yaml", planPath)
	require.NoError(t, err)

	icsPath := filepath.Join(dir, "again.ics")
	out, err := executeCmd(t, &App{}, "import", planPath, "--ics", icsPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Target role: Backend Engineer")
	assert.Contains(t, out, "Total: 4 weeks")
	cal, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.Equal(t, 28, strings.Count(string(cal), "BEGIN:VEVENT"))
}

func TestImportCmd_InvalidPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects: []\n"), 0o644))

	_, err := executeCmd(t, &App{}, "import", path)

	assert.ErrorContains(t, err, "at least one project")
}
