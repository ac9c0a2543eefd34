// Package planner holds the session-scoped learning plan: suggested
// projects, their durations, the computed schedule and the cached daily
// narratives generated for each project.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/extract"
	"github.com/alexanderramin/pathwise/internal/scheduler"
	"github.com/mitchellh/hashstructure/v2"
)

// State is the coarse lifecycle stage of a Planner.
type State string

const (
	StateEmpty               State = "empty"
	StateTitlesExtracted     State = "titles_extracted"
	StateDurationsConfigured State = "durations_configured"
	StateScheduleGenerated   State = "schedule_generated"
)

var (
	// ErrNoProjects is returned by operations that need at least one project.
	ErrNoProjects = errors.New("no projects to plan")

	// ErrNoSchedule is returned when daily plans are requested before a
	// schedule has been generated.
	ErrNoSchedule = errors.New("schedule has not been generated")

	// ErrProjectIndex is returned for a project position outside the list.
	ErrProjectIndex = errors.New("project index out of range")
)

// NarrativeSource produces the free-form day-by-day narrative for a project.
type NarrativeSource interface {
	Narrative(ctx context.Context, p domain.Project) (string, error)
}

// NarrativeFunc adapts a function to NarrativeSource.
type NarrativeFunc func(ctx context.Context, p domain.Project) (string, error)

func (f NarrativeFunc) Narrative(ctx context.Context, p domain.Project) (string, error) {
	return f(ctx, p)
}

// dailyPlan is the cached narrative for one project title.
type dailyPlan struct {
	weeks     int
	narrative string
	tasks     []domain.DailyTask
}

// Planner owns the plan for one interactive session. The zero value is
// not usable; call New.
type Planner struct {
	mu          sync.Mutex
	fingerprint uint64
	state       State
	projects    []domain.Project
	schedule    domain.Schedule
	plans       map[string]*dailyPlan
	failures    map[string]error
}

// New returns an empty Planner.
func New() *Planner {
	p := &Planner{}
	p.clear()
	return p
}

func (p *Planner) clear() {
	p.fingerprint = 0
	p.state = StateEmpty
	p.projects = nil
	p.schedule = domain.Schedule{}
	p.plans = make(map[string]*dailyPlan)
	p.failures = make(map[string]error)
}

// Reset discards all plan state. Calling it on an empty planner is a no-op.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clear()
}

// Fingerprint returns a content hash of an ordered title list.
func Fingerprint(titles []string) (uint64, error) {
	return hashstructure.Hash(titles, hashstructure.FormatV2, nil)
}

// LoadTitles installs freshly extracted project titles. When the title list
// differs from the one currently loaded, every downstream value is reset:
// durations go back to the default and the schedule and all cached
// narratives are dropped. An identical list leaves the planner untouched.
// It reports whether a reset happened.
func (p *Planner) LoadTitles(titles []string) (bool, error) {
	projects := domain.ProjectsFromTitles(titles)
	kept := make([]string, len(projects))
	for i, pr := range projects {
		kept[i] = pr.Title
	}

	fp, err := Fingerprint(kept)
	if err != nil {
		return false, fmt.Errorf("fingerprinting titles: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateEmpty && fp == p.fingerprint {
		return false, nil
	}
	if p.state == StateEmpty && len(projects) == 0 {
		return false, nil
	}

	p.clear()
	if len(projects) == 0 {
		return true, nil
	}
	p.fingerprint = fp
	p.projects = projects
	p.state = StateTitlesExtracted
	return true, nil
}

// State returns the current lifecycle stage.
func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Projects returns a copy of the current project list.
func (p *Planner) Projects() []domain.Project {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Project(nil), p.projects...)
}

// Schedule returns a copy of the last generated schedule, if any.
func (p *Planner) Schedule() (domain.Schedule, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sched := p.schedule
	sched.Entries = append([]domain.ScheduleEntry(nil), p.schedule.Entries...)
	return sched, p.state == StateScheduleGenerated
}

// SetDuration changes the duration of the project at index (0-based). The
// schedule is dropped because it no longer matches. Cached narratives are
// kept; use Regenerate to request one sized to the new duration.
func (p *Planner) SetDuration(index, weeks int) error {
	if err := domain.ValidateDurationWeeks(weeks); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= len(p.projects) {
		return fmt.Errorf("%w: %d (have %d projects)", ErrProjectIndex, index+1, len(p.projects))
	}
	pr := &p.projects[index]
	if pr.DurationWeeks == weeks {
		if p.state == StateTitlesExtracted {
			p.state = StateDurationsConfigured
		}
		return nil
	}
	pr.DurationWeeks = weeks
	p.schedule = domain.Schedule{}
	p.state = StateDurationsConfigured
	return nil
}

// SetDurations applies weeks positionally. Extra values are an error; a
// shorter list leaves the remaining projects unchanged.
func (p *Planner) SetDurations(weeks []int) error {
	if n := len(p.Projects()); len(weeks) > n {
		return fmt.Errorf("%w: %d durations for %d projects", ErrProjectIndex, len(weeks), n)
	}
	for i, w := range weeks {
		if err := p.SetDuration(i, w); err != nil {
			return fmt.Errorf("project %d: %w", i+1, err)
		}
	}
	return nil
}

// GenerateSchedule recomputes the schedule from the current durations,
// starting at ref. Repeating it with the same inputs yields the same
// schedule.
func (p *Planner) GenerateSchedule(ref time.Time) (domain.Schedule, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.projects) == 0 {
		return domain.Schedule{}, ErrNoProjects
	}
	sched, err := scheduler.BuildSchedule(p.projects, ref)
	if err != nil {
		return domain.Schedule{}, err
	}
	p.schedule = sched
	p.state = StateScheduleGenerated
	return sched, nil
}

// DailyPlanOutcome is the per-project result of a daily plan request.
type DailyPlanOutcome struct {
	Project   domain.Project
	Status    domain.DailyPlanStatus
	Generated bool // narrative produced during this call rather than cached
	Tasks     int
	Err       error
	// Stale is set when the narrative was written for a different duration.
	Stale error
}

// DailyPlanReport summarises one GenerateDailyPlans call.
type DailyPlanReport struct {
	Outcomes []DailyPlanOutcome
}

// Complete reports whether every project has parsed daily tasks.
func (r DailyPlanReport) Complete() bool {
	for _, o := range r.Outcomes {
		if o.Status != domain.DailyPlanCached {
			return false
		}
	}
	return len(r.Outcomes) > 0
}

// HasStale reports whether any narrative was written for an older duration.
func (r DailyPlanReport) HasStale() bool {
	for _, o := range r.Outcomes {
		if o.Stale != nil {
			return true
		}
	}
	return false
}

// Incomplete returns the outcomes that did not yield tasks.
func (r DailyPlanReport) Incomplete() []DailyPlanOutcome {
	var out []DailyPlanOutcome
	for _, o := range r.Outcomes {
		if o.Status != domain.DailyPlanCached {
			out = append(out, o)
		}
	}
	return out
}

// GenerateDailyPlans fetches a narrative for every scheduled project that
// has none cached, parses it, and caches the result. Projects are handled
// independently: a failure is recorded for that project and the rest
// continue. Failed projects are retried on the next call; cached ones are
// never regenerated.
func (p *Planner) GenerateDailyPlans(ctx context.Context, src NarrativeSource) (DailyPlanReport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateScheduleGenerated {
		return DailyPlanReport{}, ErrNoSchedule
	}

	var report DailyPlanReport
	for _, entry := range p.schedule.Entries {
		title := entry.Project.Title
		outcome := DailyPlanOutcome{Project: entry.Project}

		plan, cached := p.plans[title]
		if !cached {
			narrative, err := src.Narrative(ctx, entry.Project)
			if err != nil {
				p.failures[title] = err
				outcome.Status = domain.DailyPlanFailed
				outcome.Err = err
				report.Outcomes = append(report.Outcomes, outcome)
				continue
			}
			delete(p.failures, title)
			plan = &dailyPlan{weeks: entry.Project.DurationWeeks, narrative: narrative}
			plan.tasks, _ = extract.ParseDailyTasks(narrative, entry.Project, entry.StartDate)
			p.plans[title] = plan
			outcome.Generated = true
		}

		outcome.Tasks = len(plan.tasks)
		if plan.weeks != entry.Project.DurationWeeks {
			if err := extract.ValidateTaskCount(plan.tasks, entry.Project.DurationWeeks); err != nil {
				outcome.Stale = fmt.Errorf("planned for %d weeks: %w", plan.weeks, err)
			}
		}
		if len(plan.tasks) == 0 {
			outcome.Status = domain.DailyPlanUnparseable
			outcome.Err = extract.ErrUnparseablePlan
		} else {
			outcome.Status = domain.DailyPlanCached
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report, nil
}

// Regenerate drops the cached narrative for a project so the next
// GenerateDailyPlans call requests a fresh one.
func (p *Planner) Regenerate(title string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.plans[title]
	delete(p.plans, title)
	delete(p.failures, title)
	return ok
}

// DailyPlanStatus reports the narrative state of a project.
func (p *Planner) DailyPlanStatus(title string) domain.DailyPlanStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	if plan, ok := p.plans[title]; ok {
		if len(plan.tasks) == 0 {
			return domain.DailyPlanUnparseable
		}
		return domain.DailyPlanCached
	}
	if _, ok := p.failures[title]; ok {
		return domain.DailyPlanFailed
	}
	return domain.DailyPlanPending
}

// Narrative returns the cached narrative text for a project.
func (p *Planner) Narrative(title string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	plan, ok := p.plans[title]
	if !ok {
		return "", false
	}
	return plan.narrative, true
}

// DailyTasks returns every parsed task in schedule order, dated against the
// current schedule. Projects without cached tasks contribute nothing.
func (p *Planner) DailyTasks() []domain.DailyTask {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateScheduleGenerated {
		return nil
	}
	var tasks []domain.DailyTask
	for _, entry := range p.schedule.Entries {
		plan, ok := p.plans[entry.Project.Title]
		if !ok {
			continue
		}
		for _, t := range plan.tasks {
			t.Project = entry.Project
			t.Date = domain.AddDays(entry.StartDate, t.DayIndex-1)
			tasks = append(tasks, t)
		}
	}
	return tasks
}
