package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/intelligence"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/rs/zerolog"
)

// ErrNoAnalysis is returned by session operations that need a completed analysis.
var ErrNoAnalysis = errors.New("no analysis has been run in this session")

// TaskCounter counts parsed daily tasks.
type TaskCounter interface {
	AddDailyTasks(n int)
}

// Session is one interactive planning session: the latest analysis and the
// plan built from its project titles. Nothing outlives the session.
type Session struct {
	analyzer *Analyzer
	advisor  *intelligence.Advisor
	plan     *planner.Planner
	logger   zerolog.Logger
	observer UseCaseObserver
	tasks    TaskCounter

	mu       sync.Mutex
	analysis *Analysis
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionObserver reports session use cases.
func WithSessionObserver(o UseCaseObserver) SessionOption {
	return func(s *Session) { s.observer = o }
}

// WithTaskCounter counts tasks parsed from daily plans.
func WithTaskCounter(c TaskCounter) SessionOption {
	return func(s *Session) { s.tasks = c }
}

// NewSession creates an empty session.
func NewSession(analyzer *Analyzer, advisor *intelligence.Advisor, logger zerolog.Logger, opts ...SessionOption) *Session {
	s := &Session{
		analyzer: analyzer,
		advisor:  advisor,
		plan:     planner.New(),
		logger:   logger.With().Str("component", "session").Logger(),
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the pipeline and loads the resulting titles into the plan.
// A failed precondition leaves the session untouched. A new title list
// resets durations, schedule and cached narratives; the same list keeps them.
func (s *Session) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	an, err := s.analyzer.Analyze(ctx, req)
	if an == nil {
		return nil, err
	}

	s.mu.Lock()
	s.analysis = an
	s.mu.Unlock()

	reset, loadErr := s.plan.LoadTitles(an.Titles)
	if loadErr != nil {
		return an, loadErr
	}
	if reset {
		s.logger.Debug().Int("titles", len(an.Titles)).Msg("plan reset for new project titles")
	}
	return an, err
}

// Analysis returns the latest analysis, or nil.
func (s *Session) Analysis() *Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analysis
}

// Plan exposes the session's planner.
func (s *Session) Plan() *planner.Planner {
	return s.plan
}

// LoadTitles installs titles directly, bypassing analysis.
func (s *Session) LoadTitles(jobTitle string, titles []string) (bool, error) {
	s.mu.Lock()
	if s.analysis == nil || s.analysis.JobTitle != jobTitle {
		s.analysis = &Analysis{JobTitle: jobTitle, Mode: domain.ModeNone}
	}
	s.analysis.Titles = append([]string(nil), titles...)
	s.mu.Unlock()
	return s.plan.LoadTitles(titles)
}

// GenerateSchedule computes the schedule starting at start.
func (s *Session) GenerateSchedule(start time.Time) (domain.Schedule, error) {
	return s.plan.GenerateSchedule(start)
}

// GenerateDailyPlans requests narratives for every scheduled project that
// does not have one yet, for the analyzed target role.
func (s *Session) GenerateDailyPlans(ctx context.Context) (report planner.DailyPlanReport, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{"projects": len(report.Outcomes), "complete": report.Complete()}
		observeUseCase(ctx, s.observer, "daily_plans", startedAt, err, fields)
	}()

	an := s.Analysis()
	if an == nil {
		return planner.DailyPlanReport{}, ErrNoAnalysis
	}
	report, err = s.plan.GenerateDailyPlans(ctx, s.advisor.NarrativeSource(an.JobTitle))
	if err != nil {
		return report, err
	}

	for _, o := range report.Outcomes {
		ev := s.logger.Debug()
		if o.Err != nil {
			ev = s.logger.Warn().Err(o.Err)
		}
		ev.Str("project", o.Project.Title).
			Str("status", string(o.Status)).
			Bool("generated", o.Generated).
			Int("tasks", o.Tasks).
			Msg("daily plan")
		if o.Generated && s.tasks != nil {
			s.tasks.AddDailyTasks(o.Tasks)
		}
	}
	return report, nil
}

// Reset discards the analysis and the whole plan. It is safe to call on
// an empty session.
func (s *Session) Reset() {
	s.mu.Lock()
	s.analysis = nil
	s.mu.Unlock()
	s.plan.Reset()
}

// Summary is a one-line description of the session state.
func (s *Session) Summary() string {
	an := s.Analysis()
	if an == nil {
		return "empty session"
	}
	return fmt.Sprintf("%s: %d skills, %d projects, plan %s", an.JobTitle, len(an.Skills), len(s.plan.Projects()), s.plan.State())
}
