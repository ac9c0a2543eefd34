package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/extract"
	"github.com/alexanderramin/pathwise/internal/intelligence"
	"github.com/alexanderramin/pathwise/internal/resume"
	"github.com/rs/zerolog"
)

var (
	// ErrJobTitleRequired is returned before any work when no target role is given.
	ErrJobTitleRequired = errors.New("a target job title is required")

	// ErrProfileRequired is returned before any work when neither a resume
	// nor a GitHub username is given.
	ErrProfileRequired = errors.New("a resume or a GitHub username is required")

	// ErrNoSkills marks an analysis that stopped because no skills could be
	// derived from the supplied profile. The partial Analysis is still returned.
	ErrNoSkills = errors.New("no skills could be extracted from the profile")
)

// Pipeline stage names used in issues, logs and metrics.
const (
	StageResumeSkills = "resume_skills"
	StageRepos        = "github_repos"
	StageRepoSkills   = "repo_skills"
	StagePostings     = "market_postings"
	StageMarket       = "market"
	StageReport       = "report"
	StageTitles       = "titles"
)

// DefaultPostingLimit is how many job posting excerpts feed the market prompt.
const DefaultPostingLimit = 10

// AnalyzeRequest is the user's input to an analysis.
type AnalyzeRequest struct {
	JobTitle   string
	Resume     *resume.Document
	GitHubUser string
}

// Issue records a pipeline stage that degraded to an empty result.
type Issue struct {
	Stage string
	Err   error
}

func (i Issue) String() string {
	if i.Err == nil {
		return i.Stage + ": empty result"
	}
	return fmt.Sprintf("%s: %v", i.Stage, i.Err)
}

// Analysis is the outcome of one run of the profile pipeline.
type Analysis struct {
	JobTitle     string
	Mode         domain.AnalysisMode
	ResumeSkills domain.SkillSet
	Repos        []string
	RepoSkills   domain.SkillSet
	Skills       domain.SkillSet
	Postings     []string
	Market       string
	Report       string
	Titles       []string
	Issues       []Issue
}

// Degraded reports whether any stage fell back to an empty result.
func (a *Analysis) Degraded() bool {
	return len(a.Issues) > 0
}

// Analyzer runs the profile → skills → market → report → titles pipeline.
type Analyzer struct {
	advisor      *intelligence.Advisor
	repos        RepoLister
	postings     PostingFetcher
	postingLimit int
	logger       zerolog.Logger
	stages       StageRecorder
	observer     UseCaseObserver
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithPostingLimit caps the job posting excerpts sent to the market prompt.
func WithPostingLimit(n int) AnalyzerOption {
	return func(a *Analyzer) { a.postingLimit = n }
}

// WithStageRecorder counts stage outcomes.
func WithStageRecorder(r StageRecorder) AnalyzerOption {
	return func(a *Analyzer) { a.stages = r }
}

// WithUseCaseObserver reports each Analyze call.
func WithUseCaseObserver(o UseCaseObserver) AnalyzerOption {
	return func(a *Analyzer) { a.observer = o }
}

// NewAnalyzer creates an Analyzer. repos and postings may be nil; the
// corresponding stages are then skipped.
func NewAnalyzer(advisor *intelligence.Advisor, repos RepoLister, postings PostingFetcher, logger zerolog.Logger, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		advisor:      advisor,
		repos:        repos,
		postings:     postings,
		postingLimit: DefaultPostingLimit,
		logger:       logger.With().Str("component", "analyzer").Logger(),
		stages:       noopStageRecorder{},
		observer:     NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Validate checks the two input preconditions.
func (r AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.JobTitle) == "" {
		return ErrJobTitleRequired
	}
	if r.Resume == nil && strings.TrimSpace(r.GitHubUser) == "" {
		return ErrProfileRequired
	}
	return nil
}

// Analyze runs the pipeline. Only the input preconditions halt it with a
// nil Analysis. Every collaborator failure degrades that stage to an empty
// value, is recorded in Analysis.Issues and processing continues. When no
// skills are found the market and report stages are skipped and the
// partial Analysis is returned together with ErrNoSkills.
func (a *Analyzer) Analyze(ctx context.Context, req AnalyzeRequest) (result *Analysis, err error) {
	startedAt := time.Now()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	an := &Analysis{
		JobTitle: strings.TrimSpace(req.JobTitle),
		Mode:     domain.ModeFor(req.Resume != nil, strings.TrimSpace(req.GitHubUser) != ""),
	}
	defer func() {
		observeUseCase(ctx, a.observer, "analyze", startedAt, err, map[string]any{
			"mode":   string(an.Mode),
			"skills": len(an.Skills),
			"titles": len(an.Titles),
			"issues": len(an.Issues),
		})
	}()

	if req.Resume != nil {
		skills, err := a.advisor.ResumeSkills(ctx, req.Resume.Text)
		an.ResumeSkills = settle(a, an, StageResumeSkills, skills, len(skills) == 0, err)
	}
	if user := strings.TrimSpace(req.GitHubUser); user != "" {
		an.Repos, an.RepoSkills = a.repoSkills(ctx, an, user)
	}

	an.Skills = domain.MergeSkills(an.ResumeSkills, an.RepoSkills)
	if len(an.Skills) == 0 {
		a.logger.Warn().Str("mode", string(an.Mode)).Msg("no skills extracted; skipping market and report")
		return an, ErrNoSkills
	}

	an.Postings = a.fetchPostings(ctx, an)

	market, err := a.advisor.MarketContext(ctx, an.JobTitle, an.Postings)
	an.Market = settle(a, an, StageMarket, market, market == "", err)

	report, err := a.advisor.Report(ctx, an.Skills, an.JobTitle, an.Market)
	an.Report = settle(a, an, StageReport, report, report == "", err)

	an.Titles = extract.ExtractProjectTitles(an.Report)
	if an.Report != "" {
		settle(a, an, StageTitles, an.Titles, len(an.Titles) == 0, nil)
	}

	a.logger.Info().
		Str("mode", string(an.Mode)).
		Int("skills", len(an.Skills)).
		Int("titles", len(an.Titles)).
		Int("issues", len(an.Issues)).
		Msg("analysis complete")
	return an, nil
}

func (a *Analyzer) repoSkills(ctx context.Context, an *Analysis, user string) ([]string, domain.SkillSet) {
	if a.repos == nil {
		an.Issues = append(an.Issues, Issue{Stage: StageRepos, Err: errors.New("no repository source configured")})
		a.stages.RecordStage(StageRepos, "failed")
		return nil, nil
	}
	repos, err := a.repos.ListRepoNames(ctx, user)
	repos = settle(a, an, StageRepos, repos, len(repos) == 0, err)
	if len(repos) == 0 {
		return nil, nil
	}
	skills, err := a.advisor.RepoSkills(ctx, repos)
	return repos, settle(a, an, StageRepoSkills, skills, len(skills) == 0, err)
}

// fetchPostings is best effort and never recorded as an issue: the market
// prompt works without evidence.
func (a *Analyzer) fetchPostings(ctx context.Context, an *Analysis) []string {
	if a.postings == nil || a.postingLimit <= 0 {
		return nil
	}
	snippets, err := a.postings.Snippets(ctx, an.JobTitle, a.postingLimit)
	if err != nil {
		a.logger.Debug().Err(err).Msg("job postings unavailable")
		a.stages.RecordStage(StagePostings, "failed")
		return nil
	}
	a.stages.RecordStage(StagePostings, outcomeOf(len(snippets) == 0))
	return snippets
}

// settle records the outcome of a stage and returns the value to carry
// downstream: v on success, the zero value on failure.
func settle[T any](a *Analyzer, an *Analysis, stage string, v T, empty bool, err error) T {
	var zero T
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Str("stage", stage).Msg("stage failed; continuing with empty result")
		an.Issues = append(an.Issues, Issue{Stage: stage, Err: err})
		a.stages.RecordStage(stage, "failed")
		return zero
	case empty:
		a.logger.Warn().Str("stage", stage).Msg("stage returned nothing")
		an.Issues = append(an.Issues, Issue{Stage: stage})
		a.stages.RecordStage(stage, "empty")
		return v
	default:
		a.stages.RecordStage(stage, "ok")
		return v
	}
}

func outcomeOf(empty bool) string {
	if empty {
		return "empty"
	}
	return "ok"
}
