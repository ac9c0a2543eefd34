package domain

// AnalysisMode records which profile sources fed an analysis.
type AnalysisMode string

const (
	ModeNone            AnalysisMode = "none"
	ModeResume          AnalysisMode = "resume"
	ModeGitHub          AnalysisMode = "github"
	ModeResumeAndGitHub AnalysisMode = "resume+github"
)

// ModeFor derives the analysis mode from which sources were supplied.
func ModeFor(hasResume, hasGitHub bool) AnalysisMode {
	switch {
	case hasResume && hasGitHub:
		return ModeResumeAndGitHub
	case hasResume:
		return ModeResume
	case hasGitHub:
		return ModeGitHub
	default:
		return ModeNone
	}
}

// DailyPlanStatus tracks narrative generation for a single project.
type DailyPlanStatus string

const (
	DailyPlanPending     DailyPlanStatus = "pending"
	DailyPlanCached      DailyPlanStatus = "cached"
	DailyPlanUnparseable DailyPlanStatus = "unparseable"
	DailyPlanFailed      DailyPlanStatus = "failed"
)
