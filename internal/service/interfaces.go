package service

import "context"

// RepoLister lists the public repository names of a code-hosting user.
type RepoLister interface {
	ListRepoNames(ctx context.Context, username string) ([]string, error)
}

// PostingFetcher returns job posting excerpts for a role.
type PostingFetcher interface {
	Snippets(ctx context.Context, jobTitle string, limit int) ([]string, error)
}

// StageRecorder counts pipeline stage outcomes.
type StageRecorder interface {
	RecordStage(stage, outcome string)
}

type noopStageRecorder struct{}

func (noopStageRecorder) RecordStage(string, string) {}
