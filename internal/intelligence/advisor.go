// Package intelligence turns profile data into prompts for a text
// generator and interprets the generated text.
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/planner"
)

// ErrEmptyInput is returned when there is nothing to send to the generator.
var ErrEmptyInput = errors.New("nothing to analyze")

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to TextGenerator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ClientGenerator binds an LLMClient to one task so the task's
// temperature, token and timeout settings apply.
type ClientGenerator struct {
	Client llm.LLMClient
	Task   llm.TaskType
}

func (g ClientGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.Client.Generate(ctx, llm.GenerateRequest{
		Task:         g.Task,
		SystemPrompt: mentorSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return "", err
	}
	return llm.StripCodeFences(resp.Text), nil
}

// Advisor runs the career-analysis prompts.
type Advisor struct {
	generatorFor func(llm.TaskType) TextGenerator
}

// NewAdvisor creates an Advisor backed by an LLM client.
func NewAdvisor(client llm.LLMClient) *Advisor {
	return &Advisor{generatorFor: func(task llm.TaskType) TextGenerator {
		return ClientGenerator{Client: client, Task: task}
	}}
}

// NewAdvisorWithGenerator creates an Advisor that sends every prompt to gen.
func NewAdvisorWithGenerator(gen TextGenerator) *Advisor {
	return &Advisor{generatorFor: func(llm.TaskType) TextGenerator { return gen }}
}

func (a *Advisor) generate(ctx context.Context, task llm.TaskType, prompt string) (string, error) {
	text, err := a.generatorFor(task).Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", task, err)
	}
	return strings.TrimSpace(text), nil
}

// ResumeSkills extracts a skill list from resume text.
func (a *Advisor) ResumeSkills(ctx context.Context, resumeText string) (domain.SkillSet, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyInput
	}
	text, err := a.generate(ctx, llm.TaskResumeSkills, resumeSkillsPrompt(resumeText))
	if err != nil {
		return nil, err
	}
	return ParseSkillResponse(text), nil
}

// RepoSkills infers skills from repository names.
func (a *Advisor) RepoSkills(ctx context.Context, repoNames []string) (domain.SkillSet, error) {
	if len(repoNames) == 0 {
		return nil, ErrEmptyInput
	}
	text, err := a.generate(ctx, llm.TaskRepoSkills, repoSkillsPrompt(repoNames))
	if err != nil {
		return nil, err
	}
	return ParseSkillResponse(text), nil
}

// MarketContext summarizes demand for a role as Markdown bullets.
// snippets, when present, are job posting excerpts given as evidence.
func (a *Advisor) MarketContext(ctx context.Context, jobTitle string, snippets []string) (string, error) {
	return a.generate(ctx, llm.TaskMarket, marketPrompt(jobTitle, snippets))
}

// Report compares skills with the market and proposes projects.
func (a *Advisor) Report(ctx context.Context, skills domain.SkillSet, jobTitle, market string) (string, error) {
	return a.generate(ctx, llm.TaskReport, reportPrompt(skills, jobTitle, market))
}

// DailyPlan requests a "**Day N:**" narrative covering every day of p.
func (a *Advisor) DailyPlan(ctx context.Context, p domain.Project, jobTitle string) (string, error) {
	return a.generate(ctx, llm.TaskDailyPlan, dailyPlanPrompt(p, jobTitle))
}

// NarrativeSource binds DailyPlan to a target role for the planner.
func (a *Advisor) NarrativeSource(jobTitle string) planner.NarrativeSource {
	return planner.NarrativeFunc(func(ctx context.Context, p domain.Project) (string, error) {
		return a.DailyPlan(ctx, p, jobTitle)
	})
}

// ParseSkillResponse reads a comma-separated skill list, tolerating
// bullet or newline separated output and a leading "Skills:" label.
func ParseSkillResponse(text string) domain.SkillSet {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, ":"); i >= 0 && !strings.Contains(text[:i], ",") &&
		strings.Contains(strings.ToLower(text[:i]), "skills") {
		text = text[i+1:]
	}
	text = strings.NewReplacer("\r\n", ",", "\n", ",", ";", ",").Replace(text)
	parts := strings.Split(text, ",")
	for i, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), "-•*` ")
		parts[i] = strings.TrimSuffix(p, ".")
	}
	return domain.MergeSkills(parts, nil)
}
