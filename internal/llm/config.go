package llm

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskResumeSkills TaskType = "resume_skills"
	TaskRepoSkills   TaskType = "repo_skills"
	TaskMarket       TaskType = "market"
	TaskReport       TaskType = "report"
	TaskDailyPlan    TaskType = "daily_plan"
)

// Provider selects the text generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the text generation subsystem.
// Environment variables use the PATHWISE_LLM_ prefix; the API key also
// falls back to the unprefixed GEMINI_API_KEY, then GOOGLE_API_KEY.
type Config struct {
	Provider   Provider
	LogCalls   bool   `split_words:"true"`
	APIKey     string `envconfig:"GEMINI_API_KEY"`
	Endpoint   string
	Model      string
	TimeoutMs  int `split_words:"true"`
	MaxRetries int `split_words:"true"`

	DailyPlanTimeoutMs int `split_words:"true"`

	Tasks map[TaskType]TaskConfig `ignored:"true"`
}

// DefaultConfig returns a Config targeting Gemini with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		TimeoutMs:  60000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskResumeSkills: {Temperature: 0.1, MaxTokens: 1024},
			TaskRepoSkills:   {Temperature: 0.1, MaxTokens: 1024},
			TaskMarket:       {Temperature: 0.3, MaxTokens: 2048},
			TaskReport:       {Temperature: 0.4, MaxTokens: 4096},
			TaskDailyPlan:    {Temperature: 0.4, MaxTokens: 8192, TimeoutMs: 120000},
		},
	}
}

// LoadConfig overlays environment variables on DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("pathwise_llm", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading llm config: %w", err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if cfg.DailyPlanTimeoutMs > 0 {
		tc := cfg.Tasks[TaskDailyPlan]
		tc.TimeoutMs = cfg.DailyPlanTimeoutMs
		cfg.Tasks[TaskDailyPlan] = tc
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return cfg, nil
}

// ModelName returns the configured model, or the provider's default.
func (c Config) ModelName() string {
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderOllama {
		return "llama3.2"
	}
	return "gemini-2.5-flash"
}

// OllamaEndpoint returns the configured endpoint or the local default.
func (c Config) OllamaEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return "http://localhost:11434"
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// Validate checks provider-specific requirements.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.APIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderOllama:
	default:
		return fmt.Errorf("unknown llm provider %q (want %q or %q)", c.Provider, ProviderGemini, ProviderOllama)
	}
	return nil
}
