package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient on the Gemini API.
type geminiClient struct {
	cfg      Config
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by Google's Gemini API.
// cfg.Endpoint, when set, overrides the API base URL.
func NewGeminiClient(ctx context.Context, cfg Config, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return generateWithRetry(ctx, c.cfg, c.observer, req, func(ctx context.Context, p callParams) (*GenerateResponse, error) {
		gc := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(p.temperature)),
		}
		if p.maxTokens > 0 {
			gc.MaxOutputTokens = int32(p.maxTokens)
		}
		if req.SystemPrompt != "" {
			gc.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.cfg.ModelName(), genai.Text(req.UserPrompt), gc)
		if err != nil {
			return nil, err
		}
		return &GenerateResponse{Text: resp.Text(), Model: resp.ModelVersion}, nil
	})
}

// Available reports whether the configured model can be looked up.
func (c *geminiClient) Available(ctx context.Context) bool {
	_, err := c.client.Models.Get(ctx, c.cfg.ModelName(), nil)
	return err == nil
}
