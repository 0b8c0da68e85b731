package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"
	// the messages API rejects requests without max_tokens
	anthropicMaxTokens = 1024
)

type AnthropicGenerator struct {
	apiKey   string
	model    string
	baseURL  string
	defaults defaults
	client   *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

type AnthropicParams struct {
	Model       string
	APIKey      string
	APIKeyEnv   string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

func NewAnthropicGenerator(params AnthropicParams) (*AnthropicGenerator, error) {
	apiKey, err := resolveAPIKey(params.APIKey, params.APIKeyEnv)
	if err != nil {
		return nil, err
	}
	if params.Model == "" {
		return nil, fmt.Errorf("model required")
	}
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	maxTokens := params.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicMaxTokens
	}

	return &AnthropicGenerator{
		apiKey:   apiKey,
		model:    params.Model,
		baseURL:  baseURL,
		defaults: defaults{maxTokens: maxTokens, temperature: params.Temperature},
		client:   newHTTPClient(params.Timeout),
	}, nil
}

func (g *AnthropicGenerator) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	maxTokens, temperature := g.defaults.resolve(opts)

	req := anthropicRequest{
		Model:       g.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      opts.System,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	}

	var resp anthropicResponse
	headers := map[string]string{
		"x-api-key":         g.apiKey,
		"anthropic-version": anthropicVersion,
	}
	if err := postJSON(ctx, g.client, g.baseURL+"/messages", headers, req, &resp); err != nil {
		return "", err
	}
	for _, block := range resp.Content {
		if block.Type == "" || block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no content returned from API")
}

func (g *AnthropicGenerator) Model() string {
	return g.model
}

var _ Generator = (*AnthropicGenerator)(nil)
