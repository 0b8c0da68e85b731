package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const openAIBaseURL = "https://api.openai.com/v1"

type OpenAIGenerator struct {
	apiKey   string
	model    string
	baseURL  string
	defaults defaults
	client   *http.Client
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// OpenAIParams configures an OpenAIGenerator. BaseURL defaults to the public API.
type OpenAIParams struct {
	Model       string
	APIKey      string
	APIKeyEnv   string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

func NewOpenAIGenerator(params OpenAIParams) (*OpenAIGenerator, error) {
	apiKey, err := resolveAPIKey(params.APIKey, params.APIKeyEnv)
	if err != nil {
		return nil, err
	}
	if params.Model == "" {
		return nil, fmt.Errorf("model required")
	}
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = openAIBaseURL
	}

	return &OpenAIGenerator{
		apiKey:   apiKey,
		model:    params.Model,
		baseURL:  baseURL,
		defaults: defaults{maxTokens: params.MaxTokens, temperature: params.Temperature},
		client:   newHTTPClient(params.Timeout),
	}, nil
}

func (g *OpenAIGenerator) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	maxTokens, temperature := g.defaults.resolve(opts)

	messages := make([]openAIMessage, 0, 2)
	if opts.System != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: opts.System})
	}
	messages = append(messages, openAIMessage{Role: "user", Content: prompt})

	req := openAIRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var resp openAIResponse
	headers := map[string]string{"Authorization": "Bearer " + g.apiKey}
	if err := postJSON(ctx, g.client, g.baseURL+"/chat/completions", headers, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *OpenAIGenerator) Model() string {
	return g.model
}

var _ Generator = (*OpenAIGenerator)(nil)
