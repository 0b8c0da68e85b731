package llm

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/shopdesk/pkg/config"
)

// NewGenerator creates a generator based on configuration.
func NewGenerator(cfg config.LLMConfig) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.LLMProviderOpenAI:
		return NewOpenAIGenerator(OpenAIParams{
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			APIKeyEnv:   cfg.APIKeyEnv,
			BaseURL:     cfg.BaseURL,
			Timeout:     cfg.Timeout,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	case config.LLMProviderAnthropic:
		return NewAnthropicGenerator(AnthropicParams{
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			APIKeyEnv:   cfg.APIKeyEnv,
			BaseURL:     cfg.BaseURL,
			Timeout:     cfg.Timeout,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	case config.LLMProviderMock, "":
		return NewMockGenerator(cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}
