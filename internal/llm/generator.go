package llm

import "context"

// Generator produces text completions from prompts.
type Generator interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	Model() string
}

// Options tunes a single completion. Zero values fall back to the
// generator's configured defaults.
type Options struct {
	System      string
	MaxTokens   int
	Temperature *float64
}

type defaults struct {
	maxTokens   int
	temperature float64
}

func (d defaults) resolve(opts Options) (int, float64) {
	maxTokens := d.maxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}
	temperature := d.temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	return maxTokens, temperature
}
