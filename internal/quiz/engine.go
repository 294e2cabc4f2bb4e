package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tanvi/linguify/internal/llm"
)

// ErrExhausted is returned when the engine used up its attempt budget
// without accumulating enough valid questions. Use errors.Is to detect
// it; the wrapped message carries the last underlying cause.
var ErrExhausted = errors.New("quiz generation attempts exhausted")

// Config bounds one generation run.
type Config struct {
	// MaxAttempts is the total number of provider calls allowed per
	// Generate, counting the first try.
	MaxAttempts int

	// MaxTokens is the response budget per provider call. Quizzes are
	// long (explanations per question), so this is generous.
	MaxTokens int

	// Temperature for generation. Quiz content should vary between
	// runs, so this sits at the top of the provider range.
	Temperature float64
}

// DefaultConfig returns the production generation bounds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 5,
		MaxTokens:   4000,
		Temperature: 1.0,
	}
}

// Engine turns quiz parameters into validated quizzes using an LLM
// provider. It is stateless; one Engine serves any number of quizzes.
type Engine struct {
	provider llm.Provider
	cfg      Config
}

// NewEngine creates an Engine backed by the given provider.
func NewEngine(provider llm.Provider, cfg Config) *Engine {
	return &Engine{provider: provider, cfg: cfg}
}

// Generate produces a quiz of exactly p.Count valid questions. Each
// attempt regenerates the whole batch from scratch; partial results
// from a failed attempt are discarded rather than accumulated, since
// questions within a batch share context. When an attempt yields more
// than enough valid questions the list is truncated to the first
// p.Count, so a given response always maps to the same quiz.
func (e *Engine) Generate(ctx context.Context, p Params) (*Quiz, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	prompt := buildPrompt(p)

	var lastErr error
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := e.provider.Generate(ctx, llm.Request{
			System:      systemPrompt,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
			MaxTokens:   e.cfg.MaxTokens,
			Temperature: e.cfg.Temperature,
		})
		if err != nil {
			lastErr = err
			continue
		}

		valid := Filter(ParseQuestions(string(resp.Content)))
		if len(valid) >= p.Count {
			return &Quiz{
				ID:        uuid.NewString(),
				Params:    p,
				Questions: valid[:p.Count],
			}, nil
		}
		lastErr = fmt.Errorf("attempt %d produced %d valid questions, need %d", attempt, len(valid), p.Count)
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrExhausted, e.cfg.MaxAttempts, lastErr)
}
