// Package assistant provides the ad-hoc teaching helpers: one-off
// exercises and a free-form question channel.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/tanvi/linguify/internal/llm"
)

// ExerciseType selects the kind of exercise to generate.
type ExerciseType string

const (
	Vocabulary           ExerciseType = "Vocabulary"
	Grammar              ExerciseType = "Grammar"
	ReadingComprehension ExerciseType = "Reading Comprehension"
)

// ExerciseTypes lists the supported kinds in menu order.
var ExerciseTypes = []ExerciseType{Vocabulary, Grammar, ReadingComprehension}

const responseMaxTokens = 2000

const exerciseSystemPrompt = "You are a creative language exercise creator."
const chatSystemPrompt = "You are a helpful language learning assistant."

// Assistant answers teaching requests through an LLM provider.
type Assistant struct {
	provider llm.Provider
}

// New creates an Assistant.
func New(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider}
}

// GenerateExercise produces one exercise with instructions and the
// correct answer, as markdown-ish prose shown verbatim.
func (a *Assistant) GenerateExercise(ctx context.Context, topic, targetLanguage string, typ ExerciseType) (string, error) {
	ctx = llm.WithPurpose(ctx, "exercise")

	prompt := fmt.Sprintf("Create a %s exercise about %s in %s. Include instructions and the correct answer.",
		typ, topic, targetLanguage)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      exerciseSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   responseMaxTokens,
		Temperature: 1.0,
	})
	if err != nil {
		return "", fmt.Errorf("generating exercise: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// Ask answers a free-form language learning question. Each call is an
// independent turn; no conversation history is kept.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      chatSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: question}},
		MaxTokens:   responseMaxTokens,
		Temperature: 1.0,
	})
	if err != nil {
		return "", fmt.Errorf("asking assistant: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
