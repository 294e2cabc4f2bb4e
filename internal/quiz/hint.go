package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/tanvi/linguify/internal/llm"
)

const hintMaxTokens = 500

// Hint asks the provider for a nudge towards the answer of one
// question without revealing it. The result is plain prose shown
// verbatim to the learner.
func Hint(ctx context.Context, provider llm.Provider, question, targetLanguage string) (string, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	prompt := fmt.Sprintf(`Provide a helpful hint for the following %s language learning question:
%q
The hint should guide the learner towards the answer without giving it away completely.`,
		targetLanguage, question)

	resp, err := provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens: hintMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generating hint: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
