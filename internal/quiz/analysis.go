package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tanvi/linguify/internal/llm"
)

// WeakAreasSchema constrains the weak-area analysis response to a flat
// list of short topic labels.
var WeakAreasSchema = &llm.Schema{
	Name:        "weak-areas",
	Description: "Language areas the learner struggles with, as short topic labels.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"weak_areas": map[string]any{
				"type":        "array",
				"description": "Short topic labels, e.g. 'past tense verbs' or 'gendered articles'.",
				"items":       map[string]any{"type": "string"},
				"maxItems":    5,
			},
		},
		"required":             []string{"weak_areas"},
		"additionalProperties": false,
	},
}

const analysisMaxTokens = 500

// AnalyzeWeakAreas asks the provider to name the language areas behind
// a set of missed questions. Analysis is best-effort garnish on the
// results screen; callers should degrade to no suggestions on error.
func AnalyzeWeakAreas(ctx context.Context, provider llm.Provider, targetLanguage string, missed []Question) ([]string, error) {
	if len(missed) == 0 {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "weak-areas")

	var b strings.Builder
	fmt.Fprintf(&b, "A learner studying %s answered the following quiz questions incorrectly:\n", targetLanguage)
	for _, q := range missed {
		fmt.Fprintf(&b, "- Question: %s\n  Correct answer: %s\n", q.Text, q.Answer)
	}
	b.WriteString("Identify the language areas the learner appears weakest in.")

	resp, err := provider.Generate(ctx, llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    WeakAreasSchema,
		MaxTokens: analysisMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing weak areas: %w", err)
	}

	var result struct {
		WeakAreas []string `json:"weak_areas"`
	}
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("decoding weak areas: %w", err)
	}
	return result.WeakAreas, nil
}

// MergeWeakAreas folds newly identified areas into an existing list,
// dropping duplicates case-insensitively and preserving first-seen
// order.
func MergeWeakAreas(existing, found []string) []string {
	seen := make(map[string]bool, len(existing)+len(found))
	merged := make([]string, 0, len(existing)+len(found))
	for _, area := range append(append([]string(nil), existing...), found...) {
		key := strings.ToLower(strings.TrimSpace(area))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, strings.TrimSpace(area))
	}
	return merged
}
