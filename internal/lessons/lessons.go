// Package lessons generates tabular language lessons. A lesson is a
// list of rows pairing vocabulary, grammar points, and cultural notes
// in the target language with their native-language translations.
package lessons

import (
	"context"
	"fmt"

	"github.com/tanvi/linguify/internal/llm"
)

// Row is one line of a lesson table. Providers routinely omit fields,
// so all of them are optional; rendering skips empty columns.
type Row struct {
	Vocabulary            string
	VocabularyTranslation string
	GrammarPoints         string
	GrammarTranslation    string
	CulturalInsights      string
	CulturalTranslation   string
}

// Row count bounds requested from the provider.
const (
	minRows = 10
	maxRows = 20
)

const lessonMaxTokens = 4000

const lessonSystemPrompt = "You are a knowledgeable language teacher. " +
	"Respond with a list of dictionaries containing the lesson information."

// Generator produces lessons from an LLM provider.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a lesson Generator.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate builds a lesson on the topic. The provider response is
// parsed leniently; an empty table with a nil error means the response
// contained nothing usable.
func (g *Generator) Generate(ctx context.Context, topic, targetLanguage, nativeLanguage string) ([]Row, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	prompt := buildLessonPrompt(topic, targetLanguage, nativeLanguage)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      lessonSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   lessonMaxTokens,
		Temperature: 1.0,
	})
	if err != nil {
		return nil, fmt.Errorf("generating lesson: %w", err)
	}

	return ParseRows(string(resp.Content)), nil
}

func buildLessonPrompt(topic, targetLanguage, nativeLanguage string) string {
	return fmt.Sprintf(`Create a short lesson about %s in %s with translations to %s.
Format the output as a list of dictionaries, where each dictionary represents a row with the following keys:
- Vocabulary: the term in %[2]s
- Vocabulary_Translation: the term in %[3]s
- Grammar_Points: grammar explanation in %[2]s
- Grammar_Translation: grammar explanation in %[3]s
- Cultural_Insights: cultural information in %[2]s
- Cultural_Translation: cultural information in %[3]s

Provide at least %d rows and a maximum of %d of content.`,
		topic, targetLanguage, nativeLanguage, minRows, maxRows)
}
