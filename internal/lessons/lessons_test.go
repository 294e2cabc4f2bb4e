package lessons

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tanvi/linguify/internal/llm"
)

func TestGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`[{"Vocabulary": "el pan", "Vocabulary_Translation": "bread"}]`),
	})
	gen := NewGenerator(mock)

	rows, err := gen.Generate(context.Background(), "food", "Spanish", "English")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 1 || rows[0].Vocabulary != "el pan" {
		t.Fatalf("rows = %+v", rows)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("lesson generation must request raw text")
	}
	if req.System != lessonSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"food", "Spanish", "English", "Vocabulary_Translation"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGeneratorGenerate_UnusableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Sorry, I cannot help with that."),
	})
	gen := NewGenerator(mock)

	rows, err := gen.Generate(context.Background(), "food", "Spanish", "English")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %+v, want none", rows)
	}
}
