package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tanvi/linguify/internal/llm"
)

func TestGenerateExercise(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Fill in the blanks below.  "),
	})
	a := New(mock)

	out, err := a.GenerateExercise(context.Background(), "food", "Spanish", Vocabulary)
	if err != nil {
		t.Fatalf("GenerateExercise: %v", err)
	}
	if out != "Fill in the blanks below." {
		t.Errorf("out = %q", out)
	}

	req := mock.Calls[0]
	if req.System != exerciseSystemPrompt {
		t.Errorf("system prompt = %q", req.System)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Vocabulary", "food", "Spanish"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Use 'ser' for permanent traits."),
	})
	a := New(mock)

	out, err := a.Ask(context.Background(), "When do I use ser vs estar?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if out != "Use 'ser' for permanent traits." {
		t.Errorf("out = %q", out)
	}
	if mock.Calls[0].System != chatSystemPrompt {
		t.Errorf("system prompt = %q", mock.Calls[0].System)
	}
}

func TestAsk_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	a := New(mock)

	if _, err := a.Ask(context.Background(), "anything"); err == nil {
		t.Fatal("expected error")
	}
}
