package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tanvi/linguify/internal/llm"
	"github.com/tanvi/linguify/internal/progress"
)

func testParams() Params {
	return Params{
		NativeLanguage: "English",
		TargetLanguage: "Spanish",
		Topic:          "food",
		Count:          5,
		Difficulty:     progress.Medium,
	}
}

// batchResponse renders n parseable questions in the line grammar.
func batchResponse(n int) json.RawMessage {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Question: Translate word %d\n", i)
		fmt.Fprintf(&b, "Correct answer: palabra%d\n", i)
		fmt.Fprintf(&b, "Explanation: Because.\n\n")
	}
	return json.RawMessage(b.String())
}

func TestEngineGenerate_FirstAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchResponse(5)})
	engine := NewEngine(mock, DefaultConfig())

	qz, err := engine.Generate(context.Background(), testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qz.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(qz.Questions))
	}
	if qz.ID == "" {
		t.Error("quiz ID is empty")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider called %d times, want 1", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("quiz generation must request raw text, not structured output")
	}
	if !strings.Contains(req.Messages[0].Content, "Spanish") {
		t.Error("prompt missing target language")
	}
}

func TestEngineGenerate_RetriesOnShortfall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchResponse(3)}, // not enough
		llm.MockResponse{Content: batchResponse(5)},
	)
	engine := NewEngine(mock, DefaultConfig())

	qz, err := engine.Generate(context.Background(), testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qz.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(qz.Questions))
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
}

func TestEngineGenerate_RetriesOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("transient")},
		llm.MockResponse{Content: batchResponse(5)},
	)
	engine := NewEngine(mock, DefaultConfig())

	if _, err := engine.Generate(context.Background(), testParams()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("provider called %d times, want 2", mock.CallCount())
	}
}

func TestEngineGenerate_Exhaustion(t *testing.T) {
	cfg := DefaultConfig()
	var responses []llm.MockResponse
	for i := 0; i < cfg.MaxAttempts; i++ {
		responses = append(responses, llm.MockResponse{Content: batchResponse(2)})
	}
	mock := llm.NewMockProvider(responses...)
	engine := NewEngine(mock, cfg)

	_, err := engine.Generate(context.Background(), testParams())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if mock.CallCount() != cfg.MaxAttempts {
		t.Errorf("provider called %d times, want %d", mock.CallCount(), cfg.MaxAttempts)
	}
}

func TestEngineGenerate_TruncatesSurplus(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchResponse(8)})
	engine := NewEngine(mock, DefaultConfig())

	qz, err := engine.Generate(context.Background(), testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(qz.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(qz.Questions))
	}
	// Truncation keeps the leading questions, so the same response
	// always yields the same quiz.
	if qz.Questions[0].Answer != "palabra0" || qz.Questions[4].Answer != "palabra4" {
		t.Errorf("unexpected truncation: first %q last %q",
			qz.Questions[0].Answer, qz.Questions[4].Answer)
	}
}

func TestEngineGenerate_DropsInvalidBeforeCounting(t *testing.T) {
	var b strings.Builder
	b.WriteString(string(batchResponse(5)))
	// A leaked-answer blank question must not count towards the total.
	b.WriteString("Question: El gato___ duerme.\nCorrect answer: gato\nExplanation: Leak.\n")
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(b.String())},
	)
	engine := NewEngine(mock, DefaultConfig())

	params := testParams()
	params.Count = 6
	_, err := engine.Generate(context.Background(), params)
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
}

func TestEngineGenerate_InvalidParams(t *testing.T) {
	mock := llm.NewMockProvider()
	engine := NewEngine(mock, DefaultConfig())

	params := testParams()
	params.Count = 3
	if _, err := engine.Generate(context.Background(), params); err == nil {
		t.Fatal("expected error for count below minimum")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestEngineGenerate_ContextCancellation(t *testing.T) {
	mock := llm.NewMockProvider()
	engine := NewEngine(mock, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Generate(ctx, testParams())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}
