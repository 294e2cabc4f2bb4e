package quiz

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tanvi/linguify/internal/llm"
)

func TestAnalyzeWeakAreas(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"weak_areas": ["past tense verbs", "gendered articles"]}`),
	})

	missed := []Question{{Text: "Conjugate 'hablar' in past tense", Answer: "hablé"}}
	areas, err := AnalyzeWeakAreas(context.Background(), mock, "Spanish", missed)
	if err != nil {
		t.Fatalf("AnalyzeWeakAreas: %v", err)
	}
	want := []string{"past tense verbs", "gendered articles"}
	if !reflect.DeepEqual(areas, want) {
		t.Errorf("areas = %v, want %v", areas, want)
	}

	if mock.Calls[0].Schema == nil {
		t.Error("weak-area analysis must request structured output")
	}
}

func TestAnalyzeWeakAreas_NothingMissed(t *testing.T) {
	mock := llm.NewMockProvider()
	areas, err := AnalyzeWeakAreas(context.Background(), mock, "Spanish", nil)
	if err != nil || areas != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", areas, err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestAnalyzeWeakAreas_BadPayload(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	missed := []Question{{Text: "q", Answer: "a"}}
	if _, err := AnalyzeWeakAreas(context.Background(), mock, "Spanish", missed); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestMergeWeakAreas(t *testing.T) {
	got := MergeWeakAreas(
		[]string{"past tense verbs", "articles"},
		[]string{"Articles", "  listening  ", "", "past tense verbs"},
	)
	want := []string{"past tense verbs", "articles", "listening"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeWeakAreas = %v, want %v", got, want)
	}
}

func TestHint_UsesRawText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Think about permanent traits.  "),
	})

	hint, err := Hint(context.Background(), mock, "Yo ___ estudiante.", "Spanish")
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if hint != "Think about permanent traits." {
		t.Errorf("hint = %q", hint)
	}
	if mock.Calls[0].Schema != nil {
		t.Error("hint must request raw text")
	}
}
