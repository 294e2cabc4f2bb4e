package roadmap

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tanvi/linguify/internal/llm"
)

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("1. Learn fundamentals\n2. Build projects"),
	})

	out, err := Generate(context.Background(), mock, "data engineer")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(out, "1. Learn fundamentals") {
		t.Errorf("out = %q", out)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "data engineer") {
		t.Errorf("prompt missing career: %q", req.Messages[0].Content)
	}
	if req.Temperature != roadmapTemperature {
		t.Errorf("temperature = %v, want %v", req.Temperature, roadmapTemperature)
	}
}

func TestGenerate_EmptyCareer(t *testing.T) {
	mock := llm.NewMockProvider()
	if _, err := Generate(context.Background(), mock, "  "); err == nil {
		t.Fatal("expected error for empty career")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Data Engineer", "data_engineer"},
		{"  Machine Learning Engineer ", "machine_learning_engineer"},
		{"chef", "chef"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "Data Engineer", "the roadmap")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "data_engineer_roadmap.txt" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved roadmap: %v", err)
	}
	if string(data) != "the roadmap" {
		t.Errorf("contents = %q", data)
	}

	// Saving again for the same career overwrites.
	if _, err := Save(dir, "Data Engineer", "updated"); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "updated" {
		t.Errorf("contents after overwrite = %q", data)
	}
}
