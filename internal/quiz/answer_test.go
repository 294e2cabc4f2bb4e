package quiz

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		user, correct string
		want          bool
	}{
		{"gato", "gato", true},
		{"  Gato  ", "gato", true},
		{"GATO", "gato", true},
		{"gata", "gato", false},
		{"", "gato", false},
		// A comma-joined expected answer is compared as one string on
		// this path.
		{"gato, perro", "gato, perro", true},
		{"gato", "gato, perro", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.user, tt.correct); got != tt.want {
			t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.user, tt.correct, got, tt.want)
		}
	}
}

func TestCheckParts(t *testing.T) {
	tests := []struct {
		name    string
		user    []string
		correct string
		want    bool
	}{
		{"both blanks right", []string{"gato", "perro"}, "gato, perro", true},
		{"second blank wrong", []string{"gato", "pez"}, "gato, perro", false},
		{"case and spacing ignored", []string{" GATO ", "Perro"}, "gato,perro", true},
		// Fewer supplied parts than expected: unmatched expected parts
		// go unchecked. Pinned deliberately, see DESIGN.md.
		{"short user side passes", []string{"gato"}, "gato, perro", true},
		{"extra user parts unchecked", []string{"gato", "perro", "pez"}, "gato, perro", true},
		{"no parts at all passes vacuously", nil, "gato, perro", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckParts(tt.user, tt.correct); got != tt.want {
				t.Errorf("CheckParts(%v, %q) = %v, want %v", tt.user, tt.correct, got, tt.want)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	qz := &Quiz{Questions: []Question{
		{Text: "Translate 'cat'", Answer: "gato"},
		{Text: "Yo ___ y tú ___.", Answer: "soy, eres"},
		{Text: "Translate 'dog'", Answer: "perro"},
	}}

	result := Grade(qz, []Answer{
		{Text: "gato"},
		{Parts: []string{"soy", "seres"}},
	})

	if result.Correct != 1 || result.Total != 3 {
		t.Fatalf("Correct/Total = %d/%d, want 1/3", result.Correct, result.Total)
	}
	if len(result.Missed) != 2 {
		t.Fatalf("got %d missed, want 2", len(result.Missed))
	}
	if result.Missed[0].Answer != "soy, eres" {
		t.Errorf("Missed[0].Answer = %q", result.Missed[0].Answer)
	}
	if got := result.Accuracy(); got < 0.33 || got > 0.34 {
		t.Errorf("Accuracy() = %v", got)
	}
}

func TestResultAccuracy_EmptyQuiz(t *testing.T) {
	if got := (Result{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy() = %v, want 0", got)
	}
}
