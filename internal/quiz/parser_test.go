package quiz

import (
	"reflect"
	"testing"
)

func TestParseQuestions_StrictJSON(t *testing.T) {
	content := `[
		{"question": "How do you say 'cat' in Spanish?", "answer": "gato", "explanation": "Gato means cat."},
		{"question": "Pick the word for 'dog'.", "answer": "perro", "explanation": "Perro means dog.",
		 "choices": ["gato", "perro", "pez", "ave"]}
	]`

	questions := ParseQuestions(content)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Answer != "gato" {
		t.Errorf("questions[0].Answer = %q, want %q", questions[0].Answer, "gato")
	}
	if len(questions[1].Choices) != 4 {
		t.Errorf("questions[1] has %d choices, want 4", len(questions[1].Choices))
	}
}

func TestParseQuestions_LineGrammar(t *testing.T) {
	content := `Here is your quiz:

Question: How do you say 'cat' in Spanish?
Choices: A) el gato, B) el perro, C) el pez, D) el ave
Correct answer: el gato
Explanation: Gato is the Spanish word for cat.

Question: Complete: Yo ___ estudiante.
Clue: The verb 'to be' for permanent traits.
Correct answer: soy
Explanation: Ser is used for identity.`

	questions := ParseQuestions(content)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	first := questions[0]
	if first.Text != "How do you say 'cat' in Spanish?" {
		t.Errorf("first.Text = %q", first.Text)
	}
	wantChoices := []string{"el gato", "el perro", "el pez", "el ave"}
	if !reflect.DeepEqual(first.Choices, wantChoices) {
		t.Errorf("first.Choices = %v, want %v", first.Choices, wantChoices)
	}
	if first.Answer != "el gato" {
		t.Errorf("first.Answer = %q", first.Answer)
	}

	second := questions[1]
	if second.Clue != "The verb 'to be' for permanent traits." {
		t.Errorf("second.Clue = %q", second.Clue)
	}
	if second.Answer != "soy" {
		t.Errorf("second.Answer = %q", second.Answer)
	}
	if second.Choices != nil {
		t.Errorf("second.Choices = %v, want none", second.Choices)
	}
}

// A new Question: label closes the previous record even when fields
// are still missing; later labels must not bleed backwards.
func TestParseQuestions_RecordBoundary(t *testing.T) {
	content := `Question: First question
Question: Second question
Correct answer: only for second`

	questions := ParseQuestions(content)
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].Answer != "" {
		t.Errorf("questions[0].Answer = %q, want empty", questions[0].Answer)
	}
	if questions[1].Answer != "only for second" {
		t.Errorf("questions[1].Answer = %q", questions[1].Answer)
	}
}

func TestParseQuestions_LabelsBeforeFirstQuestionIgnored(t *testing.T) {
	content := `Correct answer: stray
Explanation: stray
Question: Real one
Correct answer: real`

	questions := ParseQuestions(content)
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Answer != "real" {
		t.Errorf("Answer = %q, want %q", questions[0].Answer, "real")
	}
}

func TestParseQuestions_LabelsAreCaseSensitive(t *testing.T) {
	content := `question: lowercase label
QUESTION: uppercase label`

	if questions := ParseQuestions(content); len(questions) != 0 {
		t.Fatalf("got %d questions, want 0", len(questions))
	}
}

func TestParseQuestions_Empty(t *testing.T) {
	if questions := ParseQuestions(""); len(questions) != 0 {
		t.Fatalf("got %d questions from empty input", len(questions))
	}
}

func TestParseChoices(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "four choices",
			in:   "A) uno, B) dos, C) tres, D) cuatro",
			want: []string{"uno", "dos", "tres", "cuatro"},
		},
		{
			name: "partial list kept as parsed",
			in:   "A) sí, B) no",
			want: []string{"sí", "no"},
		},
		{
			name: "extra labels capped at four",
			in:   "A) a, B) b, C) c, D) d, D) e",
			want: []string{"a", "b", "c", "d"},
		},
		{
			name: "no labels",
			in:   "just some text",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChoices(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseChoices(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuestionKind(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want Kind
	}{
		{"translation", Question{Text: "Translate 'cat'", Answer: "gato"}, KindFreeText},
		{"multiple choice", Question{Text: "Pick one", Answer: "a", Choices: []string{"a", "b", "c", "d"}}, KindMultipleChoice},
		{"fill blank", Question{Text: "Yo ___ estudiante.", Answer: "soy"}, KindFillBlank},
		{"blank with choices stays choice", Question{Text: "Yo ___ aquí.", Answer: "estoy", Choices: []string{"a", "b", "c", "d"}}, KindMultipleChoice},
		{"short choice list falls back", Question{Text: "Pick one", Answer: "a", Choices: []string{"a", "b"}}, KindFreeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlankCount(t *testing.T) {
	q := Question{Text: "Yo ___ de Madrid y tú ___ de Lima."}
	if got := q.BlankCount(); got != 2 {
		t.Errorf("BlankCount() = %d, want 2", got)
	}
}
