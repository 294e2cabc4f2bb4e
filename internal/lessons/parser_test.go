package lessons

import "testing"

func TestParseRows_BracketedJSON(t *testing.T) {
	content := `Here is your lesson:
[
  {"Vocabulary": "el pan", "Vocabulary_Translation": "bread",
   "Grammar_Points": "el + sustantivo masculino", "Grammar_Translation": "el + masculine noun",
   "Cultural_Insights": "El pan acompaña cada comida.", "Cultural_Translation": "Bread accompanies every meal."},
  {"Vocabulary": "la leche", "Vocabulary_Translation": "milk"}
]
Enjoy!`

	rows := ParseRows(content)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Vocabulary != "el pan" || rows[0].VocabularyTranslation != "bread" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[0].CulturalTranslation != "Bread accompanies every meal." {
		t.Errorf("rows[0].CulturalTranslation = %q", rows[0].CulturalTranslation)
	}
	if rows[1].Vocabulary != "la leche" || rows[1].GrammarPoints != "" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestParseRows_KeyValueFallback(t *testing.T) {
	content := `Vocabulary: el pan
Vocabulary Translation: bread
Grammar Points: el + sustantivo
Grammar Translation: el + noun

Vocabulary: la leche
Vocabulary Translation: milk`

	rows := ParseRows(content)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].GrammarPoints != "el + sustantivo" {
		t.Errorf("rows[0].GrammarPoints = %q", rows[0].GrammarPoints)
	}
	if rows[1].VocabularyTranslation != "milk" {
		t.Errorf("rows[1].VocabularyTranslation = %q", rows[1].VocabularyTranslation)
	}
}

// A malformed bracketed span must not abort parsing; the line scanner
// takes over.
func TestParseRows_BadJSONFallsBack(t *testing.T) {
	content := `[not json at all]

Vocabulary: hola
Vocabulary Translation: hello`

	rows := ParseRows(content)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Vocabulary != "hola" {
		t.Errorf("rows[0].Vocabulary = %q", rows[0].Vocabulary)
	}
}

func TestParseRows_TrailingRowWithoutBlankLine(t *testing.T) {
	content := "Vocabulary: adiós\nVocabulary Translation: goodbye"

	rows := ParseRows(content)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].VocabularyTranslation != "goodbye" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}

func TestParseRows_Empty(t *testing.T) {
	if rows := ParseRows(""); len(rows) != 0 {
		t.Fatalf("got %d rows from empty input", len(rows))
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Vocabulary_Translation", "vocabulary_translation"},
		{"  Grammar Points ", "grammar_points"},
		{"CULTURAL INSIGHTS", "cultural_insights"},
	}
	for _, tt := range tests {
		if got := normalizeKey(tt.in); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
