package lessons

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// bracketPattern grabs the widest [...] span in the response, which is
// where providers put the requested list even when they wrap it in
// prose or a code fence.
var bracketPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseRows converts raw provider output into lesson rows. It first
// looks for a bracketed JSON list anywhere in the text; if that is
// missing or malformed it falls back to scanning "key: value" lines,
// where a blank line closes the current row.
func ParseRows(content string) []Row {
	if span := bracketPattern.FindString(content); span != "" {
		var records []map[string]any
		if err := json.Unmarshal([]byte(span), &records); err == nil {
			rows := make([]Row, 0, len(records))
			for _, rec := range records {
				fields := make(map[string]string, len(rec))
				for key, value := range rec {
					fields[normalizeKey(key)] = stringify(value)
				}
				rows = append(rows, rowFromFields(fields))
			}
			return rows
		}
	}

	var rows []Row
	fields := map[string]string{}
	for _, line := range strings.Split(content, "\n") {
		if key, value, ok := strings.Cut(line, ":"); ok {
			fields[normalizeKey(key)] = strings.TrimSpace(value)
			continue
		}
		if strings.TrimSpace(line) == "" && len(fields) > 0 {
			rows = append(rows, rowFromFields(fields))
			fields = map[string]string{}
		}
	}
	if len(fields) > 0 {
		rows = append(rows, rowFromFields(fields))
	}
	return rows
}

// normalizeKey folds the strict keys ("Vocabulary_Translation") and
// the loose ones ("vocabulary translation") onto the same form.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func rowFromFields(fields map[string]string) Row {
	return Row{
		Vocabulary:            fields["vocabulary"],
		VocabularyTranslation: fields["vocabulary_translation"],
		GrammarPoints:         fields["grammar_points"],
		GrammarTranslation:    fields["grammar_translation"],
		CulturalInsights:      fields["cultural_insights"],
		CulturalTranslation:   fields["cultural_translation"],
	}
}
