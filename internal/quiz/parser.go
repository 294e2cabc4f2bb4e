package quiz

import (
	"encoding/json"
	"regexp"
	"strings"
)

// choicePattern extracts labeled options from a "Choices:" line, e.g.
// "A) el gato, B) el perro, C) el pez, D) el ave". Values run to the
// next comma, so partial or trailing entries are kept as parsed.
var choicePattern = regexp.MustCompile(`\b[A-D]\)\s*([^,]+)`)

// maxChoices caps how many options a Choices: line contributes.
const maxChoices = 4

// ParseQuestions converts raw provider output into questions. The text
// is untrusted: a strict decode of the whole response as a JSON list is
// attempted first, and on failure the text is scanned line by line for
// the labeled-field grammar the prompt asks for. Unrecognized lines are
// skipped silently. An empty result is a valid outcome — it means zero
// usable records, which the engine treats as a shortfall, not an error.
func ParseQuestions(content string) []Question {
	var direct []Question
	if err := json.Unmarshal([]byte(content), &direct); err == nil {
		return direct
	}

	var questions []Question
	var current *Question

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if after, ok := strings.CutPrefix(line, "Question:"); ok {
			if current != nil {
				questions = append(questions, *current)
			}
			current = &Question{Text: strings.TrimSpace(after)}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Choices:"):
			current.Choices = parseChoices(strings.TrimPrefix(line, "Choices:"))
		case strings.HasPrefix(line, "Clue:"):
			current.Clue = strings.TrimSpace(strings.TrimPrefix(line, "Clue:"))
		case strings.HasPrefix(line, "Correct answer:"):
			current.Answer = strings.TrimSpace(strings.TrimPrefix(line, "Correct answer:"))
		case strings.HasPrefix(line, "Explanation:"):
			current.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}

	if current != nil {
		questions = append(questions, *current)
	}
	return questions
}

func parseChoices(text string) []string {
	matches := choicePattern.FindAllStringSubmatch(text, -1)
	choices := make([]string, 0, len(matches))
	for _, m := range matches {
		choices = append(choices, strings.TrimSpace(m[1]))
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}

func containsBlank(text string) bool {
	return strings.Contains(text, BlankMarker)
}

func countBlanks(text string) int {
	return strings.Count(text, BlankMarker)
}
