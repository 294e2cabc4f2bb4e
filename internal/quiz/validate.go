package quiz

import "strings"

// Valid reports whether a parsed record is usable in a quiz. Records
// missing a question text or an answer are dropped. Fill-in-the-blank
// questions are additionally checked for answer leakage: providers
// sometimes echo the answer inside the question, which would make the
// blank pointless.
func Valid(q Question) bool {
	if q.Text == "" || q.Answer == "" {
		return false
	}
	if containsBlank(q.Text) {
		stripped := strings.ToLower(strings.ReplaceAll(q.Text, "_", ""))
		if strings.Contains(stripped, strings.ToLower(q.Answer)) {
			return false
		}
	}
	return true
}

// Filter returns the questions that pass Valid, preserving order.
func Filter(questions []Question) []Question {
	valid := make([]Question, 0, len(questions))
	for _, q := range questions {
		if Valid(q) {
			valid = append(valid, q)
		}
	}
	return valid
}
