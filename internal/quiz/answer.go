package quiz

import "strings"

// CheckAnswer compares a single free-form answer against the expected
// one, ignoring case and surrounding whitespace.
func CheckAnswer(user, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(user), strings.TrimSpace(correct))
}

// CheckParts grades a multi-blank answer. The expected answer encodes
// one part per blank, comma-separated; user parts are compared
// pairwise by position. Comparison stops at the shorter side, so
// expected parts beyond the supplied count go unchecked.
func CheckParts(user []string, correct string) bool {
	parts := strings.Split(correct, ",")
	n := min(len(user), len(parts))
	for i := 0; i < n; i++ {
		if !CheckAnswer(user[i], parts[i]) {
			return false
		}
	}
	return true
}
