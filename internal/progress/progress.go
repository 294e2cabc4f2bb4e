// Package progress implements the experience/level/streak model.
//
// Experience is awarded from two independent call sites, and the split
// is deliberate: generating a quiz earns a small flat credit before the
// learner answers anything, and grading earns the main per-answer
// reward. Merging them would change the reward schedule.
package progress

import "github.com/tanvi/linguify/internal/account"

// Experience thresholds and awards.
const (
	levelThreshold  = 100 // experience needed to advance one level
	perCorrectAward = 10  // grading credit per correct answer
	generationAward = 5   // credit for successfully generating a quiz
	attemptAward    = 1   // consolation credit when generation fails
	streakAccuracy  = 0.7 // minimum accuracy to extend the streak
)

// Apply records a graded quiz on the account: per-answer experience,
// streak extension at ≥70% accuracy, completion count, and level-ups.
// total must be > 0; zero-question quizzes are never graded.
func Apply(acc *account.Account, correct, total int) {
	accuracy := float64(correct) / float64(total)

	acc.Experience += correct * perCorrectAward
	if accuracy >= streakAccuracy {
		acc.Streak++
	}
	acc.CompletedQuizzes++

	// A single grading can cross several thresholds.
	for acc.Experience >= levelThreshold {
		acc.Level++
		acc.Experience -= levelThreshold
	}
}

// AwardGenerationCredit records a successful quiz generation, before
// any grading happens.
func AwardGenerationCredit(acc *account.Account) {
	acc.Experience += generationAward
	acc.CompletedQuizzes++
}

// AwardAttemptCredit records a failed generation attempt.
func AwardAttemptCredit(acc *account.Account) {
	acc.Experience += attemptAward
}
