package quiz

// Answer is the learner's response to one question. Parts is set for
// multi-blank questions (one entry per blank); Text covers everything
// else, including the selected choice for multiple-choice questions.
type Answer struct {
	Text  string
	Parts []string
}

// Check grades the answer against this question.
func (q Question) Check(a Answer) bool {
	if len(a.Parts) > 0 {
		return CheckParts(a.Parts, q.Answer)
	}
	return CheckAnswer(a.Text, q.Answer)
}

// Result summarizes one graded quiz.
type Result struct {
	Correct int
	Total   int
	Missed  []Question
}

// Accuracy is the fraction of questions answered correctly, 0 when the
// quiz had no questions.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Grade scores a completed quiz. Answers are matched to questions by
// position; an unanswered question counts as incorrect.
func Grade(qz *Quiz, answers []Answer) Result {
	result := Result{Total: len(qz.Questions)}
	for i, q := range qz.Questions {
		if i < len(answers) && q.Check(answers[i]) {
			result.Correct++
		} else {
			result.Missed = append(result.Missed, q)
		}
	}
	return result
}
