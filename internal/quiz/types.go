package quiz

import (
	"fmt"

	"github.com/tanvi/linguify/internal/progress"
)

// BlankMarker is the token that denotes a fill-in-the-blank gap in
// question text. The generation prompt instructs the provider to use
// it, and the parser/validator treat its presence as authoritative.
const BlankMarker = "___"

// Question count bounds for a single quiz.
const (
	MinQuestions = 5
	MaxQuestions = 20
)

// Question is one generated quiz item. The JSON tags match the strict
// (decodable-list) response format the prompt asks for; the
// line-oriented fallback parser fills the same fields.
type Question struct {
	Text        string   `json:"question"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Choices     []string `json:"choices,omitempty"`
	Clue        string   `json:"clue,omitempty"`
}

// Kind describes how the learner answers a question.
type Kind int

const (
	// KindFreeText means the learner types a free-form answer.
	KindFreeText Kind = iota
	// KindMultipleChoice means the learner picks one of 4 choices.
	KindMultipleChoice
	// KindFillBlank means the learner fills one or more ___ gaps.
	KindFillBlank
)

// Kind classifies the question: fill-in-the-blank iff the text has a
// blank marker and no choices, multiple-choice iff exactly 4 choices,
// free-text otherwise.
func (q Question) Kind() Kind {
	if containsBlank(q.Text) && len(q.Choices) == 0 {
		return KindFillBlank
	}
	if len(q.Choices) == 4 {
		return KindMultipleChoice
	}
	return KindFreeText
}

// BlankCount returns the number of ___ gaps in the question text.
func (q Question) BlankCount() int {
	return countBlanks(q.Text)
}

// Params describes one quiz generation request.
type Params struct {
	NativeLanguage string
	TargetLanguage string
	Topic          string
	Count          int
	Difficulty     progress.Difficulty
}

// Validate checks the form constraints on quiz parameters.
func (p Params) Validate() error {
	if p.NativeLanguage == "" || p.TargetLanguage == "" {
		return fmt.Errorf("native and target languages are required")
	}
	if p.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if p.Count < MinQuestions || p.Count > MaxQuestions {
		return fmt.Errorf("question count %d out of range [%d, %d]", p.Count, MinQuestions, MaxQuestions)
	}
	switch p.Difficulty {
	case progress.Easy, progress.Medium, progress.Hard:
	default:
		return fmt.Errorf("unknown difficulty %q", p.Difficulty)
	}
	return nil
}

// Quiz is an ordered batch of validated questions generated together
// from one prompt.
type Quiz struct {
	ID        string
	Params    Params
	Questions []Question
}
