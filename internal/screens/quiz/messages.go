package quiz

import (
	qz "github.com/tanvi/linguify/internal/quiz"
)

// quizReadyMsg is sent when quiz generation finishes.
type quizReadyMsg struct {
	Quiz *qz.Quiz
	Err  error
}

// hintMsg is sent when a hint for the current question arrives.
type hintMsg struct {
	QuestionIndex int
	Hint          string
	Err           error
}

// weakAreasMsg is sent when the post-quiz weak-area analysis finishes.
type weakAreasMsg struct {
	Areas []string
	Err   error
}
