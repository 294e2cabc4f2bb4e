package store

import (
	"context"
	"fmt"
)

// Quiz lifecycle phases.
const (
	QuizGenerated = "generated"
	QuizGraded    = "graded"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetUsername(data.Username).
		SetPhase(data.Phase).
		SetNativeLanguage(data.NativeLanguage).
		SetTargetLanguage(data.TargetLanguage).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetQuestionCount(data.QuestionCount).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	return nil
}
