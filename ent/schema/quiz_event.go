package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz generation and grading for usage telemetry.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").NotEmpty(),
		field.String("username").NotEmpty(),
		field.String("phase").
			Comment("Lifecycle phase: generated or graded"),
		field.String("native_language").NotEmpty(),
		field.String("target_language").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("difficulty").NotEmpty(),
		field.Int("question_count").Default(0),
		field.Int("correct").
			Default(0).
			Comment("Correct answers; meaningful for graded events only"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("username"),
		index.Fields("phase"),
		index.Fields("target_language"),
	}
}
