package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer is the append-only audit row for one answered question: outcome,
// client-measured latency, and the signed rating delta that was applied.
// Rows are never mutated or deleted.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Immutable(),
		field.Int("question_id").
			Immutable(),
		field.Int("category_id").
			Immutable(),
		field.Bool("correct").
			Immutable(),
		field.Int("time_sec").
			Immutable().
			Comment("Response latency in seconds, measured client-side"),
		field.Float("rating_delta").
			Immutable().
			Comment("Signed delta applied to the category rating"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("answers").
			Unique().
			Required().
			Immutable().
			Field("session_id"),
		edge.From("question", Question.Type).
			Ref("answers").
			Unique().
			Required().
			Immutable().
			Field("question_id"),
		edge.From("category", Category.Type).
			Ref("answers").
			Unique().
			Required().
			Immutable().
			Field("category_id"),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category_id"),
	}
}
