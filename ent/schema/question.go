package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a single quiz item bound to exactly one category.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("category_id"),
		field.String("type").
			NotEmpty().
			Comment("MCQ, short or calc"),
		field.Text("prompt").
			NotEmpty(),
		field.JSON("choices", []string{}).
			Optional().
			Comment("Ordered choice list for MCQ questions"),
		field.String("answer").
			NotEmpty().
			Comment("JSON-encoded canonical answer: choice index for MCQ, text otherwise"),
		field.Float("difficulty").
			Default(0.5).
			Comment("Difficulty in [0,1]; 0.5 is neutral"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("questions").
			Unique().
			Required().
			Field("category_id"),
		edge.To("answers", Answer.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
	}
}
