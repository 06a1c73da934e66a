package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Mastery is the per-category skill estimate: a logistic rating in [0,100]
// and its uncertainty (rating_var), which decays toward a floor as the
// learner accumulates exposure. Created lazily on first reference.
type Mastery struct {
	ent.Schema
}

func (Mastery) Fields() []ent.Field {
	return []ent.Field{
		field.Int("category_id").
			Unique(),
		field.Float("rating").
			Default(50.0).
			Comment("Skill estimate, clamped to [0,100]"),
		field.Float("rating_var").
			Default(50.0).
			Comment("Uncertainty driving the learning rate; decays, floor 5"),
		field.Time("last_reviewed").
			Optional().
			Nillable(),
	}
}

func (Mastery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("mastery").
			Unique().
			Required().
			Field("category_id"),
	}
}
