package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category is a learning topic. Categories form a tree via parent_id;
// top-level categories (parent_id NULL) are the market "regions".
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.Int("parent_id").
			Optional().
			Nillable(),
		field.String("name").
			NotEmpty(),
		field.Float("target_weight").
			Default(0.0).
			Comment("Admin-assigned allocation target; normalized to sum 1 by the settings workflow"),
		field.Bool("active").
			Default(true).
			Comment("Inactive categories are excluded from reconciliation and selection"),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Category.Type).
			From("parent").
			Unique().
			Field("parent_id"),
		edge.To("questions", Question.Type),
		edge.To("mastery", Mastery.Type).
			Unique(),
		edge.To("rollup", ActivityRollup.Type).
			Unique(),
		edge.To("answers", Answer.Type),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		// Names are unique among siblings, not globally: "Curves" may
		// exist under both "Rates" and "FX".
		index.Fields("parent_id", "name").
			Unique(),
	}
}
