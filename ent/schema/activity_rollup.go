package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ActivityRollup holds the exponential moving averages of engagement and
// correctness for one category. Created lazily alongside Mastery.
type ActivityRollup struct {
	ent.Schema
}

func (ActivityRollup) Fields() []ent.Field {
	return []ent.Field{
		field.Int("category_id").
			Unique(),
		field.Float("ema_activity").
			Default(0.0).
			Comment("EMA of engagement; trends to 1 under sustained use"),
		field.Float("ema_perf").
			Default(0.5).
			Comment("EMA of recent correctness"),
	}
}

func (ActivityRollup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("rollup").
			Unique().
			Required().
			Field("category_id"),
	}
}
