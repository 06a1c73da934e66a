package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session records one practice run: NAV and tracking-error snapshots at
// open and close, plus the realized P&L (nav_after - nav_before).
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Public UUID handed to the client"),
		field.Enum("status").
			Values("open", "closed").
			Default("open"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Float("nav_before"),
		field.Float("te_before"),
		field.Float("nav_after").
			Optional(),
		field.Float("te_after").
			Optional(),
		field.Float("pnl").
			Optional(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("answers", Answer.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uid"),
	}
}
