// Code generated by ent, DO NOT EDIT.

package activityrollup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldCategoryID, v))
}

// EmaActivity applies equality check predicate on the "ema_activity" field. It's identical to EmaActivityEQ.
func EmaActivity(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldEmaActivity, v))
}

// EmaPerf applies equality check predicate on the "ema_perf" field. It's identical to EmaPerfEQ.
func EmaPerf(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldEmaPerf, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNotIn(FieldCategoryID, vs...))
}

// EmaActivityEQ applies the EQ predicate on the "ema_activity" field.
func EmaActivityEQ(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldEmaActivity, v))
}

// EmaActivityNEQ applies the NEQ predicate on the "ema_activity" field.
func EmaActivityNEQ(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNEQ(FieldEmaActivity, v))
}

// EmaActivityIn applies the In predicate on the "ema_activity" field.
func EmaActivityIn(vs ...float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldIn(FieldEmaActivity, vs...))
}

// EmaActivityNotIn applies the NotIn predicate on the "ema_activity" field.
func EmaActivityNotIn(vs ...float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNotIn(FieldEmaActivity, vs...))
}

// EmaActivityGT applies the GT predicate on the "ema_activity" field.
func EmaActivityGT(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGT(FieldEmaActivity, v))
}

// EmaActivityGTE applies the GTE predicate on the "ema_activity" field.
func EmaActivityGTE(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGTE(FieldEmaActivity, v))
}

// EmaActivityLT applies the LT predicate on the "ema_activity" field.
func EmaActivityLT(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLT(FieldEmaActivity, v))
}

// EmaActivityLTE applies the LTE predicate on the "ema_activity" field.
func EmaActivityLTE(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLTE(FieldEmaActivity, v))
}

// EmaPerfEQ applies the EQ predicate on the "ema_perf" field.
func EmaPerfEQ(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldEQ(FieldEmaPerf, v))
}

// EmaPerfNEQ applies the NEQ predicate on the "ema_perf" field.
func EmaPerfNEQ(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNEQ(FieldEmaPerf, v))
}

// EmaPerfIn applies the In predicate on the "ema_perf" field.
func EmaPerfIn(vs ...float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldIn(FieldEmaPerf, vs...))
}

// EmaPerfNotIn applies the NotIn predicate on the "ema_perf" field.
func EmaPerfNotIn(vs ...float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldNotIn(FieldEmaPerf, vs...))
}

// EmaPerfGT applies the GT predicate on the "ema_perf" field.
func EmaPerfGT(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGT(FieldEmaPerf, v))
}

// EmaPerfGTE applies the GTE predicate on the "ema_perf" field.
func EmaPerfGTE(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldGTE(FieldEmaPerf, v))
}

// EmaPerfLT applies the LT predicate on the "ema_perf" field.
func EmaPerfLT(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLT(FieldEmaPerf, v))
}

// EmaPerfLTE applies the LTE predicate on the "ema_perf" field.
func EmaPerfLTE(v float64) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.FieldLTE(FieldEmaPerf, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.ActivityRollup {
	return predicate.ActivityRollup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.ActivityRollup {
	return predicate.ActivityRollup(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityRollup) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityRollup) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityRollup) predicate.ActivityRollup {
	return predicate.ActivityRollup(sql.NotPredicates(p))
}
