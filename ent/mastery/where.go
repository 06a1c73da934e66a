// Code generated by ent, DO NOT EDIT.

package mastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldID, id))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldCategoryID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldRating, v))
}

// RatingVar applies equality check predicate on the "rating_var" field. It's identical to RatingVarEQ.
func RatingVar(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldRatingVar, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldLastReviewed, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldCategoryID, vs...))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldRating, v))
}

// RatingVarEQ applies the EQ predicate on the "rating_var" field.
func RatingVarEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldRatingVar, v))
}

// RatingVarNEQ applies the NEQ predicate on the "rating_var" field.
func RatingVarNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldRatingVar, v))
}

// RatingVarIn applies the In predicate on the "rating_var" field.
func RatingVarIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldRatingVar, vs...))
}

// RatingVarNotIn applies the NotIn predicate on the "rating_var" field.
func RatingVarNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldRatingVar, vs...))
}

// RatingVarGT applies the GT predicate on the "rating_var" field.
func RatingVarGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldRatingVar, v))
}

// RatingVarGTE applies the GTE predicate on the "rating_var" field.
func RatingVarGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldRatingVar, v))
}

// RatingVarLT applies the LT predicate on the "rating_var" field.
func RatingVarLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldRatingVar, v))
}

// RatingVarLTE applies the LTE predicate on the "rating_var" field.
func RatingVarLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldRatingVar, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.Mastery {
	return predicate.Mastery(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.Mastery {
	return predicate.Mastery(sql.FieldNotNull(FieldLastReviewed))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Mastery {
	return predicate.Mastery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Mastery {
	return predicate.Mastery(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.NotPredicates(p))
}
