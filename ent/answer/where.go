// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCategoryID, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// TimeSec applies equality check predicate on the "time_sec" field. It's identical to TimeSecEQ.
func TimeSec(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSec, v))
}

// RatingDelta applies equality check predicate on the "rating_delta" field. It's identical to RatingDeltaEQ.
func RatingDelta(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRatingDelta, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSessionID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCorrect, v))
}

// TimeSecEQ applies the EQ predicate on the "time_sec" field.
func TimeSecEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSec, v))
}

// TimeSecNEQ applies the NEQ predicate on the "time_sec" field.
func TimeSecNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTimeSec, v))
}

// TimeSecIn applies the In predicate on the "time_sec" field.
func TimeSecIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTimeSec, vs...))
}

// TimeSecNotIn applies the NotIn predicate on the "time_sec" field.
func TimeSecNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTimeSec, vs...))
}

// TimeSecGT applies the GT predicate on the "time_sec" field.
func TimeSecGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTimeSec, v))
}

// TimeSecGTE applies the GTE predicate on the "time_sec" field.
func TimeSecGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTimeSec, v))
}

// TimeSecLT applies the LT predicate on the "time_sec" field.
func TimeSecLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTimeSec, v))
}

// TimeSecLTE applies the LTE predicate on the "time_sec" field.
func TimeSecLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTimeSec, v))
}

// RatingDeltaEQ applies the EQ predicate on the "rating_delta" field.
func RatingDeltaEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldRatingDelta, v))
}

// RatingDeltaNEQ applies the NEQ predicate on the "rating_delta" field.
func RatingDeltaNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldRatingDelta, v))
}

// RatingDeltaIn applies the In predicate on the "rating_delta" field.
func RatingDeltaIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldRatingDelta, vs...))
}

// RatingDeltaNotIn applies the NotIn predicate on the "rating_delta" field.
func RatingDeltaNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldRatingDelta, vs...))
}

// RatingDeltaGT applies the GT predicate on the "rating_delta" field.
func RatingDeltaGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldRatingDelta, v))
}

// RatingDeltaGTE applies the GTE predicate on the "rating_delta" field.
func RatingDeltaGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldRatingDelta, v))
}

// RatingDeltaLT applies the LT predicate on the "rating_delta" field.
func RatingDeltaLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldRatingDelta, v))
}

// RatingDeltaLTE applies the LTE predicate on the "rating_delta" field.
func RatingDeltaLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldRatingDelta, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Answer {
	return predicate.Answer(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
