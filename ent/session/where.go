// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// UID applies equality check predicate on the "uid" field. It's identical to UIDEQ.
func UID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// NavBefore applies equality check predicate on the "nav_before" field. It's identical to NavBeforeEQ.
func NavBefore(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNavBefore, v))
}

// TeBefore applies equality check predicate on the "te_before" field. It's identical to TeBeforeEQ.
func TeBefore(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTeBefore, v))
}

// NavAfter applies equality check predicate on the "nav_after" field. It's identical to NavAfterEQ.
func NavAfter(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNavAfter, v))
}

// TeAfter applies equality check predicate on the "te_after" field. It's identical to TeAfterEQ.
func TeAfter(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTeAfter, v))
}

// Pnl applies equality check predicate on the "pnl" field. It's identical to PnlEQ.
func Pnl(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPnl, v))
}

// UIDEQ applies the EQ predicate on the "uid" field.
func UIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUID, v))
}

// UIDNEQ applies the NEQ predicate on the "uid" field.
func UIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUID, v))
}

// UIDIn applies the In predicate on the "uid" field.
func UIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUID, vs...))
}

// UIDNotIn applies the NotIn predicate on the "uid" field.
func UIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUID, vs...))
}

// UIDGT applies the GT predicate on the "uid" field.
func UIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUID, v))
}

// UIDGTE applies the GTE predicate on the "uid" field.
func UIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUID, v))
}

// UIDLT applies the LT predicate on the "uid" field.
func UIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUID, v))
}

// UIDLTE applies the LTE predicate on the "uid" field.
func UIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUID, v))
}

// UIDContains applies the Contains predicate on the "uid" field.
func UIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUID, v))
}

// UIDHasPrefix applies the HasPrefix predicate on the "uid" field.
func UIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUID, v))
}

// UIDHasSuffix applies the HasSuffix predicate on the "uid" field.
func UIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUID, v))
}

// UIDEqualFold applies the EqualFold predicate on the "uid" field.
func UIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUID, v))
}

// UIDContainsFold applies the ContainsFold predicate on the "uid" field.
func UIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// NavBeforeEQ applies the EQ predicate on the "nav_before" field.
func NavBeforeEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNavBefore, v))
}

// NavBeforeNEQ applies the NEQ predicate on the "nav_before" field.
func NavBeforeNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldNavBefore, v))
}

// NavBeforeIn applies the In predicate on the "nav_before" field.
func NavBeforeIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldNavBefore, vs...))
}

// NavBeforeNotIn applies the NotIn predicate on the "nav_before" field.
func NavBeforeNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldNavBefore, vs...))
}

// NavBeforeGT applies the GT predicate on the "nav_before" field.
func NavBeforeGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldNavBefore, v))
}

// NavBeforeGTE applies the GTE predicate on the "nav_before" field.
func NavBeforeGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldNavBefore, v))
}

// NavBeforeLT applies the LT predicate on the "nav_before" field.
func NavBeforeLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldNavBefore, v))
}

// NavBeforeLTE applies the LTE predicate on the "nav_before" field.
func NavBeforeLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldNavBefore, v))
}

// TeBeforeEQ applies the EQ predicate on the "te_before" field.
func TeBeforeEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTeBefore, v))
}

// TeBeforeNEQ applies the NEQ predicate on the "te_before" field.
func TeBeforeNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTeBefore, v))
}

// TeBeforeIn applies the In predicate on the "te_before" field.
func TeBeforeIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTeBefore, vs...))
}

// TeBeforeNotIn applies the NotIn predicate on the "te_before" field.
func TeBeforeNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTeBefore, vs...))
}

// TeBeforeGT applies the GT predicate on the "te_before" field.
func TeBeforeGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTeBefore, v))
}

// TeBeforeGTE applies the GTE predicate on the "te_before" field.
func TeBeforeGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTeBefore, v))
}

// TeBeforeLT applies the LT predicate on the "te_before" field.
func TeBeforeLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTeBefore, v))
}

// TeBeforeLTE applies the LTE predicate on the "te_before" field.
func TeBeforeLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTeBefore, v))
}

// NavAfterEQ applies the EQ predicate on the "nav_after" field.
func NavAfterEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldNavAfter, v))
}

// NavAfterNEQ applies the NEQ predicate on the "nav_after" field.
func NavAfterNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldNavAfter, v))
}

// NavAfterIn applies the In predicate on the "nav_after" field.
func NavAfterIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldNavAfter, vs...))
}

// NavAfterNotIn applies the NotIn predicate on the "nav_after" field.
func NavAfterNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldNavAfter, vs...))
}

// NavAfterGT applies the GT predicate on the "nav_after" field.
func NavAfterGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldNavAfter, v))
}

// NavAfterGTE applies the GTE predicate on the "nav_after" field.
func NavAfterGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldNavAfter, v))
}

// NavAfterLT applies the LT predicate on the "nav_after" field.
func NavAfterLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldNavAfter, v))
}

// NavAfterLTE applies the LTE predicate on the "nav_after" field.
func NavAfterLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldNavAfter, v))
}

// NavAfterIsNil applies the IsNil predicate on the "nav_after" field.
func NavAfterIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldNavAfter))
}

// NavAfterNotNil applies the NotNil predicate on the "nav_after" field.
func NavAfterNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldNavAfter))
}

// TeAfterEQ applies the EQ predicate on the "te_after" field.
func TeAfterEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTeAfter, v))
}

// TeAfterNEQ applies the NEQ predicate on the "te_after" field.
func TeAfterNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTeAfter, v))
}

// TeAfterIn applies the In predicate on the "te_after" field.
func TeAfterIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTeAfter, vs...))
}

// TeAfterNotIn applies the NotIn predicate on the "te_after" field.
func TeAfterNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTeAfter, vs...))
}

// TeAfterGT applies the GT predicate on the "te_after" field.
func TeAfterGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTeAfter, v))
}

// TeAfterGTE applies the GTE predicate on the "te_after" field.
func TeAfterGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTeAfter, v))
}

// TeAfterLT applies the LT predicate on the "te_after" field.
func TeAfterLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTeAfter, v))
}

// TeAfterLTE applies the LTE predicate on the "te_after" field.
func TeAfterLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTeAfter, v))
}

// TeAfterIsNil applies the IsNil predicate on the "te_after" field.
func TeAfterIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTeAfter))
}

// TeAfterNotNil applies the NotNil predicate on the "te_after" field.
func TeAfterNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTeAfter))
}

// PnlEQ applies the EQ predicate on the "pnl" field.
func PnlEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPnl, v))
}

// PnlNEQ applies the NEQ predicate on the "pnl" field.
func PnlNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPnl, v))
}

// PnlIn applies the In predicate on the "pnl" field.
func PnlIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPnl, vs...))
}

// PnlNotIn applies the NotIn predicate on the "pnl" field.
func PnlNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPnl, vs...))
}

// PnlGT applies the GT predicate on the "pnl" field.
func PnlGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPnl, v))
}

// PnlGTE applies the GTE predicate on the "pnl" field.
func PnlGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPnl, v))
}

// PnlLT applies the LT predicate on the "pnl" field.
func PnlLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPnl, v))
}

// PnlLTE applies the LTE predicate on the "pnl" field.
func PnlLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPnl, v))
}

// PnlIsNil applies the IsNil predicate on the "pnl" field.
func PnlIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPnl))
}

// PnlNotNil applies the NotNil predicate on the "pnl" field.
func PnlNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPnl))
}

// HasAnswers applies the HasEdge predicate on the "answers" edge.
func HasAnswers() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnswersWith applies the HasEdge predicate on the "answers" edge with a given conditions (other predicates).
func HasAnswersWith(preds ...predicate.Answer) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
