// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmercier/quantfolio/ent/answer"
	"github.com/nmercier/quantfolio/ent/predicate"
	"github.com/nmercier/quantfolio/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetNavBefore sets the "nav_before" field.
func (_u *SessionUpdate) SetNavBefore(v float64) *SessionUpdate {
	_u.mutation.ResetNavBefore()
	_u.mutation.SetNavBefore(v)
	return _u
}

// SetNillableNavBefore sets the "nav_before" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNavBefore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetNavBefore(*v)
	}
	return _u
}

// AddNavBefore adds value to the "nav_before" field.
func (_u *SessionUpdate) AddNavBefore(v float64) *SessionUpdate {
	_u.mutation.AddNavBefore(v)
	return _u
}

// SetTeBefore sets the "te_before" field.
func (_u *SessionUpdate) SetTeBefore(v float64) *SessionUpdate {
	_u.mutation.ResetTeBefore()
	_u.mutation.SetTeBefore(v)
	return _u
}

// SetNillableTeBefore sets the "te_before" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTeBefore(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetTeBefore(*v)
	}
	return _u
}

// AddTeBefore adds value to the "te_before" field.
func (_u *SessionUpdate) AddTeBefore(v float64) *SessionUpdate {
	_u.mutation.AddTeBefore(v)
	return _u
}

// SetNavAfter sets the "nav_after" field.
func (_u *SessionUpdate) SetNavAfter(v float64) *SessionUpdate {
	_u.mutation.ResetNavAfter()
	_u.mutation.SetNavAfter(v)
	return _u
}

// SetNillableNavAfter sets the "nav_after" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNavAfter(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetNavAfter(*v)
	}
	return _u
}

// AddNavAfter adds value to the "nav_after" field.
func (_u *SessionUpdate) AddNavAfter(v float64) *SessionUpdate {
	_u.mutation.AddNavAfter(v)
	return _u
}

// ClearNavAfter clears the value of the "nav_after" field.
func (_u *SessionUpdate) ClearNavAfter() *SessionUpdate {
	_u.mutation.ClearNavAfter()
	return _u
}

// SetTeAfter sets the "te_after" field.
func (_u *SessionUpdate) SetTeAfter(v float64) *SessionUpdate {
	_u.mutation.ResetTeAfter()
	_u.mutation.SetTeAfter(v)
	return _u
}

// SetNillableTeAfter sets the "te_after" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTeAfter(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetTeAfter(*v)
	}
	return _u
}

// AddTeAfter adds value to the "te_after" field.
func (_u *SessionUpdate) AddTeAfter(v float64) *SessionUpdate {
	_u.mutation.AddTeAfter(v)
	return _u
}

// ClearTeAfter clears the value of the "te_after" field.
func (_u *SessionUpdate) ClearTeAfter() *SessionUpdate {
	_u.mutation.ClearTeAfter()
	return _u
}

// SetPnl sets the "pnl" field.
func (_u *SessionUpdate) SetPnl(v float64) *SessionUpdate {
	_u.mutation.ResetPnl()
	_u.mutation.SetPnl(v)
	return _u
}

// SetNillablePnl sets the "pnl" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePnl(v *float64) *SessionUpdate {
	if v != nil {
		_u.SetPnl(*v)
	}
	return _u
}

// AddPnl adds value to the "pnl" field.
func (_u *SessionUpdate) AddPnl(v float64) *SessionUpdate {
	_u.mutation.AddPnl(v)
	return _u
}

// ClearPnl clears the value of the "pnl" field.
func (_u *SessionUpdate) ClearPnl() *SessionUpdate {
	_u.mutation.ClearPnl()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SessionUpdate) AddAnswerIDs(ids ...int) *SessionUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SessionUpdate) AddAnswers(v ...*Answer) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SessionUpdate) ClearAnswers() *SessionUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SessionUpdate) RemoveAnswerIDs(ids ...int) *SessionUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SessionUpdate) RemoveAnswers(v ...*Answer) *SessionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NavBefore(); ok {
		_spec.SetField(session.FieldNavBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNavBefore(); ok {
		_spec.AddField(session.FieldNavBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeBefore(); ok {
		_spec.SetField(session.FieldTeBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeBefore(); ok {
		_spec.AddField(session.FieldTeBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NavAfter(); ok {
		_spec.SetField(session.FieldNavAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNavAfter(); ok {
		_spec.AddField(session.FieldNavAfter, field.TypeFloat64, value)
	}
	if _u.mutation.NavAfterCleared() {
		_spec.ClearField(session.FieldNavAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TeAfter(); ok {
		_spec.SetField(session.FieldTeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeAfter(); ok {
		_spec.AddField(session.FieldTeAfter, field.TypeFloat64, value)
	}
	if _u.mutation.TeAfterCleared() {
		_spec.ClearField(session.FieldTeAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Pnl(); ok {
		_spec.SetField(session.FieldPnl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPnl(); ok {
		_spec.AddField(session.FieldPnl, field.TypeFloat64, value)
	}
	if _u.mutation.PnlCleared() {
		_spec.ClearField(session.FieldPnl, field.TypeFloat64)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetNavBefore sets the "nav_before" field.
func (_u *SessionUpdateOne) SetNavBefore(v float64) *SessionUpdateOne {
	_u.mutation.ResetNavBefore()
	_u.mutation.SetNavBefore(v)
	return _u
}

// SetNillableNavBefore sets the "nav_before" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNavBefore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetNavBefore(*v)
	}
	return _u
}

// AddNavBefore adds value to the "nav_before" field.
func (_u *SessionUpdateOne) AddNavBefore(v float64) *SessionUpdateOne {
	_u.mutation.AddNavBefore(v)
	return _u
}

// SetTeBefore sets the "te_before" field.
func (_u *SessionUpdateOne) SetTeBefore(v float64) *SessionUpdateOne {
	_u.mutation.ResetTeBefore()
	_u.mutation.SetTeBefore(v)
	return _u
}

// SetNillableTeBefore sets the "te_before" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTeBefore(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetTeBefore(*v)
	}
	return _u
}

// AddTeBefore adds value to the "te_before" field.
func (_u *SessionUpdateOne) AddTeBefore(v float64) *SessionUpdateOne {
	_u.mutation.AddTeBefore(v)
	return _u
}

// SetNavAfter sets the "nav_after" field.
func (_u *SessionUpdateOne) SetNavAfter(v float64) *SessionUpdateOne {
	_u.mutation.ResetNavAfter()
	_u.mutation.SetNavAfter(v)
	return _u
}

// SetNillableNavAfter sets the "nav_after" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNavAfter(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetNavAfter(*v)
	}
	return _u
}

// AddNavAfter adds value to the "nav_after" field.
func (_u *SessionUpdateOne) AddNavAfter(v float64) *SessionUpdateOne {
	_u.mutation.AddNavAfter(v)
	return _u
}

// ClearNavAfter clears the value of the "nav_after" field.
func (_u *SessionUpdateOne) ClearNavAfter() *SessionUpdateOne {
	_u.mutation.ClearNavAfter()
	return _u
}

// SetTeAfter sets the "te_after" field.
func (_u *SessionUpdateOne) SetTeAfter(v float64) *SessionUpdateOne {
	_u.mutation.ResetTeAfter()
	_u.mutation.SetTeAfter(v)
	return _u
}

// SetNillableTeAfter sets the "te_after" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTeAfter(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetTeAfter(*v)
	}
	return _u
}

// AddTeAfter adds value to the "te_after" field.
func (_u *SessionUpdateOne) AddTeAfter(v float64) *SessionUpdateOne {
	_u.mutation.AddTeAfter(v)
	return _u
}

// ClearTeAfter clears the value of the "te_after" field.
func (_u *SessionUpdateOne) ClearTeAfter() *SessionUpdateOne {
	_u.mutation.ClearTeAfter()
	return _u
}

// SetPnl sets the "pnl" field.
func (_u *SessionUpdateOne) SetPnl(v float64) *SessionUpdateOne {
	_u.mutation.ResetPnl()
	_u.mutation.SetPnl(v)
	return _u
}

// SetNillablePnl sets the "pnl" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePnl(v *float64) *SessionUpdateOne {
	if v != nil {
		_u.SetPnl(*v)
	}
	return _u
}

// AddPnl adds value to the "pnl" field.
func (_u *SessionUpdateOne) AddPnl(v float64) *SessionUpdateOne {
	_u.mutation.AddPnl(v)
	return _u
}

// ClearPnl clears the value of the "pnl" field.
func (_u *SessionUpdateOne) ClearPnl() *SessionUpdateOne {
	_u.mutation.ClearPnl()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *SessionUpdateOne) AddAnswerIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *SessionUpdateOne) AddAnswers(v ...*Answer) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *SessionUpdateOne) ClearAnswers() *SessionUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *SessionUpdateOne) RemoveAnswerIDs(ids ...int) *SessionUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *SessionUpdateOne) RemoveAnswers(v ...*Answer) *SessionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NavBefore(); ok {
		_spec.SetField(session.FieldNavBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNavBefore(); ok {
		_spec.AddField(session.FieldNavBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TeBefore(); ok {
		_spec.SetField(session.FieldTeBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeBefore(); ok {
		_spec.AddField(session.FieldTeBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NavAfter(); ok {
		_spec.SetField(session.FieldNavAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNavAfter(); ok {
		_spec.AddField(session.FieldNavAfter, field.TypeFloat64, value)
	}
	if _u.mutation.NavAfterCleared() {
		_spec.ClearField(session.FieldNavAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TeAfter(); ok {
		_spec.SetField(session.FieldTeAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTeAfter(); ok {
		_spec.AddField(session.FieldTeAfter, field.TypeFloat64, value)
	}
	if _u.mutation.TeAfterCleared() {
		_spec.ClearField(session.FieldTeAfter, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Pnl(); ok {
		_spec.SetField(session.FieldPnl, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPnl(); ok {
		_spec.AddField(session.FieldPnl, field.TypeFloat64, value)
	}
	if _u.mutation.PnlCleared() {
		_spec.ClearField(session.FieldPnl, field.TypeFloat64)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.AnswersTable,
			Columns: []string{session.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
