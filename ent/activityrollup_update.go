// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ActivityRollupUpdate is the builder for updating ActivityRollup entities.
type ActivityRollupUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityRollupMutation
}

// Where appends a list predicates to the ActivityRollupUpdate builder.
func (_u *ActivityRollupUpdate) Where(ps ...predicate.ActivityRollup) *ActivityRollupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ActivityRollupUpdate) SetCategoryID(v int) *ActivityRollupUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ActivityRollupUpdate) SetNillableCategoryID(v *int) *ActivityRollupUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetEmaActivity sets the "ema_activity" field.
func (_u *ActivityRollupUpdate) SetEmaActivity(v float64) *ActivityRollupUpdate {
	_u.mutation.ResetEmaActivity()
	_u.mutation.SetEmaActivity(v)
	return _u
}

// SetNillableEmaActivity sets the "ema_activity" field if the given value is not nil.
func (_u *ActivityRollupUpdate) SetNillableEmaActivity(v *float64) *ActivityRollupUpdate {
	if v != nil {
		_u.SetEmaActivity(*v)
	}
	return _u
}

// AddEmaActivity adds value to the "ema_activity" field.
func (_u *ActivityRollupUpdate) AddEmaActivity(v float64) *ActivityRollupUpdate {
	_u.mutation.AddEmaActivity(v)
	return _u
}

// SetEmaPerf sets the "ema_perf" field.
func (_u *ActivityRollupUpdate) SetEmaPerf(v float64) *ActivityRollupUpdate {
	_u.mutation.ResetEmaPerf()
	_u.mutation.SetEmaPerf(v)
	return _u
}

// SetNillableEmaPerf sets the "ema_perf" field if the given value is not nil.
func (_u *ActivityRollupUpdate) SetNillableEmaPerf(v *float64) *ActivityRollupUpdate {
	if v != nil {
		_u.SetEmaPerf(*v)
	}
	return _u
}

// AddEmaPerf adds value to the "ema_perf" field.
func (_u *ActivityRollupUpdate) AddEmaPerf(v float64) *ActivityRollupUpdate {
	_u.mutation.AddEmaPerf(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ActivityRollupUpdate) SetCategory(v *Category) *ActivityRollupUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the ActivityRollupMutation object of the builder.
func (_u *ActivityRollupUpdate) Mutation() *ActivityRollupMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ActivityRollupUpdate) ClearCategory() *ActivityRollupUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityRollupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityRollupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityRollupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityRollupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityRollupUpdate) check() error {
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActivityRollup.category"`)
	}
	return nil
}

func (_u *ActivityRollupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityrollup.Table, activityrollup.Columns, sqlgraph.NewFieldSpec(activityrollup.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmaActivity(); ok {
		_spec.SetField(activityrollup.FieldEmaActivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaActivity(); ok {
		_spec.AddField(activityrollup.FieldEmaActivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmaPerf(); ok {
		_spec.SetField(activityrollup.FieldEmaPerf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaPerf(); ok {
		_spec.AddField(activityrollup.FieldEmaPerf, field.TypeFloat64, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   activityrollup.CategoryTable,
			Columns: []string{activityrollup.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   activityrollup.CategoryTable,
			Columns: []string{activityrollup.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityrollup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityRollupUpdateOne is the builder for updating a single ActivityRollup entity.
type ActivityRollupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityRollupMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *ActivityRollupUpdateOne) SetCategoryID(v int) *ActivityRollupUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ActivityRollupUpdateOne) SetNillableCategoryID(v *int) *ActivityRollupUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetEmaActivity sets the "ema_activity" field.
func (_u *ActivityRollupUpdateOne) SetEmaActivity(v float64) *ActivityRollupUpdateOne {
	_u.mutation.ResetEmaActivity()
	_u.mutation.SetEmaActivity(v)
	return _u
}

// SetNillableEmaActivity sets the "ema_activity" field if the given value is not nil.
func (_u *ActivityRollupUpdateOne) SetNillableEmaActivity(v *float64) *ActivityRollupUpdateOne {
	if v != nil {
		_u.SetEmaActivity(*v)
	}
	return _u
}

// AddEmaActivity adds value to the "ema_activity" field.
func (_u *ActivityRollupUpdateOne) AddEmaActivity(v float64) *ActivityRollupUpdateOne {
	_u.mutation.AddEmaActivity(v)
	return _u
}

// SetEmaPerf sets the "ema_perf" field.
func (_u *ActivityRollupUpdateOne) SetEmaPerf(v float64) *ActivityRollupUpdateOne {
	_u.mutation.ResetEmaPerf()
	_u.mutation.SetEmaPerf(v)
	return _u
}

// SetNillableEmaPerf sets the "ema_perf" field if the given value is not nil.
func (_u *ActivityRollupUpdateOne) SetNillableEmaPerf(v *float64) *ActivityRollupUpdateOne {
	if v != nil {
		_u.SetEmaPerf(*v)
	}
	return _u
}

// AddEmaPerf adds value to the "ema_perf" field.
func (_u *ActivityRollupUpdateOne) AddEmaPerf(v float64) *ActivityRollupUpdateOne {
	_u.mutation.AddEmaPerf(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ActivityRollupUpdateOne) SetCategory(v *Category) *ActivityRollupUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the ActivityRollupMutation object of the builder.
func (_u *ActivityRollupUpdateOne) Mutation() *ActivityRollupMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ActivityRollupUpdateOne) ClearCategory() *ActivityRollupUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the ActivityRollupUpdate builder.
func (_u *ActivityRollupUpdateOne) Where(ps ...predicate.ActivityRollup) *ActivityRollupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityRollupUpdateOne) Select(field string, fields ...string) *ActivityRollupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityRollup entity.
func (_u *ActivityRollupUpdateOne) Save(ctx context.Context) (*ActivityRollup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityRollupUpdateOne) SaveX(ctx context.Context) *ActivityRollup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityRollupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityRollupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityRollupUpdateOne) check() error {
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActivityRollup.category"`)
	}
	return nil
}

func (_u *ActivityRollupUpdateOne) sqlSave(ctx context.Context) (_node *ActivityRollup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityrollup.Table, activityrollup.Columns, sqlgraph.NewFieldSpec(activityrollup.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityRollup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityrollup.FieldID)
		for _, f := range fields {
			if !activityrollup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityrollup.FieldID {
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
	if value, ok := _u.mutation.EmaActivity(); ok {
		_spec.SetField(activityrollup.FieldEmaActivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaActivity(); ok {
		_spec.AddField(activityrollup.FieldEmaActivity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmaPerf(); ok {
		_spec.SetField(activityrollup.FieldEmaPerf, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaPerf(); ok {
		_spec.AddField(activityrollup.FieldEmaPerf, field.TypeFloat64, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   activityrollup.CategoryTable,
			Columns: []string{activityrollup.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   activityrollup.CategoryTable,
			Columns: []string{activityrollup.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActivityRollup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityrollup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
