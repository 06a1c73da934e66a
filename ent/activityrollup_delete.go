// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// ActivityRollupDelete is the builder for deleting a ActivityRollup entity.
type ActivityRollupDelete struct {
	config
	hooks    []Hook
	mutation *ActivityRollupMutation
}

// Where appends a list predicates to the ActivityRollupDelete builder.
func (_d *ActivityRollupDelete) Where(ps ...predicate.ActivityRollup) *ActivityRollupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ActivityRollupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActivityRollupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ActivityRollupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(activityrollup.Table, sqlgraph.NewFieldSpec(activityrollup.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ActivityRollupDeleteOne is the builder for deleting a single ActivityRollup entity.
type ActivityRollupDeleteOne struct {
	_d *ActivityRollupDelete
}

// Where appends a list predicates to the ActivityRollupDelete builder.
func (_d *ActivityRollupDeleteOne) Where(ps ...predicate.ActivityRollup) *ActivityRollupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ActivityRollupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{activityrollup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ActivityRollupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
