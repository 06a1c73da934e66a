// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/category"
)

// ActivityRollupCreate is the builder for creating a ActivityRollup entity.
type ActivityRollupCreate struct {
	config
	mutation *ActivityRollupMutation
	hooks    []Hook
}

// SetCategoryID sets the "category_id" field.
func (_c *ActivityRollupCreate) SetCategoryID(v int) *ActivityRollupCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetEmaActivity sets the "ema_activity" field.
func (_c *ActivityRollupCreate) SetEmaActivity(v float64) *ActivityRollupCreate {
	_c.mutation.SetEmaActivity(v)
	return _c
}

// SetNillableEmaActivity sets the "ema_activity" field if the given value is not nil.
func (_c *ActivityRollupCreate) SetNillableEmaActivity(v *float64) *ActivityRollupCreate {
	if v != nil {
		_c.SetEmaActivity(*v)
	}
	return _c
}

// SetEmaPerf sets the "ema_perf" field.
func (_c *ActivityRollupCreate) SetEmaPerf(v float64) *ActivityRollupCreate {
	_c.mutation.SetEmaPerf(v)
	return _c
}

// SetNillableEmaPerf sets the "ema_perf" field if the given value is not nil.
func (_c *ActivityRollupCreate) SetNillableEmaPerf(v *float64) *ActivityRollupCreate {
	if v != nil {
		_c.SetEmaPerf(*v)
	}
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *ActivityRollupCreate) SetCategory(v *Category) *ActivityRollupCreate {
	return _c.SetCategoryID(v.ID)
}

// Mutation returns the ActivityRollupMutation object of the builder.
func (_c *ActivityRollupCreate) Mutation() *ActivityRollupMutation {
	return _c.mutation
}

// Save creates the ActivityRollup in the database.
func (_c *ActivityRollupCreate) Save(ctx context.Context) (*ActivityRollup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityRollupCreate) SaveX(ctx context.Context) *ActivityRollup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityRollupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityRollupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityRollupCreate) defaults() {
	if _, ok := _c.mutation.EmaActivity(); !ok {
		v := activityrollup.DefaultEmaActivity
		_c.mutation.SetEmaActivity(v)
	}
	if _, ok := _c.mutation.EmaPerf(); !ok {
		v := activityrollup.DefaultEmaPerf
		_c.mutation.SetEmaPerf(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityRollupCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "ActivityRollup.category_id"`)}
	}
	if _, ok := _c.mutation.EmaActivity(); !ok {
		return &ValidationError{Name: "ema_activity", err: errors.New(`ent: missing required field "ActivityRollup.ema_activity"`)}
	}
	if _, ok := _c.mutation.EmaPerf(); !ok {
		return &ValidationError{Name: "ema_perf", err: errors.New(`ent: missing required field "ActivityRollup.ema_perf"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "ActivityRollup.category"`)}
	}
	return nil
}

func (_c *ActivityRollupCreate) sqlSave(ctx context.Context) (*ActivityRollup, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityRollupCreate) createSpec() (*ActivityRollup, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityRollup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityrollup.Table, sqlgraph.NewFieldSpec(activityrollup.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EmaActivity(); ok {
		_spec.SetField(activityrollup.FieldEmaActivity, field.TypeFloat64, value)
		_node.EmaActivity = value
	}
	if value, ok := _c.mutation.EmaPerf(); ok {
		_spec.SetField(activityrollup.FieldEmaPerf, field.TypeFloat64, value)
		_node.EmaPerf = value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActivityRollupCreateBulk is the builder for creating many ActivityRollup entities in bulk.
type ActivityRollupCreateBulk struct {
	config
	err      error
	builders []*ActivityRollupCreate
}

// Save creates the ActivityRollup entities in the database.
func (_c *ActivityRollupCreateBulk) Save(ctx context.Context) ([]*ActivityRollup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityRollup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityRollupMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActivityRollupCreateBulk) SaveX(ctx context.Context) []*ActivityRollup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityRollupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityRollupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
