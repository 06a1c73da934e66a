// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/mastery"
)

// MasteryCreate is the builder for creating a Mastery entity.
type MasteryCreate struct {
	config
	mutation *MasteryMutation
	hooks    []Hook
}

// SetCategoryID sets the "category_id" field.
func (_c *MasteryCreate) SetCategoryID(v int) *MasteryCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *MasteryCreate) SetRating(v float64) *MasteryCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableRating(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetRatingVar sets the "rating_var" field.
func (_c *MasteryCreate) SetRatingVar(v float64) *MasteryCreate {
	_c.mutation.SetRatingVar(v)
	return _c
}

// SetNillableRatingVar sets the "rating_var" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableRatingVar(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetRatingVar(*v)
	}
	return _c
}

// SetLastReviewed sets the "last_reviewed" field.
func (_c *MasteryCreate) SetLastReviewed(v time.Time) *MasteryCreate {
	_c.mutation.SetLastReviewed(v)
	return _c
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableLastReviewed(v *time.Time) *MasteryCreate {
	if v != nil {
		_c.SetLastReviewed(*v)
	}
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *MasteryCreate) SetCategory(v *Category) *MasteryCreate {
	return _c.SetCategoryID(v.ID)
}

// Mutation returns the MasteryMutation object of the builder.
func (_c *MasteryCreate) Mutation() *MasteryMutation {
	return _c.mutation
}

// Save creates the Mastery in the database.
func (_c *MasteryCreate) Save(ctx context.Context) (*Mastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryCreate) SaveX(ctx context.Context) *Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryCreate) defaults() {
	if _, ok := _c.mutation.Rating(); !ok {
		v := mastery.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.RatingVar(); !ok {
		v := mastery.DefaultRatingVar
		_c.mutation.SetRatingVar(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryCreate) check() error {
	if _, ok := _c.mutation.CategoryID(); !ok {
		return &ValidationError{Name: "category_id", err: errors.New(`ent: missing required field "Mastery.category_id"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "Mastery.rating"`)}
	}
	if _, ok := _c.mutation.RatingVar(); !ok {
		return &ValidationError{Name: "rating_var", err: errors.New(`ent: missing required field "Mastery.rating_var"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "Mastery.category"`)}
	}
	return nil
}

func (_c *MasteryCreate) sqlSave(ctx context.Context) (*Mastery, error) {
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

func (_c *MasteryCreate) createSpec() (*Mastery, *sqlgraph.CreateSpec) {
	var (
		_node = &Mastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mastery.Table, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(mastery.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.RatingVar(); ok {
		_spec.SetField(mastery.FieldRatingVar, field.TypeFloat64, value)
		_node.RatingVar = value
	}
	if value, ok := _c.mutation.LastReviewed(); ok {
		_spec.SetField(mastery.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   mastery.CategoryTable,
			Columns: []string{mastery.CategoryColumn},
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

// MasteryCreateBulk is the builder for creating many Mastery entities in bulk.
type MasteryCreateBulk struct {
	config
	err      error
	builders []*MasteryCreate
}

// Save creates the Mastery entities in the database.
func (_c *MasteryCreateBulk) Save(ctx context.Context) ([]*Mastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryMutation)
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
func (_c *MasteryCreateBulk) SaveX(ctx context.Context) []*Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
