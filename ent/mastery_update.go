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
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/mastery"
	"github.com/nmercier/quantfolio/ent/predicate"
)

// MasteryUpdate is the builder for updating Mastery entities.
type MasteryUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryMutation
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdate) Where(ps ...predicate.Mastery) *MasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *MasteryUpdate) SetCategoryID(v int) *MasteryUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableCategoryID(v *int) *MasteryUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *MasteryUpdate) SetRating(v float64) *MasteryUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableRating(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MasteryUpdate) AddRating(v float64) *MasteryUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetRatingVar sets the "rating_var" field.
func (_u *MasteryUpdate) SetRatingVar(v float64) *MasteryUpdate {
	_u.mutation.ResetRatingVar()
	_u.mutation.SetRatingVar(v)
	return _u
}

// SetNillableRatingVar sets the "rating_var" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableRatingVar(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetRatingVar(*v)
	}
	return _u
}

// AddRatingVar adds value to the "rating_var" field.
func (_u *MasteryUpdate) AddRatingVar(v float64) *MasteryUpdate {
	_u.mutation.AddRatingVar(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *MasteryUpdate) SetLastReviewed(v time.Time) *MasteryUpdate {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableLastReviewed(v *time.Time) *MasteryUpdate {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *MasteryUpdate) ClearLastReviewed() *MasteryUpdate {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *MasteryUpdate) SetCategory(v *Category) *MasteryUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdate) Mutation() *MasteryMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *MasteryUpdate) ClearCategory() *MasteryUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryUpdate) check() error {
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mastery.category"`)
	}
	return nil
}

func (_u *MasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(mastery.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(mastery.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatingVar(); ok {
		_spec.SetField(mastery.FieldRatingVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingVar(); ok {
		_spec.AddField(mastery.FieldRatingVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(mastery.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(mastery.FieldLastReviewed, field.TypeTime)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryUpdateOne is the builder for updating a single Mastery entity.
type MasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *MasteryUpdateOne) SetCategoryID(v int) *MasteryUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableCategoryID(v *int) *MasteryUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *MasteryUpdateOne) SetRating(v float64) *MasteryUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableRating(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *MasteryUpdateOne) AddRating(v float64) *MasteryUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetRatingVar sets the "rating_var" field.
func (_u *MasteryUpdateOne) SetRatingVar(v float64) *MasteryUpdateOne {
	_u.mutation.ResetRatingVar()
	_u.mutation.SetRatingVar(v)
	return _u
}

// SetNillableRatingVar sets the "rating_var" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableRatingVar(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetRatingVar(*v)
	}
	return _u
}

// AddRatingVar adds value to the "rating_var" field.
func (_u *MasteryUpdateOne) AddRatingVar(v float64) *MasteryUpdateOne {
	_u.mutation.AddRatingVar(v)
	return _u
}

// SetLastReviewed sets the "last_reviewed" field.
func (_u *MasteryUpdateOne) SetLastReviewed(v time.Time) *MasteryUpdateOne {
	_u.mutation.SetLastReviewed(v)
	return _u
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableLastReviewed(v *time.Time) *MasteryUpdateOne {
	if v != nil {
		_u.SetLastReviewed(*v)
	}
	return _u
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (_u *MasteryUpdateOne) ClearLastReviewed() *MasteryUpdateOne {
	_u.mutation.ClearLastReviewed()
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *MasteryUpdateOne) SetCategory(v *Category) *MasteryUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdateOne) Mutation() *MasteryMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *MasteryUpdateOne) ClearCategory() *MasteryUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdateOne) Where(ps ...predicate.Mastery) *MasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryUpdateOne) Select(field string, fields ...string) *MasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mastery entity.
func (_u *MasteryUpdateOne) Save(ctx context.Context) (*Mastery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdateOne) SaveX(ctx context.Context) *Mastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryUpdateOne) check() error {
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mastery.category"`)
	}
	return nil
}

func (_u *MasteryUpdateOne) sqlSave(ctx context.Context) (_node *Mastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mastery.FieldID)
		for _, f := range fields {
			if !mastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mastery.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(mastery.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(mastery.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RatingVar(); ok {
		_spec.SetField(mastery.FieldRatingVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingVar(); ok {
		_spec.AddField(mastery.FieldRatingVar, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewed(); ok {
		_spec.SetField(mastery.FieldLastReviewed, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedCleared() {
		_spec.ClearField(mastery.FieldLastReviewed, field.TypeTime)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
