// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nmercier/quantfolio/ent/category"
	"github.com/nmercier/quantfolio/ent/mastery"
)

// Mastery is the model entity for the Mastery schema.
type Mastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID int `json:"category_id,omitempty"`
	// Skill estimate, clamped to [0,100]
	Rating float64 `json:"rating,omitempty"`
	// Uncertainty driving the learning rate; decays, floor 5
	RatingVar float64 `json:"rating_var,omitempty"`
	// LastReviewed holds the value of the "last_reviewed" field.
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MasteryQuery when eager-loading is set.
	Edges        MasteryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MasteryEdges holds the relations/edges for other nodes in the graph.
type MasteryEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MasteryEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mastery.FieldRating, mastery.FieldRatingVar:
			values[i] = new(sql.NullFloat64)
		case mastery.FieldID, mastery.FieldCategoryID:
			values[i] = new(sql.NullInt64)
		case mastery.FieldLastReviewed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mastery fields.
func (_m *Mastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mastery.FieldCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = int(value.Int64)
			}
		case mastery.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case mastery.FieldRatingVar:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_var", values[i])
			} else if value.Valid {
				_m.RatingVar = value.Float64
			}
		case mastery.FieldLastReviewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed", values[i])
			} else if value.Valid {
				_m.LastReviewed = new(time.Time)
				*_m.LastReviewed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mastery.
// This includes values selected through modifiers, order, etc.
func (_m *Mastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the Mastery entity.
func (_m *Mastery) QueryCategory() *CategoryQuery {
	return NewMasteryClient(_m.config).QueryCategory(_m)
}

// Update returns a builder for updating this Mastery.
// Note that you need to call Mastery.Unwrap() before calling this method if this Mastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mastery) Update() *MasteryUpdateOne {
	return NewMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mastery) Unwrap() *Mastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mastery) String() string {
	var builder strings.Builder
	builder.WriteString("Mastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("rating_var=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatingVar))
	builder.WriteString(", ")
	if v := _m.LastReviewed; v != nil {
		builder.WriteString("last_reviewed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Masteries is a parsable slice of Mastery.
type Masteries []*Mastery
