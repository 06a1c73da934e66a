// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nmercier/quantfolio/ent/activityrollup"
	"github.com/nmercier/quantfolio/ent/category"
)

// ActivityRollup is the model entity for the ActivityRollup schema.
type ActivityRollup struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CategoryID holds the value of the "category_id" field.
	CategoryID int `json:"category_id,omitempty"`
	// EMA of engagement; trends to 1 under sustained use
	EmaActivity float64 `json:"ema_activity,omitempty"`
	// EMA of recent correctness
	EmaPerf float64 `json:"ema_perf,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActivityRollupQuery when eager-loading is set.
	Edges        ActivityRollupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActivityRollupEdges holds the relations/edges for other nodes in the graph.
type ActivityRollupEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActivityRollupEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityRollup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityrollup.FieldEmaActivity, activityrollup.FieldEmaPerf:
			values[i] = new(sql.NullFloat64)
		case activityrollup.FieldID, activityrollup.FieldCategoryID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityRollup fields.
func (_m *ActivityRollup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityrollup.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activityrollup.FieldCategoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field category_id", values[i])
			} else if value.Valid {
				_m.CategoryID = int(value.Int64)
			}
		case activityrollup.FieldEmaActivity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ema_activity", values[i])
			} else if value.Valid {
				_m.EmaActivity = value.Float64
			}
		case activityrollup.FieldEmaPerf:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ema_perf", values[i])
			} else if value.Valid {
				_m.EmaPerf = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityRollup.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityRollup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the ActivityRollup entity.
func (_m *ActivityRollup) QueryCategory() *CategoryQuery {
	return NewActivityRollupClient(_m.config).QueryCategory(_m)
}

// Update returns a builder for updating this ActivityRollup.
// Note that you need to call ActivityRollup.Unwrap() before calling this method if this ActivityRollup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityRollup) Update() *ActivityRollupUpdateOne {
	return NewActivityRollupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityRollup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityRollup) Unwrap() *ActivityRollup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityRollup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityRollup) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityRollup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryID))
	builder.WriteString(", ")
	builder.WriteString("ema_activity=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmaActivity))
	builder.WriteString(", ")
	builder.WriteString("ema_perf=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmaPerf))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityRollups is a parsable slice of ActivityRollup.
type ActivityRollups []*ActivityRollup
