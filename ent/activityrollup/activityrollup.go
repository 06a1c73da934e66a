// Code generated by ent, DO NOT EDIT.

package activityrollup

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the activityrollup type in the database.
	Label = "activity_rollup"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldEmaActivity holds the string denoting the ema_activity field in the database.
	FieldEmaActivity = "ema_activity"
	// FieldEmaPerf holds the string denoting the ema_perf field in the database.
	FieldEmaPerf = "ema_perf"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// Table holds the table name of the activityrollup in the database.
	Table = "activity_rollups"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "activity_rollups"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
)

// Columns holds all SQL columns for activityrollup fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldEmaActivity,
	FieldEmaPerf,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEmaActivity holds the default value on creation for the "ema_activity" field.
	DefaultEmaActivity float64
	// DefaultEmaPerf holds the default value on creation for the "ema_perf" field.
	DefaultEmaPerf float64
)

// OrderOption defines the ordering options for the ActivityRollup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByEmaActivity orders the results by the ema_activity field.
func ByEmaActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmaActivity, opts...).ToFunc()
}

// ByEmaPerf orders the results by the ema_perf field.
func ByEmaPerf(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmaPerf, opts...).ToFunc()
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, CategoryTable, CategoryColumn),
	)
}
