// Code generated by ent, DO NOT EDIT.

package mastery

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mastery type in the database.
	Label = "mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategoryID holds the string denoting the category_id field in the database.
	FieldCategoryID = "category_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldRatingVar holds the string denoting the rating_var field in the database.
	FieldRatingVar = "rating_var"
	// FieldLastReviewed holds the string denoting the last_reviewed field in the database.
	FieldLastReviewed = "last_reviewed"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// Table holds the table name of the mastery in the database.
	Table = "masteries"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "masteries"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_id"
)

// Columns holds all SQL columns for mastery fields.
var Columns = []string{
	FieldID,
	FieldCategoryID,
	FieldRating,
	FieldRatingVar,
	FieldLastReviewed,
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
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating float64
	// DefaultRatingVar holds the default value on creation for the "rating_var" field.
	DefaultRatingVar float64
)

// OrderOption defines the ordering options for the Mastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategoryID orders the results by the category_id field.
func ByCategoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByRatingVar orders the results by the rating_var field.
func ByRatingVar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatingVar, opts...).ToFunc()
}

// ByLastReviewed orders the results by the last_reviewed field.
func ByLastReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewed, opts...).ToFunc()
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
