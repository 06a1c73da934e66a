// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityRollup is the predicate function for activityrollup builders.
type ActivityRollup func(*sql.Selector)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Mastery is the predicate function for mastery builders.
type Mastery func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)
