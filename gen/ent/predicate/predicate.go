// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Employee is the predicate function for employee builders.
type Employee func(*sql.Selector)

// EmployeeAlias is the predicate function for employeealias builders.
type EmployeeAlias func(*sql.Selector)

// MatchResult is the predicate function for matchresult builders.
type MatchResult func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)
