// Package mockingbird builds SELECT and UNION queries as an abstract syntax
// tree and compiles them to parameterized SQL for a chosen dialect.
//
// Queries are assembled with fluent builder calls. The builders mutate in
// place and return themselves, so a chain and a sequence of statements on the
// same builder are equivalent.
//
// # Basic Usage
//
//	import "github.com/zoobzio/mockingbird/mysql"
//
//	query := mockingbird.Select().
//		Columns("id", "name").
//		From(mockingbird.T("users", "u")).
//		Where(mockingbird.And(
//			mockingbird.R("u.active = 1"),
//			mockingbird.Gt("u.age", 21),
//		)).
//		OrderBy("name").
//		Limit(10)
//
//	result, err := query.Compile(mysql.New())
//	// result.SQL:    SELECT id, name FROM users AS u WHERE (u.active = 1) AND (u.age > ?) ORDER BY name ASC LIMIT ?
//	// result.Values: []any{21, 10}
//
// # Dialects
//
// A Dialect decides how bound values become placeholders, how tables are
// aliased and how LIMIT/OFFSET are expressed. Positional dialects (mysql,
// sqlite, postgres) return Result.Values in placeholder order; named
// dialects (oracle, mssql) return Result.Parameters keyed by placeholder name.
// The oracle dialect has no LIMIT clause and wraps the query in ROWNUM
// subqueries instead.
//
// # Raw Text
//
// R wraps literal SQL. It is accepted anywhere an Expression is and is
// emitted verbatim; the caller is responsible for its safety.
package mockingbird

import (
	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Statement is the root of a compilable query.
type Statement = types.Statement

// Member is one operand of a UNION.
type Member = types.Member

// Expression is a predicate or operator node.
type Expression = types.Expression

// Raw is literal SQL text.
type Raw = types.Raw

// ColumnPair is the two-column join shorthand.
type ColumnPair = types.ColumnPair

// Expression node types.
type (
	LogicalOperator = types.LogicalOperator
	NotOperator     = types.NotOperator
	UnaryOperator   = types.UnaryOperator
	BinaryOperator  = types.BinaryOperator
	TrinaryOperator = types.TrinaryOperator
	CaseOperator    = types.CaseOperator
	Branch          = types.Branch
)

// Column is a select-list entry with an optional alias.
type Column = types.Column

// Table is a table or sub-statement reference with an optional alias.
type Table = types.Table

// Join represents a JOIN clause.
type Join = types.Join

// OrderBy represents an ORDER BY entry.
type OrderBy = types.OrderBy

// Page carries the limit/offset settings handed to a dialect.
type Page = types.Page

// Context accumulates bound values for one compilation.
type Context = types.Context

// Result contains the rendered SQL and its bound values.
type Result = types.Result

// Capabilities describes the features a dialect supports.
type Capabilities = render.Capabilities

// PlaceholderStyle and PaginationStyle describe dialect rendering strategies.
type (
	PlaceholderStyle = render.PlaceholderStyle
	PaginationStyle  = render.PaginationStyle
)

// Re-export capability constants for public API.
const (
	PlaceholderPositional = render.PlaceholderPositional
	PlaceholderNamed      = render.PlaceholderNamed

	PaginationLimitOffset = render.PaginationLimitOffset
	PaginationOffsetFetch = render.PaginationOffsetFetch
	PaginationRowNum      = render.PaginationRowNum
)

// UnsupportedFeatureError indicates a construct the dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// NewContext creates an empty compile context. Pass the same context to
// several Compile calls to share one parameter list between them.
func NewContext() *Context {
	return types.NewContext()
}
