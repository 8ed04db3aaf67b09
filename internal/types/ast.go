package types

import (
	"errors"
	"fmt"
	"strings"
)

// Construction errors.
var (
	ErrInvalidDirection  = errors.New("illegal sort direction")
	ErrUnknownJoinMethod = errors.New("unimplemented join method")
	ErrInvalidPage       = errors.New("invalid page bounds")
)

// Statement is the root of a compilable query.
// *Select and *Union are the variants the compiler understands.
type Statement interface {
	IsStatement()
}

// Member is one operand of a UNION: a Select, a Union or raw text.
type Member interface {
	IsMember()
}

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection normalizes a direction string case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(s)); d {
	case ASC, DESC:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDirection, s)
	}
}

// OrderBy represents an ORDER BY entry.
type OrderBy struct {
	Column    string
	Direction Direction
}

// JoinType represents the SQL join keyword.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT OUTER JOIN"
	RightJoin JoinType = "RIGHT OUTER JOIN"
	FullJoin  JoinType = "FULL JOIN"
)

// ParseJoinMethod maps a builder method name to its join keyword.
func ParseJoinMethod(method string) (JoinType, error) {
	switch method {
	case "join", "innerJoin":
		return InnerJoin, nil
	case "leftJoin", "leftOuterJoin":
		return LeftJoin, nil
	case "rightJoin", "rightOuterJoin":
		return RightJoin, nil
	case "fullJoin", "fullOuterJoin":
		return FullJoin, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownJoinMethod, method)
	}
}

// Join represents a JOIN clause. The alias lives on Table.
type Join struct {
	On    Expression
	Table Table
	Type  JoinType
}

// Column is a select-list entry with an optional alias.
type Column struct {
	Expr  Expression
	Alias string
}

// Select is the property bag of a SELECT statement.
// Nil and empty fields are omitted from the rendered query.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type Select struct {
	Columns  []Column
	Distinct bool
	From     []Table
	Joins    []Join
	Where    Expression
	Having   Expression
	GroupBy  []string
	OrderBy  []OrderBy
	Limit    *int
	Offset   *int
}

// Union combines members with UNION. Ordering and pagination apply to the
// combined result.
type Union struct {
	Members []Member
	OrderBy []OrderBy
	Limit   *int
	Offset  *int
}

// Page carries pagination settings handed to a dialect.
type Page struct {
	Limit   *int
	Offset  *int
	Ordered bool
}

// Empty reports whether neither limit nor offset is set.
func (p Page) Empty() bool {
	return p.Limit == nil && p.Offset == nil
}

// Validate rejects negative limits and offsets.
func (p Page) Validate() error {
	if p.Limit != nil && *p.Limit < 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidPage, *p.Limit)
	}
	if p.Offset != nil && *p.Offset < 0 {
		return fmt.Errorf("%w: offset %d", ErrInvalidPage, *p.Offset)
	}
	return nil
}

// Implement Statement and Member interfaces.
func (*Select) IsStatement() {}
func (*Union) IsStatement()  {}
func (*Select) IsMember()    {}
func (*Union) IsMember()     {}
func (Raw) IsMember()        {}
