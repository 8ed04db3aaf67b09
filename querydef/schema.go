// Package querydef decodes declarative query definitions written in YAML or
// JSON and converts them to mockingbird statements.
//
// A definition holds exactly one of a select or a union:
//
//	select:
//	  columns: [id, {expr: "COUNT(*)", as: total}]
//	  from: [{table: orders, as: o}]
//	  where: {and: ["o.deleted = 0", {gt: [o.total, 100]}]}
//	  groupBy: [id]
//	  orderBy: [{column: total, direction: desc}]
//	  limit: 10
//
// Clause lists (columns, from, join, groupBy, orderBy) also accept a single
// entry in place of a one-element list.
//
// Expressions are either raw SQL strings, a two-element [left, right] column
// pair, or an object with exactly one operator key. Unknown keys are errors.
package querydef

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDefinition is returned for malformed query definitions.
var ErrInvalidDefinition = errors.New("invalid query definition")

// Definition is a query definition: a select, a union or, as a union member
// only, a raw SQL string.
//
//nolint:govet // fieldalignment: Logical grouping is preferred for readability
type Definition struct {
	Raw    string        `json:"-"`
	Select *SelectSchema `json:"select,omitempty"`
	Union  *UnionSchema  `json:"union,omitempty"`
}

// SelectSchema represents a SELECT statement in declarative form.
//
//nolint:govet // fieldalignment: Logical grouping is preferred for readability
type SelectSchema struct {
	Distinct bool               `json:"distinct,omitempty"`
	Columns  List[ColumnSchema] `json:"columns,omitempty"`
	From     List[TableSchema]  `json:"from,omitempty"`
	Joins    List[JoinSchema]   `json:"join,omitempty"`
	Where    *ConditionSchema   `json:"where,omitempty"`
	GroupBy  List[string]       `json:"groupBy,omitempty"`
	Having   *ConditionSchema   `json:"having,omitempty"`
	OrderBy  List[OrderSchema]  `json:"orderBy,omitempty"`
	Limit    *int               `json:"limit,omitempty"`
	Offset   *int               `json:"offset,omitempty"`
}

// UnionSchema represents a UNION in declarative form.
type UnionSchema struct {
	Members []Definition      `json:"members"`
	OrderBy List[OrderSchema] `json:"orderBy,omitempty"`
	Limit   *int              `json:"limit,omitempty"`
	Offset  *int              `json:"offset,omitempty"`
}

// List is a clause list that may also be written as a single entry, so
// "from: users" reads the same as "from: [users]".
type List[T any] []T

// ColumnSchema is a select-list entry. A plain string is a raw column.
type ColumnSchema struct {
	Expr *ConditionSchema `json:"expr"`
	As   string           `json:"as,omitempty"`
}

// TableSchema references a table or a nested query. A plain string is a
// table name.
type TableSchema struct {
	Table string      `json:"table,omitempty"`
	Query *Definition `json:"query,omitempty"`
	As    string      `json:"as,omitempty"`
}

// JoinSchema represents a JOIN clause. Type is a join method name such as
// "join", "leftJoin" or "fullOuterJoin" and defaults to "join".
type JoinSchema struct {
	Type  string           `json:"type,omitempty"`
	Table string           `json:"table,omitempty"`
	Query *Definition      `json:"query,omitempty"`
	As    string           `json:"as,omitempty"`
	On    *ConditionSchema `json:"condition,omitempty"`
}

// OrderSchema represents an ORDER BY entry. A plain string is an ascending
// column.
type OrderSchema struct {
	Column    string `json:"column"`
	Direction string `json:"direction,omitempty"` // defaults to ASC
}

// ConditionSchema is an expression in declarative form. Exactly one field
// is set.
//
//nolint:govet // fieldalignment: Logical grouping is preferred for readability
type ConditionSchema struct {
	// Raw SQL text, from a plain string.
	Raw string `json:"-"`
	// Column pair, from a [left, right] list.
	Pair []string `json:"-"`

	And []ConditionSchema `json:"and,omitempty"`
	Or  []ConditionSchema `json:"or,omitempty"`
	Not *ConditionSchema  `json:"not,omitempty"`

	// Comparisons take [column, value].
	Eq   []any `json:"eq,omitempty"`
	Neq  []any `json:"neq,omitempty"`
	Gt   []any `json:"gt,omitempty"`
	Lt   []any `json:"lt,omitempty"`
	Gteq []any `json:"gteq,omitempty"`
	Lteq []any `json:"lteq,omitempty"`
	Like []any `json:"like,omitempty"`
	In   []any `json:"in,omitempty"`

	IsNull    *ConditionSchema `json:"isNull,omitempty"`
	IsNotNull *ConditionSchema `json:"isNotNull,omitempty"`

	// Ranges take [column, low, high].
	Between    []any `json:"between,omitempty"`
	NotBetween []any `json:"notBetween,omitempty"`

	Case *CaseSchema `json:"case,omitempty"`
}

// CaseSchema represents a CASE expression.
type CaseSchema struct {
	Subject *ConditionSchema `json:"subject,omitempty"`
	When    []WhenSchema     `json:"when"`
	Else    *ConditionSchema `json:"else,omitempty"`
}

// WhenSchema represents a WHEN ... THEN branch.
type WhenSchema struct {
	If   ConditionSchema  `json:"if"`
	Then *ConditionSchema `json:"then,omitempty"`
}

// UnmarshalJSON accepts a list of entries or a single entry.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := decodeStrict(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var item T
	if err := decodeStrict(trimmed, &item); err != nil {
		return err
	}
	*l = List[T]{item}
	return nil
}

// UnmarshalJSON accepts a raw SQL string or a select/union object.
func (d *Definition) UnmarshalJSON(data []byte) error {
	if s, ok, err := decodeString(data); ok || err != nil {
		d.Raw = s
		return err
	}
	type plain Definition
	return decodeStrict(data, (*plain)(d))
}

// UnmarshalJSON accepts a raw column string or an {expr, as} object.
func (c *ColumnSchema) UnmarshalJSON(data []byte) error {
	if s, ok, err := decodeString(data); ok || err != nil {
		c.Expr = &ConditionSchema{Raw: s}
		return err
	}
	type plain ColumnSchema
	return decodeStrict(data, (*plain)(c))
}

// UnmarshalJSON accepts a table name or a {table|query, as} object.
func (t *TableSchema) UnmarshalJSON(data []byte) error {
	if s, ok, err := decodeString(data); ok || err != nil {
		t.Table = s
		return err
	}
	type plain TableSchema
	return decodeStrict(data, (*plain)(t))
}

// UnmarshalJSON accepts a column name or a {column, direction} object.
func (o *OrderSchema) UnmarshalJSON(data []byte) error {
	if s, ok, err := decodeString(data); ok || err != nil {
		o.Column = s
		return err
	}
	type plain OrderSchema
	return decodeStrict(data, (*plain)(o))
}

// UnmarshalJSON accepts a raw SQL string, a [left, right] column pair or an
// operator object.
func (c *ConditionSchema) UnmarshalJSON(data []byte) error {
	if s, ok, err := decodeString(data); ok || err != nil {
		c.Raw = s
		return err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var pair []string
		if err := decodeStrict(trimmed, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("%w: column pair needs 2 entries, got %d", ErrInvalidDefinition, len(pair))
		}
		c.Pair = pair
		return nil
	}
	type plain ConditionSchema
	return decodeStrict(data, (*plain)(c))
}

// decodeString decodes data if it is a JSON string.
func decodeString(data []byte) (string, bool, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return s, true, nil
}

// decodeStrict decodes JSON rejecting unknown keys and keeping numbers as
// json.Number.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, ErrInvalidDefinition) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return nil
}
