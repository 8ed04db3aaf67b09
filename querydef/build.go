package querydef

import (
	"encoding/json"
	"fmt"

	"github.com/zoobzio/mockingbird"
)

// BuildFromSchema converts a definition to a compilable statement.
func BuildFromSchema(def *Definition) (mockingbird.Statement, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: empty definition", ErrInvalidDefinition)
	}
	switch {
	case def.Select != nil && def.Union != nil:
		return nil, fmt.Errorf("%w: select and union are mutually exclusive", ErrInvalidDefinition)
	case def.Select != nil:
		return buildSelect(def.Select)
	case def.Union != nil:
		return buildUnion(def.Union)
	case def.Raw != "":
		return nil, fmt.Errorf("%w: raw SQL is only allowed as a union member", ErrInvalidDefinition)
	default:
		return nil, fmt.Errorf("%w: select or union is required", ErrInvalidDefinition)
	}
}

func buildSelect(schema *SelectSchema) (mockingbird.Statement, error) {
	b := mockingbird.Select().Distinct(schema.Distinct)

	for i, col := range schema.Columns {
		if col.Expr == nil {
			return nil, fmt.Errorf("%w: column %d has no expr", ErrInvalidDefinition, i)
		}
		expr, err := col.Expr.Expression()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		b.ColumnsAs(mockingbird.As(expr, col.As))
	}

	for i := range schema.From {
		table, err := buildTable(schema.From[i].Table, schema.From[i].Query, schema.From[i].As)
		if err != nil {
			return nil, fmt.Errorf("from %d: %w", i, err)
		}
		b.From(table)
	}

	for i, j := range schema.Joins {
		table, err := buildTable(j.Table, j.Query, j.As)
		if err != nil {
			return nil, fmt.Errorf("join %d: %w", i, err)
		}
		var on mockingbird.Expression
		if j.On != nil {
			if on, err = j.On.Expression(); err != nil {
				return nil, fmt.Errorf("join %d: %w", i, err)
			}
		}
		method := j.Type
		if method == "" {
			method = "join"
		}
		b.JoinBy(method, table, on)
	}

	if schema.Where != nil {
		where, err := schema.Where.Expression()
		if err != nil {
			return nil, fmt.Errorf("where: %w", err)
		}
		b.Where(where)
	}

	b.GroupBy(schema.GroupBy...)

	if schema.Having != nil {
		having, err := schema.Having.Expression()
		if err != nil {
			return nil, fmt.Errorf("having: %w", err)
		}
		b.Having(having)
	}

	for _, o := range schema.OrderBy {
		if o.Direction == "" {
			b.OrderBy(o.Column)
		} else {
			b.OrderBy(o.Column, o.Direction)
		}
	}

	if schema.Limit != nil {
		b.Limit(*schema.Limit)
	}
	if schema.Offset != nil {
		b.Offset(*schema.Offset)
	}

	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	return ast, nil
}

func buildUnion(schema *UnionSchema) (mockingbird.Statement, error) {
	if len(schema.Members) == 0 {
		return nil, fmt.Errorf("%w: union has no members", ErrInvalidDefinition)
	}

	u := mockingbird.Union()
	for i := range schema.Members {
		member := &schema.Members[i]
		if member.Raw != "" && member.Select == nil && member.Union == nil {
			u.Add(mockingbird.R(member.Raw))
			continue
		}
		stmt, err := BuildFromSchema(member)
		if err != nil {
			return nil, fmt.Errorf("union member %d: %w", i, err)
		}
		m, ok := stmt.(mockingbird.Member)
		if !ok {
			return nil, fmt.Errorf("%w: union member %d is %T", ErrInvalidDefinition, i, stmt)
		}
		u.Add(m)
	}

	for _, o := range schema.OrderBy {
		if o.Direction == "" {
			u.OrderBy(o.Column)
		} else {
			u.OrderBy(o.Column, o.Direction)
		}
	}
	if schema.Limit != nil {
		u.Limit(*schema.Limit)
	}
	if schema.Offset != nil {
		u.Offset(*schema.Offset)
	}

	ast, err := u.Build()
	if err != nil {
		return nil, err
	}
	return ast, nil
}

func buildTable(name string, query *Definition, alias string) (mockingbird.Table, error) {
	switch {
	case name != "" && query != nil:
		return mockingbird.Table{}, fmt.Errorf("%w: table and query are mutually exclusive", ErrInvalidDefinition)
	case query != nil:
		stmt, err := BuildFromSchema(query)
		if err != nil {
			return mockingbird.Table{}, err
		}
		return mockingbird.Sub(stmt, alias), nil
	case name != "":
		return mockingbird.T(name, alias), nil
	default:
		return mockingbird.Table{}, fmt.Errorf("%w: table or query is required", ErrInvalidDefinition)
	}
}

// Expression converts the condition to an expression node.
func (c *ConditionSchema) Expression() (mockingbird.Expression, error) {
	if n := c.keys(); n != 1 {
		return nil, fmt.Errorf("%w: expression needs exactly one operator, got %d", ErrInvalidDefinition, n)
	}

	switch {
	case c.Raw != "":
		return mockingbird.R(c.Raw), nil
	case c.Pair != nil:
		return mockingbird.Pair(c.Pair[0], c.Pair[1]), nil
	case c.And != nil:
		operands, err := expressions(c.And)
		if err != nil {
			return nil, fmt.Errorf("and: %w", err)
		}
		return mockingbird.And(operands...), nil
	case c.Or != nil:
		operands, err := expressions(c.Or)
		if err != nil {
			return nil, fmt.Errorf("or: %w", err)
		}
		return mockingbird.Or(operands...), nil
	case c.Not != nil:
		operand, err := c.Not.Expression()
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		return mockingbird.Not(operand), nil
	case c.IsNull != nil:
		operand, err := c.IsNull.Expression()
		if err != nil {
			return nil, fmt.Errorf("isNull: %w", err)
		}
		return mockingbird.IsNull(operand), nil
	case c.IsNotNull != nil:
		operand, err := c.IsNotNull.Expression()
		if err != nil {
			return nil, fmt.Errorf("isNotNull: %w", err)
		}
		return mockingbird.IsNotNull(operand), nil
	case c.Case != nil:
		return c.Case.expression()
	}

	for _, cmp := range []struct {
		name string
		args []any
		fn   func(string, any) *mockingbird.BinaryOperator
	}{
		{"eq", c.Eq, mockingbird.Eq},
		{"neq", c.Neq, mockingbird.Neq},
		{"gt", c.Gt, mockingbird.Gt},
		{"lt", c.Lt, mockingbird.Lt},
		{"gteq", c.Gteq, mockingbird.Gteq},
		{"lteq", c.Lteq, mockingbird.Lteq},
		{"like", c.Like, mockingbird.Like},
		{"in", c.In, mockingbird.In},
	} {
		if cmp.args == nil {
			continue
		}
		column, values, err := operands(cmp.name, cmp.args, 1)
		if err != nil {
			return nil, err
		}
		return cmp.fn(column, values[0]), nil
	}

	for _, rng := range []struct {
		name string
		args []any
		fn   func(string, any, any) *mockingbird.TrinaryOperator
	}{
		{"between", c.Between, mockingbird.Between},
		{"notBetween", c.NotBetween, mockingbird.NotBetween},
	} {
		if rng.args == nil {
			continue
		}
		column, values, err := operands(rng.name, rng.args, 2)
		if err != nil {
			return nil, err
		}
		return rng.fn(column, values[0], values[1]), nil
	}

	return nil, fmt.Errorf("%w: empty expression", ErrInvalidDefinition)
}

// keys counts the operator fields that are set.
func (c *ConditionSchema) keys() int {
	n := 0
	for _, set := range []bool{
		c.Raw != "", c.Pair != nil,
		c.And != nil, c.Or != nil, c.Not != nil,
		c.Eq != nil, c.Neq != nil, c.Gt != nil, c.Lt != nil,
		c.Gteq != nil, c.Lteq != nil, c.Like != nil, c.In != nil,
		c.IsNull != nil, c.IsNotNull != nil,
		c.Between != nil, c.NotBetween != nil,
		c.Case != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s *CaseSchema) expression() (mockingbird.Expression, error) {
	var c *mockingbird.CaseOperator
	if s.Subject != nil {
		subject, err := s.Subject.Expression()
		if err != nil {
			return nil, fmt.Errorf("case subject: %w", err)
		}
		c = mockingbird.Case(subject)
	} else {
		c = mockingbird.Case()
	}

	for i := range s.When {
		when, err := s.When[i].If.Expression()
		if err != nil {
			return nil, fmt.Errorf("case when %d: %w", i, err)
		}
		c.When(when)
		if s.When[i].Then != nil {
			then, err := s.When[i].Then.Expression()
			if err != nil {
				return nil, fmt.Errorf("case then %d: %w", i, err)
			}
			c.Then(then)
		}
	}

	if s.Else != nil {
		def, err := s.Else.Expression()
		if err != nil {
			return nil, fmt.Errorf("case else: %w", err)
		}
		c.Else(def)
	}
	return c, nil
}

func expressions(conds []ConditionSchema) ([]mockingbird.Expression, error) {
	out := make([]mockingbird.Expression, 0, len(conds))
	for i := range conds {
		expr, err := conds[i].Expression()
		if err != nil {
			return nil, err
		}
		out = append(out, expr)
	}
	return out, nil
}

// operands splits [column, value...] and checks the value count.
func operands(name string, args []any, count int) (string, []any, error) {
	if len(args) != count+1 {
		return "", nil, fmt.Errorf("%w: %s needs %d entries, got %d", ErrInvalidDefinition, name, count+1, len(args))
	}
	column, ok := args[0].(string)
	if !ok || column == "" {
		return "", nil, fmt.Errorf("%w: %s needs a column name first", ErrInvalidDefinition, name)
	}
	values := make([]any, count)
	for i := range values {
		values[i] = value(args[i+1])
	}
	return column, values, nil
}

// value converts decoded JSON numbers to int64 or float64.
func value(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = value(x[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = value(item)
		}
		return out
	default:
		return v
	}
}
