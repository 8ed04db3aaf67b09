package mockingbird

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// MaxNestingDepth bounds how deeply sub-statements may nest.
const MaxNestingDepth = 32

// Compilation errors.
var (
	ErrNoDialect         = errors.New("no dialect given")
	ErrNotStatement      = errors.New("not a statement")
	ErrUnknownStatement  = errors.New("unknown statement type")
	ErrUnknownExpression = errors.New("unknown expression type")
	ErrEmptyUnion        = errors.New("union has no members")
	ErrMaxDepth          = errors.New("maximum nesting depth exceeded")
)

// compiler renders one statement tree for one dialect.
type compiler struct {
	dialect Dialect
	caps    render.Capabilities
	ctx     *types.Context
	depth   int
}

// Compile renders stmt for the given dialect.
//
// Bound values are collected in ctx when one is passed, so several compiles
// can share one parameter list; otherwise a fresh Context is used. Positional
// dialects fill Result.Values, named dialects fill Result.Parameters. On error
// no partial result is returned.
func Compile(stmt Statement, d Dialect, ctx ...*Context) (*Result, error) {
	if d == nil {
		return nil, ErrNoDialect
	}

	c := &compiler{
		dialect: d,
		caps:    d.Capabilities(),
		ctx:     types.NewContext(),
	}
	if len(ctx) > 0 && ctx[0] != nil {
		c.ctx = ctx[0]
	}

	sql, err := c.statement(stmt)
	if err != nil {
		return nil, err
	}

	result := &types.Result{SQL: sql}
	switch c.caps.Placeholders {
	case render.PlaceholderNamed:
		result.Parameters = c.ctx.Parameters
		if result.Parameters == nil {
			result.Parameters = make(map[string]any)
		}
	default:
		result.Values = c.ctx.Values
		if result.Values == nil {
			result.Values = []any{}
		}
	}
	return result, nil
}

// statement dispatches on the statement variant.
func (c *compiler) statement(stmt Statement) (string, error) {
	switch s := stmt.(type) {
	case nil:
		return "", ErrNotStatement
	case *Builder:
		if s == nil {
			return "", ErrNotStatement
		}
		ast, err := s.Build()
		if err != nil {
			return "", err
		}
		return c.selectStatement(ast)
	case *UnionBuilder:
		if s == nil {
			return "", ErrNotStatement
		}
		ast, err := s.Build()
		if err != nil {
			return "", err
		}
		return c.unionStatement(ast)
	case *types.Select:
		if s == nil {
			return "", ErrNotStatement
		}
		return c.selectStatement(s)
	case *types.Union:
		if s == nil {
			return "", ErrNotStatement
		}
		return c.unionStatement(s)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownStatement, stmt)
	}
}

// nested compiles a sub-statement into the shared context.
func (c *compiler) nested(stmt Statement) (string, error) {
	if c.depth >= MaxNestingDepth {
		return "", fmt.Errorf("%w (%d)", ErrMaxDepth, MaxNestingDepth)
	}
	c.depth++
	defer func() { c.depth-- }()
	return c.statement(stmt)
}

func (c *compiler) selectStatement(s *types.Select) (string, error) {
	parts := make([]string, 0, 8)

	head := "SELECT "
	if s.Distinct {
		head += "DISTINCT "
	}
	columns, err := c.columns(s.Columns)
	if err != nil {
		return "", err
	}
	parts = append(parts, head+columns)

	if len(s.From) > 0 {
		tables := make([]string, 0, len(s.From))
		for _, t := range s.From {
			text, err := c.table(t)
			if err != nil {
				return "", err
			}
			tables = append(tables, text)
		}
		parts = append(parts, "FROM "+strings.Join(tables, ", "))
	}

	for _, j := range s.Joins {
		text, err := c.join(j)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	if s.Where != nil {
		pred, err := c.predicate(s.Where)
		if err != nil {
			return "", fmt.Errorf("where: %w", err)
		}
		if pred != "" {
			parts = append(parts, "WHERE "+pred)
		}
	}

	if len(s.GroupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(s.GroupBy, ", "))
	}

	if s.Having != nil {
		pred, err := c.predicate(s.Having)
		if err != nil {
			return "", fmt.Errorf("having: %w", err)
		}
		if pred != "" {
			parts = append(parts, "HAVING "+pred)
		}
	}

	if len(s.OrderBy) > 0 {
		parts = append(parts, orderBy(s.OrderBy))
	}

	return c.paginate(strings.Join(parts, " "), types.Page{
		Limit:   s.Limit,
		Offset:  s.Offset,
		Ordered: len(s.OrderBy) > 0,
	})
}

func (c *compiler) unionStatement(u *types.Union) (string, error) {
	if len(u.Members) == 0 {
		return "", ErrEmptyUnion
	}

	members := make([]string, 0, len(u.Members))
	for i, m := range u.Members {
		text, err := c.member(m)
		if err != nil {
			return "", fmt.Errorf("union member %d: %w", i, err)
		}
		members = append(members, "("+text+")")
	}

	sql := strings.Join(members, " UNION ")
	if len(u.OrderBy) > 0 {
		sql += " " + orderBy(u.OrderBy)
	}

	return c.paginate(sql, types.Page{
		Limit:   u.Limit,
		Offset:  u.Offset,
		Ordered: len(u.OrderBy) > 0,
	})
}

func (c *compiler) member(m Member) (string, error) {
	switch v := m.(type) {
	case types.Raw:
		return string(v), nil
	case Statement:
		return c.nested(v)
	case nil:
		return "", ErrNotStatement
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownStatement, m)
	}
}

// paginate hands a non-empty page to the dialect. Negative bounds and
// unordered pages on dialects that require ORDER BY are rejected first.
func (c *compiler) paginate(sql string, page types.Page) (string, error) {
	if page.Empty() {
		return sql, nil
	}
	if err := page.Validate(); err != nil {
		return "", err
	}
	if c.caps.PaginationNeedsOrder && !page.Ordered {
		return "", render.NewUnsupportedFeatureError(c.dialect.Name(), "pagination without ORDER BY",
			"add an OrderBy before Limit or Offset")
	}
	return c.dialect.Paginate(c.ctx, sql, page)
}

func (c *compiler) columns(columns []types.Column) (string, error) {
	if len(columns) == 0 {
		return "*", nil
	}
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		text, err := c.expression(col.Expr)
		if err != nil {
			return "", err
		}
		if col.Alias != "" {
			text += " AS " + col.Alias
		}
		out = append(out, text)
	}
	return strings.Join(out, ", "), nil
}

func (c *compiler) table(t types.Table) (string, error) {
	text := t.Name
	if t.IsSubquery() {
		sub, err := c.nested(t.Query)
		if err != nil {
			return "", err
		}
		text = "(" + sub + ")"
	}
	if t.Alias == "" {
		return text, nil
	}
	return c.dialect.AliasTable(text, t.Alias), nil
}

func (c *compiler) join(j types.Join) (string, error) {
	switch j.Type {
	case types.FullJoin:
		if !c.caps.FullJoin {
			return "", render.NewUnsupportedFeatureError(c.dialect.Name(), string(j.Type))
		}
	case types.RightJoin:
		if !c.caps.RightJoin {
			return "", render.NewUnsupportedFeatureError(c.dialect.Name(), string(j.Type),
				"swap the tables and use LEFT OUTER JOIN")
		}
	}

	table, err := c.table(j.Table)
	if err != nil {
		return "", err
	}
	text := string(j.Type) + " " + table
	if j.On == nil {
		return text, nil
	}
	pred, err := c.predicate(j.On)
	if err != nil {
		return "", fmt.Errorf("join %s: %w", table, err)
	}
	return text + " ON " + pred, nil
}

// predicate renders a WHERE, HAVING or ON condition. Logical operators
// already parenthesize their operands, anything else is wrapped once.
func (c *compiler) predicate(expr Expression) (string, error) {
	text, err := c.expression(expr)
	if err != nil {
		return "", err
	}
	if _, ok := expr.(*types.LogicalOperator); ok {
		return text, nil
	}
	return "(" + text + ")", nil
}

// expression renders a single node. A nil node renders as NULL.
func (c *compiler) expression(expr Expression) (string, error) {
	switch e := expr.(type) {
	case nil:
		return "NULL", nil
	case types.Raw:
		return string(e), nil
	case types.ColumnPair:
		return e.Left + " = " + e.Right, nil
	case *types.LogicalOperator:
		operands := make([]string, 0, len(e.Operands))
		for _, op := range e.Operands {
			text, err := c.expression(op)
			if err != nil {
				return "", err
			}
			operands = append(operands, "("+text+")")
		}
		return strings.Join(operands, " "+string(e.Operator)+" "), nil
	case *types.NotOperator:
		text, err := c.expression(e.Operand)
		if err != nil {
			return "", err
		}
		return "NOT (" + text + ")", nil
	case *types.UnaryOperator:
		text, err := c.expression(e.Operand)
		if err != nil {
			return "", err
		}
		return string(e.Operator) + " (" + text + ")", nil
	case *types.BinaryOperator:
		return e.Column + " " + string(e.Operator) + " " + c.dialect.Bind(c.ctx, e.Value), nil
	case *types.TrinaryOperator:
		low := c.dialect.Bind(c.ctx, e.Low)
		high := c.dialect.Bind(c.ctx, e.High)
		return e.Column + " " + string(e.Operator) + " " + low + " " + e.Separator + " " + high, nil
	case *types.CaseOperator:
		return c.caseExpression(e)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownExpression, expr)
	}
}

func (c *compiler) caseExpression(e *types.CaseOperator) (string, error) {
	var sql strings.Builder
	sql.WriteString("CASE ")

	if e.Subject != nil {
		text, err := c.expression(e.Subject)
		if err != nil {
			return "", err
		}
		sql.WriteString(text + " ")
	}

	for _, b := range e.Branches {
		when, err := c.expression(b.When)
		if err != nil {
			return "", err
		}
		then, err := c.expression(b.Result)
		if err != nil {
			return "", err
		}
		sql.WriteString("WHEN " + when + " THEN " + then + " ")
	}

	if e.Default != nil {
		text, err := c.expression(e.Default)
		if err != nil {
			return "", err
		}
		sql.WriteString("ELSE " + text + " ")
	}

	sql.WriteString("END")
	return sql.String(), nil
}

func orderBy(orders []types.OrderBy) string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Column+" "+string(o.Direction))
	}
	return "ORDER BY " + strings.Join(out, ", ")
}
