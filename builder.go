package mockingbird

import (
	"fmt"

	"github.com/zoobzio/mockingbird/internal/types"
)

// Construction errors, returned by Build and Compile.
var (
	ErrInvalidDirection  = types.ErrInvalidDirection
	ErrUnknownJoinMethod = types.ErrUnknownJoinMethod
	ErrInvalidPage       = types.ErrInvalidPage
)

// Builder provides a fluent API for constructing SELECT statements.
//
// Builders mutate in place. The first construction error is kept; the call
// that caused it is not applied and every later call is ignored, so a
// half-built AST is never compiled.
type Builder struct {
	ast *types.Select
	err error
}

// Select creates a new SELECT query builder.
func Select() *Builder {
	return &Builder{
		ast: &types.Select{},
	}
}

// GetAST returns the internal AST.
func (b *Builder) GetAST() *types.Select {
	return b.ast
}

// GetError returns the construction error, if any.
func (b *Builder) GetError() error {
	return b.err
}

// Columns appends raw column expressions to the select list.
func (b *Builder) Columns(columns ...string) *Builder {
	if b.err != nil {
		return b
	}
	for _, c := range columns {
		b.ast.Columns = append(b.ast.Columns, types.Column{Expr: types.Raw(c)})
	}
	return b
}

// ColumnsAs appends select-list entries built with Col or As.
func (b *Builder) ColumnsAs(columns ...Column) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Columns = append(b.ast.Columns, columns...)
	return b
}

// Distinct sets the DISTINCT flag. Called without arguments it enables it.
func (b *Builder) Distinct(state ...bool) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Distinct = len(state) == 0 || state[0]
	return b
}

// From appends tables or sub-statements to the FROM list.
func (b *Builder) From(tables ...Table) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.From = append(b.ast.From, tables...)
	return b
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table Table, on Expression) *Builder {
	return b.JoinBy("join", table, on)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table Table, on Expression) *Builder {
	return b.JoinBy("innerJoin", table, on)
}

// LeftJoin adds a LEFT OUTER JOIN.
func (b *Builder) LeftJoin(table Table, on Expression) *Builder {
	return b.JoinBy("leftJoin", table, on)
}

// LeftOuterJoin adds a LEFT OUTER JOIN.
func (b *Builder) LeftOuterJoin(table Table, on Expression) *Builder {
	return b.JoinBy("leftOuterJoin", table, on)
}

// RightJoin adds a RIGHT OUTER JOIN.
func (b *Builder) RightJoin(table Table, on Expression) *Builder {
	return b.JoinBy("rightJoin", table, on)
}

// RightOuterJoin adds a RIGHT OUTER JOIN.
func (b *Builder) RightOuterJoin(table Table, on Expression) *Builder {
	return b.JoinBy("rightOuterJoin", table, on)
}

// FullJoin adds a FULL JOIN.
func (b *Builder) FullJoin(table Table, on Expression) *Builder {
	return b.JoinBy("fullJoin", table, on)
}

// FullOuterJoin adds a FULL JOIN.
func (b *Builder) FullOuterJoin(table Table, on Expression) *Builder {
	return b.JoinBy("fullOuterJoin", table, on)
}

// JoinBy adds a join selected by method name ("join", "leftOuterJoin", ...).
// A ColumnPair condition is stored as the raw text "left = right".
// Unknown method names record ErrUnknownJoinMethod.
func (b *Builder) JoinBy(method string, table Table, on Expression) *Builder {
	if b.err != nil {
		return b
	}
	joinType, err := types.ParseJoinMethod(method)
	if err != nil {
		b.err = err
		return b
	}
	if pair, ok := on.(types.ColumnPair); ok {
		on = types.Raw(pair.Left + " = " + pair.Right)
	}
	b.ast.Joins = append(b.ast.Joins, types.Join{
		Type:  joinType,
		Table: table,
		On:    on,
	})
	return b
}

// Where sets the WHERE predicate, replacing any previous one.
func (b *Builder) Where(expr Expression) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Where = expr
	return b
}

// WhereAnd combines expr with the existing predicate using AND,
// or sets it when there is none.
func (b *Builder) WhereAnd(expr Expression) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Where == nil {
		b.ast.Where = expr
	} else {
		b.ast.Where = And(b.ast.Where, expr)
	}
	return b
}

// WhereOr combines expr with the existing predicate using OR,
// or sets it when there is none.
func (b *Builder) WhereOr(expr Expression) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Where == nil {
		b.ast.Where = expr
	} else {
		b.ast.Where = Or(b.ast.Where, expr)
	}
	return b
}

// Having sets the HAVING predicate, replacing any previous one.
func (b *Builder) Having(expr Expression) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Having = expr
	return b
}

// GroupBy appends GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.GroupBy = append(b.ast.GroupBy, columns...)
	return b
}

// OrderBy appends an ordering. Direction defaults to ASC and is matched
// case-insensitively; anything but asc/desc records ErrInvalidDirection.
func (b *Builder) OrderBy(column string, direction ...string) *Builder {
	if b.err != nil {
		return b
	}
	order, err := newOrderBy(column, direction)
	if err != nil {
		b.err = err
		return b
	}
	b.ast.OrderBy = append(b.ast.OrderBy, order)
	return b
}

// Limit sets the row limit.
func (b *Builder) Limit(rows int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Limit = &rows
	return b
}

// Offset sets the row offset.
func (b *Builder) Offset(rows int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Offset = &rows
	return b
}

// Window sets the offset and then the limit.
func (b *Builder) Window(offset, limit int) *Builder {
	return b.Offset(offset).Limit(limit)
}

// Build returns the constructed AST or the construction error.
func (b *Builder) Build() (*types.Select, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.ast, nil
}

// MustBuild returns the AST or panics on error.
func (b *Builder) MustBuild() *types.Select {
	ast, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Compile builds the AST and compiles it for the given dialect.
func (b *Builder) Compile(d Dialect, ctx ...*Context) (*Result, error) {
	return Compile(b, d, ctx...)
}

// MustCompile compiles the query or panics on error.
func (b *Builder) MustCompile(d Dialect, ctx ...*Context) *Result {
	result, err := b.Compile(d, ctx...)
	if err != nil {
		panic(err)
	}
	return result
}

// newOrderBy validates a direction and builds an ORDER BY entry.
func newOrderBy(column string, direction []string) (types.OrderBy, error) {
	dir := types.ASC
	if len(direction) > 0 {
		var err error
		if dir, err = types.ParseDirection(direction[0]); err != nil {
			return types.OrderBy{}, fmt.Errorf("order by %s: %w", column, err)
		}
	}
	return types.OrderBy{Column: column, Direction: dir}, nil
}

// Implement Statement and Member interfaces so builders can be used as
// sub-statements and union members directly.
func (*Builder) IsStatement() {}
func (*Builder) IsMember()    {}
