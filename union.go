package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// UnionBuilder provides a fluent API for UNION statements. Ordering and
// pagination set here apply to the combined result.
type UnionBuilder struct {
	ast *types.Union
	err error
}

// Union creates a UNION of the given members: Select builders, built
// statements or raw SQL text.
func Union(members ...Member) *UnionBuilder {
	u := &UnionBuilder{ast: &types.Union{}}
	return u.Add(members...)
}

// GetAST returns the internal AST.
func (u *UnionBuilder) GetAST() *types.Union {
	return u.ast
}

// GetError returns the construction error, if any.
func (u *UnionBuilder) GetError() error {
	return u.err
}

// Add appends members.
func (u *UnionBuilder) Add(members ...Member) *UnionBuilder {
	if u.err != nil {
		return u
	}
	u.ast.Members = append(u.ast.Members, members...)
	return u
}

// OrderBy appends an ordering for the combined result.
func (u *UnionBuilder) OrderBy(column string, direction ...string) *UnionBuilder {
	if u.err != nil {
		return u
	}
	order, err := newOrderBy(column, direction)
	if err != nil {
		u.err = err
		return u
	}
	u.ast.OrderBy = append(u.ast.OrderBy, order)
	return u
}

// Limit sets the row limit of the combined result.
func (u *UnionBuilder) Limit(rows int) *UnionBuilder {
	if u.err != nil {
		return u
	}
	u.ast.Limit = &rows
	return u
}

// Offset sets the row offset of the combined result.
func (u *UnionBuilder) Offset(rows int) *UnionBuilder {
	if u.err != nil {
		return u
	}
	u.ast.Offset = &rows
	return u
}

// Window sets the offset and then the limit.
func (u *UnionBuilder) Window(offset, limit int) *UnionBuilder {
	return u.Offset(offset).Limit(limit)
}

// Build returns the constructed AST or the construction error.
func (u *UnionBuilder) Build() (*types.Union, error) {
	if u.err != nil {
		return nil, u.err
	}
	return u.ast, nil
}

// MustBuild returns the AST or panics on error.
func (u *UnionBuilder) MustBuild() *types.Union {
	ast, err := u.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Compile builds the AST and compiles it for the given dialect.
func (u *UnionBuilder) Compile(d Dialect, ctx ...*Context) (*Result, error) {
	return Compile(u, d, ctx...)
}

// MustCompile compiles the union or panics on error.
func (u *UnionBuilder) MustCompile(d Dialect, ctx ...*Context) *Result {
	result, err := u.Compile(d, ctx...)
	if err != nil {
		panic(err)
	}
	return result
}

// Implement Statement and Member interfaces.
func (*UnionBuilder) IsStatement() {}
func (*UnionBuilder) IsMember()    {}
