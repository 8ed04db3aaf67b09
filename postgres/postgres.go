// Package postgres provides the PostgreSQL dialect for mockingbird.
package postgres

import (
	"strconv"

	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Name is the dialect name.
const Name = "postgres"

// Renderer implements the PostgreSQL dialect.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return Name
}

// Bind appends value to the positional list and returns its $n placeholder.
func (r *Renderer) Bind(ctx *types.Context, value any) string {
	return "$" + strconv.Itoa(ctx.AddPositional(value))
}

// AliasTable renders "<table> AS <alias>".
func (r *Renderer) AliasTable(table, alias string) string {
	return table + " AS " + alias
}

// Paginate appends [LIMIT $n] [OFFSET $m]; PostgreSQL accepts either alone.
func (r *Renderer) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	if page.Limit != nil {
		query += " LIMIT " + r.Bind(ctx, *page.Limit)
	}
	if page.Offset != nil {
		query += " OFFSET " + r.Bind(ctx, *page.Offset)
	}
	return query, nil
}

// Capabilities returns the features supported by PostgreSQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders: render.PlaceholderPositional,
		Pagination:   render.PaginationLimitOffset,
		FullJoin:     true,
		RightJoin:    true,
		AliasKeyword: true,
	}
}
