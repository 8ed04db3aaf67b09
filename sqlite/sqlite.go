// Package sqlite provides the SQLite dialect for mockingbird.
package sqlite

import (
	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Name is the dialect name.
const Name = "sqlite"

// Renderer implements the SQLite dialect.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return Name
}

// Bind appends value to the positional list and returns "?".
func (r *Renderer) Bind(ctx *types.Context, value any) string {
	ctx.AddPositional(value)
	return "?"
}

// AliasTable renders "<table> AS <alias>".
func (r *Renderer) AliasTable(table, alias string) string {
	return table + " AS " + alias
}

// Paginate appends LIMIT ? [OFFSET ?]. SQLite needs a LIMIT before OFFSET;
// a negative limit means no limit.
func (r *Renderer) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	switch {
	case page.Limit != nil:
		query += " LIMIT " + r.Bind(ctx, *page.Limit)
	case page.Offset != nil:
		query += " LIMIT -1"
	}
	if page.Offset != nil {
		query += " OFFSET " + r.Bind(ctx, *page.Offset)
	}
	return query, nil
}

// Capabilities returns the features supported by SQLite (3.39+).
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders: render.PlaceholderPositional,
		Pagination:   render.PaginationLimitOffset,
		FullJoin:     true,
		RightJoin:    true,
		AliasKeyword: true,
	}
}
