// Package mysql provides the MySQL/MariaDB dialect for mockingbird.
//
// Values are bound positionally with ? and returned in Result.Values in the
// order their placeholders appear. Pagination uses a trailing LIMIT/OFFSET
// clause whose numbers are bound as well.
package mysql

import (
	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Name is the dialect name.
const Name = "mysql"

// maxRows is the documented way to express "no limit" when only an offset
// is given.
const maxRows = "18446744073709551615"

// Renderer implements the MySQL dialect.
type Renderer struct{}

// New creates a new MySQL renderer.
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

// Paginate appends LIMIT ? [OFFSET ?].
func (r *Renderer) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	if page.Limit == nil {
		if page.Offset == nil {
			return query, nil
		}
		return query + " LIMIT " + maxRows + " OFFSET " + r.Bind(ctx, *page.Offset), nil
	}
	query += " LIMIT " + r.Bind(ctx, *page.Limit)
	if page.Offset != nil {
		query += " OFFSET " + r.Bind(ctx, *page.Offset)
	}
	return query, nil
}

// Capabilities returns the features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders: render.PlaceholderPositional,
		Pagination:   render.PaginationLimitOffset,
		FullJoin:     false,
		RightJoin:    true,
		AliasKeyword: true,
	}
}
