// Package mssql provides the SQL Server dialect for mockingbird.
//
// Values are bound by name as @p1, @p2, ... and returned in
// Result.Parameters, ready for sql.Named. Pagination uses
// OFFSET ... ROWS FETCH NEXT ... ROWS ONLY, which SQL Server only accepts
// after an ORDER BY.
package mssql

import (
	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Name is the dialect name.
const Name = "mssql"

const paramPrefix = "p"

// Renderer implements the SQL Server dialect.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return Name
}

// Bind stores value under the next @pN name.
func (r *Renderer) Bind(ctx *types.Context, value any) string {
	return "@" + ctx.AddNamed(paramPrefix, value)
}

// AliasTable renders "<table> AS <alias>".
func (r *Renderer) AliasTable(table, alias string) string {
	return table + " AS " + alias
}

// Paginate appends OFFSET @pN ROWS [FETCH NEXT @pM ROWS ONLY].
// A missing offset is bound as 0. The compiler rejects unordered pages
// before they reach here.
func (r *Renderer) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	offset := 0
	if page.Offset != nil {
		offset = *page.Offset
	}
	query += " OFFSET " + r.Bind(ctx, offset) + " ROWS"
	if page.Limit != nil {
		query += " FETCH NEXT " + r.Bind(ctx, *page.Limit) + " ROWS ONLY"
	}
	return query, nil
}

// Capabilities returns the features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders:         render.PlaceholderNamed,
		Pagination:           render.PaginationOffsetFetch,
		FullJoin:             true,
		RightJoin:            true,
		AliasKeyword:         true,
		PaginationNeedsOrder: true,
	}
}
