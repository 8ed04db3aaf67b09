package mockingbird

import (
	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Dialect defines the dialect-specific parts of SQL rendering.
// Implementations live in the dialect packages (mysql, oracle, postgres,
// sqlite, mssql) and are stateless; all per-compile state is in the Context.
type Dialect interface {
	// Name identifies the dialect in errors and logs.
	Name() string

	// Capabilities describes which constructs the dialect supports.
	Capabilities() render.Capabilities

	// Bind records value in ctx and returns the placeholder text for it.
	Bind(ctx *types.Context, value any) string

	// AliasTable renders a table reference with its alias.
	// alias is never empty.
	AliasTable(table, alias string) string

	// Paginate applies limit and offset to a fully rendered query.
	// It is only called when page is not empty.
	Paginate(ctx *types.Context, query string, page types.Page) (string, error)
}
