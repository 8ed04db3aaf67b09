// Package oracle provides the Oracle dialect for mockingbird.
//
// Values are bound by name as :par1, :par2, ... and returned in
// Result.Parameters. Oracle has no LIMIT clause, so pagination wraps the
// rendered query in a subquery and filters on ROWNUM. The row bounds are
// inlined as integers.
package oracle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zoobzio/mockingbird/internal/render"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Name is the dialect name.
const Name = "oracle"

// paramPrefix is the prefix of generated parameter names.
const paramPrefix = "par"

// innerAlias names the wrapped query in pagination subqueries.
const innerAlias = "inner_query"

// Renderer implements the Oracle dialect.
type Renderer struct{}

// New creates a new Oracle renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return Name
}

// Bind stores value under the next :parN name.
func (r *Renderer) Bind(ctx *types.Context, value any) string {
	return ":" + ctx.AddNamed(paramPrefix, value)
}

// AliasTable renders "<table> <alias>"; Oracle rejects AS for table aliases.
func (r *Renderer) AliasTable(table, alias string) string {
	return table + " " + alias
}

// Paginate wraps query in ROWNUM filtering subqueries. Negative bounds and
// an offset+limit upper bound beyond math.MaxInt are rejected.
func (r *Renderer) Paginate(_ *types.Context, query string, page types.Page) (string, error) {
	if err := page.Validate(); err != nil {
		return "", err
	}
	switch {
	case page.Limit != nil && page.Offset != nil:
		offset, limit := *page.Offset, *page.Limit
		if offset > math.MaxInt-limit {
			return "", fmt.Errorf("%w: offset %d + limit %d overflows", types.ErrInvalidPage, offset, limit)
		}
		return "SELECT * FROM (SELECT " + innerAlias + ".*, ROWNUM rnum FROM (" + query + ") " + innerAlias +
			") WHERE rnum > " + strconv.Itoa(offset) +
			" AND rnum <= " + strconv.Itoa(offset+limit), nil
	case page.Offset != nil:
		return wrap(query, "ROWNUM >= "+strconv.Itoa(*page.Offset)), nil
	case page.Limit != nil:
		return wrap(query, "ROWNUM <= "+strconv.Itoa(*page.Limit)), nil
	default:
		return query, nil
	}
}

func wrap(query, filter string) string {
	return "SELECT " + innerAlias + ".* FROM (" + query + ") " + innerAlias + " WHERE " + filter
}

// Capabilities returns the features supported by Oracle.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Placeholders: render.PlaceholderNamed,
		Pagination:   render.PaginationRowNum,
		FullJoin:     true,
		RightJoin:    true,
		AliasKeyword: false,
	}
}
