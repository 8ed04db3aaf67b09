package mockingbird_test

import (
	"strconv"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/internal/types"
)

// stubDialect is a minimal positional dialect with ANSI-style pagination.
type stubDialect struct{}

func (stubDialect) Name() string { return "stub" }

func (stubDialect) Capabilities() mockingbird.Capabilities {
	return mockingbird.Capabilities{
		Placeholders: mockingbird.PlaceholderPositional,
		Pagination:   mockingbird.PaginationLimitOffset,
		FullJoin:     true,
		RightJoin:    true,
		AliasKeyword: true,
	}
}

func (stubDialect) Bind(ctx *types.Context, value any) string {
	ctx.AddPositional(value)
	return "?"
}

func (stubDialect) AliasTable(table, alias string) string {
	return table + " AS " + alias
}

func (d stubDialect) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	if page.Limit != nil {
		query += " LIMIT " + d.Bind(ctx, *page.Limit)
	}
	if page.Offset != nil {
		query += " OFFSET " + d.Bind(ctx, *page.Offset)
	}
	return query, nil
}

// namedStub binds :nN names and paginates with inline numbers.
type namedStub struct{}

func (namedStub) Name() string { return "named" }

func (namedStub) Capabilities() mockingbird.Capabilities {
	return mockingbird.Capabilities{
		Placeholders: mockingbird.PlaceholderNamed,
		Pagination:   mockingbird.PaginationRowNum,
	}
}

func (namedStub) Bind(ctx *types.Context, value any) string {
	return ":" + ctx.AddNamed("n", value)
}

func (namedStub) AliasTable(table, alias string) string {
	return table + " " + alias
}

func (namedStub) Paginate(_ *types.Context, query string, page types.Page) (string, error) {
	if page.Limit != nil {
		query += " FETCH FIRST " + strconv.Itoa(*page.Limit) + " ROWS ONLY"
	}
	return query, nil
}

// countingDialect records how often its rendering hooks are used.
type countingDialect struct {
	stubDialect
	calls int
}

func (d *countingDialect) Bind(ctx *types.Context, value any) string {
	d.calls++
	return d.stubDialect.Bind(ctx, value)
}

func (d *countingDialect) AliasTable(table, alias string) string {
	d.calls++
	return d.stubDialect.AliasTable(table, alias)
}

func (d *countingDialect) Paginate(ctx *types.Context, query string, page types.Page) (string, error) {
	d.calls++
	return d.stubDialect.Paginate(ctx, query, page)
}

// orderedStub requires ORDER BY before pagination.
type orderedStub struct {
	countingDialect
}

func (d *orderedStub) Capabilities() mockingbird.Capabilities {
	caps := d.countingDialect.Capabilities()
	caps.Pagination = mockingbird.PaginationOffsetFetch
	caps.PaginationNeedsOrder = true
	return caps
}
