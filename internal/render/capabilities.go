package render

// PlaceholderStyle indicates how bound values are referenced in query text.
type PlaceholderStyle int

const (
	PlaceholderPositional PlaceholderStyle = iota // ?, $1 - values returned as an ordered list
	PlaceholderNamed                              // :par1, @p1 - values returned as a name map
)

// PaginationStyle indicates how limit/offset are expressed.
type PaginationStyle int

const (
	PaginationLimitOffset PaginationStyle = iota // LIMIT n OFFSET m
	PaginationOffsetFetch                        // OFFSET m ROWS FETCH NEXT n ROWS ONLY
	PaginationRowNum                             // ROWNUM subquery wrapping
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	Placeholders         PlaceholderStyle
	Pagination           PaginationStyle
	FullJoin             bool // FULL [OUTER] JOIN
	RightJoin            bool // RIGHT [OUTER] JOIN
	AliasKeyword         bool // table AS alias
	PaginationNeedsOrder bool // pagination requires ORDER BY
}

func (s PlaceholderStyle) String() string {
	if s == PlaceholderNamed {
		return "named"
	}
	return "positional"
}

func (s PaginationStyle) String() string {
	switch s {
	case PaginationOffsetFetch:
		return "offset-fetch"
	case PaginationRowNum:
		return "rownum"
	default:
		return "limit-offset"
	}
}
