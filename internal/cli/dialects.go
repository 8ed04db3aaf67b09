package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/mssql"
	"github.com/zoobzio/mockingbird/mysql"
	"github.com/zoobzio/mockingbird/oracle"
	"github.com/zoobzio/mockingbird/postgres"
	"github.com/zoobzio/mockingbird/sqlite"
)

// ErrUnknownDialect is returned for dialect names not in the registry.
var ErrUnknownDialect = errors.New("unknown dialect")

var dialects = map[string]func() mockingbird.Dialect{
	mysql.Name:    func() mockingbird.Dialect { return mysql.New() },
	oracle.Name:   func() mockingbird.Dialect { return oracle.New() },
	postgres.Name: func() mockingbird.Dialect { return postgres.New() },
	sqlite.Name:   func() mockingbird.Dialect { return sqlite.New() },
	mssql.Name:    func() mockingbird.Dialect { return mssql.New() },
}

// aliases maps alternative spellings to registered names.
var aliases = map[string]string{
	"mariadb":    mysql.Name,
	"postgresql": postgres.Name,
	"pg":         postgres.Name,
	"sqlserver":  mssql.Name,
	"sqlite3":    sqlite.Name,
}

// LookupDialect returns the dialect registered under name, ignoring case.
func LookupDialect(name string) (mockingbird.Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	ctor, ok := dialects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDialect, name, strings.Join(DialectNames(), ", "))
	}
	return ctor(), nil
}

// DialectNames returns the registered dialect names in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DescribeDialect summarizes a dialect's capabilities on one line.
func DescribeDialect(d mockingbird.Dialect) string {
	caps := d.Capabilities()
	parts := []string{
		caps.Placeholders.String() + " placeholders",
		caps.Pagination.String() + " pagination",
	}
	if caps.PaginationNeedsOrder {
		parts = append(parts, "pagination needs ORDER BY")
	}
	if caps.AliasKeyword {
		parts = append(parts, "AS aliases")
	} else {
		parts = append(parts, "bare aliases")
	}
	if !caps.RightJoin {
		parts = append(parts, "no RIGHT JOIN")
	}
	if !caps.FullJoin {
		parts = append(parts, "no FULL JOIN")
	}
	return strings.Join(parts, ", ")
}
