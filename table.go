package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// T creates a table reference with an optional alias.
func T(name string, alias ...string) Table {
	t := types.Table{Name: name}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}

// Sub creates a sub-statement reference with an optional alias.
// The statement is compiled into its parent's context and parenthesized.
func Sub(stmt Statement, alias ...string) Table {
	t := types.Table{Query: stmt}
	if len(alias) > 0 {
		t.Alias = alias[0]
	}
	return t
}
