package types

// Table represents a table reference in FROM or JOIN.
// Exactly one of Name and Query is set; Query holds a sub-statement.
type Table struct {
	Query Statement
	Name  string
	Alias string
}

// IsSubquery reports whether the reference is a sub-statement.
func (t Table) IsSubquery() bool {
	return t.Query != nil
}
