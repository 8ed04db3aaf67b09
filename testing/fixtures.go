package testing

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/internal/types"
)

// Kind is the portable column type of a fixture column.
type Kind int

const (
	KindInt Kind = iota
	KindText
	KindDecimal
)

// FixtureColumn is one column of a fixture table.
type FixtureColumn struct {
	Name string
	Kind Kind
}

// FixtureTable is a table definition with its seed rows.
type FixtureTable struct {
	Name    string
	Columns []FixtureColumn
	Rows    [][]any
}

// Fixtures returns the users, posts and orders tables shared by the
// integration tests. Row values line up with Columns.
func Fixtures() []FixtureTable {
	return []FixtureTable{
		{
			Name: "users",
			Columns: []FixtureColumn{
				{"id", KindInt},
				{"username", KindText},
				{"age", KindInt},
				{"active", KindInt},
			},
			Rows: [][]any{
				{1, "alice", 30, 1},
				{2, "bob", 25, 1},
				{3, "carol", 35, 0},
				{4, "dave", 19, 1},
				{5, "eve", nil, 0},
			},
		},
		{
			Name: "posts",
			Columns: []FixtureColumn{
				{"id", KindInt},
				{"user_id", KindInt},
				{"title", KindText},
				{"views", KindInt},
				{"published", KindInt},
			},
			Rows: [][]any{
				{1, 1, "Intro", 100, 1},
				{2, 1, "Second", 50, 0},
				{3, 2, "Hello", 200, 1},
				{4, 3, "Draft", 0, 0},
			},
		},
		{
			Name: "orders",
			Columns: []FixtureColumn{
				{"id", KindInt},
				{"user_id", KindInt},
				{"total", KindDecimal},
				{"status", KindText},
			},
			Rows: [][]any{
				{1, 1, 99.5, "paid"},
				{2, 1, 15.0, "pending"},
				{3, 2, 250.0, "paid"},
				{4, 4, 42.0, "refunded"},
			},
		},
	}
}

// FixtureSchema returns the fixture tables as a DBML project.
func FixtureSchema() *dbml.Project {
	project := dbml.NewProject("mockingbird")
	for _, ft := range Fixtures() {
		table := dbml.NewTable(ft.Name)
		for _, col := range ft.Columns {
			table.AddColumn(dbml.NewColumn(col.Name, dbmlType(col.Kind)))
		}
		project.AddTable(table)
	}
	return project
}

func dbmlType(k Kind) string {
	switch k {
	case KindText:
		return "varchar"
	case KindDecimal:
		return "numeric"
	default:
		return "bigint"
	}
}

// columnTypes maps each kind to a column type per dialect.
var columnTypes = map[string][3]string{
	"mysql":    {"INT", "VARCHAR(255)", "DECIMAL(10,2)"},
	"postgres": {"INTEGER", "VARCHAR(255)", "NUMERIC(10,2)"},
	"sqlite":   {"INTEGER", "TEXT", "REAL"},
	"mssql":    {"INT", "NVARCHAR(255)", "DECIMAL(10,2)"},
	"oracle":   {"NUMBER(10)", "VARCHAR2(255)", "NUMBER(10,2)"},
}

// CreateTable returns the CREATE TABLE statement for a fixture table. The
// first column is the primary key.
func CreateTable(dialect string, table FixtureTable) (string, error) {
	kinds, ok := columnTypes[dialect]
	if !ok {
		return "", fmt.Errorf("no column types for dialect %q", dialect)
	}
	defs := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		defs[i] = col.Name + " " + kinds[col.Kind]
		if i == 0 {
			defs[i] += " PRIMARY KEY"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table.Name, strings.Join(defs, ", ")), nil
}

// InsertRows returns one INSERT per fixture row with values bound through d.
// Positional dialects fill Values, named dialects fill Parameters.
func InsertRows(d mockingbird.Dialect, table FixtureTable) []*mockingbird.Result {
	names := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		names[i] = col.Name
	}

	inserts := make([]*mockingbird.Result, 0, len(table.Rows))
	for _, row := range table.Rows {
		ctx := types.NewContext()
		placeholders := make([]string, len(row))
		for i, v := range row {
			placeholders[i] = d.Bind(ctx, v)
		}
		result := &mockingbird.Result{
			SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
				table.Name, strings.Join(names, ", "), strings.Join(placeholders, ", ")),
		}
		if d.Capabilities().Placeholders == mockingbird.PlaceholderNamed {
			result.Parameters = ctx.Parameters
		} else {
			result.Values = ctx.Values
		}
		inserts = append(inserts, result)
	}
	return inserts
}

// CheckTables reports the first table referenced by stmt that the project
// does not define. Sub-statements and union members are walked; raw union
// members are skipped.
func CheckTables(project *dbml.Project, stmt mockingbird.Statement) error {
	known := make(map[string]bool)
	for _, table := range project.Tables {
		known[table.Name] = true
	}

	names, err := referencedTables(stmt)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !known[name] {
			return fmt.Errorf("table '%s' not found in schema", name)
		}
	}
	return nil
}

// CheckColumns reports the first qualified column reference ("table.column"
// or "alias.column") in cols that the project does not define.
func CheckColumns(project *dbml.Project, aliases map[string]string, cols ...string) error {
	fields := make(map[string]map[string]bool)
	for _, table := range project.Tables {
		fields[table.Name] = make(map[string]bool)
		for _, col := range table.Columns {
			fields[table.Name][col.Name] = true
		}
	}

	for _, ref := range cols {
		prefix, column, ok := strings.Cut(ref, ".")
		if !ok {
			return fmt.Errorf("column '%s' is not qualified", ref)
		}
		if name, isAlias := aliases[prefix]; isAlias {
			prefix = name
		}
		table, ok := fields[prefix]
		if !ok {
			return fmt.Errorf("table '%s' not found in schema", prefix)
		}
		if !table[column] {
			return fmt.Errorf("field '%s' not found in table '%s'", column, prefix)
		}
	}
	return nil
}

func referencedTables(stmt mockingbird.Statement) ([]string, error) {
	switch s := stmt.(type) {
	case *mockingbird.Builder:
		ast, err := s.Build()
		if err != nil {
			return nil, err
		}
		return referencedTables(ast)
	case *mockingbird.UnionBuilder:
		ast, err := s.Build()
		if err != nil {
			return nil, err
		}
		return referencedTables(ast)
	case *types.Select:
		var names []string
		tables := append([]types.Table{}, s.From...)
		for _, j := range s.Joins {
			tables = append(tables, j.Table)
		}
		for _, t := range tables {
			if t.IsSubquery() {
				nested, err := referencedTables(t.Query)
				if err != nil {
					return nil, err
				}
				names = append(names, nested...)
				continue
			}
			names = append(names, t.Name)
		}
		return names, nil
	case *types.Union:
		var names []string
		for _, m := range s.Members {
			member, ok := m.(mockingbird.Statement)
			if !ok {
				continue
			}
			nested, err := referencedTables(member)
			if err != nil {
				return nil, err
			}
			names = append(names, nested...)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("unsupported statement %T", stmt)
	}
}
