package integration

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mb "github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/mssql"
	"github.com/zoobzio/mockingbird/mysql"
	"github.com/zoobzio/mockingbird/postgres"
	"github.com/zoobzio/mockingbird/querydef"
	"github.com/zoobzio/mockingbird/sqlite"
	mbtesting "github.com/zoobzio/mockingbird/testing"
)

var (
	mysqlDialect    = mysql.New()
	postgresDialect = postgres.New()
	sqliteDialect   = sqlite.New()
	mssqlDialect    = mssql.New()
)

// scenario is a query with the rows it returns against the fixtures.
type scenario struct {
	name string
	stmt func(t *testing.T) mb.Statement
	want [][]string
	// skip maps a dialect name to the reason the scenario does not run there.
	skip map[string]string
}

// queryFunc executes a compiled query and returns normalized rows.
type queryFunc func(t *testing.T, result *mb.Result) [][]string

func scenarios() []scenario {
	users := mb.T("users")
	return []scenario{
		{
			name: "filter",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("id", "username").From(users).
					Where(mb.And(mb.Eq("active", 1), mb.Gt("age", 20))).
					OrderBy("id")
			},
			want: [][]string{{"1", "alice"}, {"2", "bob"}},
		},
		{
			name: "like or",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("username").From(users).
					Where(mb.Or(mb.Like("username", "a%"), mb.Eq("id", 4))).
					OrderBy("username")
			},
			want: [][]string{{"alice"}, {"dave"}},
		},
		{
			name: "not",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("id").From(users).
					Where(mb.Not(mb.Eq("active", 1))).
					OrderBy("id")
			},
			want: [][]string{{"3"}, {"5"}},
		},
		{
			name: "between descending",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("id").From(users).
					Where(mb.Between("age", 20, 31)).
					OrderBy("id", "desc")
			},
			want: [][]string{{"2"}, {"1"}},
		},
		{
			name: "inner join",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("u.username", "p.title").
					From(mb.T("users", "u")).
					Join(mb.T("posts", "p"), mb.Pair("u.id", "p.user_id")).
					Where(mb.Eq("p.published", 1)).
					OrderBy("p.id")
			},
			want: [][]string{{"alice", "Intro"}, {"bob", "Hello"}},
		},
		{
			name: "left join group having",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("u.username").
					ColumnsAs(mb.As(mb.R("COUNT(p.id)"), "post_count")).
					From(mb.T("users", "u")).
					LeftJoin(mb.T("posts", "p"), mb.Pair("u.id", "p.user_id")).
					GroupBy("u.username").
					Having(mb.Gt("COUNT(p.id)", 0)).
					OrderBy("u.username")
			},
			want: [][]string{{"alice", "2"}, {"bob", "1"}, {"carol", "1"}},
		},
		{
			name: "full join",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("u.username", "p.title").
					From(mb.T("users", "u")).
					FullJoin(mb.T("posts", "p"), mb.Pair("u.id", "p.user_id")).
					OrderBy("u.id").
					OrderBy("p.id")
			},
			want: [][]string{
				{"alice", "Intro"}, {"alice", "Second"}, {"bob", "Hello"},
				{"carol", "Draft"}, {"dave", "NULL"}, {"eve", "NULL"},
			},
			skip: map[string]string{"mysql": "no FULL JOIN"},
		},
		{
			name: "subquery",
			stmt: func(*testing.T) mb.Statement {
				inner := mb.Select().Columns("username", "age").From(users).Where(mb.Gteq("age", 30))
				return mb.Select().Columns("t.username").From(mb.Sub(inner, "t")).OrderBy("t.username")
			},
			want: [][]string{{"alice"}, {"carol"}},
		},
		{
			name: "distinct",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Distinct().Columns("user_id").From(mb.T("orders")).
					Where(mb.Eq("status", "paid")).
					OrderBy("user_id")
			},
			want: [][]string{{"1"}, {"2"}},
		},
		{
			name: "case",
			stmt: func(*testing.T) mb.Statement {
				band := mb.Case().When(mb.Gt("age", 28)).Then(mb.R("'senior'")).Else(mb.R("'junior'"))
				return mb.Select().ColumnsAs(mb.Col(mb.R("id")), mb.As(band, "band")).From(users).
					Where(mb.Lteq("id", 3)).
					OrderBy("id")
			},
			want: [][]string{{"1", "senior"}, {"2", "junior"}, {"3", "senior"}},
		},
		{
			name: "window",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("id").From(users).OrderBy("id").Window(1, 2)
			},
			want: [][]string{{"2"}, {"3"}},
		},
		{
			name: "offset only",
			stmt: func(*testing.T) mb.Statement {
				return mb.Select().Columns("id").From(users).OrderBy("id").Offset(3)
			},
			want: [][]string{{"4"}, {"5"}},
		},
		{
			name: "union",
			stmt: func(*testing.T) mb.Statement {
				return mb.Union(
					mb.Select().Columns("username").From(users).Where(mb.Eq("id", 3)),
					mb.Select().Columns("username").From(users).Where(mb.Lt("id", 3)),
				).OrderBy("username", "desc").Limit(2)
			},
			want: [][]string{{"carol"}, {"bob"}},
			skip: map[string]string{"sqlite": "parenthesized compound members"},
		},
		{
			name: "definition",
			stmt: func(t *testing.T) mb.Statement {
				def, err := querydef.Parse([]byte(`
select:
  columns: [username]
  from: [{table: users, as: u}]
  where: {and: [{eq: [u.active, 1]}, {lt: [u.age, 26]}]}
  orderBy: [username]
`))
				require.NoError(t, err)
				stmt, err := querydef.BuildFromSchema(def)
				require.NoError(t, err)
				return stmt
			},
			want: [][]string{{"bob"}, {"dave"}},
		},
	}
}

// runScenarios compiles every scenario for d and checks the rows query returns.
func runScenarios(t *testing.T, d mb.Dialect, query queryFunc) {
	t.Helper()
	schema := mbtesting.FixtureSchema()

	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			if reason, ok := sc.skip[d.Name()]; ok {
				t.Skip(reason)
			}
			stmt := sc.stmt(t)
			require.NoError(t, mbtesting.CheckTables(schema, stmt))

			result, err := mb.Compile(stmt, d)
			require.NoError(t, err)

			got := query(t, result)
			assert.Equal(t, sc.want, got, "SQL: %s", result.SQL)
		})
	}
}

// bindArgs returns the driver arguments for a compiled query. Named
// parameters are passed as sql.Named in name order.
func bindArgs(result *mb.Result) []any {
	if len(result.Parameters) == 0 {
		return result.Values
	}
	names := make([]string, 0, len(result.Parameters))
	for name := range result.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	args := make([]any, len(names))
	for i, name := range names {
		args[i] = sql.Named(name, result.Parameters[name])
	}
	return args
}

// seedDB creates and fills the fixture tables.
func seedDB(ctx context.Context, db *sql.DB, d mb.Dialect) error {
	for _, table := range mbtesting.Fixtures() {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table.Name); err != nil {
			return fmt.Errorf("dropping %s: %w", table.Name, err)
		}
		ddl, err := mbtesting.CreateTable(d.Name(), table)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating %s: %w", table.Name, err)
		}
		for _, insert := range mbtesting.InsertRows(d, table) {
			if _, err := db.ExecContext(ctx, insert.SQL, bindArgs(insert)...); err != nil {
				return fmt.Errorf("seeding %s: %w", table.Name, err)
			}
		}
	}
	return nil
}

// queryDB executes a compiled query through database/sql.
func queryDB(db *sql.DB) queryFunc {
	return func(t *testing.T, result *mb.Result) [][]string {
		t.Helper()
		rows, err := db.QueryContext(context.Background(), result.SQL, bindArgs(result)...)
		require.NoError(t, err, "SQL: %s", result.SQL)
		defer rows.Close()

		cols, err := rows.Columns()
		require.NoError(t, err)

		var out [][]string
		for rows.Next() {
			values := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range values {
				ptrs[i] = &values[i]
			}
			require.NoError(t, rows.Scan(ptrs...))
			out = append(out, normalize(values))
		}
		require.NoError(t, rows.Err())
		return out
	}
}

// normalize renders driver values as strings so rows compare across drivers.
func normalize(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case nil:
			out[i] = "NULL"
		case []byte:
			out[i] = string(v)
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
