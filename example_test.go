package mockingbird_test

import (
	"fmt"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/mysql"
	"github.com/zoobzio/mockingbird/oracle"
)

func ExampleSelect() {
	query := mockingbird.Select().
		Columns("id", "name").
		From(mockingbird.T("users", "u")).
		Where(mockingbird.And(
			mockingbird.R("u.active = 1"),
			mockingbird.Gt("u.age", 21),
		)).
		OrderBy("name").
		Limit(10)

	result := query.MustCompile(mysql.New())
	fmt.Println(result.SQL)
	fmt.Println(result.Values)

	// Output:
	// SELECT id, name FROM users AS u WHERE (u.active = 1) AND (u.age > ?) ORDER BY name ASC LIMIT ?
	// [21 10]
}

func ExampleBuilder_Window() {
	query := mockingbird.Select().
		From(mockingbird.T("T")).
		Where(mockingbird.Eq("status", "open")).
		Window(10, 20)

	result := query.MustCompile(oracle.New())
	fmt.Println(result.SQL)
	fmt.Println(result.Parameters["par1"])

	// Output:
	// SELECT * FROM (SELECT inner_query.*, ROWNUM rnum FROM (SELECT * FROM T WHERE (status = :par1)) inner_query) WHERE rnum > 10 AND rnum <= 30
	// open
}

func ExampleUnion() {
	result := mockingbird.Union(
		mockingbird.Select().Columns("id").From(mockingbird.T("customers")),
		mockingbird.Select().Columns("id").From(mockingbird.T("suppliers")),
	).OrderBy("id", "desc").MustCompile(mysql.New())

	fmt.Println(result.SQL)

	// Output:
	// (SELECT id FROM customers) UNION (SELECT id FROM suppliers) ORDER BY id DESC
}

func ExampleCase() {
	status := mockingbird.Case().
		When(mockingbird.Eq("status", 1)).Then(mockingbird.R("'active'")).
		Else(mockingbird.R("'inactive'"))

	result := mockingbird.Select().
		ColumnsAs(mockingbird.Col(mockingbird.R("id")), mockingbird.As(status, "label")).
		From(mockingbird.T("accounts")).
		MustCompile(mysql.New())

	fmt.Println(result.SQL)
	fmt.Println(result.Values)

	// Output:
	// SELECT id, CASE WHEN status = ? THEN 'active' ELSE 'inactive' END AS label FROM accounts
	// [1]
}
