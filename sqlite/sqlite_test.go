package sqlite

import (
	"reflect"
	"testing"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/internal/types"
)

func intPtr(i int) *int {
	return &i
}

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Name() != "sqlite" {
		t.Errorf("Name() = %q, want %q", r.Name(), "sqlite")
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		page       types.Page
		wantSQL    string
		wantValues []any
	}{
		{"limit only", types.Page{Limit: intPtr(10)}, "SELECT 1 LIMIT ?", []any{10}},
		{"offset only", types.Page{Offset: intPtr(3)}, "SELECT 1 LIMIT -1 OFFSET ?", []any{3}},
		{"both", types.Page{Limit: intPtr(10), Offset: intPtr(3)}, "SELECT 1 LIMIT ? OFFSET ?", []any{10, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := types.NewContext()
			got, err := New().Paginate(ctx, "SELECT 1", tt.page)
			if err != nil {
				t.Fatalf("Paginate() error = %v", err)
			}
			if got != tt.wantSQL {
				t.Errorf("SQL = %q, want %q", got, tt.wantSQL)
			}
			if !reflect.DeepEqual(ctx.Values, tt.wantValues) {
				t.Errorf("Values = %v, want %v", ctx.Values, tt.wantValues)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	result, err := mockingbird.Select().
		Columns("name").
		Distinct().
		From(mockingbird.T("users")).
		Where(mockingbird.IsNotNull(mockingbird.R("email"))).
		Offset(10).
		Compile(New())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	expected := "SELECT DISTINCT name FROM users WHERE (IS NOT NULL (email)) LIMIT -1 OFFSET ?"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if !reflect.DeepEqual(result.Values, []any{10}) {
		t.Errorf("Values = %v, want [10]", result.Values)
	}
}
