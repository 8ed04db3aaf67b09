// Package testing provides fixtures and assertions for mockingbird tests.
package testing

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/mockingbird"
	"github.com/zoobzio/mockingbird/internal/render"
)

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertValues checks positional values in order. A nil and an empty
// expectation are equivalent.
func AssertValues(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Values mismatch:\nExpected: %#v\nActual:   %#v", expected, actual)
	}
}

// AssertParameters checks named parameters. A nil and an empty expectation
// are equivalent.
func AssertParameters(t *testing.T, expected, actual map[string]any) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Parameters mismatch:\nExpected: %#v\nActual:   %#v", expected, actual)
	}
}

// AssertCompiled compiles stmt for d and checks the SQL and, depending on
// the dialect's placeholder style, its values or parameters.
func AssertCompiled(t *testing.T, d mockingbird.Dialect, stmt mockingbird.Statement, sql string, bound any) {
	t.Helper()
	result, err := mockingbird.Compile(stmt, d)
	AssertNoError(t, err)
	AssertSQL(t, sql, result.SQL)
	switch b := bound.(type) {
	case nil:
		AssertValues(t, nil, result.Values)
		AssertParameters(t, nil, result.Parameters)
	case []any:
		AssertValues(t, b, result.Values)
	case map[string]any:
		AssertParameters(t, b, result.Parameters)
	default:
		t.Fatalf("bound must be []any or map[string]any, got %T", bound)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertUnsupported checks that err is an unsupported feature error naming
// feature.
func AssertUnsupported(t *testing.T, err error, feature string) {
	t.Helper()
	if !render.IsUnsupportedFeature(err) {
		t.Fatalf("Expected unsupported feature error, got: %v", err)
	}
	if !strings.Contains(err.Error(), feature) {
		t.Errorf("Expected unsupported feature %q, got: %v", feature, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
