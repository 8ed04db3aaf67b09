package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// Comparison helpers. The value is always bound through the dialect's
// placeholder strategy, never inlined.

// Eq creates a column = value comparison.
func Eq(column string, value any) *BinaryOperator {
	return binary(types.EQ, column, value)
}

// Neq creates a column != value comparison.
func Neq(column string, value any) *BinaryOperator {
	return binary(types.NE, column, value)
}

// Gt creates a column > value comparison.
func Gt(column string, value any) *BinaryOperator {
	return binary(types.GT, column, value)
}

// Lt creates a column < value comparison.
func Lt(column string, value any) *BinaryOperator {
	return binary(types.LT, column, value)
}

// Gteq creates a column >= value comparison.
func Gteq(column string, value any) *BinaryOperator {
	return binary(types.GE, column, value)
}

// Lteq creates a column <= value comparison.
func Lteq(column string, value any) *BinaryOperator {
	return binary(types.LE, column, value)
}

// Like creates a column LIKE value comparison.
func Like(column string, value any) *BinaryOperator {
	return binary(types.LIKE, column, value)
}

// In creates a column IN value comparison. The value is bound as a single
// parameter; expanding lists is left to the driver.
func In(column string, value any) *BinaryOperator {
	return binary(types.IN, column, value)
}

func binary(op Operator, column string, value any) *BinaryOperator {
	return &types.BinaryOperator{
		Operator: op,
		Column:   column,
		Value:    value,
	}
}

// Between creates a column BETWEEN low AND high comparison.
func Between(column string, low, high any) *TrinaryOperator {
	return trinary(types.Between, column, low, high)
}

// NotBetween creates a column NOT BETWEEN low AND high comparison.
func NotBetween(column string, low, high any) *TrinaryOperator {
	return trinary(types.NotBetween, column, low, high)
}

func trinary(op Operator, column string, low, high any) *TrinaryOperator {
	return &types.TrinaryOperator{
		Operator:  op,
		Separator: types.RangeSeparator,
		Column:    column,
		Low:       low,
		High:      high,
	}
}

// Case creates a CASE expression, optionally with a subject.
// Add branches with When/Then and a default with Else.
//
//	Case().When(Eq("status", 1)).Then(R("'active'")).Else(R("'inactive'"))
func Case(subject ...Expression) *CaseOperator {
	c := &types.CaseOperator{}
	if len(subject) > 0 {
		c.Subject = subject[0]
	}
	return c
}

// Pair creates the column-pair join shorthand, rendered as "left = right".
func Pair(left, right string) ColumnPair {
	return types.ColumnPair{Left: left, Right: right}
}

// Col creates an unaliased select-list entry.
func Col(expr Expression) Column {
	return types.Column{Expr: expr}
}

// As creates an aliased select-list entry.
func As(expr Expression, alias string) Column {
	return types.Column{Expr: expr, Alias: alias}
}
