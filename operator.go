package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// Operator represents an expression operator.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Logical operators.
	AND = types.AND
	OR  = types.OR

	// Comparison operators.
	EQ   = types.EQ
	NE   = types.NE
	GT   = types.GT
	GE   = types.GE
	LT   = types.LT
	LE   = types.LE
	LIKE = types.LIKE
	IN   = types.IN

	// Unary and range operators.
	IsNullOp     = types.IsNull
	IsNotNullOp  = types.IsNotNull
	BetweenOp    = types.Between
	NotBetweenOp = types.NotBetween
)
