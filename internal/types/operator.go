package types

// Operator represents the keyword or symbol an expression node renders with.
type Operator string

const (
	// Logical operators.
	AND Operator = "AND"
	OR  Operator = "OR"
	NOT Operator = "NOT"

	// Comparison operators.
	EQ   Operator = "="
	NE   Operator = "!="
	GT   Operator = ">"
	GE   Operator = ">="
	LT   Operator = "<"
	LE   Operator = "<="
	LIKE Operator = "LIKE"
	IN   Operator = "IN"

	// Unary operators.
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"

	// Range operators.
	Between    Operator = "BETWEEN"
	NotBetween Operator = "NOT BETWEEN"
)

// RangeSeparator separates the two bounds of a BETWEEN expression.
const RangeSeparator = "AND"
