package mockingbird

import "github.com/zoobzio/mockingbird/internal/types"

// R wraps literal SQL text. The text is emitted verbatim.
func R(text string) Raw {
	return types.Raw(text)
}

// And combines operands with AND. More operands can be added with Push.
func And(operands ...Expression) *LogicalOperator {
	return logical(types.AND, operands)
}

// Or combines operands with OR. More operands can be added with Push.
func Or(operands ...Expression) *LogicalOperator {
	return logical(types.OR, operands)
}

func logical(op Operator, operands []Expression) *LogicalOperator {
	ops := make([]Expression, len(operands))
	copy(ops, operands)
	return &types.LogicalOperator{
		Operator: op,
		Operands: ops,
	}
}

// Not negates an expression.
func Not(expr Expression) *NotOperator {
	return &types.NotOperator{Operand: expr}
}

// IsNull creates an IS NULL test on an operand.
func IsNull(operand Expression) *UnaryOperator {
	return &types.UnaryOperator{Operator: types.IsNull, Operand: operand}
}

// IsNotNull creates an IS NOT NULL test on an operand.
func IsNotNull(operand Expression) *UnaryOperator {
	return &types.UnaryOperator{Operator: types.IsNotNull, Operand: operand}
}
