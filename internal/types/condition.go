package types

// Expression is a predicate or operator node.
// Raw text, the operator nodes below and ColumnPair implement it.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Expression interface {
	IsExpression()
}

// Raw is literal SQL text. It is rendered verbatim, never escaped.
type Raw string

// ColumnPair is the two-column shorthand for an equality join condition.
type ColumnPair struct {
	Left  string
	Right string
}

// LogicalOperator combines operands with AND or OR.
type LogicalOperator struct {
	Operator Operator
	Operands []Expression
}

// Push appends operands in place and returns the receiver.
func (l *LogicalOperator) Push(operands ...Expression) *LogicalOperator {
	l.Operands = append(l.Operands, operands...)
	return l
}

// NotOperator negates its operand.
type NotOperator struct {
	Operand Expression
}

// UnaryOperator applies an operator such as IS NULL to a single operand.
type UnaryOperator struct {
	Operand  Expression
	Operator Operator
}

// BinaryOperator compares a column with a bound value.
type BinaryOperator struct {
	Value    any
	Operator Operator
	Column   string
}

// TrinaryOperator compares a column with two bound values, as in BETWEEN.
type TrinaryOperator struct {
	Low       any
	High      any
	Operator  Operator
	Separator string
	Column    string
}

// Branch is a single WHEN ... THEN arm of a CASE expression.
// Result stays nil until a result is supplied.
type Branch struct {
	When   Expression
	Result Expression
}

// CaseOperator is a CASE expression with an optional subject and default.
type CaseOperator struct {
	Subject  Expression
	Default  Expression
	Branches []Branch
}

// When adds a branch. The result is optional and may be supplied by Then.
func (c *CaseOperator) When(predicate Expression, result ...Expression) *CaseOperator {
	b := Branch{When: predicate}
	if len(result) > 0 {
		b.Result = result[0]
	}
	c.Branches = append(c.Branches, b)
	return c
}

// Then sets the result of the most recently added branch.
func (c *CaseOperator) Then(result Expression) *CaseOperator {
	if len(c.Branches) == 0 {
		return c
	}
	c.Branches[len(c.Branches)-1].Result = result
	return c
}

// Else sets the default result.
func (c *CaseOperator) Else(result Expression) *CaseOperator {
	c.Default = result
	return c
}

// Implement Expression interface.
func (Raw) IsExpression()              {}
func (ColumnPair) IsExpression()       {}
func (*LogicalOperator) IsExpression() {}
func (*NotOperator) IsExpression()     {}
func (*UnaryOperator) IsExpression()   {}
func (*BinaryOperator) IsExpression()  {}
func (*TrinaryOperator) IsExpression() {}
func (*CaseOperator) IsExpression()    {}
