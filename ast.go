package clex

import "strings"

// ExpressionType discriminates the shapes an Expression can take.
type ExpressionType int

const (
	// Operand is a single number or identifier leaf.
	Operand ExpressionType = iota
	// BinaryOp is an infix operator with two children.
	BinaryOp
	// UnaryOp is a prefix operator or named function with one child.
	UnaryOp
)

// Expression is a node of the abstract syntax tree. It is a discriminated
// record: tok is the operand token for Operand nodes and the operator token
// otherwise, and only the children of the tagged shape are set. Children are
// owned exclusively; no subtree is shared between expressions.
type Expression struct {
	typ ExpressionType
	tok Token

	lhs, rhs *Expression
	operand  *Expression
}

// NewOperand builds a leaf expression. Panics unless tok is a number or
// identifier token.
func NewOperand(tok Token) *Expression {
	if !tok.IsOperand() {
		panic("clex: invalid token for operand: " + tok.String())
	}
	return &Expression{typ: Operand, tok: tok}
}

// NewBinaryOp builds an infix operation. Panics unless oper is a binary
// operator token and both children are present.
func NewBinaryOp(oper Token, lhs, rhs *Expression) *Expression {
	if !oper.IsBinaryOperator() {
		panic("clex: invalid token for binary operation: " + oper.String())
	}
	if lhs == nil || rhs == nil {
		panic("clex: nil child expression for binary operation")
	}
	return &Expression{typ: BinaryOp, tok: oper, lhs: lhs, rhs: rhs}
}

// NewUnaryOp builds a prefix operation. Panics unless oper is a unary
// operator token and the operand is present.
func NewUnaryOp(oper Token, operand *Expression) *Expression {
	if !oper.IsUnaryOperator() {
		panic("clex: invalid token for unary operation: " + oper.String())
	}
	if operand == nil {
		panic("clex: nil operand expression for unary operation")
	}
	return &Expression{typ: UnaryOp, tok: oper, operand: operand}
}

// Type returns the node's shape tag.
func (e *Expression) Type() ExpressionType {
	return e.typ
}

// Token returns the operand token of a leaf, or the operator token of a
// binary or unary node.
func (e *Expression) Token() Token {
	return e.tok
}

// Operands returns the children of a BinaryOp node. Panics on other shapes.
func (e *Expression) Operands() (lhs, rhs *Expression) {
	if e.typ != BinaryOp {
		panic("clex: Operands on non-binary expression")
	}
	return e.lhs, e.rhs
}

// Operand returns the child of a UnaryOp node. Panics on other shapes.
func (e *Expression) Operand() *Expression {
	if e.typ != UnaryOp {
		panic("clex: Operand on non-unary expression")
	}
	return e.operand
}

// Clone returns a structurally equal tree sharing no nodes with e.
func (e *Expression) Clone() *Expression {
	switch e.typ {
	case Operand:
		return NewOperand(e.tok)
	case BinaryOp:
		return NewBinaryOp(e.tok, e.lhs.Clone(), e.rhs.Clone())
	case UnaryOp:
		return NewUnaryOp(e.tok, e.operand.Clone())
	default:
		panic("clex: invalid expression type " + e.tok.String())
	}
}

// String renders the expression in parenthesized infix form, the form used
// by diagnostics.
func (e *Expression) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expression) fmt(b *strings.Builder) {
	switch e.typ {
	case Operand:
		b.WriteString(e.tok.text())
	case BinaryOp:
		b.WriteByte('(')
		e.lhs.fmt(b)
		b.WriteByte(' ')
		b.WriteString(e.tok.text())
		b.WriteByte(' ')
		e.rhs.fmt(b)
		b.WriteByte(')')
	case UnaryOp:
		b.WriteString(e.tok.text())
		b.WriteByte('(')
		e.operand.fmt(b)
		b.WriteByte(')')
	default:
		panic("clex: invalid expression type after writing " + b.String())
	}
}

// Assignment stores the value of an expression under a variable name.
type Assignment struct {
	variable Token
	rhs      *Expression
}

// NewAssignment builds an assignment. Panics unless variable is an
// identifier token and the right-hand side is present.
func NewAssignment(variable Token, rhs *Expression) *Assignment {
	if variable.Type() != TokenIdent {
		panic("clex: left-hand side of assignment must be an identifier: " + variable.String())
	}
	if rhs == nil {
		panic("clex: nil right-hand side expression for assignment")
	}
	return &Assignment{variable: variable, rhs: rhs}
}

// Var returns the identifier token on the left-hand side.
func (a *Assignment) Var() Token {
	return a.variable
}

// Value returns the right-hand side expression.
func (a *Assignment) Value() *Expression {
	return a.rhs
}

func (a *Assignment) String() string {
	return a.variable.ident + " = " + a.rhs.String()
}

// Statement is either an expression to evaluate or an assignment to execute.
type Statement struct {
	expr   *Expression
	assign *Assignment
}

// ExpressionStatement wraps an expression as a statement.
func ExpressionStatement(expr *Expression) Statement {
	return Statement{expr: expr}
}

// AssignmentStatement wraps an assignment as a statement.
func AssignmentStatement(assign *Assignment) Statement {
	return Statement{assign: assign}
}

// IsExpression reports whether the statement holds an expression.
func (s Statement) IsExpression() bool {
	return s.expr != nil
}

// Expression returns the held expression. Panics if the statement is an
// assignment.
func (s Statement) Expression() *Expression {
	if s.expr == nil {
		panic("clex: Expression on assignment statement")
	}
	return s.expr
}

// Assignment returns the held assignment. Panics if the statement is an
// expression.
func (s Statement) Assignment() *Assignment {
	if s.assign == nil {
		panic("clex: Assignment on expression statement")
	}
	return s.assign
}
