package clex

import "math"

// Evaluate walks the expression against a symbol table and returns its
// value. Evaluation is pure: it never mutates the tree or the table, and it
// returns a typed EvalError carrying a clone of the failing subtree when
// the input leaves the real domain. Children evaluate left to right, so an
// error in a left subtree is reported before one in the right. Infinite
// values propagate through later operations; apart from a zero denominator
// and the domain checks of sqrt, log, arcsin and arccos, only NaN results
// are errors.
func (e *Expression) Evaluate(symbols *SymbolTable) (float64, error) {
	switch e.typ {
	case Operand:
		if num, ok := e.tok.Num(); ok {
			return num, nil
		}
		val, ok := symbols.Get(e.tok)
		if !ok {
			return 0, NewUndefinedVariableError(e.Clone())
		}
		return val, nil
	case BinaryOp:
		lhs, err := e.lhs.Evaluate(symbols)
		if err != nil {
			return 0, err
		}
		rhs, err := e.rhs.Evaluate(symbols)
		if err != nil {
			return 0, err
		}
		var result float64
		switch e.tok.Type() {
		case TokenPlus:
			result = lhs + rhs
		case TokenMinus:
			result = lhs - rhs
		case TokenAsterisk:
			result = lhs * rhs
		case TokenSlash:
			// Both IEEE zeros compare equal to 0, so one test covers -0.
			if rhs == 0 {
				return 0, NewDivideByZeroError(e.Clone())
			}
			result = lhs / rhs
		case TokenCaret:
			result = math.Pow(lhs, rhs)
		default:
			panic("clex: invalid binary operator " + e.tok.String())
		}
		if math.IsNaN(result) {
			return 0, NewComplexResultError(e.Clone())
		}
		return result, nil
	case UnaryOp:
		val, err := e.operand.Evaluate(symbols)
		if err != nil {
			return 0, err
		}
		var result float64
		switch e.tok.Type() {
		case TokenPlus:
			result = val
		case TokenMinus:
			result = -val
		case TokenSqrt:
			if val < 0 {
				return 0, NewComplexResultError(e.Clone())
			}
			result = math.Sqrt(val)
		case TokenLog:
			if val <= 0 {
				return 0, NewComplexResultError(e.Clone())
			}
			result = math.Log(val)
		case TokenSin:
			result = math.Sin(val)
		case TokenCos:
			result = math.Cos(val)
		case TokenTan:
			result = math.Tan(val)
		case TokenArcsin:
			if math.Abs(val) > 1 {
				return 0, NewComplexResultError(e.Clone())
			}
			result = math.Asin(val)
		case TokenArccos:
			if math.Abs(val) > 1 {
				return 0, NewComplexResultError(e.Clone())
			}
			result = math.Acos(val)
		case TokenArctan:
			result = math.Atan(val)
		default:
			panic("clex: invalid unary operator " + e.tok.String())
		}
		if math.IsNaN(result) {
			return 0, NewComplexResultError(e.Clone())
		}
		return result, nil
	default:
		panic("clex: invalid expression type")
	}
}

// Execute evaluates the assignment's right-hand side and binds the result
// to the variable. The binding is all-or-nothing: a failed evaluation
// leaves the symbol table unchanged.
func (a *Assignment) Execute(symbols *SymbolTable) error {
	val, err := a.rhs.Evaluate(symbols)
	if err != nil {
		return err
	}
	symbols.Set(a.variable, val)
	return nil
}
