package clex

// Statement  = Assignment | Expr
// Assignment = ident '=' Expr
// Expr       = num | ident | '(' Expr ')' | unop Expr | Expr binop Expr
// unop       = '+' | '-' | 'sqrt' | 'log' | 'sin' | 'cos' | 'tan'
//            | 'arcsin' | 'arccos' | 'arctan'
// binop      = '+' | '-' | '*' | '/' | '^'

// Parser builds statements from a token stream by precedence climbing.
type Parser struct {
	tokens *TokenStream
}

// NewParser creates a parser over a token slice, taking ownership of it.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: NewTokenStream(tokens)}
}

// NewStreamParser creates a parser reading from an existing stream.
func NewStreamParser(tokens *TokenStream) *Parser {
	return &Parser{tokens: tokens}
}

// exprStarters is the set of kinds legal at the start of a subexpression.
var exprStarters = []TokenType{
	TokenNumber, TokenIdent, TokenLparen,
	TokenPlus, TokenMinus,
	TokenSqrt, TokenLog, TokenSin, TokenCos, TokenTan,
	TokenArcsin, TokenArccos, TokenArctan,
}

// ParseNextStatement parses one statement from the stream. A line starting
// with an identifier is an assignment exactly when the following token is
// '='; otherwise the identifier is given back and the line parses as an
// expression.
func (p *Parser) ParseNextStatement() (Statement, error) {
	if p.tokens.Peek().Type() != TokenIdent {
		expr, err := p.ParseExpression()
		if err != nil {
			return Statement{}, err
		}
		return ExpressionStatement(expr), nil
	}
	first := p.tokens.Next()
	if p.tokens.Peek().Type() != TokenAssign {
		p.tokens.GiveBack(first)
		expr, err := p.ParseExpression()
		if err != nil {
			return Statement{}, err
		}
		return ExpressionStatement(expr), nil
	}
	assign, err := p.parseAssignment(first)
	if err != nil {
		return Statement{}, err
	}
	return AssignmentStatement(assign), nil
}

// ParseExpression parses a complete expression.
func (p *Parser) ParseExpression() (*Expression, error) {
	return p.parseExpressionRecursive(-1)
}

// parseAssignment parses the '=' and right-hand side of an assignment whose
// identifier has already been consumed.
func (p *Parser) parseAssignment(variable Token) (*Assignment, error) {
	if p.tokens.Peek().Type() != TokenAssign {
		return nil, NewExpectedTokenError([]TokenType{TokenAssign}, p.tokens.Peek())
	}
	p.tokens.Next()
	rhs, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return NewAssignment(variable, rhs), nil
}

// parseExpressionRecursive parses a subexpression containing only operators
// that bind more strongly than minBP. Right associativity falls out of the
// comparison: a right-associative operator extends the subexpression at
// equal power, a left-associative one does not.
func (p *Parser) parseExpressionRecursive(minBP int) (*Expression, error) {
	first := p.tokens.Next()
	var lhs *Expression
	switch {
	case first.IsOperand():
		lhs = NewOperand(first)
	case first.Type() == TokenLparen:
		inner, err := p.parseExpressionRecursive(0)
		if err != nil {
			return nil, err
		}
		after := p.tokens.Next()
		if after.Type() != TokenRparen {
			return nil, NewMismatchedParenthesesError(first, after)
		}
		lhs = inner
	case first.IsUnaryOperator():
		// The operand of a prefix operator extends through an
		// exponentiation chain and nothing weaker: -x^2 reads as -(x^2)
		// while -x*y reads as (-x)*y.
		prec, _ := NewToken(TokenCaret).BinaryBindingPower()
		operand, err := p.parseExpressionRecursive(prec)
		if err != nil {
			return nil, err
		}
		lhs = NewUnaryOp(first, operand)
	default:
		return nil, NewExpectedTokenError(exprStarters, first)
	}

	for {
		oper := p.tokens.Peek()
		switch oper.Type() {
		case TokenEOF, TokenNewline, TokenRparen:
			// End of the subexpression. The enclosing context consumes the
			// closing parenthesis when this was a parenthesized sub-parse.
			return lhs, nil
		}
		bp, ok := oper.BinaryBindingPower()
		if !ok {
			return nil, NewExpectedOperatorError(oper)
		}
		if oper.IsRightAssociative() {
			if bp < minBP {
				return lhs, nil
			}
		} else if bp <= minBP {
			return lhs, nil
		}
		p.tokens.Next()
		rhs, err := p.parseExpressionRecursive(bp)
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryOp(oper, lhs, rhs)
	}
}
