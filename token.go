package clex

import "strconv"

// TokenType identifies the kind of a scanned token.
type TokenType int

const (
	// TokenError marks input the scanner could not recognize. A statement
	// containing one must be refused before parsing.
	TokenError TokenType = iota - 1
	// TokenEOF is the synthetic sentinel terminating every token stream.
	TokenEOF
	// TokenNewline ends a statement within multi-line input.
	TokenNewline
	// TokenNumber is a numeric literal. Its payload is the parsed value.
	TokenNumber
	// TokenIdent is a variable name. Its payload is the name.
	TokenIdent
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenCaret
	TokenSqrt
	TokenLog
	TokenSin
	TokenCos
	TokenTan
	TokenArcsin
	TokenArccos
	TokenArctan
	TokenAssign
	TokenLparen
	TokenRparen
)

// String returns the descriptive form used in diagnostics, e.g.
// "Plus ('+')".
func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "<Error token>"
	case TokenEOF:
		return "<EOF>"
	case TokenNewline:
		return "Newline"
	case TokenNumber:
		return "Number"
	case TokenIdent:
		return "Identifier"
	case TokenPlus:
		return "Plus ('+')"
	case TokenMinus:
		return "Minus ('-')"
	case TokenAsterisk:
		return "Asterisk ('*')"
	case TokenSlash:
		return "Slash ('/')"
	case TokenCaret:
		return "Caret ('^')"
	case TokenSqrt:
		return "Sqrt function"
	case TokenLog:
		return "Log function"
	case TokenSin:
		return "Sin function"
	case TokenCos:
		return "Cos function"
	case TokenTan:
		return "Tan function"
	case TokenArcsin:
		return "Arcsin function"
	case TokenArccos:
		return "Arccos function"
	case TokenArctan:
		return "Arctan function"
	case TokenAssign:
		return "Assign ('=')"
	case TokenLparen:
		return "Left Parenthesis ('(')"
	case TokenRparen:
		return "Right Parenthesis (')')"
	default:
		return "<Invalid token type (num " + strconv.Itoa(int(t)) + ")>"
	}
}

// Token is the value passed from the scanner to the parser. Number tokens
// carry a value and identifier tokens carry a name; every other kind has no
// payload.
type Token struct {
	typ   TokenType
	num   float64
	ident string
}

// NewToken creates a payloadless token. Panics if typ is TokenNumber or
// TokenIdent; use NumberToken or IdentToken for those.
func NewToken(typ TokenType) Token {
	if typ == TokenNumber || typ == TokenIdent {
		panic("clex: no payload provided for number/identifier token; use NumberToken or IdentToken")
	}
	return Token{typ: typ}
}

// NumberToken creates a token for a numeric literal.
func NumberToken(num float64) Token {
	return Token{typ: TokenNumber, num: num}
}

// IdentToken creates a token for a variable name. Panics if name is empty.
func IdentToken(name string) Token {
	if name == "" {
		panic("clex: empty identifier token name")
	}
	return Token{typ: TokenIdent, ident: name}
}

// Type returns the token's kind.
func (t Token) Type() TokenType {
	return t.typ
}

// Num returns the numeric payload. The second result is false unless the
// token is a TokenNumber.
func (t Token) Num() (float64, bool) {
	return t.num, t.typ == TokenNumber
}

// Ident returns the identifier payload. The second result is false unless
// the token is a TokenIdent.
func (t Token) Ident() (string, bool) {
	if t.typ != TokenIdent {
		return "", false
	}
	return t.ident, true
}

// IsOperand reports whether the token may stand alone as an expression leaf.
func (t Token) IsOperand() bool {
	return t.typ == TokenNumber || t.typ == TokenIdent
}

// IsBinaryOperator reports whether the token may appear in infix position.
func (t Token) IsBinaryOperator() bool {
	return t.typ >= TokenPlus && t.typ <= TokenCaret
}

// IsUnaryOperator reports whether the token may appear in prefix position:
// sign operators and the named functions.
func (t Token) IsUnaryOperator() bool {
	switch {
	case t.typ == TokenPlus, t.typ == TokenMinus:
		return true
	case t.typ >= TokenSqrt && t.typ <= TokenArctan:
		return true
	}
	return false
}

// IsOperator reports whether the token is valid in either operator position.
func (t Token) IsOperator() bool {
	return t.IsBinaryOperator() || t.IsUnaryOperator()
}

// IsRightAssociative reports whether consecutive occurrences of the operator
// group rightward. Only exponentiation does.
func (t Token) IsRightAssociative() bool {
	return t.typ == TokenCaret
}

// BinaryBindingPower returns the infix precedence of the token. The second
// result is false for tokens that are not binary operators.
func (t Token) BinaryBindingPower() (int, bool) {
	switch t.typ {
	case TokenPlus, TokenMinus:
		return 1, true
	case TokenAsterisk, TokenSlash:
		return 2, true
	case TokenCaret:
		return 3, true
	}
	return 0, false
}

// UnaryBindingPower returns the prefix precedence of the token. The second
// result is false for tokens that are not unary operators. The parser does
// not use it for the operand of a prefix operator: that operand extends
// through an exponentiation chain, so -x^2 parses as -(x^2).
func (t Token) UnaryBindingPower() (int, bool) {
	switch {
	case t.typ == TokenPlus, t.typ == TokenMinus:
		return 5, true
	case t.typ >= TokenSqrt && t.typ <= TokenArctan:
		return 4, true
	}
	return 0, false
}

// Equal reports whether two tokens have the same kind and, for numbers and
// identifiers, the same payload.
func (t Token) Equal(u Token) bool {
	if t.typ != u.typ {
		return false
	}
	switch t.typ {
	case TokenNumber:
		return t.num == u.num
	case TokenIdent:
		return t.ident == u.ident
	}
	return true
}

// text returns the lexeme rendered into expression displays.
func (t Token) text() string {
	switch t.typ {
	case TokenNumber:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case TokenIdent:
		return t.ident
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenAsterisk:
		return "*"
	case TokenSlash:
		return "/"
	case TokenCaret:
		return "^"
	case TokenSqrt:
		return "sqrt"
	case TokenLog:
		return "log"
	case TokenSin:
		return "sin"
	case TokenCos:
		return "cos"
	case TokenTan:
		return "tan"
	case TokenArcsin:
		return "arcsin"
	case TokenArccos:
		return "arccos"
	case TokenArctan:
		return "arctan"
	case TokenAssign:
		return "="
	case TokenLparen:
		return "("
	case TokenRparen:
		return ")"
	}
	return t.typ.String()
}

// String returns the tagged display form of the token, e.g. "<Number 2>".
func (t Token) String() string {
	switch t.typ {
	case TokenNumber:
		return "<Number " + strconv.FormatFloat(t.num, 'g', -1, 64) + ">"
	case TokenIdent:
		return "<Identifier " + t.ident + ">"
	case TokenError:
		return "<Error token>"
	case TokenEOF:
		return "<EOF>"
	case TokenNewline:
		return "<Newline>"
	case TokenPlus:
		return "<Plus>"
	case TokenMinus:
		return "<Minus>"
	case TokenAsterisk:
		return "<Asterisk>"
	case TokenSlash:
		return "<Slash>"
	case TokenCaret:
		return "<Caret>"
	case TokenSqrt:
		return "<Sqrt>"
	case TokenLog:
		return "<Log>"
	case TokenSin:
		return "<Sin>"
	case TokenCos:
		return "<Cos>"
	case TokenTan:
		return "<Tan>"
	case TokenArcsin:
		return "<Arcsin>"
	case TokenArccos:
		return "<Arccos>"
	case TokenArctan:
		return "<Arctan>"
	case TokenAssign:
		return "<Assign>"
	case TokenLparen:
		return "<Left Parenthesis>"
	case TokenRparen:
		return "<Right Parenthesis>"
	default:
		return "<Invalid token type (num " + strconv.Itoa(int(t.typ)) + ")>"
	}
}
