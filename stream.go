package clex

import "github.com/edwingeng/deque"

// TokenStream is the consumable token sequence the parser reads. Its final
// element is always a TokenEOF sentinel; consuming past it yields the
// sentinel again rather than advancing.
type TokenStream struct {
	toks deque.Deque
}

// NewTokenStream takes ownership of a token slice and appends the TokenEOF
// sentinel if the slice does not already end with one.
func NewTokenStream(tokens []Token) *TokenStream {
	d := deque.NewDeque()
	for _, tok := range tokens {
		d.PushBack(tok)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type() != TokenEOF {
		d.PushBack(NewToken(TokenEOF))
	}
	return &TokenStream{toks: d}
}

// AtEnd reports whether only the sentinel remains.
func (s *TokenStream) AtEnd() bool {
	return s.toks.Front().(Token).Type() == TokenEOF
}

// Peek returns the current front token without consuming it.
func (s *TokenStream) Peek() Token {
	return s.toks.Front().(Token)
}

// Next consumes and returns the current front token. At the end of the
// stream it returns the sentinel without consuming it.
func (s *TokenStream) Next() Token {
	if s.AtEnd() {
		return s.toks.Front().(Token)
	}
	return s.toks.PopFront().(Token)
}

// GiveBack pushes a token to the front of the stream, making it the next
// result of Peek and Next.
func (s *TokenStream) GiveBack(tok Token) {
	s.toks.PushFront(tok)
}
