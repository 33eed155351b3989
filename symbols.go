package clex

import "math"

// EulerMascheroni is the γ constant, which package math does not define.
const EulerMascheroni = 0.57721566490153286060

// SymbolTable maps variable names to values. A fresh table is seeded with
// the predefined mathematical constants; user assignments may overwrite
// them.
type SymbolTable struct {
	vars map[string]float64
}

func defaultVars() map[string]float64 {
	return map[string]float64{
		"pi":              math.Pi,
		"euler":           math.E,
		"phi":             math.Phi,
		"eulerMascheroni": EulerMascheroni,
	}
}

// NewSymbolTable returns a table containing only the predefined constants.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: defaultVars()}
}

// FromMap merges the caller's definitions with the predefined constants.
// The caller's entries win on collision, so a definition of pi shadows the
// constant.
func FromMap(m map[string]float64) *SymbolTable {
	t := NewSymbolTable()
	for name, val := range m {
		t.vars[name] = val
	}
	return t
}

// Get returns the value bound to the identifier token's name. The second
// result is false for unknown names. Panics if ident is not an identifier
// token; callers must ensure the kind.
func (t *SymbolTable) Get(ident Token) (float64, bool) {
	name, ok := ident.Ident()
	if !ok {
		panic("clex: SymbolTable.Get on non-identifier token: " + ident.String())
	}
	val, ok := t.vars[name]
	return val, ok
}

// Set binds the identifier token's name to value, creating or overwriting.
// Panics if ident is not an identifier token.
func (t *SymbolTable) Set(ident Token, value float64) {
	name, ok := ident.Ident()
	if !ok {
		panic("clex: SymbolTable.Set on non-identifier token: " + ident.String())
	}
	t.vars[name] = value
}

// Reset returns the table to its default-seeded state, dropping every
// user-defined entry.
func (t *SymbolTable) Reset() {
	t.vars = defaultVars()
}
