// Package clex implements the front end and semantics of an interactive
// arithmetic calculator: a scanner and Pratt parser for real-valued scalar
// expressions with variables and a small fixed set of unary functions, a
// typed syntax tree with deep cloning, and a tree-walking evaluator over a
// symbol table seeded with mathematical constants.
//
// Statements are parsed one per line and are either expressions, whose
// value is returned, or assignments, which bind a variable in the table.
// Failures surface as two typed error families: ParseError for syntactic
// faults citing the offending token, and EvalError for semantic faults
// owning a clone of the offending subtree.
package clex
