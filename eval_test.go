package clex_test

import (
	"math"
	"strings"
	"testing"

	"github.com/clexlang/clex"
)

func parseStatement(t *testing.T, src string) clex.Statement {
	t.Helper()
	stmt, err := clex.NewParser(clex.Tokenize(src)).ParseNextStatement()
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	return stmt
}

func evalString(t *testing.T, src string, vars map[string]float64) (float64, error) {
	t.Helper()
	stmt := parseStatement(t, src)
	if !stmt.IsExpression() {
		t.Fatalf("%q parsed as an assignment", src)
	}
	return stmt.Expression().Evaluate(clex.FromMap(vars))
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[string]float64
		want float64
	}{
		{"add", "2 + 2", nil, 4},
		{"chain", "1 + 2 + 3 + 4 + 5", nil, 15},
		{"compound", "(3 + 4) * 5 - 6 / 2^2", nil, 33.5},
		{"vars", "(a + 1 - b * c) / d", map[string]float64{"a": 7, "b": 3, "c": 2, "d": 0.5}, 4},
		{"signs", "+-(2 - -2)*+3", nil, -12},
		{"neg-pow", "-2^2", nil, -4},
		{"pow-right", "2^3^2", nil, 512},
		{"pi", "pi", nil, math.Pi},
		{"euler", "euler", nil, math.E},
		{"phi", "phi", nil, math.Phi},
		{"two-pi", "2 * pi", nil, 2 * math.Pi},
		{"sqrt", "sqrt 4", nil, 2},
		{"sqrt-paren", "sqrt(2 + 2)", nil, 2},
		{"log", "log euler", nil, 1},
		{"sin", "sin 0", nil, 0},
		{"cos", "cos 0", nil, 1},
		{"tan", "tan 0", nil, 0},
		{"arcsin", "arcsin 1", nil, math.Pi / 2},
		{"arccos", "arccos 1", nil, 0},
		{"arctan", "arctan 0", nil, 0},
		{"shadowed-constant", "pi + 1", map[string]float64{"pi": 3}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := evalString(t, c.src, c.vars)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if math.Abs(got-c.want) > 1e-12 {
				t.Errorf("%q = %g, want %g", c.src, got, c.want)
			}
		})
	}
}

func TestEvalDeterministic(t *testing.T) {
	stmt := parseStatement(t, "(a + 1 - b * c) / d ^ 2")
	symbols := clex.FromMap(map[string]float64{"a": 7, "b": 3, "c": 2, "d": 0.5})
	first, err := stmt.Expression().Evaluate(symbols)
	if err != nil {
		t.Fatal("failed to evaluate:", err)
	}
	for i := 0; i < 3; i++ {
		again, err := stmt.Expression().Evaluate(symbols)
		if err != nil {
			t.Fatal("failed to re-evaluate:", err)
		}
		if again != first {
			t.Errorf("re-evaluation %d = %g, want %g", i, again, first)
		}
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, err := evalString(t, "(1 + a * b) / c", map[string]float64{"a": 5, "b": 2})
	ue, ok := err.(*clex.UndefinedVariableError)
	if !ok {
		t.Fatalf("got %T (%v), want *UndefinedVariableError", err, err)
	}
	if got := ue.ProblemExpr().String(); got != "c" {
		t.Errorf("problem expression = %s, want c", got)
	}
	if !strings.Contains(ue.Error(), "\"c\"") {
		t.Errorf("%q does not name the variable", ue.Error())
	}
}

func TestLeftSubtreeErrorReportedFirst(t *testing.T) {
	// Both sides are faulty; the left one is cited.
	_, err := evalString(t, "x + y", nil)
	ue, ok := err.(*clex.UndefinedVariableError)
	if !ok {
		t.Fatalf("got %T (%v), want *UndefinedVariableError", err, err)
	}
	if got := ue.ProblemExpr().String(); got != "x" {
		t.Errorf("problem expression = %s, want x", got)
	}
}

func TestDivideByZero(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		problem string
	}{
		{"computed-zero", "1 / (1 - 1)", "(1 / (1 - 1))"},
		{"literal-zero", "3 / 0", "(3 / 0)"},
		{"negative-zero", "3 / -0", "(3 / -(0))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := evalString(t, c.src, nil)
			de, ok := err.(*clex.DivideByZeroError)
			if !ok {
				t.Fatalf("%q gave %T (%v), want *DivideByZeroError", c.src, err, err)
			}
			if got := de.ProblemExpr().String(); got != c.problem {
				t.Errorf("problem expression = %s, want %s", got, c.problem)
			}
		})
	}
}

func TestComplexResult(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"neg-pow-half", "(0 - 1) ^ 0.5"},
		{"sqrt-negative", "sqrt(0 - 4)"},
		{"log-zero", "log 0"},
		{"log-negative", "log(0 - 1)"},
		{"arcsin-oob", "arcsin 2"},
		{"arccos-oob", "arccos(0 - 2)"},
		{"inf-minus-inf", "10^400 - 10^400"},
		{"zero-times-inf", "0 * 10^400"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := evalString(t, c.src, nil)
			if _, ok := err.(*clex.ComplexResultError); !ok {
				t.Fatalf("%q gave %T (%v), want *ComplexResultError", c.src, err, err)
			}
		})
	}
}

func TestInfinityPropagates(t *testing.T) {
	got, err := evalString(t, "10^400 + 1", nil)
	if err != nil {
		t.Fatal("failed to evaluate:", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("got %g, want +Inf", got)
	}
}

func TestAssignmentExecute(t *testing.T) {
	symbols := clex.FromMap(map[string]float64{"b": 3})
	stmt := parseStatement(t, "a = 2 + 2 * b")
	if err := stmt.Assignment().Execute(symbols); err != nil {
		t.Fatal("failed to execute:", err)
	}
	if got, ok := symbols.Get(clex.IdentToken("a")); !ok || got != 8 {
		t.Errorf("a = %g, %t after execution, want 8, true", got, ok)
	}
}

func TestAssignmentAllOrNothing(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"divide-by-zero", "a = 3 / (1 - 1)"},
		{"complex", "a = (0 - 1) ^ 0.5"},
		{"undefined", "a = zzz + 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			symbols := clex.NewSymbolTable()
			stmt := parseStatement(t, c.src)
			if err := stmt.Assignment().Execute(symbols); err == nil {
				t.Fatalf("%q executed without error", c.src)
			}
			if _, ok := symbols.Get(clex.IdentToken("a")); ok {
				t.Errorf("%q bound a despite the error", c.src)
			}
		})
	}
}

func TestAssignmentStoresInfinity(t *testing.T) {
	symbols := clex.NewSymbolTable()
	stmt := parseStatement(t, "a = 10^400")
	if err := stmt.Assignment().Execute(symbols); err != nil {
		t.Fatal("failed to execute:", err)
	}
	if got, _ := symbols.Get(clex.IdentToken("a")); !math.IsInf(got, 1) {
		t.Errorf("a = %g, want +Inf", got)
	}
}

func TestErrorPrintTo(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[string]float64
		tag  string
	}{
		{"undefined", "c + 1", nil, "<UNDEFINED VARIABLE>"},
		{"divide", "1 / (1 - 1)", nil, "<DIVIDE BY ZERO>"},
		{"complex", "(0 - 1) ^ 0.5", nil, "<COMPLEX RESULT>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := evalString(t, c.src, c.vars)
			ee, ok := err.(clex.EvalError)
			if !ok {
				t.Fatalf("%q gave %T, which is not an EvalError", c.src, err)
			}
			var b strings.Builder
			ee.PrintTo(&b)
			if !strings.HasPrefix(b.String(), c.tag+" ") {
				t.Errorf("diagnostic %q does not start with %q", b.String(), c.tag)
			}
			if !strings.HasSuffix(b.String(), "\n") {
				t.Errorf("diagnostic %q does not end with a newline", b.String())
			}
		})
	}
}

func TestParseErrorPrintTo(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tag  string
	}{
		{"expected-token", "5 + 3 * a - ^ (2", "<INVALID TOKEN>"},
		{"expected-operator", "2 3", "<EXPECTED OPERATOR>"},
		{"mismatched", "(2", "<MISMATCHED PARENTHESES>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := clex.NewParser(clex.Tokenize(c.src)).ParseNextStatement()
			pe, ok := err.(clex.ParseError)
			if !ok {
				t.Fatalf("%q gave %T, which is not a ParseError", c.src, err)
			}
			var b strings.Builder
			pe.PrintTo(&b)
			if !strings.HasPrefix(b.String(), c.tag+" ") {
				t.Errorf("diagnostic %q does not start with %q", b.String(), c.tag)
			}
		})
	}
}
