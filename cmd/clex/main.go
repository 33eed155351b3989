package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/clexlang/clex"
)

const historyFile = ".clex_history"

const banner = `==========================================
=   CALCULADORA CLEX                     =
=   Escribe 'exit' o 'quit' para salir   =
==========================================`

var errColor = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	given := map[string]float64{}
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return fmt.Errorf("setting %s: %v", strings.TrimSpace(d[0]), err)
		}
		given[strings.TrimSpace(d[0])] = v
		return nil
	}
	flag.Func("given", "name=value variable definition (any number of times)", addGiven)
	flag.Parse()

	symbols := clex.FromMap(given)

	if flag.NArg() > 0 {
		// Non-interactive: each argument is one statement against the same
		// table.
		for _, arg := range flag.Args() {
			if !runLine(arg, symbols) {
				os.Exit(1)
			}
		}
		return
	}
	os.Exit(repl(symbols))
}

func repl(symbols *clex.SymbolTable) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt("Introduce la sentencia > ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			log.Println(err)
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			fmt.Println("Saliendo...")
			return 0
		}

		runLine(line, symbols)
		ln.AppendHistory(line)
	}
}

// runLine tokenizes, parses and executes one statement, printing either the
// result or a diagnostic. It reports whether the statement succeeded.
func runLine(line string, symbols *clex.SymbolTable) bool {
	toks := clex.Tokenize(line)
	for _, tok := range toks {
		if tok.Type() == clex.TokenError {
			errColor.Fprintln(os.Stderr, "invalid input: the line contains unrecognizable tokens")
			return false
		}
	}

	parser := clex.NewParser(toks)
	stmt, err := parser.ParseNextStatement()
	if err != nil {
		printDiag(err)
		return false
	}

	if stmt.IsExpression() {
		result, err := stmt.Expression().Evaluate(symbols)
		if err != nil {
			printDiag(err)
			return false
		}
		fmt.Println("Resultado: " + strconv.FormatFloat(result, 'g', -1, 64))
		return true
	}

	assign := stmt.Assignment()
	if err := assign.Execute(symbols); err != nil {
		printDiag(err)
		return false
	}
	name, _ := assign.Var().Ident()
	fmt.Printf("Variable '%s' guardada correctamente.\n", name)
	return true
}

// diagnostic is the tagged-form surface shared by both error families.
type diagnostic interface {
	error
	PrintTo(w io.Writer)
}

func printDiag(err error) {
	var d diagnostic
	if errors.As(err, &d) {
		var b strings.Builder
		d.PrintTo(&b)
		errColor.Fprint(os.Stderr, b.String())
		return
	}
	errColor.Fprintln(os.Stderr, err)
}
