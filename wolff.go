// wolff.go: the front door. Wires lexer, parser and interpreter into the
// scan/parse/execute pipeline with the all-or-nothing gates between stages:
// any lexical error discards the whole token sequence, and any parse error
// prevents execution of every statement, including the well-formed ones.
package wolff

import (
	"errors"
	"io"
)

// Version is the interpreter version reported by the CLI.
const Version = "0.1.0"

// RunSource scans, parses and executes src with a fresh interpreter printing
// to out. The returned error joins every diagnostic of the first failing
// stage, each rendered as a caret-annotated source snippet.
func RunSource(src string, out io.Writer) error {
	ip := NewInterpreter()
	ip.SetOutput(out)
	return ip.RunSource(src)
}

// RunSource executes src against the interpreter's existing environment, so
// consecutive calls share global state. Used by the REPL.
func (ip *Interpreter) RunSource(src string) error {
	stmts, errs := compile(src)
	if errs != nil {
		return errs
	}
	if err := ip.Interpret(stmts); err != nil {
		return WrapErrorWithSource(err, src)
	}
	return nil
}

// Check scans and parses src without executing it and returns every
// diagnostic found, in source order. An empty result means src is runnable.
func Check(src string) []error {
	_, err := compile(src)
	if err == nil {
		return nil
	}
	// compile joins with errors.Join; unwrap back into the individual
	// diagnostics for callers that want to count or filter them.
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// compile runs the static half of the pipeline. On any lexical error the
// token sequence is discarded and the parser never runs.
func compile(src string) ([]Stmt, error) {
	tokens, lexErrs := NewLexer(src).Scan()
	if len(lexErrs) > 0 {
		joined := make([]error, 0, len(lexErrs))
		for _, e := range lexErrs {
			joined = append(joined, WrapErrorWithSource(e, src))
		}
		return nil, errors.Join(joined...)
	}

	stmts, parseErrs := NewParser(tokens).Parse()
	if len(parseErrs) > 0 {
		joined := make([]error, 0, len(parseErrs))
		for _, e := range parseErrs {
			joined = append(joined, WrapErrorWithSource(e, src))
		}
		return nil, errors.Join(joined...)
	}
	return stmts, nil
}
