// errors.go: structured error values and caret-snippet rendering.
//
// Three disjoint error kinds flow out of the pipeline:
//
//   - *LexError: invalid token (unterminated string, invalid operator
//     run, illegal character). Carries the offending source line text.
//   - *ParseError: unexpected/missing token, invalid assignment target.
//   - *RuntimeError: type mismatch, undefined variable, non-boolean
//     control-flow condition.
//
// None of the pipeline stages print; they return these values and a
// presenter decides how to render them. WrapErrorWithSource upgrades any of
// the three into a multi-line snippet with a caret under the offending
// column:
//
//	PARSE ERROR at 3:12: Expected ')' after expression.
//
//	   2 | var x = (1 + 2
//	   3 |            ;
//	     |            ^
//	   4 | print x;
//
// All line/column coordinates are 1-based.
package wolff

import (
	"fmt"
	"strings"
)

// LexError is an invalid-token diagnostic. LineText is the full source line
// containing the offending position.
type LexError struct {
	Msg      string
	LineText string
	Line     int
	Col      int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError is a syntactic diagnostic produced by the parser.
type ParseError struct {
	Msg  string
	Line int
	Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// RuntimeError is an execution-time failure. The first one halts the run.
type RuntimeError struct {
	Msg  string
	Line int
	Col  int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of src when err is one of the pipeline's error kinds; any other
// error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettyErrorString(src, "LEXICAL ERROR", e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorString(src, "PARSE ERROR", e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", prettyErrorString(src, "RUNTIME ERROR", e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// prettyErrorString builds the header + context + caret snippet. Coordinates
// are clamped to the source bounds so rendering never panics on short input.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
