// interpreter.go: tree-walking evaluator and lexical scope environment.
//
// The interpreter implements both visitor contracts with R = Value
// (statements yield Nil). Runtime failures abort the whole run immediately:
// internally they propagate as a panic carrying *RuntimeError, and Interpret
// recovers it at the top and returns it as an ordinary error. Any other panic
// is a bug and is re-raised.
//
// Scope is a stack of frames. The global frame is created with the
// environment and never popped; a block pushes a frame on entry and pops it
// on every exit path, including the error path, so a failed run never leaks
// frames into subsequent runs of the same interpreter (the REPL reuses one
// interpreter across lines).
package wolff

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// Environment is a stack of scope frames, innermost last.
type Environment struct {
	frames []map[string]Value
}

// NewEnvironment creates an environment holding only the global frame.
func NewEnvironment() *Environment {
	return &Environment{frames: []map[string]Value{{}}}
}

// Push enters a new innermost frame.
func (e *Environment) Push() {
	e.frames = append(e.frames, map[string]Value{})
}

// Pop discards the innermost frame. The global frame is never popped.
func (e *Environment) Pop() {
	if len(e.frames) == 1 {
		panic("environment: pop of global frame")
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// Depth returns the number of live frames (1 when only the global remains).
func (e *Environment) Depth() int { return len(e.frames) }

// Define binds name in the innermost frame. Redefining in the same frame
// overwrites; defining a name bound in an outer frame shadows it.
func (e *Environment) Define(name string, v Value) {
	e.frames[len(e.frames)-1][name] = v
}

// Get resolves name from the innermost frame outward.
func (e *Environment) Get(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return Nil, false
}

// Assign rebinds the innermost existing binding of name. It reports false
// when no frame binds the name; assignment never creates a binding.
func (e *Environment) Assign(name string, v Value) bool {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = v
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Interpreter
// ---------------------------------------------------------------------------

// Interpreter executes parsed programs. It is stateful: variables defined by
// one Interpret call remain visible to the next, which is what the REPL
// relies on.
type Interpreter struct {
	env *Environment
	out io.Writer
}

// NewInterpreter creates an interpreter printing to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{env: NewEnvironment(), out: os.Stdout}
}

// SetOutput redirects `print` output, mainly for tests.
func (ip *Interpreter) SetOutput(w io.Writer) { ip.out = w }

// Env exposes the interpreter's environment for inspection.
func (ip *Interpreter) Env() *Environment { return ip.env }

// Interpret executes stmts in order. The first runtime error stops execution
// and is returned; side effects of already executed statements persist.
func (ip *Interpreter) Interpret(stmts []Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	for _, s := range stmts {
		ip.execute(s)
	}
	return nil
}

// rtErr aborts evaluation with a runtime error positioned at tok.
func rtErr(tok Token, format string, args ...any) {
	panic(&RuntimeError{
		Msg:  fmt.Sprintf(format, args...),
		Line: tok.Line,
		Col:  tok.Col,
	})
}

func (ip *Interpreter) execute(s Stmt) { AcceptStmt[Value](s, ip) }

func (ip *Interpreter) evaluate(e Expr) Value { return AcceptExpr[Value](e, ip) }

// --- statements ---

func (ip *Interpreter) VisitBlockStmt(s *BlockStmt) Value {
	ip.env.Push()
	defer ip.env.Pop()
	for _, st := range s.Statements {
		ip.execute(st)
	}
	return Nil
}

func (ip *Interpreter) VisitExpressionStmt(s *ExpressionStmt) Value {
	ip.evaluate(s.Expression)
	return Nil
}

func (ip *Interpreter) VisitIfStmt(s *IfStmt) Value {
	if ip.condition(s.Keyword, s.Condition) {
		ip.execute(s.Then)
	} else if s.Else != nil {
		ip.execute(s.Else)
	}
	return Nil
}

func (ip *Interpreter) VisitWhileStmt(s *WhileStmt) Value {
	for ip.condition(s.Keyword, s.Condition) {
		ip.execute(s.Body)
	}
	return Nil
}

// condition evaluates a control-flow condition, which must be a Bool. This is
// stricter than `!`: no truthiness coercion is applied here.
func (ip *Interpreter) condition(keyword Token, e Expr) bool {
	v := ip.evaluate(e)
	if v.Tag != VTBool {
		rtErr(keyword, "condition must evaluate to a boolean")
	}
	return v.Data.(bool)
}

func (ip *Interpreter) VisitPrintStmt(s *PrintStmt) Value {
	v := ip.evaluate(s.Expression)
	fmt.Fprintln(ip.out, v.Format())
	return Nil
}

func (ip *Interpreter) VisitVarStmt(s *VarStmt) Value {
	v := ip.evaluate(s.Initializer)
	ip.env.Define(s.Name.Lexeme, v)
	return Nil
}

// --- expressions ---

func (ip *Interpreter) VisitAssignExpr(e *AssignExpr) Value {
	v := ip.evaluate(e.Value)
	if !ip.env.Assign(e.Name.Lexeme, v) {
		rtErr(e.Name, "Variable is not defined")
	}
	return v
}

func (ip *Interpreter) VisitVariableExpr(e *VariableExpr) Value {
	v, ok := ip.env.Get(e.Name.Lexeme)
	if !ok {
		rtErr(e.Name, "The variable %s is not defined.", e.Name.Lexeme)
	}
	return v
}

func (ip *Interpreter) VisitLiteralExpr(e *LiteralExpr) Value { return e.Value }

func (ip *Interpreter) VisitGroupingExpr(e *GroupingExpr) Value {
	return ip.evaluate(e.Expression)
}

// VisitUnaryExpr: `!` coerces by truthiness and never fails (Bool negates,
// nil is truthy-false so !nil is true, every other value negates to false);
// `-` requires a Number.
func (ip *Interpreter) VisitUnaryExpr(e *UnaryExpr) Value {
	v := ip.evaluate(e.Right)
	switch e.Operator.Type {
	case BANG:
		switch v.Tag {
		case VTBool:
			return Bool(!v.Data.(bool))
		case VTNil:
			return Bool(true)
		default:
			return Bool(false)
		}
	case MINUS:
		if v.Tag == VTNumber {
			return Number(-v.Data.(float64))
		}
	}
	rtErr(e.Operator, "Illegal use of %s for operand", e.Operator.Lexeme)
	return Nil
}

// VisitLogicalExpr short-circuits on the Bool gate values only: `and` yields
// Bool(false) without touching the right side iff the left side is exactly
// Bool(false), and `or` does the same with Bool(true). Any other left value,
// nil and numbers included, defers to the right side, whose value is returned
// verbatim.
func (ip *Interpreter) VisitLogicalExpr(e *LogicalExpr) Value {
	left := ip.evaluate(e.Left)
	switch e.Operator.Lexeme {
	case "and":
		if left.Tag == VTBool && !left.Data.(bool) {
			return Bool(false)
		}
	case "or":
		if left.Tag == VTBool && left.Data.(bool) {
			return Bool(true)
		}
	}
	return ip.evaluate(e.Right)
}

func (ip *Interpreter) VisitBinaryExpr(e *BinaryExpr) Value {
	left := ip.evaluate(e.Left)
	right := ip.evaluate(e.Right)

	bothNumbers := left.Tag == VTNumber && right.Tag == VTNumber
	bothText := left.Tag == VTText && right.Tag == VTText

	switch e.Operator.Type {
	case MINUS:
		if bothNumbers {
			return Number(left.Data.(float64) - right.Data.(float64))
		}
	case DIV:
		if bothNumbers {
			return Number(left.Data.(float64) / right.Data.(float64))
		}
	case PLUS:
		if bothNumbers {
			return Number(left.Data.(float64) + right.Data.(float64))
		}
		if bothText {
			return Text(left.Data.(string) + right.Data.(string))
		}
	case MULT:
		if bothNumbers {
			return Number(left.Data.(float64) * right.Data.(float64))
		}
		// Number on the left repeats the text on the right; the count
		// truncates toward zero and negative counts yield "".
		if left.Tag == VTNumber && right.Tag == VTText {
			n := int(left.Data.(float64))
			if n < 0 {
				n = 0
			}
			return Text(strings.Repeat(right.Data.(string), n))
		}
	case GREATER:
		if bothNumbers {
			return Bool(left.Data.(float64) > right.Data.(float64))
		}
		if bothText {
			return Bool(left.Data.(string) > right.Data.(string))
		}
	case GREATER_EQ:
		if bothNumbers {
			return Bool(left.Data.(float64) >= right.Data.(float64))
		}
		if bothText {
			return Bool(left.Data.(string) >= right.Data.(string))
		}
	case LESS:
		if bothNumbers {
			return Bool(left.Data.(float64) < right.Data.(float64))
		}
		if bothText {
			return Bool(left.Data.(string) < right.Data.(string))
		}
	case LESS_EQ:
		if bothNumbers {
			return Bool(left.Data.(float64) <= right.Data.(float64))
		}
		if bothText {
			return Bool(left.Data.(string) <= right.Data.(string))
		}
	case EQ:
		return Bool(left.Equal(right))
	case NEQ:
		return Bool(!left.Equal(right))
	}
	rtErr(e.Operator, "Illegal use of %s between operands", e.Operator.Lexeme)
	return Nil
}
