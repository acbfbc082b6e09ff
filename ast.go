// ast.go: the closed expression/statement node sets, the visitor contract,
// and the runtime value model.
//
// Expr and Stmt are deliberately closed: the node kinds are fixed and every
// traversal must handle all of them. The visitor interfaces carry one method
// per node kind and AcceptExpr/AcceptStmt perform the dispatch with an
// exhaustive type switch, so adding a node kind fails loudly in every
// visitor. Two realizations exist: AstPrinter (printer.go) and the
// Interpreter (interpreter.go).
//
// AST nodes are produced once per parse and read-only afterwards. Nodes keep
// the token they were built from (operator, keyword, or name) so runtime
// errors can report real source positions.
package wolff

import (
	"fmt"
	"strconv"
)

// ---------------------------------------------------------------------------
// Runtime values
// ---------------------------------------------------------------------------

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTNil    ValueTag = iota // nil (no payload); the zero Value
	VTNumber                 // float64
	VTText                   // string
	VTBool                   // bool
)

// Value is the universal runtime carrier. Values are copied by value between
// scope frames; there are no reference semantics.
type Value struct {
	Tag  ValueTag
	Data any
}

// Nil is the singleton nil Value.
var Nil = Value{Tag: VTNil}

func Number(f float64) Value { return Value{Tag: VTNumber, Data: f} }
func Text(s string) Value    { return Value{Tag: VTText, Data: s} }
func Bool(b bool) Value      { return Value{Tag: VTBool, Data: b} }

// Equal reports structural equality. Mismatched tags are simply unequal;
// no coercion is ever applied.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNil:
		return true
	case VTNumber:
		return v.Data.(float64) == o.Data.(float64)
	case VTText:
		return v.Data.(string) == o.Data.(string)
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	default:
		return false
	}
}

// Format renders the canonical text form used by `print`: numbers as their
// minimal decimal string, text as-is, booleans as true/false, nil as "nil".
func (v Value) Format() string {
	switch v.Tag {
	case VTNumber:
		return strconv.FormatFloat(v.Data.(float64), 'f', -1, 64)
	case VTText:
		return v.Data.(string)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	default:
		return "nil"
	}
}

// String renders a debug representation; text is quoted, unlike Format.
func (v Value) String() string {
	if v.Tag == VTText {
		return fmt.Sprintf("%q", v.Data.(string))
	}
	return v.Format()
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Expr is the closed set of expression nodes.
type Expr interface{ exprNode() }

type AssignExpr struct {
	Name  Token // the assigned identifier
	Value Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type LogicalExpr struct {
	Left     Expr
	Operator Token // KEYWORD "and" or "or"
	Right    Expr
}

type GroupingExpr struct {
	Expression Expr
}

type UnaryExpr struct {
	Operator Token // BANG or MINUS
	Right    Expr
}

type LiteralExpr struct {
	Value Value
}

type VariableExpr struct {
	Name Token
}

func (*AssignExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}

// ExprVisitor has one method per expression kind.
type ExprVisitor[R any] interface {
	VisitAssignExpr(e *AssignExpr) R
	VisitBinaryExpr(e *BinaryExpr) R
	VisitLogicalExpr(e *LogicalExpr) R
	VisitGroupingExpr(e *GroupingExpr) R
	VisitUnaryExpr(e *UnaryExpr) R
	VisitLiteralExpr(e *LiteralExpr) R
	VisitVariableExpr(e *VariableExpr) R
}

// AcceptExpr dispatches e to the matching visitor method.
func AcceptExpr[R any](e Expr, v ExprVisitor[R]) R {
	switch n := e.(type) {
	case *AssignExpr:
		return v.VisitAssignExpr(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *LogicalExpr:
		return v.VisitLogicalExpr(n)
	case *GroupingExpr:
		return v.VisitGroupingExpr(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *LiteralExpr:
		return v.VisitLiteralExpr(n)
	case *VariableExpr:
		return v.VisitVariableExpr(n)
	}
	panic(fmt.Sprintf("unknown expression node %T", e))
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// Stmt is the closed set of statement nodes.
type Stmt interface{ stmtNode() }

type BlockStmt struct {
	Statements []Stmt
}

type ExpressionStmt struct {
	Expression Expr
}

type IfStmt struct {
	Keyword   Token // the "if" keyword, for condition diagnostics
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when there is no else branch
}

type WhileStmt struct {
	Keyword   Token // the "while" keyword
	Condition Expr
	Body      Stmt
}

type PrintStmt struct {
	Expression Expr
}

type VarStmt struct {
	Name        Token
	Initializer Expr // mandatory; the grammar has no uninitialized form
}

func (*BlockStmt) stmtNode()      {}
func (*ExpressionStmt) stmtNode() {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}

// StmtVisitor has one method per statement kind.
type StmtVisitor[R any] interface {
	VisitBlockStmt(s *BlockStmt) R
	VisitExpressionStmt(s *ExpressionStmt) R
	VisitIfStmt(s *IfStmt) R
	VisitWhileStmt(s *WhileStmt) R
	VisitPrintStmt(s *PrintStmt) R
	VisitVarStmt(s *VarStmt) R
}

// AcceptStmt dispatches s to the matching visitor method.
func AcceptStmt[R any](s Stmt, v StmtVisitor[R]) R {
	switch n := s.(type) {
	case *BlockStmt:
		return v.VisitBlockStmt(n)
	case *ExpressionStmt:
		return v.VisitExpressionStmt(n)
	case *IfStmt:
		return v.VisitIfStmt(n)
	case *WhileStmt:
		return v.VisitWhileStmt(n)
	case *PrintStmt:
		return v.VisitPrintStmt(n)
	case *VarStmt:
		return v.VisitVarStmt(n)
	}
	panic(fmt.Sprintf("unknown statement node %T", s))
}
