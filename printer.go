// printer.go: canonical S-expression printer for the AST.
//
// The printed form is independent of evaluation and stable, so tests can
// assert on it: binary/logical operators print with their TokenType name as
// the head, e.g. `1 + 2 * 3` prints as "(Plus 1 (Star 2 3))".
package wolff

import (
	"fmt"
	"strings"
)

// AstPrinter renders expressions and statements in a fixed parenthesized
// form. It implements both visitor contracts with R = string.
type AstPrinter struct{}

// PrintExpr returns the canonical form of a single expression.
func (p *AstPrinter) PrintExpr(e Expr) string { return AcceptExpr[string](e, p) }

// PrintStmt returns the canonical form of a single statement.
func (p *AstPrinter) PrintStmt(s Stmt) string { return AcceptStmt[string](s, p) }

// PrintProgram renders a statement list, one statement per line.
func (p *AstPrinter) PrintProgram(stmts []Stmt) string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, p.PrintStmt(s))
	}
	return strings.Join(lines, "\n")
}

// --- expressions ---

func (p *AstPrinter) VisitAssignExpr(e *AssignExpr) string {
	return fmt.Sprintf("(assign %s %s)", e.Name.Lexeme, p.PrintExpr(e.Value))
}

func (p *AstPrinter) VisitBinaryExpr(e *BinaryExpr) string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Type, p.PrintExpr(e.Left), p.PrintExpr(e.Right))
}

func (p *AstPrinter) VisitLogicalExpr(e *LogicalExpr) string {
	return fmt.Sprintf("(%s %s %s)", e.Operator.Lexeme, p.PrintExpr(e.Left), p.PrintExpr(e.Right))
}

func (p *AstPrinter) VisitGroupingExpr(e *GroupingExpr) string {
	return fmt.Sprintf("(group %s)", p.PrintExpr(e.Expression))
}

func (p *AstPrinter) VisitUnaryExpr(e *UnaryExpr) string {
	return fmt.Sprintf("(%s %s)", e.Operator.Lexeme, p.PrintExpr(e.Right))
}

func (p *AstPrinter) VisitLiteralExpr(e *LiteralExpr) string {
	// Text prints quoted here, unlike the `print` statement's output form.
	return e.Value.String()
}

func (p *AstPrinter) VisitVariableExpr(e *VariableExpr) string {
	return e.Name.Lexeme
}

// --- statements ---

func (p *AstPrinter) VisitBlockStmt(s *BlockStmt) string {
	parts := make([]string, 0, len(s.Statements)+1)
	parts = append(parts, "block")
	for _, st := range s.Statements {
		parts = append(parts, p.PrintStmt(st))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (p *AstPrinter) VisitExpressionStmt(s *ExpressionStmt) string {
	return fmt.Sprintf("(expr_stmt %s)", p.PrintExpr(s.Expression))
}

func (p *AstPrinter) VisitIfStmt(s *IfStmt) string {
	if s.Else != nil {
		return fmt.Sprintf("(if %s %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Then), p.PrintStmt(s.Else))
	}
	return fmt.Sprintf("(if %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Then))
}

func (p *AstPrinter) VisitWhileStmt(s *WhileStmt) string {
	return fmt.Sprintf("(while %s %s)", p.PrintExpr(s.Condition), p.PrintStmt(s.Body))
}

func (p *AstPrinter) VisitPrintStmt(s *PrintStmt) string {
	return fmt.Sprintf("(print_stmt %s)", p.PrintExpr(s.Expression))
}

func (p *AstPrinter) VisitVarStmt(s *VarStmt) string {
	return fmt.Sprintf("(declare %s %s)", s.Name.Lexeme, p.PrintExpr(s.Initializer))
}
