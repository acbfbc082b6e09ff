// parser_test.go
package wolff

import (
	"strings"
	"testing"
)

func parse(t *testing.T, src string) []Stmt {
	t.Helper()
	tokens, lexErrs := NewLexer(src).Scan()
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors for %q: %v", src, lexErrs)
	}
	stmts, errs := NewParser(tokens).Parse()
	if len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	return stmts
}

func parseErrs(t *testing.T, src string) []*ParseError {
	t.Helper()
	tokens, lexErrs := NewLexer(src).Scan()
	if len(lexErrs) > 0 {
		t.Fatalf("lex errors for %q: %v", src, lexErrs)
	}
	_, errs := NewParser(tokens).Parse()
	if len(errs) == 0 {
		t.Fatalf("expected parse errors for %q", src)
	}
	return errs
}

func wantProgram(t *testing.T, src, want string) {
	t.Helper()
	got := (&AstPrinter{}).PrintProgram(parse(t, src))
	if got != want {
		t.Fatalf("\nsource:\n%s\nwant:\n%s\ngot:\n%s\n", src, want, got)
	}
}

func Test_Parser_Precedence(t *testing.T) {
	wantProgram(t, "1 + 2 * 3;", "(expr_stmt (Plus 1 (Star 2 3)))")
	wantProgram(t, "1 * 2 + 3;", "(expr_stmt (Plus (Star 1 2) 3))")
	wantProgram(t, "1 + 2 < 3 + 4;", "(expr_stmt (Less (Plus 1 2) (Plus 3 4)))")
	wantProgram(t, "1 < 2 == true;", "(expr_stmt (EqualEqual (Less 1 2) true))")
}

func Test_Parser_GroupingOverridesPrecedence(t *testing.T) {
	wantProgram(t, "(1 + 2) * 3;", "(expr_stmt (Star (group (Plus 1 2)) 3))")
}

func Test_Parser_UnaryNestsRightward(t *testing.T) {
	// Adjacent unary operators must be separated: "!!" and "--" lex as
	// single invalid operator runs.
	wantProgram(t, "! ! x;", "(expr_stmt (! (! x)))")
	wantProgram(t, "- - 1;", "(expr_stmt (- (- 1)))")
	wantProgram(t, "!(!x);", "(expr_stmt (! (group (! x))))")
}

func Test_Parser_TermAndFactorAreLeftAssociative(t *testing.T) {
	wantProgram(t, "1 - 2 - 3;", "(expr_stmt (Minus (Minus 1 2) 3))")
	wantProgram(t, "8 / 4 / 2;", "(expr_stmt (Slash (Slash 8 4) 2))")
}

func Test_Parser_AssignmentIsRightAssociative(t *testing.T) {
	wantProgram(t, "a = b = 1;", "(expr_stmt (assign a (assign b 1)))")
}

func Test_Parser_LogicalPrecedence(t *testing.T) {
	// or binds looser than and.
	wantProgram(t, "a or b and c;", "(expr_stmt (or a (and b c)))")
}

func Test_Parser_VarDeclaration(t *testing.T) {
	wantProgram(t, `var msg = "hi";`, `(declare msg "hi")`)
}

func Test_Parser_IfWithBareCondition(t *testing.T) {
	wantProgram(t, "if x print 1;", "(if x (print_stmt 1))")
	wantProgram(t, "if x print 1; else print 2;",
		"(if x (print_stmt 1) (print_stmt 2))")
	// A parenthesized condition is just a grouping.
	wantProgram(t, "if (x) print 1;", "(if (group x) (print_stmt 1))")
}

func Test_Parser_DanglingElseBindsToNearestIf(t *testing.T) {
	wantProgram(t, "if a if b print 1; else print 2;",
		"(if a (if b (print_stmt 1) (print_stmt 2)))")
}

func Test_Parser_While(t *testing.T) {
	wantProgram(t, "while x < 3 x = x + 1;",
		"(while (Less x 3) (expr_stmt (assign x (Plus x 1))))")
}

func Test_Parser_Block(t *testing.T) {
	wantProgram(t, "{ var a = 1; print a; }",
		"(block (declare a 1) (print_stmt a))")
}

func Test_Parser_NilTrueFalseLiterals(t *testing.T) {
	wantProgram(t, "print nil;", "(print_stmt nil)")
	wantProgram(t, "print true;", "(print_stmt true)")
	wantProgram(t, "print false;", "(print_stmt false)")
}

// --- error cases ---

func wantOneParseError(t *testing.T, src, wantMsg string) *ParseError {
	t.Helper()
	errs := parseErrs(t, src)
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Msg != wantMsg {
		t.Fatalf("want message %q, got %q", wantMsg, errs[0].Msg)
	}
	return errs[0]
}

func Test_Parser_VarRequiresInitializer(t *testing.T) {
	wantOneParseError(t, "var x;", "Variable can't be declared but not initialized")
}

func Test_Parser_VarRequiresName(t *testing.T) {
	wantOneParseError(t, "var = 1;", "Expected variable name")
}

func Test_Parser_VarRequiresSemicolon(t *testing.T) {
	wantOneParseError(t, "var x = 1", "Expected semicolon after declaration")
}

func Test_Parser_InvalidAssignmentTarget(t *testing.T) {
	e := wantOneParseError(t, "1 + 2 = 3;", "Invalid l-value for assignment")
	// Reported at the '=' token.
	if e.Line != 1 || e.Col != 7 {
		t.Fatalf("want position 1:7, got %d:%d", e.Line, e.Col)
	}
}

func Test_Parser_MissingClosingParen(t *testing.T) {
	wantOneParseError(t, "print (1 + 2;", "Expected ')' after expression.")
}

func Test_Parser_MissingClosingBrace(t *testing.T) {
	wantOneParseError(t, "{ print 1;", "Expected '}' after a block")
}

func Test_Parser_MissingExpression(t *testing.T) {
	wantOneParseError(t, "print ;", "Expected expression")
}

func Test_Parser_RecoversAndReportsMultipleErrors(t *testing.T) {
	// Line 1 misses its initializer, line 3 its name; lines 2 and 4 are fine.
	src := strings.Join([]string{
		"var x;",
		"print 1;",
		"var = 2;",
		"var ok = 3;",
	}, "\n")
	tokens, _ := NewLexer(src).Scan()
	stmts, errs := NewParser(tokens).Parse()

	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Msg != "Variable can't be declared but not initialized" {
		t.Fatalf("first error: %q", errs[0].Msg)
	}
	if errs[1].Msg != "Expected variable name" {
		t.Fatalf("second error: %q", errs[1].Msg)
	}
	// The well-formed statements were still parsed.
	if len(stmts) != 2 {
		t.Fatalf("want 2 recovered statements, got %d", len(stmts))
	}
}

func Test_Parser_SynchronizesAtKeyword(t *testing.T) {
	// Missing semicolon, stray token, then a fresh declaration. Recovery
	// must stop right before the 'var' keyword so the declaration parses.
	src := "print 1 2\nvar ok = 3;"
	tokens, _ := NewLexer(src).Scan()
	stmts, errs := NewParser(tokens).Parse()
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %d: %v", len(errs), errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("want the declaration recovered, got %d statements", len(stmts))
	}
	if got := (&AstPrinter{}).PrintStmt(stmts[0]); got != "(declare ok 3)" {
		t.Fatalf("recovered statement: %s", got)
	}
}
