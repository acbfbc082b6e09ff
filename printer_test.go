// printer_test.go
package wolff

import "testing"

func printExpr(t *testing.T, src string) string {
	t.Helper()
	stmts := parse(t, src)
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	es, ok := stmts[0].(*ExpressionStmt)
	if !ok {
		t.Fatalf("want expression statement, got %T", stmts[0])
	}
	return (&AstPrinter{}).PrintExpr(es.Expression)
}

func Test_Printer_BinaryUsesTokenTypeNames(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3;": "(Plus 1 (Star 2 3))",
		"1 - 2;":     "(Minus 1 2)",
		"1 / 2;":     "(Slash 1 2)",
		"1 == 2;":    "(EqualEqual 1 2)",
		"1 != 2;":    "(BangEqual 1 2)",
		"1 >= 2;":    "(GreaterEqual 1 2)",
		"1 <= 2;":    "(LessEqual 1 2)",
	}
	for src, want := range cases {
		if got := printExpr(t, src); got != want {
			t.Fatalf("%s: want %s, got %s", src, want, got)
		}
	}
}

func Test_Printer_UnaryAndLogicalUseLexemes(t *testing.T) {
	if got := printExpr(t, "!x;"); got != "(! x)" {
		t.Fatalf("got %s", got)
	}
	if got := printExpr(t, "-1;"); got != "(- 1)" {
		t.Fatalf("got %s", got)
	}
	if got := printExpr(t, "a and b or c;"); got != "(or (and a b) c)" {
		t.Fatalf("got %s", got)
	}
}

func Test_Printer_TextLiteralsAreQuoted(t *testing.T) {
	if got := printExpr(t, `"hi" + "ho";`); got != `(Plus "hi" "ho")` {
		t.Fatalf("got %s", got)
	}
}

func Test_Printer_StatementForms(t *testing.T) {
	cases := map[string]string{
		"var x = 1;":      "(declare x 1)",
		"print x;":        "(print_stmt x)",
		"x;":              "(expr_stmt x)",
		"{ x; y; }":       "(block (expr_stmt x) (expr_stmt y))",
		"if c x; else y;": "(if c (expr_stmt x) (expr_stmt y))",
		"while c x;":      "(while c (expr_stmt x))",
	}
	p := &AstPrinter{}
	for src, want := range cases {
		stmts := parse(t, src)
		if got := p.PrintStmt(stmts[0]); got != want {
			t.Fatalf("%s: want %s, got %s", src, want, got)
		}
	}
}

func Test_Printer_ProgramJoinsWithNewlines(t *testing.T) {
	got := (&AstPrinter{}).PrintProgram(parse(t, "var a = 1; print a;"))
	want := "(declare a 1)\n(print_stmt a)"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func Test_Printer_NumbersUseMinimalForm(t *testing.T) {
	if got := printExpr(t, "2.50;"); got != "2.5" {
		t.Fatalf("want 2.5, got %s", got)
	}
	if got := printExpr(t, "10;"); got != "10" {
		t.Fatalf("want 10, got %s", got)
	}
}
