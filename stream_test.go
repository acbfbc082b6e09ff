// stream_test.go
package wolff

import "testing"

func Test_CharStream_TracksLineAndColumn(t *testing.T) {
	s := NewCharStream("ab\ncd")

	if s.Line() != 1 || s.Col() != 1 {
		t.Fatalf("start position: want 1:1, got %d:%d", s.Line(), s.Col())
	}

	s.Next() // 'a'
	s.Next() // 'b'
	if s.Line() != 1 || s.Col() != 3 {
		t.Fatalf("after ab: want 1:3, got %d:%d", s.Line(), s.Col())
	}

	s.Next() // newline
	if s.Line() != 2 || s.Col() != 1 {
		t.Fatalf("after newline: want 2:1, got %d:%d", s.Line(), s.Col())
	}

	s.Next()
	s.Next()
	if !s.AtEnd() {
		t.Fatalf("expected end of stream")
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("Next past end must report !ok")
	}
}

func Test_CharStream_PeekDoesNotConsume(t *testing.T) {
	s := NewCharStream("x")
	ch, ok := s.Peek()
	if !ok || ch != 'x' {
		t.Fatalf("peek: want 'x', got %q (%v)", ch, ok)
	}
	if s.Col() != 1 {
		t.Fatalf("peek must not advance, col = %d", s.Col())
	}
}

func Test_CharStream_CurrentLineText(t *testing.T) {
	s := NewCharStream("first\nsecond line\nthird")
	for i := 0; i < 9; i++ { // into "second line"
		s.Next()
	}
	if got := s.CurrentLineText(); got != "second line" {
		t.Fatalf("CurrentLineText: want %q, got %q", "second line", got)
	}
}

func Test_CharStream_HandlesMultibyteRunes(t *testing.T) {
	s := NewCharStream("λx")
	ch, _ := s.Next()
	if ch != 'λ' {
		t.Fatalf("want 'λ', got %q", ch)
	}
	// One rune, one column.
	if s.Col() != 2 {
		t.Fatalf("after λ: want col 2, got %d", s.Col())
	}
}
