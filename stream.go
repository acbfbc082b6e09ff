// stream.go: positional character cursor over source text.
//
// CharStream is the lowest layer of the pipeline. It hands out one rune at a
// time while tracking the absolute offset, the 1-based line and column of the
// next unread rune, and can recover the full text of the current line for
// diagnostics. The lexer is its only consumer.
package wolff

import "strings"

// CharStream is a cursor over a source string. Line and Col always describe
// the position of the next unread rune.
type CharStream struct {
	src   string
	runes []rune
	pos   int
	line  int // 1-based
	col   int // 1-based
}

// NewCharStream creates a cursor positioned at the start of src.
func NewCharStream(src string) *CharStream {
	return &CharStream{
		src:   src,
		runes: []rune(src),
		line:  1,
		col:   1,
	}
}

// AtEnd reports whether the whole source has been consumed.
func (s *CharStream) AtEnd() bool { return s.pos >= len(s.runes) }

// Peek returns the next rune without consuming it. The second result is
// false at end of input.
func (s *CharStream) Peek() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.runes[s.pos], true
}

// Next consumes and returns the next rune. A newline increments the line
// counter and resets the column; any other rune advances the column.
func (s *CharStream) Next() (rune, bool) {
	if s.AtEnd() {
		return 0, false
	}
	ch := s.runes[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch, true
}

// Line returns the 1-based line of the next unread rune.
func (s *CharStream) Line() int { return s.line }

// Col returns the 1-based column of the next unread rune.
func (s *CharStream) Col() int { return s.col }

// CurrentLineText returns the full text of the line containing the current
// position, without its trailing newline. Used for lexical diagnostics.
func (s *CharStream) CurrentLineText() string {
	start := 0
	for i := s.pos - 1; i >= 0; i-- {
		if s.runes[i] == '\n' {
			start = i + 1
			break
		}
	}
	end := len(s.runes)
	for i := s.pos; i < len(s.runes); i++ {
		if s.runes[i] == '\n' {
			end = i
			break
		}
	}
	// Clamp for the case where the cursor sits on the newline itself.
	if start > end {
		return ""
	}
	var b strings.Builder
	for _, r := range s.runes[start:end] {
		b.WriteRune(r)
	}
	return b.String()
}
