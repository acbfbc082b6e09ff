// lexer.go: pull-based tokenizer for Wolff source.
//
// The lexer consumes a CharStream one rune at a time and produces one token
// per NextToken call. Dispatch order per token: skip whitespace and
// '#'-to-end-of-line comments, then classify on the next rune (string
// literal, numeral, identifier/keyword, punctuation/operator); anything
// else is an illegal character.
//
// Error policy: the lexer never aborts. Each invalid token is reported as a
// *LexError (message, offending line text, line, column) and scanning
// continues with the following rune, so one pass can surface several
// independent lexical errors. Scan accumulates them; if any error occurred
// the caller must discard the entire token sequence: a partial stream is
// never handed to the parser.
package wolff

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Lexer scans a Wolff source string into tokens.
type Lexer struct {
	in *CharStream

	// start position of the token currently being scanned
	startLine int
	startCol  int
}

// NewLexer creates a lexer over the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{in: NewCharStream(src)}
}

// Scan tokenizes the entire source. The token slice always ends with the EOF
// marker. If the error slice is non-empty the tokens must be discarded.
func (l *Lexer) Scan() ([]Token, []*LexError) {
	var tokens []Token
	var errs []*LexError
	for {
		tok, err := l.NextToken()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, errs
		}
	}
}

// NextToken produces the next token, or an invalid-token error. After an
// error the lexer remains usable: the offending input has been consumed and
// the next call resumes scanning.
func (l *Lexer) NextToken() (Token, *LexError) {
	l.skipIgnored()
	l.startLine, l.startCol = l.in.Line(), l.in.Col()

	if l.in.AtEnd() {
		return l.token(EOF, "", nil), nil
	}

	ch, _ := l.in.Peek()
	switch {
	case ch == '"':
		return l.scanString()
	case isDigit(ch):
		return l.scanNumber()
	case isIdentStart(ch):
		return l.scanIdentifier(), nil
	case isPunctuation(ch):
		return l.scanPunctuation()
	}

	// Illegal character. Consume it so scanning can continue.
	l.in.Next()
	return Token{}, l.err(fmt.Sprintf("Invalid character %q", ch))
}

// skipIgnored eats Unicode whitespace and '#' line comments.
func (l *Lexer) skipIgnored() {
	for {
		ch, ok := l.in.Peek()
		if !ok {
			return
		}
		if unicode.IsSpace(ch) {
			l.in.Next()
			continue
		}
		if ch == '#' {
			for {
				c, ok := l.in.Peek()
				if !ok || c == '\n' {
					break
				}
				l.in.Next()
			}
			continue
		}
		return
	}
}

func (l *Lexer) token(tt TokenType, lexeme string, lit any) Token {
	return Token{
		Type:    tt,
		Lexeme:  lexeme,
		Literal: lit,
		Line:    l.startLine,
		Col:     l.startCol,
	}
}

func (l *Lexer) err(msg string) *LexError {
	return &LexError{
		Msg:      msg,
		LineText: l.in.CurrentLineText(),
		Line:     l.startLine,
		Col:      l.startCol,
	}
}

// readWhile consumes runes as long as pred holds and returns them.
func (l *Lexer) readWhile(pred func(rune) bool) string {
	var b strings.Builder
	for {
		ch, ok := l.in.Peek()
		if !ok || !pred(ch) {
			return b.String()
		}
		l.in.Next()
		b.WriteRune(ch)
	}
}

// scanString reads an escaped string literal. '\' escapes the next character
// verbatim. Reaching end of input before the closing quote is an
// invalid-token error; the consumed prefix is not returned as a token.
func (l *Lexer) scanString() (Token, *LexError) {
	l.in.Next() // opening quote

	var out strings.Builder
	escaped := false
	for {
		ch, ok := l.in.Next()
		if !ok {
			return Token{}, l.err("Invalid string termination")
		}
		if escaped {
			out.WriteRune(ch)
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			s := out.String()
			return l.token(STRING, s, s), nil
		default:
			out.WriteRune(ch)
		}
	}
}

// scanNumber reads digits with at most one decimal point; a second '.' is
// not part of the number and is left for the next token.
func (l *Lexer) scanNumber() (Token, *LexError) {
	sawDot := false
	lex := l.readWhile(func(ch rune) bool {
		if ch == '.' {
			if sawDot {
				return false
			}
			sawDot = true
			return true
		}
		return isDigit(ch)
	})

	v, convErr := strconv.ParseFloat(lex, 64)
	if convErr != nil {
		return Token{}, l.err(fmt.Sprintf("Invalid number literal %q", lex))
	}
	return l.token(NUMBER, lex, v), nil
}

// scanIdentifier reads an identifier and classifies it against the sorted
// keyword table.
func (l *Lexer) scanIdentifier() Token {
	lex := l.readWhile(isIdentCont)
	if isKeyword(lex) {
		return l.token(KEYWORD, lex, nil)
	}
	return l.token(ID, lex, nil)
}

// scanPunctuation emits the always-single-character punctuators immediately;
// otherwise it consumes a maximal run of operator characters and matches it
// exactly against the operator table.
func (l *Lexer) scanPunctuation() (Token, *LexError) {
	ch, _ := l.in.Peek()
	if tt, ok := singlePunct[ch]; ok {
		l.in.Next()
		return l.token(tt, string(ch), nil), nil
	}

	run := l.readWhile(isOperatorChar)
	if tt, ok := operators[run]; ok {
		return l.token(tt, run, nil), nil
	}
	return Token{}, l.err(fmt.Sprintf("Invalid operator %q", run))
}

// --- character classes ---

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isIdentStart: letters (which covers 'λ', also a keyword), underscore, and
// the emoji blocks as extended identifier characters.
func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || isEmoji(ch)
}

// isIdentCont: identifier-start characters plus digits and '!' '?'.
func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '!' || ch == '?'
}

func isEmoji(ch rune) bool {
	return (ch >= 0x1F300 && ch <= 0x1FAFF) || (ch >= 0x2600 && ch <= 0x27BF)
}

// isOperatorChar: punctuation characters that may compound into operators,
// i.e. everything in the punctuation set except the single-char punctuators.
func isOperatorChar(ch rune) bool {
	if _, single := singlePunct[ch]; single {
		return false
	}
	return isPunctuation(ch)
}
