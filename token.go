// token.go: token model plus the fixed keyword/punctuation/operator tables.
package wolff

import (
	"fmt"
	"sort"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Single character tokens
	LROUND    // "("
	RROUND    // ")"
	LCURLY    // "{"
	RCURLY    // "}"
	COMMA     // ","
	PERIOD    // "."
	SEMICOLON // ";"

	// One or two character tokens
	MINUS
	PLUS
	DIV
	MULT
	BANG   // "!"
	NEQ    // "!="
	ASSIGN // "="
	EQ     // "=="
	GREATER
	GREATER_EQ
	LESS
	LESS_EQ

	// Literals & identifiers
	ID
	STRING
	NUMBER

	// Keywords
	KEYWORD
)

// tokenTypeNames are the canonical display names; the AST printer leans on
// these for binary operator heads, so they are part of the output contract.
var tokenTypeNames = map[TokenType]string{
	EOF:        "EOF",
	LROUND:     "LeftParen",
	RROUND:     "RightParen",
	LCURLY:     "LeftBrace",
	RCURLY:     "RightBrace",
	COMMA:      "Comma",
	PERIOD:     "Dot",
	SEMICOLON:  "Semicolon",
	MINUS:      "Minus",
	PLUS:       "Plus",
	DIV:        "Slash",
	MULT:       "Star",
	BANG:       "Bang",
	NEQ:        "BangEqual",
	ASSIGN:     "Equal",
	EQ:         "EqualEqual",
	GREATER:    "Greater",
	GREATER_EQ: "GreaterEqual",
	LESS:       "Less",
	LESS_EQ:    "LessEqual",
	ID:         "Identifier",
	STRING:     "String",
	NUMBER:     "Number",
	KEYWORD:    "Keyword",
}

func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a lexical token with optional decoded literal value.
// Tokens are immutable once produced.
type Token struct {
	Type    TokenType
	Lexeme  string // raw source text of the token
	Literal any    // float64 for NUMBER, decoded string for STRING, else nil
	Line    int    // 1-based line of the token start
	Col     int    // 1-based column of the token start
}

func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s(%v)", t.Type, t.Literal)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}

// keywords MUST stay sorted lexicographically (by byte order): lookup is a
// binary search. "λ" is multi-byte and sorts after all ASCII entries.
var keywords = []string{
	"and", "class", "else", "false", "for", "fun", "if", "lambda", "nil",
	"or", "print", "return", "super", "this", "true", "var", "while",
	"λ",
}

func isKeyword(word string) bool {
	i := sort.SearchStrings(keywords, word)
	return i < len(keywords) && keywords[i] == word
}

// punctuation is the fixed set of characters that may begin an operator or
// punctuator. MUST stay sorted: membership is a binary search. Characters
// like '%' '&' '^' '|' are reserved here so that stray uses surface as
// invalid-operator errors rather than illegal characters.
var punctuation = []rune{
	'!', '%', '&', '(', ')', '*', '+', ',', '-', '.', '/',
	';', '<', '=', '>', '^', '{', '|', '}',
}

func isPunctuation(ch rune) bool {
	i := sort.Search(len(punctuation), func(i int) bool { return punctuation[i] >= ch })
	return i < len(punctuation) && punctuation[i] == ch
}

// singlePunct maps the always-single-character punctuators; these are emitted
// immediately and never compound with neighbouring operator characters.
var singlePunct = map[rune]TokenType{
	';': SEMICOLON,
	',': COMMA,
	'(': LROUND,
	')': RROUND,
	'{': LCURLY,
	'}': RCURLY,
	'.': PERIOD,
}

// operators is the exact-match table for maximal operator runs. A run that
// matches no entry is an invalid-operator error.
var operators = map[string]TokenType{
	"=":  ASSIGN,
	"==": EQ,
	"!=": NEQ,
	">":  GREATER,
	">=": GREATER_EQ,
	"<":  LESS,
	"<=": LESS_EQ,
	"!":  BANG,
	"-":  MINUS,
	"+":  PLUS,
	"/":  DIV,
	"*":  MULT,
}
