// parser.go: recursive-descent parser for Wolff.
//
// The parser consumes a fully materialized token sequence by index (never a
// live stream) and produces one statement per top-level declaration.
// Grammar, lowest to highest precedence:
//
//	program    -> declaration* EOF
//	declaration-> "var" IDENT "=" expression ";" | statement
//	statement  -> "if" expression statement ("else" statement)?
//	            | "while" expression statement
//	            | "print" expression ";"
//	            | "{" declaration* "}"
//	            | expression ";"
//	expression -> assignment
//	assignment -> IDENT "=" assignment | logic_or
//	logic_or   -> logic_and ("or" logic_and)*
//	logic_and  -> equality ("and" equality)*
//	equality   -> comparison (("!="|"==") comparison)*
//	comparison -> term ((">"|">="|"<"|"<=") term)*
//	term       -> factor (("-"|"+") factor)*
//	factor     -> unary (("/"|"*") unary)*
//	unary      -> ("!"|"-") unary | primary
//	primary    -> IDENT | "true" | "false" | "nil" | NUMBER | STRING
//	            | "(" expression ")"
//
// The "if"/"while" condition is a bare expression; parentheses are not
// required (a parenthesized condition still parses, as a grouping).
//
// Error recovery is panic-mode: on a parse error the declaration is
// abandoned, the error recorded, and the cursor synchronized forward past
// the next ';' or to the next statement-starting keyword, so a single pass
// surfaces multiple independent errors. Callers must not execute anything if
// any error was collected.
package wolff

// Parser walks a token slice by index. Panic mode needs no explicit state:
// raising a parse error unwinds the declaration via error returns, and
// synchronize runs before the next one starts.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a parser over tokens. The slice must end with the EOF
// marker (as produced by Lexer.Scan).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token sequence. It returns the successfully
// parsed statements and every parse error encountered; if the error slice is
// non-empty the statements must not be executed.
func (p *Parser) Parse() ([]Stmt, []*ParseError) {
	var stmts []Stmt
	var errs []*ParseError

	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, errs
}

// --- token cursor ---

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == EOF }

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == tt
}

func (p *Parser) checkKeyword(kw string) bool {
	t := p.peek()
	return t.Type == KEYWORD && t.Lexeme == kw
}

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) matchKeyword(kws ...string) bool {
	for _, kw := range kws {
		if p.checkKeyword(kw) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, msg string) (Token, *ParseError) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errAt(p.peek(), msg)
}

// errAt raises a parse error at tok.
func (p *Parser) errAt(tok Token, msg string) *ParseError {
	return &ParseError{Msg: msg, Line: tok.Line, Col: tok.Col}
}

// synchronizeKeywords are the statement-start keywords that end panic mode.
var synchronizeKeywords = map[string]bool{
	"class": true, "else": true, "for": true, "fun": true, "if": true,
	"lambda": true, "print": true, "return": true, "super": true,
	"this": true, "var": true, "while": true, "λ": true,
}

// synchronize advances to the next likely statement boundary: just past a
// ';' or right before a statement-starting keyword.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON {
			break
		}
		t := p.peek()
		if t.Type == KEYWORD && synchronizeKeywords[t.Lexeme] {
			break
		}
		p.advance()
	}
}

// --- declarations & statements ---

func (p *Parser) declaration() (Stmt, *ParseError) {
	if p.matchKeyword("var") {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, *ParseError) {
	name, err := p.consume(ID, "Expected variable name")
	if err != nil {
		return nil, err
	}

	if !p.match(ASSIGN) {
		return nil, p.errAt(name, "Variable can't be declared but not initialized")
	}
	initializer, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(SEMICOLON, "Expected semicolon after declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, *ParseError) {
	if p.matchKeyword("if") {
		return p.ifStatement()
	}
	if p.matchKeyword("while") {
		return p.whileStatement()
	}
	if p.matchKeyword("print") {
		return p.printStatement()
	}
	if p.match(LCURLY) {
		return p.blockStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) ifStatement() (Stmt, *ParseError) {
	keyword := p.previous()

	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.matchKeyword("else") {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Keyword: keyword, Condition: condition, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, *ParseError) {
	keyword := p.previous()

	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Keyword: keyword, Condition: condition, Body: body}, nil
}

func (p *Parser) blockStatement() (Stmt, *ParseError) {
	var statements []Stmt
	for !p.check(RCURLY) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(RCURLY, "Expected '}' after a block"); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: statements}, nil
}

func (p *Parser) printStatement() (Stmt, *ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expected ; after statement."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expression: expr}, nil
}

func (p *Parser) expressionStatement() (Stmt, *ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expected ; after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}

// --- expressions ---

func (p *Parser) expression() (Expr, *ParseError) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, *ParseError) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(ASSIGN) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if target, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: target.Name, Value: value}, nil
		}
		return nil, p.errAt(equals, "Invalid l-value for assignment")
	}
	return expr, nil
}

func (p *Parser) or() (Expr, *ParseError) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("or") {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (Expr, *ParseError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("and") {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, *ParseError) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(NEQ, EQ) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, *ParseError) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(GREATER, GREATER_EQ, LESS, LESS_EQ) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, *ParseError) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(MINUS, PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, *ParseError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(DIV, MULT) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, *ParseError) {
	if p.match(BANG, MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, *ParseError) {
	if p.match(ID) {
		return &VariableExpr{Name: p.previous()}, nil
	}
	if p.matchKeyword("true") {
		return &LiteralExpr{Value: Bool(true)}, nil
	}
	if p.matchKeyword("false") {
		return &LiteralExpr{Value: Bool(false)}, nil
	}
	if p.matchKeyword("nil") {
		return &LiteralExpr{Value: Nil}, nil
	}
	if p.match(NUMBER) {
		return &LiteralExpr{Value: Number(p.previous().Literal.(float64))}, nil
	}
	if p.match(STRING) {
		return &LiteralExpr{Value: Text(p.previous().Literal.(string))}, nil
	}
	if p.match(LROUND) {
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RROUND, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr}, nil
	}
	return nil, p.errAt(p.peek(), "Expected expression")
}
