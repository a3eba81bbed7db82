package lox

import "fmt"

// Parser composes the syntax tree for the language from the sequence of
// tokens produced by the scanner, following the grammar rules below.
//
// Grammar
//
//	program     --> declaration* EOF ;
//	declaration --> "var" IDENTIFIER ( "=" expression )? ";"
//	              | "print" expression ";"
//	              | expression ";" ;
//	expression  --> assignment ;
//	assignment  --> ternary ( "=" assignment )? ;
//	ternary     --> equality ( "?" equality ":" equality )? ;
//	equality    --> comparison ( ( "!=" | "==" ) comparison )* ;
//	comparison  --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
//	addition    --> multiplication ( ( "+" | "-" ) multiplication )* ;
//	multiplication --> unary ( ( "/" | "*" ) unary )* ;
//	unary       --> ( "!" | "-" ) unary
//	              | primary ;
//	primary     --> NUMBER | STRING | IDENTIFIER
//	              | "true" | "false" | "nil"
//	              | "(" expression ")" ;
//
// Each binary tier also matches its own operators when no left operand was
// parsed, so "* 2" and "== true" produce a missing-operand diagnostic
// instead of a generic one.
type Parser struct {
	current  int
	tokens   []*Token
	reporter Reporter
}

// NewParser creates a new parser over the given tokens
func NewParser(tokens []*Token, reporter Reporter) *Parser {
	return &Parser{0, tokens, reporter}
}

// Parse consumes every token into a sequence of statements. Each failed
// declaration is reported and skipped via sync, allowing several independent
// errors to be collected in one pass. If any declaration failed, the whole
// result is discarded and nil is returned.
func (parser *Parser) Parse() []Stmt {
	statements := make([]Stmt, 0)
	hadError := false
	for !parser.isEOF() {
		stmt, err := parser.declaration()
		if err != nil {
			parser.reporter.Report(err)
			parser.sync()
			hadError = true
			continue
		}
		statements = append(statements, stmt)
	}
	if hadError {
		return nil
	}
	return statements
}

// declaration --> varDecl | printStmt | exprStmt ;
func (parser *Parser) declaration() (Stmt, error) {
	if parser.match(VAR) {
		return parser.varDeclaration()
	}
	return parser.statement()
}

// varDecl --> "var" IDENTIFIER ( "=" expression )? ";" ;
func (parser *Parser) varDeclaration() (Stmt, error) {
	if !parser.check(IDENTIFIER) {
		return nil, NewParseError(
			parser.peek(),
			"expected an identifier after 'var' keyword",
		)
	}
	name := parser.advance()
	var init Expr
	if parser.match(EQUAL) {
		var err error
		init, err = parser.expression()
		if err != nil {
			return nil, err
		}
	}
	if err := parser.consume(
		SEMICOLON,
		"expected a semicolon following statement",
	); err != nil {
		return nil, err
	}
	return NewVarStmt(name, init), nil
}

func (parser *Parser) statement() (Stmt, error) {
	if parser.match(PRINT) {
		return parser.printStatement()
	}
	return parser.expressionStatement()
}

// printStmt --> "print" expression ";" ;
func (parser *Parser) printStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(
		SEMICOLON,
		"expected a semicolon following statement",
	); err != nil {
		return nil, err
	}
	return NewPrintStmt(expr), nil
}

// exprStmt --> expression ";" ;
func (parser *Parser) expressionStatement() (Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(
		SEMICOLON,
		"expected a semicolon following statement",
	); err != nil {
		return nil, err
	}
	return NewExprStmt(expr), nil
}

// expression --> assignment ;
func (parser *Parser) expression() (Expr, error) {
	return parser.assignment()
}

// assignment --> ternary ( "=" assignment )? ;
//
// Assignment is right-associative, `a = b = 1` assigns 1 to both names.
func (parser *Parser) assignment() (Expr, error) {
	expr, err := parser.ternary()
	if err != nil {
		return nil, err
	}
	if parser.match(EQUAL) {
		equals := parser.prev()
		value, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		if varExpr, ok := expr.(*VarExpr); ok {
			return NewAssignExpr(varExpr.Name, value), nil
		}
		return nil, NewParseError(equals, "invalid assignment target")
	}
	return expr, nil
}

// ternary --> equality ( "?" equality ":" equality )? ;
//
// The parser builds the full node eagerly, the interpreter decides which
// branch gets evaluated.
func (parser *Parser) ternary() (Expr, error) {
	cond, err := parser.equality()
	if err != nil {
		return nil, err
	}
	if !parser.match(QUESTION) {
		return cond, nil
	}
	question := parser.prev()
	then, err := parser.equality()
	if err != nil {
		return nil, err
	}
	if !parser.check(COLON) {
		return nil, NewParseError(question, "expected ':' in ternary expression")
	}
	parser.advance()
	els, err := parser.equality()
	if err != nil {
		return nil, err
	}
	return NewTernaryExpr(cond, then, els), nil
}

// Creates a left-associative nested tree of binary operator nodes. Matches a
// higher precedence rule `comparison` if it does not hit "!=" or "==".
//
// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (Expr, error) {
	if parser.match(BANG_EQUAL, EQUAL_EQUAL) {
		return nil, parser.missingOperand("equality", parser.comparison)
	}
	expr, err := parser.comparison()
	if err != nil {
		return nil, err
	}
	for parser.match(BANG_EQUAL, EQUAL_EQUAL) {
		op := parser.prev()
		right, err := parser.comparison()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// comparison --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
func (parser *Parser) comparison() (Expr, error) {
	if parser.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		return nil, parser.missingOperand("comparison", parser.addition)
	}
	expr, err := parser.addition()
	if err != nil {
		return nil, err
	}
	for parser.match(GREATER, GREATER_EQUAL, LESS, LESS_EQUAL) {
		op := parser.prev()
		right, err := parser.addition()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// addition --> multiplication ( ( "+" | "-" ) multiplication )* ;
//
// A leading "-" is a valid unary expression, so only a leading "+" counts as
// a missing left operand.
func (parser *Parser) addition() (Expr, error) {
	if parser.match(PLUS) {
		return nil, parser.missingOperand("addition", parser.multiplication)
	}
	expr, err := parser.multiplication()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		right, err := parser.multiplication()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// multiplication --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) multiplication() (Expr, error) {
	if parser.match(SLASH, STAR) {
		return nil, parser.missingOperand("multiplication", parser.unary)
	}
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | primary ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(BANG, MINUS) {
		op := parser.prev()
		expr, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | IDENTIFIER
//           | "true" | "false" | "nil" | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	if parser.match(FALSE) {
		return NewLiteralExpr(false), nil
	}
	if parser.match(TRUE) {
		return NewLiteralExpr(true), nil
	}
	if parser.match(NIL) {
		return NewLiteralExpr(nil), nil
	}
	if parser.match(NUMBER, STRING) {
		return NewLiteralExpr(parser.prev().Literal), nil
	}
	if parser.match(IDENTIFIER) {
		return NewVarExpr(parser.prev()), nil
	}
	if parser.match(LEFT_PAREN) {
		open := parser.prev()
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if !parser.check(RIGHT_PAREN) {
			// cite the opening paren, the offending token may be lines away
			return nil, NewParseError(open, "expected ')' after expression")
		}
		parser.advance()
		return NewGroupExpr(expr), nil
	}
	if parser.isEOF() {
		return nil, NewParseError(parser.peek(), "unexpected end of input")
	}
	return nil, NewParseError(
		parser.peek(),
		fmt.Sprintf("unexpected '%s'", parser.peek().Lexeme),
	)
}

// missingOperand builds the diagnostic for a binary operator that appeared
// with no left operand. The dangling right operand is still consumed so
// sync has a clean statement boundary to look for.
func (parser *Parser) missingOperand(tier string, operand func() (Expr, error)) error {
	op := parser.prev()
	_, _ = operand()
	return NewParseError(
		op,
		fmt.Sprintf("missing left-hand-side operand for %s expression", tier),
	)
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it moves past a ';' or reaches a token that can
// begin a new statement, dropping the remains of a malformed statement.
func (parser *Parser) sync() {
	parser.advance()
	for !parser.isEOF() {
		if parser.prev().Typ == SEMICOLON {
			return
		}
		switch parser.peek().Typ {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return
		}
		parser.advance()
	}
}
