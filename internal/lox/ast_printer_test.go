package lox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{NewLiteralExpr(float32(3.14)), "3.14"},
		{NewLiteralExpr("hello"), "hello"},
		{NewLiteralExpr(nil), "nil"},
		{NewVarExpr(ident("a", 1)), "a"},
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewLiteralExpr(float32(1))),
			"(- 1)",
		},
		{
			NewBinaryExpr(
				NewToken(PLUS, "+", nil, 1),
				NewLiteralExpr(float32(1)),
				NewLiteralExpr(float32(2))),
			"(+ 1 2)",
		},
		{
			NewGroupExpr(NewLiteralExpr(float32(1))),
			"(group 1)",
		},
		{
			NewTernaryExpr(
				NewLiteralExpr(true),
				NewLiteralExpr(float32(1)),
				NewLiteralExpr(float32(2))),
			"(?: true 1 2)",
		},
		{
			NewAssignExpr(ident("a", 1), NewLiteralExpr(float32(1))),
			"(= a 1)",
		},
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(float32(123))),
				NewGroupExpr(NewLiteralExpr(float32(45.67)))),
			"(* (- 123) (group 45.67))",
		},
	}

	printer := &AstPrinter{}
	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.expr))
	}
}

// exprSource renders an expression tree back into source form. A tree whose
// binary nodes sit under explicit groupings reparses to an equal tree.
func exprSource(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		if s, ok := e.Val.(string); ok {
			return "\"" + s + "\""
		}
		return stringify(e.Val)
	case *UnaryExpr:
		return e.Op.Lexeme + exprSource(e.Expr)
	case *BinaryExpr:
		return fmt.Sprintf("%s %s %s", exprSource(e.Lhs), e.Op.Lexeme, exprSource(e.Rhs))
	case *GroupExpr:
		return "(" + exprSource(e.Expr) + ")"
	}
	panic("Unreachable")
}

func TestExprSourceRoundTrip(t *testing.T) {
	testCases := []Expr{
		NewLiteralExpr(float32(3.14)),
		NewLiteralExpr("hello"),
		NewLiteralExpr(true),
		NewLiteralExpr(nil),
		NewUnaryExpr(
			NewToken(BANG, "!", nil, 1),
			NewLiteralExpr(false)),
		NewUnaryExpr(
			NewToken(MINUS, "-", nil, 1),
			NewLiteralExpr(float32(42))),
		NewBinaryExpr(
			NewToken(PLUS, "+", nil, 1),
			NewLiteralExpr(float32(1)),
			NewLiteralExpr(float32(2))),
		NewBinaryExpr(
			NewToken(STAR, "*", nil, 1),
			NewGroupExpr(
				NewBinaryExpr(
					NewToken(PLUS, "+", nil, 1),
					NewLiteralExpr(float32(1)),
					NewLiteralExpr(float32(2)))),
			NewLiteralExpr(float32(3))),
		NewBinaryExpr(
			NewToken(PLUS, "+", nil, 1),
			NewLiteralExpr(float32(1)),
			NewGroupExpr(
				NewBinaryExpr(
					NewToken(SLASH, "/", nil, 1),
					NewLiteralExpr(float32(2)),
					NewLiteralExpr(float32(3))))),
		NewUnaryExpr(
			NewToken(MINUS, "-", nil, 1),
			NewGroupExpr(
				NewBinaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(float32(1)),
					NewLiteralExpr(float32(2))))),
		NewGroupExpr(
			NewBinaryExpr(
				NewToken(EQUAL_EQUAL, "==", nil, 1),
				NewGroupExpr(
					NewBinaryExpr(
						NewToken(GREATER, ">", nil, 1),
						NewLiteralExpr(float32(1)),
						NewLiteralExpr(float32(2)))),
				NewLiteralExpr(false))),
	}

	assert := assert.New(t)
	for _, want := range testCases {
		src := exprSource(want) + ";"
		stmts, report := parseSource(src)

		assert.False(report.HadError(), src)
		if assert.Len(stmts, 1, src) {
			exprStmt, ok := stmts[0].(*ExprStmt)
			if assert.True(ok, src) {
				assert.Equal(want, exprStmt.Expr, src)
			}
		}
	}
}
