package lox

import "fmt"

// AstPrinter renders an expression tree in parenthesized prefix notation,
// used for debugging the parser's output.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, _ := expr.Val.Accept(printer)
	return fmt.Sprintf("(= %s %s)", expr.Name.Lexeme, val), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, _ := expr.Lhs.Accept(printer)
	right, _ := expr.Rhs.Accept(printer)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, left, right), nil
}

func (printer *AstPrinter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	exprStr, _ := expr.Expr.Accept(printer)
	return fmt.Sprintf("(group %s)", exprStr), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return stringify(expr.Val), nil
}

func (printer *AstPrinter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	cond, _ := expr.Cond.Accept(printer)
	then, _ := expr.Then.Accept(printer)
	els, _ := expr.Else.Accept(printer)
	return fmt.Sprintf("(?: %s %s %s)", cond, then, els), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprStr, _ := expr.Expr.Accept(printer)
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, exprStr), nil
}

func (printer *AstPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}
