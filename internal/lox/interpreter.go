package lox

import (
	"fmt"
	"io"
)

// Interpreter executes statement sequences against a single environment and
// output sink, both owned for the interpreter's whole lifetime. It
// implements ExprVisitor and StmtVisitor.
type Interpreter struct {
	environment *Environment
	output      io.Writer
	reporter    Reporter
}

func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{NewEnvironment(), output, reporter}
}

// Interpret executes the statements in order, stopping at the first runtime
// error. Side effects performed by earlier statements are retained.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if _, err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			break
		}
	}
}

func (in *Interpreter) VisitExprStmt(stmt *ExprStmt) (interface{}, error) {
	_, err := in.eval(stmt.Expr)
	return nil, err
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	val, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(val))
	return nil, nil
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var initVal interface{}
	if stmt.Init != nil {
		var err error
		initVal, err = in.eval(stmt.Init)
		if err != nil {
			return nil, err
		}
	}
	in.environment.Define(stmt.Name.Lexeme, initVal)
	return nil, nil
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	return in.environment.Assign(expr.Name, val)
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return lhs != rhs, nil

	case EQUAL_EQUAL:
		return lhs == rhs, nil

	case GREATER:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum > rightNum, nil

	case GREATER_EQUAL:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum >= rightNum, nil

	case LESS:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum < rightNum, nil

	case LESS_EQUAL:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum <= rightNum, nil

	case MINUS:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum - rightNum, nil

	case STAR:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum * rightNum, nil

	case SLASH:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		if rightNum == 0 {
			return nil, NewRuntimeError("Divide by zero error")
		}
		return leftNum / rightNum, nil

	case PLUS:
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		if okLeftStr && okRightStr {
			return leftStr + rightStr, nil
		}
		leftNum, okLeftNum := lhs.(float32)
		rightNum, okRightNum := rhs.(float32)
		if okLeftNum && okRightNum {
			return leftNum + rightNum, nil
		}
		if okLeftNum != okRightNum {
			return nil, NewRuntimeError(
				"Can not add a 'String' and a 'Number' in addition operation",
			)
		}
		return nil, NewRuntimeError(
			"Expected operands to be numbers in + expression",
		)
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return in.eval(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

// VisitTernaryExpr requires the condition to evaluate to exactly a boolean,
// other truthy values are rejected. Only the chosen branch is evaluated.
func (in *Interpreter) VisitTernaryExpr(expr *TernaryExpr) (interface{}, error) {
	cond, err := in.eval(expr.Cond)
	if err != nil {
		return nil, err
	}
	condVal, ok := cond.(bool)
	if !ok {
		return nil, NewRuntimeError(
			"expected a boolean expression as condition in ternary statement",
		)
	}
	if condVal {
		return in.eval(expr.Then)
	}
	return in.eval(expr.Else)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(exprVal), nil
	case MINUS:
		if exprNum, ok := exprVal.(float32); ok {
			return -exprNum, nil
		}
		return nil, NewRuntimeError("expected a number in negation expression")
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}

func (in *Interpreter) exec(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func numberOperands(op *Token, lhs, rhs interface{}) (float32, float32, error) {
	leftNum, okLeftNum := lhs.(float32)
	rightNum, okRightNum := rhs.(float32)
	if !okLeftNum || !okRightNum {
		return 0, 0, NewRuntimeError(fmt.Sprintf(
			"Expected operands to be numbers in %s expression",
			op.Lexeme,
		))
	}
	return leftNum, rightNum, nil
}
