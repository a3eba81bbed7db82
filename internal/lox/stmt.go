package lox

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitExprStmt(stmt *ExprStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitVarStmt(stmt *VarStmt) (interface{}, error)
}
type ExprStmt struct {
	Expr Expr
}

func NewExprStmt(Expr Expr) *ExprStmt {
	return &ExprStmt{Expr}
}
func (stmt *ExprStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExprStmt(stmt)
}

type PrintStmt struct {
	Expr Expr
}

func NewPrintStmt(Expr Expr) *PrintStmt {
	return &PrintStmt{Expr}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

type VarStmt struct {
	Name *Token
	Init Expr
}

func NewVarStmt(Name *Token, Init Expr) *VarStmt {
	return &VarStmt{Name, Init}
}
func (stmt *VarStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitVarStmt(stmt)
}
