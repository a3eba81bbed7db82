/*
Package lox implements the front end and evaluator for a small
expression-and-statement scripting language: a scanner, a recursive-descent
parser, and a tree-walking interpreter over a flat variable store.

Grammar

	program     --> declaration* EOF ;
	declaration --> varDecl
	              | printStmt
	              | exprStmt ;
	varDecl     --> "var" IDENTIFIER ( "=" expression )? ";" ;
	printStmt   --> "print" expression ";" ;
	exprStmt    --> expression ";" ;
	expression  --> assignment ;
	assignment  --> ternary ( "=" assignment )? ;
	ternary     --> equality ( "?" equality ":" equality )? ;
	equality    --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison  --> addition ( ( ">" | ">=" | "<" | "<=" ) addition )* ;
	addition    --> multiplication ( ( "+" | "-" ) multiplication )* ;
	multiplication --> unary ( ( "/" | "*" ) unary )* ;
	unary       --> ( "!" | "-" ) unary
	              | primary ;
	primary     --> NUMBER | STRING | IDENTIFIER
	              | "true" | "false" | "nil"
	              | "(" expression ")" ;

The control-flow keywords (if, while, for, and the rest) are reserved and
tokenized but have no statement forms, the grammar above is the whole
language. Numbers are 32-bit floats.
*/
package lox
