package ast

import (
	"rill/internal/source"
)

// Statement — запечатанный тип утверждений внутри блока.
type Statement interface{ isStatement() }

// Var is `var [mut] name [: Type] = value;`.
type Var struct {
	Span  source.Span
	Mut   bool
	Name  Name
	Type  Type // nil, если тип выводится
	Value Expr
}

// Return is `return [expr];`.
type Return struct {
	Span  source.Span
	Value Expr // nil для пустого return
}

// Defer is `defer call;`.
type Defer struct {
	Span source.Span
	Call Expr
}

// ExprStatement is an expression in statement position. A block-tail
// expression without ';' has HasSemicolon == false and is the block's
// value.
type ExprStatement struct {
	Span         source.Span
	Expr         Expr
	HasSemicolon bool
}

// Block is `{ statements }`.
type Block struct {
	Span       source.Span
	Statements []Statement
}

func (*Var) isStatement()           {}
func (*Return) isStatement()        {}
func (*Defer) isStatement()         {}
func (*ExprStatement) isStatement() {}

// StmtSpan returns the span of any statement form.
func StmtSpan(s Statement) source.Span {
	switch n := s.(type) {
	case *Var:
		return n.Span
	case *Return:
		return n.Span
	case *Defer:
		return n.Span
	case *ExprStatement:
		return n.Span
	default:
		return source.Span{}
	}
}
