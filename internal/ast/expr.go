package ast

import (
	"rill/internal/source"
)

// Expr — запечатанный тип выражений.
type Expr interface{ isExpr() }

// IntLiteral carries the decoded value; overflow is reported by the
// parser before the node is built.
type IntLiteral struct {
	Span  source.Span
	Value uint64
}

// FloatLiteral carries the decoded float64 value.
type FloatLiteral struct {
	Span  source.Span
	Value float64
}

// StringLiteral carries the escape-decoded string value.
type StringLiteral struct {
	Span  source.Span
	Value string
}

// CharLiteral carries the decoded scalar value.
type CharLiteral struct {
	Span  source.Span
	Value rune
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Span  source.Span
	Value bool
}

// NameExpr is a bare identifier in expression position.
type NameExpr struct {
	Span source.Span
	Sym  source.StringID
}

// ArrayExpr is `[a, b, c]`.
type ArrayExpr struct {
	Span     source.Span
	Elements []Expr
}

// ParenExpr is `(expr)`; kept in the tree so spans survive.
type ParenExpr struct {
	Span  source.Span
	Inner Expr
}

// Unary is a prefix (`-x`, `!x`, `~x`, `++x`) or postfix (`x++`, `x--`)
// operator application.
type Unary struct {
	Span    source.Span
	Op      UnaryOp
	Operand Expr
	Postfix bool
}

// Binary is a binary operator application; the elvis `?:` and the whole
// assignment family are binary ops too.
type Binary struct {
	Span  source.Span
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Call is `callee(args)`.
type Call struct {
	Span   source.Span
	Callee Expr
	Args   []Expr
}

// Property is `target.name`.
type Property struct {
	Span   source.Span
	Target Expr
	Name   Name
}

// TypeArguments is explicit generic application `expr[T, U]`.
type TypeArguments struct {
	Span source.Span
	Expr Expr
	Args []Type
}

// Cast is `expr as Type`.
type Cast struct {
	Span source.Span
	Expr Expr
	Type Type
}

// IfBlock is one `if cond { ... }` arm.
type IfBlock struct {
	Span source.Span
	Cond Expr
	Body *Block
}

// If is an if/else-if chain with an optional trailing else block.
type If struct {
	Span   source.Span
	Blocks []IfBlock
	Else   *Block
}

// While is `while cond { ... }`.
type While struct {
	Span source.Span
	Cond Expr
	Body *Block
}

func (*IntLiteral) isExpr()    {}
func (*FloatLiteral) isExpr()  {}
func (*StringLiteral) isExpr() {}
func (*CharLiteral) isExpr()   {}
func (*BoolLiteral) isExpr()   {}
func (*NameExpr) isExpr()      {}
func (*ArrayExpr) isExpr()     {}
func (*ParenExpr) isExpr()     {}
func (*Unary) isExpr()         {}
func (*Binary) isExpr()        {}
func (*Call) isExpr()          {}
func (*Property) isExpr()      {}
func (*TypeArguments) isExpr() {}
func (*Cast) isExpr()          {}
func (*If) isExpr()            {}
func (*While) isExpr()         {}

// ExprSpan returns the span of any expression form.
func ExprSpan(e Expr) source.Span {
	switch n := e.(type) {
	case *IntLiteral:
		return n.Span
	case *FloatLiteral:
		return n.Span
	case *StringLiteral:
		return n.Span
	case *CharLiteral:
		return n.Span
	case *BoolLiteral:
		return n.Span
	case *NameExpr:
		return n.Span
	case *ArrayExpr:
		return n.Span
	case *ParenExpr:
		return n.Span
	case *Unary:
		return n.Span
	case *Binary:
		return n.Span
	case *Call:
		return n.Span
	case *Property:
		return n.Span
	case *TypeArguments:
		return n.Span
	case *Cast:
		return n.Span
	case *If:
		return n.Span
	case *While:
		return n.Span
	default:
		return source.Span{}
	}
}
