package ast

import (
	"testing"

	"rill/internal/source"
)

func TestSpanAccessors(t *testing.T) {
	sp := source.Span{File: 0, Start: 3, End: 7}

	items := []Item{
		&Import{Span: sp}, &Function{Span: sp}, &Enum{Span: sp},
		&Struct{Span: sp}, &Trait{Span: sp}, &Impl{Span: sp},
		&TypeAlias{Span: sp},
	}
	for _, it := range items {
		if got := ItemSpan(it); got != sp {
			t.Errorf("ItemSpan(%T) = %v", it, got)
		}
	}

	types := []Type{
		&PrimaryType{Span: sp}, &ReferenceType{Span: sp},
		&ArrayType{Span: sp}, &OptionType{Span: sp},
		&NegatedTraitType{Span: sp},
	}
	for _, ty := range types {
		if got := TypeSpan(ty); got != sp {
			t.Errorf("TypeSpan(%T) = %v", ty, got)
		}
	}

	stmts := []Statement{
		&Var{Span: sp}, &Return{Span: sp}, &Defer{Span: sp},
		&ExprStatement{Span: sp},
	}
	for _, s := range stmts {
		if got := StmtSpan(s); got != sp {
			t.Errorf("StmtSpan(%T) = %v", s, got)
		}
	}

	exprs := []Expr{
		&IntLiteral{Span: sp}, &FloatLiteral{Span: sp},
		&StringLiteral{Span: sp}, &CharLiteral{Span: sp},
		&BoolLiteral{Span: sp}, &NameExpr{Span: sp}, &ArrayExpr{Span: sp},
		&ParenExpr{Span: sp}, &Unary{Span: sp}, &Binary{Span: sp},
		&Call{Span: sp}, &Property{Span: sp}, &TypeArguments{Span: sp},
		&Cast{Span: sp}, &If{Span: sp}, &While{Span: sp},
	}
	for _, e := range exprs {
		if got := ExprSpan(e); got != sp {
			t.Errorf("ExprSpan(%T) = %v", e, got)
		}
	}
}

func TestOperatorLexemes(t *testing.T) {
	for op := BinAssign; op <= BinElvis; op++ {
		if op.String() == "?" && op != BinInvalid {
			t.Errorf("binary op %d has no lexeme", op)
		}
	}
	if !BinPowAssign.IsAssign() || BinElvis.IsAssign() {
		t.Error("IsAssign boundaries are wrong")
	}
	if UnBitNot.String() != "~" {
		t.Errorf("UnBitNot = %q", UnBitNot.String())
	}
}
