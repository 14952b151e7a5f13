package ast

import (
	"rill/internal/source"
)

// Type — запечатанный тип синтаксических форм типов.
type Type interface{ isType() }

// PrimaryType is a dotted path with optional `[...]` type arguments:
// `List[int]`, `std.io.Reader`.
type PrimaryType struct {
	Span source.Span
	Path Path
	Args []Type
}

// ReferenceType is `&T` or `&mut T`.
type ReferenceType struct {
	Span  source.Span
	Mut   bool
	Inner Type
}

// ArrayType is `[T]`.
type ArrayType struct {
	Span  source.Span
	Inner Type
}

// OptionType is the postfix `T?`.
type OptionType struct {
	Span  source.Span
	Inner Type
}

// NegatedTraitType is `!Trait`, usable only as a constraint.
type NegatedTraitType struct {
	Span  source.Span
	Inner Type
}

func (*PrimaryType) isType()      {}
func (*ReferenceType) isType()    {}
func (*ArrayType) isType()        {}
func (*OptionType) isType()       {}
func (*NegatedTraitType) isType() {}

// TypeSpan returns the span of any type form.
func TypeSpan(t Type) source.Span {
	switch n := t.(type) {
	case *PrimaryType:
		return n.Span
	case *ReferenceType:
		return n.Span
	case *ArrayType:
		return n.Span
	case *OptionType:
		return n.Span
	case *NegatedTraitType:
		return n.Span
	default:
		return source.Span{}
	}
}
