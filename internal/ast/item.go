package ast

import (
	"rill/internal/source"
)

// Item — запечатанный тип верхнеуровневых деклараций.
type Item interface{ isItem() }

// Import is `import a.b.c [as name];`.
type Import struct {
	Span  source.Span
	Path  Path
	Alias *Name // nil без 'as'
}

// Function is a function declaration; HasBody is false for bodiless
// signatures terminated by ';' (trait members, forward declarations).
type Function struct {
	Span      source.Span
	Signature FunctionSignature
	Body      *Block
	HasBody   bool
}

// FunctionSignature — заголовок функции без тела.
type FunctionSignature struct {
	Span     source.Span
	Vis      Visibility
	Name     Name
	Generics []GenericParam
	Params   []Param
	Return   Type // nil, если тип результата не указан
	Where    []WherePredicate
}

// Param is `name: Type [= default]`.
type Param struct {
	Span    source.Span
	Name    Name
	Type    Type
	Default Expr // nil без значения по умолчанию
}

// Enum is `enum Name { Variant, ... }`.
type Enum struct {
	Span     source.Span
	Vis      Visibility
	Name     Name
	Variants []EnumVariant
}

// EnumVariant carries its own doc lines: variants are documentable.
type EnumVariant struct {
	Span source.Span
	Doc  []string
	Name Name
}

// Struct is `struct Name[gens] where ... { members }`.
type Struct struct {
	Span     source.Span
	Vis      Visibility
	Name     Name
	Generics []GenericParam
	Where    []WherePredicate
	Members  []StructMember
}

// StructMember is `[pub] [mut] name: Type;`.
type StructMember struct {
	Span source.Span
	Doc  []string
	Vis  Visibility
	Mut  bool
	Name Name
	Type Type
}

// Trait is a trait declaration; members are restricted to Function and
// TypeAlias items, each with its own docstring.
type Trait struct {
	Span     source.Span
	Vis      Visibility
	Name     Name
	Generics []GenericParam
	Where    []WherePredicate
	Members  []Documented
}

// Impl is `impl[gens] Trait for Type { ... }` or `impl[gens] Type { ... }`.
// Trait is nil for inherent impls.
type Impl struct {
	Span     source.Span
	Vis      Visibility
	Generics []GenericParam
	Type     Type
	Trait    Type // nil без 'for'
	Where    []WherePredicate
	Members  []Documented
}

// TypeAlias is `type Name[gens] = Aliased;`; Aliased is nil for the
// bodiless form allowed inside traits.
type TypeAlias struct {
	Span     source.Span
	Vis      Visibility
	Name     Name
	Generics []GenericParam
	Aliased  Type
}

func (*Import) isItem()    {}
func (*Function) isItem()  {}
func (*Enum) isItem()      {}
func (*Struct) isItem()    {}
func (*Trait) isItem()     {}
func (*Impl) isItem()      {}
func (*TypeAlias) isItem() {}

// ItemSpan returns the span of any item form.
func ItemSpan(it Item) source.Span {
	switch n := it.(type) {
	case *Import:
		return n.Span
	case *Function:
		return n.Span
	case *Enum:
		return n.Span
	case *Struct:
		return n.Span
	case *Trait:
		return n.Span
	case *Impl:
		return n.Span
	case *TypeAlias:
		return n.Span
	default:
		return source.Span{}
	}
}
