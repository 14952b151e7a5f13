package ast

import (
	"rill/internal/source"
)

// File is the root of the tree for one program unit.
type File struct {
	Span source.Span
	// Docstring — глобальный докстринг юнита, собранный из '//!' строк.
	Docstring []string
	Items     []Documented
}

// Documented pairs an item with the run of '///' doc lines immediately
// preceding it.
type Documented struct {
	Doc  []string
	Item Item
}

// Name is an identifier occurrence.
type Name struct {
	Span source.Span
	Sym  source.StringID
}

// Path is a dotted sequence of names, `a.b.c`.
type Path struct {
	Span     source.Span
	Segments []Name
}

// Visibility marks an optional leading `pub`. Span is empty when the
// modifier is absent.
type Visibility struct {
	Public bool
	Span   source.Span
}

// GenericParam is a single parameter in `[T, U: Constraint]`.
type GenericParam struct {
	Span       source.Span
	Name       Name
	Constraint Type // nil, если ограничения нет
}

// WherePredicate is one `Type: Constraint` pair of a where clause.
type WherePredicate struct {
	Span       source.Span
	Type       Type
	Constraint Type
}
