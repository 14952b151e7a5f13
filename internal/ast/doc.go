// Package ast defines the owned syntax tree produced by the parser.
//
// Every syntactic category is a closed sum type: a sealed interface with
// one struct per form and a package-level exhaustive span accessor
// (ItemSpan, TypeSpan, StmtSpan, ExprSpan). Every node carries its own
// source.Span and exclusively owns its children; the tree is immutable
// after the parse and the caller of the parse entry point owns the File.
package ast
