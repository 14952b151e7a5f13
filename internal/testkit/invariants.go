// Package testkit provides shared test helpers for the lexer and parser
// packages.
package testkit

import (
	"testing"

	"rill/internal/ast"
	"rill/internal/source"
)

// CheckSpanInvariants обходит всё дерево и проверяет, что span каждого
// узла корректен (start <= end) и что span родителя покрывает спаны
// детей. Рассчитан на деревья без диагностик: узлы после восстановления
// могут иметь усечённые спаны.
func CheckSpanInvariants(t *testing.T, f *ast.File) {
	t.Helper()
	w := &spanWalker{t: t}
	w.checkSpan("file", f.Span)
	for _, d := range f.Items {
		w.item(f.Span, d.Item)
	}
}

type spanWalker struct {
	t *testing.T
}

func (w *spanWalker) checkSpan(label string, sp source.Span) {
	w.t.Helper()
	if sp.Start > sp.End {
		w.t.Errorf("%s: inverted span %v", label, sp)
	}
}

func (w *spanWalker) contains(label string, parent, child source.Span) {
	w.t.Helper()
	w.checkSpan(label, child)
	if !parent.Contains(child) {
		w.t.Errorf("%s: child span %v escapes parent %v", label, child, parent)
	}
}

func (w *spanWalker) item(parent source.Span, it ast.Item) {
	w.t.Helper()
	sp := ast.ItemSpan(it)
	w.contains("item", parent, sp)

	switch n := it.(type) {
	case *ast.Import:
		w.contains("import path", sp, n.Path.Span)
		if n.Alias != nil {
			w.contains("import alias", sp, n.Alias.Span)
		}
	case *ast.Function:
		w.signature(sp, n.Signature)
		if n.Body != nil {
			w.block(sp, n.Body)
		}
	case *ast.Enum:
		w.contains("enum name", sp, n.Name.Span)
		for _, v := range n.Variants {
			w.contains("enum variant", sp, v.Span)
		}
	case *ast.Struct:
		w.contains("struct name", sp, n.Name.Span)
		for _, g := range n.Generics {
			w.contains("generic param", sp, g.Span)
		}
		for _, m := range n.Members {
			w.contains("struct member", sp, m.Span)
			if m.Type != nil {
				w.typ(m.Span, m.Type)
			}
		}
	case *ast.Trait:
		w.contains("trait name", sp, n.Name.Span)
		for _, m := range n.Members {
			w.item(sp, m.Item)
		}
	case *ast.Impl:
		if n.Type != nil {
			w.typ(sp, n.Type)
		}
		for _, m := range n.Members {
			w.item(sp, m.Item)
		}
	case *ast.TypeAlias:
		w.contains("type alias name", sp, n.Name.Span)
		if n.Aliased != nil {
			w.typ(sp, n.Aliased)
		}
	}
}

func (w *spanWalker) signature(parent source.Span, sig ast.FunctionSignature) {
	w.t.Helper()
	w.contains("signature", parent, sig.Span)
	w.contains("function name", sig.Span, sig.Name.Span)
	for _, param := range sig.Params {
		w.contains("parameter", sig.Span, param.Span)
		if param.Type != nil {
			w.typ(param.Span, param.Type)
		}
		if param.Default != nil {
			w.expr(param.Span, param.Default)
		}
	}
	if sig.Return != nil {
		w.typ(sig.Span, sig.Return)
	}
}

func (w *spanWalker) typ(parent source.Span, ty ast.Type) {
	w.t.Helper()
	sp := ast.TypeSpan(ty)
	w.contains("type", parent, sp)

	switch n := ty.(type) {
	case *ast.PrimaryType:
		w.contains("type path", sp, n.Path.Span)
		for _, arg := range n.Args {
			w.typ(sp, arg)
		}
	case *ast.ReferenceType:
		w.typ(sp, n.Inner)
	case *ast.ArrayType:
		w.typ(sp, n.Inner)
	case *ast.OptionType:
		w.typ(sp, n.Inner)
	case *ast.NegatedTraitType:
		w.typ(sp, n.Inner)
	}
}

func (w *spanWalker) block(parent source.Span, b *ast.Block) {
	w.t.Helper()
	w.contains("block", parent, b.Span)
	for _, st := range b.Statements {
		w.stmt(b.Span, st)
	}
}

func (w *spanWalker) stmt(parent source.Span, st ast.Statement) {
	w.t.Helper()
	sp := ast.StmtSpan(st)
	w.contains("statement", parent, sp)

	switch n := st.(type) {
	case *ast.Var:
		w.contains("var name", sp, n.Name.Span)
		if n.Type != nil {
			w.typ(sp, n.Type)
		}
		if n.Value != nil {
			w.expr(sp, n.Value)
		}
	case *ast.Return:
		if n.Value != nil {
			w.expr(sp, n.Value)
		}
	case *ast.Defer:
		if n.Call != nil {
			w.expr(sp, n.Call)
		}
	case *ast.ExprStatement:
		w.expr(sp, n.Expr)
	}
}

func (w *spanWalker) expr(parent source.Span, e ast.Expr) {
	w.t.Helper()
	sp := ast.ExprSpan(e)
	w.contains("expression", parent, sp)

	switch n := e.(type) {
	case *ast.ArrayExpr:
		for _, el := range n.Elements {
			w.expr(sp, el)
		}
	case *ast.ParenExpr:
		w.expr(sp, n.Inner)
	case *ast.Unary:
		w.expr(sp, n.Operand)
	case *ast.Binary:
		w.expr(sp, n.Left)
		w.expr(sp, n.Right)
	case *ast.Call:
		w.expr(sp, n.Callee)
		for _, arg := range n.Args {
			w.expr(sp, arg)
		}
	case *ast.Property:
		w.expr(sp, n.Target)
		w.contains("property name", sp, n.Name.Span)
	case *ast.TypeArguments:
		w.expr(sp, n.Expr)
		for _, arg := range n.Args {
			w.typ(sp, arg)
		}
	case *ast.Cast:
		w.expr(sp, n.Expr)
		if n.Type != nil {
			w.typ(sp, n.Type)
		}
	case *ast.If:
		for _, arm := range n.Blocks {
			w.contains("if arm", sp, arm.Span)
			w.expr(arm.Span, arm.Cond)
			w.block(arm.Span, arm.Body)
		}
		if n.Else != nil {
			w.block(sp, n.Else)
		}
	case *ast.While:
		w.expr(sp, n.Cond)
		if n.Body != nil {
			w.block(sp, n.Body)
		}
	}
}
