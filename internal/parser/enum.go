package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseEnum — `enum Name { Variant, ... }`. Варианты документируемы,
// висячая запятая легальна.
func (p *Parser) parseEnum(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'enum'
	e := &ast.Enum{Span: visCover(vis, kw.Span), Vis: vis}

	name, ok := p.parseName("enum name")
	e.Name = name
	if !ok {
		return e, false
	}
	e.Span = e.Span.Cover(name.Span)

	if _, lok := p.expect(token.LBrace, "enum body"); !lok {
		return e, false
	}

	p.parseList(token.Comma, []token.Kind{token.RBrace}, "enum variant", func() bool {
		docs := p.takeDocs()
		v, vok := p.parseName("enum variant")
		if !vok {
			return false
		}
		e.Variants = append(e.Variants, ast.EnumVariant{
			Span: v.Span,
			Doc:  docs,
			Name: v,
		})
		return true
	})

	rb, rok := p.expect(token.RBrace, "enum body")
	if rok {
		e.Span = e.Span.Cover(rb.Span)
	}
	return e, rok
}
