package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseTypeAlias — `type Name[gens] = Aliased;`. Внутри trait легальна
// форма без тела: `type Name;`.
func (p *Parser) parseTypeAlias(vis ast.Visibility, allowBodiless bool) (ast.Item, bool) {
	kw := p.advance() // 'type'
	ta := &ast.TypeAlias{Span: visCover(vis, kw.Span), Vis: vis}

	name, ok := p.parseName("type alias name")
	ta.Name = name
	if !ok {
		return ta, false
	}
	ta.Span = ta.Span.Cover(name.Span)

	ta.Generics = p.parseGenericParams()

	if allowBodiless && p.at(token.Semicolon) {
		semi := p.advance()
		ta.Span = ta.Span.Cover(semi.Span)
		return ta, true
	}

	if _, aok := p.expect(token.Assign, "type alias"); !aok {
		return ta, false
	}

	aliased, tok := p.parseType("aliased type")
	ta.Aliased = aliased
	if !tok {
		return ta, false
	}
	ta.Span = ta.Span.Cover(ast.TypeSpan(aliased))

	semi, sok := p.expect(token.Semicolon, "type alias")
	if sok {
		ta.Span = ta.Span.Cover(semi.Span)
	}
	return ta, sok
}
