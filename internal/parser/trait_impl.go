package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseTrait — `trait Name[gens] where ... { members }`; члены — только
// функции и алиасы типов, каждый со своим докстрингом.
func (p *Parser) parseTrait(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'trait'
	t := &ast.Trait{Span: visCover(vis, kw.Span), Vis: vis}

	name, ok := p.parseName("trait name")
	t.Name = name
	if !ok {
		return t, false
	}
	t.Span = t.Span.Cover(name.Span)

	t.Generics = p.parseGenericParams()
	t.Where = p.parseWhereClause()

	if _, lok := p.expect(token.LBrace, "trait body"); !lok {
		return t, false
	}
	t.Members = p.parseAssociatedMembers("trait member")

	rb, rok := p.expect(token.RBrace, "trait body")
	if rok {
		t.Span = t.Span.Cover(rb.Span)
	}
	return t, rok
}

// parseImpl — `impl[gens] Trait for Type { ... }` или
// `impl[gens] Type { ... }`.
func (p *Parser) parseImpl(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'impl'
	im := &ast.Impl{Span: visCover(vis, kw.Span), Vis: vis}

	im.Generics = p.parseGenericParams()

	first, ok := p.parseType("impl target")
	if !ok {
		im.Type = first
		return im, false
	}
	if p.at(token.KwFor) {
		p.advance()
		target, tok := p.parseType("impl target")
		im.Trait = first
		im.Type = target
		if !tok {
			return im, false
		}
	} else {
		im.Type = first
	}
	im.Span = im.Span.Cover(ast.TypeSpan(im.Type))

	im.Where = p.parseWhereClause()

	if _, lok := p.expect(token.LBrace, "impl body"); !lok {
		return im, false
	}
	im.Members = p.parseAssociatedMembers("impl member")

	rb, rok := p.expect(token.RBrace, "impl body")
	if rok {
		im.Span = im.Span.Cover(rb.Span)
	}
	return im, rok
}

// parseAssociatedMembers — цикл по членам trait/impl до '}': функции и
// алиасы типов с опциональной видимостью и докстрингами.
func (p *Parser) parseAssociatedMembers(production string) []ast.Documented {
	var members []ast.Documented
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		docs := p.takeDocs()
		mvis := p.parseVisibility()

		var item ast.Item
		var ok bool
		switch p.current.Kind {
		case token.KwFun:
			item, ok = p.parseFunctionItem(mvis)
		case token.KwType:
			item, ok = p.parseTypeAlias(mvis, true)
		default:
			p.expectedError(production, token.KwFun, token.KwType, token.RBrace)
			ok = false
		}
		if item != nil {
			members = append(members, ast.Documented{Doc: docs, Item: item})
		}
		if !ok {
			p.skipUntil(token.KwFun, token.KwType, token.KwPub, token.Semicolon, token.RBrace)
			p.consume(token.Semicolon)
		}
	}
	return members
}
