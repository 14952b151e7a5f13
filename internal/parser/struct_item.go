package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseStruct — `struct Name[gens] where ... { members }`.
func (p *Parser) parseStruct(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'struct'
	s := &ast.Struct{Span: visCover(vis, kw.Span), Vis: vis}

	name, ok := p.parseName("struct name")
	s.Name = name
	if !ok {
		return s, false
	}
	s.Span = s.Span.Cover(name.Span)

	s.Generics = p.parseGenericParams()
	s.Where = p.parseWhereClause()

	if _, lok := p.expect(token.LBrace, "struct body"); !lok {
		return s, false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		m, mok := p.parseStructMember()
		if mok {
			s.Members = append(s.Members, m)
		} else {
			p.skipUntil(token.Semicolon, token.RBrace)
			p.consume(token.Semicolon)
		}
	}

	rb, rok := p.expect(token.RBrace, "struct body")
	if rok {
		s.Span = s.Span.Cover(rb.Span)
	}
	return s, rok
}

// parseStructMember — `[pub] [mut] name: Type;`.
func (p *Parser) parseStructMember() (ast.StructMember, bool) {
	m := ast.StructMember{Doc: p.takeDocs()}
	m.Span = p.current.Span
	m.Vis = p.parseVisibility()

	if p.at(token.KwMut) {
		m.Mut = true
		p.advance()
	}

	name, ok := p.parseName("struct member")
	m.Name = name
	m.Span = m.Span.Cover(name.Span)
	if !ok {
		return m, false
	}

	if _, cok := p.expect(token.Colon, "struct member"); !cok {
		return m, false
	}

	ty, tok := p.parseType("struct member type")
	m.Type = ty
	if !tok {
		return m, false
	}
	m.Span = m.Span.Cover(ast.TypeSpan(ty))

	semi, sok := p.expect(token.Semicolon, "struct member")
	if sok {
		m.Span = m.Span.Cover(semi.Span)
	}
	return m, sok
}
