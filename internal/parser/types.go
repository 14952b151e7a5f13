package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseType — диспетчеризация форм типов по одному токену:
// путь с опциональными аргументами, `&[mut] T`, `[T]`, `!Trait`;
// постфиксный '?' оборачивает любую форму в Option.
func (p *Parser) parseType(production string) (ast.Type, bool) {
	ty, ok := p.parseTypeCore(production)
	if !ok {
		return ty, false
	}
	for p.at(token.Question) {
		q := p.advance()
		ty = &ast.OptionType{
			Span:  ast.TypeSpan(ty).Cover(q.Span),
			Inner: ty,
		}
	}
	return ty, true
}

func (p *Parser) parseTypeCore(production string) (ast.Type, bool) {
	switch p.current.Kind {
	case token.Ident:
		return p.parsePrimaryType()

	case token.Amp:
		amp := p.advance()
		mut := p.consume(token.KwMut)
		inner, ok := p.parseType(production)
		ref := &ast.ReferenceType{Span: amp.Span, Mut: mut, Inner: inner}
		if ok {
			ref.Span = ref.Span.Cover(ast.TypeSpan(inner))
		}
		return ref, ok

	case token.LBracket:
		lb := p.advance()
		inner, ok := p.parseType(production)
		arr := &ast.ArrayType{Span: lb.Span, Inner: inner}
		if !ok {
			return arr, false
		}
		rb, rok := p.expect(token.RBracket, "array type")
		if rok {
			arr.Span = arr.Span.Cover(rb.Span)
		}
		return arr, rok

	case token.Bang:
		bang := p.advance()
		inner, ok := p.parseType(production)
		neg := &ast.NegatedTraitType{Span: bang.Span, Inner: inner}
		if ok {
			neg.Span = neg.Span.Cover(ast.TypeSpan(inner))
		}
		return neg, ok

	default:
		p.expectedError(production,
			token.Ident, token.Amp, token.LBracket, token.Bang)
		return &ast.PrimaryType{Span: p.diagnosticSpan()}, false
	}
}

// parsePrimaryType — `a.b.Name[Arg, ...]`.
func (p *Parser) parsePrimaryType() (ast.Type, bool) {
	path, ok := p.parsePath("type path")
	prim := &ast.PrimaryType{Span: path.Span, Path: path}
	if !ok {
		return prim, false
	}

	if p.at(token.LBracket) {
		p.advance()
		p.parseList(token.Comma, []token.Kind{token.RBracket}, "type argument", func() bool {
			arg, aok := p.parseType("type argument")
			if aok {
				prim.Args = append(prim.Args, arg)
			}
			return aok
		})
		rb, rok := p.expect(token.RBracket, "type arguments")
		if !rok {
			return prim, false
		}
		prim.Span = prim.Span.Cover(rb.Span)
	}
	return prim, true
}
