package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseFunctionItem — `fun name[gens](params) [: Type] [where ...]`
// с телом-блоком или ';' для декларации без тела.
func (p *Parser) parseFunctionItem(vis ast.Visibility) (ast.Item, bool) {
	kw := p.advance() // 'fun'
	fn := &ast.Function{Span: visCover(vis, kw.Span)}
	sig := ast.FunctionSignature{Span: fn.Span, Vis: vis}

	name, ok := p.parseName("function name")
	sig.Name = name
	if !ok {
		fn.Signature = sig
		return fn, false
	}
	sig.Span = sig.Span.Cover(name.Span)

	sig.Generics = p.parseGenericParams()

	if _, lok := p.expect(token.LParen, "function parameters"); !lok {
		fn.Signature = sig
		return fn, false
	}
	p.parseList(token.Comma, []token.Kind{token.RParen}, "function parameter", func() bool {
		param, pok := p.parseParam()
		if pok {
			sig.Params = append(sig.Params, param)
		}
		return pok
	})
	rp, rok := p.expect(token.RParen, "function parameters")
	if !rok {
		fn.Signature = sig
		return fn, false
	}
	sig.Span = sig.Span.Cover(rp.Span)

	if p.consume(token.Colon) {
		ret, tok := p.parseType("return type")
		sig.Return = ret
		if !tok {
			fn.Signature = sig
			return fn, false
		}
		sig.Span = sig.Span.Cover(ast.TypeSpan(ret))
	}

	sig.Where = p.parseWhereClause()
	fn.Signature = sig
	fn.Span = fn.Span.Cover(sig.Span)

	if p.at(token.LBrace) {
		body, bok := p.parseBlock()
		fn.Body = body
		fn.HasBody = true
		fn.Span = fn.Span.Cover(body.Span)
		return fn, bok
	}

	semi, sok := p.expect(token.Semicolon, "function declaration")
	if sok {
		fn.Span = fn.Span.Cover(semi.Span)
	}
	return fn, sok
}

// parseParam — `name: Type [= default]`.
func (p *Parser) parseParam() (ast.Param, bool) {
	name, ok := p.parseName("function parameter")
	param := ast.Param{Span: name.Span, Name: name}
	if !ok {
		return param, false
	}

	if _, cok := p.expect(token.Colon, "function parameter"); !cok {
		return param, false
	}

	ty, tok := p.parseType("parameter type")
	param.Type = ty
	if !tok {
		return param, false
	}
	param.Span = param.Span.Cover(ast.TypeSpan(ty))

	if p.consume(token.Assign) {
		def, dok := p.parseExpression()
		param.Default = def
		if !dok {
			return param, false
		}
		param.Span = param.Span.Cover(ast.ExprSpan(def))
	}
	return param, true
}
