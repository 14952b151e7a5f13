package parser

import (
	"rill/internal/ast"
	"rill/internal/token"
)

// parseGenericParams — `[T, U: Constraint]`; отсутствие списка легально.
func (p *Parser) parseGenericParams() []ast.GenericParam {
	if !p.at(token.LBracket) {
		return nil
	}
	p.advance() // '['

	var params []ast.GenericParam
	p.parseList(token.Comma, []token.Kind{token.RBracket}, "generic parameter", func() bool {
		name, ok := p.parseName("generic parameter")
		if !ok {
			return false
		}
		gp := ast.GenericParam{Span: name.Span, Name: name}
		if p.consume(token.Colon) {
			constraint, cok := p.parseType("generic constraint")
			if !cok {
				return false
			}
			gp.Constraint = constraint
			gp.Span = gp.Span.Cover(ast.TypeSpan(constraint))
		}
		params = append(params, gp)
		return true
	})

	p.expect(token.RBracket, "generic parameters")
	return params
}

// parseWhereClause — `where Type: Constraint, ...`; терминатор ('{' или
// ';') клаузой не съедается.
func (p *Parser) parseWhereClause() []ast.WherePredicate {
	if !p.at(token.KwWhere) {
		return nil
	}
	p.advance() // 'where'

	var preds []ast.WherePredicate
	p.parseList(token.Comma, []token.Kind{token.LBrace, token.Semicolon}, "where predicate", func() bool {
		ty, ok := p.parseType("where predicate")
		if !ok {
			return false
		}
		if _, cok := p.expect(token.Colon, "where predicate"); !cok {
			return false
		}
		constraint, tok := p.parseType("where constraint")
		if !tok {
			return false
		}
		preds = append(preds, ast.WherePredicate{
			Span:       ast.TypeSpan(ty).Cover(ast.TypeSpan(constraint)),
			Type:       ty,
			Constraint: constraint,
		})
		return true
	})
	return preds
}
