package parser

import (
	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/source"
	"rill/internal/token"
)

// parseBlock — `{ statements }`.
func (p *Parser) parseBlock() (*ast.Block, bool) {
	lb, ok := p.expect(token.LBrace, "block")
	b := &ast.Block{Span: lb.Span}
	if !ok {
		return b, false
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		startSpan := p.current.Span
		st, sok := p.parseStatement()
		if st != nil {
			b.Statements = append(b.Statements, st)
		}
		if !sok {
			p.skipUntil(token.Semicolon, token.RBrace)
			p.consume(token.Semicolon)
			if p.current.Span == startSpan && !p.at(token.EOF) {
				p.advance()
			}
		}
	}

	rb, rok := p.expect(token.RBrace, "block")
	if rok {
		b.Span = b.Span.Cover(rb.Span)
	}
	return b, rok
}

// parseStatement разбирает одно утверждение. Возвращённый nil при
// ok==true означает пустое утверждение (голая ';').
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.current.Kind {
	case token.Semicolon:
		semi := p.advance()
		p.report(diag.SynEmptyStatement, diag.SevWarning, semi.Span, "empty statement")
		return nil, true
	case token.KwVar:
		return p.parseVar()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwDefer:
		return p.parseDefer()
	default:
		return p.parseExprStatement()
	}
}

// parseVar — `var [mut] name [: Type] [= expr];`.
func (p *Parser) parseVar() (ast.Statement, bool) {
	kw := p.advance() // 'var'
	v := &ast.Var{Span: kw.Span}

	v.Mut = p.consume(token.KwMut)

	name, ok := p.parseName("var name")
	v.Name = name
	if !ok {
		return v, false
	}
	v.Span = v.Span.Cover(name.Span)

	if p.consume(token.Colon) {
		ty, tok := p.parseType("var type")
		v.Type = ty
		if !tok {
			return v, false
		}
		v.Span = v.Span.Cover(ast.TypeSpan(ty))
	}

	if p.consume(token.Assign) {
		val, vok := p.parseExpression()
		v.Value = val
		if !vok {
			return v, false
		}
		v.Span = v.Span.Cover(ast.ExprSpan(val))
	}

	semi, sok := p.expect(token.Semicolon, "var statement")
	if sok {
		v.Span = v.Span.Cover(semi.Span)
	}
	return v, sok
}

// parseReturn — `return [expr];`.
func (p *Parser) parseReturn() (ast.Statement, bool) {
	kw := p.advance() // 'return'
	r := &ast.Return{Span: kw.Span}

	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		val, ok := p.parseExpression()
		r.Value = val
		if !ok {
			return r, false
		}
		r.Span = r.Span.Cover(ast.ExprSpan(val))
	}

	semi, sok := p.expect(token.Semicolon, "return statement")
	if sok {
		r.Span = r.Span.Cover(semi.Span)
	}
	return r, sok
}

// parseDefer — `defer call;`.
func (p *Parser) parseDefer() (ast.Statement, bool) {
	kw := p.advance() // 'defer'
	d := &ast.Defer{Span: kw.Span}

	call, ok := p.parseExpression()
	d.Call = call
	if !ok {
		return d, false
	}
	d.Span = d.Span.Cover(ast.ExprSpan(call))

	semi, sok := p.expect(token.Semicolon, "defer statement")
	if sok {
		d.Span = d.Span.Cover(semi.Span)
	}
	return d, sok
}

// parseExprStatement — выражение в позиции утверждения. Выражения с
// блоком на конце (if/while) не требуют ';'; хвостовое выражение блока
// перед '}' легально без ';'. Пропущенная ';' — E004 c фиксом-вставкой.
func (p *Parser) parseExprStatement() (ast.Statement, bool) {
	expr, ok := p.parseExpression()
	if expr == nil {
		return nil, false
	}
	st := &ast.ExprStatement{Span: ast.ExprSpan(expr), Expr: expr}
	if !ok {
		return st, false
	}

	if p.at(token.Semicolon) {
		semi := p.advance()
		st.HasSemicolon = true
		st.Span = st.Span.Cover(semi.Span)
		return st, true
	}

	if endsWithBlock(expr) || p.at(token.RBrace) {
		// блоковое выражение или хвост блока: ';' не нужна
		return st, true
	}

	sp := ast.ExprSpan(expr)
	insertAt := source.Span{File: sp.File, Start: sp.End, End: sp.End}
	p.reportDiag(diag.NewError(diag.SynExpectSemicolon, insertAt, "expected `;` after statement").
		WithFix(diag.Fix{
			ID:    "insert-semicolon",
			Title: "insert `;`",
			Edits: []diag.TextEdit{{Span: insertAt, NewText: ";"}},
		}))
	return st, true
}

// endsWithBlock — заканчивается ли выражение '}': такие формы легальны
// в позиции утверждения без ';'.
func endsWithBlock(e ast.Expr) bool {
	switch e.(type) {
	case *ast.If, *ast.While:
		return true
	default:
		return false
	}
}
