package parser

import (
	"rill/internal/ast"
	"rill/internal/source"
	"rill/internal/token"
)

// itemStarters — токены, с которых может начинаться top-level item.
var itemStarters = []token.Kind{
	token.KwImport, token.KwFun, token.KwEnum, token.KwStruct,
	token.KwTrait, token.KwImpl, token.KwType, token.KwPub,
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseItems() []ast.Documented {
	var items []ast.Documented
	for !p.at(token.EOF) {
		startSpan := p.current.Span
		docs := p.takeDocs()
		item, ok := p.parseItem()
		if item != nil {
			items = append(items, ast.Documented{Doc: docs, Item: item})
		}
		if !ok {
			p.resyncTop()
			// гарантия прогресса, если ошибка случилась на стартере
			if p.current.Span == startSpan && !p.at(token.EOF) {
				p.advance()
			}
		}
	}
	return items
}

// parseItem выбирает распознаватель по первому токену после
// опциональной видимости. Неудачные разборы возвращают best-effort
// узел и false.
func (p *Parser) parseItem() (ast.Item, bool) {
	vis := p.parseVisibility()
	switch p.current.Kind {
	case token.KwImport:
		return p.parseImport(vis)
	case token.KwFun:
		return p.parseFunctionItem(vis)
	case token.KwEnum:
		return p.parseEnum(vis)
	case token.KwStruct:
		return p.parseStruct(vis)
	case token.KwTrait:
		return p.parseTrait(vis)
	case token.KwImpl:
		return p.parseImpl(vis)
	case token.KwType:
		return p.parseTypeAlias(vis, false)
	default:
		p.expectedError("item",
			token.KwImport, token.KwFun, token.KwEnum, token.KwStruct,
			token.KwTrait, token.KwImpl, token.KwType)
		return nil, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до стартового токена следующего item или EOF.
func (p *Parser) resyncTop() {
	p.skipUntil(itemStarters...)
}

func (p *Parser) parseVisibility() ast.Visibility {
	if p.at(token.KwPub) {
		tok := p.advance()
		return ast.Visibility{Public: true, Span: tok.Span}
	}
	return ast.Visibility{}
}

// visCover расширяет span item'а влево до модификатора pub, если он был.
func visCover(vis ast.Visibility, sp source.Span) source.Span {
	if vis.Public {
		return vis.Span.Cover(sp)
	}
	return sp
}
