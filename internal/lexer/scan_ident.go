package lexer

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"rill/internal/token"
)

// scanIdent сканирует идентификатор или ключевое слово. ASCII-путь не
// декодирует руны; как только встречается не-ASCII байт, переключаемся
// на юникодные предикаты.
func (lx *Lexer) scanIdent() token.Token {
	m := lx.cur.Mark()
	ascii := true
	for !lx.cur.EOF() {
		b := lx.cur.Peek()
		if isASCIIIdentPart(b) {
			lx.cur.Bump()
			continue
		}
		if b < utf8.RuneSelf {
			break
		}
		r, sz := lx.cur.PeekRune()
		if !isIdentPart(r) {
			break
		}
		ascii = false
		lx.cur.Off += sz
	}
	sp := lx.cur.SpanFrom(m)
	text := string(lx.cur.File.Content[sp.Start:sp.End])
	if ascii {
		if kw, ok := token.LookupKeyword(text); ok {
			return token.Token{Kind: kw, Span: sp}
		}
	} else {
		// имена с не-ASCII символами приводим к NFC, чтобы `café` в
		// разных нормализациях интернировался в один символ
		text = norm.NFC.String(text)
	}
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Sym:  lx.interner.Intern(text),
		Text: text,
	}
}

// scanWrappedIdent сканирует идентификатор в обратных кавычках:
// `type` — легальное имя. Кавычки в текст не входят.
func (lx *Lexer) scanWrappedIdent() token.Token {
	m := lx.cur.Mark()
	lx.cur.Bump() // открывающий '`'
	start := lx.cur.Off
	for {
		if lx.cur.EOF() || lx.cur.Peek() == '\n' {
			return lx.errTok(m, token.ErrUnterminatedWrappedIdentifier)
		}
		if lx.cur.Peek() == '`' {
			break
		}
		lx.cur.BumpRune()
	}
	text := string(lx.cur.File.Content[start:lx.cur.Off])
	lx.cur.Bump() // закрывающий '`'
	if text == "" {
		return lx.errTok(m, token.ErrEmptyWrappedIdentifier)
	}
	if !isASCII(text) {
		text = norm.NFC.String(text)
	}
	return token.Token{
		Kind: token.Ident,
		Span: lx.cur.SpanFrom(m),
		Sym:  lx.interner.Intern(text),
		Text: text,
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
