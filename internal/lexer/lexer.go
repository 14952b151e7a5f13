package lexer

import (
	"unicode"
	"unicode/utf8"

	"rill/internal/source"
	"rill/internal/token"
)

// Lexer turns the contents of a single file into a stream of tokens.
// Lexical errors are returned as ordinary tokens with Kind == token.Error;
// the stream itself never aborts. Once the end of the file is reached,
// Next keeps returning the same EOF token.
type Lexer struct {
	cur      Cursor
	interner *source.Interner
}

// New creates a lexer over the given file. Identifier names are interned
// through the provided interner, which may be shared between files.
func New(f *source.File, interner *source.Interner) *Lexer {
	return &Lexer{
		cur:      NewCursor(f),
		interner: interner,
	}
}

// Next scans and returns the next token.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()
	if lx.cur.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.cur.File.ID, Start: lx.cur.Limit, End: lx.cur.Limit},
		}
	}
	b := lx.cur.Peek()
	switch {
	case b == '/' && lx.cur.PeekAt(1) == '/':
		return lx.scanComment()
	case isASCIIIdentStart(b):
		return lx.scanIdent()
	case b == '`':
		return lx.scanWrappedIdent()
	case isDecimal(b), b == '.' && isDecimal(lx.cur.PeekAt(1)):
		return lx.scanNumber()
	case b == '"':
		return lx.scanString()
	case b == '\'':
		return lx.scanChar()
	case b >= utf8.RuneSelf:
		r, _ := lx.cur.PeekRune()
		if isIdentStart(r) {
			return lx.scanIdent()
		}
		m := lx.cur.Mark()
		lx.cur.BumpRune()
		return lx.errTok(m, token.ErrUnexpectedChar)
	default:
		return lx.scanOperator()
	}
}

// Tokenize scans the whole file and returns every token including the
// final EOF.
func Tokenize(f *source.File, interner *source.Interner) []token.Token {
	lx := New(f, interner)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// skipWhitespace пропускает пробельные символы, включая юникодные
// разделители строк U+2028/U+2029.
func (lx *Lexer) skipWhitespace() {
	for !lx.cur.EOF() {
		b := lx.cur.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			lx.cur.Bump()
		case b >= utf8.RuneSelf:
			r, sz := lx.cur.PeekRune()
			if !unicode.IsSpace(r) {
				return
			}
			lx.cur.Off += sz
		default:
			return
		}
	}
}

// scanComment сканирует '//', '///' и '//!' до конца строки. Перевод
// строки в токен не входит. Text хранит содержимое без маркера.
func (lx *Lexer) scanComment() token.Token {
	m := lx.cur.Mark()
	lx.cur.Off += 2 // '//'
	kind := token.Comment
	global := false
	switch lx.cur.Peek() {
	case '/':
		lx.cur.Bump()
		kind = token.DocComment
	case '!':
		lx.cur.Bump()
		kind = token.DocComment
		global = true
	}
	content := lx.cur.Mark()
	for !lx.cur.EOF() && lx.cur.Peek() != '\n' {
		lx.cur.Bump()
	}
	sp := lx.cur.SpanFrom(m)
	return token.Token{
		Kind:   kind,
		Span:   sp,
		Text:   string(lx.cur.File.Content[uint32(content):lx.cur.Off]),
		Global: global,
	}
}

// errTok строит токен лексической ошибки со span от метки до текущей
// позиции.
func (lx *Lexer) errTok(m Mark, bad token.ErrKind) token.Token {
	return token.Token{Kind: token.Error, Span: lx.cur.SpanFrom(m), Bad: bad}
}
