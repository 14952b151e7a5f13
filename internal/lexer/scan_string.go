package lexer

import (
	"strings"
	"unicode/utf8"

	"rill/internal/token"
)

// scanString сканирует строковый литерал с декодированием escape-
// последовательностей. Перевод строки внутри литерала запрещён.
// При ошибке в escape возвращается токен ошибки со span самой
// последовательности; остаток строки долексируется как обычный текст.
func (lx *Lexer) scanString() token.Token {
	m := lx.cur.Mark()
	lx.cur.Bump() // открывающая '"'
	var buf strings.Builder
	for {
		if lx.cur.EOF() || lx.cur.Peek() == '\n' {
			return lx.errTok(m, token.ErrUnterminatedStringLiteral)
		}
		b := lx.cur.Peek()
		if b == '"' {
			lx.cur.Bump()
			break
		}
		if b == '\\' {
			em := lx.cur.Mark()
			r, bad := lx.scanEscape()
			if bad != token.ErrNone {
				return lx.errTok(em, bad)
			}
			buf.WriteRune(r)
			continue
		}
		buf.WriteRune(lx.cur.BumpRune())
	}
	return token.Token{
		Kind: token.StringLit,
		Span: lx.cur.SpanFrom(m),
		Text: buf.String(),
	}
}

// scanChar сканирует символьный литерал 'x'. Значение декодируется
// сразу: Token.Char несёт скалярное значение.
func (lx *Lexer) scanChar() token.Token {
	m := lx.cur.Mark()
	lx.cur.Bump() // открывающая '\''
	count := 0
	var val rune
	for {
		if lx.cur.EOF() || lx.cur.Peek() == '\n' {
			return lx.errTok(m, token.ErrUnterminatedCharLiteral)
		}
		if lx.cur.Peek() == '\'' {
			lx.cur.Bump()
			break
		}
		if lx.cur.Peek() == '\\' {
			em := lx.cur.Mark()
			r, bad := lx.scanEscape()
			if bad != token.ErrNone {
				return lx.errTok(em, bad)
			}
			val = r
		} else {
			val = lx.cur.BumpRune()
		}
		count++
	}
	switch {
	case count == 0:
		return lx.errTok(m, token.ErrEmptyCharLiteral)
	case count > 1:
		return lx.errTok(m, token.ErrMoreThanOneCharInCharLiteral)
	}
	return token.Token{
		Kind: token.CharLit,
		Span: lx.cur.SpanFrom(m),
		Char: val,
	}
}

// scanEscape декодирует одну escape-последовательность, начиная с '\'.
// Поддерживаются \b \f \n \r \t \' \" \\ \0 и юникодные формы
// \u{1..4 hex}, \U{1..8 hex}, \x{2 hex}.
func (lx *Lexer) scanEscape() (rune, token.ErrKind) {
	lx.cur.Bump() // '\'
	if lx.cur.EOF() || lx.cur.Peek() == '\n' {
		return 0, token.ErrEmptyEscapeSequence
	}
	switch b := lx.cur.Bump(); b {
	case 'b':
		return '\b', token.ErrNone
	case 'f':
		return '\f', token.ErrNone
	case 'n':
		return '\n', token.ErrNone
	case 'r':
		return '\r', token.ErrNone
	case 't':
		return '\t', token.ErrNone
	case '\'':
		return '\'', token.ErrNone
	case '"':
		return '"', token.ErrNone
	case '\\':
		return '\\', token.ErrNone
	case '0':
		return 0, token.ErrNone
	case 'u':
		return lx.scanBracedHex(1, 4)
	case 'U':
		return lx.scanBracedHex(1, 8)
	case 'x':
		return lx.scanBracedHex(2, 2)
	default:
		return 0, token.ErrUnknownEscapeSequence
	}
}

// scanBracedHex читает '{', от minDigits до maxDigits шестнадцатеричных
// цифр и '}', и проверяет, что значение — валидный скаляр Unicode.
func (lx *Lexer) scanBracedHex(minDigits, maxDigits int) (rune, token.ErrKind) {
	if !lx.cur.Eat('{') {
		return 0, token.ErrExpectedOpenBraceInEscapeSequence
	}
	val := rune(0)
	n := 0
	for n < maxDigits && !lx.cur.EOF() && isHex(lx.cur.Peek()) {
		val = val<<4 | rune(hexValue(lx.cur.Bump()))
		n++
	}
	if n < minDigits {
		return 0, token.ErrExpectedDigitInEscapeSequence
	}
	if !lx.cur.Eat('}') {
		return 0, token.ErrExpectedCloseBraceInEscapeSequence
	}
	if val > utf8.MaxRune || !utf8.ValidRune(val) {
		return 0, token.ErrInvalidUnicodeEscapeSequence
	}
	return val, token.ErrNone
}

func hexValue(b byte) int {
	if isDecimal(b) {
		return int(b - '0')
	}
	return int(lower(b)-'a') + 10
}
