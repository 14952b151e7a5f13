package lexer

import (
	"rill/internal/token"
)

// noOff — сентинел "позиция не найдена" для invalid-цифры.
const noOff = ^uint32(0)

// digits поглощает цифры и '_' в заданной базе. Возвращаемая маска:
// бит 0 — была хотя бы одна цифра, бит 1 — было хотя бы одно '_'.
// Для баз <= 10 поглощаются все десятичные цифры; первая цифра вне базы
// запоминается в *invalid, чтобы весь литерал получил единый span.
func (lx *Lexer) digits(base int, invalid *uint32) int {
	ds := 0
	if base <= 10 {
		maxDigit := byte('0' + base)
		for !lx.cur.EOF() {
			b := lx.cur.Peek()
			switch {
			case b == '_':
				ds |= 2
			case isDecimal(b):
				if b >= maxDigit && *invalid == noOff {
					*invalid = lx.cur.Off
				}
				ds |= 1
			default:
				return ds
			}
			lx.cur.Bump()
		}
		return ds
	}
	for !lx.cur.EOF() {
		b := lx.cur.Peek()
		switch {
		case b == '_':
			ds |= 2
		case isHex(b):
			ds |= 1
		default:
			return ds
		}
		lx.cur.Bump()
	}
	return ds
}

// scanNumber сканирует числовой литерал: десятичный, 0b/0o/0x,
// с дробной частью и экспонентой, с '_' как разделителем групп.
// Токен несёт сырой текст; декодирование значений делает парсер.
func (lx *Lexer) scanNumber() token.Token {
	m := lx.cur.Mark()
	kind := token.IntLit
	base := 10
	prefix := byte(0) // 0 — нет, '0' — ведущий ноль, 'b'/'o'/'x' — база
	digsep := 0
	invalid := noOff

	if lx.cur.Peek() != '.' {
		if lx.cur.Peek() == '0' {
			lx.cur.Bump()
			switch lower(lx.cur.Peek()) {
			case 'x':
				lx.cur.Bump()
				base, prefix = 16, 'x'
			case 'o':
				lx.cur.Bump()
				base, prefix = 8, 'o'
			case 'b':
				lx.cur.Bump()
				base, prefix = 2, 'b'
			default:
				prefix = '0'
				digsep = 1
			}
		}
		digsep |= lx.digits(base, &invalid)
	}

	// точка открывает дробную часть только перед цифрой: `1.to_string()`
	// остаётся Int Dot Ident
	if lx.cur.Peek() == '.' && isDecimal(lx.cur.PeekAt(1)) {
		if prefix == 'x' || prefix == 'o' || prefix == 'b' {
			lx.cur.Bump()
			lx.digits(base, &invalid)
			return lx.errTok(m, token.ErrInvalidRadixPoint)
		}
		kind = token.FloatLit
		lx.cur.Bump()
		digsep |= lx.digits(10, &invalid)
	}

	if digsep&1 == 0 {
		return lx.errTok(m, token.ErrNumberContainsNoDigits)
	}

	if lower(lx.cur.Peek()) == 'e' && prefix != 'x' {
		requiresDecimal := prefix == 'o' || prefix == 'b'
		kind = token.FloatLit
		lx.cur.Bump()
		if lx.cur.Peek() == '+' || lx.cur.Peek() == '-' {
			lx.cur.Bump()
		}
		ds := lx.digits(10, &invalid)
		if requiresDecimal {
			return lx.errTok(m, token.ErrExponentRequiresDecimalMantissa)
		}
		if ds&1 == 0 {
			return lx.errTok(m, token.ErrExponentHasNoDigits)
		}
		digsep |= ds
	}

	if kind == token.IntLit && invalid != noOff {
		return lx.errTok(m, token.ErrDigitOutOfBase)
	}

	sp := lx.cur.SpanFrom(m)
	text := string(lx.cur.File.Content[sp.Start:sp.End])
	if digsep&2 != 0 && invalidSeparator(text) >= 0 {
		return lx.errTok(m, token.ErrUnderscoreMustSeparateDigits)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// invalidSeparator возвращает индекс первого '_', который не стоит
// между двумя цифрами, или -1, если все разделители на месте.
func invalidSeparator(x string) int {
	x1 := ' ' // символ после ведущего нуля, если есть префикс базы
	d := '.'  // класс предыдущего символа: '0' цифра, '_', '.' прочее
	i := 0

	if len(x) >= 2 && x[0] == '0' {
		x1 = rune(lower(x[1]))
		if x1 == 'x' || x1 == 'o' || x1 == 'b' {
			d = '0' // префикс считается за цифру
			i = 2
		}
	}

	for ; i < len(x); i++ {
		p := d
		d = rune(x[i])
		switch {
		case d == '_':
			if p != '0' {
				return i
			}
		case isDecimal(x[i]) || x1 == 'x' && isHex(x[i]):
			d = '0'
		default:
			if p == '_' {
				return i - 1
			}
			d = '.'
		}
	}
	if d == '_' {
		return len(x) - 1
	}
	return -1
}
