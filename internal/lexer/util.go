package lexer

import "unicode"

func lower(b byte) byte { return b | ('a' - 'A') }

func isDecimal(b byte) bool { return '0' <= b && b <= '9' }

func isHex(b byte) bool {
	return isDecimal(b) || 'a' <= lower(b) && lower(b) <= 'f'
}

func isASCIIIdentStart(b byte) bool {
	return b == '_' || 'a' <= lower(b) && lower(b) <= 'z'
}

func isASCIIIdentPart(b byte) bool {
	return isASCIIIdentStart(b) || isDecimal(b)
}

// isIdentStart проверяет, может ли руна начинать идентификатор.
// Любая буква по Unicode подходит; категории, лишь похожие на буквы,
// сюда не попадают.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
