package token

// ErrKind classifies lexical errors carried by Error tokens. The lexer never
// aborts on malformed input: it emits an Error token with the matching kind
// and keeps scanning; the parser forwards the kind to the diagnostics sink.
type ErrKind uint8

const (
	// ErrNone is the zero value; valid tokens carry it.
	ErrNone ErrKind = iota
	// ErrUnexpectedChar is produced for a scalar value no rule accepts.
	ErrUnexpectedChar
	// ErrUnterminatedStringLiteral is produced when a newline or EOF is hit
	// before the closing '"'.
	ErrUnterminatedStringLiteral
	// ErrUnterminatedCharLiteral is produced when a newline or EOF is hit
	// before the closing '\''.
	ErrUnterminatedCharLiteral
	// ErrEmptyCharLiteral is produced for ''.
	ErrEmptyCharLiteral
	// ErrMoreThanOneCharInCharLiteral is produced when a char literal decodes
	// to more than one scalar value.
	ErrMoreThanOneCharInCharLiteral
	// ErrUnterminatedWrappedIdentifier is produced when a newline or EOF is
	// hit before the closing backtick.
	ErrUnterminatedWrappedIdentifier
	// ErrEmptyWrappedIdentifier is produced for ``.
	ErrEmptyWrappedIdentifier

	// ErrEmptyEscapeSequence is produced for a '\' right before EOF.
	ErrEmptyEscapeSequence
	// ErrUnknownEscapeSequence is produced for an unrecognized escape.
	ErrUnknownEscapeSequence
	// ErrExpectedOpenBraceInEscapeSequence is produced when '{' is missing
	// after '\u', '\U' or '\x'.
	ErrExpectedOpenBraceInEscapeSequence
	// ErrExpectedCloseBraceInEscapeSequence is produced when '}' is missing
	// at the end of a '\u{…}', '\U{…}' or '\x{…}' escape.
	ErrExpectedCloseBraceInEscapeSequence
	// ErrExpectedDigitInEscapeSequence is produced when a hex digit is
	// missing inside a braced escape.
	ErrExpectedDigitInEscapeSequence
	// ErrInvalidUnicodeEscapeSequence is produced when the escape decodes to
	// something that is not a Unicode scalar value.
	ErrInvalidUnicodeEscapeSequence

	// ErrDigitOutOfBase is produced for a digit invalid in the literal's base.
	ErrDigitOutOfBase
	// ErrNumberContainsNoDigits is produced for a based literal with no
	// digits, e.g. '0x'.
	ErrNumberContainsNoDigits
	// ErrInvalidRadixPoint is produced for a radix point in a non-decimal
	// literal, e.g. '0b1.0'.
	ErrInvalidRadixPoint
	// ErrExponentHasNoDigits is produced for an exponent marker with no
	// digits after it.
	ErrExponentHasNoDigits
	// ErrExponentRequiresDecimalMantissa is produced for an exponent on a
	// binary or octal mantissa.
	ErrExponentRequiresDecimalMantissa
	// ErrUnderscoreMustSeparateDigits is produced for a misplaced '_'
	// digit separator.
	ErrUnderscoreMustSeparateDigits
)

var errKindMessages = map[ErrKind]string{
	ErrNone:                               "no error",
	ErrUnexpectedChar:                     "unexpected character",
	ErrUnterminatedStringLiteral:          "unterminated string literal",
	ErrUnterminatedCharLiteral:            "unterminated character literal",
	ErrEmptyCharLiteral:                   "empty character literal",
	ErrMoreThanOneCharInCharLiteral:       "more than one character in character literal",
	ErrUnterminatedWrappedIdentifier:      "unterminated wrapped identifier",
	ErrEmptyWrappedIdentifier:             "empty wrapped identifier",
	ErrEmptyEscapeSequence:                "empty escape sequence",
	ErrUnknownEscapeSequence:              "unknown escape sequence",
	ErrExpectedOpenBraceInEscapeSequence:  "expected `{` in escape sequence",
	ErrExpectedCloseBraceInEscapeSequence: "expected `}` in escape sequence",
	ErrExpectedDigitInEscapeSequence:      "expected hex digit in escape sequence",
	ErrInvalidUnicodeEscapeSequence:       "invalid Unicode escape sequence",
	ErrDigitOutOfBase:                     "digit does not correspond to base",
	ErrNumberContainsNoDigits:             "number contains no digits",
	ErrInvalidRadixPoint:                  "invalid radix point",
	ErrExponentHasNoDigits:                "exponent has no digits",
	ErrExponentRequiresDecimalMantissa:    "exponent requires decimal mantissa",
	ErrUnderscoreMustSeparateDigits:       "underscore must separate successive digits",
}

func (e ErrKind) String() string {
	if msg, ok := errKindMessages[e]; ok {
		return msg
	}
	return "unknown lexical error"
}
