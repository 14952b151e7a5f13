package diag

// Code — компактный идентификатор диагностики со стабильной строковой
// формой вида "E001". Буква кодирует класс: E — ошибка, W —
// предупреждение, I — информация.
type Code uint16

const (
	// UnknownCode — на первое время, для диагностик без кода.
	UnknownCode Code = iota

	// LexError forwards a lexical error token; the message comes from
	// token.ErrKind.
	LexError
	// SynUnexpectedToken — парсер встретил не тот токен.
	SynUnexpectedToken
	// SynIntOverflow — целочисленный литерал не влезает в 64 бита.
	SynIntOverflow
	// SynFloatOverflow — литерал с плавающей точкой вне диапазона float64.
	SynFloatOverflow
	// SynExpectSemicolon — пропущена точка с запятой после утверждения.
	SynExpectSemicolon
	// IOLoadFileError — файл не удалось прочитать.
	IOLoadFileError

	// SynEmptyStatement — одинокая ';' без эффекта.
	SynEmptyStatement

	// ObsTimings — замеры фаз компиляции.
	ObsTimings
)

var codeIDs = map[Code]string{
	UnknownCode:        "E999",
	LexError:           "E000",
	SynUnexpectedToken: "E001",
	SynIntOverflow:     "E002",
	SynFloatOverflow:   "E003",
	SynExpectSemicolon: "E004",
	IOLoadFileError:    "E005",
	SynEmptyStatement:  "W000",
	ObsTimings:         "I000",
}

var codeDescription = map[Code]string{
	UnknownCode:        "Unknown error",
	LexError:           "Lexical error",
	SynUnexpectedToken: "Unexpected token",
	SynIntOverflow:     "Integer literal overflow",
	SynFloatOverflow:   "Float literal overflow",
	SynExpectSemicolon: "Expect semicolon",
	IOLoadFileError:    "Cannot read file",
	SynEmptyStatement:  "Empty statement",
	ObsTimings:         "Phase timings",
}

// ID возвращает стабильный идентификатор кода для вывода и сериализации.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return "E999"
}

func (c Code) String() string {
	return c.ID()
}

// Description возвращает краткое описание класса диагностики.
func (c Code) Description() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}
