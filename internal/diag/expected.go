package diag

import "strings"

// Expected — упорядоченное множество ожидаемых токенов для сообщения
// "expected ... , got ...". Дубликаты игнорируются, порядок вставки
// сохраняется.
type Expected struct {
	items []string
	seen  map[string]struct{}
}

// NewExpected builds a set from the given descriptions.
func NewExpected(items ...string) *Expected {
	e := &Expected{seen: make(map[string]struct{}, len(items))}
	for _, it := range items {
		e.Add(it)
	}
	return e
}

// Add appends a description unless it is already present.
func (e *Expected) Add(item string) {
	if _, ok := e.seen[item]; ok {
		return
	}
	e.seen[item] = struct{}{}
	e.items = append(e.items, item)
}

// Len возвращает число уникальных элементов.
func (e *Expected) Len() int {
	return len(e.items)
}

// String renders the set as "a", "a or b" or "a, b or c".
func (e *Expected) String() string {
	switch len(e.items) {
	case 0:
		return ""
	case 1:
		return e.items[0]
	case 2:
		return e.items[0] + " or " + e.items[1]
	default:
		return strings.Join(e.items[:len(e.items)-1], ", ") + " or " + e.items[len(e.items)-1]
	}
}
