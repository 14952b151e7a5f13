package source

import (
	"slices"
	"sync"
)

// StringID — стабильный идентификатор интернированной строки.
type StringID uint32

// NoStringID — зарезервированный нулевой идентификатор ("нет строки").
const NoStringID StringID = 0

// Interner отображает повторяющийся текст (идентификаторы, строки) в
// небольшие стабильные идентификаторы. Один Interner разделяется всеми
// файловыми конвейерами: Intern/InternBytes выполняют insert-or-lookup под
// RWMutex, поэтому один и тот же текст получает один и тот же ID независимо
// от того, какой воркер интернировал его первым.
type Interner struct {
	mu    sync.RWMutex
	byID  []string            // индекс -> строка (byID[0] = "" для NoStringID)
	index map[string]StringID // строка -> ID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern вставляет строку и возвращает её ID.
// Если строка уже есть, возвращает существующий ID.
func (i *Interner) Intern(s string) StringID {
	i.mu.RLock()
	id, ok := i.index[s]
	i.mu.RUnlock()
	if ok {
		return id
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	// Повторная проверка: другой воркер мог успеть первым.
	if id, ok := i.index[s]; ok {
		return id
	}
	// Собственная копия строки, чтобы не держать исходный буфер файла.
	cpy := string([]byte(s))
	id = StringID(len(i.byID)) // #nosec G115 -- количество строк не превышает uint32
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes вставляет байты и возвращает ID строки.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup возвращает строку по ID.
// Если ID не валиден, возвращает пустую строку и false.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup возвращает строку по ID. Если ID не валиден, паникует.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has проверяет, валиден ли ID.
func (i *Interner) Has(id StringID) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return int(id) < len(i.byID)
}

// Len возвращает количество строк. NoStringID тоже учитывается,
// поэтому не бывает меньше 1.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}

// Snapshot возвращает копию всех строк.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.byID)
}
