package source

import (
	"path/filepath"
	"slices"
	"strings"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: нет \r — возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- len ограничен uint32 в Add
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Пустой LineIdx — весь файл одна строка.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// бинпоиск: наибольший lineIdx[i] < off (сам \n принадлежит своей строке)
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // индекс последнего \n перед off

	if line < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// начало текущей строки — сразу после найденного \n;
	// lineIdx[0] закрывает строку 1, поэтому номер строки = line + 2.
	start := lineIdx[line] + 1
	return LineCol{Line: uint32(line + 2), Col: off - start + 1} // #nosec G115
}

func normalizePath(p string) string {
	// единый вид путей в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath возвращает абсолютный путь.
func AbsolutePath(p string) (string, error) {
	return filepath.Abs(p)
}

// RelativePath возвращает путь относительно base. Если путь лежит вне base,
// откатываемся на нормализованный абсолютный путь вместо "../../..".
func RelativePath(p, base string) (string, error) {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName возвращает последний сегмент пути.
func BaseName(p string) string {
	return filepath.Base(p)
}
