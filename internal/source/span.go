package source

import (
	"fmt"
)

// Span — полуинтервал [Start, End) в байтах внутри одного файла.
type Span struct {
	File  FileID
	Start uint32 // в байтах, включительно
	End   uint32 // в байтах, не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover возвращает объединение двух спанов одного файла.
// Спан составного узла — это Cover спанов его первого и последнего токена.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains проверяет, что other целиком лежит внутри s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// To возвращает спан от начала s до конца other.
func (s Span) To(other Span) Span {
	if other.File != s.File {
		return s
	}
	s.End = other.End
	return s
}
