package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no cr", "a\nb", "a\nb", false},
		{"crlf", "a\r\nb", "a\nb", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\r\n", "a\nb\rc\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) = %q, %v; want %q, %v", tt.in, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	in := []byte{0xEF, 0xBB, 0xBF, 'a'}
	out, had := removeBOM(in)
	if !had || string(out) != "a" {
		t.Errorf("removeBOM = %q, %v", out, had)
	}
	out, had = removeBOM([]byte("ab"))
	if had || string(out) != "ab" {
		t.Errorf("removeBOM without BOM = %q, %v", out, had)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\nef" — \n на offset 2 и 5
	idx := buildLineIndex([]byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // сам \n принадлежит первой строке
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}
