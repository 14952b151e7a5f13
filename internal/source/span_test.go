package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{
			name: "disjoint",
			a:    Span{File: 1, Start: 10, End: 20},
			b:    Span{File: 1, Start: 30, End: 40},
			want: Span{File: 1, Start: 10, End: 40},
		},
		{
			name: "contained",
			a:    Span{File: 1, Start: 10, End: 40},
			b:    Span{File: 1, Start: 15, End: 20},
			want: Span{File: 1, Start: 10, End: 40},
		},
		{
			name: "extends left",
			a:    Span{File: 1, Start: 10, End: 20},
			b:    Span{File: 1, Start: 5, End: 15},
			want: Span{File: 1, Start: 5, End: 20},
		},
		{
			name: "other file ignored",
			a:    Span{File: 1, Start: 10, End: 20},
			b:    Span{File: 2, Start: 0, End: 100},
			want: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanBasics(t *testing.T) {
	sp := Span{File: 3, Start: 4, End: 9}
	if sp.Empty() {
		t.Error("non-empty span reported empty")
	}
	if sp.Len() != 5 {
		t.Errorf("Len() = %d, want 5", sp.Len())
	}
	if sp.String() != "3:4-9" {
		t.Errorf("String() = %q", sp.String())
	}

	empty := Span{File: 3, Start: 4, End: 4}
	if !empty.Empty() {
		t.Error("empty span not reported empty")
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 1, Start: 0, End: 100}
	inner := Span{File: 1, Start: 10, End: 20}
	if !outer.Contains(inner) {
		t.Error("outer must contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner must not contain outer")
	}
	if outer.Contains(Span{File: 2, Start: 10, End: 20}) {
		t.Error("span from another file must not be contained")
	}
}
