package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.rl файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".rl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"fun main(): int {\n    return 0;\n}\n",
		"//! Unit docstring.\n/// Doc.\npub fun add(a: int, b: int): int { return a + b; }\n",
		"import std/io as io;\n",
		"enum Color { Red, Green, Blue }\n",
		"pub struct Point[T] where T: Num {\n    pub x: T;\n    mut y: T;\n}\n",
		"trait Show { fun show(self): string; }\n",
		"impl Show for Point { fun show(self): string { return \"p\"; } }\n",
		"type Handler[T] = Callback[T]?;\n",
		"fun f() { var x = -2 ** 3 ?: 0; }\n",
		"fun f() { var s = \"\\u{1F600}\\n\"; var c = 'й'; }\n",
		"fun f() { while x < 10 { x = x + 1; } }\n",
		"fun f() { if a { } else if b { } else { } }\n",
		"fun f() { g() to int; h()[0].field[Map[string, int]](1, 2); }\n",
		"fun f(x: &mut [int?]): !Send { defer close(x); }\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
