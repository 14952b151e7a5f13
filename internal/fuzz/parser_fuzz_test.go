package fuzztests

import (
	"context"
	"testing"
	"time"

	"rill/internal/diag"
	"rill/internal/parser"
	"rill/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.rl", input)
		file := fs.Get(fileID)

		interner := source.NewInterner()
		bag := diag.NewBag(128)

		tree := parser.ParseFile(file, interner, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: 128,
		})
		if tree == nil {
			t.Fatal("parser must always return a tree, even for garbage input")
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// It uses a timeout to detect infinite loops that could be caused by
// malformed input or edge cases in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Add specific edge cases for statement recovery
	f.Add([]byte("fun test() { var x: int = 1\nvar y: int = 2; }")) // missing semicolon
	f.Add([]byte("fun test() { x + y\nvar z: int = 3; }"))          // expression without semicolon
	f.Add([]byte("{ var x = 1 }"))                                  // block without semicolons
	f.Add([]byte("fun f() { { { { } } } }"))                        // deeply nested blocks
	f.Add([]byte("fun f() { if x { } }"))                           // bare if
	f.Add([]byte("fun f() { while (true { } }"))                    // unbalanced condition
	f.Add([]byte(";;;;"))                                           // empty statements

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		// Create a context with timeout to detect hangs
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		// Run parser in a goroutine
		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.rl", input)
			file := fs.Get(fileID)

			interner := source.NewInterner()
			bag := diag.NewBag(128)

			_ = parser.ParseFile(file, interner, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: 128,
			})
		}()

		// Wait for completion or timeout
		select {
		case <-done:
			// Parser completed successfully
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
