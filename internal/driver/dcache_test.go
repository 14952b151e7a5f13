package driver

import (
	"crypto/sha256"
	"testing"

	"rill/internal/diag"
	"rill/internal/source"
)

func testPayload() *DiskPayload {
	return &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   "demo.rl",
		Diagnostics: []CachedDiagnostic{
			{Severity: uint8(diag.SevError), Code: uint16(diag.SynExpectSemicolon), Message: "expected `;`", Start: 4, End: 5},
		},
		Items:      2,
		Docstrings: 1,
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	key := Digest(sha256.Sum256([]byte("fun main() {}\n")))
	if err := cache.Put(key, testPayload()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if got.Path != "demo.rl" || got.Items != 2 || got.Docstrings != 1 {
		t.Errorf("payload = %+v", got)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Start != 4 {
		t.Errorf("diagnostics = %+v", got.Diagnostics)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(Digest(sha256.Sum256([]byte("other"))), &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("unexpected hit")
	}
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	key := Digest(sha256.Sum256([]byte("stale")))
	payload := testPayload()
	payload.Schema = diskCacheSchemaVersion + 1
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Error("stale schema must read as a miss")
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	key := Digest(sha256.Sum256([]byte("drop")))
	if err := cache.Put(key, testPayload()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if hit {
		t.Errorf("entry survived DropAll: hit=%v err=%v", hit, err)
	}
}

func TestReplayDiagnosticsRebindsFile(t *testing.T) {
	bag := diag.NewBag(8)
	cached := testPayload().Diagnostics
	replayDiagnostics(bag, cached, source.FileID(7))

	if bag.Len() != 1 {
		t.Fatalf("len = %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Primary.File != 7 {
		t.Errorf("file = %d, want 7", d.Primary.File)
	}
	if d.Code != diag.SynExpectSemicolon || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Primary.Start != 4 || d.Primary.End != 5 {
		t.Errorf("span = %v", d.Primary)
	}
}
