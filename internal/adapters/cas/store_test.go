package cas_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/samogon/internal/adapters/cas"
	"go.trai.ch/samogon/internal/adapters/fs"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func digestOf(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func newStore(t *testing.T) *cas.Store {
	t.Helper()
	return cas.NewStore(t.TempDir(), fs.NewVerifier(fs.NewHasher()))
}

func writeEntry(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestStore_Entry(t *testing.T) {
	store := newStore(t)
	entry := store.Entry("abc--jq--1.7_0.arm64_sonoma.bottle.tar.gz")

	wantPath := filepath.Join(store.Root(), "downloads", "abc--jq--1.7_0.arm64_sonoma.bottle.tar.gz")
	if entry.Path != wantPath {
		t.Errorf("expected path %q, got %q", wantPath, entry.Path)
	}
	if entry.IncompletePath != wantPath+".incomplete" {
		t.Errorf("unexpected incomplete path %q", entry.IncompletePath)
	}
}

func TestStore_Lookup(t *testing.T) {
	store := newStore(t)
	entry := store.Entry("key")
	data := []byte("archive bytes")

	// 1. Absent entry
	hit, err := store.Lookup(entry, digestOf(data))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if hit {
		t.Fatal("expected miss for absent entry")
	}

	// 2. Valid entry, checked twice
	writeEntry(t, entry.Path, data)
	for i := range 2 {
		hit, err = store.Lookup(entry, digestOf(data))
		if err != nil {
			t.Fatalf("Lookup %d failed: %v", i, err)
		}
		if !hit {
			t.Fatalf("expected hit on lookup %d", i)
		}
	}

	// 3. One corrupted byte: miss, and the stale entry is gone
	corrupted := append([]byte(nil), data...)
	corrupted[3] ^= 0x01
	writeEntry(t, entry.Path, corrupted)

	hit, err = store.Lookup(entry, digestOf(data))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if hit {
		t.Fatal("expected miss for corrupted entry")
	}
	if _, err := os.Stat(entry.Path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected corrupted entry to be removed, stat err: %v", err)
	}
}

func TestStore_LookupVerifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mocks.NewMockVerifier(ctrl)
	store := cas.NewStore(t.TempDir(), verifier)
	entry := store.Entry("key")

	verifier.EXPECT().VerifyChecksum(entry.Path, "00").Return(false, errors.New("permission denied"))

	_, err := store.Lookup(entry, "00")
	if !errors.Is(err, domain.ErrCacheIO) {
		t.Fatalf("expected ErrCacheIO, got %v", err)
	}
}

func TestStore_OpenIncomplete(t *testing.T) {
	store := newStore(t)
	entry := store.Entry("key")
	writeEntry(t, entry.IncompletePath, []byte("partial"))

	// Resume keeps existing bytes
	f, offset, err := store.OpenIncomplete(entry, true)
	if err != nil {
		t.Fatalf("OpenIncomplete failed: %v", err)
	}
	if offset != int64(len("partial")) {
		t.Errorf("expected offset %d, got %d", len("partial"), offset)
	}
	_ = f.Close()

	// Fresh start truncates
	f, offset, err = store.OpenIncomplete(entry, false)
	if err != nil {
		t.Fatalf("OpenIncomplete failed: %v", err)
	}
	_ = f.Close()
	if offset != 0 {
		t.Errorf("expected offset 0, got %d", offset)
	}
	info, err := os.Stat(entry.IncompletePath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected truncated file, got %d bytes", info.Size())
	}
}

func TestStore_Promote(t *testing.T) {
	store := newStore(t)
	entry := store.Entry("key")
	data := []byte("verified")
	writeEntry(t, entry.IncompletePath, data)

	if err := store.Promote(entry); err != nil {
		t.Fatalf("Promote failed: %v", err)
	}
	if _, err := os.Stat(entry.IncompletePath); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected incomplete file to be gone after promote")
	}

	hit, err := store.Lookup(entry, digestOf(data))
	if err != nil || !hit {
		t.Fatalf("expected promoted entry to be a cache hit, hit=%v err=%v", hit, err)
	}

	// Promoting a missing file is a cache io error
	if err := store.Promote(store.Entry("other")); !errors.Is(err, domain.ErrCacheIO) {
		t.Errorf("expected ErrCacheIO, got %v", err)
	}
}

func TestStore_Clean(t *testing.T) {
	store := newStore(t)
	entry := store.Entry("key")
	writeEntry(t, entry.Path, []byte("data"))

	if err := store.Clean(); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(entry.Path)); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected downloads directory to be removed")
	}
}
