package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lmdrew96/FeyForge-sub001/internal/store/persisted"
)

var _ persisted.Storage = (*Store)(nil)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feyforge.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestStore_ReadMissing(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	blob, ok, err := s.Read("feyforge.campaigns")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok || blob != nil {
		t.Errorf("Read() = (%q, %v), want (nil, false)", blob, ok)
	}
}

func TestStore_WriteOverwrites(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	if err := s.Write("k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write("k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	blob, ok, err := s.Read("k")
	if err != nil || !ok {
		t.Fatalf("Read() = (_, %v, %v)", ok, err)
	}
	if string(blob) != `{"v":2}` {
		t.Errorf("Read() = %s, want {\"v\":2}", blob)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	s, path := openTemp(t)
	if err := s.Write("session", []byte("token")); err != nil {
		t.Fatalf("write: %v", err)
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()

	blob, ok, err := again.Read("session")
	if err != nil || !ok || string(blob) != "token" {
		t.Errorf("Read() after reopen = (%q, %v, %v)", blob, ok, err)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	ctx := context.Background()
	if err := s.Write("k", []byte("v")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if _, ok, _ := s.Read("k"); ok {
		t.Error("key still present after delete")
	}
}
