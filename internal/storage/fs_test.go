package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tempRoot(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return s
}

func TestWriteAndRead(t *testing.T) {
	s := tempRoot(t)
	content := []byte("## ✅ Done\n- shipped\n")
	if err := s.Write("2026-01-26-daily.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("2026-01-26-daily.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteSetsFileMode(t *testing.T) {
	s := tempRoot(t)
	if err := s.Write("mode.md", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	info, err := os.Stat(filepath.Join(s.Root(), "mode.md"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != filePerm {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(filePerm))
	}
}

func TestReadMissingIsNotExist(t *testing.T) {
	s := tempRoot(t)
	_, err := s.Read("nope.md")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestExists(t *testing.T) {
	s := tempRoot(t)
	ok, err := s.Exists("a.md")
	if err != nil || ok {
		t.Fatalf("Exists before write = %v, %v", ok, err)
	}
	_ = s.Write("a.md", []byte("a"))
	ok, err = s.Exists("a.md")
	if err != nil || !ok {
		t.Errorf("Exists after write = %v, %v", ok, err)
	}
	_ = os.Mkdir(filepath.Join(s.Root(), "dir.md"), 0o755)
	if ok, _ := s.Exists("dir.md"); ok {
		t.Error("a directory must not count as an existing file")
	}
}

func TestGlob(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("2026-01-27-daily.md", []byte("b"))
	_ = s.Write("2026-01-25-daily.md", []byte("a"))
	_ = s.Write("readme.md", []byte("not daily"))
	_ = os.Mkdir(filepath.Join(s.Root(), "x-daily.md"), 0o755)

	got, err := s.Glob("*-daily.md")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	want := []string{"2026-01-25-daily.md", "2026-01-27-daily.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Glob = %v, want %v", got, want)
	}
}

func TestGlobRejectsSeparators(t *testing.T) {
	s := tempRoot(t)
	if _, err := s.Glob("../*"); err == nil {
		t.Error("expected error for pattern with separator")
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempRoot(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.md",
		"/etc/shadow",
		"",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
		if _, err := s.Exists(p); err == nil {
			t.Errorf("expected error for exists on %q", p)
		}
	}
}

func TestAtomicWriteNoLeftovers(t *testing.T) {
	s := tempRoot(t)
	_ = s.Write("atomic.md", []byte("original content"))

	updated := []byte("updated content")
	if err := s.Write("atomic.md", updated); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("atomic.md")
	if string(got) != string(updated) {
		t.Errorf("expected updated content, got %q", got)
	}

	entries, _ := os.ReadDir(s.Root())
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("leftover files: %v", names)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "daily-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
