package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("<html>content</html>")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path = %q, want .html suffix", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- test-created path
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "<html>content</html>" {
		t.Errorf("content = %q", data)
	}

	cleanup()
	if FileExists(path) {
		t.Error("file still exists after cleanup")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}

	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Run("creates file with permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		if err := WriteFileAtomic(path, []byte("data"), 0o600); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		data, err := os.ReadFile(path) // #nosec G304 -- test-created path
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "data" {
			t.Errorf("content = %q", data)
		}

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if perm := info.Mode().Perm(); perm != 0o600 {
				t.Errorf("mode = %o, want 600", perm)
			}
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		if err := WriteFileAtomic(path, []byte("old"), 0o600); err != nil {
			t.Fatalf("first write: %v", err)
		}
		if err := WriteFileAtomic(path, []byte("new"), 0o600); err != nil {
			t.Fatalf("second write: %v", err)
		}

		data, _ := os.ReadFile(path) // #nosec G304 -- test-created path
		if string(data) != "new" {
			t.Errorf("content = %q, want new", data)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		if err := WriteFileAtomic(filepath.Join(dir, "out.yaml"), []byte("data"), 0o600); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "out.yaml" {
			t.Errorf("directory entries = %v, want only out.yaml", entries)
		}
	})
}
