package migrations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestVersionFromFilename(t *testing.T) {
	tests := map[string]string{
		"migrations/001_init.sql":          "001",
		"002_add_message_sender_kind.sql":  "002",
		"/abs/path/010_x_y_z.sql":          "010",
		"noversion.sql":                    "noversion.sql",
	}
	for in, want := range tests {
		if got := VersionFromFilename(in); got != want {
			t.Errorf("VersionFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPendingFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md", "010_c.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := PendingFiles(dir)
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "001_a.sql"),
		filepath.Join(dir, "002_b.sql"),
		filepath.Join(dir, "010_c.sql"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPendingFilesMissingDir(t *testing.T) {
	if _, err := PendingFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error")
	}
}

func TestRepositorySchemaIsPresent(t *testing.T) {
	files, err := PendingFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("PendingFiles: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one migration")
	}
	if VersionFromFilename(files[0]) != "001" {
		t.Errorf("first migration = %s", files[0])
	}
}
