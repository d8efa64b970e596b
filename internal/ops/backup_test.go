package ops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupRestoreStore_RoundTrip(t *testing.T) {
	src := filepath.Join(t.TempDir(), "tasks.json")
	content := `[{"title":"Laundry","description":"","category":"General","completed":false,"due_date":null}]`
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	archive := filepath.Join(t.TempDir(), "backups", "tasks.json.gz")
	if err := BackupStore(src, archive); err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if _, err := os.Stat(archive); err != nil {
		t.Fatalf("archive missing: %v", err)
	}

	restored := filepath.Join(t.TempDir(), "restored", "tasks.json")
	if err := RestoreStore(archive, restored); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if string(got) != content {
		t.Fatalf("restored content mismatch:\n got: %s\nwant: %s", got, content)
	}

	srcDigest, err := FileDigest(src)
	if err != nil {
		t.Fatalf("digest src: %v", err)
	}
	restoredDigest, err := FileDigest(restored)
	if err != nil {
		t.Fatalf("digest restored: %v", err)
	}
	if srcDigest != restoredDigest {
		t.Fatalf("digest mismatch: src=%s restored=%s", srcDigest, restoredDigest)
	}
}

func TestBackupStore_MissingSource(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "out.json.gz")
	if err := BackupStore(filepath.Join(t.TempDir(), "absent.json"), archive); err == nil {
		t.Fatal("expected error for missing store file")
	}
}

func TestBackupStore_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(t.TempDir(), "out.json.gz")
	if err := BackupStore(dir, archive); err == nil {
		t.Fatal("expected error for directory source")
	}
}

func TestRestoreStore_BadArchive(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "not-gzip.gz")
	if err := os.WriteFile(bogus, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write bogus archive: %v", err)
	}
	if err := RestoreStore(bogus, filepath.Join(t.TempDir(), "tasks.json")); err == nil {
		t.Fatal("expected error for non-gzip archive")
	}
}
