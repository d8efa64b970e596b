// Package ops holds operational tooling for the task file: compressed
// backups, restore, and integrity checks.
package ops

import (
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BackupStore writes a gzip copy of the task file to archivePath,
// creating parent directories as needed.
func BackupStore(storePath, archivePath string) error {
	storePath = filepath.Clean(strings.TrimSpace(storePath))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if storePath == "" || archivePath == "" {
		return fmt.Errorf("storePath and archivePath are required")
	}
	info, err := os.Stat(storePath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("store is a directory, not a file: %s", storePath)
	}
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return err
	}

	src, err := os.Open(storePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer dst.Close()

	gz := gzip.NewWriter(dst)
	gz.Name = filepath.Base(storePath)
	if _, err := io.Copy(gz, src); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// RestoreStore decompresses archivePath back into targetPath, overwriting
// whatever is there.
func RestoreStore(archivePath, targetPath string) error {
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	targetPath = filepath.Clean(strings.TrimSpace(targetPath))
	if archivePath == "" || targetPath == "" {
		return fmt.Errorf("archivePath and targetPath are required")
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return err
	}

	src, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer src.Close()

	gz, err := gzip.NewReader(src)
	if err != nil {
		return err
	}
	defer gz.Close()

	dst, err := os.OpenFile(targetPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, gz); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// FileDigest returns the hex sha256 of a file, for backup verification.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
