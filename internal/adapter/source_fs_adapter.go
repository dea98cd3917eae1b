// Package adapter contains infrastructure adapters for the varmint engine.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"

	m "github.com/mouse-blink/varmint/internal/model"
)

// BackupSuffix is appended to a target file path to form its backup path.
// Callers must ensure no unrelated file already occupies that name.
const BackupSuffix = ".backup"

// SourceFSAdapter abstracts filesystem operations the engine relies on while
// mutating target files. It hides direct `os` access so the apply/restore
// cycle can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the engine can check
	// existence before mutating.
	FileInfo(path m.Path) (os.FileInfo, error)

	// BackupFile writes a byte-identical copy of the file at path to
	// path+BackupSuffix. It fails if a backup already exists, so a stale
	// backup from a crashed run is never silently overwritten.
	BackupFile(path m.Path) (m.Path, error)

	// RestoreFile copies the backup back over the live file and removes
	// the backup. It fails if no backup exists.
	RestoreFile(path m.Path) error

	// HasBackup reports whether a backup exists for the given path.
	HasBackup(path m.Path) bool
}

// HashBytes returns the SHA-256 fingerprint of content as a hex string.
func HashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to path with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns metadata for the file at path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// BackupFile copies the live file to its backup path.
func (a *LocalSourceFSAdapter) BackupFile(path m.Path) (m.Path, error) {
	backupPath := backupPathFor(path)

	if a.HasBackup(path) {
		return "", fmt.Errorf("backup already exists at %s", backupPath)
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if err := os.WriteFile(string(backupPath), content, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}

	return backupPath, nil
}

// RestoreFile copies the backup over the live file and removes the backup.
func (a *LocalSourceFSAdapter) RestoreFile(path m.Path) error {
	backupPath := backupPathFor(path)

	content, err := os.ReadFile(string(backupPath))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no backup exists for %s", path)
		}

		return fmt.Errorf("read backup %s: %w", backupPath, err)
	}

	perm := os.FileMode(0o600)
	if info, statErr := os.Stat(string(path)); statErr == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(string(path), content, perm); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}

	if err := os.Remove(string(backupPath)); err != nil {
		return fmt.Errorf("remove backup %s: %w", backupPath, err)
	}

	return nil
}

// HasBackup reports whether a backup file exists for path.
func (a *LocalSourceFSAdapter) HasBackup(path m.Path) bool {
	_, err := os.Stat(string(backupPathFor(path)))

	return err == nil
}

func backupPathFor(path m.Path) m.Path {
	return path + BackupSuffix
}
