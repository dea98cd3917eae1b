package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/varmint/internal/model"
)

func writeTempFile(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalSourceFSAdapterBackupRestore(t *testing.T) {
	t.Run("backup and restore round-trips byte-identically", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()
		path := writeTempFile(t, "package main\n")

		backupPath, err := fs.BackupFile(path)
		require.NoError(t, err)
		assert.Equal(t, path+BackupSuffix, backupPath)
		assert.True(t, fs.HasBackup(path))

		require.NoError(t, fs.WriteFile(path, []byte("package mutated\n"), 0o600))
		require.NoError(t, fs.RestoreFile(path))

		content, err := fs.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(content))
		assert.False(t, fs.HasBackup(path), "restore must remove the backup")
	})

	t.Run("backup preserves file permissions", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()
		path := writeTempFile(t, "package main\n")
		require.NoError(t, os.Chmod(string(path), 0o644))

		backupPath, err := fs.BackupFile(path)
		require.NoError(t, err)

		info, err := os.Stat(string(backupPath))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("refuses to overwrite an existing backup", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()
		path := writeTempFile(t, "package main\n")

		_, err := fs.BackupFile(path)
		require.NoError(t, err)

		_, err = fs.BackupFile(path)
		assert.ErrorContains(t, err, "backup already exists")
	})

	t.Run("restore fails without a backup", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()
		path := writeTempFile(t, "package main\n")

		err := fs.RestoreFile(path)
		assert.ErrorContains(t, err, "no backup exists")
	})

	t.Run("backup fails for a missing file", func(t *testing.T) {
		fs := NewLocalSourceFSAdapter()

		_, err := fs.BackupFile(m.Path(filepath.Join(t.TempDir(), "absent.go")))
		assert.Error(t, err)
	})
}

func TestHashBytes(t *testing.T) {
	assert.Equal(t, HashBytes([]byte("abc")), HashBytes([]byte("abc")))
	assert.NotEqual(t, HashBytes([]byte("abc")), HashBytes([]byte("abd")))
	assert.Len(t, HashBytes(nil), 64)
}
