package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupExisting_NothingToBackUp(t *testing.T) {
	dir := t.TempDir()

	path, err := backupExisting(dir, "resume.pdf")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoDirExists(t, filepath.Join(dir, backupDirName))
}

func TestBackupExisting_IncrementsSuffix(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "resume.pdf")

	require.NoError(t, os.WriteFile(src, []byte("first"), 0o644))
	path, err := backupExisting(dir, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, backupDirName, "resume_old_1.pdf"), path)
	assert.NoFileExists(t, src, "source must be moved, not copied")

	require.NoError(t, os.WriteFile(src, []byte("second"), 0o644))
	path, err = backupExisting(dir, "resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, backupDirName, "resume_old_2.pdf"), path)

	data, err := os.ReadFile(filepath.Join(dir, backupDirName, "resume_old_1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data), "earlier backups stay untouched")
}

func TestRun_BacksUpPreviousOutput(t *testing.T) {
	opts := baseOptions(t)

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(opts.OutputDir, backupDirName))

	second, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.OutputPath, second.OutputPath)
	assert.FileExists(t, second.OutputPath)
	assert.FileExists(t, filepath.Join(opts.OutputDir, backupDirName, "resume_old_1.pdf"))
}
