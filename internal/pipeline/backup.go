package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// backupDirName is the subdirectory of the output directory that holds
// archived copies of previously generated files.
const backupDirName = "backup"

// backupExisting archives an existing output file into backup/ before a
// new render overwrites it, using the first free _old_N suffix. Returns
// the archive path, or "" when there was nothing to back up.
func backupExisting(outputDir, fileName string) (string, error) {
	src := filepath.Join(outputDir, fileName)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}

	backupDir := filepath.Join(outputDir, backupDirName)
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	ext := filepath.Ext(fileName)
	stem := strings.TrimSuffix(fileName, ext)
	for n := 1; ; n++ {
		dst := filepath.Join(backupDir, fmt.Sprintf("%s_old_%d%s", stem, n, ext))
		if _, err := os.Stat(dst); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", dst, err)
		}
		if err := os.Rename(src, dst); err != nil {
			return "", fmt.Errorf("failed to back up %s: %w", src, err)
		}
		return dst, nil
	}
}
