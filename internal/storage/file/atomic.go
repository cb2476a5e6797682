package file

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// testHookBeforeRename runs between writing the temp file and renaming
// it over the target. Tests use it to fail inside that window.
var testHookBeforeRename func() error

// AtomicWriteFile replaces filename with data so that readers only ever
// see the old content or the new content, never a partial write.
//
// HOW:
//  1. write everything to a temp file in the SAME directory
//     (rename is only atomic within one filesystem)
//  2. fsync it so the bytes are on disk before the name flips
//  3. rename the temp file over the target
//
// Missing parent directories are created. On any failure the temp file
// is removed and the target is left untouched.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("AtomicWriteFile: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-roster-*")
	if err != nil {
		return fmt.Errorf("AtomicWriteFile: create temp file: %w", err)
	}

	success := false
	defer func() {
		if success {
			return
		}
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove temporary file",
				slog.String("path", tmp.Name()),
				slog.String("error", err.Error()))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("AtomicWriteFile: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("AtomicWriteFile: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("AtomicWriteFile: close temp file: %w", err)
	}
	// CreateTemp always uses 0600.
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("AtomicWriteFile: chmod temp file: %w", err)
	}

	if testHookBeforeRename != nil {
		if err := testHookBeforeRename(); err != nil {
			return fmt.Errorf("AtomicWriteFile: %w", err)
		}
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("AtomicWriteFile: rename: %w", err)
	}
	success = true
	return nil
}
