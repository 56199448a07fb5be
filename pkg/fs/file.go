package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile writes contents to a temporary file in the target
// directory and renames it into place, so readers never observe a
// partially written file.
func AtomicWriteFile(filePath string, permission os.FileMode, contents []byte) error {
	dir, base := filepath.Split(filePath)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("error creating temporary file for %s: %w", filePath, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(contents); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, permission); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error renaming %s into place: %w", tmpName, err)
	}

	return nil
}
