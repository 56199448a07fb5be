package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Creates the directory and any missing parents.
func (lfs *LocalFileSystem) CreateDir(dirPath string, permission os.FileMode) error {
	return os.MkdirAll(dirPath, permission)
}

// Writes to a file.
func (lfs *LocalFileSystem) WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	return os.WriteFile(filePath, contents, permission)
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// ReadInto streams the file's contents into dst and returns the number
// of bytes read. Callers that checksum many files pass a pooled buffer
// here instead of allocating with ReadFile.
func (lfs *LocalFileSystem) ReadInto(filePath string, dst io.Writer) (uint64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := io.Copy(dst, file)
	if err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// WriteFileAtomic writes contents through a temporary file and rename.
func (lfs *LocalFileSystem) WriteFileAtomic(filePath string, permission os.FileMode, contents []byte) error {
	return AtomicWriteFile(filePath, permission, contents)
}

// Returns the size of a file in bytes.
func (lfs *LocalFileSystem) FileSize(filePath string) (uint64, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return uint64(stat.Size()), nil
}

// ListFiles walks rootDir and returns the relative paths of all
// regular files, sorted, with forward slashes. Directories whose base
// name appears in excludeDirs are skipped entirely.
func (lfs *LocalFileSystem) ListFiles(rootDir string, excludeDirs []string) ([]string, error) {
	files := make([]string, 0)

	err := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != rootDir && isExcluded(excludeDirs, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func isExcluded(excludeDirs []string, name string) bool {
	for _, excludeDir := range excludeDirs {
		if name == excludeDir {
			return true
		}
	}
	return false
}
