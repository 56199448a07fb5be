package ports

import (
	"io"
	"os"
)

type FileSystem interface {
	CreateDir(dirPath string, permission os.FileMode) error

	// WriteFileAtomic writes contents so that readers never observe a
	// partially written file.
	WriteFileAtomic(filePath string, permission os.FileMode, contents []byte) error

	ReadFile(filePath string) ([]byte, error)

	// ReadInto streams a file's contents into dst and returns the number
	// of bytes read.
	ReadInto(filePath string, dst io.Writer) (uint64, error)

	// ListFiles walks rootDir and returns the relative paths of all
	// regular files, sorted, skipping any directory named in excludeDirs.
	ListFiles(rootDir string, excludeDirs []string) ([]string, error)

	Exists(filePath string) (bool, error)
}
