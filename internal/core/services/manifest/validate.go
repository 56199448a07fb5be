package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/integrity/internal/adapters/checksum"
	"github.com/iamNilotpal/integrity/internal/adapters/compression"
	"github.com/iamNilotpal/integrity/internal/core/domain"
	"github.com/iamNilotpal/integrity/pkg/errors"
)

func Validate(opts *domain.ManifestOptions) error {
	// Check if the root exists and is a directory.
	if strings.TrimSpace(opts.RootDir) == "" {
		return errors.NewValidationError("rootDir", opts.RootDir, fmt.Errorf("root directory is required"))
	}

	if info, err := os.Stat(opts.RootDir); err != nil {
		return errors.NewValidationError("rootDir", opts.RootDir, fmt.Errorf("invalid root directory: %w", err))
	} else if !info.IsDir() {
		return errors.NewValidationError("rootDir", opts.RootDir, fmt.Errorf("path is not a directory"))
	}

	if opts.Workers > DefaultMaxWorkers {
		return errors.NewValidationError(
			"workers", opts.Workers,
			fmt.Errorf("workers must be between 0 and %d", DefaultMaxWorkers),
		)
	}

	if opts.ChecksumOptions != nil {
		if err := checksum.Validate(opts.ChecksumOptions); err != nil {
			return errors.NewValidationError("checksum.algorithm", opts.ChecksumOptions.Algorithm, err)
		}
	}

	if opts.CompressionOptions != nil && opts.CompressionOptions.Enable {
		if err := compression.Validate(opts.CompressionOptions); err != nil {
			return errors.NewValidationError("compression.level", opts.CompressionOptions.Level, err)
		}
	}

	return nil
}

// Test write permission by attempting to create a temporary file.
func probeWritable(dir string) error {
	tmpFile := filepath.Join(dir, ".integrity_write_test")
	f, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("directory is not writable: %s : %w", dir, err)
	}

	f.Close()
	os.Remove(tmpFile)
	return nil
}
