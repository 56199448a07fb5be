package manifest

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/iamNilotpal/integrity/internal/adapters/checksum"
	"github.com/iamNilotpal/integrity/internal/adapters/compression"
	"github.com/iamNilotpal/integrity/internal/core/domain"
)

const (
	// DefaultManifestName is the file written into the root when no
	// explicit manifest path is configured.
	DefaultManifestName = ".integrity.manifest"

	// DefaultMaxWorkers caps the checksum worker pool.
	DefaultMaxWorkers = 64

	// DefaultReadBufferSize is the initial capacity of the pooled read
	// buffers files are streamed into before checksumming.
	DefaultReadBufferSize = 1048576 // 1MB
)

func prepareDefaults(opts *domain.ManifestOptions) *domain.ManifestOptions {
	if strings.TrimSpace(opts.ManifestPath) == "" {
		opts.ManifestPath = filepath.Join(opts.RootDir, DefaultManifestName)
	}

	if opts.Workers == 0 {
		workers := runtime.NumCPU()
		if workers > DefaultMaxWorkers {
			workers = DefaultMaxWorkers
		}
		opts.Workers = uint8(workers)
	}

	if opts.ChecksumOptions == nil {
		opts.ChecksumOptions = checksum.DefaultOptions()
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	} else {
		if opts.CompressionOptions.Level == 0 {
			opts.CompressionOptions.Level = compression.DefaultLevel
		}

		if opts.CompressionOptions.EncoderConcurrency == 0 {
			opts.CompressionOptions.EncoderConcurrency = uint8(runtime.NumCPU())
		}

		if opts.CompressionOptions.DecoderConcurrency == 0 {
			opts.CompressionOptions.DecoderConcurrency = uint8(runtime.NumCPU())
		}
	}

	return opts
}
