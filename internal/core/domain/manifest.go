// Package domain defines the core types and configurations for the
// integrity system.
package domain

import (
	"fmt"

	"go.uber.org/multierr"
)

// ManifestEntry records the checksum of a single file, with its path
// relative to the manifest root.
type ManifestEntry struct {
	// Path of the file relative to the scanned root, with forward
	// slashes on every platform.
	Path string `json:"path"`

	// Size of the file contents in bytes at checksum time. For
	// transparently decompressed inputs this is the uncompressed size.
	Size uint64 `json:"size"`

	// Checksum of the file contents, widened to uint64. The width that
	// is actually meaningful depends on the manifest's algorithm.
	Checksum uint64 `json:"checksum"`
}

// Manifest is a checksummed inventory of a directory tree at a point
// in time.
type Manifest struct {
	// RunID uniquely identifies the run that produced this manifest.
	RunID string `json:"run_id"`

	// CreatedUnix is the manifest creation time in Unix seconds.
	CreatedUnix int64 `json:"created_unix"`

	// Algorithm is the registry name of the checksum algorithm every
	// entry was computed with.
	Algorithm string `json:"algorithm"`

	// Entries, sorted by path.
	Entries []ManifestEntry `json:"entries"`
}

// ManifestOptions defines the configuration for building and verifying
// manifests.
type ManifestOptions struct {
	// RootDir is the directory tree to scan. Must exist and be
	// readable.
	RootDir string

	// ManifestPath is where the manifest is written or read. If empty,
	// "<RootDir>/.integrity.manifest" is used.
	ManifestPath string

	// ExcludeDirs names directories to skip while scanning, matched by
	// base name at any depth (e.g. ".git").
	ExcludeDirs []string

	// Workers is the number of files checksummed concurrently.
	// Default is the number of CPU cores if set to 0.
	Workers uint8

	// ChecksumOptions selects the checksum algorithm for entries.
	ChecksumOptions *ChecksumOptions

	// CompressionOptions configures manifest compression and input
	// decompression.
	CompressionOptions *CompressionOptions
}

// Mismatch describes one file that failed verification.
type Mismatch struct {
	// Path of the file relative to the root.
	Path string `json:"path"`

	// Want is the checksum recorded in the manifest.
	Want uint64 `json:"want"`

	// Got is the checksum computed from the file on disk. Zero when
	// the file is missing.
	Got uint64 `json:"got"`

	// Missing is true when the file no longer exists.
	Missing bool `json:"missing"`
}

// VerifyReport summarizes a verification run against a manifest.
type VerifyReport struct {
	// RunID of the manifest that was verified.
	RunID string `json:"run_id"`

	// Algorithm used for the verification.
	Algorithm string `json:"algorithm"`

	// Checked is the number of manifest entries examined.
	Checked int `json:"checked"`

	// Mismatches lists entries whose files are corrupt or missing.
	Mismatches []Mismatch `json:"mismatches"`
}

// OK reports whether every checked file matched the manifest.
func (r *VerifyReport) OK() bool {
	return len(r.Mismatches) == 0
}

// Err converts the report's mismatches into a single combined error,
// one per file, or nil when the report is clean. Every combined error
// matches either ErrMissingFile or ErrChecksumMismatch.
func (r *VerifyReport) Err() error {
	var errs error
	for i := range r.Mismatches {
		m := &r.Mismatches[i]
		if m.Missing {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingFile, m.Path))
			continue
		}
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: want %#x, got %#x", ErrChecksumMismatch, m.Path, m.Want, m.Got))
	}
	return errs
}
