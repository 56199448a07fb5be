package domain

import (
	"github.com/iamNilotpal/integrity/internal/core/ports"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions defines which checksum is computed for manifest
// entries and how.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to CRC32 if not specified.
	Algorithm ChecksumAlgorithm

	// Custom allows using a custom Checksummer implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.Checksummer
}
