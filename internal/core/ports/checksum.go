package ports

// Defines an interface for calculating and verifying data checksums.
// Results are widened to uint64 so one interface can carry everything
// from a 4-bit CRC to a 64-bit hash. Implementations must be safe for
// concurrent use, as manifest runs calculate from several goroutines.
type Checksummer interface {
	// Calculates the checksum of the provided data.
	// The specific checksum algorithm used depends on the implementation.
	Calculate(data []byte) uint64

	// Validates whether the provided data matches the expected checksum.
	// Returns true if the calculated checksum of the data matches the expected value.
	Verify(data []byte, expected uint64) bool

	// Size returns the width of the checksum in bytes.
	Size() uint8

	// Name returns the registry name of the algorithm.
	Name() string
}
