package domain

// CompressionOptions configures compression of manifests on disk and
// the transparent decompression of compressed inputs.
type CompressionOptions struct {
	// Enable toggles zstd compression of written manifests.
	// Compressed inputs are still decompressed before checksumming
	// when DecompressInputs is set, regardless of this flag.
	Enable bool

	// DecompressInputs makes the checksum run expand zstd-compressed
	// files and checksum the uncompressed contents, so a manifest
	// survives recompression of its inputs.
	DecompressInputs bool

	// Level defines the zstd compression level when compression is
	// enabled:
	//   - SpeedFastest: fastest compression, larger output
	//   - SpeedDefault: balanced speed and ratio
	//   - SpeedBetterCompression: better ratio, 2x-3x CPU usage
	//   - SpeedBestCompression: maximum ratio regardless of CPU cost
	// If not specified, SpeedDefault will be used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression operations.
	// Higher values may improve compression speed but increase memory usage.
	// Default is number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression operations.
	// Higher values may improve read performance but increase memory usage.
	// Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
