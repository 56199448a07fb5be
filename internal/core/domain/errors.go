package domain

import "errors"

var (
	// ErrChecksumMismatch reports that a file's computed checksum does
	// not match the value recorded in the manifest.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAlgorithm reports a checksum algorithm name that is not
	// in the registry.
	ErrUnknownAlgorithm = errors.New("unknown checksum algorithm")

	// ErrCorruptManifest reports manifest bytes that cannot be decoded.
	ErrCorruptManifest = errors.New("corrupt manifest")

	// ErrMissingFile reports a manifest entry whose file no longer
	// exists on disk.
	ErrMissingFile = errors.New("file missing")
)
