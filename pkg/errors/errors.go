package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can occur while computing
// checksums, building manifests, or verifying files against a
// manifest. This helps in proper error handling, monitoring, and
// debugging of the system.
type ErrorCategory int

const (
	// ErrorStorage indicates errors related to underlying storage
	// operations such as file I/O, disk space, permissions, or
	// filesystem issues.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorCompression indicates errors while compressing a manifest
	// or while decompressing compressed input before checksumming.
	ErrorCompression

	// ErrorManifest indicates errors in the manifest wire format,
	// such as truncated records or fields of the wrong type.
	ErrorManifest

	// ErrorVerification indicates that one or more files did not
	// match the checksums recorded in a manifest.
	ErrorVerification

	// ErrorChecksum indicates an unusable checksum configuration,
	// such as an unknown algorithm name.
	ErrorChecksum
)

// String returns the string representation of the error category.
// This is useful for logging, metrics, and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorCompression:
		return "compression"
	case ErrorManifest:
		return "manifest"
	case ErrorVerification:
		return "verification"
	case ErrorChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

type IntegrityError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("[%v] %s: %v : %s", e.Category, e.Operation, e.Err, e.Timestamp.String())
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// NewIntegrityError wraps err with its category and the operation that
// produced it, stamped with the current time.
func NewIntegrityError(category ErrorCategory, operation string, err error) *IntegrityError {
	return &IntegrityError{
		Err:       err,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

// IsRetryAble returns whether errors of this category can be retried.
// This helps callers decide whether to retry failed operations.
func (e *IntegrityError) IsRetryAble() bool {
	switch e.Category {
	case ErrorStorage:
		// Storage errors might be temporary (e.g., disk full, network issues).
		return true
	case ErrorCompression:
		// Compression errors are usually not retry able (corrupted data).
		return false
	case ErrorManifest:
		// Manifest errors are not retry able (corrupted manifest).
		return false
	case ErrorVerification:
		// A mismatched file stays mismatched until it is replaced.
		return false
	case ErrorChecksum:
		// Configuration errors need operator intervention.
		return false
	default:
		return false
	}
}
