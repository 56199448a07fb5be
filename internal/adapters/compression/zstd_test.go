package compression

import (
	"bytes"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/iamNilotpal/integrity/internal/core/domain"
)

func newTestCompression(t *testing.T, level uint8) *ZstdCompression {
	t.Helper()

	compressor, err := NewZstdCompression(Options{
		Level:              level,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
	})
	if err != nil {
		t.Fatalf("NewZstdCompression() error = %v", err)
	}
	t.Cleanup(func() {
		if err := compressor.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return compressor
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	compressor := newTestCompression(t, DefaultLevel)
	data := bytes.Repeat([]byte("manifest entry payload "), 100)

	compressed, err := compressor.Compress(data)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if len(compressed) >= len(data) {
		t.Fatalf("Compress() did not shrink %d repetitive bytes (got %d)", len(data), len(compressed))
	}
	if !IsZstd(compressed) {
		t.Errorf("IsZstd(compressed) = false, want true")
	}

	restored, err := compressor.Decompress(compressed)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Errorf("round trip changed data: got %d bytes, want %d", len(restored), len(data))
	}
}

// Payloads under the 64 byte threshold come back untouched, so the
// caller must not assume Compress output is always a zstd frame.
func TestCompress_SmallPayloadPassthrough(t *testing.T) {
	compressor := newTestCompression(t, DefaultLevel)
	data := []byte("tiny")

	got, err := compressor.Compress(data)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Compress(small) = %q, want original %q", got, data)
	}
	if IsZstd(got) {
		t.Errorf("IsZstd(passthrough) = true, want false")
	}
}

func TestCompress_IncompressiblePassthrough(t *testing.T) {
	compressor := newTestCompression(t, BestLevel)

	// High entropy input cannot shrink once the frame header is added.
	data := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(data)

	got, err := compressor.Compress(data)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Compress(random) returned %d bytes, want original %d", len(got), len(data))
	}
}

func TestIsZstd(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "nil", data: nil, want: false},
		{name: "short prefix", data: []byte{0x28, 0xB5, 0x2F}, want: false},
		{name: "magic only", data: []byte{0x28, 0xB5, 0x2F, 0xFD}, want: true},
		{name: "plain text", data: []byte("plain text body"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZstd(tt.data); got != tt.want {
				t.Errorf("IsZstd(% x) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecompress_InvalidData(t *testing.T) {
	compressor := newTestCompression(t, DefaultLevel)

	_, err := compressor.Decompress([]byte("definitely not a zstd frame"))
	if err == nil {
		t.Fatalf("Decompress(garbage) error = nil, want error")
	}
	if !strings.Contains(err.Error(), "decompression failed") {
		t.Errorf("Decompress(garbage) error = %v, want decompression failure", err)
	}
}

func TestNewZstdCompression_InvalidOptions(t *testing.T) {
	for _, level := range []uint8{0, 5, 200} {
		if _, err := NewZstdCompression(Options{
			Level:              level,
			EncoderConcurrency: 1,
			DecoderConcurrency: 1,
		}); err == nil {
			t.Errorf("NewZstdCompression(level %d) error = nil, want error", level)
		}
	}

	if runtime.NumCPU() < 255 {
		if _, err := NewZstdCompression(Options{
			Level:              DefaultLevel,
			EncoderConcurrency: 255,
			DecoderConcurrency: 1,
		}); err == nil {
			t.Errorf("NewZstdCompression(encoder concurrency 255) error = nil, want error")
		}
	}
}

func TestLevel(t *testing.T) {
	compressor := newTestCompression(t, BetterLevel)
	if got := compressor.Level(); got != BetterLevel {
		t.Errorf("Level() = %d, want %d", got, BetterLevel)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(DefaultOptions()); err != nil {
		t.Errorf("Validate(DefaultOptions()) error = %v", err)
	}
	if err := Validate(&domain.CompressionOptions{Level: BestLevel + 1}); err == nil {
		t.Errorf("Validate(level %d) error = nil, want error", BestLevel+1)
	}
}

func TestCompress_Concurrent(t *testing.T) {
	compressor := newTestCompression(t, DefaultLevel)
	data := bytes.Repeat([]byte("concurrent checksum manifest "), 50)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			compressed, err := compressor.Compress(data)
			if err != nil {
				errs <- err
				return
			}
			restored, err := compressor.Decompress(compressed)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(restored, data) {
				errs <- fmt.Errorf("round trip changed %d input bytes", len(data))
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent round trip error = %v", err)
	}
}
