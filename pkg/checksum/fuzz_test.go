package checksum

import (
	"hash/crc32"
	"testing"
)

// FuzzCRC32SmallMatchesFull cross-checks the nibble-table CRC-32
// against the full-table one for arbitrary seeds and data.
func FuzzCRC32SmallMatchesFull(f *testing.F) {
	f.Add(uint32(0), []byte(""))
	f.Add(uint32(0xFFFFFFFF), []byte("123456789"))
	f.Add(uint32(0xDEADBEEF), make([]byte, 256))

	f.Fuzz(func(t *testing.T, seed uint32, data []byte) {
		full := CRC32(seed, data)
		small := CRC32Small(seed, data)
		if full != small {
			t.Errorf("seed %#08x, %d bytes: full %#08x, small %#08x",
				seed, len(data), full, small)
		}
	})
}

// FuzzCRC32MatchesStdlib checks the raw accumulator against hash/crc32
// with the complement convention translated at the boundary.
func FuzzCRC32MatchesStdlib(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("123456789"))
	f.Add(make([]byte, 1024))

	f.Fuzz(func(t *testing.T, data []byte) {
		if got, want := ^CRC32(^uint32(0), data), crc32.ChecksumIEEE(data); got != want {
			t.Errorf("CRC32 of %d bytes = %#08x, stdlib says %#08x",
				len(data), got, want)
		}
	})
}

// FuzzCCITTMatchesXModem cross-checks the table-driven CCITT routine
// against the bitwise XMODEM routine, which share a polynomial but no
// code.
func FuzzCCITTMatchesXModem(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("123456789"))
	f.Add([]byte{0x00, 0xFF, 0x55, 0xAA})

	f.Fuzz(func(t *testing.T, data []byte) {
		if got, want := CRC16CCITT(data, 0), CRC16XModem(data); got != want {
			t.Errorf("CCITT(0) = %#04x, XModem = %#04x on %d bytes",
				got, want, len(data))
		}
	})
}

// FuzzGDL90Augmentation checks the defining relation between the
// non-augmented GDL90 CRC and the augmented XMODEM CRC.
func FuzzGDL90Augmentation(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte{0x00, 0x81, 0x41})
	f.Add([]byte("123456789"))

	f.Fuzz(func(t *testing.T, data []byte) {
		padded := append(append([]byte{}, data...), 0x00, 0x00)
		if got, want := CRC16GDL90(padded, 0), CRC16XModem(data); got != want {
			t.Errorf("GDL90(data+0000) = %#04x, XModem = %#04x", got, want)
		}
	})
}

// FuzzSplitEquivalence verifies that every chainable routine gives the
// same result whether a buffer is processed whole or in two pieces.
func FuzzSplitEquivalence(f *testing.F) {
	f.Add([]byte("split me"), uint16(3))
	f.Add([]byte(""), uint16(0))
	f.Add(make([]byte, 512), uint16(511))

	f.Fuzz(func(t *testing.T, data []byte, at uint16) {
		if len(data) == 0 {
			return
		}
		split := int(at) % len(data)
		head, tail := data[:split], data[split:]

		if got, want := CRC16CCITT(tail, CRC16CCITT(head, 0xFFFF)), CRC16CCITT(data, 0xFFFF); got != want {
			t.Errorf("CCITT split %d: %#04x vs %#04x", split, got, want)
		}
		if got, want := CRC16GDL90(tail, CRC16GDL90(head, 0)), CRC16GDL90(data, 0); got != want {
			t.Errorf("GDL90 split %d: %#04x vs %#04x", split, got, want)
		}
		if got, want := CRC16IBM(CRC16IBM(0, head), tail), CRC16IBM(0, data); got != want {
			t.Errorf("IBM split %d: %#04x vs %#04x", split, got, want)
		}
		if got, want := CRC32(CRC32(^uint32(0), head), tail), CRC32(^uint32(0), data); got != want {
			t.Errorf("CRC32 split %d: %#08x vs %#08x", split, got, want)
		}
		if got, want := CRC8DVBS2Update(CRC8DVBS2Update(0, head), tail), CRC8DVBS2Update(0, data); got != want {
			t.Errorf("DVB-S2 split %d: %#02x vs %#02x", split, got, want)
		}

		whole := FNV1aOffsetBasis
		HashFNV1a(data, &whole)
		part := FNV1aOffsetBasis
		HashFNV1a(head, &part)
		HashFNV1a(tail, &part)
		if part != whole {
			t.Errorf("FNV-1a split %d: %#016x vs %#016x", split, part, whole)
		}
	})
}
