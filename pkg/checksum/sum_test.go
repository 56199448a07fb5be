package checksum

import "testing"

func TestParity(t *testing.T) {
	tests := []struct {
		b    uint8
		want uint8
	}{
		{0x00, 0}, {0x01, 1}, {0x03, 0}, {0x07, 1},
		{0x80, 1}, {0xFF, 0}, {0xA5, 0},
	}

	for _, tt := range tests {
		if got := Parity(tt.b); got != tt.want {
			t.Errorf("Parity(%#02x) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestParity_MatchesXorFold(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		var fold uint8
		for v := b; v != 0; v >>= 1 {
			fold ^= v & 1
		}
		if got := Parity(b); got != fold {
			t.Fatalf("Parity(%#02x) = %d, xor fold says %d", b, got, fold)
		}
	}
}

func TestSumOfBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint8
	}{
		{name: "empty", data: nil, want: 0x00},
		{name: "abc", data: []byte("abc"), want: 0x26},
		{name: "wraparound", data: []byte{0xFF, 0x01}, want: 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumOfBytes(tt.data); got != tt.want {
				t.Errorf("SumOfBytes(%q) = %#02x, want %#02x", tt.data, got, tt.want)
			}
		})
	}
}

func TestSumOfBytes16(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{name: "empty", data: nil, want: 0x0000},
		{name: "abc", data: []byte("abc"), want: 0x0126},
		{name: "no eight bit wraparound", data: []byte{0xFF, 0x01}, want: 0x0100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumOfBytes16(tt.data); got != tt.want {
				t.Errorf("SumOfBytes16(%q) = %#04x, want %#04x", tt.data, got, tt.want)
			}
		})
	}
}

func TestSumOfBytes_TruncatesSumOfBytes16(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("truncation"),
		{0xFF, 0xFF, 0xFF, 0x10},
	}

	for _, data := range inputs {
		if got, want := SumOfBytes(data), uint8(SumOfBytes16(data)); got != want {
			t.Errorf("SumOfBytes = %#02x, low byte of SumOfBytes16 = %#02x", got, want)
		}
	}
}

func TestSum8WithCarry(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint8
	}{
		{name: "empty", data: nil, want: 0xFF},
		{name: "single byte", data: []byte{0x01}, want: 0xFE},
		{name: "end around carry", data: []byte{0xFF, 0x01}, want: 0xFE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum8WithCarry(tt.data); got != tt.want {
				t.Errorf("Sum8WithCarry(% x) = %#02x, want %#02x", tt.data, got, tt.want)
			}
		})
	}
}

// Appending the checksum byte to the payload drives the checksum of
// the whole to zero, which is how receivers validate a frame.
func TestSum8WithCarry_AppendedChecksumYieldsZero(t *testing.T) {
	inputs := [][]byte{
		{0x01},
		{0xFF, 0xFF, 0xFF},
		[]byte("parachute deployment frame"),
	}

	for _, data := range inputs {
		c := Sum8WithCarry(data)
		framed := append(append([]byte{}, data...), c)
		if got := Sum8WithCarry(framed); got != 0x00 {
			t.Errorf("Sum8WithCarry(data + checksum) = %#02x, want 0", got)
		}
	}
}

func BenchmarkSumOfBytes(b *testing.B) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SumOfBytes(data)
	}
}
