package checksum

import "testing"

func TestFletcher16_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{name: "empty", data: nil, want: 0x0000},
		{name: "single byte", data: []byte{0x01}, want: 0x0101},
		// 255 is congruent to zero modulo 255.
		{name: "single 0xff", data: []byte{0xFF}, want: 0x0000},
		{name: "abcde", data: []byte("abcde"), want: 0xC8F0},
		{name: "abcdef", data: []byte("abcdef"), want: 0x2057},
		{name: "abcdefgh", data: []byte("abcdefgh"), want: 0x0627},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fletcher16(tt.data); got != tt.want {
				t.Errorf("Fletcher16(%q) = %#04x, want %#04x", tt.data, got, tt.want)
			}
		})
	}
}

// A plain byte sum cannot see byte order; Fletcher's weighted second
// sum and a CRC's polynomial division both can. The swapped pair is
// invisible to SumOfBytes but must change the other two.
func TestFletcher16_DetectsReordering(t *testing.T) {
	a := []byte{0x01, 0x02, 0x03, 0x04}
	b := []byte{0x04, 0x03, 0x02, 0x01}

	if SumOfBytes(a) != SumOfBytes(b) {
		t.Fatal("test pair must collide under a plain byte sum")
	}
	if Fletcher16(a) == Fletcher16(b) {
		t.Error("Fletcher16 failed to distinguish reordered input")
	}
	if CRC16XModem(a) == CRC16XModem(b) {
		t.Error("CRC16XModem failed to distinguish reordered input")
	}
}
