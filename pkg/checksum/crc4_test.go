package checksum

import "testing"

func TestCRC4_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		prom [8]uint16
		want uint16
	}{
		{
			name: "all zeros",
			prom: [8]uint16{},
			want: 0x0,
		},
		{
			name: "one in last high byte",
			prom: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0x0100},
			want: 0x3,
		},
		{
			name: "two in last high byte",
			prom: [8]uint16{0, 0, 0, 0, 0, 0, 0, 0x0200},
			want: 0x6,
		},
		{
			name: "top bit of first word",
			prom: [8]uint16{0x8000, 0, 0, 0, 0, 0, 0, 0},
			want: 0x8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CRC4(tt.prom[:]); got != tt.want {
				t.Errorf("CRC4 = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestCRC4_FourBitResult(t *testing.T) {
	proms := [][]uint16{
		{0x3132, 0x3334, 0x3536, 0x3738, 0x3940, 0x4142, 0x4344, 0x4500},
		{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFF00},
		{0x50A2, 0x8FC8, 0x8F98, 0x6F23, 0x5C4F, 0x83F2, 0x6DAB, 0x9B00},
	}

	for _, prom := range proms {
		got := CRC4(prom)
		if got > 0x0F {
			t.Errorf("CRC4(%#x) = %#x, exceeds four bits", prom, got)
		}
		if again := CRC4(prom); again != got {
			t.Errorf("CRC4 not deterministic: %#x then %#x", got, again)
		}
	}
}

// The PROM is always eight words; extra words must be ignored.
func TestCRC4_ReadsExactlyEightWords(t *testing.T) {
	prom := []uint16{0x3132, 0x3334, 0x3536, 0x3738, 0x3940, 0x4142, 0x4344, 0x4500}
	extended := append(append([]uint16{}, prom...), 0xDEAD, 0xBEEF)

	if CRC4(prom) != CRC4(extended) {
		t.Error("words beyond the eighth must not affect the CRC")
	}
}
