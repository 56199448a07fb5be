package checksum

// CRC4 computes the 4-bit CRC of an MS56xx barometer PROM image. The
// image is eight 16-bit words fed high byte first; the caller must mask
// the CRC nibble out of the word that stores it before calling. Only
// the first eight words of data are read.
func CRC4(data []uint16) uint16 {
	var rem uint16

	for i := 0; i < 16; i++ {
		if i%2 == 1 {
			rem ^= data[i>>1] & 0x00FF
		} else {
			rem ^= data[i>>1] >> 8
		}

		for bit := 8; bit > 0; bit-- {
			if rem&0x8000 != 0 {
				rem = rem<<1 ^ 0x3000
			} else {
				rem <<= 1
			}
		}
	}

	return rem >> 12 & 0x0F
}
