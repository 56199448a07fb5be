package checksum

// CRC64WE computes the CRC-64/WE of a buffer of 32-bit words, each fed
// low byte first. Seed 0xFFFFFFFFFFFFFFFF, result complemented; an
// empty buffer yields 0.
func CRC64WE(words []uint32) uint64 {
	crc := ^uint64(0)
	for _, w := range words {
		for i := 0; i < 4; i++ {
			crc = crc64WEStep(crc, uint8(w>>(8*i)))
		}
	}
	return ^crc
}

func crc64WEStep(crc uint64, b uint8) uint64 {
	crc ^= uint64(b) << 56
	for bit := 0; bit < 8; bit++ {
		if crc&(1<<63) != 0 {
			crc = crc<<1 ^ PolyCRC64WE
		} else {
			crc <<= 1
		}
	}
	return crc
}
