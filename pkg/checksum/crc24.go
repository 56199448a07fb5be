package checksum

// CRC24 computes the bitwise CRC-24 of data with polynomial 0x1864CFB
// and zero seed, as used by ADS-B extended squitter and OpenPGP (which
// seeds differently). The 24-bit result is returned in the low bits of
// a uint32.
func CRC24(data []byte) uint32 {
	var crc uint32
	for _, b := range data {
		crc ^= uint32(b) << 16
		for bit := 0; bit < 8; bit++ {
			crc <<= 1
			if crc&0x1000000 != 0 {
				crc ^= PolyCRC24
			}
		}
	}
	return crc & 0xFFFFFF
}
