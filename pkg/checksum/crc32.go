package checksum

// CRC32 folds data into a reflected IEEE 802.3 CRC-32 accumulator, one
// table lookup per byte. The accumulator is threaded raw: seed with
// 0xFFFFFFFF and complement the result yourself to get the standard
// CRC-32 check value, or chain calls to checksum a buffer in pieces.
func CRC32(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crc32Table[uint8(crc)^b] ^ crc>>8
	}
	return crc
}

// crc32SmallTable holds one entry per nibble of the reflected IEEE
// polynomial, for targets where a full 1 KiB table is too large.
var crc32SmallTable = [16]uint32{
	0x00000000, 0x1DB71064, 0x3B6E20C8, 0x26D930AC,
	0x76DC4190, 0x6B6B51F4, 0x4DB26158, 0x5005713C,
	0xEDB88320, 0xF00F9344, 0xD6D6A3E8, 0xCB61B38C,
	0x9B64C2B0, 0x86D3D2D4, 0xA00AE278, 0xBDBDF21C,
}

// CRC32Small computes the same function as CRC32 using a 16-entry
// nibble table, two lookups per byte.
func CRC32Small(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc ^= uint32(b)
		crc = crc32SmallTable[crc&0x0F] ^ crc>>4
		crc = crc32SmallTable[crc&0x0F] ^ crc>>4
	}
	return crc
}
