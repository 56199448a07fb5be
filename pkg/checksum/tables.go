package checksum

// makeTable8 builds a 256-entry lookup table for an MSB-first CRC-8.
func makeTable8(poly uint8) [256]uint8 {
	var table [256]uint8
	for i := range table {
		crc := uint8(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

// makeTable16 builds a 256-entry lookup table for an MSB-first CRC-16.
func makeTable16(poly uint16) [256]uint16 {
	var table [256]uint16
	for i := range table {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

// makeReflectedTable16 builds a 256-entry lookup table for an LSB-first
// CRC-16. The polynomial must already be in reflected form.
func makeReflectedTable16(poly uint16) [256]uint16 {
	var table [256]uint16
	for i := range table {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

// makeReflectedTable32 builds a 256-entry lookup table for an LSB-first
// CRC-32. The polynomial must already be in reflected form.
func makeReflectedTable32(poly uint32) [256]uint32 {
	var table [256]uint32
	for i := range table {
		crc := uint32(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

var (
	crc8Table   = makeTable8(PolyCRC8)
	ccittTable  = makeTable16(PolyCCITT)
	ibmTable    = makeTable16(PolyIBM)
	modbusTable = makeReflectedTable16(PolyModbus)
	crc32Table  = makeReflectedTable32(PolyCRC32)
)
