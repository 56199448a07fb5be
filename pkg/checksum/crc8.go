package checksum

// CRC8 computes the table-driven CRC-8 of data with polynomial 0x07,
// zero seed and no final XOR (CRC-8/SMBUS).
func CRC8(data []byte) uint8 {
	var crc uint8
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc
}

// CRC8Generic computes a bitwise MSB-first CRC-8 over data with the
// given polynomial and zero seed.
func CRC8Generic(data []byte, poly uint8) uint8 {
	return CRC8GenericSeeded(data, poly, 0)
}

// CRC8GenericSeeded computes a bitwise MSB-first CRC-8 over data with
// the given polynomial and seed. No reflection, no final XOR.
func CRC8GenericSeeded(data []byte, poly, seed uint8) uint8 {
	crc := seed
	for _, b := range data {
		crc = crc8DVBStep(crc, b, poly)
	}
	return crc
}

// CRC8DVB folds a single byte into crc, MSB first, using the given
// polynomial.
func CRC8DVB(crc, b, poly uint8) uint8 {
	return crc8DVBStep(crc, b, poly)
}

// CRC8DVBUpdate folds a buffer into crc, one CRC8DVB step per byte,
// with the polynomial fixed to 0xD5.
func CRC8DVBUpdate(crc uint8, data []byte) uint8 {
	for _, b := range data {
		crc = crc8DVBStep(crc, b, PolyDVBS2)
	}
	return crc
}

// CRC8DVBS2 folds a single byte into crc with the DVB-S2 polynomial
// 0xD5. Start from zero; there is no final XOR.
func CRC8DVBS2(crc, b uint8) uint8 {
	return crc8DVBStep(crc, b, PolyDVBS2)
}

// CRC8DVBS2Update folds a buffer into crc with the DVB-S2 polynomial.
func CRC8DVBS2Update(crc uint8, data []byte) uint8 {
	for _, b := range data {
		crc = crc8DVBStep(crc, b, PolyDVBS2)
	}
	return crc
}

// CRC8Maxim computes the reflected CRC-8 used by Dallas/Maxim 1-Wire
// devices (polynomial 0x31 reflected to 0x8C, zero seed).
func CRC8Maxim(data []byte) uint8 {
	var crc uint8
	for _, b := range data {
		for bit := 0; bit < 8; bit++ {
			mix := (crc ^ b) & 0x01
			crc >>= 1
			if mix != 0 {
				crc ^= PolyMaxim
			}
			b >>= 1
		}
	}
	return crc
}

// CRC8SAE computes the SAE J1850 CRC-8: polynomial 0x1D, seed 0xFF,
// result complemented.
func CRC8SAE(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc = crc8DVBStep(crc, b, PolySAE)
	}
	return ^crc
}

// CRC8RDS02UF computes the CRC-8 of an RDS02UF radar frame: polynomial
// 0x1D with zero seed and no final XOR.
func CRC8RDS02UF(data []byte) uint8 {
	var crc uint8
	for _, b := range data {
		crc = crc8DVBStep(crc, b, PolyRDS02UF)
	}
	return crc
}

func crc8DVBStep(crc, b, poly uint8) uint8 {
	crc ^= b
	for bit := 0; bit < 8; bit++ {
		if crc&0x80 != 0 {
			crc = crc<<1 ^ poly
		} else {
			crc <<= 1
		}
	}
	return crc
}
