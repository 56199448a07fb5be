package checksum

// CRC16XModemUpdate folds a single byte into an XMODEM CRC-16
// accumulator, bitwise MSB first with polynomial 0x1021.
func CRC16XModemUpdate(crc uint16, b uint8) uint16 {
	crc ^= uint16(b) << 8
	for bit := 0; bit < 8; bit++ {
		if crc&0x8000 != 0 {
			crc = crc<<1 ^ PolyCCITT
		} else {
			crc <<= 1
		}
	}
	return crc
}

// CRC16XModem computes the XMODEM CRC-16 of data: polynomial 0x1021,
// zero seed, no reflection, no final XOR.
func CRC16XModem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = CRC16XModemUpdate(crc, b)
	}
	return crc
}

// CRC16CCITT computes the table-driven CCITT CRC-16 of data starting
// from crc. Seed with 0xFFFF for CRC-16/CCITT-FALSE; seed with 0 to
// match CRC16XModem.
func CRC16CCITT(data []byte, crc uint16) uint16 {
	for _, b := range data {
		crc = crc<<8 ^ ccittTable[uint8(crc>>8)^b]
	}
	return crc
}

// CRC16CCITTXor computes CRC16CCITT and XORs the given output mask
// into the result. With crc=0xFFFF and out=0xFFFF this is
// CRC-16/GENIBUS.
func CRC16CCITTXor(data []byte, crc, out uint16) uint16 {
	return CRC16CCITT(data, crc) ^ out
}

// CRC16GDL90 computes the GDL90 message CRC from the FAA GDL90 data
// interface specification. It uses the same table as CRC16CCITT but
// feeds each byte into the low half of the register, so the message is
// not augmented with 16 zero bits: appending two zero bytes to the
// input makes CRC16GDL90 agree with CRC16XModem of the original.
//
// See https://www.faa.gov/nextgen/programs/adsb/archival/media/gdl90_public_icd_reva.pdf
func CRC16GDL90(data []byte, crc uint16) uint16 {
	for _, b := range data {
		crc = ccittTable[crc>>8] ^ crc<<8 ^ uint16(b)
	}
	return crc
}

// CRC16Modbus computes the Modbus RTU CRC-16 of data: reflected
// polynomial 0xA001, seed 0xFFFF, no final XOR. The result is
// transmitted low byte first on the wire.
func CRC16Modbus(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc>>8 ^ modbusTable[uint8(crc)^b]
	}
	return crc
}

// CRC16IBM computes the MSB-first CRC-16 with polynomial 0x8005
// (CRC-16/BUYPASS) of data starting from crc, as used by Dynamixel
// servo packets. Seed with 0 for the standard check value.
func CRC16IBM(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = crc<<8 ^ ibmTable[uint8(crc>>8)^b]
	}
	return crc
}
