package checksum

import "math/bits"

// Parity returns the even parity of b: 1 if an odd number of bits are
// set, 0 otherwise.
func Parity(b uint8) uint8 {
	return uint8(bits.OnesCount8(b) & 1)
}

// SumOfBytes returns the modulo-256 sum of all bytes in data.
func SumOfBytes(data []byte) uint8 {
	var sum uint8
	for _, b := range data {
		sum += b
	}
	return sum
}

// SumOfBytes16 returns the modulo-65536 sum of all bytes in data.
func SumOfBytes16(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// Sum8WithCarry returns the complemented end-around-carry sum of data:
// after each byte the carry out of bit 7 is added back into bit 0, and
// the final sum is subtracted from 0xFF. An empty buffer yields 0xFF.
func Sum8WithCarry(data []byte) uint8 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
		sum += sum >> 8
		sum &= 0xFF
	}
	return uint8(0xFF - sum)
}
