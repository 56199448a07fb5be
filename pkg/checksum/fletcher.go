package checksum

// Fletcher16 computes the Fletcher-16 checksum of data: two running
// sums modulo 255, the position-weighted sum in the high byte. Unlike
// a plain byte sum it detects most reorderings of the input.
func Fletcher16(data []byte) uint16 {
	var sum1, sum2 uint16
	for _, b := range data {
		sum1 = (sum1 + uint16(b)) % 255
		sum2 = (sum2 + sum1) % 255
	}
	return sum2<<8 | sum1
}
