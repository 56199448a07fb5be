package checksum

import (
	algo "github.com/iamNilotpal/integrity/pkg/checksum"
)

type crc24 struct {
	name string
}

func NewCRC24() *crc24 {
	return &crc24{name: string(CRC24)}
}

func (c *crc24) Calculate(data []byte) uint64 {
	return uint64(algo.CRC24(data))
}

func (c *crc24) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc24) Size() uint8 {
	return 3
}

func (c *crc24) Name() string {
	return c.name
}

type crc32IEEE struct {
	name string
}

func NewCRC32() *crc32IEEE {
	return &crc32IEEE{name: string(CRC32)}
}

// Calculate applies the standard pre and post complement, so the
// result is the familiar IEEE 802.3 check value.
func (c *crc32IEEE) Calculate(data []byte) uint64 {
	return uint64(^algo.CRC32(^uint32(0), data))
}

func (c *crc32IEEE) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc32IEEE) Size() uint8 {
	return 4
}

func (c *crc32IEEE) Name() string {
	return c.name
}
