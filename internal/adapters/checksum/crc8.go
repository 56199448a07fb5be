package checksum

import (
	algo "github.com/iamNilotpal/integrity/pkg/checksum"
)

type crc8 struct {
	name string
}

func NewCRC8() *crc8 {
	return &crc8{name: string(CRC8)}
}

func (c *crc8) Calculate(data []byte) uint64 {
	return uint64(algo.CRC8(data))
}

func (c *crc8) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc8) Size() uint8 {
	return 1
}

func (c *crc8) Name() string {
	return c.name
}

type crc8DVBS2 struct {
	name string
}

func NewCRC8DVBS2() *crc8DVBS2 {
	return &crc8DVBS2{name: string(CRC8DVBS2)}
}

func (c *crc8DVBS2) Calculate(data []byte) uint64 {
	return uint64(algo.CRC8DVBS2Update(0, data))
}

func (c *crc8DVBS2) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc8DVBS2) Size() uint8 {
	return 1
}

func (c *crc8DVBS2) Name() string {
	return c.name
}

type crc8Maxim struct {
	name string
}

func NewCRC8Maxim() *crc8Maxim {
	return &crc8Maxim{name: string(CRC8Maxim)}
}

func (c *crc8Maxim) Calculate(data []byte) uint64 {
	return uint64(algo.CRC8Maxim(data))
}

func (c *crc8Maxim) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc8Maxim) Size() uint8 {
	return 1
}

func (c *crc8Maxim) Name() string {
	return c.name
}

type crc8SAE struct {
	name string
}

func NewCRC8SAE() *crc8SAE {
	return &crc8SAE{name: string(CRC8SAE)}
}

func (c *crc8SAE) Calculate(data []byte) uint64 {
	return uint64(algo.CRC8SAE(data))
}

func (c *crc8SAE) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc8SAE) Size() uint8 {
	return 1
}

func (c *crc8SAE) Name() string {
	return c.name
}

type crc8RDS02UF struct {
	name string
}

func NewCRC8RDS02UF() *crc8RDS02UF {
	return &crc8RDS02UF{name: string(CRC8RDS02UF)}
}

func (c *crc8RDS02UF) Calculate(data []byte) uint64 {
	return uint64(algo.CRC8RDS02UF(data))
}

func (c *crc8RDS02UF) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc8RDS02UF) Size() uint8 {
	return 1
}

func (c *crc8RDS02UF) Name() string {
	return c.name
}
