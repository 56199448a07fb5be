package checksum

import (
	algo "github.com/iamNilotpal/integrity/pkg/checksum"
)

type crc16XModem struct {
	name string
}

func NewCRC16XModem() *crc16XModem {
	return &crc16XModem{name: string(CRC16XModem)}
}

func (c *crc16XModem) Calculate(data []byte) uint64 {
	return uint64(algo.CRC16XModem(data))
}

func (c *crc16XModem) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc16XModem) Size() uint8 {
	return 2
}

func (c *crc16XModem) Name() string {
	return c.name
}

type crc16CCITT struct {
	name string
	seed uint16
}

func NewCRC16CCITT() *crc16CCITT {
	return &crc16CCITT{name: string(CRC16CCITT), seed: 0xFFFF}
}

func (c *crc16CCITT) Calculate(data []byte) uint64 {
	return uint64(algo.CRC16CCITT(data, c.seed))
}

func (c *crc16CCITT) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc16CCITT) Size() uint8 {
	return 2
}

func (c *crc16CCITT) Name() string {
	return c.name
}

type crc16GDL90 struct {
	name string
}

func NewCRC16GDL90() *crc16GDL90 {
	return &crc16GDL90{name: string(CRC16GDL90)}
}

func (c *crc16GDL90) Calculate(data []byte) uint64 {
	return uint64(algo.CRC16GDL90(data, 0))
}

func (c *crc16GDL90) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc16GDL90) Size() uint8 {
	return 2
}

func (c *crc16GDL90) Name() string {
	return c.name
}

type crc16Modbus struct {
	name string
}

func NewCRC16Modbus() *crc16Modbus {
	return &crc16Modbus{name: string(CRC16Modbus)}
}

func (c *crc16Modbus) Calculate(data []byte) uint64 {
	return uint64(algo.CRC16Modbus(data))
}

func (c *crc16Modbus) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc16Modbus) Size() uint8 {
	return 2
}

func (c *crc16Modbus) Name() string {
	return c.name
}

type crc16IBM struct {
	name string
}

func NewCRC16IBM() *crc16IBM {
	return &crc16IBM{name: string(CRC16IBM)}
}

func (c *crc16IBM) Calculate(data []byte) uint64 {
	return uint64(algo.CRC16IBM(0, data))
}

func (c *crc16IBM) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc16IBM) Size() uint8 {
	return 2
}

func (c *crc16IBM) Name() string {
	return c.name
}
