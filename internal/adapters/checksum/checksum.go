// Package checksum adapts the checksum algorithm implementations to
// the Checksummer port and names them for configuration.
package checksum

import (
	"fmt"

	"github.com/iamNilotpal/integrity/internal/core/domain"
	"github.com/iamNilotpal/integrity/internal/core/ports"
)

const (
	// CRC8 is the table-driven CRC-8 with polynomial 0x07
	CRC8 domain.ChecksumAlgorithm = "crc8"

	// CRC8DVBS2 is the DVB-S2 CRC-8 (polynomial 0xD5)
	CRC8DVBS2 domain.ChecksumAlgorithm = "crc8-dvb-s2"

	// CRC8Maxim is the reflected Dallas/Maxim 1-Wire CRC-8
	CRC8Maxim domain.ChecksumAlgorithm = "crc8-maxim"

	// CRC8SAE is the SAE J1850 CRC-8 with complemented output
	CRC8SAE domain.ChecksumAlgorithm = "crc8-sae"

	// CRC8RDS02UF is the RDS02UF radar frame CRC-8
	CRC8RDS02UF domain.ChecksumAlgorithm = "crc8-rds02uf"

	// CRC16XModem is the XMODEM CRC-16 with zero seed
	CRC16XModem domain.ChecksumAlgorithm = "crc16-xmodem"

	// CRC16CCITT is the CCITT-FALSE CRC-16 seeded with 0xFFFF
	CRC16CCITT domain.ChecksumAlgorithm = "crc16-ccitt"

	// CRC16GDL90 is the non-augmented GDL90 message CRC
	CRC16GDL90 domain.ChecksumAlgorithm = "crc16-gdl90"

	// CRC16Modbus is the Modbus RTU CRC-16
	CRC16Modbus domain.ChecksumAlgorithm = "crc16-modbus"

	// CRC16IBM is the MSB-first 0x8005 CRC-16 (Dynamixel)
	CRC16IBM domain.ChecksumAlgorithm = "crc16-ibm"

	// CRC24 is the 24-bit ADS-B/OpenPGP polynomial with zero seed
	CRC24 domain.ChecksumAlgorithm = "crc24"

	// CRC32 is the standard IEEE 802.3 CRC-32
	CRC32 domain.ChecksumAlgorithm = "crc32"

	// Fletcher16 is the Fletcher-16 position-weighted sum
	Fletcher16 domain.ChecksumAlgorithm = "fletcher16"

	// FNV1a is the 64-bit FNV-1a hash
	FNV1a domain.ChecksumAlgorithm = "fnv1a"

	// Sum8 is the modulo-256 byte sum
	Sum8 domain.ChecksumAlgorithm = "sum8"

	// Sum8Carry is the complemented end-around-carry byte sum
	Sum8Carry domain.ChecksumAlgorithm = "sum8-carry"

	// Sum16 is the modulo-65536 byte sum
	Sum16 domain.ChecksumAlgorithm = "sum16"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{
		Algorithm: CRC32,
	}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		if _, ok := builders[input.Algorithm]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, input.Algorithm)
		}
	}
	return nil
}

// New builds the Checksummer selected by opts. A Custom implementation
// takes precedence over the Algorithm name.
func New(opts *domain.ChecksumOptions) (ports.Checksummer, error) {
	if opts.Custom != nil {
		return opts.Custom, nil
	}

	build, ok := builders[opts.Algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAlgorithm, opts.Algorithm)
	}
	return build(), nil
}

// Algorithms returns the registry names of every built-in algorithm.
func Algorithms() []domain.ChecksumAlgorithm {
	names := make([]domain.ChecksumAlgorithm, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}

var builders = map[domain.ChecksumAlgorithm]func() ports.Checksummer{
	CRC8:        func() ports.Checksummer { return NewCRC8() },
	CRC8DVBS2:   func() ports.Checksummer { return NewCRC8DVBS2() },
	CRC8Maxim:   func() ports.Checksummer { return NewCRC8Maxim() },
	CRC8SAE:     func() ports.Checksummer { return NewCRC8SAE() },
	CRC8RDS02UF: func() ports.Checksummer { return NewCRC8RDS02UF() },
	CRC16XModem: func() ports.Checksummer { return NewCRC16XModem() },
	CRC16CCITT:  func() ports.Checksummer { return NewCRC16CCITT() },
	CRC16GDL90:  func() ports.Checksummer { return NewCRC16GDL90() },
	CRC16Modbus: func() ports.Checksummer { return NewCRC16Modbus() },
	CRC16IBM:    func() ports.Checksummer { return NewCRC16IBM() },
	CRC24:       func() ports.Checksummer { return NewCRC24() },
	CRC32:       func() ports.Checksummer { return NewCRC32() },
	Fletcher16:  func() ports.Checksummer { return NewFletcher16() },
	FNV1a:       func() ports.Checksummer { return NewFNV1a() },
	Sum8:        func() ports.Checksummer { return NewSum8() },
	Sum8Carry:   func() ports.Checksummer { return NewSum8Carry() },
	Sum16:       func() ports.Checksummer { return NewSum16() },
}
