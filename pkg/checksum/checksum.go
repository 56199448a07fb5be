// Package checksum implements the short checksums and cyclic redundancy
// checks used by embedded and avionics wire protocols: CRC-4 through
// CRC-64, Fletcher-16, 64-bit FNV-1a, parity and additive sums.
//
// Every function is deterministic, allocation free and safe for
// concurrent use. Lookup tables are generated once at package
// initialization and never mutated afterwards.
package checksum

const (
	// PolyCRC8 is x^8 + x^2 + x + 1, the ATM HEC polynomial.
	PolyCRC8 = 0x07

	// PolyDVBS2 is the CRC-8 polynomial from the DVB-S2 standard.
	PolyDVBS2 = 0xD5

	// PolyMaxim is the reflected form of x^8 + x^5 + x^4 + 1,
	// used by Dallas/Maxim 1-Wire devices.
	PolyMaxim = 0x8C

	// PolySAE is x^8 + x^4 + x^3 + x^2 + 1 from SAE J1850.
	PolySAE = 0x1D

	// PolyRDS02UF is the CRC-8 polynomial of the RDS02UF radar frame.
	// Same generator as SAE J1850, but with zero seed and no final XOR.
	PolyRDS02UF = 0x1D

	// PolyCCITT is x^16 + x^12 + x^5 + 1, shared by XMODEM,
	// CCITT-FALSE and GDL90.
	PolyCCITT = 0x1021

	// PolyIBM is x^16 + x^15 + x^2 + 1 (CRC-16/BUYPASS, Dynamixel).
	PolyIBM = 0x8005

	// PolyModbus is the reflected form of PolyIBM used by Modbus RTU.
	PolyModbus = 0xA001

	// PolyCRC24 is the OpenPGP/FAA ADS-B CRC-24 polynomial.
	PolyCRC24 = 0x1864CFB

	// PolyCRC32 is the reflected IEEE 802.3 polynomial.
	PolyCRC32 = 0xEDB88320

	// PolyCRC64WE is x^64 + x^62 + x^57 + ... + 1, the CRC-64/WE
	// polynomial.
	PolyCRC64WE = 0x42F0E1EBA9EA3693
)
