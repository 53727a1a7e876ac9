package cartridge

import "fmt"

// Licensee is the game's publisher, as found in the old licensee code at $014B.
type Licensee uint8

const (
	LicenseeNone         Licensee = 0x00
	LicenseeNintendo     Licensee = 0x01
	LicenseeCapcom       Licensee = 0x08
	LicenseeHotB         Licensee = 0x09
	LicenseeJaleco       Licensee = 0x0A
	LicenseeCoconuts     Licensee = 0x0B
	LicenseeEliteSystems Licensee = 0x0C

	// LicenseeNew means the publisher is given by the new licensee code at $0144-$0145.
	LicenseeNew Licensee = 0x33
)

// licensees is the old licensee table. Codes not listed are reported
// as unsupported.
var licensees = map[Licensee]string{
	LicenseeNone:         "None",
	LicenseeNintendo:     "Nintendo",
	LicenseeCapcom:       "Capcom",
	LicenseeHotB:         "HOT-B",
	LicenseeJaleco:       "Jaleco",
	LicenseeCoconuts:     "Coconuts Japan",
	LicenseeEliteSystems: "Elite Systems",
	0x13:                 "EA (Electronic Arts)",
	0x18:                 "Hudson Soft",
	0x19:                 "ITC Entertainment",
	0x1A:                 "Yanoman",
	0x1D:                 "Japan Clary",
	0x1F:                 "Virgin Games",
	0x24:                 "PCM Complete",
	0x25:                 "San-X",
	0x28:                 "Kemco",
	0x29:                 "SETA Corporation",
	0x30:                 "Infogrames",
	0x31:                 "Nintendo",
	0x32:                 "Bandai",
	LicenseeNew:          "see new licensee code",
	0x34:                 "Konami",
	0x35:                 "HectorSoft",
	0x38:                 "Capcom",
	0x39:                 "Banpresto",
	0x41:                 "Ubi Soft",
	0x42:                 "Atlus",
	0x49:                 "Irem",
	0x4F:                 "U.S. Gold",
	0x51:                 "Acclaim Entertainment",
	0x52:                 "Activision",
	0x56:                 "LJN",
	0x67:                 "Ocean Software",
	0x69:                 "EA (Electronic Arts)",
	0x78:                 "THQ",
	0x79:                 "Accolade",
	0x7F:                 "Kemco",
	0xA4:                 "Konami",
	0xAF:                 "Namco",
	0xB0:                 "Acclaim Entertainment",
	0xB6:                 "HAL Laboratory",
	0xB7:                 "SNK",
	0xBB:                 "Sunsoft",
	0xC0:                 "Taito",
	0xC3:                 "Squaresoft",
	0xC8:                 "Koei",
	0xE9:                 "Natsume",
	0xFF:                 "LJN",
}

func (l Licensee) String() string {
	if name, ok := licensees[l]; ok {
		return name
	}
	return fmt.Sprintf("Licensee(0x%02X)", uint8(l))
}
