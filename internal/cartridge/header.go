package cartridge

import "fmt"

// Section names a fixed region of the cartridge header.
type Section uint8

const (
	SectionEntryPoint Section = iota
	SectionNintendoLogo
	SectionTitle
	SectionCGBFlag
	SectionNewLicenseeCode
	SectionSGB
	SectionCartridgeType
	SectionROMSize
	SectionRAMSize
	SectionDestinationCode
	SectionLicenseCode
	SectionMaskROMVersion
	SectionChecksum
	SectionGlobalChecksum
)

// sections holds the inclusive offset range of each Section.
//
// https://gbdev.io/pandocs/The_Cartridge_Header.html
var sections = map[Section][2]int{
	SectionEntryPoint:      {0x0100, 0x0103},
	SectionNintendoLogo:    {0x0104, 0x0133},
	SectionTitle:           {0x0134, 0x0142},
	SectionCGBFlag:         {0x0143, 0x0143},
	SectionNewLicenseeCode: {0x0144, 0x0145},
	SectionSGB:             {0x0146, 0x0146},
	SectionCartridgeType:   {0x0147, 0x0147},
	SectionROMSize:         {0x0148, 0x0148},
	SectionRAMSize:         {0x0149, 0x0149},
	SectionDestinationCode: {0x014A, 0x014A},
	SectionLicenseCode:     {0x014B, 0x014B},
	SectionMaskROMVersion:  {0x014C, 0x014C},
	SectionChecksum:        {0x014D, 0x014D},
	SectionGlobalChecksum:  {0x014E, 0x014F},
}

const (
	// HeaderEnd is the smallest image length that holds a complete header.
	HeaderEnd = 0x0150

	// the header checksum covers 0x0134-0x014C
	checksumStart = 0x0134
	checksumEnd   = 0x014C
)

type CGBFlag = uint8 // CGBFlag specifies the level of CGB support in a Cartridge.

const (
	CGBFlagUnset    CGBFlag = 0x00 // No CGB support has been specified, most likely a regular Game Boy game.
	CGBFlagEnhanced CGBFlag = 0x80 // The game supports CGB enhancements, but is backwards compatible.
	CGBFlagCGBOnly  CGBFlag = 0xC0 // The game works on CGB only.
)

type Type uint8 // Type represents the hardware present in a Cartridge.

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	POCKETCAMERA      Type = 0xFC
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:              "MBC6",
	MBC7:              "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// Destination specifies whether a game is intended to be sold in Japan or elsewhere.
type Destination uint8

const (
	DestinationJapan       Destination = 0x00
	DestinationNonJapanese Destination = 0x01
)

func (d Destination) String() string {
	switch d {
	case DestinationJapan:
		return "Japan"
	case DestinationNonJapanese:
		return "Non-Japanese"
	}
	return fmt.Sprintf("Destination(0x%02X)", uint8(d))
}

// ramSizes maps the RAM size code to kilobytes.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x01: 2,
	0x02: 8,
	0x03: 32,
}

// Header is a decoded snapshot of every field in the cartridge header,
// located at the address space 0x0100-0x014F.
//
// Codes are kept raw; the Cartridge accessors decode them and report
// unsupported values.
type Header struct {
	Title           string  // $0134-$0142 Title of the game in uppercase ASCII, NUL padding removed.
	CGBFlag         CGBFlag // $0143 - Indicates level of CGB support
	NewLicenseeCode string  // $0144-$0145 2-character ASCII "licensee code", used when OldLicenseeCode is $33
	SGBFlag         bool    // $0146 - Specifies whether the game supports SGB functions
	CartridgeType   Type    // $0147 - Specifies the hardware present on a Cartridge.
	ROMSizeCode     uint8   // $0148 - ROM size is 32 KiB x (1<<value)
	RAMSizeCode     uint8   // $0149 - Specifies how much RAM is present on the Cartridge, if any.
	DestinationCode uint8   // $014A - Specifies whether the game is intended to be sold in Japan or elsewhere
	OldLicenseeCode uint8   // $014B - Specifies the game's publisher
	MaskROMVersion  uint8   // $014C - Specifies the version of the game. It is usually $00
	HeaderChecksum  uint8   // $014D - 8-Bit checksum of header bytes $0134-$014C
	GlobalChecksum  uint16  // $014E-$014F 16-bit (big endian) checksum of the ROM (excluding these bytes)
	EntryPoint      [4]byte // $0100-$0103
}

// GameboyColor returns true if the cartridge supports CGB functions.
func (h Header) GameboyColor() bool {
	return h.CGBFlag == CGBFlagEnhanced || h.CGBFlag == CGBFlagCGBOnly
}

// Hardware returns the name of the hardware the cartridge targets.
func (h Header) Hardware() string {
	switch h.CGBFlag {
	case CGBFlagEnhanced, CGBFlagCGBOnly:
		return "CGB"
	default:
		return "DMG"
	}
}

func (h Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: %s | ROM Size: %dkB", h.Title, h.Hardware(), h.CartridgeType, 32<<h.ROMSizeCode)
}
