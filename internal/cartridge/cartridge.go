// Package cartridge reads the header of a DMG and CGB cartridge image.
// The header is located at 0x0100-0x014F and describes the game and
// the hardware it expects to run on.
package cartridge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Cartridge holds a read-only cartridge image and the header codes
// cached from it at load time.
type Cartridge struct {
	rom []byte

	title         string
	romSize       uint8
	ramSize       uint8
	cartridgeType uint8
	licCode       uint8
}

// New returns an empty cartridge. ReadFile or Load must be
// called before any header accessor.
func New() *Cartridge {
	return &Cartridge{}
}

// ReadFile loads the image at path, decompressing it if necessary.
func (c *Cartridge) ReadFile(path string) error {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return fmt.Errorf("read cartridge: %w", err)
	}
	return c.Load(rom)
}

// Load copies rom into the cartridge and caches the header codes.
// An image too short to hold a header returns ErrTruncatedHeader.
func (c *Cartridge) Load(rom []byte) error {
	if len(rom) < HeaderEnd {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedHeader, len(rom), HeaderEnd)
	}

	c.rom = bytes.Clone(rom)

	// the title would be padded with $00 bytes if it was shorter than the title length
	c.title = strings.TrimRight(string(c.ReadSection(SectionTitle)), "\x00")
	c.romSize = c.byteAt(SectionROMSize)
	c.ramSize = c.byteAt(SectionRAMSize)
	c.cartridgeType = c.byteAt(SectionCartridgeType)
	c.licCode = c.byteAt(SectionLicenseCode)
	return nil
}

// Loaded returns true once an image has been loaded.
func (c *Cartridge) Loaded() bool {
	return len(c.rom) >= HeaderEnd
}

// ReadSection returns a copy of the bytes of the given header section,
// or nil if no image has been loaded. Unknown sections panic.
func (c *Cartridge) ReadSection(section Section) []byte {
	r, ok := sections[section]
	if !ok {
		panic(fmt.Sprintf("header section not implemented: %d", section))
	}
	if !c.Loaded() {
		return nil
	}
	return bytes.Clone(c.rom[r[0] : r[1]+1])
}

// byteAt returns the first byte of a section, or 0 when not loaded.
func (c *Cartridge) byteAt(section Section) uint8 {
	if b := c.ReadSection(section); len(b) > 0 {
		return b[0]
	}
	return 0
}

// Title returns the cartridge title with its NUL padding removed.
func (c *Cartridge) Title() string {
	return c.title
}

// ROMSize returns the ROM size in KiB, calculated by 32 KiB x (1<<code).
func (c *Cartridge) ROMSize() int {
	return 32 << c.romSize
}

// RAMSize returns the external RAM size in KiB.
func (c *Cartridge) RAMSize() (int, error) {
	size, ok := ramSizes[c.ramSize]
	if !ok {
		return 0, &UnsupportedCodeError{Field: "RAM size", Code: c.ramSize}
	}
	return size, nil
}

// CartridgeType returns the hardware present on the cartridge.
func (c *Cartridge) CartridgeType() (Type, error) {
	t := Type(c.cartridgeType)
	if _, ok := typeNames[t]; !ok {
		return t, &UnsupportedCodeError{Field: "cartridge type", Code: c.cartridgeType}
	}
	return t, nil
}

// LicenseCode returns the publisher from the old licensee code.
func (c *Cartridge) LicenseCode() (Licensee, error) {
	l := Licensee(c.licCode)
	if _, ok := licensees[l]; !ok {
		return l, &UnsupportedCodeError{Field: "license", Code: c.licCode}
	}
	return l, nil
}

// DestinationCode returns the region the game is intended to be sold in.
func (c *Cartridge) DestinationCode() (Destination, error) {
	code := c.byteAt(SectionDestinationCode)
	switch d := Destination(code); d {
	case DestinationJapan, DestinationNonJapanese:
		return d, nil
	default:
		return d, &UnsupportedCodeError{Field: "destination", Code: code}
	}
}

// Checksum returns the header checksum stored at $014D.
func (c *Cartridge) Checksum() uint8 {
	return c.byteAt(SectionChecksum)
}

// CalculateChecksum computes the header checksum over $0134-$014C.
func (c *Cartridge) CalculateChecksum() uint8 {
	if !c.Loaded() {
		return 0
	}

	var x uint16
	for _, b := range c.rom[checksumStart : checksumEnd+1] {
		x = x - uint16(b) - 1
	}
	return uint8(x)
}

// VerifyChecksum returns a ChecksumMismatchError if the stored header
// checksum does not match the calculated one. A mismatch indicates a
// corrupt or patched image, which may still run.
func (c *Cartridge) VerifyChecksum() error {
	if !c.Loaded() {
		return ErrNotLoaded
	}
	if stored, calculated := c.Checksum(), c.CalculateChecksum(); stored != calculated {
		return &ChecksumMismatchError{Stored: stored, Calculated: calculated}
	}
	return nil
}

// GlobalChecksum returns the big endian checksum stored at $014E-$014F.
func (c *Cartridge) GlobalChecksum() uint16 {
	if !c.Loaded() {
		return 0
	}
	return binary.BigEndian.Uint16(c.ReadSection(SectionGlobalChecksum))
}

// CalculateGlobalChecksum sums every byte of the image, excluding
// the two global checksum bytes. Real hardware never verifies it.
func (c *Cartridge) CalculateGlobalChecksum() uint16 {
	var sum uint16
	for i, b := range c.rom {
		if i == 0x014E || i == 0x014F {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

// Validate reports every unsupported header code and a checksum
// mismatch at once. It returns nil for a well formed image.
func (c *Cartridge) Validate() error {
	if !c.Loaded() {
		return ErrNotLoaded
	}

	var result *multierror.Error
	if _, err := c.RAMSize(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.CartridgeType(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.LicenseCode(); err != nil {
		result = multierror.Append(result, err)
	}
	if _, err := c.DestinationCode(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.VerifyChecksum(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Fingerprint returns the xxhash of the whole image, used
// to identify a ROM independently of its header.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}

// Header returns a decoded snapshot of the whole header.
func (c *Cartridge) Header() Header {
	if !c.Loaded() {
		return Header{}
	}

	h := Header{
		Title:           c.title,
		CGBFlag:         c.byteAt(SectionCGBFlag),
		NewLicenseeCode: string(c.ReadSection(SectionNewLicenseeCode)),
		SGBFlag:         c.byteAt(SectionSGB) == 0x03,
		CartridgeType:   Type(c.cartridgeType),
		ROMSizeCode:     c.romSize,
		RAMSizeCode:     c.ramSize,
		DestinationCode: c.byteAt(SectionDestinationCode),
		OldLicenseeCode: c.licCode,
		MaskROMVersion:  c.byteAt(SectionMaskROMVersion),
		HeaderChecksum:  c.Checksum(),
		GlobalChecksum:  c.GlobalChecksum(),
	}
	copy(h.EntryPoint[:], c.ReadSection(SectionEntryPoint))
	return h
}

// Read returns the byte at address, so the cartridge can back the
// CPU's fetches. Addresses past the end of the image read 0xFF.
func (c *Cartridge) Read(address uint16) uint8 {
	if int(address) < len(c.rom) {
		return c.rom[address]
	}
	return 0xFF
}
