package cartridge

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoaded        = errors.New("cartridge not loaded")
	ErrTruncatedHeader  = errors.New("truncated cartridge header")
	ErrUnsupportedCode  = errors.New("unsupported header code")
	ErrChecksumMismatch = errors.New("header checksum mismatch")
)

// UnsupportedCodeError is returned when a header field holds a code
// missing from its lookup table.
type UnsupportedCodeError struct {
	Field string
	Code  uint8
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("unsupported %s code 0x%02X", e.Field, e.Code)
}

func (e *UnsupportedCodeError) Is(err error) bool {
	return err == ErrUnsupportedCode
}

// ChecksumMismatchError is returned when the stored header checksum
// differs from the one calculated over the header bytes.
type ChecksumMismatchError struct {
	Stored     uint8
	Calculated uint8
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("header checksum mismatch: stored 0x%02X, calculated 0x%02X", e.Stored, e.Calculated)
}

func (e *ChecksumMismatchError) Is(err error) bool {
	return err == ErrChecksumMismatch
}
