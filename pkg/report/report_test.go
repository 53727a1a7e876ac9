package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// cpuInstrs returns a cartridge carrying the header of blargg's cpu_instrs.gb.
func cpuInstrs(t *testing.T, patch func(rom []byte)) *cartridge.Cartridge {
	t.Helper()

	rom := make([]byte, 64*1024)
	copy(rom[0x0100:], []byte{0x00, 0xC3, 0x37, 0x06})
	copy(rom[0x0134:], "CPU_INSTRS")
	rom[0x0143] = cartridge.CGBFlagEnhanced
	rom[0x0147] = 0x01
	rom[0x0148] = 0x01
	rom[0x014D] = 0x3B
	if patch != nil {
		patch(rom)
	}

	cart := cartridge.New()
	require.NoError(t, cart.Load(rom))
	return cart
}

func TestWrite(t *testing.T) {
	cart := cpuInstrs(t, nil)

	var buf bytes.Buffer
	require.NoError(t, WriteWith(message.NewPrinter(language.English), &buf, cart))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Title:            CPU_INSTRS",
		"Hardware:         CGB",
		"ROM Size:         64 KiB",
		"RAM Size:         0 KiB",
		"Cartridge Type:   MBC1 (0x01)",
		"License Code:     None (0x00)",
		"Destination Code: Japan (0x00)",
		"Checksum:         0x3B (OK)",
		"Global Checksum:  0x0000",
	}, lines[:9])
	assert.True(t, strings.HasPrefix(lines[9], "Fingerprint:      "), lines[9])
	assert.Len(t, lines, 10)

	t.Run("host locale", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, cart))
		assert.Contains(t, buf.String(), "CPU_INSTRS")
	})
}

func TestWrite_Unsupported(t *testing.T) {
	cart := cpuInstrs(t, func(rom []byte) {
		rom[0x0147] = 0x04
		rom[0x0149] = 0x05
		rom[0x014A] = 0x02
		rom[0x014B] = 0x02
	})

	var buf bytes.Buffer
	require.NoError(t, WriteWith(message.NewPrinter(language.English), &buf, cart))

	out := buf.String()
	assert.Contains(t, out, "RAM Size:         unsupported RAM size code 0x05")
	assert.Contains(t, out, "Cartridge Type:   unsupported cartridge type code 0x04")
	assert.Contains(t, out, "License Code:     unsupported license code 0x02")
	assert.Contains(t, out, "Destination Code: unsupported destination code 0x02")
	assert.Contains(t, out, "Checksum:         0x3B (mismatch, calculated 0x")
}

func TestWrite_Locale(t *testing.T) {
	cart := cpuInstrs(t, func(rom []byte) { rom[0x0148] = 0x08 })

	var en, de bytes.Buffer
	require.NoError(t, WriteWith(message.NewPrinter(language.English), &en, cart))
	require.NoError(t, WriteWith(message.NewPrinter(language.German), &de, cart))

	assert.Contains(t, en.String(), "ROM Size:         8,192 KiB")
	assert.Contains(t, de.String(), "ROM Size:         8.192 KiB")
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errWrite
	}
	f.n--
	return len(p), nil
}

func TestWrite_Error(t *testing.T) {
	w := &failingWriter{n: 3}
	assert.ErrorIs(t, WriteWith(message.NewPrinter(language.English), w, cpuInstrs(t, nil)), errWrite)
	assert.Zero(t, w.n)
}
