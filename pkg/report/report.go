// Package report renders a human-readable summary of a cartridge header.
package report

import (
	"io"
	stdlog "log"

	"github.com/jeandeaual/go-locale"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		stdlog.Printf("report: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Write prints the header report for cart to w, formatting numbers
// for the host locale.
func Write(w io.Writer, cart *cartridge.Cartridge) error {
	return WriteWith(printer, w, cart)
}

// WriteWith prints the header report for cart to w using p. Unsupported
// header codes are reported inline rather than returned; only write
// errors are returned.
func WriteWith(p *message.Printer, w io.Writer, cart *cartridge.Cartridge) error {
	rw := &writer{p: p, w: w}
	h := cart.Header()

	rw.line("Title", "%s", cart.Title())
	rw.line("Hardware", "%s", h.Hardware())
	rw.line("ROM Size", "%d KiB", cart.ROMSize())

	if ram, err := cart.RAMSize(); err != nil {
		rw.line("RAM Size", "%v", err)
	} else {
		rw.line("RAM Size", "%d KiB", ram)
	}

	if t, err := cart.CartridgeType(); err != nil {
		rw.line("Cartridge Type", "%v", err)
	} else {
		rw.line("Cartridge Type", "%s (0x%02X)", t, uint8(t))
	}

	if l, err := cart.LicenseCode(); err != nil {
		rw.line("License Code", "%v", err)
	} else {
		rw.line("License Code", "%s (0x%02X)", l, uint8(l))
	}

	if d, err := cart.DestinationCode(); err != nil {
		rw.line("Destination Code", "%v", err)
	} else {
		rw.line("Destination Code", "%s (0x%02X)", d, uint8(d))
	}

	if calculated := cart.CalculateChecksum(); calculated == cart.Checksum() {
		rw.line("Checksum", "0x%02X (OK)", cart.Checksum())
	} else {
		rw.line("Checksum", "0x%02X (mismatch, calculated 0x%02X)", cart.Checksum(), calculated)
	}

	rw.line("Global Checksum", "0x%04X", cart.GlobalChecksum())
	rw.line("Fingerprint", "%016x", cart.Fingerprint())
	return rw.err
}

// writer keeps the first write error and drops every line after it.
type writer struct {
	p   *message.Printer
	w   io.Writer
	err error
}

func (rw *writer) line(label, format string, args ...any) {
	if rw.err != nil {
		return
	}
	if _, err := rw.p.Fprintf(rw.w, "%-17s ", label+":"); err != nil {
		rw.err = err
		return
	}
	_, rw.err = rw.p.Fprintf(rw.w, format+"\n", args...)
}
