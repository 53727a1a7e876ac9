package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no regular files.
var ErrEmptyArchive = errors.New("archive contains no files")

// romExtensions are preferred when picking a file out of an archive.
var romExtensions = []string{".gb", ".gbc"}

// LoadFile loads the given file and performs decompression if necessary.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decodes data according to the (case-insensitive) file
// extension ext. Unknown extensions are returned as is, so plain
// .gb, .gbc and .bin images pass straight through.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		decoder = z
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		zr, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		return readZip(zr)
	case ".7z":
		sr, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		return read7z(sr)
	default:
		return data, nil
	}

	return io.ReadAll(decoder)
}

// readZip reads the first ROM in the archive, falling back
// to the first regular file if no ROM extension matches.
func readZip(r *zip.Reader) ([]byte, error) {
	var chosen *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if chosen == nil || (!isROM(chosen.Name) && isROM(f.Name)) {
			chosen = f
		}
	}
	if chosen == nil {
		return nil, ErrEmptyArchive
	}

	rc, err := chosen.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// read7z is the same as readZip for 7z archives.
func read7z(r *sevenzip.Reader) ([]byte, error) {
	var chosen *sevenzip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if chosen == nil || (!isROM(chosen.Name) && isROM(f.Name)) {
			chosen = f
		}
	}
	if chosen == nil {
		return nil, ErrEmptyArchive
	}

	rc, err := chosen.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func isROM(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range romExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
