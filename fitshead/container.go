package fitshead

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/klauspost/compress/gzip"
)

// Container wraps an opened FITS file for the duration of one CLI
// iteration. It owns the underlying file handle and must be closed.
type Container struct {
	file     *fitsio.File
	closer   io.Closer
	filename string
}

// Open opens the FITS file at path. Gzip-compressed files are
// inflated into memory transparently. Any failure to open or parse
// the file is reported as ErrOpenFailed with the original message.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenFailed.WithMessage(fmt.Sprintf("%s: %v", path, err))
	}

	r, err := fitsReader(f)
	if err != nil {
		f.Close()
		return nil, ErrOpenFailed.WithMessage(fmt.Sprintf("%s: %v", path, err))
	}

	file, err := fitsio.Open(r)
	if err != nil {
		f.Close()
		return nil, ErrOpenFailed.WithMessage(fmt.Sprintf("%s: %v", path, err))
	}

	return &Container{file: file, closer: f, filename: path}, nil
}

// fitsReader returns a ReadSeeker over the raw FITS stream, inflating
// the whole file into memory first when it carries the gzip magic.
func fitsReader(f *os.File) (io.ReadSeeker, error) {
	var magic [2]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		// Too short to sniff; let the decoder report the real problem.
		if _, serr := f.Seek(0, io.SeekStart); serr != nil {
			return nil, serr
		}
		return f, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if magic[0] != 0x1f || magic[1] != 0x8b {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}

// Close releases the decoder and the underlying file handle.
func (c *Container) Close() error {
	err := c.file.Close()
	if cerr := c.closer.Close(); err == nil {
		err = cerr
	}
	return err
}

// Filename returns the display name of the container, as given to Open.
func (c *Container) Filename() string {
	return c.filename
}

// NumHDUs returns the number of HDUs in the file.
func (c *Container) NumHDUs() int {
	return len(c.file.HDUs())
}

// HeaderFor resolves a lookup key to the header of exactly one HDU.
// Positional keys outside the file's range and names or name/version
// pairs that match nothing fail with ErrExtensionNotFound; a bare
// name matching more than one HDU fails with ErrExtensionLookup.
// Name matching is case-insensitive.
func (c *Container) HeaderFor(key ExtKey) (*fitsio.Header, error) {
	switch key.Kind {
	case KeyIndex:
		if key.Index < 0 || key.Index >= c.NumHDUs() {
			return nil, c.notFound(key)
		}
		return c.file.HDU(key.Index).Header(), nil

	case KeyName:
		var match fitsio.HDU
		for _, hdu := range c.file.HDUs() {
			if !nameMatches(hdu, key.Name) {
				continue
			}
			if match != nil {
				return nil, ErrExtensionLookup.
					WithMessage(fmt.Sprintf("%s: extension %s matches more than one HDU", c.filename, key)).
					WithDetail("name", key.Name)
			}
			match = hdu
		}
		if match == nil {
			return nil, c.notFound(key)
		}
		return match.Header(), nil

	case KeyNameVersion:
		for _, hdu := range c.file.HDUs() {
			if nameMatches(hdu, key.Name) && hdu.Version() == key.Version {
				return hdu.Header(), nil
			}
		}
		return nil, c.notFound(key)
	}

	return nil, ErrExtensionLookup.
		WithMessage(fmt.Sprintf("%s: unsupported lookup key %s", c.filename, key))
}

func (c *Container) notFound(key ExtKey) *HeaderError {
	return ErrExtensionNotFound.
		WithMessage(fmt.Sprintf("%s: extension #%s not found", c.filename, key)).
		WithDetail("key", key.String())
}

func nameMatches(hdu fitsio.HDU, name string) bool {
	return strings.EqualFold(strings.TrimSpace(hdu.Name()), name)
}
