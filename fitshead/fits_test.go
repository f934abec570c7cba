package fitshead

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Helpers to synthesize minimal FITS files: 80-byte cards grouped into
// space-padded 2880-byte header blocks, no data blocks.

func fitsBlock(cards ...string) []byte {
	var b bytes.Buffer
	for _, card := range cards {
		fmt.Fprintf(&b, "%-80s", card)
	}
	for b.Len()%2880 != 0 {
		b.WriteByte(' ')
	}
	return b.Bytes()
}

func primaryBlock() []byte {
	return fitsBlock(
		"SIMPLE  =                    T / conforms to FITS standard",
		"BITPIX  =                    8",
		"NAXIS   =                    0",
		"EXTEND  =                    T",
		"END",
	)
}

func imageExtBlock(extname string, extver int) []byte {
	return fitsBlock(
		"XTENSION= 'IMAGE   '",
		"BITPIX  =                    8",
		"NAXIS   =                    0",
		"PCOUNT  =                    0",
		"GCOUNT  =                    0",
		fmt.Sprintf("EXTNAME = '%-8s'", extname),
		fmt.Sprintf("EXTVER  = %20d", extver),
		"END",
	)
}

func writeTestFile(t *testing.T, name string, blocks ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	var data []byte
	for _, b := range blocks {
		data = append(data, b...)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// openTestFile builds a FITS file out of blocks and opens it, closing
// the container when the test ends.
func openTestFile(t *testing.T, name string, blocks ...[]byte) *Container {
	t.Helper()
	path := writeTestFile(t, name, blocks...)
	c, err := Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", name, err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}
