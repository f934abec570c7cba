package fitshead

import (
	"fmt"
	"io"

	"github.com/CiceroLSNeto/fitshead/fitshead/logger"
)

// Process prints the headers of each file in turn, writing to w. A
// file that fails is logged and counted, and never aborts the rest of
// the batch. Returns the number of failed files.
func Process(filenames []string, spec string, jsonOut bool, w io.Writer) int {
	failed := 0
	for _, filename := range filenames {
		if err := processFile(filename, spec, jsonOut, w); err != nil {
			logger.Error("%v", err)
			failed++
		}
	}
	return failed
}

func processFile(filename, spec string, jsonOut bool, w io.Writer) error {
	c, err := Open(filename)
	if err != nil {
		return err
	}
	defer c.Close()

	keys, err := SelectKeys(spec, c.NumHDUs())
	if err != nil {
		return err
	}

	format := FormatText
	if jsonOut {
		format = FormatJSON
	}
	out, err := format(c, keys)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
