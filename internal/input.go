// Package internal holds the plumbing around the base58 codec
// used by the base58 command.
package internal

import (
	"io"
	"os"

	"github.com/bobg/errors"
)

// ReadInput reads all of the named file into memory.
// An empty name, or "-", means read all of stdin instead.
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "reading standard input")
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	return data, errors.Wrapf(err, "reading %s", name)
}
