package internal

import (
	"io"

	"github.com/bobg/errors"
)

// WriteWrapped writes data to w in lines of cols bytes,
// each followed by a newline.
// The last line may be shorter.
// If cols is 0,
// data is written as-is with no line breaks at all.
func WriteWrapped(w io.Writer, data []byte, cols int) error {
	if cols <= 0 {
		_, err := w.Write(data)
		return errors.Wrap(err, "writing output")
	}

	for len(data) > 0 {
		n := cols
		if n > len(data) {
			n = len(data)
		}
		if _, err := w.Write(data[:n]); err != nil {
			return errors.Wrap(err, "writing output")
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(err, "writing output")
		}
		data = data[n:]
	}
	return nil
}
