package main

import (
	"bufio"
	"io"

	"github.com/bobg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bobg/base58"
	"github.com/bobg/base58/internal"
)

// runFilter reads all its input,
// encodes or decodes it according to opts,
// and writes the result to stdout.
// Nothing is written if decoding fails.
func runFilter(opts options, stdin io.Reader, stdout io.Writer, logger logrus.FieldLogger) error {
	input, err := internal.ReadInput(opts.file, stdin)
	if err != nil {
		return err
	}
	logger.WithField("bytes", len(input)).Debug("read input")

	var output []byte
	if opts.decode {
		text := input
		if opts.ignoreGarbage {
			text = internal.StripGarbage(text)
			logger.WithField("kept", len(text)).Debug("stripped garbage")
		}
		text = internal.Trim(text)

		output, err = base58.Decode(string(text))
		if err != nil {
			return errors.Wrap(err, "decoding")
		}
		logger.WithField("bytes", len(output)).Debug("decoded")
	} else {
		output = base58.AppendEncode(make([]byte, 0, base58.EncodedLen(len(input))), input)
		logger.WithField("chars", len(output)).Debug("encoded")
	}

	w := bufio.NewWriter(stdout)
	if err = internal.WriteWrapped(w, output, opts.wrap); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "writing output")
}
