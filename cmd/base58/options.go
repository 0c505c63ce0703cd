package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const about = "Base58 encode or decode FILE, or standard input, to standard output."

type options struct {
	decode, ignoreGarbage, verbose bool
	wrap                           int
	file                           string
}

// usageError is a problem with the command line.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// parseArgs parses the command line (without the program name).
// Help text requested with -h or --help goes to helpOut,
// and the error is then pflag.ErrHelp.
func parseArgs(args []string, helpOut io.Writer) (opts options, err error) {
	fs := pflag.NewFlagSet("base58", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.BoolVarP(&opts.decode, "decode", "d", false, "decode data")
	fs.BoolVarP(&opts.ignoreGarbage, "ignore-garbage", "i", false, "when decoding, ignore non-alphanumeric characters")
	fs.IntVarP(&opts.wrap, "wrap", "w", 76, "wrap output lines after `COLS` characters; 0 disables line wrapping")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log what is happening to standard error")

	fs.Usage = func() {
		fmt.Fprintf(helpOut, "Usage: base58 [OPTION]... [FILE]\n%s\n\n", about)
		fmt.Fprintf(helpOut, "With no FILE, or when FILE is -, read standard input.\n\n")
		fmt.Fprint(helpOut, fs.FlagUsages())
	}

	if err = fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return opts, err
		}
		return opts, usageError{err: err}
	}

	if opts.wrap < 0 {
		return opts, usageError{err: fmt.Errorf("invalid wrap size: %d", opts.wrap)}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return opts, usageError{err: fmt.Errorf("extra operand %q", fs.Arg(1))}
	}

	return opts, nil
}
