// Command base58 encodes or decodes Base58 data,
// in the manner of base64(1).
//
// Usage:
//
//	base58 [-d [-i]] [-w COLS] [-v] [FILE]
//
// It reads FILE,
// or standard input if FILE is absent or "-",
// and writes the result to standard output.
//
// With -d (--decode),
// the input is Base58 text to be decoded.
// Leading and trailing white space is ignored,
// but any other character outside the Base58 alphabet is an error.
// With -i (--ignore-garbage) as well,
// every character that is not an ASCII letter or digit is dropped before decoding.
//
// Output is broken into lines of COLS characters
// (76 by default, in both directions),
// each ending with a newline.
// With -w 0 the output is written as a single unbroken string with no trailing newline.
//
// Exit status is 0 on success,
// 1 if the input cannot be read or decoded,
// and 2 for a bad command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bobg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/bobg/base58"
)

const (
	errorStatus = 1
	usageStatus = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdout)
	if err != nil {
		return exitStatus(stderr, err)
	}
	err = runFilter(opts, stdin, stdout, newLogger(stderr, opts.verbose))
	return exitStatus(stderr, err)
}

func newLogger(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// exitStatus reports err, if any, to stderr
// and gives the process exit status that goes with it.
func exitStatus(stderr io.Writer, err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return 0
	}

	var (
		uerr usageError
		cerr *base58.InvalidCharacterError
	)
	switch {
	case errors.As(err, &uerr):
		fmt.Fprintf(stderr, "Error: %s\nTry 'base58 --help' for more information.\n", uerr)
		return usageStatus

	case errors.As(err, &cerr):
		fmt.Fprintf(stderr, "Error decoding base58: %s\n", cerr)
		return errorStatus

	default:
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return errorStatus
	}
}
