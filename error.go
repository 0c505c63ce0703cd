package base58

import (
	"fmt"
	"unicode/utf8"

	"github.com/bobg/errors"
)

// ErrInvalid is wrapped by every error that Decode returns.
var ErrInvalid = errors.New("invalid base58 input")

// InvalidCharacterError reports a character in Decode's input that is not in Alphabet.
type InvalidCharacterError struct {
	Char byte

	// Offset is the zero-based byte position of Char in the input.
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	if e.Char < utf8.RuneSelf {
		return fmt.Sprintf("invalid character %q at offset %d", rune(e.Char), e.Offset)
	}
	return fmt.Sprintf("invalid byte 0x%02x at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalid
}
