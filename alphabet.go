package base58

// Alphabet gives the 58 digits in order of value.
// It uses 1-9, then upper-case A-Z without I and O, then lower-case a-z without l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ZeroDigit is the digit with value zero.
// A leading run of it stands for the same number of leading zero bytes.
const ZeroDigit byte = '1'

const radix = len(Alphabet)

var digitVals [256]int64

func init() {
	for i := 0; i < 256; i++ {
		digitVals[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digitVals[Alphabet[i]] = int64(i)
	}
}

// IsDigit tells whether c is one of the characters in Alphabet.
func IsDigit(c byte) bool {
	return digitVals[c] >= 0
}
