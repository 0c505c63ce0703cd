package base58

import (
	"math"
	"math/big"
)

var (
	bigRadix = big.NewInt(int64(radix))
	zero     = new(big.Int)
)

// Encode produces the Base58 encoding of src.
// The result is empty only when src is.
func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// AppendEncode appends the Base58 encoding of src to dst
// and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	var zeroes int
	for zeroes < len(src) && src[zeroes] == 0 {
		zeroes++
	}
	for i := 0; i < zeroes; i++ {
		dst = append(dst, ZeroDigit)
	}

	var (
		accum  = new(big.Int).SetBytes(src[zeroes:])
		r      = new(big.Int)
		digits = make([]byte, 0, EncodedLen(len(src)-zeroes))
	)

	// Digits come out least-significant first.
	for accum.Cmp(zero) > 0 {
		accum.QuoRem(accum, bigRadix, r)
		digits = append(digits, Alphabet[r.Int64()])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		dst = append(dst, digits[i])
	}
	return dst
}

// Decode produces the bytes represented by the Base58 string s.
// An empty s decodes to an empty, non-nil slice.
// If s contains a character outside Alphabet,
// the error is an *InvalidCharacterError for the first such character.
func Decode(s string) ([]byte, error) {
	return AppendDecode(make([]byte, 0, len(s)), s)
}

// AppendDecode appends the bytes represented by the Base58 string src to dst
// and returns the extended buffer.
// On error dst is returned unchanged.
func AppendDecode(dst []byte, src string) ([]byte, error) {
	var zeroes int
	for zeroes < len(src) && src[zeroes] == ZeroDigit {
		zeroes++
	}

	var (
		accum = new(big.Int)
		digit = new(big.Int)
	)
	for i := zeroes; i < len(src); i++ {
		val := digitVals[src[i]]
		if val < 0 {
			return dst, &InvalidCharacterError{Char: src[i], Offset: i}
		}
		accum.Mul(accum, bigRadix)
		if val != 0 {
			accum.Add(accum, digit.SetInt64(val))
		}
	}

	for i := 0; i < zeroes; i++ {
		dst = append(dst, 0)
	}
	return append(dst, accum.Bytes()...), nil
}

// EncodedLen gives the maximum length of the Base58 encoding of n bytes.
func EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	ratio := math.Log(256) / math.Log(float64(radix))
	return int(math.Ceil(float64(n) * ratio))
}
