package internal

import "bytes"

// StripGarbage returns the ASCII letters and digits of b, in order.
// Everything else is dropped.
func StripGarbage(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			out = append(out, c)
		}
	}
	return out
}

// Trim removes leading and trailing white space from b.
func Trim(b []byte) []byte {
	return bytes.TrimSpace(b)
}
