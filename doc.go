// Package base58 converts between binary data and Base58 text.
// It uses the alphabet popularized by Bitcoin and IPFS,
// which omits the easily confused characters 0, O, I, and l.
//
// Each leading zero byte of the input encodes as a leading '1' character,
// and vice versa,
// so the length of the original data survives a round trip.
package base58
