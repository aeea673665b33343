package genie

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// ShortLength is the digit count of a code without a compare byte.
	ShortLength = 6
	// LongLength is the digit count of a code with a compare byte.
	LongLength = 9

	integrityMask = 0b1000
	sevenMask     = 0b1110
	nineMask      = 0b1010

	hexDigits = "0123456789ABCDEF"
)

// nibble returns the 4-bit value of a single hexadecimal digit.
func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Normalize removes hyphens from a code, checks that 6 or 9 hexadecimal digits
// remain and returns them uppercased.
func Normalize(text string) (string, error) {
	digits := strings.ReplaceAll(text, "-", "")

	if n := utf8.RuneCountInString(digits); n != ShortLength && n != LongLength {
		return "", fmt.Errorf("%w: %q has %d digits, want %d or %d",
			ErrInvalidLength, text, n, ShortLength, LongLength)
	}

	for i := 0; i < len(digits); i++ {
		if _, ok := nibble(digits[i]); !ok {
			r, _ := utf8.DecodeRuneInString(digits[i:])
			return "", fmt.Errorf("%w: %q in %q", ErrInvalidCharacters, r, text)
		}
	}

	return strings.ToUpper(digits), nil
}

// nibbles converts an already validated digit string to 4-bit values.
func nibbles(digits string) []uint8 {
	out := make([]uint8, len(digits))
	for i := 0; i < len(digits); i++ {
		out[i], _ = nibble(digits[i])
	}
	return out
}

// decodeAddress assembles the address from code digits 2..5. Digit 5 is
// inverted and becomes the most significant nibble.
func decodeAddress(d []uint8) uint16 {
	return uint16(^d[5]&0xF)<<12 | uint16(d[2])<<8 | uint16(d[3])<<4 | uint16(d[4])
}

// encodeAddress is the inverse of decodeAddress and returns code digits 2..5.
func encodeAddress(addr uint16) [4]uint8 {
	return [4]uint8{
		uint8(addr>>8) & 0xF,
		uint8(addr>>4) & 0xF,
		uint8(addr) & 0xF,
		^uint8(addr>>12) & 0xF,
	}
}

// integrityOK reports whether digit 7 equals digit 8 with its top bit flipped.
func integrityOK(seven, eight uint8) bool {
	return seven == eight^integrityMask
}

// decodeCompare rebuilds the compare byte from digits 7 (GGgg) and 9 (HHhh).
func decodeCompare(seven, nine uint8) uint8 {
	GGgg := (seven ^ sevenMask) & 0xF
	HHhh := (nine ^ nineMask) & 0xF

	GG := (GGgg >> 2) & 0b11
	gg := GGgg & 0b11
	HH := (HHhh >> 2) & 0b11
	hh := HHhh & 0b11

	return hh<<6 | GG<<4 | gg<<2 | HH
}

// encodeCompare splits a compare byte into code digits 7, 8 and 9. The middle
// digit is the integrity digit.
func encodeCompare(verify uint8) (seven, eight, nine uint8) {
	hh := ((verify ^ 0x80) & 0xC0) >> 6
	GG := ((verify ^ 0x30) & 0x30) >> 4
	gg := ((verify ^ 0x08) & 0x0C) >> 2
	HH := (verify ^ 0x02) & 0x03

	seven = GG<<2 | gg
	eight = seven ^ integrityMask
	nine = HH<<2 | hh
	return seven, eight, nine
}

// format renders digits as uppercase hex with a hyphen after every third digit.
func format(d []uint8) string {
	var b strings.Builder
	b.Grow(len(d) + len(d)/3)
	for i, n := range d {
		if i > 0 && i%3 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(hexDigits[n&0xF])
	}
	return b.String()
}
