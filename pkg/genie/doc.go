// Package genie encodes and decodes Game Boy Game Genie codes.
//
// A Game Genie code describes a single-byte memory patch: a replacement value,
// a 16-bit address fragment and, optionally, a compare byte that gates the patch
// ("only apply if the current byte equals X").
//
// # Code Format
//
// Codes are 6 or 9 hexadecimal digits, usually typed with hyphens:
//
//	ABC-DEF        value + address
//	ABC-DEF-GHI    value + address + compare byte
//
// Digits (0-indexed, after removing hyphens):
//   - 0..1: the replacement value, verbatim
//   - 2..4: address nibbles 1..3, verbatim
//   - 5: address nibble 0, bit-inverted within the nibble
//   - 6: compare bits GGgg, XORed with 0b1110
//   - 7: integrity digit, always digit 6 XOR 0b1000
//   - 8: compare bits HHhh, XORed with 0b1010
//
// The compare byte is reassembled as hh GG gg HH (two bits each, high to low).
//
// The address is the raw transposed field. No base offset is added.
//
// # Usage
//
//	c := genie.NewCodec()
//
//	patch, err := c.Decode("FF0-DE3-082")
//	if err != nil {
//	    return err
//	}
//
//	code := c.Encode(patch) // "FF0-DE3-082"
//
//	code, err = c.EncodeShorthand("C0DE?3A:FF")
//
// # Error Handling
//
// Failures wrap one of the sentinel errors (ErrInvalidLength,
// ErrInvalidCharacters, ErrIntegrityCheckFailed, ErrMissingValue,
// ErrMissingAddress); test for them with errors.Is. A code that fails the
// integrity check never yields a compare byte.
//
// # Thread Safety
//
// Codec holds no state and Patch is a plain value; both are safe for
// concurrent use.
package genie
