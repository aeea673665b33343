package genie

import (
	"fmt"
)

// Patch is a decoded Game Genie code
type Patch struct {
	Value      uint8  // Byte written at Address
	Address    uint16 // Raw transposed address field, no base offset
	Compare    uint8  // Only meaningful when HasCompare is set
	HasCompare bool   // Patch applies only if the current byte equals Compare
}

// NewPatch creates a patch without a compare byte
func NewPatch(address uint16, value uint8) Patch {
	return Patch{Value: value, Address: address}
}

// WithCompare returns a copy of p gated on the given compare byte
func (p Patch) WithCompare(compare uint8) Patch {
	p.Compare = compare
	p.HasCompare = true
	return p
}

// Digits returns the number of digits the encoded code has
func (p Patch) Digits() int {
	if p.HasCompare {
		return LongLength
	}
	return ShortLength
}

// String describes the patch in plain words
func (p Patch) String() string {
	s := fmt.Sprintf("will set %04X to always be 0x%02X", p.Address, p.Value)
	if p.HasCompare {
		s += fmt.Sprintf(" if the original byte is 0x%02X", p.Compare)
	}
	return s
}

// Codec converts between code text and patches
type Codec struct{}

// NewCodec creates a new codec instance
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses a 6 or 9 digit code, hyphens optional
func (c *Codec) Decode(text string) (Patch, error) {
	digits, err := Normalize(text)
	if err != nil {
		return Patch{}, err
	}

	d := nibbles(digits)
	p := Patch{
		Value:   d[0]<<4 | d[1],
		Address: decodeAddress(d),
	}

	if len(d) == LongLength {
		if !integrityOK(d[6], d[7]) {
			return Patch{}, fmt.Errorf("%w: %q digit 7 (%X) must be digit 8 (%X) XOR %X",
				ErrIntegrityCheckFailed, text, d[6], d[7], integrityMask)
		}
		p = p.WithCompare(decodeCompare(d[6], d[8]))
	}

	return p, nil
}

// Encode renders a patch as XXX-XXX or XXX-XXX-XXX
func (c *Codec) Encode(p Patch) string {
	d := make([]uint8, 0, LongLength)
	d = append(d, p.Value>>4, p.Value&0xF)

	addr := encodeAddress(p.Address)
	d = append(d, addr[:]...)

	if p.HasCompare {
		seven, eight, nine := encodeCompare(p.Compare)
		d = append(d, seven, eight, nine)
	}

	return format(d)
}

// EncodeFields encodes a code from hexadecimal text fields. An empty compare
// produces a 6 digit code.
func (c *Codec) EncodeFields(address, value, compare string) (string, error) {
	p, err := Request{Address: address, Value: value, Compare: compare}.Patch()
	if err != nil {
		return "", err
	}
	return c.Encode(p), nil
}

// EncodeShorthand encodes ADDR:VAL or ADDR?CHECK:VAL
func (c *Codec) EncodeShorthand(text string) (string, error) {
	req, err := ParseShorthand(text)
	if err != nil {
		return "", err
	}
	p, err := req.Patch()
	if err != nil {
		return "", err
	}
	return c.Encode(p), nil
}
