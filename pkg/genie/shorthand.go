package genie

import (
	"fmt"
	"strings"
)

const (
	addressDigits = 4
	byteDigits    = 2
)

// Request holds the hexadecimal text fields of a code to encode
type Request struct {
	Address string `json:"address"`
	Value   string `json:"value"`
	Compare string `json:"compare,omitempty"`
}

// ParseShorthand splits ADDR:VAL or ADDR?CHECK:VAL into its fields. The ':'
// separates the value, the '?' separates an optional compare byte from the address.
func ParseShorthand(text string) (Request, error) {
	rest, value, found := strings.Cut(strings.TrimSpace(text), ":")
	if !found || strings.TrimSpace(value) == "" {
		return Request{}, fmt.Errorf("%w: specify ADDR:VAL or ADDR?CHECK:VAL, got %q", ErrMissingValue, text)
	}

	address, compare, hasCompare := strings.Cut(rest, "?")
	req := Request{
		Address: strings.TrimSpace(address),
		Value:   strings.TrimSpace(value),
		Compare: strings.TrimSpace(compare),
	}

	if req.Address == "" {
		return Request{}, fmt.Errorf("%w: specify ADDR:VAL or ADDR?CHECK:VAL, got %q", ErrMissingAddress, text)
	}
	if hasCompare && req.Compare == "" {
		return Request{}, fmt.Errorf("%w: compare byte after '?' is empty in %q", ErrMissingValue, text)
	}

	return req, nil
}

// String renders the request back into shorthand form
func (r Request) String() string {
	if r.Compare != "" {
		return r.Address + "?" + r.Compare + ":" + r.Value
	}
	return r.Address + ":" + r.Value
}

// Patch parses the fields into a patch
func (r Request) Patch() (Patch, error) {
	if r.Address == "" {
		return Patch{}, ErrMissingAddress
	}
	if r.Value == "" {
		return Patch{}, ErrMissingValue
	}

	addr, err := parseField("address", r.Address, addressDigits)
	if err != nil {
		return Patch{}, err
	}
	val, err := parseField("value", r.Value, byteDigits)
	if err != nil {
		return Patch{}, err
	}

	p := NewPatch(addr, uint8(val))
	if r.Compare != "" {
		cmp, err := parseField("compare", r.Compare, byteDigits)
		if err != nil {
			return Patch{}, err
		}
		p = p.WithCompare(uint8(cmp))
	}

	return p, nil
}

// parseField reads exactly width hexadecimal digits.
func parseField(name, s string, width int) (uint16, error) {
	if len(s) != width {
		return 0, fmt.Errorf("%w: %s %q must be %d hex digits", ErrInvalidLength, name, s, width)
	}

	var v uint16
	for i := 0; i < len(s); i++ {
		n, ok := nibble(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s %q", ErrInvalidCharacters, name, s)
		}
		v = v<<4 | uint16(n)
	}
	return v, nil
}
