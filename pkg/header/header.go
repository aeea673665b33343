// Package header reads the cartridge header of a Game Boy ROM image.
//
// The header occupies 0x100..0x14F of every image. Parse extracts its fields
// and translates the coded bytes (cartridge type, ROM size, RAM size) through
// static lookup tables. Codes missing from the tables render as "Unknown (0xNN)".
package header

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	offsetTitle          = 0x134
	offsetManufacturer   = 0x13F
	offsetCGB            = 0x143
	offsetNewLicensee    = 0x144
	offsetSGB            = 0x146
	offsetCartridgeType  = 0x147
	offsetROMSize        = 0x148
	offsetRAMSize        = 0x149
	offsetDestination    = 0x14A
	offsetOldLicensee    = 0x14B
	offsetVersion        = 0x14C
	offsetHeaderChecksum = 0x14D
	offsetGlobalChecksum = 0x14E

	// Size is the shortest image that holds a complete header.
	Size = 0x150
)

// ErrTruncated is returned when an image ends before the header does
var ErrTruncated = errors.New("image too short for cartridge header")

// Header holds the decoded cartridge header fields
type Header struct {
	Title            string        `json:"title"`
	ManufacturerCode string        `json:"manufacturer_code,omitempty"`
	CGB              CGBMode       `json:"cgb"`
	SGB              bool          `json:"sgb"`
	Licensee         string        `json:"licensee"`
	CartridgeType    CartridgeType `json:"cartridge_type"`
	ROMSize          ROMSize       `json:"rom_size"`
	RAMSize          RAMSize       `json:"ram_size"`
	Japanese         bool          `json:"japanese"`
	Version          uint8         `json:"version"`
	HeaderChecksum   uint8         `json:"header_checksum"`
	GlobalChecksum   uint16        `json:"global_checksum"`
	ChecksumValid    bool          `json:"checksum_valid"`
}

// Parse decodes the header from the start of a ROM image
func Parse(rom []byte) (*Header, error) {
	if len(rom) < Size {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, len(rom), Size)
	}

	h := &Header{
		SGB:            rom[offsetSGB] == sgbFlag,
		CartridgeType:  CartridgeType(rom[offsetCartridgeType]),
		ROMSize:        ROMSize(rom[offsetROMSize]),
		RAMSize:        RAMSize(rom[offsetRAMSize]),
		Japanese:       rom[offsetDestination] == 0x00,
		Version:        rom[offsetVersion],
		HeaderChecksum: rom[offsetHeaderChecksum],
		GlobalChecksum: uint16(rom[offsetGlobalChecksum])<<8 | uint16(rom[offsetGlobalChecksum+1]),
	}

	switch rom[offsetCGB] {
	case cgbSupportedFlag:
		h.CGB = CGBSupported
	case cgbOnlyFlag:
		h.CGB = CGBOnly
	}

	// CGB carts shortened the title to make room for a manufacturer code
	if h.CGB != CGBNone {
		h.Title = text(rom[offsetTitle:offsetManufacturer])
		h.ManufacturerCode = text(rom[offsetManufacturer:offsetCGB])
	} else {
		h.Title = text(rom[offsetTitle:offsetCGB])
	}

	if rom[offsetOldLicensee] == newLicenseeFlag {
		h.Licensee = text(rom[offsetNewLicensee:offsetSGB])
	} else {
		h.Licensee = fmt.Sprintf("%02X", rom[offsetOldLicensee])
	}

	h.ChecksumValid = ComputeHeaderChecksum(rom) == h.HeaderChecksum

	return h, nil
}

// Load reads and parses the header of the ROM image at path
func Load(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ROM: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses the header from the first Size bytes of r
func Read(r io.Reader) (*Header, error) {
	buf := make([]byte, Size)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncated, n, Size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM: %w", err)
	}

	return Parse(buf)
}

// ComputeHeaderChecksum computes the checksum the boot ROM verifies over
// 0x134..0x14C. The image must be at least Size bytes.
func ComputeHeaderChecksum(rom []byte) uint8 {
	var x uint8
	for _, b := range rom[offsetTitle:offsetHeaderChecksum] {
		x = x - b - 1
	}
	return x
}

// System names the hardware the cartridge targets
func (h *Header) System() string {
	system := "Game Boy"
	switch h.CGB {
	case CGBSupported:
		system += " / Game Boy Color"
	case CGBOnly:
		system = "Game Boy Color"
	}

	if h.SGB {
		system += " w/ Super Game Boy support"
	}
	return system
}

// Destination is "JP" or "Non-JP"
func (h *Header) Destination() string {
	if h.Japanese {
		return "JP"
	}
	return "Non-JP"
}

func text(b []byte) string {
	s := strings.TrimRight(string(b), "\x00 ")
	return strings.ToValidUTF8(s, "?")
}
