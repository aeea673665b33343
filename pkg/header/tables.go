package header

import "fmt"

// CartridgeType is the memory bank controller and hardware byte at 0x147
type CartridgeType uint8

const (
	ROMOnly              CartridgeType = 0x00
	MBC1                 CartridgeType = 0x01
	MBC1RAM              CartridgeType = 0x02
	MBC1RAMBattery       CartridgeType = 0x03
	MBC2                 CartridgeType = 0x05
	MBC2Battery          CartridgeType = 0x06
	ROMRAM               CartridgeType = 0x08
	ROMRAMBattery        CartridgeType = 0x09
	MMM01                CartridgeType = 0x0B
	MMM01RAM             CartridgeType = 0x0C
	MMM01RAMBattery      CartridgeType = 0x0D
	MBC3TimerBattery     CartridgeType = 0x0F
	MBC3TimerRAMBattery  CartridgeType = 0x10
	MBC3                 CartridgeType = 0x11
	MBC3RAM              CartridgeType = 0x12
	MBC3RAMBattery       CartridgeType = 0x13
	MBC4                 CartridgeType = 0x15
	MBC4RAM              CartridgeType = 0x16
	MBC4RAMBattery       CartridgeType = 0x17
	MBC5                 CartridgeType = 0x19
	MBC5RAM              CartridgeType = 0x1A
	MBC5RAMBattery       CartridgeType = 0x1B
	MBC5Rumble           CartridgeType = 0x1C
	MBC5RumbleRAM        CartridgeType = 0x1D
	MBC5RumbleRAMBattery CartridgeType = 0x1E
	PocketCamera         CartridgeType = 0xFC
	BandaiTAMA5          CartridgeType = 0xFD
	HuC3                 CartridgeType = 0xFE
	HuC1RAMBattery       CartridgeType = 0xFF
)

var cartridgeTypeNames = map[CartridgeType]string{
	ROMOnly:              "ROM ONLY",
	MBC1:                 "MBC1",
	MBC1RAM:              "MBC1 + RAM",
	MBC1RAMBattery:       "MBC1 + RAM + BATTERY",
	MBC2:                 "MBC2",
	MBC2Battery:          "MBC2 + BATTERY",
	ROMRAM:               "ROM + RAM",
	ROMRAMBattery:        "ROM + RAM + BATTERY",
	MMM01:                "MMM01",
	MMM01RAM:             "MMM01 + RAM",
	MMM01RAMBattery:      "MMM01 + RAM + BATTERY",
	MBC3TimerBattery:     "MBC3 + TIMER + BATTERY",
	MBC3TimerRAMBattery:  "MBC3 + TIMER + RAM + BATTERY",
	MBC3:                 "MBC3",
	MBC3RAM:              "MBC3 + RAM",
	MBC3RAMBattery:       "MBC3 + RAM + BATTERY",
	MBC4:                 "MBC4",
	MBC4RAM:              "MBC4 + RAM",
	MBC4RAMBattery:       "MBC4 + RAM + BATTERY",
	MBC5:                 "MBC5",
	MBC5RAM:              "MBC5 + RAM",
	MBC5RAMBattery:       "MBC5 + RAM + BATTERY",
	MBC5Rumble:           "MBC5 + RUMBLE",
	MBC5RumbleRAM:        "MBC5 + RUMBLE + RAM",
	MBC5RumbleRAMBattery: "MBC5 + RUMBLE + RAM + BATTERY",
	PocketCamera:         "POCKET CAMERA",
	BandaiTAMA5:          "BANDAI TAMA5",
	HuC3:                 "HuC3",
	HuC1RAMBattery:       "HuC1 + RAM + BATTERY",
}

func (t CartridgeType) String() string {
	if name, ok := cartridgeTypeNames[t]; ok {
		return name
	}
	return unknown(uint8(t))
}

// MarshalText renders the type by name
func (t CartridgeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ROMSize is the ROM size code at 0x148
type ROMSize uint8

var romSizeNames = map[ROMSize]string{
	0x00: "32 KiB - 2 banks, no switching",
	0x01: "64 KiB - 4 banks",
	0x02: "128 KiB - 8 banks",
	0x03: "256 KiB - 16 banks",
	0x04: "512 KiB - 32 banks",
	0x05: "1 MiB - 64 banks",
	0x06: "2 MiB - 128 banks",
	0x07: "4 MiB - 256 banks",
	0x52: "1.1 MiB - 72 banks",
	0x53: "1.2 MiB - 80 banks",
	0x54: "1.5 MiB - 96 banks",
}

func (s ROMSize) String() string {
	if name, ok := romSizeNames[s]; ok {
		return name
	}
	return unknown(uint8(s))
}

// MarshalText renders the size by name
func (s ROMSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RAMSize is the external RAM size code at 0x149
type RAMSize uint8

var ramSizeNames = map[RAMSize]string{
	0x00: "No Cartridge RAM",
	0x01: "2 KiB",
	0x02: "8 KiB",
	0x03: "32 KiB",
}

func (s RAMSize) String() string {
	if name, ok := ramSizeNames[s]; ok {
		return name
	}
	return unknown(uint8(s))
}

// MarshalText renders the size by name
func (s RAMSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CGBMode is the Game Boy Color compatibility flag at 0x143
type CGBMode uint8

const (
	CGBNone CGBMode = iota
	CGBSupported
	CGBOnly
)

const (
	cgbSupportedFlag = 0x80
	cgbOnlyFlag      = 0xC0
	sgbFlag          = 0x03
	newLicenseeFlag  = 0x33
)

func (m CGBMode) String() string {
	switch m {
	case CGBSupported:
		return "supported"
	case CGBOnly:
		return "only"
	default:
		return "none"
	}
}

// MarshalText renders the mode by name
func (m CGBMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func unknown(code uint8) string {
	return fmt.Sprintf("Unknown (0x%02X)", code)
}
