// Package cartridge implements ROM header parsing and the per-type
// memory bank controller (mapper) state machines: ROM-only, MBC1,
// MBC3 with its real-time clock, MBC5 with rumble, and HuC1.
package cartridge

import (
	"strings"

	"github.com/pkg/errors"
)

// Cartridge type codes, read from ROM offset 0x0147.
const (
	TypeROMOnly              = 0x00
	TypeMBC1                 = 0x01
	TypeMBC1RAM              = 0x02
	TypeMBC1RAMBattery       = 0x03
	TypeMBC3TimerBattery     = 0x0F
	TypeMBC3TimerRAMBattery  = 0x10
	TypeMBC3                 = 0x11
	TypeMBC3RAM              = 0x12
	TypeMBC3RAMBattery       = 0x13
	TypeMBC5                 = 0x19
	TypeMBC5RAM              = 0x1A
	TypeMBC5RAMBattery       = 0x1B
	TypeMBC5Rumble           = 0x1C
	TypeMBC5RumbleRAM        = 0x1D
	TypeMBC5RumbleRAMBattery = 0x1E
	TypeHuC1                = 0xFF
)

const (
	headerTitleStart  = 0x0134
	headerTitleEnd    = 0x0143
	headerCGBFlag     = 0x0143
	headerSGBFlag     = 0x0146
	headerTypeCode    = 0x0147
	headerROMSize     = 0x0148
	headerRAMSize     = 0x0149
	headerChecksum    = 0x014D
	headerGlobalCksum = 0x014E
	headerMinLength   = 0x0150
)

// Header holds the parsed fields of a cartridge ROM header.
type Header struct {
	Title          string
	TypeCode       uint8
	ROMSizeCode    uint8
	RAMSizeCode    uint8
	MaxROMBanks    int
	MaxRAMBanks    int
	CGBFlag        uint8
	SGBFlag        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
	HasBattery     bool
	HasRTC         bool
	HasRumble      bool
}

var ramBankCountBySizeCode = [6]int{0, 0, 1, 4, 16, 8}

func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerMinLength {
		return nil, errors.Errorf("rom too small to contain a header: %d bytes", len(rom))
	}

	h := &Header{
		Title:          cleanTitle(rom[headerTitleStart : headerTitleEnd+1]),
		TypeCode:       rom[headerTypeCode],
		ROMSizeCode:    rom[headerROMSize],
		RAMSizeCode:    rom[headerRAMSize],
		CGBFlag:        rom[headerCGBFlag],
		SGBFlag:        rom[headerSGBFlag],
		HeaderChecksum: rom[headerChecksum],
		GlobalChecksum: uint16(rom[headerGlobalCksum])<<8 | uint16(rom[headerGlobalCksum+1]),
	}

	h.MaxROMBanks = 2 << h.ROMSizeCode

	if int(h.RAMSizeCode) >= len(ramBankCountBySizeCode) {
		return nil, errors.Errorf("invalid ram size code: %#x", h.RAMSizeCode)
	}
	h.MaxRAMBanks = ramBankCountBySizeCode[h.RAMSizeCode]

	switch h.TypeCode {
	case TypeMBC1RAMBattery, TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery, TypeMBC3RAMBattery,
		TypeMBC5RAMBattery, TypeMBC5RumbleRAMBattery:
		h.HasBattery = true
	}

	switch h.TypeCode {
	case TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery:
		h.HasRTC = true
	}

	switch h.TypeCode {
	case TypeMBC5Rumble, TypeMBC5RumbleRAM, TypeMBC5RumbleRAMBattery:
		h.HasRumble = true
	}

	return h, nil
}

// IsCGB reports whether the cartridge declares CGB support or exclusivity.
func (h *Header) IsCGB() bool {
	return h.CGBFlag == 0x80 || h.CGBFlag == 0xC0
}

// IsCGBOnly reports whether the cartridge refuses to run on DMG hardware.
func (h *Header) IsCGBOnly() bool {
	return h.CGBFlag == 0xC0
}

func cleanTitle(raw []byte) string {
	b := make([]byte, 0, len(raw))
	for _, c := range raw {
		switch {
		case c == 0:
			continue
		case c >= 0x20 && c < 0x7F:
			b = append(b, c)
		default:
			b = append(b, '?')
		}
	}
	return strings.TrimRight(string(b), " ")
}
