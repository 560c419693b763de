package cartridge

import "github.com/pkg/errors"

// Effects lets a mapper persist battery-backed RAM without owning any
// host I/O itself; the host supplies an implementation at construction.
type Effects interface {
	SaveRAM(title string, ram []byte)
}

// NopEffects discards save-RAM notifications; used when no persistence
// collaborator is configured.
type NopEffects struct{}

func (NopEffects) SaveRAM(string, []byte) {}

// Mapper is the common operation set every cartridge mapper exposes.
// ROM writes drive the banking state machine; they never modify ROM.
type Mapper interface {
	ReadROM(address uint16) uint8
	WriteROM(address uint16, value uint8)
	ReadRAM(address uint16) uint8
	WriteRAM(address uint16, value uint8)
	GetRAMBank() uint8
	Header() *Header
	// Serialize/Deserialize support save states; see internal/savestate.
	Serialize() []byte
	Deserialize(data []byte) error
}

// New parses romData's header and constructs the mapper appropriate for
// its cartridge type code. ram, if non-nil, seeds the mapper's external
// RAM (restored from a battery-save blob).
func New(romData []byte, ram []byte, effects Effects) (Mapper, error) {
	header, err := ParseHeader(romData)
	if err != nil {
		return nil, errors.Wrap(err, "parsing cartridge header")
	}
	if effects == nil {
		effects = NopEffects{}
	}

	switch header.TypeCode {
	case TypeROMOnly:
		return newROMOnly(romData, header), nil
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBattery:
		return newMBC1(romData, ram, header, effects), nil
	case TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery, TypeMBC3, TypeMBC3RAM, TypeMBC3RAMBattery:
		return newMBC3(romData, ram, header, effects), nil
	case TypeMBC5, TypeMBC5RAM, TypeMBC5RAMBattery, TypeMBC5Rumble, TypeMBC5RumbleRAM, TypeMBC5RumbleRAMBattery:
		return newMBC5(romData, ram, header, effects), nil
	case TypeHuC1:
		return newHuC1(romData, ram, header, effects), nil
	default:
		return nil, errors.Errorf("unsupported cartridge type: %#x", header.TypeCode)
	}
}

func bankedRead(data []byte, bankSize int, address uint16, bank int, windowBase uint16) uint8 {
	offset := bank*bankSize + int(address-windowBase)
	if offset < 0 || offset >= len(data) {
		return 0xFF
	}
	return data[offset]
}

func bankedWrite(data []byte, bankSize int, address uint16, bank int, windowBase uint16, value uint8) {
	offset := bank*bankSize + int(address-windowBase)
	if offset < 0 || offset >= len(data) {
		return
	}
	data[offset] = value
}

// romOnly is the cartridge mapper for ROMs with no banking hardware.
type romOnly struct {
	rom    []byte
	header *Header
}

func newROMOnly(rom []byte, header *Header) *romOnly {
	return &romOnly{rom: rom, header: header}
}

func (m *romOnly) ReadROM(address uint16) uint8 {
	if int(address) >= len(m.rom) {
		return 0xFF
	}
	return m.rom[address]
}

func (m *romOnly) WriteROM(uint16, uint8)    {}
func (m *romOnly) ReadRAM(uint16) uint8      { return 0xFF }
func (m *romOnly) WriteRAM(uint16, uint8)    {}
func (m *romOnly) GetRAMBank() uint8         { return 0 }
func (m *romOnly) Header() *Header           { return m.header }
func (m *romOnly) Serialize() []byte         { return nil }
func (m *romOnly) Deserialize([]byte) error  { return nil }
