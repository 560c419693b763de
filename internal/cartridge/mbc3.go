package cartridge

// mbc3 implements the MBC3 mapper: 7-bit ROM banking and a register
// window at 0x4000-0x5FFF that selects either a RAM bank (0x00-0x03)
// or one of the RTC registers (0x08-0x0C).
type mbc3 struct {
	rom    []byte
	ram    []byte
	header *Header
	clock  *rtc

	ramRTCEnabled bool
	romBank       uint8
	ramBank       uint8 // 0x00-0x03 selects RAM bank; 0x08-0x0C selects an RTC register
	lastLatchByte uint8

	effects Effects
}

func newMBC3(rom []byte, ram []byte, header *Header, effects Effects) *mbc3 {
	ramSize := header.MaxRAMBanks * 0x2000
	if ram == nil {
		ram = make([]byte, ramSize)
	}
	return &mbc3{
		rom:     rom,
		ram:     ram,
		header:  header,
		clock:   newRTC(),
		romBank: 1,
		effects: effects,
	}
}

func (m *mbc3) ReadROM(address uint16) uint8 {
	if address <= 0x3FFF {
		return bankedRead(m.rom, 0x4000, address, 0, 0x0000)
	}
	return bankedRead(m.rom, 0x4000, address, int(m.romBank), 0x4000)
}

func (m *mbc3) WriteROM(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.ramRTCEnabled = value&0x0F == 0x0A
	case address <= 0x3FFF:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case address <= 0x5FFF:
		m.ramBank = value
	case address <= 0x7FFF:
		if m.lastLatchByte == 0 && value == 1 {
			m.clock.Latch()
		}
		m.lastLatchByte = value
	}
}

func (m *mbc3) selectingRTC() bool {
	return m.ramBank >= 0x08 && m.ramBank <= 0x0C
}

func (m *mbc3) ReadRAM(address uint16) uint8 {
	if !m.ramRTCEnabled {
		return 0xFF
	}
	if m.selectingRTC() {
		return m.clock.readSelected(m.ramBank)
	}
	return bankedRead(m.ram, 0x2000, address, int(m.ramBank&0x03), 0xA000)
}

func (m *mbc3) WriteRAM(address uint16, value uint8) {
	if !m.ramRTCEnabled {
		return
	}
	if m.selectingRTC() {
		m.clock.writeSelected(m.ramBank, value)
		return
	}
	bankedWrite(m.ram, 0x2000, address, int(m.ramBank&0x03), 0xA000, value)
	if m.header.HasBattery {
		m.effects.SaveRAM(m.header.Title, m.ram)
	}
}

func (m *mbc3) GetRAMBank() uint8 { return m.ramBank & 0x03 }
func (m *mbc3) Header() *Header  { return m.header }

// Advance moves the real-time clock forward, called by the bus on every
// tick, independent of CPU access to the RTC registers.
func (m *mbc3) Advance(tCycles int) {
	if m.header.HasRTC {
		m.clock.Advance(tCycles)
	}
}

func (m *mbc3) Serialize() []byte {
	buf := make([]byte, 3+len(m.ram))
	buf[0] = boolToByte(m.ramRTCEnabled)
	buf[1] = m.romBank
	buf[2] = m.ramBank
	copy(buf[3:], m.ram)
	return append(buf, m.clock.serialize()...)
}

func (m *mbc3) Deserialize(data []byte) error {
	if len(data) < 3+len(m.ram)+11 {
		return errShortMapperState
	}
	m.ramRTCEnabled = data[0] != 0
	m.romBank = data[1]
	m.ramBank = data[2]
	copy(m.ram, data[3:3+len(m.ram)])
	return m.clock.deserialize(data[3+len(m.ram):])
}
