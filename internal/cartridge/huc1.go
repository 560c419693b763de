package cartridge

// huc1 implements the HuC1 mapper. Writing 0x0E to the low register
// window switches the external RAM range to the infrared transceiver:
// reads return the idle IR level and writes drive the transmitter.
type huc1 struct {
	rom    []byte
	ram    []byte
	header *Header

	irMode         bool
	irTransmitting bool
	romBank        uint8
	ramBank        uint8

	effects Effects
}

func newHuC1(rom []byte, ram []byte, header *Header, effects Effects) *huc1 {
	ramSize := header.MaxRAMBanks * 0x2000
	if ram == nil {
		ram = make([]byte, ramSize)
	}
	return &huc1{
		rom:     rom,
		ram:     ram,
		header:  header,
		romBank: 1,
		effects: effects,
	}
}

func (m *huc1) ReadROM(address uint16) uint8 {
	if address <= 0x3FFF {
		return bankedRead(m.rom, 0x4000, address, 0, 0x0000)
	}
	return bankedRead(m.rom, 0x4000, address, int(m.romBank), 0x4000)
}

func (m *huc1) WriteROM(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.irMode = value&0x0F == 0x0E
	case address <= 0x3FFF:
		bank := value & 0x3F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case address <= 0x5FFF:
		m.ramBank = value & 0x03
	}
}

func (m *huc1) ReadRAM(address uint16) uint8 {
	if m.irMode {
		return 0xC0
	}
	return bankedRead(m.ram, 0x2000, address, int(m.ramBank), 0xA000)
}

func (m *huc1) WriteRAM(address uint16, value uint8) {
	if m.irMode {
		m.irTransmitting = value&0x01 != 0
		return
	}
	bankedWrite(m.ram, 0x2000, address, int(m.ramBank), 0xA000, value)
	if m.header.HasBattery {
		m.effects.SaveRAM(m.header.Title, m.ram)
	}
}

func (m *huc1) GetRAMBank() uint8 { return m.ramBank }
func (m *huc1) Header() *Header  { return m.header }

func (m *huc1) Serialize() []byte {
	buf := make([]byte, 4+len(m.ram))
	buf[0] = boolToByte(m.irMode)
	buf[1] = boolToByte(m.irTransmitting)
	buf[2] = m.romBank
	buf[3] = m.ramBank
	copy(buf[4:], m.ram)
	return buf
}

func (m *huc1) Deserialize(data []byte) error {
	if len(data) < 4 {
		return errShortMapperState
	}
	m.irMode = data[0] != 0
	m.irTransmitting = data[1] != 0
	m.romBank = data[2]
	m.ramBank = data[3]
	copy(m.ram, data[4:])
	return nil
}
