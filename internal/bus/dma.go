package bus

// dma is the OAM DMA engine: 160 bytes copied from source to OAM, one
// byte per M-cycle, after a two-cycle startup delay.
type dma struct {
	source     uint16
	offset     uint8
	delay      uint8
	inProgress bool
}

const dmaTransferBytes = 160

// Start begins a transfer from source<<8. A write while a transfer is
// already running retargets the source but keeps the current offset and
// delay.
func (d *dma) Start(source uint8) {
	d.source = uint16(source) << 8

	if !d.inProgress {
		d.offset = 0
		d.delay = 2
		d.inProgress = true
	}
}

// Source returns the high byte last written to the DMA register.
func (d *dma) Source() uint8 { return uint8(d.source >> 8) }

// step advances the transfer by one M-cycle, copying a byte through the
// owning bus when the startup delay has elapsed.
func (d *dma) step(b *Bus) {
	if !d.inProgress {
		return
	}
	if d.delay > 0 {
		d.delay--
		return
	}

	value := b.readForDMA(d.source + uint16(d.offset))
	b.ppu.SetOAMByte(d.offset, value)

	d.offset++
	if d.offset == dmaTransferBytes {
		d.inProgress = false
	}
}
