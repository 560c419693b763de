// Code generated for the SM83 primary opcode table. Each function
// implements one opcode, ticking the bus directly for every memory
// access or internal cycle, and returns the instruction's total
// T-cycle count (including the opcode fetch already ticked by the
// caller).
package cpu

// NOP
func opcode0x00(c *CPU) int {
	return 4
}

// LD BC,nn
func opcode0x01(c *CPU) int {
	c.setBC(c.readImmediateWord())
	return 12
}

// LD DE,nn
func opcode0x11(c *CPU) int {
	c.setDE(c.readImmediateWord())
	return 12
}

// LD HL,nn
func opcode0x21(c *CPU) int {
	c.setHL(c.readImmediateWord())
	return 12
}

// LD SP,nn
func opcode0x31(c *CPU) int {
	c.sp = c.readImmediateWord()
	return 12
}

// LD (BC),A
func opcode0x02(c *CPU) int {
	c.write(c.getBC(), c.a)
	return 8
}

// LD (DE),A
func opcode0x12(c *CPU) int {
	c.write(c.getDE(), c.a)
	return 8
}

// LD (HL+),A
func opcode0x22(c *CPU) int {
	hl := c.getHL()
	c.write(hl, c.a)
	c.setHL(hl + 1)
	return 8
}

// LD (HL-),A
func opcode0x32(c *CPU) int {
	hl := c.getHL()
	c.write(hl, c.a)
	c.setHL(hl - 1)
	return 8
}

// INC BC
func opcode0x03(c *CPU) int {
	c.setBC(c.getBC() + 1)
	c.tickInternal()
	return 8
}

// INC DE
func opcode0x13(c *CPU) int {
	c.setDE(c.getDE() + 1)
	c.tickInternal()
	return 8
}

// INC HL
func opcode0x23(c *CPU) int {
	c.setHL(c.getHL() + 1)
	c.tickInternal()
	return 8
}

// INC SP
func opcode0x33(c *CPU) int {
	c.sp++
	c.tickInternal()
	return 8
}

// DEC BC
func opcode0x0B(c *CPU) int {
	c.setBC(c.getBC() - 1)
	c.tickInternal()
	return 8
}

// DEC DE
func opcode0x1B(c *CPU) int {
	c.setDE(c.getDE() - 1)
	c.tickInternal()
	return 8
}

// DEC HL
func opcode0x2B(c *CPU) int {
	c.setHL(c.getHL() - 1)
	c.tickInternal()
	return 8
}

// DEC SP
func opcode0x3B(c *CPU) int {
	c.sp--
	c.tickInternal()
	return 8
}

// ADD HL,BC
func opcode0x09(c *CPU) int {
	c.addToHL(c.getBC())
	c.tickInternal()
	return 8
}

// ADD HL,DE
func opcode0x19(c *CPU) int {
	c.addToHL(c.getDE())
	c.tickInternal()
	return 8
}

// ADD HL,HL
func opcode0x29(c *CPU) int {
	c.addToHL(c.getHL())
	c.tickInternal()
	return 8
}

// ADD HL,SP
func opcode0x39(c *CPU) int {
	c.addToHL(c.sp)
	c.tickInternal()
	return 8
}

// INC B
func opcode0x04(c *CPU) int {
	c.inc(&c.b)
	return 4
}

// DEC B
func opcode0x05(c *CPU) int {
	c.dec(&c.b)
	return 4
}

// INC C
func opcode0x0C(c *CPU) int {
	c.inc(&c.cReg)
	return 4
}

// DEC C
func opcode0x0D(c *CPU) int {
	c.dec(&c.cReg)
	return 4
}

// INC D
func opcode0x14(c *CPU) int {
	c.inc(&c.d)
	return 4
}

// DEC D
func opcode0x15(c *CPU) int {
	c.dec(&c.d)
	return 4
}

// INC E
func opcode0x1C(c *CPU) int {
	c.inc(&c.e)
	return 4
}

// DEC E
func opcode0x1D(c *CPU) int {
	c.dec(&c.e)
	return 4
}

// INC H
func opcode0x24(c *CPU) int {
	c.inc(&c.h)
	return 4
}

// DEC H
func opcode0x25(c *CPU) int {
	c.dec(&c.h)
	return 4
}

// INC L
func opcode0x2C(c *CPU) int {
	c.inc(&c.l)
	return 4
}

// DEC L
func opcode0x2D(c *CPU) int {
	c.dec(&c.l)
	return 4
}

// INC (HL)
func opcode0x34(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	c.inc(&v)
	c.write(hl, v)
	return 12
}

// DEC (HL)
func opcode0x35(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	c.dec(&v)
	c.write(hl, v)
	return 12
}

// INC A
func opcode0x3C(c *CPU) int {
	c.inc(&c.a)
	return 4
}

// DEC A
func opcode0x3D(c *CPU) int {
	c.dec(&c.a)
	return 4
}

// LD B,n
func opcode0x06(c *CPU) int {
	c.b = c.readImmediate()
	return 8
}

// LD C,n
func opcode0x0E(c *CPU) int {
	c.cReg = c.readImmediate()
	return 8
}

// LD D,n
func opcode0x16(c *CPU) int {
	c.d = c.readImmediate()
	return 8
}

// LD E,n
func opcode0x1E(c *CPU) int {
	c.e = c.readImmediate()
	return 8
}

// LD H,n
func opcode0x26(c *CPU) int {
	c.h = c.readImmediate()
	return 8
}

// LD L,n
func opcode0x2E(c *CPU) int {
	c.l = c.readImmediate()
	return 8
}

// LD (HL),n
func opcode0x36(c *CPU) int {
	hl := c.getHL()
	n := c.readImmediate()
	c.write(hl, n)
	return 12
}

// LD A,n
func opcode0x3E(c *CPU) int {
	c.a = c.readImmediate()
	return 8
}

// RLCA
func opcode0x07(c *CPU) int {
	c.a = c.rlc(c.a, true)
	return 4
}

// RRCA
func opcode0x0F(c *CPU) int {
	c.a = c.rrc(c.a, true)
	return 4
}

// RLA
func opcode0x17(c *CPU) int {
	c.a = c.rl(c.a, true)
	return 4
}

// RRA
func opcode0x1F(c *CPU) int {
	c.a = c.rr(c.a, true)
	return 4
}

// DAA
func opcode0x27(c *CPU) int {
	c.daa()
	return 4
}

// CPL
func opcode0x2F(c *CPU) int {
	c.cpl()
	return 4
}

// SCF
func opcode0x37(c *CPU) int {
	c.scf()
	return 4
}

// CCF
func opcode0x3F(c *CPU) int {
	c.ccf()
	return 4
}

// LD (nn),SP
func opcode0x08(c *CPU) int {
	addr := c.readImmediateWord()
	c.write(addr, low(c.sp))
	c.write(addr+1, high(c.sp))
	return 20
}

// LD A,(BC)
func opcode0x0A(c *CPU) int {
	c.a = c.read(c.getBC())
	return 8
}

// LD A,(DE)
func opcode0x1A(c *CPU) int {
	c.a = c.read(c.getDE())
	return 8
}

// LD A,(HL+)
func opcode0x2A(c *CPU) int {
	hl := c.getHL()
	c.a = c.read(hl)
	c.setHL(hl + 1)
	return 8
}

// LD A,(HL-)
func opcode0x3A(c *CPU) int {
	hl := c.getHL()
	c.a = c.read(hl)
	c.setHL(hl - 1)
	return 8
}

// STOP
func opcode0x10(c *CPU) int {
	c.pc++
	if s, ok := c.bus.(stopper); ok {
		if s.EnterStop() {
			// CGB speed switch: the CPU resumes immediately
			return 4
		}
	}
	c.stopped = true
	return 4
}

// JR e
func opcode0x18(c *CPU) int {
	offset := c.readSignedImmediate()
	c.jr(offset)
	c.tickInternal()
	return 12
}

// JR NZ,e
func opcode0x20(c *CPU) int {
	offset := c.readSignedImmediate()
	if !c.isSetFlag(zeroFlag) {
		c.jr(offset)
		c.tickInternal()
		return 12
	}
	return 8
}

// JR Z,e
func opcode0x28(c *CPU) int {
	offset := c.readSignedImmediate()
	if c.isSetFlag(zeroFlag) {
		c.jr(offset)
		c.tickInternal()
		return 12
	}
	return 8
}

// JR NC,e
func opcode0x30(c *CPU) int {
	offset := c.readSignedImmediate()
	if !c.isSetFlag(carryFlag) {
		c.jr(offset)
		c.tickInternal()
		return 12
	}
	return 8
}

// JR C,e
func opcode0x38(c *CPU) int {
	offset := c.readSignedImmediate()
	if c.isSetFlag(carryFlag) {
		c.jr(offset)
		c.tickInternal()
		return 12
	}
	return 8
}

// LD B,B
func opcode0x40(c *CPU) int {
	c.b = c.b
	return 4
}

// LD B,C
func opcode0x41(c *CPU) int {
	c.b = c.cReg
	return 4
}

// LD B,D
func opcode0x42(c *CPU) int {
	c.b = c.d
	return 4
}

// LD B,E
func opcode0x43(c *CPU) int {
	c.b = c.e
	return 4
}

// LD B,H
func opcode0x44(c *CPU) int {
	c.b = c.h
	return 4
}

// LD B,L
func opcode0x45(c *CPU) int {
	c.b = c.l
	return 4
}

// LD B,(HL)
func opcode0x46(c *CPU) int {
	c.b = c.read(c.getHL())
	return 8
}

// LD B,A
func opcode0x47(c *CPU) int {
	c.b = c.a
	return 4
}

// LD C,B
func opcode0x48(c *CPU) int {
	c.cReg = c.b
	return 4
}

// LD C,C
func opcode0x49(c *CPU) int {
	c.cReg = c.cReg
	return 4
}

// LD C,D
func opcode0x4A(c *CPU) int {
	c.cReg = c.d
	return 4
}

// LD C,E
func opcode0x4B(c *CPU) int {
	c.cReg = c.e
	return 4
}

// LD C,H
func opcode0x4C(c *CPU) int {
	c.cReg = c.h
	return 4
}

// LD C,L
func opcode0x4D(c *CPU) int {
	c.cReg = c.l
	return 4
}

// LD C,(HL)
func opcode0x4E(c *CPU) int {
	c.cReg = c.read(c.getHL())
	return 8
}

// LD C,A
func opcode0x4F(c *CPU) int {
	c.cReg = c.a
	return 4
}

// LD D,B
func opcode0x50(c *CPU) int {
	c.d = c.b
	return 4
}

// LD D,C
func opcode0x51(c *CPU) int {
	c.d = c.cReg
	return 4
}

// LD D,D
func opcode0x52(c *CPU) int {
	c.d = c.d
	return 4
}

// LD D,E
func opcode0x53(c *CPU) int {
	c.d = c.e
	return 4
}

// LD D,H
func opcode0x54(c *CPU) int {
	c.d = c.h
	return 4
}

// LD D,L
func opcode0x55(c *CPU) int {
	c.d = c.l
	return 4
}

// LD D,(HL)
func opcode0x56(c *CPU) int {
	c.d = c.read(c.getHL())
	return 8
}

// LD D,A
func opcode0x57(c *CPU) int {
	c.d = c.a
	return 4
}

// LD E,B
func opcode0x58(c *CPU) int {
	c.e = c.b
	return 4
}

// LD E,C
func opcode0x59(c *CPU) int {
	c.e = c.cReg
	return 4
}

// LD E,D
func opcode0x5A(c *CPU) int {
	c.e = c.d
	return 4
}

// LD E,E
func opcode0x5B(c *CPU) int {
	c.e = c.e
	return 4
}

// LD E,H
func opcode0x5C(c *CPU) int {
	c.e = c.h
	return 4
}

// LD E,L
func opcode0x5D(c *CPU) int {
	c.e = c.l
	return 4
}

// LD E,(HL)
func opcode0x5E(c *CPU) int {
	c.e = c.read(c.getHL())
	return 8
}

// LD E,A
func opcode0x5F(c *CPU) int {
	c.e = c.a
	return 4
}

// LD H,B
func opcode0x60(c *CPU) int {
	c.h = c.b
	return 4
}

// LD H,C
func opcode0x61(c *CPU) int {
	c.h = c.cReg
	return 4
}

// LD H,D
func opcode0x62(c *CPU) int {
	c.h = c.d
	return 4
}

// LD H,E
func opcode0x63(c *CPU) int {
	c.h = c.e
	return 4
}

// LD H,H
func opcode0x64(c *CPU) int {
	c.h = c.h
	return 4
}

// LD H,L
func opcode0x65(c *CPU) int {
	c.h = c.l
	return 4
}

// LD H,(HL)
func opcode0x66(c *CPU) int {
	c.h = c.read(c.getHL())
	return 8
}

// LD H,A
func opcode0x67(c *CPU) int {
	c.h = c.a
	return 4
}

// LD L,B
func opcode0x68(c *CPU) int {
	c.l = c.b
	return 4
}

// LD L,C
func opcode0x69(c *CPU) int {
	c.l = c.cReg
	return 4
}

// LD L,D
func opcode0x6A(c *CPU) int {
	c.l = c.d
	return 4
}

// LD L,E
func opcode0x6B(c *CPU) int {
	c.l = c.e
	return 4
}

// LD L,H
func opcode0x6C(c *CPU) int {
	c.l = c.h
	return 4
}

// LD L,L
func opcode0x6D(c *CPU) int {
	c.l = c.l
	return 4
}

// LD L,(HL)
func opcode0x6E(c *CPU) int {
	c.l = c.read(c.getHL())
	return 8
}

// LD L,A
func opcode0x6F(c *CPU) int {
	c.l = c.a
	return 4
}

// LD (HL),B
func opcode0x70(c *CPU) int {
	c.write(c.getHL(), c.b)
	return 8
}

// LD (HL),C
func opcode0x71(c *CPU) int {
	c.write(c.getHL(), c.cReg)
	return 8
}

// LD (HL),D
func opcode0x72(c *CPU) int {
	c.write(c.getHL(), c.d)
	return 8
}

// LD (HL),E
func opcode0x73(c *CPU) int {
	c.write(c.getHL(), c.e)
	return 8
}

// LD (HL),H
func opcode0x74(c *CPU) int {
	c.write(c.getHL(), c.h)
	return 8
}

// LD (HL),L
func opcode0x75(c *CPU) int {
	c.write(c.getHL(), c.l)
	return 8
}

// HALT
func opcode0x76(c *CPU) int {
	pending := c.bus.ReadIE() & c.bus.ReadIF() & 0x1F
	if !c.ime && pending != 0 {
		c.haltBug = true
	}
	c.halted = true
	return 4
}

// LD (HL),A
func opcode0x77(c *CPU) int {
	c.write(c.getHL(), c.a)
	return 8
}

// LD A,B
func opcode0x78(c *CPU) int {
	c.a = c.b
	return 4
}

// LD A,C
func opcode0x79(c *CPU) int {
	c.a = c.cReg
	return 4
}

// LD A,D
func opcode0x7A(c *CPU) int {
	c.a = c.d
	return 4
}

// LD A,E
func opcode0x7B(c *CPU) int {
	c.a = c.e
	return 4
}

// LD A,H
func opcode0x7C(c *CPU) int {
	c.a = c.h
	return 4
}

// LD A,L
func opcode0x7D(c *CPU) int {
	c.a = c.l
	return 4
}

// LD A,(HL)
func opcode0x7E(c *CPU) int {
	c.a = c.read(c.getHL())
	return 8
}

// LD A,A
func opcode0x7F(c *CPU) int {
	c.a = c.a
	return 4
}

// ADD A,B
func opcode0x80(c *CPU) int {
	c.addToA(c.b, 0)
	return 4
}

// ADD A,C
func opcode0x81(c *CPU) int {
	c.addToA(c.cReg, 0)
	return 4
}

// ADD A,D
func opcode0x82(c *CPU) int {
	c.addToA(c.d, 0)
	return 4
}

// ADD A,E
func opcode0x83(c *CPU) int {
	c.addToA(c.e, 0)
	return 4
}

// ADD A,H
func opcode0x84(c *CPU) int {
	c.addToA(c.h, 0)
	return 4
}

// ADD A,L
func opcode0x85(c *CPU) int {
	c.addToA(c.l, 0)
	return 4
}

// ADD A,(HL)
func opcode0x86(c *CPU) int {
	c.addToA(c.read(c.getHL()), 0)
	return 8
}

// ADD A,A
func opcode0x87(c *CPU) int {
	c.addToA(c.a, 0)
	return 4
}

// ADC A,B
func opcode0x88(c *CPU) int {
	c.addToA(c.b, c.flagToBit(carryFlag))
	return 4
}

// ADC A,C
func opcode0x89(c *CPU) int {
	c.addToA(c.cReg, c.flagToBit(carryFlag))
	return 4
}

// ADC A,D
func opcode0x8A(c *CPU) int {
	c.addToA(c.d, c.flagToBit(carryFlag))
	return 4
}

// ADC A,E
func opcode0x8B(c *CPU) int {
	c.addToA(c.e, c.flagToBit(carryFlag))
	return 4
}

// ADC A,H
func opcode0x8C(c *CPU) int {
	c.addToA(c.h, c.flagToBit(carryFlag))
	return 4
}

// ADC A,L
func opcode0x8D(c *CPU) int {
	c.addToA(c.l, c.flagToBit(carryFlag))
	return 4
}

// ADC A,(HL)
func opcode0x8E(c *CPU) int {
	c.addToA(c.read(c.getHL()), c.flagToBit(carryFlag))
	return 8
}

// ADC A,A
func opcode0x8F(c *CPU) int {
	c.addToA(c.a, c.flagToBit(carryFlag))
	return 4
}

// SUB A,B
func opcode0x90(c *CPU) int {
	c.sub(c.b, 0, false)
	return 4
}

// SUB A,C
func opcode0x91(c *CPU) int {
	c.sub(c.cReg, 0, false)
	return 4
}

// SUB A,D
func opcode0x92(c *CPU) int {
	c.sub(c.d, 0, false)
	return 4
}

// SUB A,E
func opcode0x93(c *CPU) int {
	c.sub(c.e, 0, false)
	return 4
}

// SUB A,H
func opcode0x94(c *CPU) int {
	c.sub(c.h, 0, false)
	return 4
}

// SUB A,L
func opcode0x95(c *CPU) int {
	c.sub(c.l, 0, false)
	return 4
}

// SUB A,(HL)
func opcode0x96(c *CPU) int {
	c.sub(c.read(c.getHL()), 0, false)
	return 8
}

// SUB A,A
func opcode0x97(c *CPU) int {
	c.sub(c.a, 0, false)
	return 4
}

// SBC A,B
func opcode0x98(c *CPU) int {
	c.sub(c.b, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,C
func opcode0x99(c *CPU) int {
	c.sub(c.cReg, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,D
func opcode0x9A(c *CPU) int {
	c.sub(c.d, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,E
func opcode0x9B(c *CPU) int {
	c.sub(c.e, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,H
func opcode0x9C(c *CPU) int {
	c.sub(c.h, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,L
func opcode0x9D(c *CPU) int {
	c.sub(c.l, c.flagToBit(carryFlag), false)
	return 4
}

// SBC A,(HL)
func opcode0x9E(c *CPU) int {
	c.sub(c.read(c.getHL()), c.flagToBit(carryFlag), false)
	return 8
}

// SBC A,A
func opcode0x9F(c *CPU) int {
	c.sub(c.a, c.flagToBit(carryFlag), false)
	return 4
}

// AND A,B
func opcode0xA0(c *CPU) int {
	c.and(c.b)
	return 4
}

// AND A,C
func opcode0xA1(c *CPU) int {
	c.and(c.cReg)
	return 4
}

// AND A,D
func opcode0xA2(c *CPU) int {
	c.and(c.d)
	return 4
}

// AND A,E
func opcode0xA3(c *CPU) int {
	c.and(c.e)
	return 4
}

// AND A,H
func opcode0xA4(c *CPU) int {
	c.and(c.h)
	return 4
}

// AND A,L
func opcode0xA5(c *CPU) int {
	c.and(c.l)
	return 4
}

// AND A,(HL)
func opcode0xA6(c *CPU) int {
	c.and(c.read(c.getHL()))
	return 8
}

// AND A,A
func opcode0xA7(c *CPU) int {
	c.and(c.a)
	return 4
}

// XOR A,B
func opcode0xA8(c *CPU) int {
	c.xor(c.b)
	return 4
}

// XOR A,C
func opcode0xA9(c *CPU) int {
	c.xor(c.cReg)
	return 4
}

// XOR A,D
func opcode0xAA(c *CPU) int {
	c.xor(c.d)
	return 4
}

// XOR A,E
func opcode0xAB(c *CPU) int {
	c.xor(c.e)
	return 4
}

// XOR A,H
func opcode0xAC(c *CPU) int {
	c.xor(c.h)
	return 4
}

// XOR A,L
func opcode0xAD(c *CPU) int {
	c.xor(c.l)
	return 4
}

// XOR A,(HL)
func opcode0xAE(c *CPU) int {
	c.xor(c.read(c.getHL()))
	return 8
}

// XOR A,A
func opcode0xAF(c *CPU) int {
	c.xor(c.a)
	return 4
}

// OR A,B
func opcode0xB0(c *CPU) int {
	c.or(c.b)
	return 4
}

// OR A,C
func opcode0xB1(c *CPU) int {
	c.or(c.cReg)
	return 4
}

// OR A,D
func opcode0xB2(c *CPU) int {
	c.or(c.d)
	return 4
}

// OR A,E
func opcode0xB3(c *CPU) int {
	c.or(c.e)
	return 4
}

// OR A,H
func opcode0xB4(c *CPU) int {
	c.or(c.h)
	return 4
}

// OR A,L
func opcode0xB5(c *CPU) int {
	c.or(c.l)
	return 4
}

// OR A,(HL)
func opcode0xB6(c *CPU) int {
	c.or(c.read(c.getHL()))
	return 8
}

// OR A,A
func opcode0xB7(c *CPU) int {
	c.or(c.a)
	return 4
}

// CP A,B
func opcode0xB8(c *CPU) int {
	c.sub(c.b, 0, true)
	return 4
}

// CP A,C
func opcode0xB9(c *CPU) int {
	c.sub(c.cReg, 0, true)
	return 4
}

// CP A,D
func opcode0xBA(c *CPU) int {
	c.sub(c.d, 0, true)
	return 4
}

// CP A,E
func opcode0xBB(c *CPU) int {
	c.sub(c.e, 0, true)
	return 4
}

// CP A,H
func opcode0xBC(c *CPU) int {
	c.sub(c.h, 0, true)
	return 4
}

// CP A,L
func opcode0xBD(c *CPU) int {
	c.sub(c.l, 0, true)
	return 4
}

// CP A,(HL)
func opcode0xBE(c *CPU) int {
	c.sub(c.read(c.getHL()), 0, true)
	return 8
}

// CP A,A
func opcode0xBF(c *CPU) int {
	c.sub(c.a, 0, true)
	return 4
}

// ADD A,n
func opcode0xC6(c *CPU) int {
	n := c.readImmediate()
	c.addToA(n, 0)
	return 8
}

// ADC A,n
func opcode0xCE(c *CPU) int {
	n := c.readImmediate()
	c.addToA(n, c.flagToBit(carryFlag))
	return 8
}

// SUB A,n
func opcode0xD6(c *CPU) int {
	n := c.readImmediate()
	c.sub(n, 0, false)
	return 8
}

// SBC A,n
func opcode0xDE(c *CPU) int {
	n := c.readImmediate()
	c.sub(n, c.flagToBit(carryFlag), false)
	return 8
}

// AND A,n
func opcode0xE6(c *CPU) int {
	n := c.readImmediate()
	c.and(n)
	return 8
}

// XOR A,n
func opcode0xEE(c *CPU) int {
	n := c.readImmediate()
	c.xor(n)
	return 8
}

// OR A,n
func opcode0xF6(c *CPU) int {
	n := c.readImmediate()
	c.or(n)
	return 8
}

// CP A,n
func opcode0xFE(c *CPU) int {
	n := c.readImmediate()
	c.sub(n, 0, true)
	return 8
}

// RET NZ
func opcode0xC0(c *CPU) int {
	c.tickInternal()
	if !c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		c.tickInternal()
		return 20
	}
	return 8
}

// RET Z
func opcode0xC8(c *CPU) int {
	c.tickInternal()
	if c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		c.tickInternal()
		return 20
	}
	return 8
}

// RET NC
func opcode0xD0(c *CPU) int {
	c.tickInternal()
	if !c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		c.tickInternal()
		return 20
	}
	return 8
}

// RET C
func opcode0xD8(c *CPU) int {
	c.tickInternal()
	if c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		c.tickInternal()
		return 20
	}
	return 8
}

// RET
func opcode0xC9(c *CPU) int {
	c.pc = c.popStack()
	c.tickInternal()
	return 16
}

// RETI
func opcode0xD9(c *CPU) int {
	c.pc = c.popStack()
	c.ime = true
	c.tickInternal()
	return 16
}

// JP NZ,nn
func opcode0xC2(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.jp(addr)
		c.tickInternal()
		return 16
	}
	return 12
}

// JP Z,nn
func opcode0xCA(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.jp(addr)
		c.tickInternal()
		return 16
	}
	return 12
}

// JP NC,nn
func opcode0xD2(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.jp(addr)
		c.tickInternal()
		return 16
	}
	return 12
}

// JP C,nn
func opcode0xDA(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.jp(addr)
		c.tickInternal()
		return 16
	}
	return 12
}

// JP nn
func opcode0xC3(c *CPU) int {
	addr := c.readImmediateWord()
	c.jp(addr)
	c.tickInternal()
	return 16
}

// JP HL
func opcode0xE9(c *CPU) int {
	c.jp(c.getHL())
	return 4
}

// CALL NZ,nn
func opcode0xC4(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.tickInternal()
		c.call(addr)
		return 24
	}
	return 12
}

// CALL Z,nn
func opcode0xCC(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.tickInternal()
		c.call(addr)
		return 24
	}
	return 12
}

// CALL NC,nn
func opcode0xD4(c *CPU) int {
	addr := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.tickInternal()
		c.call(addr)
		return 24
	}
	return 12
}

// CALL C,nn
func opcode0xDC(c *CPU) int {
	addr := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.tickInternal()
		c.call(addr)
		return 24
	}
	return 12
}

// CALL nn
func opcode0xCD(c *CPU) int {
	addr := c.readImmediateWord()
	c.tickInternal()
	c.call(addr)
	return 24
}

// RST 00h
func opcode0xC7(c *CPU) int {
	c.tickInternal()
	c.rst(0x0000)
	return 16
}

// RST 08h
func opcode0xCF(c *CPU) int {
	c.tickInternal()
	c.rst(0x0008)
	return 16
}

// RST 10h
func opcode0xD7(c *CPU) int {
	c.tickInternal()
	c.rst(0x0010)
	return 16
}

// RST 18h
func opcode0xDF(c *CPU) int {
	c.tickInternal()
	c.rst(0x0018)
	return 16
}

// RST 20h
func opcode0xE7(c *CPU) int {
	c.tickInternal()
	c.rst(0x0020)
	return 16
}

// RST 28h
func opcode0xEF(c *CPU) int {
	c.tickInternal()
	c.rst(0x0028)
	return 16
}

// RST 30h
func opcode0xF7(c *CPU) int {
	c.tickInternal()
	c.rst(0x0030)
	return 16
}

// RST 38h
func opcode0xFF(c *CPU) int {
	c.tickInternal()
	c.rst(0x0038)
	return 16
}

// PUSH BC
func opcode0xC5(c *CPU) int {
	c.tickInternal()
	c.pushStack(c.getBC())
	return 16
}

// PUSH DE
func opcode0xD5(c *CPU) int {
	c.tickInternal()
	c.pushStack(c.getDE())
	return 16
}

// PUSH HL
func opcode0xE5(c *CPU) int {
	c.tickInternal()
	c.pushStack(c.getHL())
	return 16
}

// PUSH AF
func opcode0xF5(c *CPU) int {
	c.tickInternal()
	c.pushStack(c.getAF())
	return 16
}

// POP BC
func opcode0xC1(c *CPU) int {
	c.setBC(c.popStack())
	return 12
}

// POP DE
func opcode0xD1(c *CPU) int {
	c.setDE(c.popStack())
	return 12
}

// POP HL
func opcode0xE1(c *CPU) int {
	c.setHL(c.popStack())
	return 12
}

// POP AF
func opcode0xF1(c *CPU) int {
	c.setAF(c.popStack())
	return 12
}

// LDH (n),A
func opcode0xE0(c *CPU) int {
	n := c.readImmediate()
	c.write(0xFF00+uint16(n), c.a)
	return 12
}

// LDH A,(n)
func opcode0xF0(c *CPU) int {
	n := c.readImmediate()
	c.a = c.read(0xFF00 + uint16(n))
	return 12
}

// LD (C),A
func opcode0xE2(c *CPU) int {
	c.write(0xFF00+uint16(c.cReg), c.a)
	return 8
}

// LD A,(C)
func opcode0xF2(c *CPU) int {
	c.a = c.read(0xFF00 + uint16(c.cReg))
	return 8
}

// LD (nn),A
func opcode0xEA(c *CPU) int {
	addr := c.readImmediateWord()
	c.write(addr, c.a)
	return 16
}

// LD A,(nn)
func opcode0xFA(c *CPU) int {
	addr := c.readImmediateWord()
	c.a = c.read(addr)
	return 16
}

// ADD SP,e
func opcode0xE8(c *CPU) int {
	offset := c.readSignedImmediate()
	result := c.spPlusOffset(offset)
	c.sp = result
	c.tickInternal()
	c.tickInternal()
	return 16
}

// LD HL,SP+e
func opcode0xF8(c *CPU) int {
	offset := c.readSignedImmediate()
	result := c.spPlusOffset(offset)
	c.setHL(result)
	c.tickInternal()
	return 12
}

// LD SP,HL
func opcode0xF9(c *CPU) int {
	c.sp = c.getHL()
	c.tickInternal()
	return 8
}

// DI
func opcode0xF3(c *CPU) int {
	c.ime = false
	c.imeScheduled = 0
	return 4
}

// EI
func opcode0xFB(c *CPU) int {
	c.imeScheduled = 1
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xD3(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xDB(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xDD(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xE3(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xE4(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xEB(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xEC(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xED(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xF4(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xFC(c *CPU) int {
	return 4
}

// illegal opcode, treated as a silent no-op
func opcode0xFD(c *CPU) int {
	return 4
}

var dispatch = map[uint16]func(*CPU) int{
	0x00: opcode0x00,
	0x01: opcode0x01,
	0x02: opcode0x02,
	0x03: opcode0x03,
	0x04: opcode0x04,
	0x05: opcode0x05,
	0x06: opcode0x06,
	0x07: opcode0x07,
	0x08: opcode0x08,
	0x09: opcode0x09,
	0x0A: opcode0x0A,
	0x0B: opcode0x0B,
	0x0C: opcode0x0C,
	0x0D: opcode0x0D,
	0x0E: opcode0x0E,
	0x0F: opcode0x0F,
	0x10: opcode0x10,
	0x11: opcode0x11,
	0x12: opcode0x12,
	0x13: opcode0x13,
	0x14: opcode0x14,
	0x15: opcode0x15,
	0x16: opcode0x16,
	0x17: opcode0x17,
	0x18: opcode0x18,
	0x19: opcode0x19,
	0x1A: opcode0x1A,
	0x1B: opcode0x1B,
	0x1C: opcode0x1C,
	0x1D: opcode0x1D,
	0x1E: opcode0x1E,
	0x1F: opcode0x1F,
	0x20: opcode0x20,
	0x21: opcode0x21,
	0x22: opcode0x22,
	0x23: opcode0x23,
	0x24: opcode0x24,
	0x25: opcode0x25,
	0x26: opcode0x26,
	0x27: opcode0x27,
	0x28: opcode0x28,
	0x29: opcode0x29,
	0x2A: opcode0x2A,
	0x2B: opcode0x2B,
	0x2C: opcode0x2C,
	0x2D: opcode0x2D,
	0x2E: opcode0x2E,
	0x2F: opcode0x2F,
	0x30: opcode0x30,
	0x31: opcode0x31,
	0x32: opcode0x32,
	0x33: opcode0x33,
	0x34: opcode0x34,
	0x35: opcode0x35,
	0x36: opcode0x36,
	0x37: opcode0x37,
	0x38: opcode0x38,
	0x39: opcode0x39,
	0x3A: opcode0x3A,
	0x3B: opcode0x3B,
	0x3C: opcode0x3C,
	0x3D: opcode0x3D,
	0x3E: opcode0x3E,
	0x3F: opcode0x3F,
	0x40: opcode0x40,
	0x41: opcode0x41,
	0x42: opcode0x42,
	0x43: opcode0x43,
	0x44: opcode0x44,
	0x45: opcode0x45,
	0x46: opcode0x46,
	0x47: opcode0x47,
	0x48: opcode0x48,
	0x49: opcode0x49,
	0x4A: opcode0x4A,
	0x4B: opcode0x4B,
	0x4C: opcode0x4C,
	0x4D: opcode0x4D,
	0x4E: opcode0x4E,
	0x4F: opcode0x4F,
	0x50: opcode0x50,
	0x51: opcode0x51,
	0x52: opcode0x52,
	0x53: opcode0x53,
	0x54: opcode0x54,
	0x55: opcode0x55,
	0x56: opcode0x56,
	0x57: opcode0x57,
	0x58: opcode0x58,
	0x59: opcode0x59,
	0x5A: opcode0x5A,
	0x5B: opcode0x5B,
	0x5C: opcode0x5C,
	0x5D: opcode0x5D,
	0x5E: opcode0x5E,
	0x5F: opcode0x5F,
	0x60: opcode0x60,
	0x61: opcode0x61,
	0x62: opcode0x62,
	0x63: opcode0x63,
	0x64: opcode0x64,
	0x65: opcode0x65,
	0x66: opcode0x66,
	0x67: opcode0x67,
	0x68: opcode0x68,
	0x69: opcode0x69,
	0x6A: opcode0x6A,
	0x6B: opcode0x6B,
	0x6C: opcode0x6C,
	0x6D: opcode0x6D,
	0x6E: opcode0x6E,
	0x6F: opcode0x6F,
	0x70: opcode0x70,
	0x71: opcode0x71,
	0x72: opcode0x72,
	0x73: opcode0x73,
	0x74: opcode0x74,
	0x75: opcode0x75,
	0x76: opcode0x76,
	0x77: opcode0x77,
	0x78: opcode0x78,
	0x79: opcode0x79,
	0x7A: opcode0x7A,
	0x7B: opcode0x7B,
	0x7C: opcode0x7C,
	0x7D: opcode0x7D,
	0x7E: opcode0x7E,
	0x7F: opcode0x7F,
	0x80: opcode0x80,
	0x81: opcode0x81,
	0x82: opcode0x82,
	0x83: opcode0x83,
	0x84: opcode0x84,
	0x85: opcode0x85,
	0x86: opcode0x86,
	0x87: opcode0x87,
	0x88: opcode0x88,
	0x89: opcode0x89,
	0x8A: opcode0x8A,
	0x8B: opcode0x8B,
	0x8C: opcode0x8C,
	0x8D: opcode0x8D,
	0x8E: opcode0x8E,
	0x8F: opcode0x8F,
	0x90: opcode0x90,
	0x91: opcode0x91,
	0x92: opcode0x92,
	0x93: opcode0x93,
	0x94: opcode0x94,
	0x95: opcode0x95,
	0x96: opcode0x96,
	0x97: opcode0x97,
	0x98: opcode0x98,
	0x99: opcode0x99,
	0x9A: opcode0x9A,
	0x9B: opcode0x9B,
	0x9C: opcode0x9C,
	0x9D: opcode0x9D,
	0x9E: opcode0x9E,
	0x9F: opcode0x9F,
	0xA0: opcode0xA0,
	0xA1: opcode0xA1,
	0xA2: opcode0xA2,
	0xA3: opcode0xA3,
	0xA4: opcode0xA4,
	0xA5: opcode0xA5,
	0xA6: opcode0xA6,
	0xA7: opcode0xA7,
	0xA8: opcode0xA8,
	0xA9: opcode0xA9,
	0xAA: opcode0xAA,
	0xAB: opcode0xAB,
	0xAC: opcode0xAC,
	0xAD: opcode0xAD,
	0xAE: opcode0xAE,
	0xAF: opcode0xAF,
	0xB0: opcode0xB0,
	0xB1: opcode0xB1,
	0xB2: opcode0xB2,
	0xB3: opcode0xB3,
	0xB4: opcode0xB4,
	0xB5: opcode0xB5,
	0xB6: opcode0xB6,
	0xB7: opcode0xB7,
	0xB8: opcode0xB8,
	0xB9: opcode0xB9,
	0xBA: opcode0xBA,
	0xBB: opcode0xBB,
	0xBC: opcode0xBC,
	0xBD: opcode0xBD,
	0xBE: opcode0xBE,
	0xBF: opcode0xBF,
	0xC0: opcode0xC0,
	0xC1: opcode0xC1,
	0xC2: opcode0xC2,
	0xC3: opcode0xC3,
	0xC4: opcode0xC4,
	0xC5: opcode0xC5,
	0xC6: opcode0xC6,
	0xC7: opcode0xC7,
	0xC8: opcode0xC8,
	0xC9: opcode0xC9,
	0xCA: opcode0xCA,
	0xCC: opcode0xCC,
	0xCD: opcode0xCD,
	0xCE: opcode0xCE,
	0xCF: opcode0xCF,
	0xD0: opcode0xD0,
	0xD1: opcode0xD1,
	0xD2: opcode0xD2,
	0xD3: opcode0xD3,
	0xD4: opcode0xD4,
	0xD5: opcode0xD5,
	0xD6: opcode0xD6,
	0xD7: opcode0xD7,
	0xD8: opcode0xD8,
	0xD9: opcode0xD9,
	0xDA: opcode0xDA,
	0xDB: opcode0xDB,
	0xDC: opcode0xDC,
	0xDD: opcode0xDD,
	0xDE: opcode0xDE,
	0xDF: opcode0xDF,
	0xE0: opcode0xE0,
	0xE1: opcode0xE1,
	0xE2: opcode0xE2,
	0xE3: opcode0xE3,
	0xE4: opcode0xE4,
	0xE5: opcode0xE5,
	0xE6: opcode0xE6,
	0xE7: opcode0xE7,
	0xE8: opcode0xE8,
	0xE9: opcode0xE9,
	0xEA: opcode0xEA,
	0xEB: opcode0xEB,
	0xEC: opcode0xEC,
	0xED: opcode0xED,
	0xEE: opcode0xEE,
	0xEF: opcode0xEF,
	0xF0: opcode0xF0,
	0xF1: opcode0xF1,
	0xF2: opcode0xF2,
	0xF3: opcode0xF3,
	0xF4: opcode0xF4,
	0xF5: opcode0xF5,
	0xF6: opcode0xF6,
	0xF7: opcode0xF7,
	0xF8: opcode0xF8,
	0xF9: opcode0xF9,
	0xFA: opcode0xFA,
	0xFB: opcode0xFB,
	0xFC: opcode0xFC,
	0xFD: opcode0xFD,
	0xFE: opcode0xFE,
	0xFF: opcode0xFF,
}
