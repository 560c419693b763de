// Code generated for the SM83 CB-prefixed opcode table. The CB
// prefix byte and the opcode byte itself are both fetched by the
// dispatcher before these functions run, so each function's own
// bus activity accounts for the instruction's cycle count minus 8.
package cpu

// RLC B
func opcodeCB0x00(c *CPU) int {
	c.b = c.rlc(c.b, false)
	return 8
}

// RLC C
func opcodeCB0x01(c *CPU) int {
	c.cReg = c.rlc(c.cReg, false)
	return 8
}

// RLC D
func opcodeCB0x02(c *CPU) int {
	c.d = c.rlc(c.d, false)
	return 8
}

// RLC E
func opcodeCB0x03(c *CPU) int {
	c.e = c.rlc(c.e, false)
	return 8
}

// RLC H
func opcodeCB0x04(c *CPU) int {
	c.h = c.rlc(c.h, false)
	return 8
}

// RLC L
func opcodeCB0x05(c *CPU) int {
	c.l = c.rlc(c.l, false)
	return 8
}

// RLC (HL)
func opcodeCB0x06(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.rlc(v, false)
	c.write(hl, v)
	return 16
}

// RLC A
func opcodeCB0x07(c *CPU) int {
	c.a = c.rlc(c.a, false)
	return 8
}

// RRC B
func opcodeCB0x08(c *CPU) int {
	c.b = c.rrc(c.b, false)
	return 8
}

// RRC C
func opcodeCB0x09(c *CPU) int {
	c.cReg = c.rrc(c.cReg, false)
	return 8
}

// RRC D
func opcodeCB0x0A(c *CPU) int {
	c.d = c.rrc(c.d, false)
	return 8
}

// RRC E
func opcodeCB0x0B(c *CPU) int {
	c.e = c.rrc(c.e, false)
	return 8
}

// RRC H
func opcodeCB0x0C(c *CPU) int {
	c.h = c.rrc(c.h, false)
	return 8
}

// RRC L
func opcodeCB0x0D(c *CPU) int {
	c.l = c.rrc(c.l, false)
	return 8
}

// RRC (HL)
func opcodeCB0x0E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.rrc(v, false)
	c.write(hl, v)
	return 16
}

// RRC A
func opcodeCB0x0F(c *CPU) int {
	c.a = c.rrc(c.a, false)
	return 8
}

// RL B
func opcodeCB0x10(c *CPU) int {
	c.b = c.rl(c.b, false)
	return 8
}

// RL C
func opcodeCB0x11(c *CPU) int {
	c.cReg = c.rl(c.cReg, false)
	return 8
}

// RL D
func opcodeCB0x12(c *CPU) int {
	c.d = c.rl(c.d, false)
	return 8
}

// RL E
func opcodeCB0x13(c *CPU) int {
	c.e = c.rl(c.e, false)
	return 8
}

// RL H
func opcodeCB0x14(c *CPU) int {
	c.h = c.rl(c.h, false)
	return 8
}

// RL L
func opcodeCB0x15(c *CPU) int {
	c.l = c.rl(c.l, false)
	return 8
}

// RL (HL)
func opcodeCB0x16(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.rl(v, false)
	c.write(hl, v)
	return 16
}

// RL A
func opcodeCB0x17(c *CPU) int {
	c.a = c.rl(c.a, false)
	return 8
}

// RR B
func opcodeCB0x18(c *CPU) int {
	c.b = c.rr(c.b, false)
	return 8
}

// RR C
func opcodeCB0x19(c *CPU) int {
	c.cReg = c.rr(c.cReg, false)
	return 8
}

// RR D
func opcodeCB0x1A(c *CPU) int {
	c.d = c.rr(c.d, false)
	return 8
}

// RR E
func opcodeCB0x1B(c *CPU) int {
	c.e = c.rr(c.e, false)
	return 8
}

// RR H
func opcodeCB0x1C(c *CPU) int {
	c.h = c.rr(c.h, false)
	return 8
}

// RR L
func opcodeCB0x1D(c *CPU) int {
	c.l = c.rr(c.l, false)
	return 8
}

// RR (HL)
func opcodeCB0x1E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.rr(v, false)
	c.write(hl, v)
	return 16
}

// RR A
func opcodeCB0x1F(c *CPU) int {
	c.a = c.rr(c.a, false)
	return 8
}

// SLA B
func opcodeCB0x20(c *CPU) int {
	c.b = c.sla(c.b)
	return 8
}

// SLA C
func opcodeCB0x21(c *CPU) int {
	c.cReg = c.sla(c.cReg)
	return 8
}

// SLA D
func opcodeCB0x22(c *CPU) int {
	c.d = c.sla(c.d)
	return 8
}

// SLA E
func opcodeCB0x23(c *CPU) int {
	c.e = c.sla(c.e)
	return 8
}

// SLA H
func opcodeCB0x24(c *CPU) int {
	c.h = c.sla(c.h)
	return 8
}

// SLA L
func opcodeCB0x25(c *CPU) int {
	c.l = c.sla(c.l)
	return 8
}

// SLA (HL)
func opcodeCB0x26(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.sla(v)
	c.write(hl, v)
	return 16
}

// SLA A
func opcodeCB0x27(c *CPU) int {
	c.a = c.sla(c.a)
	return 8
}

// SRA B
func opcodeCB0x28(c *CPU) int {
	c.b = c.sra(c.b)
	return 8
}

// SRA C
func opcodeCB0x29(c *CPU) int {
	c.cReg = c.sra(c.cReg)
	return 8
}

// SRA D
func opcodeCB0x2A(c *CPU) int {
	c.d = c.sra(c.d)
	return 8
}

// SRA E
func opcodeCB0x2B(c *CPU) int {
	c.e = c.sra(c.e)
	return 8
}

// SRA H
func opcodeCB0x2C(c *CPU) int {
	c.h = c.sra(c.h)
	return 8
}

// SRA L
func opcodeCB0x2D(c *CPU) int {
	c.l = c.sra(c.l)
	return 8
}

// SRA (HL)
func opcodeCB0x2E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.sra(v)
	c.write(hl, v)
	return 16
}

// SRA A
func opcodeCB0x2F(c *CPU) int {
	c.a = c.sra(c.a)
	return 8
}

// SWAP B
func opcodeCB0x30(c *CPU) int {
	c.b = c.swap(c.b)
	return 8
}

// SWAP C
func opcodeCB0x31(c *CPU) int {
	c.cReg = c.swap(c.cReg)
	return 8
}

// SWAP D
func opcodeCB0x32(c *CPU) int {
	c.d = c.swap(c.d)
	return 8
}

// SWAP E
func opcodeCB0x33(c *CPU) int {
	c.e = c.swap(c.e)
	return 8
}

// SWAP H
func opcodeCB0x34(c *CPU) int {
	c.h = c.swap(c.h)
	return 8
}

// SWAP L
func opcodeCB0x35(c *CPU) int {
	c.l = c.swap(c.l)
	return 8
}

// SWAP (HL)
func opcodeCB0x36(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.swap(v)
	c.write(hl, v)
	return 16
}

// SWAP A
func opcodeCB0x37(c *CPU) int {
	c.a = c.swap(c.a)
	return 8
}

// SRL B
func opcodeCB0x38(c *CPU) int {
	c.b = c.srl(c.b)
	return 8
}

// SRL C
func opcodeCB0x39(c *CPU) int {
	c.cReg = c.srl(c.cReg)
	return 8
}

// SRL D
func opcodeCB0x3A(c *CPU) int {
	c.d = c.srl(c.d)
	return 8
}

// SRL E
func opcodeCB0x3B(c *CPU) int {
	c.e = c.srl(c.e)
	return 8
}

// SRL H
func opcodeCB0x3C(c *CPU) int {
	c.h = c.srl(c.h)
	return 8
}

// SRL L
func opcodeCB0x3D(c *CPU) int {
	c.l = c.srl(c.l)
	return 8
}

// SRL (HL)
func opcodeCB0x3E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.srl(v)
	c.write(hl, v)
	return 16
}

// SRL A
func opcodeCB0x3F(c *CPU) int {
	c.a = c.srl(c.a)
	return 8
}

// BIT 0,B
func opcodeCB0x40(c *CPU) int {
	c.bit(0, c.b)
	return 8
}

// BIT 0,C
func opcodeCB0x41(c *CPU) int {
	c.bit(0, c.cReg)
	return 8
}

// BIT 0,D
func opcodeCB0x42(c *CPU) int {
	c.bit(0, c.d)
	return 8
}

// BIT 0,E
func opcodeCB0x43(c *CPU) int {
	c.bit(0, c.e)
	return 8
}

// BIT 0,H
func opcodeCB0x44(c *CPU) int {
	c.bit(0, c.h)
	return 8
}

// BIT 0,L
func opcodeCB0x45(c *CPU) int {
	c.bit(0, c.l)
	return 8
}

// BIT 0,(HL)
func opcodeCB0x46(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(0, v)
	return 12
}

// BIT 0,A
func opcodeCB0x47(c *CPU) int {
	c.bit(0, c.a)
	return 8
}

// BIT 1,B
func opcodeCB0x48(c *CPU) int {
	c.bit(1, c.b)
	return 8
}

// BIT 1,C
func opcodeCB0x49(c *CPU) int {
	c.bit(1, c.cReg)
	return 8
}

// BIT 1,D
func opcodeCB0x4A(c *CPU) int {
	c.bit(1, c.d)
	return 8
}

// BIT 1,E
func opcodeCB0x4B(c *CPU) int {
	c.bit(1, c.e)
	return 8
}

// BIT 1,H
func opcodeCB0x4C(c *CPU) int {
	c.bit(1, c.h)
	return 8
}

// BIT 1,L
func opcodeCB0x4D(c *CPU) int {
	c.bit(1, c.l)
	return 8
}

// BIT 1,(HL)
func opcodeCB0x4E(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(1, v)
	return 12
}

// BIT 1,A
func opcodeCB0x4F(c *CPU) int {
	c.bit(1, c.a)
	return 8
}

// BIT 2,B
func opcodeCB0x50(c *CPU) int {
	c.bit(2, c.b)
	return 8
}

// BIT 2,C
func opcodeCB0x51(c *CPU) int {
	c.bit(2, c.cReg)
	return 8
}

// BIT 2,D
func opcodeCB0x52(c *CPU) int {
	c.bit(2, c.d)
	return 8
}

// BIT 2,E
func opcodeCB0x53(c *CPU) int {
	c.bit(2, c.e)
	return 8
}

// BIT 2,H
func opcodeCB0x54(c *CPU) int {
	c.bit(2, c.h)
	return 8
}

// BIT 2,L
func opcodeCB0x55(c *CPU) int {
	c.bit(2, c.l)
	return 8
}

// BIT 2,(HL)
func opcodeCB0x56(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(2, v)
	return 12
}

// BIT 2,A
func opcodeCB0x57(c *CPU) int {
	c.bit(2, c.a)
	return 8
}

// BIT 3,B
func opcodeCB0x58(c *CPU) int {
	c.bit(3, c.b)
	return 8
}

// BIT 3,C
func opcodeCB0x59(c *CPU) int {
	c.bit(3, c.cReg)
	return 8
}

// BIT 3,D
func opcodeCB0x5A(c *CPU) int {
	c.bit(3, c.d)
	return 8
}

// BIT 3,E
func opcodeCB0x5B(c *CPU) int {
	c.bit(3, c.e)
	return 8
}

// BIT 3,H
func opcodeCB0x5C(c *CPU) int {
	c.bit(3, c.h)
	return 8
}

// BIT 3,L
func opcodeCB0x5D(c *CPU) int {
	c.bit(3, c.l)
	return 8
}

// BIT 3,(HL)
func opcodeCB0x5E(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(3, v)
	return 12
}

// BIT 3,A
func opcodeCB0x5F(c *CPU) int {
	c.bit(3, c.a)
	return 8
}

// BIT 4,B
func opcodeCB0x60(c *CPU) int {
	c.bit(4, c.b)
	return 8
}

// BIT 4,C
func opcodeCB0x61(c *CPU) int {
	c.bit(4, c.cReg)
	return 8
}

// BIT 4,D
func opcodeCB0x62(c *CPU) int {
	c.bit(4, c.d)
	return 8
}

// BIT 4,E
func opcodeCB0x63(c *CPU) int {
	c.bit(4, c.e)
	return 8
}

// BIT 4,H
func opcodeCB0x64(c *CPU) int {
	c.bit(4, c.h)
	return 8
}

// BIT 4,L
func opcodeCB0x65(c *CPU) int {
	c.bit(4, c.l)
	return 8
}

// BIT 4,(HL)
func opcodeCB0x66(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(4, v)
	return 12
}

// BIT 4,A
func opcodeCB0x67(c *CPU) int {
	c.bit(4, c.a)
	return 8
}

// BIT 5,B
func opcodeCB0x68(c *CPU) int {
	c.bit(5, c.b)
	return 8
}

// BIT 5,C
func opcodeCB0x69(c *CPU) int {
	c.bit(5, c.cReg)
	return 8
}

// BIT 5,D
func opcodeCB0x6A(c *CPU) int {
	c.bit(5, c.d)
	return 8
}

// BIT 5,E
func opcodeCB0x6B(c *CPU) int {
	c.bit(5, c.e)
	return 8
}

// BIT 5,H
func opcodeCB0x6C(c *CPU) int {
	c.bit(5, c.h)
	return 8
}

// BIT 5,L
func opcodeCB0x6D(c *CPU) int {
	c.bit(5, c.l)
	return 8
}

// BIT 5,(HL)
func opcodeCB0x6E(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(5, v)
	return 12
}

// BIT 5,A
func opcodeCB0x6F(c *CPU) int {
	c.bit(5, c.a)
	return 8
}

// BIT 6,B
func opcodeCB0x70(c *CPU) int {
	c.bit(6, c.b)
	return 8
}

// BIT 6,C
func opcodeCB0x71(c *CPU) int {
	c.bit(6, c.cReg)
	return 8
}

// BIT 6,D
func opcodeCB0x72(c *CPU) int {
	c.bit(6, c.d)
	return 8
}

// BIT 6,E
func opcodeCB0x73(c *CPU) int {
	c.bit(6, c.e)
	return 8
}

// BIT 6,H
func opcodeCB0x74(c *CPU) int {
	c.bit(6, c.h)
	return 8
}

// BIT 6,L
func opcodeCB0x75(c *CPU) int {
	c.bit(6, c.l)
	return 8
}

// BIT 6,(HL)
func opcodeCB0x76(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(6, v)
	return 12
}

// BIT 6,A
func opcodeCB0x77(c *CPU) int {
	c.bit(6, c.a)
	return 8
}

// BIT 7,B
func opcodeCB0x78(c *CPU) int {
	c.bit(7, c.b)
	return 8
}

// BIT 7,C
func opcodeCB0x79(c *CPU) int {
	c.bit(7, c.cReg)
	return 8
}

// BIT 7,D
func opcodeCB0x7A(c *CPU) int {
	c.bit(7, c.d)
	return 8
}

// BIT 7,E
func opcodeCB0x7B(c *CPU) int {
	c.bit(7, c.e)
	return 8
}

// BIT 7,H
func opcodeCB0x7C(c *CPU) int {
	c.bit(7, c.h)
	return 8
}

// BIT 7,L
func opcodeCB0x7D(c *CPU) int {
	c.bit(7, c.l)
	return 8
}

// BIT 7,(HL)
func opcodeCB0x7E(c *CPU) int {
	v := c.read(c.getHL())
	c.bit(7, v)
	return 12
}

// BIT 7,A
func opcodeCB0x7F(c *CPU) int {
	c.bit(7, c.a)
	return 8
}

// RES 0,B
func opcodeCB0x80(c *CPU) int {
	c.b = c.res(0, c.b)
	return 8
}

// RES 0,C
func opcodeCB0x81(c *CPU) int {
	c.cReg = c.res(0, c.cReg)
	return 8
}

// RES 0,D
func opcodeCB0x82(c *CPU) int {
	c.d = c.res(0, c.d)
	return 8
}

// RES 0,E
func opcodeCB0x83(c *CPU) int {
	c.e = c.res(0, c.e)
	return 8
}

// RES 0,H
func opcodeCB0x84(c *CPU) int {
	c.h = c.res(0, c.h)
	return 8
}

// RES 0,L
func opcodeCB0x85(c *CPU) int {
	c.l = c.res(0, c.l)
	return 8
}

// RES 0,(HL)
func opcodeCB0x86(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(0, v)
	c.write(hl, v)
	return 16
}

// RES 0,A
func opcodeCB0x87(c *CPU) int {
	c.a = c.res(0, c.a)
	return 8
}

// RES 1,B
func opcodeCB0x88(c *CPU) int {
	c.b = c.res(1, c.b)
	return 8
}

// RES 1,C
func opcodeCB0x89(c *CPU) int {
	c.cReg = c.res(1, c.cReg)
	return 8
}

// RES 1,D
func opcodeCB0x8A(c *CPU) int {
	c.d = c.res(1, c.d)
	return 8
}

// RES 1,E
func opcodeCB0x8B(c *CPU) int {
	c.e = c.res(1, c.e)
	return 8
}

// RES 1,H
func opcodeCB0x8C(c *CPU) int {
	c.h = c.res(1, c.h)
	return 8
}

// RES 1,L
func opcodeCB0x8D(c *CPU) int {
	c.l = c.res(1, c.l)
	return 8
}

// RES 1,(HL)
func opcodeCB0x8E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(1, v)
	c.write(hl, v)
	return 16
}

// RES 1,A
func opcodeCB0x8F(c *CPU) int {
	c.a = c.res(1, c.a)
	return 8
}

// RES 2,B
func opcodeCB0x90(c *CPU) int {
	c.b = c.res(2, c.b)
	return 8
}

// RES 2,C
func opcodeCB0x91(c *CPU) int {
	c.cReg = c.res(2, c.cReg)
	return 8
}

// RES 2,D
func opcodeCB0x92(c *CPU) int {
	c.d = c.res(2, c.d)
	return 8
}

// RES 2,E
func opcodeCB0x93(c *CPU) int {
	c.e = c.res(2, c.e)
	return 8
}

// RES 2,H
func opcodeCB0x94(c *CPU) int {
	c.h = c.res(2, c.h)
	return 8
}

// RES 2,L
func opcodeCB0x95(c *CPU) int {
	c.l = c.res(2, c.l)
	return 8
}

// RES 2,(HL)
func opcodeCB0x96(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(2, v)
	c.write(hl, v)
	return 16
}

// RES 2,A
func opcodeCB0x97(c *CPU) int {
	c.a = c.res(2, c.a)
	return 8
}

// RES 3,B
func opcodeCB0x98(c *CPU) int {
	c.b = c.res(3, c.b)
	return 8
}

// RES 3,C
func opcodeCB0x99(c *CPU) int {
	c.cReg = c.res(3, c.cReg)
	return 8
}

// RES 3,D
func opcodeCB0x9A(c *CPU) int {
	c.d = c.res(3, c.d)
	return 8
}

// RES 3,E
func opcodeCB0x9B(c *CPU) int {
	c.e = c.res(3, c.e)
	return 8
}

// RES 3,H
func opcodeCB0x9C(c *CPU) int {
	c.h = c.res(3, c.h)
	return 8
}

// RES 3,L
func opcodeCB0x9D(c *CPU) int {
	c.l = c.res(3, c.l)
	return 8
}

// RES 3,(HL)
func opcodeCB0x9E(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(3, v)
	c.write(hl, v)
	return 16
}

// RES 3,A
func opcodeCB0x9F(c *CPU) int {
	c.a = c.res(3, c.a)
	return 8
}

// RES 4,B
func opcodeCB0xA0(c *CPU) int {
	c.b = c.res(4, c.b)
	return 8
}

// RES 4,C
func opcodeCB0xA1(c *CPU) int {
	c.cReg = c.res(4, c.cReg)
	return 8
}

// RES 4,D
func opcodeCB0xA2(c *CPU) int {
	c.d = c.res(4, c.d)
	return 8
}

// RES 4,E
func opcodeCB0xA3(c *CPU) int {
	c.e = c.res(4, c.e)
	return 8
}

// RES 4,H
func opcodeCB0xA4(c *CPU) int {
	c.h = c.res(4, c.h)
	return 8
}

// RES 4,L
func opcodeCB0xA5(c *CPU) int {
	c.l = c.res(4, c.l)
	return 8
}

// RES 4,(HL)
func opcodeCB0xA6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(4, v)
	c.write(hl, v)
	return 16
}

// RES 4,A
func opcodeCB0xA7(c *CPU) int {
	c.a = c.res(4, c.a)
	return 8
}

// RES 5,B
func opcodeCB0xA8(c *CPU) int {
	c.b = c.res(5, c.b)
	return 8
}

// RES 5,C
func opcodeCB0xA9(c *CPU) int {
	c.cReg = c.res(5, c.cReg)
	return 8
}

// RES 5,D
func opcodeCB0xAA(c *CPU) int {
	c.d = c.res(5, c.d)
	return 8
}

// RES 5,E
func opcodeCB0xAB(c *CPU) int {
	c.e = c.res(5, c.e)
	return 8
}

// RES 5,H
func opcodeCB0xAC(c *CPU) int {
	c.h = c.res(5, c.h)
	return 8
}

// RES 5,L
func opcodeCB0xAD(c *CPU) int {
	c.l = c.res(5, c.l)
	return 8
}

// RES 5,(HL)
func opcodeCB0xAE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(5, v)
	c.write(hl, v)
	return 16
}

// RES 5,A
func opcodeCB0xAF(c *CPU) int {
	c.a = c.res(5, c.a)
	return 8
}

// RES 6,B
func opcodeCB0xB0(c *CPU) int {
	c.b = c.res(6, c.b)
	return 8
}

// RES 6,C
func opcodeCB0xB1(c *CPU) int {
	c.cReg = c.res(6, c.cReg)
	return 8
}

// RES 6,D
func opcodeCB0xB2(c *CPU) int {
	c.d = c.res(6, c.d)
	return 8
}

// RES 6,E
func opcodeCB0xB3(c *CPU) int {
	c.e = c.res(6, c.e)
	return 8
}

// RES 6,H
func opcodeCB0xB4(c *CPU) int {
	c.h = c.res(6, c.h)
	return 8
}

// RES 6,L
func opcodeCB0xB5(c *CPU) int {
	c.l = c.res(6, c.l)
	return 8
}

// RES 6,(HL)
func opcodeCB0xB6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(6, v)
	c.write(hl, v)
	return 16
}

// RES 6,A
func opcodeCB0xB7(c *CPU) int {
	c.a = c.res(6, c.a)
	return 8
}

// RES 7,B
func opcodeCB0xB8(c *CPU) int {
	c.b = c.res(7, c.b)
	return 8
}

// RES 7,C
func opcodeCB0xB9(c *CPU) int {
	c.cReg = c.res(7, c.cReg)
	return 8
}

// RES 7,D
func opcodeCB0xBA(c *CPU) int {
	c.d = c.res(7, c.d)
	return 8
}

// RES 7,E
func opcodeCB0xBB(c *CPU) int {
	c.e = c.res(7, c.e)
	return 8
}

// RES 7,H
func opcodeCB0xBC(c *CPU) int {
	c.h = c.res(7, c.h)
	return 8
}

// RES 7,L
func opcodeCB0xBD(c *CPU) int {
	c.l = c.res(7, c.l)
	return 8
}

// RES 7,(HL)
func opcodeCB0xBE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.res(7, v)
	c.write(hl, v)
	return 16
}

// RES 7,A
func opcodeCB0xBF(c *CPU) int {
	c.a = c.res(7, c.a)
	return 8
}

// SET 0,B
func opcodeCB0xC0(c *CPU) int {
	c.b = c.set(0, c.b)
	return 8
}

// SET 0,C
func opcodeCB0xC1(c *CPU) int {
	c.cReg = c.set(0, c.cReg)
	return 8
}

// SET 0,D
func opcodeCB0xC2(c *CPU) int {
	c.d = c.set(0, c.d)
	return 8
}

// SET 0,E
func opcodeCB0xC3(c *CPU) int {
	c.e = c.set(0, c.e)
	return 8
}

// SET 0,H
func opcodeCB0xC4(c *CPU) int {
	c.h = c.set(0, c.h)
	return 8
}

// SET 0,L
func opcodeCB0xC5(c *CPU) int {
	c.l = c.set(0, c.l)
	return 8
}

// SET 0,(HL)
func opcodeCB0xC6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(0, v)
	c.write(hl, v)
	return 16
}

// SET 0,A
func opcodeCB0xC7(c *CPU) int {
	c.a = c.set(0, c.a)
	return 8
}

// SET 1,B
func opcodeCB0xC8(c *CPU) int {
	c.b = c.set(1, c.b)
	return 8
}

// SET 1,C
func opcodeCB0xC9(c *CPU) int {
	c.cReg = c.set(1, c.cReg)
	return 8
}

// SET 1,D
func opcodeCB0xCA(c *CPU) int {
	c.d = c.set(1, c.d)
	return 8
}

// SET 1,E
func opcodeCB0xCB(c *CPU) int {
	c.e = c.set(1, c.e)
	return 8
}

// SET 1,H
func opcodeCB0xCC(c *CPU) int {
	c.h = c.set(1, c.h)
	return 8
}

// SET 1,L
func opcodeCB0xCD(c *CPU) int {
	c.l = c.set(1, c.l)
	return 8
}

// SET 1,(HL)
func opcodeCB0xCE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(1, v)
	c.write(hl, v)
	return 16
}

// SET 1,A
func opcodeCB0xCF(c *CPU) int {
	c.a = c.set(1, c.a)
	return 8
}

// SET 2,B
func opcodeCB0xD0(c *CPU) int {
	c.b = c.set(2, c.b)
	return 8
}

// SET 2,C
func opcodeCB0xD1(c *CPU) int {
	c.cReg = c.set(2, c.cReg)
	return 8
}

// SET 2,D
func opcodeCB0xD2(c *CPU) int {
	c.d = c.set(2, c.d)
	return 8
}

// SET 2,E
func opcodeCB0xD3(c *CPU) int {
	c.e = c.set(2, c.e)
	return 8
}

// SET 2,H
func opcodeCB0xD4(c *CPU) int {
	c.h = c.set(2, c.h)
	return 8
}

// SET 2,L
func opcodeCB0xD5(c *CPU) int {
	c.l = c.set(2, c.l)
	return 8
}

// SET 2,(HL)
func opcodeCB0xD6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(2, v)
	c.write(hl, v)
	return 16
}

// SET 2,A
func opcodeCB0xD7(c *CPU) int {
	c.a = c.set(2, c.a)
	return 8
}

// SET 3,B
func opcodeCB0xD8(c *CPU) int {
	c.b = c.set(3, c.b)
	return 8
}

// SET 3,C
func opcodeCB0xD9(c *CPU) int {
	c.cReg = c.set(3, c.cReg)
	return 8
}

// SET 3,D
func opcodeCB0xDA(c *CPU) int {
	c.d = c.set(3, c.d)
	return 8
}

// SET 3,E
func opcodeCB0xDB(c *CPU) int {
	c.e = c.set(3, c.e)
	return 8
}

// SET 3,H
func opcodeCB0xDC(c *CPU) int {
	c.h = c.set(3, c.h)
	return 8
}

// SET 3,L
func opcodeCB0xDD(c *CPU) int {
	c.l = c.set(3, c.l)
	return 8
}

// SET 3,(HL)
func opcodeCB0xDE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(3, v)
	c.write(hl, v)
	return 16
}

// SET 3,A
func opcodeCB0xDF(c *CPU) int {
	c.a = c.set(3, c.a)
	return 8
}

// SET 4,B
func opcodeCB0xE0(c *CPU) int {
	c.b = c.set(4, c.b)
	return 8
}

// SET 4,C
func opcodeCB0xE1(c *CPU) int {
	c.cReg = c.set(4, c.cReg)
	return 8
}

// SET 4,D
func opcodeCB0xE2(c *CPU) int {
	c.d = c.set(4, c.d)
	return 8
}

// SET 4,E
func opcodeCB0xE3(c *CPU) int {
	c.e = c.set(4, c.e)
	return 8
}

// SET 4,H
func opcodeCB0xE4(c *CPU) int {
	c.h = c.set(4, c.h)
	return 8
}

// SET 4,L
func opcodeCB0xE5(c *CPU) int {
	c.l = c.set(4, c.l)
	return 8
}

// SET 4,(HL)
func opcodeCB0xE6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(4, v)
	c.write(hl, v)
	return 16
}

// SET 4,A
func opcodeCB0xE7(c *CPU) int {
	c.a = c.set(4, c.a)
	return 8
}

// SET 5,B
func opcodeCB0xE8(c *CPU) int {
	c.b = c.set(5, c.b)
	return 8
}

// SET 5,C
func opcodeCB0xE9(c *CPU) int {
	c.cReg = c.set(5, c.cReg)
	return 8
}

// SET 5,D
func opcodeCB0xEA(c *CPU) int {
	c.d = c.set(5, c.d)
	return 8
}

// SET 5,E
func opcodeCB0xEB(c *CPU) int {
	c.e = c.set(5, c.e)
	return 8
}

// SET 5,H
func opcodeCB0xEC(c *CPU) int {
	c.h = c.set(5, c.h)
	return 8
}

// SET 5,L
func opcodeCB0xED(c *CPU) int {
	c.l = c.set(5, c.l)
	return 8
}

// SET 5,(HL)
func opcodeCB0xEE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(5, v)
	c.write(hl, v)
	return 16
}

// SET 5,A
func opcodeCB0xEF(c *CPU) int {
	c.a = c.set(5, c.a)
	return 8
}

// SET 6,B
func opcodeCB0xF0(c *CPU) int {
	c.b = c.set(6, c.b)
	return 8
}

// SET 6,C
func opcodeCB0xF1(c *CPU) int {
	c.cReg = c.set(6, c.cReg)
	return 8
}

// SET 6,D
func opcodeCB0xF2(c *CPU) int {
	c.d = c.set(6, c.d)
	return 8
}

// SET 6,E
func opcodeCB0xF3(c *CPU) int {
	c.e = c.set(6, c.e)
	return 8
}

// SET 6,H
func opcodeCB0xF4(c *CPU) int {
	c.h = c.set(6, c.h)
	return 8
}

// SET 6,L
func opcodeCB0xF5(c *CPU) int {
	c.l = c.set(6, c.l)
	return 8
}

// SET 6,(HL)
func opcodeCB0xF6(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(6, v)
	c.write(hl, v)
	return 16
}

// SET 6,A
func opcodeCB0xF7(c *CPU) int {
	c.a = c.set(6, c.a)
	return 8
}

// SET 7,B
func opcodeCB0xF8(c *CPU) int {
	c.b = c.set(7, c.b)
	return 8
}

// SET 7,C
func opcodeCB0xF9(c *CPU) int {
	c.cReg = c.set(7, c.cReg)
	return 8
}

// SET 7,D
func opcodeCB0xFA(c *CPU) int {
	c.d = c.set(7, c.d)
	return 8
}

// SET 7,E
func opcodeCB0xFB(c *CPU) int {
	c.e = c.set(7, c.e)
	return 8
}

// SET 7,H
func opcodeCB0xFC(c *CPU) int {
	c.h = c.set(7, c.h)
	return 8
}

// SET 7,L
func opcodeCB0xFD(c *CPU) int {
	c.l = c.set(7, c.l)
	return 8
}

// SET 7,(HL)
func opcodeCB0xFE(c *CPU) int {
	hl := c.getHL()
	v := c.read(hl)
	v = c.set(7, v)
	c.write(hl, v)
	return 16
}

// SET 7,A
func opcodeCB0xFF(c *CPU) int {
	c.a = c.set(7, c.a)
	return 8
}

var cbDispatch = map[uint16]func(*CPU) int{
	0xCB00: opcodeCB0x00,
	0xCB01: opcodeCB0x01,
	0xCB02: opcodeCB0x02,
	0xCB03: opcodeCB0x03,
	0xCB04: opcodeCB0x04,
	0xCB05: opcodeCB0x05,
	0xCB06: opcodeCB0x06,
	0xCB07: opcodeCB0x07,
	0xCB08: opcodeCB0x08,
	0xCB09: opcodeCB0x09,
	0xCB0A: opcodeCB0x0A,
	0xCB0B: opcodeCB0x0B,
	0xCB0C: opcodeCB0x0C,
	0xCB0D: opcodeCB0x0D,
	0xCB0E: opcodeCB0x0E,
	0xCB0F: opcodeCB0x0F,
	0xCB10: opcodeCB0x10,
	0xCB11: opcodeCB0x11,
	0xCB12: opcodeCB0x12,
	0xCB13: opcodeCB0x13,
	0xCB14: opcodeCB0x14,
	0xCB15: opcodeCB0x15,
	0xCB16: opcodeCB0x16,
	0xCB17: opcodeCB0x17,
	0xCB18: opcodeCB0x18,
	0xCB19: opcodeCB0x19,
	0xCB1A: opcodeCB0x1A,
	0xCB1B: opcodeCB0x1B,
	0xCB1C: opcodeCB0x1C,
	0xCB1D: opcodeCB0x1D,
	0xCB1E: opcodeCB0x1E,
	0xCB1F: opcodeCB0x1F,
	0xCB20: opcodeCB0x20,
	0xCB21: opcodeCB0x21,
	0xCB22: opcodeCB0x22,
	0xCB23: opcodeCB0x23,
	0xCB24: opcodeCB0x24,
	0xCB25: opcodeCB0x25,
	0xCB26: opcodeCB0x26,
	0xCB27: opcodeCB0x27,
	0xCB28: opcodeCB0x28,
	0xCB29: opcodeCB0x29,
	0xCB2A: opcodeCB0x2A,
	0xCB2B: opcodeCB0x2B,
	0xCB2C: opcodeCB0x2C,
	0xCB2D: opcodeCB0x2D,
	0xCB2E: opcodeCB0x2E,
	0xCB2F: opcodeCB0x2F,
	0xCB30: opcodeCB0x30,
	0xCB31: opcodeCB0x31,
	0xCB32: opcodeCB0x32,
	0xCB33: opcodeCB0x33,
	0xCB34: opcodeCB0x34,
	0xCB35: opcodeCB0x35,
	0xCB36: opcodeCB0x36,
	0xCB37: opcodeCB0x37,
	0xCB38: opcodeCB0x38,
	0xCB39: opcodeCB0x39,
	0xCB3A: opcodeCB0x3A,
	0xCB3B: opcodeCB0x3B,
	0xCB3C: opcodeCB0x3C,
	0xCB3D: opcodeCB0x3D,
	0xCB3E: opcodeCB0x3E,
	0xCB3F: opcodeCB0x3F,
	0xCB40: opcodeCB0x40,
	0xCB41: opcodeCB0x41,
	0xCB42: opcodeCB0x42,
	0xCB43: opcodeCB0x43,
	0xCB44: opcodeCB0x44,
	0xCB45: opcodeCB0x45,
	0xCB46: opcodeCB0x46,
	0xCB47: opcodeCB0x47,
	0xCB48: opcodeCB0x48,
	0xCB49: opcodeCB0x49,
	0xCB4A: opcodeCB0x4A,
	0xCB4B: opcodeCB0x4B,
	0xCB4C: opcodeCB0x4C,
	0xCB4D: opcodeCB0x4D,
	0xCB4E: opcodeCB0x4E,
	0xCB4F: opcodeCB0x4F,
	0xCB50: opcodeCB0x50,
	0xCB51: opcodeCB0x51,
	0xCB52: opcodeCB0x52,
	0xCB53: opcodeCB0x53,
	0xCB54: opcodeCB0x54,
	0xCB55: opcodeCB0x55,
	0xCB56: opcodeCB0x56,
	0xCB57: opcodeCB0x57,
	0xCB58: opcodeCB0x58,
	0xCB59: opcodeCB0x59,
	0xCB5A: opcodeCB0x5A,
	0xCB5B: opcodeCB0x5B,
	0xCB5C: opcodeCB0x5C,
	0xCB5D: opcodeCB0x5D,
	0xCB5E: opcodeCB0x5E,
	0xCB5F: opcodeCB0x5F,
	0xCB60: opcodeCB0x60,
	0xCB61: opcodeCB0x61,
	0xCB62: opcodeCB0x62,
	0xCB63: opcodeCB0x63,
	0xCB64: opcodeCB0x64,
	0xCB65: opcodeCB0x65,
	0xCB66: opcodeCB0x66,
	0xCB67: opcodeCB0x67,
	0xCB68: opcodeCB0x68,
	0xCB69: opcodeCB0x69,
	0xCB6A: opcodeCB0x6A,
	0xCB6B: opcodeCB0x6B,
	0xCB6C: opcodeCB0x6C,
	0xCB6D: opcodeCB0x6D,
	0xCB6E: opcodeCB0x6E,
	0xCB6F: opcodeCB0x6F,
	0xCB70: opcodeCB0x70,
	0xCB71: opcodeCB0x71,
	0xCB72: opcodeCB0x72,
	0xCB73: opcodeCB0x73,
	0xCB74: opcodeCB0x74,
	0xCB75: opcodeCB0x75,
	0xCB76: opcodeCB0x76,
	0xCB77: opcodeCB0x77,
	0xCB78: opcodeCB0x78,
	0xCB79: opcodeCB0x79,
	0xCB7A: opcodeCB0x7A,
	0xCB7B: opcodeCB0x7B,
	0xCB7C: opcodeCB0x7C,
	0xCB7D: opcodeCB0x7D,
	0xCB7E: opcodeCB0x7E,
	0xCB7F: opcodeCB0x7F,
	0xCB80: opcodeCB0x80,
	0xCB81: opcodeCB0x81,
	0xCB82: opcodeCB0x82,
	0xCB83: opcodeCB0x83,
	0xCB84: opcodeCB0x84,
	0xCB85: opcodeCB0x85,
	0xCB86: opcodeCB0x86,
	0xCB87: opcodeCB0x87,
	0xCB88: opcodeCB0x88,
	0xCB89: opcodeCB0x89,
	0xCB8A: opcodeCB0x8A,
	0xCB8B: opcodeCB0x8B,
	0xCB8C: opcodeCB0x8C,
	0xCB8D: opcodeCB0x8D,
	0xCB8E: opcodeCB0x8E,
	0xCB8F: opcodeCB0x8F,
	0xCB90: opcodeCB0x90,
	0xCB91: opcodeCB0x91,
	0xCB92: opcodeCB0x92,
	0xCB93: opcodeCB0x93,
	0xCB94: opcodeCB0x94,
	0xCB95: opcodeCB0x95,
	0xCB96: opcodeCB0x96,
	0xCB97: opcodeCB0x97,
	0xCB98: opcodeCB0x98,
	0xCB99: opcodeCB0x99,
	0xCB9A: opcodeCB0x9A,
	0xCB9B: opcodeCB0x9B,
	0xCB9C: opcodeCB0x9C,
	0xCB9D: opcodeCB0x9D,
	0xCB9E: opcodeCB0x9E,
	0xCB9F: opcodeCB0x9F,
	0xCBA0: opcodeCB0xA0,
	0xCBA1: opcodeCB0xA1,
	0xCBA2: opcodeCB0xA2,
	0xCBA3: opcodeCB0xA3,
	0xCBA4: opcodeCB0xA4,
	0xCBA5: opcodeCB0xA5,
	0xCBA6: opcodeCB0xA6,
	0xCBA7: opcodeCB0xA7,
	0xCBA8: opcodeCB0xA8,
	0xCBA9: opcodeCB0xA9,
	0xCBAA: opcodeCB0xAA,
	0xCBAB: opcodeCB0xAB,
	0xCBAC: opcodeCB0xAC,
	0xCBAD: opcodeCB0xAD,
	0xCBAE: opcodeCB0xAE,
	0xCBAF: opcodeCB0xAF,
	0xCBB0: opcodeCB0xB0,
	0xCBB1: opcodeCB0xB1,
	0xCBB2: opcodeCB0xB2,
	0xCBB3: opcodeCB0xB3,
	0xCBB4: opcodeCB0xB4,
	0xCBB5: opcodeCB0xB5,
	0xCBB6: opcodeCB0xB6,
	0xCBB7: opcodeCB0xB7,
	0xCBB8: opcodeCB0xB8,
	0xCBB9: opcodeCB0xB9,
	0xCBBA: opcodeCB0xBA,
	0xCBBB: opcodeCB0xBB,
	0xCBBC: opcodeCB0xBC,
	0xCBBD: opcodeCB0xBD,
	0xCBBE: opcodeCB0xBE,
	0xCBBF: opcodeCB0xBF,
	0xCBC0: opcodeCB0xC0,
	0xCBC1: opcodeCB0xC1,
	0xCBC2: opcodeCB0xC2,
	0xCBC3: opcodeCB0xC3,
	0xCBC4: opcodeCB0xC4,
	0xCBC5: opcodeCB0xC5,
	0xCBC6: opcodeCB0xC6,
	0xCBC7: opcodeCB0xC7,
	0xCBC8: opcodeCB0xC8,
	0xCBC9: opcodeCB0xC9,
	0xCBCA: opcodeCB0xCA,
	0xCBCB: opcodeCB0xCB,
	0xCBCC: opcodeCB0xCC,
	0xCBCD: opcodeCB0xCD,
	0xCBCE: opcodeCB0xCE,
	0xCBCF: opcodeCB0xCF,
	0xCBD0: opcodeCB0xD0,
	0xCBD1: opcodeCB0xD1,
	0xCBD2: opcodeCB0xD2,
	0xCBD3: opcodeCB0xD3,
	0xCBD4: opcodeCB0xD4,
	0xCBD5: opcodeCB0xD5,
	0xCBD6: opcodeCB0xD6,
	0xCBD7: opcodeCB0xD7,
	0xCBD8: opcodeCB0xD8,
	0xCBD9: opcodeCB0xD9,
	0xCBDA: opcodeCB0xDA,
	0xCBDB: opcodeCB0xDB,
	0xCBDC: opcodeCB0xDC,
	0xCBDD: opcodeCB0xDD,
	0xCBDE: opcodeCB0xDE,
	0xCBDF: opcodeCB0xDF,
	0xCBE0: opcodeCB0xE0,
	0xCBE1: opcodeCB0xE1,
	0xCBE2: opcodeCB0xE2,
	0xCBE3: opcodeCB0xE3,
	0xCBE4: opcodeCB0xE4,
	0xCBE5: opcodeCB0xE5,
	0xCBE6: opcodeCB0xE6,
	0xCBE7: opcodeCB0xE7,
	0xCBE8: opcodeCB0xE8,
	0xCBE9: opcodeCB0xE9,
	0xCBEA: opcodeCB0xEA,
	0xCBEB: opcodeCB0xEB,
	0xCBEC: opcodeCB0xEC,
	0xCBED: opcodeCB0xED,
	0xCBEE: opcodeCB0xEE,
	0xCBEF: opcodeCB0xEF,
	0xCBF0: opcodeCB0xF0,
	0xCBF1: opcodeCB0xF1,
	0xCBF2: opcodeCB0xF2,
	0xCBF3: opcodeCB0xF3,
	0xCBF4: opcodeCB0xF4,
	0xCBF5: opcodeCB0xF5,
	0xCBF6: opcodeCB0xF6,
	0xCBF7: opcodeCB0xF7,
	0xCBF8: opcodeCB0xF8,
	0xCBF9: opcodeCB0xF9,
	0xCBFA: opcodeCB0xFA,
	0xCBFB: opcodeCB0xFB,
	0xCBFC: opcodeCB0xFC,
	0xCBFD: opcodeCB0xFD,
	0xCBFE: opcodeCB0xFE,
	0xCBFF: opcodeCB0xFF,
}
