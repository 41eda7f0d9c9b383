package cpu

// Decode splits word into its operands and identifies the operation it
// encodes. ok is false if word is not a CHIP-8 instruction, in which
// case the operands are still populated.
func Decode(word uint16) (i Instruction, ok bool) {
	i = Instruction{
		Op:   opCount,
		Word: word,
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		KK:   uint8(word),
		NNN:  word & 0x0FFF,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			i.Op = OpCLS
		case 0x00EE:
			i.Op = OpRET
		default:
			return i, false
		}
	case 0x1:
		i.Op = OpJP
	case 0x2:
		i.Op = OpCALL
	case 0x3:
		i.Op = OpSEImm
	case 0x4:
		i.Op = OpSNEImm
	case 0x5:
		if i.N != 0 {
			return i, false
		}
		i.Op = OpSEReg
	case 0x6:
		i.Op = OpLDImm
	case 0x7:
		i.Op = OpADDImm
	case 0x8:
		switch i.N {
		case 0x0:
			i.Op = OpLDReg
		case 0x1:
			i.Op = OpOR
		case 0x2:
			i.Op = OpAND
		case 0x3:
			i.Op = OpXOR
		case 0x4:
			i.Op = OpADD
		case 0x5:
			i.Op = OpSUB
		case 0x6:
			i.Op = OpSHR
		case 0x7:
			i.Op = OpSUBN
		case 0xE:
			i.Op = OpSHL
		default:
			return i, false
		}
	case 0x9:
		if i.N != 0 {
			return i, false
		}
		i.Op = OpSNEReg
	case 0xA:
		i.Op = OpLDI
	case 0xB:
		i.Op = OpJPV0
	case 0xC:
		i.Op = OpRND
	case 0xD:
		i.Op = OpDRW
	case 0xE:
		switch i.KK {
		case 0x9E:
			i.Op = OpSKP
		case 0xA1:
			i.Op = OpSKNP
		default:
			return i, false
		}
	case 0xF:
		switch i.KK {
		case 0x07:
			i.Op = OpLDVxDT
		case 0x0A:
			i.Op = OpLDVxK
		case 0x15:
			i.Op = OpLDDTVx
		case 0x18:
			i.Op = OpLDSTVx
		case 0x1E:
			i.Op = OpADDI
		case 0x29:
			i.Op = OpLDF
		case 0x33:
			i.Op = OpLDB
		case 0x55:
			i.Op = OpLDIVx
		case 0x65:
			i.Op = OpLDVxI
		default:
			return i, false
		}
	}

	return i, true
}
