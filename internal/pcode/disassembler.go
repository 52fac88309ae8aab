// Package pcode disassembles Pcode VM bytecode: the general-purpose
// scripting bytecode used for master/global/object/scene/entrance/poly
// /actor scripts. It is a pure decoder with no archive dependency.
package pcode

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
)

// Line is one decoded Pcode instruction.
type Line struct {
	IP          uint32
	Opcode      Opcode
	OpcodeName  string
	HasArgument bool
	Argument    uint32
	ArgumentStr string
	Unknown     bool
}

// fetch reads an instruction's immediate, whose encoded width is
// selected by the high two bits of the raw opcode byte: 0x40 selects a
// single byte, 0x80 selects a 16-bit word, and anything else selects a
// full 32-bit word.
func fetch(raw uint8, r *bio.Reader) (uint32, error) {
	switch {
	case raw&0x40 != 0:
		v, err := r.ReadU8()
		return uint32(v), err
	case raw&0x80 != 0:
		v, err := r.ReadU16()
		return uint32(v), err
	default:
		return r.ReadU32()
	}
}

func unknownLibCallName(arg uint32) string {
	return fmt.Sprintf("LIBCALL_%#x", arg)
}

// Disassemble decodes code until OP_HALT or a truncated read is
// reached. Unknown opcodes are rendered as a "???" line and do not
// stop disassembly.
func Disassemble(code []byte) ([]Line, error) {
	r := bio.NewReader(code)
	var lines []Line

	for {
		ip := uint32(r.Pos())
		rawByte, err := r.ReadU8()
		if err != nil {
			return lines, fmt.Errorf("pcode: reading opcode at %d: %w", ip, err)
		}
		opcode := Opcode(rawByte & opcodeMask)

		switch {
		case opcode == OpHalt:
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode]})
			return lines, nil

		case noArgOpcodes[opcode]:
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode]})

		case argOpcodes[opcode]:
			arg, err := fetch(rawByte, r)
			if err != nil {
				return lines, fmt.Errorf("pcode: reading argument for %s at %d: %w", opcodeNames[opcode], ip, err)
			}
			line := Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode], HasArgument: true, Argument: arg}
			if opcode == OpLibCall {
				line.ArgumentStr = libCallName(arg)
			} else {
				line.ArgumentStr = fmt.Sprintf("%x; = %d", arg, arg)
			}
			lines = append(lines, line)

		default:
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: "???", Unknown: true})
		}
	}
}
