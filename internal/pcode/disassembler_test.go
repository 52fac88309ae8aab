package pcode

import "testing"

func TestDisassembleHaltOnly(t *testing.T) {
	code := []byte{byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].OpcodeName != "OP_HALT" {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestDisassembleImmWithByteWidth(t *testing.T) {
	// OP_IMM (2) with the 0x40 width bit set reads a single byte.
	code := []byte{byte(OpImm) | 0x40, 0x05, byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !lines[0].HasArgument || lines[0].Argument != 5 {
		t.Fatalf("lines[0] = %+v", lines[0])
	}
}

func TestDisassembleImmWithWordWidth(t *testing.T) {
	// 0x80 width bit selects a 16-bit little-endian immediate.
	code := []byte{byte(OpImm) | 0x80, 0x34, 0x12, byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Argument != 0x1234 {
		t.Fatalf("argument = %#x, want 0x1234", lines[0].Argument)
	}
}

func TestDisassembleImmWithLongWidth(t *testing.T) {
	// Neither width bit set selects a full 32-bit little-endian immediate.
	code := []byte{byte(OpImm), 0x78, 0x56, 0x34, 0x12, byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Argument != 0x12345678 {
		t.Fatalf("argument = %#x, want 0x12345678", lines[0].Argument)
	}
}

func TestDisassembleLibCallResolvesName(t *testing.T) {
	code := []byte{byte(OpLibCall), 0x01, 0x00, 0x00, 0x00, byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].ArgumentStr != "ACTORBRIGHTNESS" {
		t.Fatalf("argumentStr = %q", lines[0].ArgumentStr)
	}
}

func TestDisassembleUnknownOpcodeDoesNotHalt(t *testing.T) {
	// 0x2F is above the 44 defined opcodes and not OP_HALT.
	code := []byte{0x2F, byte(OpHalt)}
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !lines[0].Unknown || lines[0].OpcodeName != "???" {
		t.Fatalf("lines[0] = %+v", lines[0])
	}
	if lines[1].OpcodeName != "OP_HALT" {
		t.Fatalf("lines[1] = %+v", lines[1])
	}
}
