package animscript

import (
	"testing"

	"github.com/tinselkit/tinsel/internal/testutil"
)

func opBytes(op uint32) []byte { return testutil.PutU32(nil, op) }

func TestDisassembleEndOnly(t *testing.T) {
	code := opBytes(uint32(OpEnd))
	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].OpcodeName != "ANI_END" {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestDisassembleFrameHandleInterleaved(t *testing.T) {
	var code []byte
	code = append(code, opBytes(12)...) // frame handle
	code = append(code, opBytes(uint32(OpEnd))...)

	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !lines[0].IsFrame || lines[0].FrameHandle != 12 {
		t.Fatalf("lines[0] = %+v", lines[0])
	}
	if lines[1].OpcodeName != "ANI_END" {
		t.Fatalf("lines[1] = %+v", lines[1])
	}
}

func TestDisassembleNegativeJumpHalts(t *testing.T) {
	var code []byte
	code = append(code, opBytes(uint32(OpJump))...)
	code = testutil.PutI32(code, -1)

	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Argument != "-1" {
		t.Fatalf("lines = %+v", lines)
	}
}

func TestDisassembleAdjustXY(t *testing.T) {
	var code []byte
	code = append(code, opBytes(uint32(OpAdjustXY))...)
	code = testutil.PutI32(code, 3)
	code = testutil.PutI32(code, -4)
	code = append(code, opBytes(uint32(OpEnd))...)

	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Argument != "3, -4" {
		t.Fatalf("argument = %q", lines[0].Argument)
	}
}

func TestDisassemblePositiveJumpSkipsForward(t *testing.T) {
	var code []byte
	code = append(code, opBytes(uint32(OpJump))...)
	code = testutil.PutI32(code, 1) // skip 4 bytes (one opcode slot)
	code = append(code, opBytes(uint32(OpHide))...)
	code = append(code, opBytes(uint32(OpEnd))...)

	lines, err := Disassemble(code)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2 (jump, end) after skipping OpHide", len(lines))
	}
	if lines[1].OpcodeName != "ANI_END" {
		t.Fatalf("lines[1] = %+v", lines[1])
	}
}
