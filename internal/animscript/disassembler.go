// Package animscript disassembles AnimScript bytecode: the per-reel
// script that drives frame display and flip/offset adjustments inside a
// Film. It is a pure decoder — it never resolves frame handles itself,
// so it carries no dependency on the archive catalog.
package animscript

import (
	"fmt"
	"strconv"

	"github.com/tinselkit/tinsel/internal/bio"
)

// Opcode is one of the twelve AnimScript instructions. Any u32 value of
// 12 or greater read in opcode position is not an opcode at all — it is
// a frame handle, per the engine's fixed frame-handle floor.
type Opcode uint32

const (
	OpEnd Opcode = iota
	OpJump
	OpHFlip
	OpVFlip
	OpHVFlip
	OpAdjustX
	OpAdjustY
	OpAdjustXY
	OpNoSleep
	OpCall
	OpHide
	OpStop
)

var opcodeNames = [...]string{
	"ANI_END", "ANI_JUMP", "ANI_HFLIP", "ANI_VFLIP", "ANI_HVFLIP",
	"ANI_ADJUSTX", "ANI_ADJUSTY", "ANI_ADJUSTXY", "ANI_NOSLEEP",
	"ANI_CALL", "ANI_HIDE", "ANI_STOP",
}

// frameHandleFloor is the lowest value that can never be a valid
// opcode; anything at or above it read in opcode position is a frame
// handle instead.
const frameHandleFloor = 12

// Line is one decoded AnimScript instruction, or a frame reference
// interleaved between instructions.
type Line struct {
	IP uint32

	IsFrame     bool
	FrameHandle uint32

	Opcode     Opcode
	OpcodeName string
	Argument   string
}

// Disassemble decodes code until ANI_END, a negative ANI_JUMP, or a
// truncated read is reached.
func Disassemble(code []byte) ([]Line, error) {
	r := bio.NewReader(code)
	var lines []Line

	for {
		ip := uint32(r.Pos())
		raw, err := r.ReadU32()
		if err != nil {
			return lines, fmt.Errorf("animscript: reading opcode at %d: %w", ip, err)
		}

		if raw >= frameHandleFloor {
			lines = append(lines, Line{IP: ip, IsFrame: true, FrameHandle: raw, OpcodeName: "frame"})
			continue
		}

		opcode := Opcode(raw)
		halt := false

		switch opcode {
		case OpEnd:
			halt = true
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode]})

		case OpHFlip, OpVFlip, OpHVFlip, OpNoSleep, OpCall, OpHide, OpStop:
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode]})

		case OpJump:
			jump, err := r.ReadI32()
			if err != nil {
				return lines, fmt.Errorf("animscript: reading jump argument at %d: %w", ip, err)
			}
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode], Argument: strconv.Itoa(int(jump))})
			if jump < 0 {
				// A negative jump just repeats the animation; treat it
				// as the end of the decodable script.
				halt = true
				break
			}
			if err := r.Skip(int(jump) * 4); err != nil {
				halt = true
			}

		case OpAdjustX, OpAdjustY:
			v, err := r.ReadI32()
			if err != nil {
				return lines, fmt.Errorf("animscript: reading adjust argument at %d: %w", ip, err)
			}
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode], Argument: strconv.Itoa(int(v))})

		case OpAdjustXY:
			x, err := r.ReadI32()
			if err != nil {
				return lines, fmt.Errorf("animscript: reading adjustxy x at %d: %w", ip, err)
			}
			y, err := r.ReadI32()
			if err != nil {
				return lines, fmt.Errorf("animscript: reading adjustxy y at %d: %w", ip, err)
			}
			lines = append(lines, Line{IP: ip, Opcode: opcode, OpcodeName: opcodeNames[opcode], Argument: fmt.Sprintf("%d, %d", x, y)})
		}

		if halt {
			break
		}
	}

	return lines, nil
}
