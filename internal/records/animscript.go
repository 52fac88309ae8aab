package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/animscript"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// AnimLine is one disassembled AnimScript instruction, enriched with
// its resolved frame list when it references one.
type AnimLine struct {
	animscript.Line
	Frame Frames
}

// AnimScript is a disassembled per-reel animation script.
type AnimScript struct {
	Handle catalog.Handle
	Lines  []AnimLine
}

// ParseAnimScript disassembles the script at handle. Frame-reference
// lines are resolved into their Frames eagerly, unless sound is true —
// a sound reel's "frame" values are sample identifiers, not image
// frames, and resolving them as frame lists would misread the catalog.
func ParseAnimScript(mem MemoryResolver, handle catalog.Handle, sound bool) (AnimScript, error) {
	data, err := mem.GetMemory(handle)
	if err != nil {
		return AnimScript{}, fmt.Errorf("records: resolving anim script %#08x: %w", uint32(handle), err)
	}
	lines, err := animscript.Disassemble(data)
	if err != nil {
		return AnimScript{}, fmt.Errorf("records: disassembling anim script %#08x: %w", uint32(handle), err)
	}

	out := AnimScript{Handle: handle}
	for _, l := range lines {
		al := AnimLine{Line: l}
		if l.IsFrame && !sound {
			frames, err := ParseFrames(mem, catalog.Handle(l.FrameHandle))
			if err != nil {
				return AnimScript{}, err
			}
			al.Frame = frames
		}
		out.Lines = append(out.Lines, al)
	}
	return out, nil
}
