package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// MultiInit is a moving object's initial placement and state: its frame
// list, flags, identity, and starting coordinates.
type MultiInit struct {
	Handle catalog.Handle

	MulFrame   catalog.Handle
	MulFlags   int32
	MulID      int32
	MulX       int32
	MulY       int32
	MulZ       int32
	OtherFlags uint32

	Frames Frames
}

// ParseMultiInit decodes a MultiInit record and, if it references a
// frame list, resolves it eagerly.
func ParseMultiInit(mem MemoryResolver, handle catalog.Handle) (MultiInit, error) {
	data, err := mem.GetMemory(handle)
	if err != nil {
		return MultiInit{}, fmt.Errorf("records: resolving multi init %#08x: %w", uint32(handle), err)
	}
	r := bio.NewReader(data)

	var mi MultiInit
	mi.Handle = handle

	mulFrame, err1 := r.ReadU32()
	mulFlags, err2 := r.ReadI32()
	mulID, err3 := r.ReadI32()
	mulX, err4 := r.ReadI32()
	mulY, err5 := r.ReadI32()
	mulZ, err6 := r.ReadI32()
	otherFlags, err7 := r.ReadU32()
	if err := firstErr(err1, err2, err3, err4, err5, err6, err7); err != nil {
		return MultiInit{}, fmt.Errorf("records: decoding multi init %#08x: %w", uint32(handle), err)
	}

	mi.MulFrame = catalog.Handle(mulFrame)
	mi.MulFlags = mulFlags
	mi.MulID = mulID
	mi.MulX = mulX
	mi.MulY = mulY
	mi.MulZ = mulZ
	mi.OtherFlags = otherFlags

	if mi.MulFrame != 0 {
		frames, err := ParseFrames(mem, mi.MulFrame)
		if err != nil {
			return MultiInit{}, err
		}
		mi.Frames = frames
	}

	return mi, nil
}
