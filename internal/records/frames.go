package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// Frames is a contiguous run of Image handles, terminated by a zero
// handle or one whose archive component falls outside the loaded
// catalog.
type Frames struct {
	Handle catalog.Handle
	Images []Image
}

// ParseFrames walks a frame-handle list starting at handle, resolving
// each Image in turn.
func ParseFrames(mem MemoryResolver, handle catalog.Handle) (Frames, error) {
	data, err := mem.GetMemory(handle)
	if err != nil {
		return Frames{}, fmt.Errorf("records: resolving frames %#08x: %w", uint32(handle), err)
	}
	r := bio.NewReader(data)

	f := Frames{Handle: handle}
	archiveCount := mem.Size()

	for {
		raw, err := r.ReadU32()
		if err != nil {
			// A truncated frame list ends the run rather than failing
			// the whole parse, mirroring the original's pointer walk
			// which simply stops reading once memory runs out.
			break
		}
		frameHandle := catalog.Handle(raw)
		if frameHandle == 0 || frameHandle.Archive() >= archiveCount {
			break
		}
		img, err := ParseImage(mem, frameHandle)
		if err != nil {
			return Frames{}, err
		}
		f.Images = append(f.Images, img)
	}

	return f, nil
}
