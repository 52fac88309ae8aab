package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// soundMultiID is the MultiInit identity value that marks a reel as a
// sound reel: its AnimScript frame values are sample IDs rather than
// image frame handles.
const soundMultiID = -2

// Reel is one layer of a Film: a moving-object placement plus the
// animation script driving it.
type Reel struct {
	Handle     uint32
	Mobj       catalog.Handle
	Script     catalog.Handle
	Obj        MultiInit
	AnimScript AnimScript
}

// Film is a sequence of reels played at a fixed rate.
type Film struct {
	Handle    catalog.Handle
	FrameRate uint32
	Reels     []Reel
}

// ParseFilm decodes a Film and recursively resolves every reel's
// MultiInit and AnimScript.
func ParseFilm(mem MemoryResolver, handle catalog.Handle) (Film, error) {
	data, err := mem.GetMemory(handle)
	if err != nil {
		return Film{}, fmt.Errorf("records: resolving film %#08x: %w", uint32(handle), err)
	}
	r := bio.NewReader(data)

	frameRate, err1 := r.ReadU32()
	numReels, err2 := r.ReadU32()
	if err := firstErr(err1, err2); err != nil {
		return Film{}, fmt.Errorf("records: decoding film header %#08x: %w", uint32(handle), err)
	}

	film := Film{Handle: handle, FrameRate: frameRate, Reels: make([]Reel, 0, numReels)}

	for i := uint32(0); i < numReels; i++ {
		mobj, err1 := r.ReadU32()
		script, err2 := r.ReadU32()
		if err := firstErr(err1, err2); err != nil {
			return Film{}, fmt.Errorf("records: decoding reel %d header: %w", i, err)
		}

		reel := Reel{Handle: i, Mobj: catalog.Handle(mobj), Script: catalog.Handle(script)}

		obj, err := ParseMultiInit(mem, reel.Mobj)
		if err != nil {
			return Film{}, fmt.Errorf("records: reel %d: %w", i, err)
		}
		reel.Obj = obj

		anim, err := ParseAnimScript(mem, reel.Script, obj.MulID == soundMultiID)
		if err != nil {
			return Film{}, fmt.Errorf("records: reel %d: %w", i, err)
		}
		reel.AnimScript = anim

		film.Reels = append(film.Reels, reel)
	}

	return film, nil
}
