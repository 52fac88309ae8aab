package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// Object is one inventory-style object: an icon, a script, and a set of
// flags. Objects are stored contiguously inside archive 1's
// CHUNK_OBJECTS payload, one per icon declared in GameVariables.
type Object struct {
	Handle catalog.Handle

	ID        uint32
	IconFilm  catalog.Handle
	Script    catalog.Handle
	Attribute uint32
	reserved  uint32
	NotClue   uint32
}

const objectSize = 24

// ParseObjects decodes numIcons fixed-width Object records from a
// CHUNK_OBJECTS payload.
func ParseObjects(payload []byte, numIcons uint32) ([]Object, error) {
	r := bio.NewReader(payload)
	out := make([]Object, 0, numIcons)
	for i := uint32(0); i < numIcons; i++ {
		var o Object
		o.Handle = catalog.Handle(i * objectSize)
		id, err1 := r.ReadU32()
		iconFilm, err2 := r.ReadU32()
		script, err3 := r.ReadU32()
		attr, err4 := r.ReadU32()
		resv, err5 := r.ReadU32()
		notClue, err6 := r.ReadU32()
		if err := firstErr(err1, err2, err3, err4, err5, err6); err != nil {
			return nil, fmt.Errorf("records: decoding object %d: %w", i, err)
		}
		o.ID = id
		o.IconFilm = catalog.Handle(iconFilm)
		o.Script = catalog.Handle(script)
		o.Attribute = attr
		o.reserved = resv
		o.NotClue = notClue
		out = append(out, o)
	}
	return out, nil
}

// ObjectsOfChunk finds and decodes the CHUNK_OBJECTS record inside an
// archive's chunk list.
func ObjectsOfChunk(chunks []catalog.Chunk, numIcons uint32) ([]Object, bool, error) {
	for _, c := range chunks {
		if c.Type == catalog.ChunkObjects {
			objs, err := ParseObjects(c.Data, numIcons)
			if err != nil {
				return nil, false, err
			}
			return objs, true, nil
		}
	}
	return nil, false, nil
}
