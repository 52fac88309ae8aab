package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// MemoryResolver resolves a Handle to its underlying archive bytes,
// lazily loading the target archive if necessary. *catalog.Catalog
// satisfies this.
type MemoryResolver interface {
	GetMemory(h catalog.Handle) ([]byte, error)
	Size() int
}

// Entrance is one scene entry point: a numbered entry with its own
// optional script.
type Entrance struct {
	Handle   catalog.Handle
	Number   uint32
	Script   catalog.Handle
	Desc     catalog.Handle
	Flags    uint32
}

const entranceSize = 16

// Poly is one walk-area/path/tagged polygon in a scene.
type Poly struct {
	Handle catalog.Handle

	Type      uint32
	X, Y      [4]uint32
	XOff      uint32
	YOff      uint32
	ID        uint32
	reservedWs uint32
	Field     uint32
	RefType   uint32
	TagX, TagY uint32
	TagText   catalog.Handle
	NodeX, NodeY uint32
	Film      catalog.Handle
	Scale1, Scale2 uint32
	Level1, Level2 uint32
	Bright1, Bright2 uint32
	ReelType  uint32
	ZFactor   uint32
	NodeCount uint32
	NodeListX uint32
	NodeListY uint32
	LineList  uint32
	Script    catalog.Handle
}

const polySize = 34 * 4

// Actor is one scene-tagged actor.
type Actor struct {
	Handle catalog.Handle

	ID           uint32
	TagText      catalog.Handle
	TagPortionV  uint32
	TagPortionH  uint32
	ActorCode    catalog.Handle
	TagFlags     uint32
	OverrideTag  catalog.Handle
}

const actorSize = 28

// Scene is the fixed-width per-archive record describing one game
// scene: its entrances, walk polygons, and tagged actors.
type Scene struct {
	Handle catalog.Handle

	DefRefer      uint32
	SceneScript   catalog.Handle
	SceneDesc     catalog.Handle
	NumEntrance   uint32
	Entrance      catalog.Handle
	NumCameras    uint32
	Camera        catalog.Handle
	NumLights     uint32
	Light         catalog.Handle
	NumPoly       uint32
	Poly          catalog.Handle
	NumTaggedActor uint32
	TaggedActor   catalog.Handle
	NumProcess    uint32
	Process       catalog.Handle
	MusicScript   catalog.Handle
	MusicSegment  catalog.Handle

	Entrances []Entrance
	Polys     []Poly
	Actors    []Actor
}

// ParseScene decodes a CHUNK_SCENE payload into a Scene, then resolves
// its variable-length entrance/poly/actor tables through mem.
func ParseScene(mem MemoryResolver, handle catalog.Handle, payload []byte) (Scene, error) {
	r := bio.NewReader(payload)
	var s Scene
	s.Handle = handle

	readField := func(dst *uint32) error {
		v, err := r.ReadU32()
		*dst = v
		return err
	}
	readHandle := func(dst *catalog.Handle) error {
		v, err := r.ReadU32()
		*dst = catalog.Handle(v)
		return err
	}

	for _, step := range []func() error{
		func() error { return readField(&s.DefRefer) },
		func() error { return readHandle(&s.SceneScript) },
		func() error { return readHandle(&s.SceneDesc) },
		func() error { return readField(&s.NumEntrance) },
		func() error { return readHandle(&s.Entrance) },
		func() error { return readField(&s.NumCameras) },
		func() error { return readHandle(&s.Camera) },
		func() error { return readField(&s.NumLights) },
		func() error { return readHandle(&s.Light) },
		func() error { return readField(&s.NumPoly) },
		func() error { return readHandle(&s.Poly) },
		func() error { return readField(&s.NumTaggedActor) },
		func() error { return readHandle(&s.TaggedActor) },
		func() error { return readField(&s.NumProcess) },
		func() error { return readHandle(&s.Process) },
		func() error { return readHandle(&s.MusicScript) },
		func() error { return readHandle(&s.MusicSegment) },
	} {
		if err := step(); err != nil {
			return Scene{}, fmt.Errorf("records: decoding scene header: %w", err)
		}
	}

	if s.NumEntrance != 0 && !s.Entrance.IsNull() {
		entrances, err := parseEntrances(mem, s.Entrance, s.NumEntrance)
		if err != nil {
			return Scene{}, err
		}
		s.Entrances = entrances
	}
	if s.NumPoly != 0 && !s.Poly.IsNull() {
		polys, err := parsePolys(mem, s.Poly, s.NumPoly)
		if err != nil {
			return Scene{}, err
		}
		s.Polys = polys
	}
	if s.NumTaggedActor != 0 && !s.TaggedActor.IsNull() {
		actors, err := parseActors(mem, s.TaggedActor, s.NumTaggedActor)
		if err != nil {
			return Scene{}, err
		}
		s.Actors = actors
	}

	return s, nil
}

func parseEntrances(mem MemoryResolver, base catalog.Handle, count uint32) ([]Entrance, error) {
	data, err := mem.GetMemory(base)
	if err != nil {
		return nil, fmt.Errorf("records: resolving entrance table: %w", err)
	}
	r := bio.NewReader(data)
	out := make([]Entrance, 0, count)
	for i := uint32(0); i < count; i++ {
		var e Entrance
		e.Handle = catalog.Handle(uint32(base) + i*entranceSize)
		num, err1 := r.ReadU32()
		script, err2 := r.ReadU32()
		desc, err3 := r.ReadU32()
		flags, err4 := r.ReadU32()
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("records: decoding entrance %d: %w", i, err)
		}
		e.Number = num
		e.Script = catalog.Handle(script)
		e.Desc = catalog.Handle(desc)
		e.Flags = flags
		out = append(out, e)
	}
	return out, nil
}

func parsePolys(mem MemoryResolver, base catalog.Handle, count uint32) ([]Poly, error) {
	data, err := mem.GetMemory(base)
	if err != nil {
		return nil, fmt.Errorf("records: resolving poly table: %w", err)
	}
	r := bio.NewReader(data)
	out := make([]Poly, 0, count)
	for i := uint32(0); i < count; i++ {
		var p Poly
		p.Handle = catalog.Handle(uint32(base) + i*polySize)
		fields := []*uint32{
			&p.Type,
			&p.X[0], &p.X[1], &p.X[2], &p.X[3],
			&p.Y[0], &p.Y[1], &p.Y[2], &p.Y[3],
			&p.XOff, &p.YOff, &p.ID, &p.reservedWs, &p.Field, &p.RefType,
			&p.TagX, &p.TagY,
		}
		for _, f := range fields {
			v, err := r.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
			}
			*f = v
		}
		tagText, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
		}
		p.TagText = catalog.Handle(tagText)
		rest := []*uint32{&p.NodeX, &p.NodeY}
		for _, f := range rest {
			v, err := r.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
			}
			*f = v
		}
		film, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
		}
		p.Film = catalog.Handle(film)
		rest2 := []*uint32{
			&p.Scale1, &p.Scale2, &p.Level1, &p.Level2,
			&p.Bright1, &p.Bright2, &p.ReelType, &p.ZFactor,
			&p.NodeCount, &p.NodeListX, &p.NodeListY, &p.LineList,
		}
		for _, f := range rest2 {
			v, err := r.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
			}
			*f = v
		}
		script, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("records: decoding poly %d: %w", i, err)
		}
		p.Script = catalog.Handle(script)
		out = append(out, p)
	}
	return out, nil
}

func parseActors(mem MemoryResolver, base catalog.Handle, count uint32) ([]Actor, error) {
	data, err := mem.GetMemory(base)
	if err != nil {
		return nil, fmt.Errorf("records: resolving actor table: %w", err)
	}
	r := bio.NewReader(data)
	out := make([]Actor, 0, count)
	for i := uint32(0); i < count; i++ {
		var a Actor
		a.Handle = catalog.Handle(uint32(base) + i*actorSize)
		id, err1 := r.ReadU32()
		tagText, err2 := r.ReadU32()
		tagV, err3 := r.ReadU32()
		tagH, err4 := r.ReadU32()
		code, err5 := r.ReadU32()
		flags, err6 := r.ReadU32()
		overrideTag, err7 := r.ReadU32()
		if err := firstErr(err1, err2, err3, err4, err5, err6, err7); err != nil {
			return nil, fmt.Errorf("records: decoding actor %d: %w", i, err)
		}
		a.ID = id
		a.TagText = catalog.Handle(tagText)
		a.TagPortionV = tagV
		a.TagPortionH = tagH
		a.ActorCode = catalog.Handle(code)
		a.TagFlags = flags
		a.OverrideTag = catalog.Handle(overrideTag)
		out = append(out, a)
	}
	return out, nil
}

func firstErr(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// SceneOfChunk finds and decodes the CHUNK_SCENE record inside an
// archive's chunk list.
func SceneOfChunk(mem MemoryResolver, handle catalog.Handle, chunks []catalog.Chunk) (Scene, bool, error) {
	for _, c := range chunks {
		if c.Type == catalog.ChunkScene {
			s, err := ParseScene(mem, handle, c.Data)
			if err != nil {
				return Scene{}, false, err
			}
			return s, true, nil
		}
	}
	return Scene{}, false, nil
}
