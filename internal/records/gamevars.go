// Package records decodes the fixed-width Tinsel records — Scene,
// Entrance, Poly, Actor, Object, Image, Frames, MultiInit, Film, Reel,
// and GameVariables — from resolved archive substreams.
package records

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
)

// GameVariables is the singleton record inside archive 0's CHUNK_GAME
// chunk. The three leading reserved fields are kept (unexported, not
// collapsed into a single "reserved" count) because the original layout
// names them explicitly, ahead of the documented counters.
type GameVariables struct {
	reserved0, reserved4, reserved8 uint32

	NumActors          uint32
	NumGlobals         uint32
	NumPolygons        uint32
	NumGlobalProcesses uint32
	CDPlayHandle       uint32
	NumIcons           uint32
}

// gameVariablesSize is the fixed byte width of a GameVariables record:
// nine u32 fields.
const gameVariablesSize = 9 * 4

// ParseGameVariables decodes a GameVariables record from a CHUNK_GAME
// chunk's payload.
func ParseGameVariables(payload []byte) (GameVariables, error) {
	r := bio.NewReader(payload)
	var g GameVariables
	var err error
	fields := []*uint32{
		&g.reserved0, &g.reserved4, &g.reserved8,
		&g.NumActors, &g.NumGlobals, &g.NumPolygons,
		&g.NumGlobalProcesses, &g.CDPlayHandle, &g.NumIcons,
	}
	for _, f := range fields {
		*f, err = r.ReadU32()
		if err != nil {
			return GameVariables{}, fmt.Errorf("records: decoding GameVariables: %w", err)
		}
	}
	return g, nil
}

// ChunkOfGameVariables finds and decodes the CHUNK_GAME record inside an
// archive's chunk list. It returns false if the archive has no such
// chunk (the GameVariables record exists only in archive 0).
func ChunkOfGameVariables(chunks []catalog.Chunk) (GameVariables, bool, error) {
	for _, c := range chunks {
		if c.Type == catalog.ChunkGame {
			g, err := ParseGameVariables(c.Data)
			if err != nil {
				return GameVariables{}, false, err
			}
			return g, true, nil
		}
	}
	return GameVariables{}, false, nil
}
