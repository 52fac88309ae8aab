package tinsel

import (
	"github.com/tinselkit/tinsel/internal/animscript"
	"github.com/tinselkit/tinsel/internal/catalog"
	"github.com/tinselkit/tinsel/internal/pcode"
	"github.com/tinselkit/tinsel/internal/records"
	"github.com/tinselkit/tinsel/internal/script"
)

// The record and archive types a consumer works with through the Model
// facade, re-exported here so they can be named outside this module
// without reaching into internal packages.
type (
	MemHandle = catalog.MemHandle
	Chunk     = catalog.Chunk
	ChunkType = catalog.ChunkType
	Flags     = catalog.Flags

	Scene         = records.Scene
	Entrance      = records.Entrance
	Poly          = records.Poly
	Actor         = records.Actor
	Object        = records.Object
	Image         = records.Image
	Frames        = records.Frames
	MultiInit     = records.MultiInit
	Film          = records.Film
	Reel          = records.Reel
	GameVariables = records.GameVariables
	AnimScript    = records.AnimScript
	AnimLine      = records.AnimLine

	ScriptEntry = script.Entry
	PcodeLine   = pcode.Line
	PcodeOpcode = pcode.Opcode
	AnimOpcode  = animscript.Opcode
)

// Archive content/load flags, the closed bitset stored in data/index.
const (
	FlagPreload    = catalog.FlagPreload
	FlagDiscard    = catalog.FlagDiscard
	FlagSound      = catalog.FlagSound
	FlagGraphic    = catalog.FlagGraphic
	FlagCompressed = catalog.FlagCompressed
	FlagLoaded     = catalog.FlagLoaded
)
