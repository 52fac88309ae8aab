package catalog

import "fmt"

// ChunkType is the 32-bit tag at the head of every chunk. The set is
// closed; every member carries the Tinsel family prefix 0x3334....
type ChunkType uint32

// The closed set of chunk type tags, in the order the original engine
// declares them.
const (
	ChunkString         ChunkType = 0x33340001
	ChunkBitmap         ChunkType = 0x33340002
	ChunkCharPtr        ChunkType = 0x33340003
	ChunkCharMatrix     ChunkType = 0x33340004
	ChunkPalette        ChunkType = 0x33340005
	ChunkImage          ChunkType = 0x33340006
	ChunkAniFrame       ChunkType = 0x33340007
	ChunkFilm           ChunkType = 0x33340008
	ChunkFont           ChunkType = 0x33340009
	ChunkPcode          ChunkType = 0x3334000A
	ChunkEntrance       ChunkType = 0x3334000B
	ChunkPolygons       ChunkType = 0x3334000C
	ChunkActors         ChunkType = 0x3334000D
	ChunkProcesses      ChunkType = 0x3334000E
	ChunkScene          ChunkType = 0x3334000F
	ChunkTotalActors    ChunkType = 0x33340010
	ChunkTotalGlobals   ChunkType = 0x33340011
	ChunkTotalObjects   ChunkType = 0x33340012
	ChunkObjects        ChunkType = 0x33340013
	ChunkMidi           ChunkType = 0x33340014
	ChunkSample         ChunkType = 0x33340015
	ChunkTotalPoly      ChunkType = 0x33340016
	ChunkNumProcesses   ChunkType = 0x33340017
	ChunkMasterScript   ChunkType = 0x33340018
	ChunkCDPlayFileNum  ChunkType = 0x33340019
	ChunkCDPlayHandle   ChunkType = 0x3334001A
	ChunkCDPlayFileName ChunkType = 0x3334001B
	ChunkMusicFileName  ChunkType = 0x3334001C
	ChunkMusicScript    ChunkType = 0x3334001D
	ChunkMusicSegment   ChunkType = 0x3334001E
	ChunkSceneHopper    ChunkType = 0x3334001F
	ChunkTimeStamps     ChunkType = 0x33340020
	ChunkMBString       ChunkType = 0x33340022
	ChunkSceneHopper2   ChunkType = 0x33340030
	ChunkGame           ChunkType = 0x33340031
	ChunkGrabName       ChunkType = 0x33340100
)

var chunkTypeNames = map[ChunkType]string{
	ChunkString:         "CHUNK_STRING",
	ChunkBitmap:         "CHUNK_BITMAP",
	ChunkCharPtr:        "CHUNK_CHARPTR",
	ChunkCharMatrix:     "CHUNK_CHARMATRIX",
	ChunkPalette:        "CHUNK_PALETTE",
	ChunkImage:          "CHUNK_IMAGE",
	ChunkAniFrame:       "CHUNK_ANI_FRAME",
	ChunkFilm:           "CHUNK_FILM",
	ChunkFont:           "CHUNK_FONT",
	ChunkPcode:          "CHUNK_PCODE",
	ChunkEntrance:       "CHUNK_ENTRANCE",
	ChunkPolygons:       "CHUNK_POLYGONS",
	ChunkActors:         "CHUNK_ACTORS",
	ChunkProcesses:      "CHUNK_PROCESSES",
	ChunkScene:          "CHUNK_SCENE",
	ChunkTotalActors:    "CHUNK_TOTAL_ACTORS",
	ChunkTotalGlobals:   "CHUNK_TOTAL_GLOBALS",
	ChunkTotalObjects:   "CHUNK_TOTAL_OBJECTS",
	ChunkObjects:        "CHUNK_OBJECTS",
	ChunkMidi:           "CHUNK_MIDI",
	ChunkSample:         "CHUNK_SAMPLE",
	ChunkTotalPoly:      "CHUNK_TOTAL_POLY",
	ChunkNumProcesses:   "CHUNK_NUM_PROCESSES",
	ChunkMasterScript:   "CHUNK_MASTER_SCRIPT",
	ChunkCDPlayFileNum:  "CHUNK_CDPLAY_FILENUM",
	ChunkCDPlayHandle:   "CHUNK_CDPLAY_HANDLE",
	ChunkCDPlayFileName: "CHUNK_CDPLAY_FILENAME",
	ChunkMusicFileName:  "CHUNK_MUSIC_FILENAME",
	ChunkMusicScript:    "CHUNK_MUSIC_SCRIPT",
	ChunkMusicSegment:   "CHUNK_MUSIC_SEGMENT",
	ChunkSceneHopper:    "CHUNK_SCENE_HOPPER",
	ChunkTimeStamps:     "CHUNK_TIME_STAMPS",
	ChunkMBString:       "CHUNK_MBSTRING",
	ChunkSceneHopper2:   "CHUNK_SCENE_HOPPER2",
	ChunkGame:           "CHUNK_GAME",
	ChunkGrabName:       "CHUNK_GRAB_NAME",
}

// String returns the chunk type's symbolic name, or its raw hex value for
// any tag outside the closed set (tolerated per the unknown-chunk-type
// error policy: retained and skipped, never rejected).
func (c ChunkType) String() string {
	if name, ok := chunkTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CHUNK_UNKNOWN(%#08x)", uint32(c))
}
