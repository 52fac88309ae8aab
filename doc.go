// Package tinsel exposes the on-disk game-data archives of the Tinsel
// adventure-game engine (Discworld II and related titles) as a
// structured, in-memory model: decompressed resource blobs, typed
// chunks, scene graphs, sprite film animations, bitmap image headers,
// localized strings, and disassembled bytecode scripts.
//
// The archive catalog and string table are loaded once, via New.
// Individual archives are then decompressed and their records parsed
// lazily, the first time a Handle into them is resolved, or eagerly for
// archives flagged Preload. A Model is the only thing a consumer — a
// viewer, a disassembly browser — needs to import; it holds no GUI,
// rendering, texture-upload, or CLI concerns of its own.
package tinsel
