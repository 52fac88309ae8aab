// Package catalog implements the Tinsel archive catalog: the master
// index of named, optionally-compressed resource archives, lazy
// decompression on first handle resolution, and the chunk list inside
// each decompressed archive.
package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tinselkit/tinsel/internal/lzss"
)

// indexRecordSize is the fixed width of one entry in data/index.
const indexRecordSize = 24

// Flags is the closed bitset of per-archive load/content hints stored in
// the index.
type Flags uint32

const (
	FlagPreload    Flags = 0x01000000
	FlagDiscard    Flags = 0x02000000
	FlagSound      Flags = 0x04000000
	FlagGraphic    Flags = 0x08000000
	FlagCompressed Flags = 0x10000000
	FlagLoaded     Flags = 0x20000000
)

var (
	// ErrInvalidIndex is returned when data/index is not a whole number
	// of 24-byte records.
	ErrInvalidIndex = errors.New("catalog: malformed index")
	// ErrArchiveIndex marks a Handle whose archive component is out of
	// range for the loaded catalog — a programming error per the
	// original's own assertion on get_memhandle/get_memory.
	ErrArchiveIndex = errors.New("catalog: archive index out of range")
	// ErrNotLoaded is returned by GetMemory when the target archive's
	// data file could not be decompressed (missing file, zero bytes
	// written) and so never transitioned to loaded.
	ErrNotLoaded = errors.New("catalog: archive not loaded")
)

// MemHandle is one archive's immutable index header plus its mutable
// load state. It transitions from unloaded to loaded exactly once and is
// never unloaded for the life of the process.
type MemHandle struct {
	ID    int
	Name  string
	Size  uint32
	Flags Flags

	once   sync.Once
	loaded bool
	data   []byte
	chunks []Chunk
}

// Loaded reports whether this archive's bytes have been decompressed.
func (m *MemHandle) Loaded() bool { return m.loaded }

// Chunks returns the archive's chunk list in file order. It is empty
// until the archive is loaded.
func (m *MemHandle) Chunks() []Chunk { return m.chunks }

// ChunksOfType returns every chunk in the archive matching typ, in file
// order.
func (m *MemHandle) ChunksOfType(typ ChunkType) []Chunk {
	var out []Chunk
	for _, c := range m.chunks {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

// Catalog is the loaded master index: one MemHandle per archive, indexed
// by archive number.
type Catalog struct {
	dataDir string
	entries []*MemHandle
}

// LoadIndex reads data/index under dataDir and allocates one MemHandle
// per record. Any archive flagged Preload is loaded immediately, before
// LoadIndex returns, so that it is resident before any other archive is
// touched.
func LoadIndex(dataDir string) (*Catalog, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "data", "index"))
	if err != nil {
		return nil, fmt.Errorf("catalog: reading index: %w", err)
	}
	if len(raw)%indexRecordSize != 0 {
		return nil, fmt.Errorf("%w: size %d is not a multiple of %d", ErrInvalidIndex, len(raw), indexRecordSize)
	}

	count := len(raw) / indexRecordSize
	c := &Catalog{dataDir: dataDir, entries: make([]*MemHandle, count)}
	for i := 0; i < count; i++ {
		rec := raw[i*indexRecordSize : (i+1)*indexRecordSize]
		c.entries[i] = &MemHandle{
			ID:    i,
			Name:  trimNulName(rec[0:12]),
			Size:  binary.LittleEndian.Uint32(rec[12:16]),
			Flags: Flags(binary.LittleEndian.Uint32(rec[20:24])),
		}
	}

	for i, e := range c.entries {
		if e.Flags&FlagPreload != 0 {
			if err := c.Load(i); err != nil {
				return nil, fmt.Errorf("catalog: preloading archive %d (%s): %w", i, e.Name, err)
			}
		}
	}

	return c, nil
}

func trimNulName(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// Size returns the number of archives in the catalog.
func (c *Catalog) Size() int { return len(c.entries) }

// Archive returns the MemHandle for archive index i.
func (c *Catalog) Archive(i int) *MemHandle { return c.entries[i] }

// Archives returns every archive in index order.
func (c *Catalog) Archives() []*MemHandle { return c.entries }

// Load decompresses archive i and splits it into chunks. It is
// idempotent: a second call on an already-loaded (or already
// unsuccessfully attempted) archive is a no-op. A missing data file
// leaves the archive unloaded rather than returning an error — callers
// that then resolve a handle into it will get ErrNotLoaded.
func (c *Catalog) Load(i int) error {
	if i < 0 || i >= len(c.entries) {
		return fmt.Errorf("%w: %d (catalog size %d)", ErrArchiveIndex, i, len(c.entries))
	}
	e := c.entries[i]
	e.once.Do(func() {
		raw, err := os.ReadFile(filepath.Join(c.dataDir, "data", e.Name))
		if err != nil {
			return
		}
		dst := make([]byte, e.Size)
		if n := lzss.Decode(raw, dst); n == 0 {
			return
		}
		e.data = dst
		e.chunks = SplitChunks(dst)
		e.loaded = true
	})
	return nil
}

// GetMemory resolves h: the target archive is loaded if necessary, then a
// raw byte view starting at h's offset and ending one byte before the
// archive's end is returned (the original's substream drops a trailing
// byte; this is preserved verbatim rather than silently "fixed"). The
// returned slice is never truncated at an embedded NUL — callers that
// expect a C-style string must stop at one themselves.
func (c *Catalog) GetMemory(h Handle) ([]byte, error) {
	idx := h.Archive()
	if idx < 0 || idx >= len(c.entries) {
		panic(fmt.Sprintf("catalog: handle %#08x: %v: %d (catalog size %d)", uint32(h), ErrArchiveIndex, idx, len(c.entries)))
	}
	e := c.entries[idx]
	if !e.loaded {
		if err := c.Load(idx); err != nil {
			return nil, err
		}
	}
	if !e.loaded {
		return nil, fmt.Errorf("%w: archive %d (%s)", ErrNotLoaded, idx, e.Name)
	}

	off := h.Offset()
	if off >= e.Size {
		return nil, fmt.Errorf("catalog: handle %#08x: offset %d out of range for archive %d (size %d)", uint32(h), off, idx, e.Size)
	}
	end := e.Size - 1
	if end < off {
		end = off
	}
	return e.data[off:end], nil
}
