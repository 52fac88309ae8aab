// Package testutil builds on-disk Tinsel archive fixtures (index file,
// LZSS-compressed entries, the uncompressed string archive) for tests
// across the catalog, records, and script-index packages.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
)

// IndexEntry describes one data/index record before compression.
type IndexEntry struct {
	Name  string
	Flags uint32
	Data  []byte // plain (decompressed) bytes; Size is derived from len(Data)
}

// EncodeLZSS packs data as an all-literal Tinsel LZSS stream: one control
// bit (1) plus 8 data bits per source byte, MSB-first, terminated by a
// back-reference token with a zero offset. Decoding this stream with
// lzss.Decode reproduces data exactly.
func EncodeLZSS(data []byte) []byte {
	bw := &bitWriter{}
	for _, b := range data {
		bw.writeBit(1)
		bw.writeBits(uint32(b), 8)
	}
	// terminator: control bit 0, 16-bit lookup with offset 0
	bw.writeBit(0)
	bw.writeBits(0, 16)
	return bw.bytes()
}

type bitWriter struct {
	buf     []byte
	cur     byte
	curBits int
}

func (w *bitWriter) writeBit(bit uint32) {
	w.cur = (w.cur << 1) | byte(bit&1)
	w.curBits++
	if w.curBits == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.curBits = 0
	}
}

func (w *bitWriter) writeBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.writeBit((v >> uint(i)) & 1)
	}
}

func (w *bitWriter) bytes() []byte {
	if w.curBits > 0 {
		w.cur <<= uint(8 - w.curBits)
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.curBits = 0
	}
	return w.buf
}

// WriteArchive writes dataDir/data/index and one LZSS-compressed entry
// file per IndexEntry.
func WriteArchive(dataDir string, entries []IndexEntry) error {
	dataSub := filepath.Join(dataDir, "data")
	if err := os.MkdirAll(dataSub, 0o755); err != nil {
		return err
	}

	index := make([]byte, 0, 24*len(entries))
	for _, e := range entries {
		var rec [24]byte
		copy(rec[0:12], []byte(e.Name))
		binary.LittleEndian.PutUint32(rec[12:16], uint32(len(e.Data)))
		binary.LittleEndian.PutUint32(rec[20:24], e.Flags)
		index = append(index, rec[:]...)

		compressed := EncodeLZSS(e.Data)
		if err := os.WriteFile(filepath.Join(dataSub, e.Name), compressed, 0o644); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(dataSub, "index"), index, 0o644)
}

// WriteStringArchive writes dataDir/data/english.txt uncompressed.
func WriteStringArchive(dataDir string, raw []byte) error {
	dataSub := filepath.Join(dataDir, "data")
	if err := os.MkdirAll(dataSub, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataSub, "english.txt"), raw, 0o644)
}

// Chunk describes one chunk's type and payload, as found inside a
// decompressed archive or the string archive. It carries no next
// offset: BuildChunkStream computes each one (the absolute offset of
// the following chunk, or 0 for the last one) when it lays chunks out.
type Chunk struct {
	Type    uint32
	Payload []byte
}

// BuildChunkStream lays out chunks back to back with correct next-offset
// linkage, matching the chunk splitter's expectations.
func BuildChunkStream(chunks []Chunk) []byte {
	offsets := make([]int, len(chunks))
	offset := 0
	for i, c := range chunks {
		offsets[i] = offset
		offset += 8 + len(c.Payload)
	}

	out := make([]byte, offset)
	for i, c := range chunks {
		pos := offsets[i]
		binary.LittleEndian.PutUint32(out[pos:], c.Type)
		var next uint32
		if i+1 < len(chunks) {
			next = uint32(offsets[i+1])
		}
		binary.LittleEndian.PutUint32(out[pos+4:], next)
		copy(out[pos+8:], c.Payload)
	}
	return out
}

// PutU32 appends a little-endian u32 to buf.
func PutU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// PutI32 appends a little-endian i32 to buf.
func PutI32(buf []byte, v int32) []byte {
	return PutU32(buf, uint32(v))
}

// PutU16 appends a little-endian u16 to buf.
func PutU16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}
