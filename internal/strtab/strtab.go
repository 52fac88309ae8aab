// Package strtab implements the paged, localized string table: an
// uncompressed archive of chunk-linked pages, each holding up to 64
// variable-length-prefixed strings.
package strtab

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinselkit/tinsel/internal/catalog"
)

// stringsPerChunk is the fixed page size: how many strings are packed
// into one chunk before a new one starts.
const stringsPerChunk = 64

// Table is a loaded string archive, split into its chunk pages.
type Table struct {
	data   []byte
	chunks []catalog.Chunk
}

// Load reads dataDir/data/english.txt (uncompressed) and splits it into
// pages.
func Load(dataDir string) (*Table, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "data", "english.txt"))
	if err != nil {
		return nil, fmt.Errorf("strtab: reading string archive: %w", err)
	}
	return &Table{data: raw, chunks: catalog.SplitChunks(raw)}, nil
}

// String returns the string at id, or the empty string if id's page
// falls past the end of the chunk list or past the end of its page.
func (t *Table) String(id uint32) string {
	chunkIndex := id / stringsPerChunk
	stringIndex := id % stringsPerChunk

	if int(chunkIndex) >= len(t.chunks) {
		return ""
	}
	payload := t.chunks[chunkIndex].Data

	pos := 0
	for i := uint32(0); i < stringIndex; i++ {
		if pos >= len(payload) {
			return ""
		}
		pos += skipEntry(payload[pos:])
	}
	if pos >= len(payload) {
		return ""
	}

	start, length, _ := decodeEntry(payload[pos:])
	from := pos + start
	to := from + length
	if to > len(payload) {
		to = len(payload)
	}
	if from > to {
		return ""
	}
	return string(payload[from:to])
}

// decodeEntry reads one length-prefixed string entry (never a group
// header) starting at data[0]. It returns the offset of the string's
// content relative to data, the content's byte length, and the total
// number of bytes the entry occupies (header plus content).
func decodeEntry(data []byte) (contentStart, length, advance int) {
	if len(data) == 0 {
		return 0, 0, 0
	}
	b := data[0]
	switch {
	case b < 0x80:
		length = int(b)
		return 1, length, 1 + length
	case b == 0x80:
		if len(data) < 2 {
			return 0, 0, len(data)
		}
		length = int(data[1])
		return 2, length, 2 + length
	case b == 0x90:
		if len(data) < 2 {
			return 0, 0, len(data)
		}
		length = int(data[1]) + 257
		return 2, length, 2 + length
	default:
		// A group header reached where a single entry was expected:
		// treat it as zero-length rather than misreading its
		// sub-entries as string content.
		return 1, 0, 1
	}
}

// skipEntry advances past one string entry, which may be a group
// header introducing (b & 0x7F) sub-entries (themselves never nested
// groups).
func skipEntry(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	b := data[0]
	if b < 0x80 || b == 0x80 || b == 0x90 {
		_, _, adv := decodeEntry(data)
		return adv
	}

	subCount := int(b & 0x7F)
	pos := 1
	for i := 0; i < subCount; i++ {
		if pos >= len(data) {
			break
		}
		_, _, adv := decodeEntry(data[pos:])
		if adv == 0 {
			break
		}
		pos += adv
	}
	return pos
}
