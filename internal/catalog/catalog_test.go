package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tinselkit/tinsel/internal/testutil"
)

func TestLoadIndexSingleUnloadedEntry(t *testing.T) {
	dir := t.TempDir()
	if err := testutil.WriteArchive(dir, []testutil.IndexEntry{
		{Name: "SCN01.SCN", Data: make([]byte, 42)},
	}); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", cat.Size())
	}
	if cat.Archive(0).Loaded() {
		t.Fatal("archive 0 should be unloaded without Preload")
	}
}

func TestPreloadContract(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("preloaded bytes!")
	if err := testutil.WriteArchive(dir, []testutil.IndexEntry{
		{Name: "MAIN.DAT", Flags: uint32(FlagPreload), Data: payload},
	}); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !cat.Archive(0).Loaded() {
		t.Fatal("Preload archive must be loaded after LoadIndex returns")
	}
}

func TestChunkWalkCoversArchive(t *testing.T) {
	stream := testutil.BuildChunkStream([]testutil.Chunk{
		{Type: uint32(ChunkString), Payload: []byte("hello")},
		{Type: uint32(ChunkGame), Payload: make([]byte, 36)},
		{Type: uint32(ChunkObjects), Payload: []byte{1, 2, 3}},
	})

	dir := t.TempDir()
	if err := testutil.WriteArchive(dir, []testutil.IndexEntry{
		{Name: "A.DAT", Data: stream},
	}); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := cat.Load(0); err != nil {
		t.Fatal(err)
	}

	chunks := cat.Archive(0).Chunks()
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	var total uint32
	for _, c := range chunks {
		total += c.Size
	}
	if total != uint32(len(stream)) {
		t.Fatalf("sum of chunk sizes = %d, want %d", total, len(stream))
	}
	for i := 0; i+1 < len(chunks); i++ {
		if chunks[i].Pos+chunks[i].Size != chunks[i+1].Pos {
			t.Fatalf("chunk %d: pos+size = %d, next chunk pos = %d", i, chunks[i].Pos+chunks[i].Size, chunks[i+1].Pos)
		}
	}
}

func TestHandleResolution(t *testing.T) {
	h := Handle(0x02000010)
	if h.Archive() != 1 {
		t.Fatalf("Archive() = %d, want 1", h.Archive())
	}
	if h.Offset() != 16 {
		t.Fatalf("Offset() = %d, want 16", h.Offset())
	}
}

func TestGetMemoryLazyLoads(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("0123456789ABCDEF")
	if err := testutil.WriteArchive(dir, []testutil.IndexEntry{
		{Name: "A.DAT", Data: make([]byte, 8)},
		{Name: "B.DAT", Data: payload},
	}); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Archive(1).Loaded() {
		t.Fatal("archive 1 should start unloaded")
	}

	h := Handle(uint32(1)<<25 | 4)
	mem, err := cat.GetMemory(h)
	if err != nil {
		t.Fatal(err)
	}
	if !cat.Archive(1).Loaded() {
		t.Fatal("GetMemory must trigger a lazy load")
	}
	// payload[4:] minus the trailing byte, per the substream convention.
	want := payload[4 : len(payload)-1]
	if string(mem) != string(want) {
		t.Fatalf("mem = %q, want %q", mem, want)
	}
}

func TestGetMemoryMissingFileStaysUnloaded(t *testing.T) {
	dir := t.TempDir()
	if err := testutil.WriteArchive(dir, []testutil.IndexEntry{
		{Name: "GHOST.DAT", Data: make([]byte, 10)},
	}); err != nil {
		t.Fatal(err)
	}
	// Simulate a missing data file by removing it after index generation.
	if err := os.Remove(filepath.Join(dir, "data", "GHOST.DAT")); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cat.GetMemory(Handle(0)); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("GetMemory err = %v, want ErrNotLoaded", err)
	}
	if cat.Archive(0).Loaded() {
		t.Fatal("archive with a missing data file must stay unloaded")
	}
}

func TestChunkTypeStringUnknown(t *testing.T) {
	ct := ChunkType(0xDEADBEEF)
	if ct.String() == "" {
		t.Fatal("unknown chunk type must still render a name")
	}
	if ChunkGame.String() != "CHUNK_GAME" {
		t.Fatalf("ChunkGame.String() = %q", ChunkGame.String())
	}
}
