package tinsel

import (
	"fmt"
	"sync"

	"github.com/tinselkit/tinsel/internal/catalog"
	"github.com/tinselkit/tinsel/internal/records"
	"github.com/tinselkit/tinsel/internal/script"
	"github.com/tinselkit/tinsel/internal/strtab"
)

// Model is the loaded Tinsel archive universe: the master catalog, the
// localized string table, and every archive's parsed records and script
// index, built lazily the first time a handle into that archive is
// resolved (or eagerly, for archives flagged Preload).
//
// Model exposes no locking of its own beyond what's needed to keep its
// own bookkeeping consistent; a caller driving a Model from more than
// one goroutine is responsible for serializing its own Load calls.
type Model struct {
	cat     *catalog.Catalog
	strings *strtab.Table

	mu           sync.Mutex
	parsed       []bool
	gameVars     GameVariables
	haveGameVars bool
	objects      []Object
	scenes       map[int]Scene
	scripts      map[int][]ScriptEntry
}

// New loads the archive catalog at dataDir/data/index and the localized
// string table at dataDir/data/english.txt. Any archive flagged Preload
// is decompressed and its records parsed before New returns, so that it
// is resident before any other archive is touched.
func New(dataDir string) (*Model, error) {
	cat, err := catalog.LoadIndex(dataDir)
	if err != nil {
		return nil, err
	}
	strs, err := strtab.Load(dataDir)
	if err != nil {
		return nil, err
	}

	m := &Model{
		cat:     cat,
		strings: strs,
		parsed:  make([]bool, cat.Size()),
		scenes:  make(map[int]Scene),
		scripts: make(map[int][]ScriptEntry),
	}
	for i, a := range cat.Archives() {
		if a.Loaded() {
			if err := m.parseArchive(i); err != nil {
				return nil, fmt.Errorf("tinsel: parsing preloaded archive %d (%s): %w", i, a.Name, err)
			}
		}
	}
	return m, nil
}

// Archives returns every archive's index header, in catalog order.
func (m *Model) Archives() []*MemHandle { return m.cat.Archives() }

// Size returns the number of archives in the catalog.
func (m *Model) Size() int { return m.cat.Size() }

// Load decompresses archive i, if it is not already loaded, and parses
// its records and script index. It is idempotent. Archive 1's Objects
// depend on archive 0's GameVariables, so loading archive 1 loads
// archive 0 first.
func (m *Model) Load(i int) error {
	if i == 1 {
		if err := m.Load(0); err != nil {
			return err
		}
	}
	if err := m.cat.Load(i); err != nil {
		return err
	}
	return m.parseArchive(i)
}

// parseArchive runs the archive-index-dependent record parsing and
// script-index build. It is a no-op on an archive whose data file could
// not be decompressed, and idempotent on one already parsed.
func (m *Model) parseArchive(i int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parsed[i] {
		return nil
	}
	m.parsed[i] = true

	a := m.cat.Archive(i)
	if !a.Loaded() {
		return nil
	}
	chunks := a.Chunks()

	switch {
	case i == 0:
		gv, ok, err := records.ChunkOfGameVariables(chunks)
		if err != nil {
			return err
		}
		if ok {
			m.gameVars = gv
			m.haveGameVars = true
		}
		entries, err := script.BuildMasterIndex(m.cat, chunks, gv.NumGlobalProcesses)
		if err != nil {
			return fmt.Errorf("tinsel: building archive 0 script index: %w", err)
		}
		m.scripts[0] = entries

	case i == 1:
		if !m.haveGameVars {
			return nil
		}
		objs, ok, err := records.ObjectsOfChunk(chunks, m.gameVars.NumIcons)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		m.objects = objs
		entries, err := script.BuildObjectIndex(m.cat, objs)
		if err != nil {
			return fmt.Errorf("tinsel: building archive 1 script index: %w", err)
		}
		m.scripts[1] = entries

	default:
		var sceneHandle catalog.Handle
		for _, c := range chunks {
			if c.Type == catalog.ChunkScene {
				sceneHandle = catalog.Handle(uint32(i)<<25 | (c.Pos + 8))
				break
			}
		}
		scene, ok, err := records.SceneOfChunk(m.cat, sceneHandle, chunks)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		m.scenes[i] = scene
		entries, err := script.BuildSceneIndex(m.cat, a.Name, scene)
		if err != nil {
			return fmt.Errorf("tinsel: building archive %d script index: %w", i, err)
		}
		m.scripts[i] = entries
	}
	return nil
}

// GameVariables returns archive 0's singleton game-wide variables,
// loading archive 0 first if necessary.
func (m *Model) GameVariables() (GameVariables, error) {
	if err := m.Load(0); err != nil {
		return GameVariables{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gameVars, nil
}

// Objects returns archive 1's inventory objects, loading it first if
// necessary.
func (m *Model) Objects() ([]Object, error) {
	if err := m.Load(1); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects, nil
}

// Scene returns archive i's scene record, if it has one.
func (m *Model) Scene(i int) (Scene, bool, error) {
	if err := m.Load(i); err != nil {
		return Scene{}, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.scenes[i]
	return s, ok, nil
}

// Scripts returns archive i's named, disassembled script index.
func (m *Model) Scripts(i int) ([]ScriptEntry, error) {
	if err := m.Load(i); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scripts[i], nil
}

// Memory resolves h to a raw byte view, loading its archive first if
// necessary.
func (m *Model) Memory(h Handle) ([]byte, error) {
	if err := m.Load(h.Archive()); err != nil {
		return nil, err
	}
	return m.cat.GetMemory(h)
}

// String returns the localized string at id, or the empty string if id
// falls past the end of the string table.
func (m *Model) String(id uint32) string {
	return m.strings.String(id)
}

// ParseFilm resolves and decodes the Film at h, loading its archive
// first if necessary.
func (m *Model) ParseFilm(h Handle) (Film, error) {
	if err := m.Load(h.Archive()); err != nil {
		return Film{}, err
	}
	return records.ParseFilm(m.cat, h)
}

// ParseImage resolves and decodes the Image header at h, loading its
// archive first if necessary.
func (m *Model) ParseImage(h Handle) (Image, error) {
	if err := m.Load(h.Archive()); err != nil {
		return Image{}, err
	}
	return records.ParseImage(m.cat, h)
}

// ParseMultiInit resolves and decodes the MultiInit at h, loading its
// archive first if necessary.
func (m *Model) ParseMultiInit(h Handle) (MultiInit, error) {
	if err := m.Load(h.Archive()); err != nil {
		return MultiInit{}, err
	}
	return records.ParseMultiInit(m.cat, h)
}

// ParseFrames resolves and decodes the Frames list at h, loading its
// archive first if necessary.
func (m *Model) ParseFrames(h Handle) (Frames, error) {
	if err := m.Load(h.Archive()); err != nil {
		return Frames{}, err
	}
	return records.ParseFrames(m.cat, h)
}
