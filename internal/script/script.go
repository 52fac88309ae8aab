// Package script builds the Tinsel script index: every Pcode script
// handle reachable from a loaded archive's parsed records (master
// script, global processes, object scripts, scene scripts and their
// process table, entrance/poly/tagged-actor scripts), each disassembled
// once and given a human-readable name.
package script

import (
	"fmt"

	"github.com/tinselkit/tinsel/internal/bio"
	"github.com/tinselkit/tinsel/internal/catalog"
	"github.com/tinselkit/tinsel/internal/pcode"
	"github.com/tinselkit/tinsel/internal/records"
)

// Entry is one named, disassembled Pcode script.
type Entry struct {
	Handle catalog.Handle
	Name   string
	Lines  []pcode.Line
}

// disassemble resolves h through mem and disassembles the Pcode bytes
// found there.
func disassemble(mem records.MemoryResolver, h catalog.Handle, name string) (Entry, error) {
	data, err := mem.GetMemory(h)
	if err != nil {
		return Entry{}, fmt.Errorf("script: resolving %s: %w", name, err)
	}
	lines, err := pcode.Disassemble(data)
	if err != nil {
		return Entry{}, fmt.Errorf("script: disassembling %s: %w", name, err)
	}
	return Entry{Handle: h, Name: name, Lines: lines}, nil
}

// appendIfValid disassembles and appends an entry for h unless h is the
// null handle — every optional script reference is gated the same way.
func appendIfValid(out []Entry, mem records.MemoryResolver, h catalog.Handle, name string) ([]Entry, error) {
	if h.IsNull() {
		return out, nil
	}
	e, err := disassemble(mem, h, name)
	if err != nil {
		return out, err
	}
	return append(out, e), nil
}

// processPair is one (pid, script handle) entry, the shared layout of
// CHUNK_PROCESSES and a Scene's own process table.
type processPair struct {
	pid    uint32
	handle uint32
}

func readProcessPairs(payload []byte, count uint32) ([]processPair, error) {
	r := bio.NewReader(payload)
	out := make([]processPair, 0, count)
	for i := uint32(0); i < count; i++ {
		pid, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("script: decoding process pair %d pid: %w", i, err)
		}
		handle, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("script: decoding process pair %d handle: %w", i, err)
		}
		out = append(out, processPair{pid: pid, handle: handle})
	}
	return out, nil
}

// BuildMasterIndex builds archive 0's script index: the master script
// (from CHUNK_MASTER_SCRIPT) plus one entry per global process (from
// CHUNK_PROCESSES, numGlobalProcesses pairs).
func BuildMasterIndex(mem records.MemoryResolver, chunks []catalog.Chunk, numGlobalProcesses uint32) ([]Entry, error) {
	var out []Entry
	var err error

	for _, c := range chunks {
		if c.Type != catalog.ChunkMasterScript {
			continue
		}
		r := bio.NewReader(c.Data)
		h, rerr := r.ReadU32()
		if rerr != nil {
			return nil, fmt.Errorf("script: decoding master script handle: %w", rerr)
		}
		out, err = appendIfValid(out, mem, catalog.Handle(h), "master script")
		if err != nil {
			return nil, err
		}
		break
	}

	for _, c := range chunks {
		if c.Type != catalog.ChunkProcesses {
			continue
		}
		pairs, perr := readProcessPairs(c.Data, numGlobalProcesses)
		if perr != nil {
			return nil, fmt.Errorf("script: decoding global processes: %w", perr)
		}
		for i, p := range pairs {
			name := fmt.Sprintf("global process script %d, pid: %04x", i, p.pid)
			out, err = appendIfValid(out, mem, catalog.Handle(p.handle), name)
			if err != nil {
				return nil, err
			}
		}
		break
	}

	return out, nil
}

// BuildObjectIndex builds archive 1's script index: one entry per
// inventory object's script.
func BuildObjectIndex(mem records.MemoryResolver, objects []records.Object) ([]Entry, error) {
	var out []Entry
	var err error
	for _, o := range objects {
		name := fmt.Sprintf("object %x script", o.ID)
		out, err = appendIfValid(out, mem, o.Script, name)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BuildSceneIndex builds one scene archive's script index: the scene
// script, its process table, and every entrance/poly/tagged-actor
// script, named against archiveName for the scene script entry.
func BuildSceneIndex(mem records.MemoryResolver, archiveName string, scene records.Scene) ([]Entry, error) {
	var out []Entry
	var err error

	out, err = appendIfValid(out, mem, scene.SceneScript, fmt.Sprintf("scene script %s", archiveName))
	if err != nil {
		return nil, err
	}

	if scene.NumProcess != 0 && !scene.Process.IsNull() {
		payload, merr := mem.GetMemory(scene.Process)
		if merr != nil {
			return nil, fmt.Errorf("script: resolving scene process table: %w", merr)
		}
		pairs, perr := readProcessPairs(payload, scene.NumProcess)
		if perr != nil {
			return nil, fmt.Errorf("script: decoding scene processes: %w", perr)
		}
		for i, p := range pairs {
			name := fmt.Sprintf("scene process script %d, pid: %04x", i, p.pid)
			out, err = appendIfValid(out, mem, catalog.Handle(p.handle), name)
			if err != nil {
				return nil, err
			}
		}
	}

	for _, e := range scene.Entrances {
		name := fmt.Sprintf("entrance %x script", e.Number)
		out, err = appendIfValid(out, mem, e.Script, name)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range scene.Polys {
		name := fmt.Sprintf("poly %x script", p.ID)
		out, err = appendIfValid(out, mem, p.Script, name)
		if err != nil {
			return nil, err
		}
	}
	for _, a := range scene.Actors {
		name := fmt.Sprintf("actor %x script", a.ID)
		out, err = appendIfValid(out, mem, a.ActorCode, name)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
