package strtab

import (
	"testing"

	"github.com/tinselkit/tinsel/internal/testutil"
)

func TestStringLookupWithinPage(t *testing.T) {
	payload := append([]byte{5}, []byte("Hello")...)
	payload = append(payload, byte(3))
	payload = append(payload, []byte("Bye")...)
	raw := testutil.BuildChunkStream([]testutil.Chunk{{Type: 0, Payload: payload}})

	dir := t.TempDir()
	if err := testutil.WriteStringArchive(dir, raw); err != nil {
		t.Fatal(err)
	}

	tab, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.String(0); got != "Hello" {
		t.Errorf("String(0) = %q, want %q", got, "Hello")
	}
	if got := tab.String(1); got != "Bye" {
		t.Errorf("String(1) = %q, want %q", got, "Bye")
	}
	if got := tab.String(2); got != "" {
		t.Errorf("String(2) = %q, want empty (past end of page)", got)
	}
}

func TestStringLookupCrossesPages(t *testing.T) {
	page0 := make([]byte, 0)
	for i := 0; i < stringsPerChunk; i++ {
		page0 = append(page0, 0) // 64 zero-length entries fill the page
	}
	page1 := append([]byte{4}, []byte("Next")...)

	raw := testutil.BuildChunkStream([]testutil.Chunk{
		{Type: 0, Payload: page0},
		{Type: 0, Payload: page1},
	})

	dir := t.TempDir()
	if err := testutil.WriteStringArchive(dir, raw); err != nil {
		t.Fatal(err)
	}
	tab, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.String(stringsPerChunk); got != "Next" {
		t.Errorf("String(%d) = %q, want %q", stringsPerChunk, got, "Next")
	}
}

func TestStringOutOfRangeReturnsEmpty(t *testing.T) {
	raw := testutil.BuildChunkStream([]testutil.Chunk{
		{Type: 0, Payload: append([]byte{2}, []byte("Hi")...)},
	})
	dir := t.TempDir()
	if err := testutil.WriteStringArchive(dir, raw); err != nil {
		t.Fatal(err)
	}
	tab, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.String(1000); got != "" {
		t.Errorf("String(1000) = %q, want empty", got)
	}
}

func TestDecodeEntryLengthForms(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantStart  int
		wantLength int
	}{
		{"short form", []byte{3, 'a', 'b', 'c'}, 1, 3},
		{"0x80 form", []byte{0x80, 200}, 2, 200},
		{"0x90 form", []byte{0x90, 10}, 2, 267},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, length, _ := decodeEntry(tc.data)
			if start != tc.wantStart || length != tc.wantLength {
				t.Errorf("decodeEntry(%v) = (%d, %d), want (%d, %d)", tc.data, start, length, tc.wantStart, tc.wantLength)
			}
		})
	}
}

func TestSkipEntryGroupHeader(t *testing.T) {
	// 0x82 is a group header (the 0x81-0x8F range, excluding the reserved
	// 0x80 and 0x90 plain-length forms) introducing 2 sub-entries of
	// lengths 1 and 2.
	data := []byte{0x82, 1, 'x', 2, 'y', 'z'}
	adv := skipEntry(data)
	if adv != len(data) {
		t.Errorf("skipEntry group header: advance = %d, want %d", adv, len(data))
	}
}
