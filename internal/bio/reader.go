// Package bio provides little-endian primitive reads over an in-memory
// byte buffer, the way the Tinsel engine's own ByteReader walks a
// resolved archive substream.
package bio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrEndOfInput is returned when a read would consume bytes past the end
// of the buffer. Short reads never return a partial value.
var ErrEndOfInput = errors.New("bio: end of input")

// Reader is a forward-only cursor over a byte slice. It never copies the
// underlying data; ReadString and Skip only advance the cursor.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential little-endian reads starting at
// offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current byte offset into the underlying buffer.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int { return len(r.data) - r.pos }

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return fmt.Errorf("bio: need %d bytes at offset %d, have %d: %w", n, r.pos, len(r.data)-r.pos, ErrEndOfInput)
	}
	return nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian 16-bit unsigned value.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian 32-bit unsigned value.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian 32-bit signed value.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadString reads exactly n bytes and returns the characters up to the
// first NUL, or all n bytes if none is found.
func (r *Reader) ReadString(n int) (string, error) {
	if err := r.need(n); err != nil {
		return "", err
	}
	raw := r.data[r.pos : r.pos+n]
	r.pos += n
	if idx := indexByte(raw, 0); idx >= 0 {
		return string(raw[:idx]), nil
	}
	return string(raw), nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
