package bio

import "testing"

func TestReaderPrimitives(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0xFF, 0xFF, 0xFF, 0xFF}
	r := NewReader(data)

	u8, err := r.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8 = %v, %v", u8, err)
	}

	u16, err := r.ReadU16()
	if err != nil || u16 != 0x0302 {
		t.Fatalf("ReadU16 = %#x, %v", u16, err)
	}

	u32, err := r.ReadU32()
	if err != nil || u32 != 0xFFFFFF04 {
		t.Fatalf("ReadU32 = %#x, %v", u32, err)
	}

	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestReaderI32Negative(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, err := r.ReadI32()
	if err != nil || v != -1 {
		t.Fatalf("ReadI32 = %d, %v", v, err)
	}
}

func TestReaderStringNulTerminated(t *testing.T) {
	r := NewReader([]byte{'S', 'C', 'N', 0, 0, 0, 0, 0, 0, 0, 0, 0})
	s, err := r.ReadString(12)
	if err != nil || s != "SCN" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
}

func TestReaderStringNoNul(t *testing.T) {
	r := NewReader([]byte("ABCDEFGHIJKL"))
	s, err := r.ReadString(12)
	if err != nil || s != "ABCDEFGHIJKL" {
		t.Fatalf("ReadString = %q, %v", s, err)
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	if err := r.Skip(3); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	v, err := r.ReadU8()
	if err != nil || v != 4 {
		t.Fatalf("ReadU8 after skip = %v, %v", v, err)
	}
}

func TestReaderShortReadIsFatal(t *testing.T) {
	r := NewReader([]byte{1, 2})
	if _, err := r.ReadU32(); err == nil {
		t.Fatal("expected error on short read")
	}
	// the cursor must not have advanced on a failed read
	if r.Pos() != 0 {
		t.Fatalf("Pos = %d after failed read, want 0", r.Pos())
	}
}
