package jww

import "testing"

func TestFindEntityListOffset_Found(t *testing.T) {
	version := uint32(600)
	b := newFixtureBuilder()
	for i := 0; i < 100; i++ {
		b.u8(0)
	}
	b.u16(1) // entity count, two bytes before the class-definition marker
	b.newClassRecord(uint16(version), "CDataSen", nil)
	b.raw(make([]byte, 20))

	data := b.bytes()
	offset := findEntityListOffset(data, version)
	if offset < 0 {
		t.Fatalf("findEntityListOffset returned -1, want a match")
	}
	// The count word sits exactly two bytes before the 0xFFFF marker.
	r := NewReader(data[offset:])
	count, err := r.ReadWORD()
	if err != nil {
		t.Fatalf("reading count at located offset: %v", err)
	}
	if count != 1 {
		t.Errorf("count at located offset = %d, want 1", count)
	}
}

func TestFindEntityListOffset_NoMatch(t *testing.T) {
	data := make([]byte, 200)
	if off := findEntityListOffset(data, 600); off != -1 {
		t.Errorf("findEntityListOffset = %d, want -1 for all-zero buffer", off)
	}
}

func TestFindEntityListOffset_RejectsWrongVersion(t *testing.T) {
	b := newFixtureBuilder()
	for i := 0; i < 100; i++ {
		b.u8(0)
	}
	b.u16(1)
	b.newClassRecord(999, "CDataSen", nil) // schema doesn't match the version below
	b.raw(make([]byte, 20))

	if off := findEntityListOffset(b.bytes(), 600); off != -1 {
		t.Errorf("findEntityListOffset = %d, want -1 when schema word mismatches version", off)
	}
}

func TestFindEntityListOffset_RejectsOutOfRangeNameLength(t *testing.T) {
	b := newFixtureBuilder()
	for i := 0; i < 100; i++ {
		b.u8(0)
	}
	b.u16(1)
	b.u16(0xFFFF)
	b.u16(uint16(600))
	b.u16(3) // name length below the [8, 20] floor
	b.raw([]byte("Cda"))
	b.raw(make([]byte, 20))

	if off := findEntityListOffset(b.bytes(), 600); off != -1 {
		t.Errorf("findEntityListOffset = %d, want -1 for out-of-range name length", off)
	}
}

func TestFindEntityListOffset_StaysInBoundsNearEndOfBuffer(t *testing.T) {
	// A truncated candidate pattern close to the end of the buffer must not
	// cause an out-of-bounds read; it should simply fail to match.
	data := make([]byte, 130)
	data[125] = 0xFF
	data[126] = 0xFF

	if off := findEntityListOffset(data, 600); off != -1 {
		t.Errorf("findEntityListOffset = %d, want -1 for truncated trailing pattern", off)
	}
}

func TestFindEntityListOffset_IgnoresMatchesBeforeOffset100(t *testing.T) {
	b := newFixtureBuilder()
	version := uint32(600)
	// A well-formed pattern placed before the scan's floor must be ignored.
	b.newClassRecord(uint16(version), "CDataSen", nil)
	for len(b.bytes()) < 100 {
		b.u8(0)
	}
	// Second, later, genuine occurrence is the one that must be found.
	secondStart := len(b.bytes())
	b.u16(1)
	b.newClassRecord(uint16(version), "CDataEnko", nil)
	b.raw(make([]byte, 20))

	off := findEntityListOffset(b.bytes(), version)
	if off < secondStart {
		t.Errorf("findEntityListOffset = %d, matched before offset 100 (second record starts at %d)", off, secondStart)
	}
}
