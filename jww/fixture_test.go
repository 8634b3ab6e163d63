package jww

import (
	"encoding/binary"
	"math"
)

// fixtureBuilder assembles synthetic JWW byte streams for tests. It mirrors
// the on-disk header/layer-matrix/entity-stream layout closely enough to
// exercise the decoder end-to-end without needing a real drawing file.
type fixtureBuilder struct {
	buf []byte
}

func newFixtureBuilder() *fixtureBuilder {
	return &fixtureBuilder{}
}

func (b *fixtureBuilder) bytes() []byte { return b.buf }

func (b *fixtureBuilder) raw(p []byte) *fixtureBuilder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *fixtureBuilder) u8(v byte) *fixtureBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *fixtureBuilder) u16(v uint16) *fixtureBuilder {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *fixtureBuilder) u32(v uint32) *fixtureBuilder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *fixtureBuilder) f64(v float64) *fixtureBuilder {
	bits := math.Float64bits(v)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], bits)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

// asciiCString appends a length-prefixed ASCII string using the 1-byte
// header form (only valid for length < 0xFF).
func (b *fixtureBuilder) asciiCString(s string) *fixtureBuilder {
	if len(s) >= 0xFF {
		panic("asciiCString: string too long for 1-byte fixture helper")
	}
	b.u8(byte(len(s)))
	b.buf = append(b.buf, []byte(s)...)
	return b
}

// header appends a minimal-but-complete document header: version, an ASCII
// memo, paper size 0, write-layer-group 0, and 16 default layer groups (each
// with 16 default layers, all names empty so assemble() defaults them).
func (b *fixtureBuilder) header(version uint32, memo string) *fixtureBuilder {
	b.u32(version)
	b.asciiCString(memo)
	b.u32(0) // paper size
	b.u32(0) // write layer group
	for g := 0; g < 16; g++ {
		b.u32(2) // state: editable
		b.u32(0) // write layer
		b.f64(1.0)
		b.u32(0) // protect
		for l := 0; l < 16; l++ {
			b.u32(2) // layer state
			b.u32(0) // layer protect
		}
	}
	return b
}

// newClassRecord appends a class-definition record: 0xFFFF, the schema word
// (the decoder's locator requires this to equal the low 16 bits of the file
// version when it's the *first* such record, but back-to-back definitions
// after the first don't need to match), the class name, and the decoded
// body bytes.
func (b *fixtureBuilder) newClassRecord(schema uint16, className string, body []byte) *fixtureBuilder {
	b.u16(0xFFFF)
	b.u16(schema)
	b.u16(uint16(len(className)))
	b.buf = append(b.buf, []byte(className)...)
	b.buf = append(b.buf, body...)
	return b
}

// backRefRecord appends a back-reference record to a previously bound pid.
func (b *fixtureBuilder) backRefRecord(pid uint16, body []byte) *fixtureBuilder {
	b.u16(0x8000 | pid)
	b.buf = append(b.buf, body...)
	return b
}

// nullRecord appends an explicit null-object marker.
func (b *fixtureBuilder) nullRecord() *fixtureBuilder {
	b.u16(0x8000)
	return b
}

// entityBaseBytes builds the on-disk bytes for an EntityBase, version-gating
// PenWidth the same way the decoder reads it.
func entityBaseBytes(version uint32, group uint32, penStyle byte, penColor, layer, layerGroup, flag uint16) []byte {
	bb := newFixtureBuilder()
	bb.u32(group).u8(penStyle).u16(penColor)
	if version >= 351 {
		bb.u16(0) // pen width
	}
	bb.u16(layer).u16(layerGroup).u16(flag)
	return bb.bytes()
}

// lineBody builds the CDataSen body: an EntityBase followed by four doubles.
func lineBody(version uint32, startX, startY, endX, endY float64) []byte {
	bb := newFixtureBuilder()
	bb.raw(entityBaseBytes(version, 0, 0, 1, 0, 0, 0))
	bb.f64(startX).f64(startY).f64(endX).f64(endY)
	return bb.bytes()
}

