package main

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hkondo/jwwcore/dxf"
	"github.com/hkondo/jwwcore/jww"
)

// buildMinimalJWW assembles a tiny but fully well-formed JWW buffer: a
// header for the given version, the 16x16 layer-group/layer matrix, a
// single CDataSen (line) entity, and trailing padding so the entity-list
// locator's bounded scan stays in range. It exists so this package's
// end-to-end tests don't depend on a real drawing file on disk.
func buildMinimalJWW(version uint32, startX, startY, endX, endY float64) []byte {
	var buf []byte

	u16 := func(v uint16) {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}
	u32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}
	f64 := func(v float64) {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf = append(buf, tmp[:]...)
	}

	buf = append(buf, []byte("JwwData.")...)
	u32(version)
	buf = append(buf, 0) // empty memo, 1-byte zero length prefix
	u32(0)               // paper size
	u32(0)                // write layer group

	for g := 0; g < 16; g++ {
		u32(2)  // layer group state: editable
		u32(0)  // write layer
		f64(1.0) // scale
		u32(0)  // protect
		for l := 0; l < 16; l++ {
			u32(2) // layer state
			u32(0) // layer protect
		}
	}

	u16(1) // entity count

	// Class-definition record for CDataSen, immediately followed by its body.
	u16(0xFFFF)
	u16(uint16(version))
	u16(8)
	buf = append(buf, []byte("CDataSen")...)

	// EntityBase: Group, PenStyle, PenColor, PenWidth (version >= 351), Layer, LayerGroup, Flag.
	u32(0)
	buf = append(buf, 0)
	u16(1)
	if version >= 351 {
		u16(0)
	}
	u16(0)
	u16(0)
	u16(0)

	f64(startX)
	f64(startY)
	f64(endX)
	f64(endY)

	buf = append(buf, make([]byte, 20)...) // trailing padding past the entity stream

	return buf
}

func TestE2E_ConvertMinimalDocument(t *testing.T) {
	data := buildMinimalJWW(600, 0, 0, 100, 50)

	jwwDoc, err := jww.Parse(data)
	if err != nil {
		t.Fatalf("JWW parse failed: %v", err)
	}
	if len(jwwDoc.Entities) != 1 {
		t.Fatalf("entities = %d, want 1", len(jwwDoc.Entities))
	}

	dxfDoc := dxf.ConvertDocument(jwwDoc)
	if dxfDoc == nil {
		t.Fatal("DXF conversion returned nil")
	}

	t.Logf("Converted: %d layers, %d entities, %d blocks",
		len(dxfDoc.Layers), len(dxfDoc.Entities), len(dxfDoc.Blocks))

	if len(dxfDoc.Layers) != 256 {
		t.Errorf("layers: got %d, want 256", len(dxfDoc.Layers))
	}
	if len(dxfDoc.Entities) != 1 {
		t.Fatalf("expected exactly one converted entity, got %d", len(dxfDoc.Entities))
	}

	entityType := dxfDoc.Entities[0].EntityType()
	validTypes := []string{"LINE", "CIRCLE", "ARC", "ELLIPSE", "POINT", "TEXT", "SOLID", "INSERT"}
	valid := false
	for _, vt := range validTypes {
		if entityType == vt {
			valid = true
			break
		}
	}
	if !valid {
		t.Errorf("entity has invalid DXF type: %s", entityType)
	}
}

func TestE2E_OutputValidDXF(t *testing.T) {
	data := buildMinimalJWW(600, 0, 0, 100, 50)

	jwwDoc, err := jww.Parse(data)
	if err != nil {
		t.Fatalf("JWW parse failed: %v", err)
	}

	dxfDoc := dxf.ConvertDocument(jwwDoc)

	tmpFile := filepath.Join(t.TempDir(), "output.dxf")
	outFile, err := os.Create(tmpFile)
	if err != nil {
		t.Fatalf("failed to create output file: %v", err)
	}
	defer outFile.Close()

	if err := dxf.NewWriter(outFile).WriteDocument(dxfDoc); err != nil {
		t.Fatalf("DXF write failed: %v", err)
	}

	fi, err := os.Stat(tmpFile)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("output file is empty")
	}

	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	dxfContent := string(content)

	requiredSections := []string{
		"SECTION", "HEADER", "ENDSEC",
		"TABLES", "LAYER",
		"ENTITIES",
		"EOF",
	}

	for _, section := range requiredSections {
		if !strings.Contains(dxfContent, section) {
			t.Errorf("DXF output missing required section/keyword: %s", section)
		}
	}
}

func TestE2E_RejectsMalformedInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":            {},
		"wrong signature":  []byte("NotAJwwFile....."),
		"truncated header": append([]byte("JwwData."), 0x01),
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := jww.Parse(data); err == nil {
				t.Errorf("Parse(%s) succeeded, want an error", name)
			}
		})
	}
}

func BenchmarkE2E_FullPipeline(b *testing.B) {
	data := buildMinimalJWW(600, 0, 0, 100, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jwwDoc, err := jww.Parse(data)
		if err != nil {
			b.Fatalf("parse failed: %v", err)
		}
		_ = dxf.ConvertDocument(jwwDoc)
	}
}
