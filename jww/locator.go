package jww

// findEntityListOffset scans data for the start of the serialized entity
// stream. The drawing format's header decoder knows how to read the fixed
// document header and the 16x16 layer matrix, but nothing announces where
// the header's trailing, implementation-defined bytes end and the entity
// stream begins — so this performs a bounded, single-pass scan for the
// first class-definition record, which has a recognizable shape:
//
//	0xFF 0xFF  <ver_lo> <ver_hi>  <name_len_lo> <name_len_hi>  "CData..."
//
// ver_lo/ver_hi are the low two bytes of the document version (the schema
// word every class-definition record carries equals the file version), and
// name_len must be in [8, 20] with the following name_len bytes starting
// with the ASCII sequence "CData". The entity count WORD immediately
// precedes this pattern, so the located offset is two bytes before the
// match.
//
// The scan never dereferences past the buffer: each candidate position
// validates that name_len plus the fixed 6-byte prefix fits before reading
// the candidate class name.
func findEntityListOffset(data []byte, version uint32) int {
	verLo := byte(version)
	verHi := byte(version >> 8)

	end := len(data) - 20
	for i := 100; i < end; i++ {
		if data[i] != 0xFF || data[i+1] != 0xFF {
			continue
		}
		if data[i+2] != verLo || data[i+3] != verHi {
			continue
		}
		nameLen := int(data[i+4]) | int(data[i+5])<<8
		if nameLen < 8 || nameLen > 20 {
			continue
		}
		if i+6+nameLen > len(data) {
			continue
		}
		className := data[i+6 : i+6+nameLen]
		if len(className) < 5 || string(className[:5]) != "CData" {
			continue
		}
		return i - 2
	}

	return -1
}
