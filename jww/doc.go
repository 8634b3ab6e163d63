// Package jww parses Jw_cad (JWW) drawings into Go structures that expose
// version metadata, layer information, entities, and (always empty) block
// definitions.
//
// The package reads the binary JWW format — a direct serialization of the
// originating application's object graph, including MFC-CArchive-style
// class-identifier interning — and converts Shift_JIS encoded strings to
// Unicode. Parsed documents can then be inspected directly or transformed
// into DXF entities via the companion dxf package.
package jww
