package dxf

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Writer serializes a Document to ASCII DXF, assigning each TABLE and each
// table record a unique handle as it goes; BLOCK records carry no handle.
type Writer struct {
	w          io.Writer
	nextHandle int
}

// NewWriter wraps w; handles start at 1 and auto-increment per record.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, nextHandle: 1}
}

func (w *Writer) getHandle() string {
	h := fmt.Sprintf("%X", w.nextHandle)
	w.nextHandle++
	return h
}

// EscapeUnicode rewrites non-ASCII or non-printable runes as DXF's
// \U+XXXX escape, since the ASCII DXF flavor has no native way to carry
// them (e.g. "日本語" -> "\U+65E5\U+672C\U+8A9E").
func EscapeUnicode(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r > 127 || !unicode.IsPrint(r) {
			fmt.Fprintf(&sb, "\\U+%04X", r)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// WriteDocument emits HEADER, TABLES, BLOCKS, ENTITIES, then EOF, in that
// required order.
func (w *Writer) WriteDocument(doc *Document) error {
	for _, section := range []func(*Document) error{
		func(*Document) error { return w.writeHeader() },
		w.writeTables,
		w.writeBlocks,
		w.writeEntities,
	} {
		if err := section(doc); err != nil {
			return err
		}
	}
	return w.writeGroupCode(0, "EOF")
}

func (w *Writer) writeHeader() error {
	if err := w.writeSection("HEADER"); err != nil {
		return err
	}
	if err := w.writePairs(
		pair{9, "$ACADVER"}, pair{1, "AC1015"}, // AutoCAD 2000
		pair{9, "$MEASUREMENT"}, pair{70, 1}, // metric
	); err != nil {
		return err
	}
	return w.writeEndSection()
}

func (w *Writer) writeTables(doc *Document) error {
	if err := w.writeSection("TABLES"); err != nil {
		return err
	}
	if err := w.writeLinetypeTable(); err != nil {
		return err
	}
	if err := w.writeLayerTable(doc); err != nil {
		return err
	}
	if err := w.writeStyleTable(); err != nil {
		return err
	}
	return w.writeEndSection()
}

// writeLinetypeTable declares the three linetypes every DXF reader
// expects to find: BYLAYER, BYBLOCK, and CONTINUOUS.
func (w *Writer) writeLinetypeTable() error {
	if err := w.writePairs(pair{0, "TABLE"}, pair{2, "LTYPE"}, pair{5, w.getHandle()}, pair{70, 3}); err != nil {
		return err
	}
	for _, lt := range []struct {
		name string
		desc string
	}{
		{"BYLAYER", ""},
		{"BYBLOCK", ""},
		{"CONTINUOUS", "Solid line"},
	} {
		if err := w.writePairs(
			pair{0, "LTYPE"}, pair{5, w.getHandle()}, pair{2, lt.name}, pair{70, 0},
			pair{3, lt.desc}, pair{72, 65}, pair{73, 0}, pair{40, 0.0},
		); err != nil {
			return err
		}
	}
	return w.writeGroupCode(0, "ENDTAB")
}

func (w *Writer) writeLayerTable(doc *Document) error {
	if err := w.writePairs(pair{0, "TABLE"}, pair{2, "LAYER"}, pair{5, w.getHandle()}, pair{70, len(doc.Layers) + 1}); err != nil {
		return err
	}

	// Layer 0 is required and must come first.
	if err := w.writePairs(
		pair{0, "LAYER"}, pair{5, w.getHandle()}, pair{2, "0"}, pair{70, 0},
		pair{62, 7}, pair{6, "CONTINUOUS"},
	); err != nil {
		return err
	}

	for _, layer := range doc.Layers {
		flags := 0
		if layer.Frozen {
			flags |= 1
		}
		if layer.Locked {
			flags |= 4
		}
		if err := w.writePairs(
			pair{0, "LAYER"}, pair{5, w.getHandle()}, pair{2, EscapeUnicode(layer.Name)},
			pair{70, flags}, pair{62, layer.Color}, pair{6, layer.LineType},
		); err != nil {
			return err
		}
	}

	return w.writeGroupCode(0, "ENDTAB")
}

func (w *Writer) writeStyleTable() error {
	if err := w.writePairs(pair{0, "TABLE"}, pair{2, "STYLE"}, pair{5, w.getHandle()}, pair{70, 1}); err != nil {
		return err
	}
	if err := w.writePairs(
		pair{0, "STYLE"}, pair{5, w.getHandle()}, pair{2, "STANDARD"}, pair{70, 0},
		pair{40, 0.0}, pair{41, 1.0}, pair{50, 0.0}, pair{71, 0}, pair{42, 2.5},
		pair{3, "txt"}, pair{4, ""},
	); err != nil {
		return err
	}
	return w.writeGroupCode(0, "ENDTAB")
}

func (w *Writer) writeBlocks(doc *Document) error {
	if err := w.writeSection("BLOCKS"); err != nil {
		return err
	}
	for _, block := range doc.Blocks {
		if err := w.writePairs(
			pair{0, "BLOCK"}, pair{8, "0"}, pair{2, block.Name}, pair{70, 0},
			pair{10, block.BaseX}, pair{20, block.BaseY}, pair{30, 0.0}, pair{3, block.Name},
		); err != nil {
			return err
		}
		for _, entity := range block.Entities {
			if err := w.writeEntity(entity); err != nil {
				return err
			}
		}
		if err := w.writePairs(pair{0, "ENDBLK"}, pair{8, "0"}); err != nil {
			return err
		}
	}
	return w.writeEndSection()
}

func (w *Writer) writeEntities(doc *Document) error {
	if err := w.writeSection("ENTITIES"); err != nil {
		return err
	}
	for _, entity := range doc.Entities {
		if err := w.writeEntity(entity); err != nil {
			return err
		}
	}
	return w.writeEndSection()
}

func (w *Writer) writeEntity(entity Entity) error {
	for _, gc := range entity.GroupCodes() {
		if err := w.writeGroupCode(gc.Code, gc.Value); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeSection(name string) error {
	return w.writePairs(pair{0, "SECTION"}, pair{2, name})
}

func (w *Writer) writeEndSection() error {
	return w.writeGroupCode(0, "ENDSEC")
}

type pair struct {
	code  int
	value interface{}
}

func (w *Writer) writePairs(pairs ...pair) error {
	for _, p := range pairs {
		if err := w.writeGroupCode(p.code, p.value); err != nil {
			return err
		}
	}
	return nil
}

// writeGroupCode writes one group-code/value line pair: the code
// right-aligned in 3 columns, then the value on the following line.
func (w *Writer) writeGroupCode(code int, value interface{}) error {
	var line string
	switch v := value.(type) {
	case string:
		line = fmt.Sprintf("%3d\n%s\n", code, v)
	case int:
		line = fmt.Sprintf("%3d\n%d\n", code, v)
	case float64:
		line = fmt.Sprintf("%3d\n%f\n", code, v)
	default:
		line = fmt.Sprintf("%3d\n%v\n", code, v)
	}
	_, err := io.WriteString(w.w, line)
	return err
}

// ToString renders doc to a string via an in-memory Writer, for callers
// that don't want to manage an io.Writer themselves.
func ToString(doc *Document) string {
	var sb strings.Builder
	_ = NewWriter(&sb).WriteDocument(doc)
	return sb.String()
}
