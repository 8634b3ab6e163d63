package jww

import "fmt"

const signature = "JwwData."

// Parse decodes a JWW (Jw_cad) drawing from buf and returns the resulting
// Document.
//
// Parse is a pure function of its input: it never mutates buf, never retains
// it after returning, and carries no state across calls. Decoding proceeds
// strictly forward — header, then the 16x16 layer-group matrix, then a
// bounded scan to locate the entity stream, then the entity stream itself,
// then document assembly — with no seek-backward and no retry. The first
// error encountered aborts the decode; no partial Document is ever returned.
//
// Example:
//
//	data, err := os.ReadFile("drawing.jww")
//	if err != nil {
//		return err
//	}
//	doc, err := jww.Parse(data)
//	if err != nil {
//		return fmt.Errorf("parsing JWW file: %w", err)
//	}
//	fmt.Printf("Version: %d, Entities: %d\n", doc.Version, len(doc.Entities))
func Parse(buf []byte) (*Document, error) {
	if len(buf) < 8 || string(buf[:8]) != signature {
		return nil, ErrInvalidSignature
	}

	doc, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	entityListOffset := findEntityListOffset(buf, doc.Version)
	if entityListOffset < 0 {
		return nil, ErrEntityListNotFound
	}

	entityReader := NewReader(buf[entityListOffset:])
	entities, err := decodeEntityStream(entityReader, doc.Version)
	if err != nil {
		return nil, fmt.Errorf("decoding entity stream: %w", err)
	}
	doc.Entities = entities

	assemble(doc)

	return doc, nil
}

// decodeHeader reads the fixed-shape document header: version, memo, paper
// size, write-layer-group, and the 16x16 layer-group/layer matrix. Layer
// names are not part of the fixed header shape; they are defaulted by
// assemble.
func decodeHeader(buf []byte) (*Document, error) {
	r := NewReader(buf)
	if err := r.Skip(len(signature)); err != nil {
		return nil, err
	}

	doc := &Document{}

	version, err := r.ReadDWORD()
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	doc.Version = version

	memo, err := r.ReadCString()
	if err != nil {
		return nil, fmt.Errorf("reading memo: %w", err)
	}
	doc.Memo = memo

	paperSize, err := r.ReadDWORD()
	if err != nil {
		return nil, fmt.Errorf("reading paper size: %w", err)
	}
	doc.PaperSize = paperSize

	writeLayerGroup, err := r.ReadDWORD()
	if err != nil {
		return nil, fmt.Errorf("reading write layer group: %w", err)
	}
	doc.WriteLayerGroup = writeLayerGroup

	for g := 0; g < 16; g++ {
		lg := &doc.LayerGroups[g]

		if lg.State, err = r.ReadDWORD(); err != nil {
			return nil, fmt.Errorf("reading layer group %d state: %w", g, err)
		}
		if lg.WriteLayer, err = r.ReadDWORD(); err != nil {
			return nil, fmt.Errorf("reading layer group %d write layer: %w", g, err)
		}
		if lg.Scale, err = r.ReadDouble(); err != nil {
			return nil, fmt.Errorf("reading layer group %d scale: %w", g, err)
		}
		if lg.Protect, err = r.ReadDWORD(); err != nil {
			return nil, fmt.Errorf("reading layer group %d protect: %w", g, err)
		}

		for l := 0; l < 16; l++ {
			layer := &lg.Layers[l]
			if layer.State, err = r.ReadDWORD(); err != nil {
				return nil, fmt.Errorf("reading layer %d/%d state: %w", g, l, err)
			}
			if layer.Protect, err = r.ReadDWORD(); err != nil {
				return nil, fmt.Errorf("reading layer %d/%d protect: %w", g, l, err)
			}
		}
	}

	return doc, nil
}

// assemble finalizes a decoded Document: every LayerGroup and Layer gets a
// default name when the file carried none, and BlockDefs is left as the
// reserved empty slice — the entity-list locator only ever reaches the
// entity stream, never a block-definition section, so there is nothing to
// populate it with.
func assemble(doc *Document) {
	for g := 0; g < 16; g++ {
		lg := &doc.LayerGroups[g]
		if lg.Name == "" {
			lg.Name = fmt.Sprintf("Group%X", g)
		}
		for l := 0; l < 16; l++ {
			layer := &lg.Layers[l]
			if layer.Name == "" {
				layer.Name = fmt.Sprintf("%X-%X", g, l)
			}
		}
	}
	if doc.BlockDefs == nil {
		doc.BlockDefs = []BlockDef{}
	}
}
