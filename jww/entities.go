package jww

// decodeEntityBase reads the fixed prelude shared by every serialized
// entity. PenWidth is the only version-gated field: files at Ver.3.51 and
// later serialize it, earlier files omit it and PenWidth stays zero.
func decodeEntityBase(r *Reader, version uint32) (EntityBase, error) {
	var base EntityBase

	group, err := r.ReadDWORD()
	if err != nil {
		return base, err
	}
	base.Group = group

	penStyle, err := r.ReadBYTE()
	if err != nil {
		return base, err
	}
	base.PenStyle = penStyle

	penColor, err := r.ReadWORD()
	if err != nil {
		return base, err
	}
	base.PenColor = penColor

	if version >= 351 {
		penWidth, err := r.ReadWORD()
		if err != nil {
			return base, err
		}
		base.PenWidth = penWidth
	}

	layer, err := r.ReadWORD()
	if err != nil {
		return base, err
	}
	base.Layer = layer

	layerGroup, err := r.ReadWORD()
	if err != nil {
		return base, err
	}
	base.LayerGroup = layerGroup

	flag, err := r.ReadWORD()
	if err != nil {
		return base, err
	}
	base.Flag = flag

	return base, nil
}

// decodeLine reads a line entity (JWW class: CDataSen).
func decodeLine(r *Reader, version uint32) (*Line, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	line := &Line{EntityBase: base}

	if line.StartX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if line.StartY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if line.EndX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if line.EndY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	return line, nil
}

// decodeArc reads an arc/circle/ellipse entity (JWW class: CDataEnko).
// IsFullCircle is the nonzero-ness of a trailing DWORD; callers distinguish
// circle from ellipse by also inspecting Flatness.
func decodeArc(r *Reader, version uint32) (*Arc, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	arc := &Arc{EntityBase: base}

	if arc.CenterX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.CenterY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.Radius, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.StartAngle, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.ArcAngle, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.TiltAngle, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if arc.Flatness, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	fullCircle, err := r.ReadDWORD()
	if err != nil {
		return nil, err
	}
	arc.IsFullCircle = fullCircle != 0
	return arc, nil
}

// decodePoint reads a point entity (JWW class: CDataTen). The Code/Angle/
// Scale triple is only present on disk when PenStyle == 100; otherwise it
// defaults to (0, 0.0, 1.0).
func decodePoint(r *Reader, version uint32) (*Point, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	pt := &Point{EntityBase: base, Scale: 1.0}

	if pt.X, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if pt.Y, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	tmp, err := r.ReadDWORD()
	if err != nil {
		return nil, err
	}
	pt.IsTemporary = tmp != 0

	if base.PenStyle == 100 {
		if pt.Code, err = r.ReadDWORD(); err != nil {
			return nil, err
		}
		if pt.Angle, err = r.ReadDouble(); err != nil {
			return nil, err
		}
		if pt.Scale, err = r.ReadDouble(); err != nil {
			return nil, err
		}
	}
	return pt, nil
}

// decodeText reads a text entity (JWW class: CDataMoji). FontName and
// Content are Shift_JIS on disk, transcoded by Reader.ReadCString.
func decodeText(r *Reader, version uint32) (*Text, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	txt := &Text{EntityBase: base}

	if txt.StartX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.StartY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.EndX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.EndY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.TextType, err = r.ReadDWORD(); err != nil {
		return nil, err
	}
	if txt.SizeX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.SizeY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.Spacing, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.Angle, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if txt.FontName, err = r.ReadCString(); err != nil {
		return nil, err
	}
	if txt.Content, err = r.ReadCString(); err != nil {
		return nil, err
	}
	return txt, nil
}

// decodeSolid reads a filled-quadrilateral entity (JWW class: CDataSolid).
// The on-disk corner order is 1, 4, 2, 3; the in-memory record exposes them
// as Point1..Point4. Color is only present on disk when PenColor == 10.
func decodeSolid(r *Reader, version uint32) (*Solid, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	solid := &Solid{EntityBase: base}

	if solid.Point1X, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point1Y, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point4X, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point4Y, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point2X, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point2Y, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point3X, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if solid.Point3Y, err = r.ReadDouble(); err != nil {
		return nil, err
	}

	if base.PenColor == 10 {
		if solid.Color, err = r.ReadDWORD(); err != nil {
			return nil, err
		}
	}
	return solid, nil
}

// decodeBlock reads a block insert entity (JWW class: CDataBlock).
func decodeBlock(r *Reader, version uint32) (*Block, error) {
	base, err := decodeEntityBase(r, version)
	if err != nil {
		return nil, err
	}
	block := &Block{EntityBase: base}

	if block.RefX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if block.RefY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if block.ScaleX, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if block.ScaleY, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if block.Rotation, err = r.ReadDouble(); err != nil {
		return nil, err
	}
	if block.DefNumber, err = r.ReadDWORD(); err != nil {
		return nil, err
	}
	return block, nil
}

// decodeDimension consumes a dimension entity (JWW class: CDataSunpou)
// without producing one: dimensions are a composite of a line sub-record and
// a text sub-record that this core does not expose, but the full field
// complement must still be read so the stream stays aligned for whatever
// record follows. Ver.4.20+ files append SXF-mode annotation data.
func decodeDimension(r *Reader, version uint32) error {
	if _, err := decodeEntityBase(r, version); err != nil {
		return err
	}
	if _, err := decodeLine(r, version); err != nil {
		return err
	}
	if _, err := decodeText(r, version); err != nil {
		return err
	}

	if version >= 420 {
		if _, err := r.ReadWORD(); err != nil { // SXF mode
			return err
		}
		for i := 0; i < 2; i++ {
			if _, err := decodeLine(r, version); err != nil {
				return err
			}
		}
		for i := 0; i < 4; i++ {
			if _, err := decodeEntityBase(r, version); err != nil {
				return err
			}
			if _, err := r.ReadDouble(); err != nil {
				return err
			}
			if _, err := r.ReadDouble(); err != nil {
				return err
			}
			if _, err := r.ReadDWORD(); err != nil {
				return err
			}
		}
	}

	return nil
}
