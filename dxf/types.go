package dxf

// Document is a DXF drawing: its layer table, its entities, and any block
// definitions referenced by an Insert.
type Document struct {
	Layers   []Layer
	Entities []Entity
	Blocks   []Block
}

// Layer is one row of the DXF LAYER table.
type Layer struct {
	Name     string
	Color    int // AutoCAD Color Index, 1-255
	LineType string
	Frozen   bool
	Locked   bool
}

// Entity is anything that can appear in the ENTITIES section: a DXF type
// tag (group code 0) followed by its own group-code/value pairs.
type Entity interface {
	EntityType() string
	GroupCodes() []GroupCode
}

// GroupCode is one group-code/value pair of the DXF ASCII wire format.
// Value holds a string, int, or float64 depending on the code.
type GroupCode struct {
	Code  int
	Value interface{}
}

// Line is a straight segment between two points.
type Line struct {
	Layer    string
	Color    int
	LineType string
	X1, Y1   float64
	X2, Y2   float64
}

func (l *Line) EntityType() string { return "LINE" }

func (l *Line) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "LINE"}, {8, l.Layer}, {62, l.Color}, {6, l.LineType},
		{10, l.X1}, {20, l.Y1}, {30, 0.0},
		{11, l.X2}, {21, l.Y2}, {31, 0.0},
	}
}

// Circle is a full circle given by center and radius.
type Circle struct {
	Layer            string
	Color            int
	LineType         string
	CenterX, CenterY float64
	Radius           float64
}

func (c *Circle) EntityType() string { return "CIRCLE" }

func (c *Circle) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "CIRCLE"}, {8, c.Layer}, {62, c.Color}, {6, c.LineType},
		{10, c.CenterX}, {20, c.CenterY}, {30, 0.0},
		{40, c.Radius},
	}
}

// Arc is a partial circle; StartAngle and EndAngle are in degrees,
// measured counterclockwise from the positive X axis.
type Arc struct {
	Layer                string
	Color                int
	LineType             string
	CenterX, CenterY     float64
	Radius               float64
	StartAngle, EndAngle float64
}

func (a *Arc) EntityType() string { return "ARC" }

func (a *Arc) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "ARC"}, {8, a.Layer}, {62, a.Color}, {6, a.LineType},
		{10, a.CenterX}, {20, a.CenterY}, {30, 0.0},
		{40, a.Radius}, {50, a.StartAngle}, {51, a.EndAngle},
	}
}

// Ellipse covers both full ellipses and elliptical arcs. MajorAxisX/Y is
// the major-axis endpoint relative to the center; MinorRatio is the
// minor/major axis ratio and must not exceed 1.0. StartParam/EndParam are
// the DXF parametric angle range in radians (0 to 2*Pi for a full ellipse).
type Ellipse struct {
	Layer                  string
	Color                  int
	LineType               string
	CenterX, CenterY       float64
	MajorAxisX, MajorAxisY float64
	MinorRatio             float64
	StartParam, EndParam   float64
}

func (e *Ellipse) EntityType() string { return "ELLIPSE" }

func (e *Ellipse) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "ELLIPSE"}, {8, e.Layer}, {62, e.Color}, {6, e.LineType},
		{10, e.CenterX}, {20, e.CenterY}, {30, 0.0},
		{11, e.MajorAxisX}, {21, e.MajorAxisY}, {31, 0.0},
		{40, e.MinorRatio}, {41, e.StartParam}, {42, e.EndParam},
	}
}

// Point is a single location.
type Point struct {
	Layer    string
	Color    int
	LineType string
	X, Y     float64
}

func (p *Point) EntityType() string { return "POINT" }

func (p *Point) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "POINT"}, {8, p.Layer}, {62, p.Color}, {6, p.LineType},
		{10, p.X}, {20, p.Y}, {30, 0.0},
	}
}

// Text is a single line of text anchored at its insertion point. Layer and
// Content pass through EscapeUnicode since DXF's ASCII flavor has no way
// to carry non-ASCII bytes directly.
type Text struct {
	Layer    string
	Color    int
	LineType string
	X, Y     float64
	Height   float64
	Rotation float64
	Content  string
	Style    string
}

func (t *Text) EntityType() string { return "TEXT" }

func (t *Text) GroupCodes() []GroupCode {
	codes := []GroupCode{
		{0, "TEXT"}, {8, EscapeUnicode(t.Layer)}, {62, t.Color}, {6, t.LineType},
		{10, t.X}, {20, t.Y}, {30, 0.0},
		{40, t.Height}, {1, EscapeUnicode(t.Content)},
	}
	if t.Rotation != 0 {
		codes = append(codes, GroupCode{50, t.Rotation})
	}
	if t.Style != "" {
		codes = append(codes, GroupCode{7, t.Style})
	}
	return codes
}

// Solid is a filled triangle (X4/Y4 repeating X3/Y3) or quadrilateral.
type Solid struct {
	Layer    string
	Color    int
	LineType string
	X1, Y1   float64
	X2, Y2   float64
	X3, Y3   float64
	X4, Y4   float64
}

func (s *Solid) EntityType() string { return "SOLID" }

func (s *Solid) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "SOLID"}, {8, s.Layer}, {62, s.Color}, {6, s.LineType},
		{10, s.X1}, {20, s.Y1}, {30, 0.0},
		{11, s.X2}, {21, s.Y2}, {31, 0.0},
		{12, s.X3}, {22, s.Y3}, {32, 0.0},
		{13, s.X4}, {23, s.Y4}, {33, 0.0},
	}
}

// Insert is a block reference: a placement of a Block at a point with its
// own scale and rotation, independent of the block definition's own.
type Insert struct {
	Layer     string
	Color     int
	LineType  string
	BlockName string
	X, Y      float64
	ScaleX    float64
	ScaleY    float64
	Rotation  float64
}

func (i *Insert) EntityType() string { return "INSERT" }

func (i *Insert) GroupCodes() []GroupCode {
	return []GroupCode{
		{0, "INSERT"}, {8, i.Layer}, {62, i.Color}, {6, i.LineType},
		{2, i.BlockName}, {10, i.X}, {20, i.Y}, {30, 0.0},
		{41, i.ScaleX}, {42, i.ScaleY}, {43, 1.0},
		{50, i.Rotation},
	}
}

// Block is a reusable named group of entities, placed via Insert. Block
// does not itself implement Entity; the writer emits it under its own
// BLOCKS section rather than as an ENTITIES member.
type Block struct {
	Name         string
	BaseX, BaseY float64
	Entities     []Entity
}
