package dxf

import (
	"fmt"
	"math"

	"github.com/hkondo/jwwcore/jww"
)

// ConvertDocument maps a decoded JWW document onto the DXF model: 256
// layers from the layer-group/layer matrix, one DXF entity per convertible
// JWW entity, and one DXF block per JWW block definition (always empty,
// since the decoder never populates Document.BlockDefs).
func ConvertDocument(doc *jww.Document) *Document {
	return &Document{
		Layers:   convertLayers(doc),
		Entities: convertEntities(doc),
		Blocks:   convertBlocks(doc),
	}
}

func convertLayers(doc *jww.Document) []Layer {
	layers := make([]Layer, 0, 256)
	for g := 0; g < 16; g++ {
		for l := 0; l < 16; l++ {
			layer := &doc.LayerGroups[g].Layers[l]
			layers = append(layers, Layer{
				Name:     layerName(layer.Name, g, l),
				Color:    (g*16+l)%255 + 1,
				LineType: "CONTINUOUS",
				Frozen:   layer.State == 0,
				Locked:   layer.Protect != 0,
			})
		}
	}
	return layers
}

func convertEntities(doc *jww.Document) []Entity {
	var out []Entity
	for _, e := range doc.Entities {
		if d := convertEntity(e, doc); d != nil {
			out = append(out, d)
		}
	}
	return out
}

// convertEntity dispatches on the decoded entity's concrete type. Arcs
// split three ways on disk-encoded geometry alone: a full circle with unit
// flatness becomes a Circle, any other flatness becomes an Ellipse (major/
// minor axes swapped when the minor ratio exceeds 1, matching DXF's
// MinorRatio<=1 convention), and everything else stays an Arc. Temporary
// construction points carry no DXF representation and are dropped.
func convertEntity(e jww.Entity, doc *jww.Document) Entity {
	base := e.Base()
	layer := getLayerName(doc, base.LayerGroup, base.Layer)
	color := mapColor(base.PenColor)

	switch v := e.(type) {
	case *jww.Line:
		return &Line{Layer: layer, Color: color, X1: v.StartX, Y1: v.StartY, X2: v.EndX, Y2: v.EndY}

	case *jww.Arc:
		return convertArc(v, layer, color)

	case *jww.Point:
		if v.IsTemporary {
			return nil
		}
		return &Point{Layer: layer, Color: color, X: v.X, Y: v.Y}

	case *jww.Text:
		height := v.SizeY
		if height == 0 {
			height = 2.5
		}
		return &Text{
			Layer: layer, Color: color,
			X: v.StartX, Y: v.StartY,
			Height:   height,
			Rotation: v.Angle,
			Content:  v.Content,
			Style:    "STANDARD",
		}

	case *jww.Solid:
		return &Solid{
			Layer: layer, Color: color,
			X1: v.Point1X, Y1: v.Point1Y,
			X2: v.Point2X, Y2: v.Point2Y,
			X3: v.Point3X, Y3: v.Point3Y,
			X4: v.Point4X, Y4: v.Point4Y,
		}

	case *jww.Block:
		return &Insert{
			Layer: layer, Color: color,
			BlockName: getBlockName(doc, v.DefNumber),
			X:         v.RefX, Y: v.RefY,
			ScaleX: v.ScaleX, ScaleY: v.ScaleY,
			Rotation: radToDeg(v.Rotation),
		}
	}
	return nil
}

func convertArc(v *jww.Arc, layer string, color int) Entity {
	if v.IsFullCircle && v.Flatness == 1.0 {
		return &Circle{Layer: layer, Color: color, CenterX: v.CenterX, CenterY: v.CenterY, Radius: v.Radius}
	}

	if v.Flatness != 1.0 {
		majorRadius, minorRatio, tilt := v.Radius, v.Flatness, v.TiltAngle
		if minorRatio > 1.0 {
			majorRadius = v.Radius * v.Flatness
			minorRatio = 1.0 / v.Flatness
			tilt += math.Pi / 2
		}

		startParam, endParam := v.StartAngle, v.StartAngle+v.ArcAngle
		if v.IsFullCircle {
			startParam, endParam = 0, 2*math.Pi
		}

		return &Ellipse{
			Layer: layer, Color: color,
			CenterX: v.CenterX, CenterY: v.CenterY,
			MajorAxisX: majorRadius * math.Cos(tilt),
			MajorAxisY: majorRadius * math.Sin(tilt),
			MinorRatio: minorRatio,
			StartParam: startParam,
			EndParam:   endParam,
		}
	}

	return &Arc{
		Layer: layer, Color: color,
		CenterX: v.CenterX, CenterY: v.CenterY, Radius: v.Radius,
		StartAngle: radToDeg(v.StartAngle),
		EndAngle:   radToDeg(v.StartAngle + v.ArcAngle),
	}
}

func convertBlocks(doc *jww.Document) []Block {
	var blocks []Block
	for _, bd := range doc.BlockDefs {
		block := Block{Name: bd.Name}
		for _, e := range bd.Entities {
			if d := convertEntity(e, doc); d != nil {
				block.Entities = append(block.Entities, d)
			}
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func getLayerName(doc *jww.Document, group, layer uint16) string {
	if int(group) < 16 && int(layer) < 16 {
		if name := doc.LayerGroups[group].Layers[layer].Name; name != "" {
			return name
		}
	}
	return fmt.Sprintf("%X-%X", group, layer)
}

func layerName(name string, group, layer int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%X-%X", group, layer)
}

func getBlockName(doc *jww.Document, defNumber uint32) string {
	for _, bd := range doc.BlockDefs {
		if bd.Number == defNumber {
			if bd.Name != "" {
				return bd.Name
			}
			break
		}
	}
	return fmt.Sprintf("BLOCK_%d", defNumber)
}

// mapColor maps a JWW pen color to a DXF ACI index: 0 stays BYLAYER, the
// basic palette 1-9 (cyan, white, green, yellow, magenta, blue, black/white,
// red, gray) maps to the matching ACI color, and SXF extended colors (>=100)
// shift down to DXF's 10+ range.
func mapColor(jwwColor uint16) int {
	switch {
	case jwwColor == 0:
		return 0
	case jwwColor <= 9:
		return [...]int{0, 4, 7, 3, 2, 6, 5, 7, 1, 8}[jwwColor]
	case jwwColor >= 100:
		return int(jwwColor-100) + 10
	default:
		return int(jwwColor)
	}
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
