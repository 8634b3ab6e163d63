// Package dxf models the DXF (Drawing Exchange Format) entities a converted
// JWW document produces and writes them out as DXF's ASCII group-code pairs.
//
//	dxfDoc := dxf.ConvertDocument(jwwDoc)
//	dxf.NewWriter(outputFile).WriteDocument(dxfDoc)
package dxf
