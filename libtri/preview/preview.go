// Package preview renders quick top-down wireframe images of a mesh,
// useful for eyeballing what a beautify pass did.
package preview

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/trimesh-systems/gotri/libtri"
)

// Render draws an orthographic XY wireframe of the mesh onto a new context
// widthPx wide (height follows the mesh's aspect ratio).  Edges carrying any
// of the highlight flag bits are drawn in red.
func Render(m *libtri.Mesh, widthPx int, highlight libtri.ElemFlags) *gg.Context {
	const margin = 8.0

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range m.Verts() {
		minX = math.Min(minX, v.Co.X)
		maxX = math.Max(maxX, v.Co.X)
		minY = math.Min(minY, v.Co.Y)
		maxY = math.Max(maxY, v.Co.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if m.NumVerts() == 0 || (spanX <= 0 && spanY <= 0) {
		dc := gg.NewContext(widthPx, widthPx)
		dc.SetRGB(1, 1, 1)
		dc.Clear()
		return dc
	}

	// a mesh flat in X still renders, scaled by its Y extent
	span := spanX
	if span <= 0 {
		span = spanY
	}
	scale := (float64(widthPx) - 2*margin) / span
	heightPx := int(spanY*scale + 2*margin)
	if heightPx < 1 {
		heightPx = 1
	}

	dc := gg.NewContext(widthPx, heightPx)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(1)

	toPx := func(v *libtri.Vert) (float64, float64) {
		// flip Y so +Y is up in the image
		return margin + (v.Co.X-minX)*scale, float64(heightPx) - margin - (v.Co.Y-minY)*scale
	}

	for _, e := range m.Edges() {
		if highlight != 0 && e.HasFlags(highlight) {
			dc.SetRGB(0.85, 0.1, 0.1)
		} else {
			dc.SetRGB(0.15, 0.15, 0.15)
		}
		va, vb := e.Verts()
		x0, y0 := toPx(va)
		x1, y1 := toPx(vb)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}
	return dc
}

// SavePNG renders the mesh and writes it as a PNG at path.
func SavePNG(path string, m *libtri.Mesh, widthPx int, highlight libtri.ElemFlags) error {
	return Render(m, widthPx, highlight).SavePNG(path)
}
