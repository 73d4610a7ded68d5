package preview_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trimesh-systems/gotri/gotri"
	"github.com/trimesh-systems/gotri/libtri"
	"github.com/trimesh-systems/gotri/libtri/preview"
)

func TestRenderDimensions(t *testing.T) {
	m := libtri.NewMesh()
	defer m.Reclaim()
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0})
	v1 := m.AddVert(gotri.Vec3{X: 2, Y: 0})
	v2 := m.AddVert(gotri.Vec3{X: 2, Y: 1})
	m.AddFace(v0, v1, v2)

	dc := preview.Render(m, 400, 0)
	if dc.Width() != 400 {
		t.Fatalf("width %d, want 400", dc.Width())
	}
	// mesh is twice as wide as tall, so the image should be too (modulo
	// the margin)
	if h := dc.Height(); h < 100 || h > 300 {
		t.Fatalf("height %d out of range for a 2:1 mesh", h)
	}
}

func TestRenderFlatInX(t *testing.T) {
	// all verts share X; the mesh lives in the YZ plane
	m := libtri.NewMesh()
	defer m.Reclaim()
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVert(gotri.Vec3{X: 0, Y: 1, Z: 0})
	v2 := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 1})
	m.AddFace(v0, v1, v2)

	dc := preview.Render(m, 100, 0)
	if dc.Height() <= 16 {
		t.Fatalf("height %d, want room for the Y span", dc.Height())
	}

	// the v0-v1 edge projects to a vertical line near the left margin
	img := dc.Image()
	drawn := false
	for x := 6; x <= 10 && !drawn; x++ {
		r, g, b, _ := img.At(x, dc.Height()/2).RGBA()
		drawn = r != 0xffff || g != 0xffff || b != 0xffff
	}
	if !drawn {
		t.Fatal("nothing rendered for an X-degenerate mesh")
	}
}

func TestRenderEmptyMesh(t *testing.T) {
	m := libtri.NewMesh()
	defer m.Reclaim()

	dc := preview.Render(m, 64, 0)
	if dc.Width() != 64 || dc.Height() != 64 {
		t.Fatalf("empty mesh render is %dx%d", dc.Width(), dc.Height())
	}
}

func TestSavePNG(t *testing.T) {
	m := libtri.NewMesh()
	defer m.Reclaim()
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0})
	v1 := m.AddVert(gotri.Vec3{X: 1, Y: 0})
	v2 := m.AddVert(gotri.Vec3{X: 1, Y: 1})
	v3 := m.AddVert(gotri.Vec3{X: 0, Y: 1})
	m.AddFace(v0, v1, v2)
	m.AddFace(v0, v2, v3)
	m.FindEdge(v0, v2).EnableFlags(libtri.FlagBeautified)

	path := filepath.Join(t.TempDir(), "mesh.png")
	if err := preview.SavePNG(path, m, 128, libtri.FlagBeautified); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("wrote an empty PNG")
	}
}
