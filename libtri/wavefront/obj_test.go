package wavefront_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/trimesh-systems/gotri/gotri"
	"github.com/trimesh-systems/gotri/libtri/wavefront"
)

const objQuad = `# a unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`

func TestParseQuad(t *testing.T) {
	m, err := wavefront.ParseString("quad.obj", objQuad)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	if m.NumVerts() != 4 || m.NumFaces() != 2 {
		t.Fatalf("got %d verts, %d faces", m.NumVerts(), m.NumFaces())
	}
	if m.Vert(2).Co != (gotri.Vec3{X: 1, Y: 1, Z: 0}) {
		t.Fatalf("vert 2 at %v", m.Vert(2).Co)
	}
	if m.FindEdge(m.Vert(0), m.Vert(2)) == nil {
		t.Fatal("shared diagonal missing")
	}
}

func TestParseSkipsNonGeometry(t *testing.T) {
	src := `mtllib scene.mtl
o bent_quad
v 0 0 0
v 1 0 0
v 1 1 0.1
vt 0.5 0.5
vn 0 0 1
usemtl gray
s off
f 1/1/1 2/1/1 3/1/1
f 1//1 3//1 2//1
`
	m, err := wavefront.ParseString("skip.obj", src)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	if m.NumVerts() != 3 || m.NumFaces() != 2 {
		t.Fatalf("got %d verts, %d faces", m.NumVerts(), m.NumFaces())
	}
}

func TestParsePolygonFan(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := wavefront.ParseString("poly.obj", src)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	// the quad fans into two triangles sharing the 1-3 diagonal
	if m.NumFaces() != 2 {
		t.Fatalf("got %d faces, want 2", m.NumFaces())
	}
	if m.FindEdge(m.Vert(0), m.Vert(2)) == nil {
		t.Fatal("fan diagonal missing")
	}
}

func TestParseNegativeRefs(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	m, err := wavefront.ParseString("neg.obj", src)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	if m.NumFaces() != 1 {
		t.Fatalf("got %d faces, want 1", m.NumFaces())
	}
}

func TestParseBadVertRef(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`
	if _, err := wavefront.ParseString("bad.obj", src); errors.Cause(err) != gotri.ErrBadVertRef {
		t.Fatalf("got %v, want ErrBadVertRef", err)
	}

	if _, err := wavefront.ParseString("zero.obj", "v 0 0 0\nf 0 0 0\n"); errors.Cause(err) != gotri.ErrBadVertRef {
		t.Fatalf("got %v, want ErrBadVertRef", err)
	}
}

func TestParseMissingNewline(t *testing.T) {
	m, err := wavefront.ParseString("eof.obj", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()
	if m.NumFaces() != 1 {
		t.Fatalf("got %d faces, want 1", m.NumFaces())
	}
}

func TestExportRoundTrip(t *testing.T) {
	m, err := wavefront.ParseString("quad.obj", objQuad)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	var buf bytes.Buffer
	if err := wavefront.Export(&buf, m); err != nil {
		t.Fatal(err)
	}

	m2, err := wavefront.ParseString("export.obj", buf.String())
	if err != nil {
		t.Fatal(err)
	}
	defer m2.Reclaim()

	if m2.NumVerts() != m.NumVerts() || m2.NumFaces() != m.NumFaces() {
		t.Fatalf("round trip drifted: %d verts, %d faces", m2.NumVerts(), m2.NumFaces())
	}
	for i := 0; i < m.NumVerts(); i++ {
		if m.Vert(i).Co != m2.Vert(i).Co {
			t.Fatalf("vert %d moved: %v vs %v", i, m.Vert(i).Co, m2.Vert(i).Co)
		}
	}

	// exporting the re-parsed mesh reproduces the bytes
	var buf2 bytes.Buffer
	if err := wavefront.Export(&buf2, m2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), buf2.Bytes()) {
		t.Fatal("export is not deterministic")
	}
}

func TestParseExportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.obj")

	m, err := wavefront.ParseString("quad.obj", objQuad)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Reclaim()

	if err := wavefront.ExportFile(path, m); err != nil {
		t.Fatal(err)
	}
	m2, err := wavefront.ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer m2.Reclaim()

	if m2.NumVerts() != 4 || m2.NumFaces() != 2 {
		t.Fatalf("got %d verts, %d faces", m2.NumVerts(), m2.NumFaces())
	}
}
