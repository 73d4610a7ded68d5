// Package wavefront reads and writes triangle meshes as Wavefront OBJ text.
//
// Only the geometry statements matter here: `v` lines define positions and
// `f` lines define faces (faces with more than 3 corners are fanned into
// triangles).  Everything else -- normals, texcoords, materials, groups --
// is parsed and dropped.
package wavefront

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/trimesh-systems/gotri/gotri"
	"github.com/trimesh-systems/gotri/libtri"
)

var sObjLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.\-]*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var sParseObj = participle.MustBuild[objDoc](
	participle.Lexer(sObjLexer),
)

type objDoc struct {
	Lines []*objLine `@@*`
}

type objLine struct {
	Vert *objVert `( "v" @@`
	Face *objFace `| "f" @@`
	Skip *objSkip `| @@ )? EOL`
}

type objVert struct {
	X     float64   `@Number`
	Y     float64   `@Number`
	Z     float64   `@Number`
	Extra []float64 `@Number*`
}

type objFace struct {
	Refs []*objRef `@@ @@ @@+`
}

// objRef is one face corner: a vertex reference with optional texcoord and
// normal references (`v`, `v/t`, `v//n`, or `v/t/n`).
type objRef struct {
	V int  `@Number`
	T *int `("/" @Number?`
	N *int `("/" @Number)?)?`
}

type objSkip struct {
	Keyword string   `@Ident`
	Args    []string `@(Number | Ident | Slash)*`
}

// ParseString parses OBJ text into a fresh pooled mesh.
// name is used in parse error positions only.
func ParseString(name, src string) (*libtri.Mesh, error) {
	if len(src) > 0 && src[len(src)-1] != '\n' {
		src += "\n"
	}
	doc, err := sParseObj.ParseString(name, src)
	if err != nil {
		return nil, err
	}

	m := libtri.NewMesh()
	for _, line := range doc.Lines {
		switch {
		case line.Vert != nil:
			m.AddVert(gotri.Vec3{X: line.Vert.X, Y: line.Vert.Y, Z: line.Vert.Z})

		case line.Face != nil:
			if err := addFaceRefs(m, line.Face.Refs); err != nil {
				m.Reclaim()
				return nil, err
			}
		}
	}
	return m, nil
}

// ParseFile parses the OBJ file at path into a fresh pooled mesh.
func ParseFile(path string) (*libtri.Mesh, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ParseString(path, string(src))
}

func addFaceRefs(m *libtri.Mesh, refs []*objRef) error {
	if len(refs) < 3 {
		return gotri.ErrVertsExpected
	}
	verts := make([]*libtri.Vert, len(refs))
	for i, ref := range refs {
		idx := ref.V
		switch {
		case idx > 0:
			idx-- // OBJ refs are 1-based
		case idx < 0:
			idx += m.NumVerts() // negative refs count back from the latest vert
		default:
			return errors.Wrap(gotri.ErrBadVertRef, "vertex 0")
		}
		if idx < 0 || idx >= m.NumVerts() {
			return errors.Wrapf(gotri.ErrBadVertRef, "vertex %d of %d", ref.V, m.NumVerts())
		}
		verts[i] = m.Vert(idx)
	}

	// fan-triangulate polygons
	for i := 1; i+1 < len(verts); i++ {
		if _, err := m.AddFace(verts[0], verts[i], verts[i+1]); err != nil {
			return errors.Wrapf(err, "face (%d corners)", len(verts))
		}
	}
	return nil
}
