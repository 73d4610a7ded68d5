package libtri

import (
	"sync"

	"github.com/trimesh-systems/gotri/gotri"
)

// Vert is a mesh vertex.  Verts are never removed, so a Vert's index is
// stable for the life of its Mesh.
type Vert struct {
	Co    gotri.Vec3
	idx   int32
	tag   bool
	edges []*Edge // disk: all edges using this vert
}

func (v *Vert) Index() int32 { return v.idx }
func (v *Vert) Tag() bool    { return v.tag }

// SetTag marks or unmarks this vert for gotri.VertRestrictTag.
func (v *Vert) SetTag(on bool) { v.tag = on }

// Edge connects two verts and carries a radial cycle of the loops that use
// it, one per incident face.
type Edge struct {
	v1, v2 *Vert
	l      *Loop // any one loop of the radial cycle, nil for wire edges
	idx    int32 // scratch index, overwritten by tools such as BeautifyFill
	pos    int32 // position in Mesh.edges
	flags  ElemFlags
}

func (e *Edge) Verts() (*Vert, *Vert) { return e.v1, e.v2 }

// Index returns this edge's scratch index.  Tools are free to overwrite it;
// treat it as dirty after any tool runs.
func (e *Edge) Index() int32     { return e.idx }
func (e *Edge) SetIndex(i int32) { e.idx = i }

func (e *Edge) Flags() ElemFlags            { return e.flags }
func (e *Edge) EnableFlags(mask ElemFlags)  { e.flags |= mask }
func (e *Edge) DisableFlags(mask ElemFlags) { e.flags &^= mask }
func (e *Edge) HasFlags(mask ElemFlags) bool {
	return e.flags&mask != 0
}

func (e *Edge) hasVert(v *Vert) bool { return e.v1 == v || e.v2 == v }

func (e *Edge) otherVert(v *Vert) *Vert {
	if e.v1 == v {
		return e.v2
	}
	return e.v1
}

// IsManifold reports whether exactly two faces use this edge.
func (e *Edge) IsManifold() bool {
	return e.l != nil && e.l.radialNext != e.l && e.l.radialNext.radialNext == e.l
}

// OppositeVertFirst returns the vert of the edge's first face that is not on
// the edge.  The edge must have at least one face.
func (e *Edge) OppositeVertFirst() *Vert { return e.l.prev.v }

// OppositeVertSecond returns the vert of the edge's second face that is not
// on the edge.  The edge must be manifold.
func (e *Edge) OppositeVertSecond() *Vert { return e.l.radialNext.prev.v }

// Faces returns the two faces of a manifold edge.
func (e *Edge) Faces() (*Face, *Face) {
	return e.l.f, e.l.radialNext.f
}

// QuadEdges returns the four other edges of the two triangles sharing a
// manifold edge.
func (e *Edge) QuadEdges() [4]*Edge {
	l1 := e.l
	l2 := e.l.radialNext
	return [4]*Edge{l1.next.e, l1.prev.e, l2.next.e, l2.prev.e}
}

// Loop is one corner of a face: the vert v, the edge running from v to
// next.v, and the face itself.  Loops link cyclically around their face and
// radially around their edge.
type Loop struct {
	v *Vert
	e *Edge
	f *Face

	next, prev             *Loop // around the face
	radialNext, radialPrev *Loop // around the edge
}

func (l *Loop) Vert() *Vert { return l.v }
func (l *Loop) Edge() *Edge { return l.e }
func (l *Loop) Face() *Face { return l.f }
func (l *Loop) Next() *Loop { return l.next }
func (l *Loop) Prev() *Loop { return l.prev }

// Face is a triangle.
type Face struct {
	l     *Loop
	pos   int32
	flags ElemFlags
}

func (f *Face) Loop() *Loop { return f.l }

func (f *Face) Verts() [3]*Vert {
	return [3]*Vert{f.l.v, f.l.next.v, f.l.prev.v}
}

func (f *Face) Flags() ElemFlags           { return f.flags }
func (f *Face) EnableFlags(mask ElemFlags) { f.flags |= mask }
func (f *Face) HasFlags(mask ElemFlags) bool {
	return f.flags&mask != 0
}

// Mesh owns its verts, edges, and faces.
type Mesh struct {
	verts []*Vert
	edges []*Edge
	faces []*Face
}

var meshPool = sync.Pool{
	New: func() interface{} { return &Mesh{} },
}

// NewMesh returns an empty mesh from the shared pool.
func NewMesh() *Mesh {
	m := meshPool.Get().(*Mesh)
	m.Init()
	return m
}

// Init resets this mesh to empty.
func (m *Mesh) Init() {
	m.verts = m.verts[:0]
	m.edges = m.edges[:0]
	m.faces = m.faces[:0]
}

// Reclaim recycles this Mesh instance into a pool for reuse.
// Caller asserts that no more references to this instance (or its elements)
// will persist.
func (m *Mesh) Reclaim() {
	meshPool.Put(m)
}

func (m *Mesh) NumVerts() int { return len(m.verts) }
func (m *Mesh) NumEdges() int { return len(m.edges) }
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Verts returns the mesh's vert list, in index order.  Treat as read-only.
func (m *Mesh) Verts() []*Vert { return m.verts }

// Edges returns the mesh's edge list.  Order changes as edges die.
func (m *Mesh) Edges() []*Edge { return m.edges }

// Faces returns the mesh's face list.  Order changes as faces die.
func (m *Mesh) Faces() []*Face { return m.faces }

// Vert returns the vert with the given index.
func (m *Mesh) Vert(i int) *Vert { return m.verts[i] }

// GetInfo returns this mesh's element counts.
func (m *Mesh) GetInfo() gotri.MeshInfo {
	return gotri.MeshInfo{
		NumVerts: uint32(len(m.verts)),
		NumEdges: uint32(len(m.edges)),
		NumFaces: uint32(len(m.faces)),
	}
}

// AddVert appends a new vert at the given position.
func (m *Mesh) AddVert(co gotri.Vec3) *Vert {
	v := &Vert{
		Co:  co,
		idx: int32(len(m.verts)),
	}
	m.verts = append(m.verts, v)
	return v
}

// FindEdge returns the edge connecting va and vb, or nil.
func (m *Mesh) FindEdge(va, vb *Vert) *Edge {
	for _, e := range va.edges {
		if e.hasVert(vb) {
			return e
		}
	}
	return nil
}

func (m *Mesh) addEdge(va, vb *Vert) *Edge {
	e := &Edge{
		v1:  va,
		v2:  vb,
		idx: -1,
		pos: int32(len(m.edges)),
	}
	m.edges = append(m.edges, e)
	va.edges = append(va.edges, e)
	vb.edges = append(vb.edges, e)
	return e
}

func diskRemove(v *Vert, e *Edge) {
	for i, ei := range v.edges {
		if ei == e {
			last := len(v.edges) - 1
			v.edges[i] = v.edges[last]
			v.edges[last] = nil
			v.edges = v.edges[:last]
			return
		}
	}
}

// killEdge removes a loose edge.  The edge must have no remaining faces.
func (m *Mesh) killEdge(e *Edge) {
	if e.l != nil {
		panic("libtri: killEdge on an edge that still has faces")
	}
	diskRemove(e.v1, e)
	diskRemove(e.v2, e)

	last := len(m.edges) - 1
	m.edges[e.pos] = m.edges[last]
	m.edges[e.pos].pos = e.pos
	m.edges[last] = nil
	m.edges = m.edges[:last]
}

// killFace removes a face, unlinking its loops from their edges' radial
// cycles.  Edges are left in place (possibly as wire edges).
func (m *Mesh) killFace(f *Face) {
	l := f.l
	for i := 0; i < 3; i++ {
		next := l.next
		radialRemove(l)
		l = next
	}

	last := len(m.faces) - 1
	m.faces[f.pos] = m.faces[last]
	m.faces[f.pos].pos = f.pos
	m.faces[last] = nil
	m.faces = m.faces[:last]
}

func radialAppend(e *Edge, l *Loop) {
	if e.l == nil {
		e.l = l
		l.radialNext = l
		l.radialPrev = l
	} else {
		l.radialNext = e.l
		l.radialPrev = e.l.radialPrev
		e.l.radialPrev.radialNext = l
		e.l.radialPrev = l
	}
	l.e = e
}

func radialRemove(l *Loop) {
	if l.radialNext == l {
		l.e.l = nil
	} else {
		l.radialPrev.radialNext = l.radialNext
		l.radialNext.radialPrev = l.radialPrev
		if l.e.l == l {
			l.e.l = l.radialNext
		}
	}
	l.radialNext = nil
	l.radialPrev = nil
}

// AddFace adds the triangle (va, vb, vc), creating any edges that don't
// exist yet.  Winding is as given.
func (m *Mesh) AddFace(va, vb, vc *Vert) (*Face, error) {
	if va == vb || vb == vc || vc == va {
		return nil, gotri.ErrDegenerateFace
	}

	f := &Face{
		pos: int32(len(m.faces)),
	}
	verts := [3]*Vert{va, vb, vc}
	var loops [3]*Loop
	for i := range loops {
		loops[i] = &Loop{
			v: verts[i],
			f: f,
		}
	}
	for i, l := range loops {
		l.next = loops[(i+1)%3]
		l.prev = loops[(i+2)%3]

		e := m.FindEdge(l.v, l.next.v)
		if e == nil {
			e = m.addEdge(l.v, l.next.v)
		}
		radialAppend(e, l)
	}
	f.l = loops[0]
	m.faces = append(m.faces, f)
	return f, nil
}

// ManifoldEdges appends every interior (exactly two faces) edge to dst and
// returns it.  This is the natural input set for BeautifyFill.
func (m *Mesh) ManifoldEdges(dst []*Edge) []*Edge {
	for _, e := range m.edges {
		if e.IsManifold() {
			dst = append(dst, e)
		}
	}
	return dst
}
