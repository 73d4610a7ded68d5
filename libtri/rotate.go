package libtri

// RotateEdge replaces a manifold edge with the other diagonal of the quad
// formed by its two triangles, and returns the new edge.
//
// With the quad labeled so the current triangles meet along v2-v4:
//
//	v1 = e.l.prev.v    (opposite vert, first face)
//	v2 = e.l.v         (edge endpoint)
//	v3 = e.l.radialNext.prev.v  (opposite vert, second face)
//	v4 = e.l.next.v    (edge endpoint)
//
// the rotated triangles are (v1,v2,v3) and (v1,v3,v4), sharing v1-v3.
// Winding carries over from the dead faces, as do their mark flags.
//
// Returns nil without touching the mesh when the rotation is infeasible:
// the edge is not manifold, the two opposite verts coincide, or checkExists
// is set and the target diagonal already exists somewhere in the mesh.
func (m *Mesh) RotateEdge(e *Edge, checkExists bool) *Edge {
	if !e.IsManifold() {
		return nil
	}

	l1 := e.l
	l2 := e.l.radialNext

	v2 := l1.v
	v4 := l1.next.v
	v1 := l1.prev.v
	v3 := l2.prev.v

	if v1 == v3 {
		return nil
	}
	if checkExists && m.FindEdge(v1, v3) != nil {
		return nil
	}

	f1flags := l1.f.flags
	f2flags := l2.f.flags
	eflags := e.flags

	m.killFace(l1.f)
	m.killFace(l2.f)
	m.killEdge(e)

	en := m.addEdge(v1, v3)
	en.flags = eflags

	fa, err := m.AddFace(v1, v2, v3)
	if err == nil {
		var fb *Face
		fb, err = m.AddFace(v1, v3, v4)
		if err == nil {
			fa.flags = f1flags
			fb.flags = f2flags
		}
	}
	if err != nil {
		// unreachable while the quad's verts are distinct
		panic("libtri: RotateEdge failed to rebuild the quad: " + err.Error())
	}
	return en
}
