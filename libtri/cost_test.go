package libtri

import (
	"testing"

	"github.com/trimesh-systems/gotri/gotri"
)

// two triangles sharing the diagonal v0-v2 of a quad that is flat except for
// a raised corner at v2
func buildBentQuad() (*Mesh, *Edge) {
	m := NewMesh()
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVert(gotri.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVert(gotri.Vec3{X: 1, Y: 1, Z: 0.1})
	v3 := m.AddVert(gotri.Vec3{X: 0, Y: 1, Z: 0})
	m.AddFace(v0, v1, v2)
	m.AddFace(v0, v2, v3)
	return m, m.FindEdge(v0, v2)
}

func TestCostAngleBentQuad(t *testing.T) {
	m, e := buildBentQuad()
	defer m.Reclaim()

	cost := rotateBeautyCost(e, 0, gotri.MethodAngle)
	if cost >= 0 {
		t.Fatalf("rotating the long diagonal should improve the angle, got %v", cost)
	}
}

func TestCostFlatQuadNoGain(t *testing.T) {
	m := NewMesh()
	defer m.Reclaim()
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVert(gotri.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVert(gotri.Vec3{X: 1, Y: 1, Z: 0})
	v3 := m.AddVert(gotri.Vec3{X: 0, Y: 1, Z: 0})
	m.AddFace(v0, v1, v2)
	m.AddFace(v0, v2, v3)
	e := m.FindEdge(v0, v2)

	// a perfectly square quad: both diagonals are equivalent
	if cost := rotateBeautyCost(e, 0, gotri.MethodAngle); cost < 0 {
		t.Fatalf("angle cost %v should not be improving", cost)
	}
	if cost := rotateBeautyCost(e, 0, gotri.MethodArea); cost < 0 {
		t.Fatalf("area cost %v should not be improving", cost)
	}
}

func TestCostVertTagRestriction(t *testing.T) {
	m, e := buildBentQuad()
	defer m.Reclaim()

	// opposite verts of the diagonal v0-v2 are v1 and v3
	m.Vert(1).SetTag(true)
	m.Vert(3).SetTag(true)

	if cost := rotateBeautyCost(e, gotri.VertRestrictTag, gotri.MethodAngle); cost != NoGain {
		t.Fatalf("same-tagged opposite verts must block the rotation, got %v", cost)
	}

	m.Vert(3).SetTag(false)
	if cost := rotateBeautyCost(e, gotri.VertRestrictTag, gotri.MethodAngle); cost >= 0 {
		t.Fatalf("differing tags should leave the gain intact, got %v", cost)
	}
}

func TestCostDegenerateTarget(t *testing.T) {
	m := NewMesh()
	defer m.Reclaim()

	// rotating the shared edge would form the zero-area triangle (c, a, d):
	// a sits on the segment c-d
	c := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 0})
	a := m.AddVert(gotri.Vec3{X: 1, Y: 1, Z: 0})
	b := m.AddVert(gotri.Vec3{X: 1, Y: 0, Z: 0})
	d := m.AddVert(gotri.Vec3{X: 2, Y: 2, Z: 0})
	m.AddFace(c, a, b)
	m.AddFace(b, a, d)
	e := m.FindEdge(a, b)

	if cost := rotateBeautyCost(e, 0, gotri.MethodAngle); cost != NoGain {
		t.Fatalf("degenerate rotated triangle must return NoGain, got %v", cost)
	}
	if cost := rotateBeautyCost(e, gotri.EdgeRestrictDegenerate, gotri.MethodArea); cost != NoGain {
		t.Fatalf("area method with EdgeRestrictDegenerate must return NoGain, got %v", cost)
	}
}

func TestCostAreaPrefersFatterTriangles(t *testing.T) {
	m := NewMesh()
	defer m.Reclaim()

	// a long thin quad split the bad way: the current diagonal makes two
	// slivers, the other diagonal two fat triangles
	v0 := m.AddVert(gotri.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVert(gotri.Vec3{X: 4, Y: 0, Z: 0})
	v2 := m.AddVert(gotri.Vec3{X: 4.5, Y: 1, Z: 0})
	v3 := m.AddVert(gotri.Vec3{X: 0.5, Y: 1, Z: 0})
	m.AddFace(v0, v1, v2)
	m.AddFace(v0, v2, v3)
	e := m.FindEdge(v0, v2)

	if cost := rotateBeautyCost(e, 0, gotri.MethodArea); cost >= 0 {
		t.Fatalf("area cost should favor the short diagonal, got %v", cost)
	}
}
