package libtri

import (
	"math"

	"github.com/trimesh-systems/gotri/gotri"
)

// NoGain is returned by the rotation cost functions when rotating an edge
// cannot (or may not) improve the mesh.  Improving rotations always score
// strictly negative.
const NoGain = math.MaxFloat64

// VertsRotateBeautyCost scores swapping diagonal v2-v4 for v1-v3 in the quad
// (v1,v2,v3,v4), where v2,v4 are the current edge's endpoints and v1,v3 the
// opposite verts of its two triangles.  Negative means the rotation is an
// improvement; NoGain means leave the edge alone.
func VertsRotateBeautyCost(v1, v2, v3, v4 *Vert, flags gotri.BeautifyFlags, method gotri.Method) float64 {
	if flags&gotri.VertRestrictTag != 0 {
		if v1.tag == v3.tag {
			return NoGain
		}
	}

	// the rotated edge would collapse
	if v1 == v3 {
		return NoGain
	}

	if method == gotri.MethodArea {
		return rotateBeautyArea(v1.Co, v2.Co, v3.Co, v4.Co, flags&gotri.EdgeRestrictDegenerate != 0)
	}
	return rotateBeautyAngle(v1.Co, v2.Co, v3.Co, v4.Co)
}

func rotateBeautyCost(e *Edge, flags gotri.BeautifyFlags, method gotri.Method) float64 {
	l1 := e.l
	v1 := l1.prev.v
	v2 := l1.v
	v3 := l1.radialNext.prev.v
	v4 := l1.next.v

	return VertsRotateBeautyCost(v1, v2, v3, v4, flags, method)
}

// rotateBeautyAngle returns the change in angle between the triangle pair's
// normals: angle(rotated) - angle(current).  Negative means rotating makes
// the surface flatter across the shared edge.
func rotateBeautyAngle(v1, v2, v3, v4 gotri.Vec3) float64 {
	// edge (2-4), current state
	noA, _ := gotri.NormalTri(v2, v3, v4)
	noB, _ := gotri.NormalTri(v2, v4, v1)
	angle24 := gotri.AngleNormalized(noA, noB)

	// edge (1-3), new state
	// only the new state is checked for a degenerate outcome
	noA, lenA := gotri.NormalTri(v1, v2, v3)
	if lenA == 0 {
		return NoGain
	}
	noB, lenB := gotri.NormalTri(v1, v3, v4)
	if lenB == 0 {
		return NoGain
	}
	angle13 := gotri.AngleNormalized(noA, noB)

	return angle13 - angle24
}

func crossTri(a, b, c gotri.Vec3) gotri.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// rotateBeautyArea compares the area / perimeter ratios of the quad's two
// triangulations: fatter triangles score better.  The quad is projected onto
// its average plane first so the comparison happens in 2D.
func rotateBeautyArea(v1, v2, v3, v4 gotri.Vec3, lockDegenerate bool) float64 {
	no := crossTri(v2, v3, v4).Add(crossTri(v2, v4, v1))
	n := no.Normalize()
	if n == (gotri.Vec3{}) {
		return NoGain
	}

	u, w := n.OrthoBasis()
	project := func(v gotri.Vec3) gotri.Vec2 {
		return gotri.Vec2{X: v.Dot(u), Y: v.Dot(w)}
	}
	s1 := project(v1)
	s2 := project(v2)
	s3 := project(v3)
	s4 := project(v4)

	// signed 2x areas
	area234 := s3.Sub(s2).Cross(s4.Sub(s2))
	area241 := s4.Sub(s2).Cross(s1.Sub(s2))
	area123 := s2.Sub(s1).Cross(s3.Sub(s1))
	area134 := s3.Sub(s1).Cross(s4.Sub(s1))

	// Test for an unusable (1-3) state:
	// a sign mismatch means the rotated faces would point away from each
	// other; a zero area is only allowed when degenerate results are not
	// locked out.
	if (area123 >= 0) != (area134 >= 0) {
		return NoGain
	}
	if area123 == 0 || area134 == 0 {
		if lockDegenerate {
			return NoGain
		}
	}

	len12 := s2.Sub(s1).Len()
	len23 := s3.Sub(s2).Len()
	len34 := s4.Sub(s3).Len()
	len41 := s1.Sub(s4).Len()
	len24 := s4.Sub(s2).Len()
	len13 := s3.Sub(s1).Len()

	// The areas are all 2x, but that's fine since only ratios are compared.
	fac24 := areaPerimRatio(area234, len23+len34+len24) + areaPerimRatio(area241, len24+len41+len12)
	fac13 := areaPerimRatio(area123, len12+len23+len13) + areaPerimRatio(area134, len13+len34+len41)

	// negative when the (1-3) state is the improved one
	return fac24 - fac13
}

func areaPerimRatio(area2x, perim float64) float64 {
	if perim == 0 {
		return 0
	}
	return math.Abs(area2x) / perim
}
