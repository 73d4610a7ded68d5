package gotri

import "math"

// Vec3 is a 3D position or direction.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3    { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3    { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len2() float64      { return a.Dot(a) }
func (a Vec3) Len() float64       { return math.Sqrt(a.Len2()) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns a unit vector, or the zero vector if the length vanishes.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l < 1e-30 {
		return Vec3{}
	}
	return a.Mul(1 / l)
}

// OrthoBasis returns two unit vectors spanning the plane perpendicular to the
// unit vector n.
func (n Vec3) OrthoBasis() (Vec3, Vec3) {
	ref := Vec3{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = Vec3{Y: 1}
	}
	u := n.Cross(ref).Normalize()
	return u, n.Cross(u)
}

// Vec2 is a 2D point, used when a quad is projected onto its own plane.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// NormalTri returns the unit normal of triangle (a, b, c) and the length of
// the un-normalized cross product.  A zero length means the triangle is
// degenerate and the returned normal is the zero vector.
func NormalTri(a, b, c Vec3) (Vec3, float64) {
	n := a.Sub(b).Cross(b.Sub(c))
	l := n.Len()
	if l < 1e-30 {
		return Vec3{}, 0
	}
	return n.Mul(1 / l), l
}

// AngleNormalized returns the angle between two unit vectors.
// Equivalent to acos(a.Dot(b)) but accurate for nearly parallel inputs.
func AngleNormalized(a, b Vec3) float64 {
	if a.Dot(b) >= 0 {
		return 2 * math.Asin(a.Sub(b).Len()/2)
	}
	return math.Pi - 2*math.Asin(a.Add(b).Len()/2)
}
