package geom

// Vec2 is a 2D point or vector.
type Vec2 [2]float32

// Add returns a + b.
func Add(a, b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

// Sub returns a - b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

// Scale returns s*a.
func Scale(s float32, a Vec2) Vec2 {
	return Vec2{s * a[0], s * a[1]}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

// Perp returns a rotated 90 degrees counter-clockwise: (x,y) -> (-y,x).
func Perp(a Vec2) Vec2 {
	return Vec2{-a[1], a[0]}
}

// TriangleArea returns twice the signed area of triangle (a,b,c); positive
// when (a,b,c) winds clockwise.
func TriangleArea(a, b, c Vec2) float32 {
	ab := Sub(b, a)
	ac := Sub(c, a)
	return ab[1]*ac[0] - ab[0]*ac[1]
}

// Aff2 is a 2x3 affine transform: row-major linear part plus a translation.
type Aff2 struct {
	Linear      [2][2]float32
	Translation Vec2
}

// Identity2 is the identity affine transform.
func Identity2() Aff2 {
	return Aff2{Linear: [2][2]float32{{1, 0}, {0, 1}}}
}

// Transform applies t to v.
func Transform(t Aff2, v Vec2) Vec2 {
	return Vec2{
		t.Linear[0][0]*v[0] + t.Linear[0][1]*v[1] + t.Translation[0],
		t.Linear[1][0]*v[0] + t.Linear[1][1]*v[1] + t.Translation[1],
	}
}
