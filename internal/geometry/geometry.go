// Package geometry holds the static dodecahedron model and the per-frame
// rotation and projection math.
package geometry

import "math"

const (
	VertexCount = 20
	FaceCount   = 12
	EdgeCount   = 30
)

// Vec3 is a point in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// phi is the golden ratio, the basis of the regular dodecahedron construction.
var phi = (1 + math.Sqrt(5)) / 2

// The 20 vertices: a unit cube plus three golden-ratio rectangles.
var vertices = []Vec3{
	{1, 1, 1},
	{1, 1, -1},
	{1, -1, 1},
	{1, -1, -1},
	{-1, 1, 1},
	{-1, 1, -1},
	{-1, -1, 1},
	{-1, -1, -1},
	{0, 1 / phi, phi},
	{0, 1 / phi, -phi},
	{0, -1 / phi, phi},
	{0, -1 / phi, -phi},
	{1 / phi, phi, 0},
	{1 / phi, -phi, 0},
	{-1 / phi, phi, 0},
	{-1 / phi, -phi, 0},
	{phi, 0, 1 / phi},
	{phi, 0, -1 / phi},
	{-phi, 0, 1 / phi},
	{-phi, 0, -1 / phi},
}

// The 12 pentagonal faces as vertex indices. Consecutive entries (with
// wrap-around) are the face's edges; every edge is shared by exactly two
// faces.
var faces = [][5]int{
	{0, 8, 4, 14, 12},
	{0, 8, 10, 2, 16},
	{0, 12, 1, 17, 16},
	{1, 9, 5, 14, 12},
	{1, 9, 11, 3, 17},
	{2, 10, 6, 15, 13},
	{2, 13, 3, 17, 16},
	{3, 11, 7, 15, 13},
	{4, 8, 10, 6, 18},
	{4, 14, 5, 19, 18},
	{5, 9, 11, 7, 19},
	{6, 15, 7, 19, 18},
}

// Vertices returns the dodecahedron's 20 vertices. The slice is shared and
// must not be mutated.
func Vertices() []Vec3 {
	return vertices
}

// Faces returns the dodecahedron's 12 faces. The slice is shared and must
// not be mutated.
func Faces() [][5]int {
	return faces
}
