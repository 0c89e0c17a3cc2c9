package geometry

import "math"

// RotateX rotates the point around the X axis.
func (v Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the point around the Y axis.
func (v Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ rotates the point around the Z axis.
func (v Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rotate applies the three axis rotations in X, Y, Z order.
func (v Vec3) Rotate(angleX, angleY, angleZ float64) Vec3 {
	return v.RotateX(angleX).RotateY(angleY).RotateZ(angleZ)
}

// Project maps the point to screen coordinates centered on the viewport,
// with perspective foreshortening: x and y are divided by distance+z, so
// nearer points project larger. The divisor is clamped to minDepth when the
// point reaches or passes the camera plane, keeping the result finite.
func (v Vec3) Project(width, height int, distance, scale, minDepth float64) (float64, float64) {
	z := distance + v.Z
	if z < minDepth {
		z = minDepth
	}
	x := v.X*scale/z + float64(width)/2
	y := v.Y*scale/z + float64(height)/2
	return x, y
}
