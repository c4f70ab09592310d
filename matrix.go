package geonode

import "math"

// Matrix4 represents a 3D affine transformation matrix.
// It is stored in row-major order, with the translation in the last column:
//
//	| m00 m01 m02 m03 |
//	| m10 m11 m12 m13 |
//	| m20 m21 m22 m23 |
//	|  0   0   0   1  |
//
// When used as a projection screen, the translation column is the screen
// origin, the first two columns span the screen and the third column is
// the screen normal.
type Matrix4 [4][4]float64

// Identity4 returns the identity transformation matrix.
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate4 creates a translation matrix.
func Translate4(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

// Scale4 creates a scaling matrix.
func Scale4(x, y, z float64) Matrix4 {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = x, y, z
	return m
}

// RotateX4 creates a rotation about the X axis (angle in radians).
func RotateX4(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	m := Identity4()
	m[1][1], m[1][2] = cos, -sin
	m[2][1], m[2][2] = sin, cos
	return m
}

// RotateZ4 creates a rotation about the Z axis (angle in radians).
func RotateZ4(angle float64) Matrix4 {
	sin, cos := math.Sincos(angle)
	m := Identity4()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return m
}

// Multiply multiplies two matrices (m * other).
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var r Matrix4
	for i := range 4 {
		for j := range 4 {
			var s float64
			for k := range 4 {
				s += m[i][k] * other[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// TransformPoint applies the transformation to a point.
func (m Matrix4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Origin returns the translation column.
func (m Matrix4) Origin() Vec3 {
	return Vec3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// Axis returns column i (0, 1 or 2) of the linear part.
func (m Matrix4) Axis(i int) Vec3 {
	return Vec3{X: m[0][i], Y: m[1][i], Z: m[2][i]}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity4()
}
