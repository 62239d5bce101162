package scene

import "math"

// Vec3 is a 3-component vector. Rotation vectors use HPR order:
// heading about +Z, pitch about +X, roll about +Y, in degrees.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mat3 is a 3x3 rotation matrix in row-major order.
// Vectors are columns: transformed = M * v.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// MulVec returns m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose of m. For rotation matrices this is
// the inverse.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

func sincos(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return math.Sin(rad), math.Cos(rad)
}

// RotX returns a rotation of deg degrees about the +X axis.
func RotX(deg float64) Mat3 {
	s, c := sincos(deg)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns a rotation of deg degrees about the +Y axis.
func RotY(deg float64) Mat3 {
	s, c := sincos(deg)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns a rotation of deg degrees about the +Z axis.
func RotZ(deg float64) Mat3 {
	s, c := sincos(deg)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// FromHpr builds a rotation matrix from an HPR vector: heading about
// +Z, then pitch about +X, then roll about +Y, all in degrees.
func FromHpr(hpr Vec3) Mat3 {
	return RotZ(hpr.X).Mul(RotX(hpr.Y)).Mul(RotY(hpr.Z))
}

// roundUnit snaps a value known to be near -1, 0 or 1.
func roundUnit(v float64) float64 {
	return math.Round(v)
}

// SnapRotation rounds each entry of a matrix that represents a
// quarter-turn lattice rotation, removing float drift.
func SnapRotation(m Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = roundUnit(m[i][j])
		}
	}
	return r
}

// SnapVec rounds each component of a lattice position.
func SnapVec(v Vec3) Vec3 {
	return Vec3{math.Round(v.X), math.Round(v.Y), math.Round(v.Z)}
}
