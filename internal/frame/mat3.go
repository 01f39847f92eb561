package frame

import (
	"math"

	"github.com/hartmandrector/polarsim/pkg/types"
)

// Mat3 is a 3×3 rotation matrix stored row-major. It exposes only the
// operations the frame algebra needs: compose, apply to a vector, transpose,
// and quaternion extraction.
type Mat3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// At returns the element at row i, column j.
func (m Mat3) At(i, j int) float64 {
	return m[3*i+j]
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = m[3*i]*n[j] + m[3*i+1]*n[3+j] + m[3*i+2]*n[6+j]
		}
	}
	return out
}

// Apply returns m·v.
func (m Mat3) Apply(v types.Vec3) types.Vec3 {
	return types.Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transpose returns the transpose of m. For a rotation matrix this is the
// inverse rotation.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Column returns column j as a vector.
func (m Mat3) Column(j int) types.Vec3 {
	return types.Vec3{X: m[j], Y: m[3+j], Z: m[6+j]}
}

// Quat extracts the unit quaternion equivalent to the rotation matrix m,
// using the largest-component (Shepperd) branch selection so the extraction
// stays numerically stable for any input attitude.
func (m Mat3) Quat() types.Quat {
	tr := m[0] + m[4] + m[8]
	var q types.Quat
	switch {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = types.Quat{
			W: s / 4,
			X: (m.At(2, 1) - m.At(1, 2)) / s,
			Y: (m.At(0, 2) - m.At(2, 0)) / s,
			Z: (m.At(1, 0) - m.At(0, 1)) / s,
		}
	case m.At(0, 0) > m.At(1, 1) && m.At(0, 0) > m.At(2, 2):
		s := 2 * math.Sqrt(1+m.At(0, 0)-m.At(1, 1)-m.At(2, 2))
		q = types.Quat{
			W: (m.At(2, 1) - m.At(1, 2)) / s,
			X: s / 4,
			Y: (m.At(0, 1) + m.At(1, 0)) / s,
			Z: (m.At(0, 2) + m.At(2, 0)) / s,
		}
	case m.At(1, 1) > m.At(2, 2):
		s := 2 * math.Sqrt(1+m.At(1, 1)-m.At(0, 0)-m.At(2, 2))
		q = types.Quat{
			W: (m.At(0, 2) - m.At(2, 0)) / s,
			X: (m.At(0, 1) + m.At(1, 0)) / s,
			Y: s / 4,
			Z: (m.At(1, 2) + m.At(2, 1)) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m.At(2, 2)-m.At(0, 0)-m.At(1, 1))
		q = types.Quat{
			W: (m.At(1, 0) - m.At(0, 1)) / s,
			X: (m.At(0, 2) + m.At(2, 0)) / s,
			Y: (m.At(1, 2) + m.At(2, 1)) / s,
			Z: s / 4,
		}
	}
	return q.Normalize()
}

// rotX returns the frame rotation about the x axis by angle radians:
// coordinates of a fixed vector expressed in the rotated frame.
func rotX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// rotY returns the frame rotation about the y axis.
func rotY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// rotZ returns the frame rotation about the z axis.
func rotZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}
