package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// RotationMatrix is a 3x3 rotation matrix.
type RotationMatrix struct {
	m *mat.Dense
}

// NewRotationMatrix builds a rotation from nine row-major elements.
// Orthonormality is the caller's responsibility.
func NewRotationMatrix(elements []float64) RotationMatrix {
	return RotationMatrix{m: mat.NewDense(3, 3, elements)}
}

func IdentityRotation() RotationMatrix {
	return NewRotationMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// RotationFromQuaternion converts a unit quaternion to matrix form.
func RotationFromQuaternion(q quat.Number) RotationMatrix {
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	return NewRotationMatrix([]float64{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w),
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w),
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y),
	})
}

// Matrix exposes the underlying dense matrix.
func (r RotationMatrix) Matrix() *mat.Dense {
	return r.m
}

// ToQuaternion recovers the unit quaternion, branching on the largest of
// the trace and the diagonal elements for numerical stability.
func (r RotationMatrix) ToQuaternion() quat.Number {
	m00, m01, m02 := r.m.At(0, 0), r.m.At(0, 1), r.m.At(0, 2)
	m10, m11, m12 := r.m.At(1, 0), r.m.At(1, 1), r.m.At(1, 2)
	m20, m21, m22 := r.m.At(2, 0), r.m.At(2, 1), r.m.At(2, 2)
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 2 * math.Sqrt(1+trace)
		return quat.Number{
			Real: s / 4,
			Imag: (m21 - m12) / s,
			Jmag: (m02 - m20) / s,
			Kmag: (m10 - m01) / s,
		}
	case m00 >= m11 && m00 >= m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		return quat.Number{
			Real: (m21 - m12) / s,
			Imag: s / 4,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 >= m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		return quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: s / 4,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		return quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: s / 4,
		}
	}
}

// RigidTransform is a rigid motion: a rotation followed by a translation.
type RigidTransform struct {
	Rotation    RotationMatrix
	Translation r3.Vec
}

func IdentityTransform() RigidTransform {
	return RigidTransform{Rotation: IdentityRotation()}
}
