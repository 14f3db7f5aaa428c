package geometry

import "gonum.org/v1/gonum/spatial/r3"

// SpatialVector packs a rotational and a translational 3-vector, the
// layout shared by spatial velocities, accelerations, and forces.
type SpatialVector struct {
	Rotational    r3.Vec
	Translational r3.Vec
}

// Vector6 returns the packed [rx ry rz tx ty tz] form, rotational part
// first.
func (v SpatialVector) Vector6() [6]float64 {
	return [6]float64{
		v.Rotational.X, v.Rotational.Y, v.Rotational.Z,
		v.Translational.X, v.Translational.Y, v.Translational.Z,
	}
}

// SpatialVectorFromVector6 unpacks a [rx ry rz tx ty tz] array.
func SpatialVectorFromVector6(values [6]float64) SpatialVector {
	return SpatialVector{
		Rotational:    r3.Vec{X: values[0], Y: values[1], Z: values[2]},
		Translational: r3.Vec{X: values[3], Y: values[4], Z: values[5]},
	}
}

type SpatialVelocity struct {
	SpatialVector
}

type SpatialAcceleration struct {
	SpatialVector
}

// SpatialForce holds a torque (rotational) and a force (translational).
type SpatialForce struct {
	SpatialVector
}
