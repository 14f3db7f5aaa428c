// Package geometry converts between ROS geometry message values and native
// math types: gonum vectors and quaternions, 3x3 rotation matrices, rigid
// transforms, and spatial vectors. Every conversion has an inverse and the
// pairs are mutually inverse for valid inputs (unit quaternions, orthonormal
// rotations).
package geometry

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"roskit/internal/rosmsg"
)

func RosPointToVec(p rosmsg.Point) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func VecToRosPoint(v r3.Vec) rosmsg.Point {
	return rosmsg.Point{X: v.X, Y: v.Y, Z: v.Z}
}

func RosVector3ToVec(v rosmsg.Vector3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func VecToRosVector3(v r3.Vec) rosmsg.Vector3 {
	return rosmsg.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func RosQuaternionToQuat(q rosmsg.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func QuatToRosQuaternion(q quat.Number) rosmsg.Quaternion {
	return rosmsg.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

func RosQuaternionToRotationMatrix(q rosmsg.Quaternion) RotationMatrix {
	return RotationFromQuaternion(RosQuaternionToQuat(q))
}

func RotationMatrixToRosQuaternion(r RotationMatrix) rosmsg.Quaternion {
	return QuatToRosQuaternion(r.ToQuaternion())
}

func RosPoseToRigidTransform(p rosmsg.Pose) RigidTransform {
	return RigidTransform{
		Rotation:    RosQuaternionToRotationMatrix(p.Orientation),
		Translation: RosPointToVec(p.Position),
	}
}

func RigidTransformToRosPose(t RigidTransform) rosmsg.Pose {
	return rosmsg.Pose{
		Position:    VecToRosPoint(t.Translation),
		Orientation: RotationMatrixToRosQuaternion(t.Rotation),
	}
}

func RosTransformToRigidTransform(msg rosmsg.Transform) RigidTransform {
	return RigidTransform{
		Rotation:    RosQuaternionToRotationMatrix(msg.Rotation),
		Translation: RosVector3ToVec(msg.Translation),
	}
}

func RigidTransformToRosTransform(t RigidTransform) rosmsg.Transform {
	return rosmsg.Transform{
		Translation: VecToRosVector3(t.Translation),
		Rotation:    RotationMatrixToRosQuaternion(t.Rotation),
	}
}

func RosTwistToSpatialVelocity(msg rosmsg.Twist) SpatialVelocity {
	return SpatialVelocity{SpatialVector{
		Rotational:    RosVector3ToVec(msg.Angular),
		Translational: RosVector3ToVec(msg.Linear),
	}}
}

func SpatialVelocityToRosTwist(v SpatialVelocity) rosmsg.Twist {
	return rosmsg.Twist{
		Linear:  VecToRosVector3(v.Translational),
		Angular: VecToRosVector3(v.Rotational),
	}
}

func RosAccelToSpatialAcceleration(msg rosmsg.Accel) SpatialAcceleration {
	return SpatialAcceleration{SpatialVector{
		Rotational:    RosVector3ToVec(msg.Angular),
		Translational: RosVector3ToVec(msg.Linear),
	}}
}

func SpatialAccelerationToRosAccel(a SpatialAcceleration) rosmsg.Accel {
	return rosmsg.Accel{
		Linear:  VecToRosVector3(a.Translational),
		Angular: VecToRosVector3(a.Rotational),
	}
}

func RosWrenchToSpatialForce(msg rosmsg.Wrench) SpatialForce {
	return SpatialForce{SpatialVector{
		Rotational:    RosVector3ToVec(msg.Torque),
		Translational: RosVector3ToVec(msg.Force),
	}}
}

func SpatialForceToRosWrench(f SpatialForce) rosmsg.Wrench {
	return rosmsg.Wrench{
		Force:  VecToRosVector3(f.Translational),
		Torque: VecToRosVector3(f.Rotational),
	}
}
