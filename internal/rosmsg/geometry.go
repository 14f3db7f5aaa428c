// Package rosmsg mirrors the plain ROS geometry message types: settable
// numeric fields, no behavior of their own.
package rosmsg

type Point struct {
	X, Y, Z float64
}

type Vector3 struct {
	X, Y, Z float64
}

type Quaternion struct {
	X, Y, Z, W float64
}

type Pose struct {
	Position    Point
	Orientation Quaternion
}

type Transform struct {
	Translation Vector3
	Rotation    Quaternion
}

// Twist is a velocity in free space: linear and angular parts.
type Twist struct {
	Linear  Vector3
	Angular Vector3
}

type Accel struct {
	Linear  Vector3
	Angular Vector3
}

type Wrench struct {
	Force  Vector3
	Torque Vector3
}
