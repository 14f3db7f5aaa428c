package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"roskit/internal/rosmsg"
)

func TestSpatialVectorPacking(t *testing.T) {
	v := SpatialVector{
		Rotational:    r3.Vec{X: 0.1, Y: 0.2, Z: 0.3},
		Translational: r3.Vec{X: 1.0, Y: 2.0, Z: 3.0},
	}
	packed := v.Vector6()
	assert.Equal(t, [6]float64{0.1, 0.2, 0.3, 1.0, 2.0, 3.0}, packed)
	assert.Equal(t, v, SpatialVectorFromVector6(packed))
}

func TestTwistMapsAngularToRotational(t *testing.T) {
	msg := rosmsg.Twist{
		Linear:  rosmsg.Vector3{X: 1.0, Y: 2.0, Z: 3.0},
		Angular: rosmsg.Vector3{X: 0.1, Y: 0.2, Z: 0.3},
	}
	velocity := RosTwistToSpatialVelocity(msg)
	assert.Equal(t, r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}, velocity.Rotational)
	assert.Equal(t, r3.Vec{X: 1.0, Y: 2.0, Z: 3.0}, velocity.Translational)
	if diff := cmp.Diff(msg, SpatialVelocityToRosTwist(velocity)); diff != "" {
		t.Fatalf("twist round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAccelRoundTrip(t *testing.T) {
	msg := rosmsg.Accel{
		Linear:  rosmsg.Vector3{X: -9.81, Y: 0, Z: 0.5},
		Angular: rosmsg.Vector3{X: 0, Y: 0.01, Z: 0},
	}
	assert.Equal(t, msg, SpatialAccelerationToRosAccel(RosAccelToSpatialAcceleration(msg)))
}

func TestWrenchMapsTorqueToRotational(t *testing.T) {
	msg := rosmsg.Wrench{
		Force:  rosmsg.Vector3{X: 10, Y: 0, Z: -2},
		Torque: rosmsg.Vector3{X: 0, Y: 1.5, Z: 0},
	}
	force := RosWrenchToSpatialForce(msg)
	assert.Equal(t, r3.Vec{X: 0, Y: 1.5, Z: 0}, force.Rotational)
	assert.Equal(t, r3.Vec{X: 10, Y: 0, Z: -2}, force.Translational)
	assert.Equal(t, msg, SpatialForceToRosWrench(force))
}
