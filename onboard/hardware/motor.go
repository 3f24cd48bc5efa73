package hardware

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pulse range used by the bridge firmware, matching the stock Arduino servo library.
const (
	SERVO_MIN_PULSE = 544  // us at 0 degrees
	SERVO_MAX_PULSE = 2400 // us at 180 degrees
	SERVO_MAX_ANGLE = 180
)

// Servo is a positional actuator that only draws power while attached.
type Servo interface {
	Attach() error
	Write(angle float64) error
	Detach() error
}

// Sensor is an analog input, 10 bit on the current bridge.
type Sensor interface {
	Read() (uint16, error)
}

// PulseWidth converts a servo angle to the pulse width in microseconds.
// Angles outside the servo's travel are clamped.
func PulseWidth(angle float64) int {
	angle = mgl64.Clamp(angle, 0, SERVO_MAX_ANGLE)
	span := float64(SERVO_MAX_PULSE - SERVO_MIN_PULSE)
	return SERVO_MIN_PULSE + int(math.Round(angle/SERVO_MAX_ANGLE*span))
}
