// Package gauges holds the stateless instrument readouts. Each is a pure
// function of the snapshot, recomputed fresh on every activation.
package gauges

// Speedometer face spans -90° (0 km/h) to +90° (120 km/h and above).
const speedometerFullScale = 120.0

// SpeedometerAngle maps a traffic speed to a needle angle in degrees,
// clamped to the face.
func SpeedometerAngle(speedKMH float64) float64 {
	angle := speedKMH/speedometerFullScale*180 - 90
	if angle < -90 {
		return -90
	}
	if angle > 90 {
		return 90
	}
	return angle
}

// SpeedometerJitter reports whether the needle should wobble. Traffic that
// is actually moving (above walking pace) gets a continuous jitter.
func SpeedometerJitter(speedKMH float64) bool {
	return speedKMH > 5
}
