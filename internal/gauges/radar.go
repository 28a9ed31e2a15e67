package gauges

import "math/rand"

// Blip is one aircraft marker, positioned as fractions of the radar face.
type Blip struct {
	X, Y float64
}

// RadarBlips places one blip per tracked flight, each coordinate uniform in
// [0.2, 0.8] of its axis. The distribution is square, not polar; blips may
// cluster toward the middle of the circular face and that is the intended
// look. Callers discard any previous blip set first.
func RadarBlips(rng *rand.Rand, flightCount int) []Blip {
	if flightCount <= 0 {
		return nil
	}
	blips := make([]Blip, flightCount)
	for i := range blips {
		blips[i] = Blip{
			X: 0.2 + rng.Float64()*0.6,
			Y: 0.2 + rng.Float64()*0.6,
		}
	}
	return blips
}
