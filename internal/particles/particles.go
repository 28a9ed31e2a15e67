// Package particles is the metro-crowding instrument: a gas simulation of
// CO2 and O2 particles rising from the bottom of the screen. Crowd density
// sets the mix — packed carriages breathe out mostly CO2.
package particles

import "math/rand"

type Kind int

const (
	CO2 Kind = iota
	O2
)

const (
	// MaxParticles caps the concurrent particle count.
	MaxParticles = 150
	// SpawnOffsetY places new particles just below the visible area.
	SpawnOffsetY = 20
	// CullY removes particles once they rise past this line.
	CullY = -50
	// FadeHeightFrac is the fraction of canvas height above which opacity
	// starts decaying.
	FadeHeightFrac = 0.3
	// AlphaDecay is the fixed per-frame opacity loss in the fade zone. Alpha
	// may pass below zero; rendering treats that as invisible.
	AlphaDecay = 0.02
)

// CO2Probability returns the chance a spawned particle is CO2 for a metro
// density band.
func CO2Probability(density string) float64 {
	switch density {
	case "high":
		return 0.70
	case "medium":
		return 0.30
	default:
		return 0.10
	}
}

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64
	Kind   Kind
}

// System owns the particle set. It starts paused and empty; Start and Stop
// toggle advancement only, so a pause freezes every particle mid-flight.
type System struct {
	w, h      float64
	particles []Particle
	rng       *rand.Rand
	co2Prob   float64
	running   bool
}

func NewSystem(metroDensity string, rng *rand.Rand) *System {
	return &System{
		co2Prob: CO2Probability(metroDensity),
		rng:     rng,
	}
}

// Resize sets the canvas to the full viewport. Called once per activation.
func (s *System) Resize(w, h float64) {
	s.w, s.h = w, h
}

func (s *System) Start()        { s.running = true }
func (s *System) Stop()         { s.running = false }
func (s *System) Running() bool { return s.running }

func (s *System) Particles() []Particle { return s.particles }
func (s *System) Count() int            { return len(s.particles) }

// Step runs one frame: spawn (at most one, below the cap), advance, fade,
// cull. A no-op while paused.
func (s *System) Step() {
	if !s.running || s.w <= 0 {
		return
	}
	if len(s.particles) < MaxParticles {
		s.particles = append(s.particles, s.spawn())
	}

	kept := s.particles[:0]
	fadeLine := s.h * FadeHeightFrac
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		if p.Y < fadeLine {
			p.Alpha -= AlphaDecay
		}
		if p.Y < CullY {
			continue
		}
		kept = append(kept, p)
	}
	s.particles = kept
}

func (s *System) spawn() Particle {
	p := Particle{
		X:     s.rng.Float64() * s.w,
		Y:     s.h + SpawnOffsetY,
		Alpha: 1,
	}
	if s.rng.Float64() < s.co2Prob {
		// CO2: big, sluggish, near-motionless sideways.
		p.Kind = CO2
		p.Size = s.w * (0.02 + s.rng.Float64()*0.015)
		p.VY = -(1.5 + s.rng.Float64()*1.5)
		p.VX = -0.5 + s.rng.Float64()
	} else {
		// O2: small, quick, drifty.
		p.Kind = O2
		p.Size = s.w * (0.01 + s.rng.Float64()*0.01)
		p.VY = -(3 + s.rng.Float64()*4)
		p.VX = -2 + s.rng.Float64()*4
	}
	return p
}
