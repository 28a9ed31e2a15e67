// Package life is the air-quality instrument: Conway's Game of Life on a
// torus with an extra pollution-driven death roll. Worse air seeds a
// sparser colony and kills more of what survives each generation.
package life

import "math/rand"

// CellResolution is the fixed square size of one cell in canvas pixels.
const CellResolution = 4

// MaxCanvasSide caps the automaton canvas in pixels.
const MaxCanvasSide = 600

// CanvasSide returns the square canvas side for a viewport width: 60% of
// the viewport, capped at MaxCanvasSide.
func CanvasSide(viewportWidth int) int {
	side := viewportWidth * 60 / 100
	if side > MaxCanvasSide {
		side = MaxCanvasSide
	}
	return side
}

// Density returns the initial live-cell probability for an AQI band.
func Density(aqi int) float64 {
	switch {
	case aqi <= 100:
		return 0.40
	case aqi <= 150:
		return 0.25
	default:
		return 0.12
	}
}

// DeathChance returns the extra per-generation death probability applied to
// live cells in an AQI band.
func DeathChance(aqi int) float64 {
	switch {
	case aqi <= 100:
		return 0
	case aqi <= 150:
		return 0.02
	default:
		return 0.05
	}
}

// Grid is the automaton state: two swap buffers over a w×h torus.
type Grid struct {
	w, h        int
	cur, nxt    []bool
	rng         *rand.Rand
	deathChance float64
}

// NewGrid seeds a w×h torus for the given AQI: each cell independently live
// with the band's density.
func NewGrid(w, h, aqi int, rng *rand.Rand) *Grid {
	g := &Grid{
		w:           w,
		h:           h,
		cur:         make([]bool, w*h),
		nxt:         make([]bool, w*h),
		rng:         rng,
		deathChance: DeathChance(aqi),
	}
	density := Density(aqi)
	for i := range g.cur {
		g.cur[i] = rng.Float64() < density
	}
	return g
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// Alive reports the state of cell (x, y).
func (g *Grid) Alive(x, y int) bool {
	return g.cur[y*g.w+x]
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Step advances one generation: the standard Conway rule with wrap-around
// Moore neighborhoods, then an independent pollution death roll on every
// cell still alive.
func (g *Grid) Step() {
	conwayStep(g.cur, g.nxt, g.w, g.h)
	if g.deathChance > 0 {
		for i, alive := range g.nxt {
			if alive && g.rng.Float64() < g.deathChance {
				g.nxt[i] = false
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func conwayStep(cur, nxt []bool, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if cur[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			if cur[idx] {
				nxt[idx] = neighbors == 2 || neighbors == 3
			} else {
				nxt[idx] = neighbors == 3
			}
		}
	}
}
