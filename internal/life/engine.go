package life

import "math/rand"

// Engine drives the automaton for the dashboard. The grid is created once,
// on the first activation, and survives pause/resume; Start and Stop only
// toggle whether Step advances anything.
type Engine struct {
	grid    *Grid
	aqi     int
	rng     *rand.Rand
	running bool
}

func NewEngine(aqi int, rng *rand.Rand) *Engine {
	return &Engine{aqi: aqi, rng: rng}
}

// EnsureGrid sizes the grid from the canvas side on first use. Later calls
// are no-ops; the colony persists across reactivations.
func (e *Engine) EnsureGrid(canvasSide int) {
	if e.grid != nil {
		return
	}
	cells := canvasSide / CellResolution
	e.grid = NewGrid(cells, cells, e.aqi, e.rng)
}

func (e *Engine) Grid() *Grid   { return e.grid }
func (e *Engine) Running() bool { return e.running }

func (e *Engine) Start() { e.running = true }
func (e *Engine) Stop()  { e.running = false }

// Step advances one generation while running. Paused engines keep their
// grid untouched.
func (e *Engine) Step() {
	if !e.running || e.grid == nil {
		return
	}
	e.grid.Step()
}
