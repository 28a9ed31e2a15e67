package life

import (
	"math"
	"math/rand"
	"testing"
)

func TestDensityBands(t *testing.T) {
	tests := []struct {
		aqi  int
		want float64
	}{
		{50, 0.40}, {100, 0.40}, {101, 0.25}, {150, 0.25}, {151, 0.12}, {300, 0.12},
	}
	for _, tt := range tests {
		if got := Density(tt.aqi); got != tt.want {
			t.Errorf("Density(%d) = %.2f, want %.2f", tt.aqi, got, tt.want)
		}
	}
}

func TestDeathChanceBands(t *testing.T) {
	tests := []struct {
		aqi  int
		want float64
	}{
		{80, 0}, {100, 0}, {120, 0.02}, {150, 0.02}, {160, 0.05},
	}
	for _, tt := range tests {
		if got := DeathChance(tt.aqi); got != tt.want {
			t.Errorf("DeathChance(%d) = %.2f, want %.2f", tt.aqi, got, tt.want)
		}
	}
}

func TestSeedDensityStatistical(t *testing.T) {
	for _, aqi := range []int{80, 130, 200} {
		g := NewGrid(200, 200, aqi, rand.New(rand.NewSource(11)))
		got := float64(g.Population()) / float64(200*200)
		want := Density(aqi)
		if math.Abs(got-want) > 0.02 {
			t.Errorf("aqi %d: seeded density %.3f, want %.3f ± 0.02", aqi, got, want)
		}
	}
}

// set builds a grid with only the given cells alive and no pollution death.
func set(w, h int, cells [][2]int) *Grid {
	g := &Grid{w: w, h: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}
	for _, c := range cells {
		g.cur[c[1]*w+c[0]] = true
	}
	return g
}

func TestConwayTransitions(t *testing.T) {
	// Dead cell with exactly three live neighbors is born.
	g := set(6, 6, [][2]int{{1, 1}, {2, 1}, {1, 2}})
	g.Step()
	if !g.Alive(2, 2) {
		t.Error("dead cell with 3 neighbors should become live")
	}

	// Live cell with a single neighbor starves.
	g = set(6, 6, [][2]int{{1, 1}, {2, 1}})
	g.Step()
	if g.Alive(1, 1) || g.Alive(2, 1) {
		t.Error("live cells with fewer than 2 neighbors should die")
	}

	// A block is a still life: every cell has exactly 3 neighbors.
	g = set(6, 6, [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}})
	g.Step()
	for _, c := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if !g.Alive(c[0], c[1]) {
			t.Errorf("block cell (%d,%d) should survive", c[0], c[1])
		}
	}
	if g.Population() != 4 {
		t.Errorf("block should stay a block, population %d", g.Population())
	}

	// Overcrowding: center of a 3x3 full square has 8 neighbors and dies.
	g = set(9, 9, [][2]int{
		{3, 3}, {4, 3}, {5, 3},
		{3, 4}, {4, 4}, {5, 4},
		{3, 5}, {4, 5}, {5, 5},
	})
	g.Step()
	if g.Alive(4, 4) {
		t.Error("cell with 8 neighbors should die of overcrowding")
	}
}

func TestBlinkerOscillatesOnTorus(t *testing.T) {
	g := set(5, 5, [][2]int{{1, 2}, {2, 2}, {3, 2}})
	g.Step()
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !g.Alive(c[0], c[1]) {
			t.Fatalf("blinker should flip vertical, (%d,%d) dead", c[0], c[1])
		}
	}
	g.Step()
	for _, c := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !g.Alive(c[0], c[1]) {
			t.Fatalf("blinker should flip back horizontal, (%d,%d) dead", c[0], c[1])
		}
	}
}

func TestTorusWrap(t *testing.T) {
	// A horizontal blinker across the seam still oscillates.
	g := set(5, 5, [][2]int{{4, 2}, {0, 2}, {1, 2}})
	g.Step()
	for _, c := range [][2]int{{0, 1}, {0, 2}, {0, 3}} {
		if !g.Alive(c[0], c[1]) {
			t.Fatalf("seam blinker should flip vertical at x=0, (%d,%d) dead", c[0], c[1])
		}
	}
}

func TestPollutionDeathStatistical(t *testing.T) {
	// Tile disjoint still-life blocks; absent pollution every cell survives
	// the base rule, so observed deaths are the pollution roll alone.
	w, h := 120, 120
	var cells [][2]int
	for y := 0; y < h; y += 4 {
		for x := 0; x < w; x += 4 {
			cells = append(cells, [][2]int{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}}...)
		}
	}

	g := set(w, h, cells)
	g.rng = rand.New(rand.NewSource(3))
	g.deathChance = DeathChance(200) // 0.05
	before := g.Population()
	g.Step()
	after := g.Population()

	rate := float64(before-after) / float64(before)
	if math.Abs(rate-0.05) > 0.015 {
		t.Errorf("pollution death rate %.3f, want 0.05 ± 0.015", rate)
	}

	// Clean air: the same lattice is immortal.
	g = set(w, h, cells)
	g.deathChance = DeathChance(80)
	g.Step()
	if g.Population() != before {
		t.Errorf("no pollution death expected at low aqi, population %d -> %d", before, g.Population())
	}
}

func TestEnginePauseRetainsGrid(t *testing.T) {
	e := NewEngine(120, rand.New(rand.NewSource(5)))
	e.EnsureGrid(200)
	if e.Grid() == nil {
		t.Fatal("grid should exist after EnsureGrid")
	}
	if e.Grid().Width() != 200/CellResolution {
		t.Errorf("grid width %d, want %d", e.Grid().Width(), 200/CellResolution)
	}

	// Paused: stepping is a no-op.
	seed := e.Grid().Population()
	e.Step()
	if e.Grid().Population() != seed {
		t.Error("paused engine must not advance")
	}

	e.Start()
	e.Step()
	e.Stop()
	pop := e.Grid().Population()
	e.Step()
	if e.Grid().Population() != pop {
		t.Error("stopped engine must not advance")
	}

	// Reactivation keeps the same colony.
	grid := e.Grid()
	e.EnsureGrid(400)
	if e.Grid() != grid {
		t.Error("grid must persist across reactivations")
	}
}

func TestCanvasSide(t *testing.T) {
	if got := CanvasSide(500); got != 300 {
		t.Errorf("CanvasSide(500) = %d, want 300", got)
	}
	if got := CanvasSide(2000); got != 600 {
		t.Errorf("CanvasSide(2000) = %d, want capped 600", got)
	}
}
