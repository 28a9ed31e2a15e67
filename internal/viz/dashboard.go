package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/citysense/internal/config"
	"github.com/san-kum/citysense/internal/dash"
	"github.com/san-kum/citysense/internal/gauges"
	"github.com/san-kum/citysense/internal/life"
	"github.com/san-kum/citysense/internal/particles"
	"github.com/san-kum/citysense/internal/snapshot"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	historyCapacity = 240

	// The automaton runs at a deliberately low generation rate: one step
	// every few frames, rendering every frame.
	lifeStepEvery = 4
)

type TickMsg time.Time

type activatedMsg struct{ gen int }

var moduleInfo = map[dash.ModuleID]string{
	dash.ModuleTraffic: "speedometer of city arteries",
	dash.ModuleNews:    "geiger counter of headlines",
	dash.ModuleRadar:   "aircraft over the city",
	dash.ModuleWeather: "mascot and temperature",
	dash.ModuleAQI:     "petri dish breathing the air",
	dash.ModuleMetro:   "gas simulation of crowding",
}

// clickerEngine adapts the Geiger clicker to the activation hook pair.
type clickerEngine struct {
	clicker   *gauges.Clicker
	sentiment float64
	enabled   bool
}

func (e *clickerEngine) Start() {
	if e.enabled {
		e.clicker.Start(e.sentiment)
	}
}

func (e *clickerEngine) Stop() { e.clicker.Stop() }

// Dashboard is the root Bubble Tea model: a menu of six instruments, one
// expandable at a time through the activation controller. The snapshot it
// holds is immutable; every view reads it, none writes it.
type Dashboard struct {
	snap *snapshot.Snapshot
	cfg  *config.Config
	ctrl *dash.Controller

	lifeEng *life.Engine
	metro   *particles.System
	clicker *clickerEngine

	theme  Theme
	rng    *rand.Rand
	canvas *Canvas

	cursor        int
	width, height int
	frame         int
	blips         []gauges.Blip

	popHistory   []float64
	countHistory []float64

	frameInterval time.Duration
}

// NewDashboard wires the engines to the controller and leaves everything
// idle. sound may be nil for a silent dashboard.
func NewDashboard(snap *snapshot.Snapshot, cfg *config.Config, sound gauges.Sound) *Dashboard {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	d := &Dashboard{
		snap:          snap,
		cfg:           cfg,
		ctrl:          dash.NewController(),
		lifeEng:       life.NewEngine(snap.AQI, rng),
		metro:         particles.NewSystem(snap.MetroDensity, rng),
		theme:         GetTheme(cfg.Theme),
		rng:           rng,
		width:         defaultWidth,
		height:        defaultHeight,
		frameInterval: time.Second / time.Duration(cfg.FrameRate),
	}
	d.clicker = &clickerEngine{
		clicker:   gauges.NewClicker(sound),
		sentiment: snap.NewsSentiment,
		enabled:   cfg.Sound,
	}
	d.canvas = NewCanvas(d.canvasWidth(), d.canvasHeight())

	d.ctrl.Register(dash.ModuleAQI, d.lifeEng)
	d.ctrl.Register(dash.ModuleMetro, d.metro)
	d.ctrl.Register(dash.ModuleNews, d.clicker)
	return d
}

func (d *Dashboard) canvasWidth() int {
	w := d.width - 44 // stats panel and padding
	if w < 20 {
		w = 20
	}
	return w
}

func (d *Dashboard) canvasHeight() int {
	h := d.height - 7 // header and help rows
	if h < 10 {
		h = 10
	}
	return h
}

func (d *Dashboard) Init() tea.Cmd {
	return d.tick()
}

func (d *Dashboard) tick() tea.Cmd {
	return tea.Tick(d.frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.canvas = NewCanvas(d.canvasWidth(), d.canvasHeight())
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)

	case activatedMsg:
		d.prepareActivation()
		d.ctrl.Activate(msg.gen)
		return d, nil

	case TickMsg:
		d.step()
		return d, d.tick()
	}
	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		d.ctrl.Close()
		return d, tea.Quit
	case "t":
		d.theme = NextTheme(d.theme.Name)
		return d, nil
	}

	if d.ctrl.Phase() == dash.Idle {
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(dash.Modules)-1 {
				d.cursor++
			}
		case "enter", " ":
			if gen, ok := d.ctrl.Open(dash.Modules[d.cursor]); ok {
				return d, tea.Tick(dash.ActivationDelay, func(time.Time) tea.Msg {
					return activatedMsg{gen: gen}
				})
			}
		}
		return d, nil
	}

	switch msg.String() {
	case "esc":
		d.ctrl.Close()
	case " ":
		d.togglePause()
	}
	return d, nil
}

// prepareActivation runs the once-per-activation setup for the module
// whose transition delay just elapsed.
func (d *Dashboard) prepareActivation() {
	id, ok := d.ctrl.Current()
	if !ok {
		return
	}
	switch id {
	case dash.ModuleAQI:
		d.lifeEng.EnsureGrid(life.CanvasSide(d.canvas.PixelWidth()))
	case dash.ModuleMetro:
		// The metro card takes the whole viewport when expanded.
		d.metro.Resize(float64(d.canvas.PixelWidth()), float64(d.canvas.PixelHeight()))
	case dash.ModuleRadar:
		d.blips = gauges.RadarBlips(d.rng, d.snap.FlightCount)
	}
}

func (d *Dashboard) togglePause() {
	id, ok := d.ctrl.Current()
	if !ok || d.ctrl.Phase() != dash.Active {
		return
	}
	switch id {
	case dash.ModuleAQI:
		if d.lifeEng.Running() {
			d.lifeEng.Stop()
		} else {
			d.lifeEng.Start()
		}
	case dash.ModuleMetro:
		if d.metro.Running() {
			d.metro.Stop()
		} else {
			d.metro.Start()
		}
	}
}

// step advances whichever simulation is active by one frame.
func (d *Dashboard) step() {
	d.frame++
	id, ok := d.ctrl.Current()
	if !ok || d.ctrl.Phase() != dash.Active {
		return
	}
	switch id {
	case dash.ModuleAQI:
		if d.frame%lifeStepEvery == 0 {
			d.lifeEng.Step()
		}
		if g := d.lifeEng.Grid(); g != nil {
			d.popHistory = appendCapped(d.popHistory, float64(g.Population()))
		}
	case dash.ModuleMetro:
		d.metro.Step()
		d.countHistory = appendCapped(d.countHistory, float64(d.metro.Count()))
	}
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

func (d *Dashboard) View() string {
	var b strings.Builder
	b.WriteString(d.viewHeader())

	switch d.ctrl.Phase() {
	case dash.Idle:
		b.WriteString(d.viewMenu())
	case dash.Activating:
		b.WriteString(d.viewOpening())
	case dash.Active:
		b.WriteString(d.viewActive())
	}
	return b.String()
}

func (d *Dashboard) viewHeader() string {
	h := headerStyle(d.theme)
	sub := lipgloss.NewStyle().Foreground(d.theme.Muted)

	line := h.Render("CITYSENSE") + sub.Render("  ▪ bengaluru at a glance")
	stats := fmt.Sprintf("AQI %d  ·  %.1f°C", d.snap.AQI, d.snap.Weather.Temp)
	if upd := d.snap.UpdatedDisplay(); upd != "" {
		stats += "  ·  updated " + upd
	}
	return line + "\n" + sub.Render(stats) + "\n\n"
}

func (d *Dashboard) viewMenu() string {
	var b strings.Builder
	sel := lipgloss.NewStyle().Foreground(d.theme.Secondary).Bold(true)
	selDesc := lipgloss.NewStyle().Foreground(d.theme.Primary)
	dim := lipgloss.NewStyle().Foreground(d.theme.Muted)

	for i, id := range dash.Modules {
		desc := moduleInfo[id]
		if i == d.cursor {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				sel.Render("▸"),
				sel.Render(fmt.Sprintf("%-10s", string(id))),
				selDesc.Render(desc)))
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("    %-10s  %s", string(id), desc)) + "\n")
		}
	}
	b.WriteString(helpStyle.Render("\nj/k navigate · enter open · t theme · q quit"))
	return b.String()
}

func (d *Dashboard) viewOpening() string {
	id, _ := d.ctrl.Current()
	style := lipgloss.NewStyle().Foreground(d.theme.Accent).Bold(true)
	return "\n\n   " + style.Render("opening "+string(id)+" …")
}

func (d *Dashboard) viewActive() string {
	id, _ := d.ctrl.Current()
	switch id {
	case dash.ModuleTraffic:
		return d.viewTraffic()
	case dash.ModuleNews:
		return d.viewNews()
	case dash.ModuleRadar:
		return d.viewRadar()
	case dash.ModuleWeather:
		return d.viewWeather()
	case dash.ModuleAQI:
		return d.viewAQI()
	case dash.ModuleMetro:
		return d.viewMetro()
	}
	return ""
}

// compose joins the canvas pane with a stats panel on the right.
func (d *Dashboard) compose(canvasView string, stats []string, help string) string {
	var s strings.Builder
	for _, line := range stats {
		s.WriteString(line + "\n")
	}
	s.WriteString(helpStyle.Render("\n" + help))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvasView),
		statsStyle.Render(s.String()),
	)
}

func (d *Dashboard) statLine(label, value string) string {
	return labelStyle(d.theme).Render(label) + valueStyle(d.theme).Render(value)
}
