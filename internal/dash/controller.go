// Package dash tracks which instrument is expanded. At most one module is
// ever active; a new activation is refused (not errored) until the current
// one closes.
package dash

import "time"

// ModuleID names one of the six dashboard instruments.
type ModuleID string

const (
	ModuleTraffic ModuleID = "traffic"
	ModuleNews    ModuleID = "news"
	ModuleRadar   ModuleID = "radar"
	ModuleWeather ModuleID = "weather"
	ModuleAQI     ModuleID = "aqi"
	ModuleMetro   ModuleID = "metro"
)

// Modules lists every instrument in display order.
var Modules = []ModuleID{
	ModuleTraffic, ModuleNews, ModuleRadar, ModuleWeather, ModuleAQI, ModuleMetro,
}

// ActivationDelay is the fixed gap between opening a card and starting its
// engine, giving the expand transition a head start.
const ActivationDelay = 400 * time.Millisecond

// Engine is the per-module start/stop hook pair. Stop must tolerate being
// called on an engine that never started: closing a card mid-transition
// still fires Stop so owned handles are always released.
type Engine interface {
	Start()
	Stop()
}

// Phase is the controller's position in the open/close cycle.
type Phase int

const (
	Idle Phase = iota
	Activating
	Active
)

// Controller is the card activation state machine. It is driven entirely
// from the UI goroutine; transitions never overlap.
type Controller struct {
	phase   Phase
	current ModuleID
	gen     int
	engines map[ModuleID]Engine
}

func NewController() *Controller {
	return &Controller{engines: make(map[ModuleID]Engine)}
}

// Register maps a module to its engine hooks. Modules without an engine
// (the stateless gauges) activate with no-op hooks.
func (c *Controller) Register(id ModuleID, e Engine) {
	c.engines[id] = e
}

func (c *Controller) Phase() Phase { return c.phase }

// Current returns the open module, valid only while non-Idle.
func (c *Controller) Current() (ModuleID, bool) {
	if c.phase == Idle {
		return "", false
	}
	return c.current, true
}

// Open begins activating id. Legal only from Idle; otherwise it is refused
// and the already-open module stays put. The returned generation must be
// handed back to Activate when the transition delay expires.
func (c *Controller) Open(id ModuleID) (gen int, ok bool) {
	if c.phase != Idle {
		return 0, false
	}
	c.phase = Activating
	c.current = id
	c.gen++
	return c.gen, true
}

// Activate completes a pending activation and fires the engine's Start
// hook. A stale generation (the card was closed, or closed and reopened,
// while the delay timer was in flight) is ignored.
func (c *Controller) Activate(gen int) bool {
	if c.phase != Activating || gen != c.gen {
		return false
	}
	c.phase = Active
	if e, ok := c.engines[c.current]; ok {
		e.Start()
	}
	return true
}

// Close shuts the open module, firing its Stop hook, and returns to Idle.
// A no-op when nothing is open.
func (c *Controller) Close() bool {
	if c.phase == Idle {
		return false
	}
	if e, ok := c.engines[c.current]; ok {
		e.Stop()
	}
	c.phase = Idle
	c.current = ""
	return true
}
