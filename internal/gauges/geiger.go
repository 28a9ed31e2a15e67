package gauges

import (
	"sync"
	"time"
)

// Below this sentiment the counter stays silent.
const clickThreshold = 0.1

// GeigerAngle maps news sentiment to a needle angle in degrees: -45° at 0,
// +45° at 1. Deliberately unclamped; out-of-range inputs extrapolate.
func GeigerAngle(sentiment float64) float64 {
	return sentiment*90 - 45
}

// ClickDelay returns the inter-click interval for a sentiment value, and
// whether clicking happens at all. The delay shrinks linearly from 1500ms
// at sentiment 0.1 to 100ms at 1.0.
func ClickDelay(sentiment float64) (time.Duration, bool) {
	if sentiment < clickThreshold {
		return 0, false
	}
	ms := 1500 - ((sentiment-clickThreshold)/0.9)*1400
	return time.Duration(ms * float64(time.Millisecond)), true
}

// Sound is the audible side of a click. Play restarts the click from its
// beginning; Halt stops and rewinds it.
type Sound interface {
	Play()
	Halt()
}

// Clicker is the self-rescheduling Geiger click, held as an explicit
// cancellable handle so stopping the module cancels the pending fire
// instead of relying on a flag checked inside a closure.
type Clicker struct {
	mu        sync.Mutex
	sound     Sound
	timer     *time.Timer
	sentiment float64
	running   bool
}

func NewClicker(sound Sound) *Clicker {
	return &Clicker{sound: sound}
}

// Start captures the sentiment for the life of this activation and
// schedules the first click. Sub-threshold sentiment schedules nothing.
func (c *Clicker) Start(sentiment float64) {
	delay, ok := ClickDelay(sentiment)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.sentiment = sentiment
	c.running = true
	c.timer = time.AfterFunc(delay, c.fire)
}

func (c *Clicker) fire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	if c.sound != nil {
		c.sound.Play()
	}
	// Delay recomputed each fire from the sentiment captured at Start;
	// the snapshot never changes mid-run so neither does the cadence.
	delay, _ := ClickDelay(c.sentiment)
	c.timer = time.AfterFunc(delay, c.fire)
}

// Stop cancels the pending reschedule and rewinds the sound. Safe to call
// whether or not Start ever scheduled anything.
func (c *Clicker) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.running = false
	if c.sound != nil {
		c.sound.Halt()
	}
}

// Running reports whether a click is scheduled.
func (c *Clicker) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
