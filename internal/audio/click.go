// Package audio synthesizes the Geiger click through portaudio. The click
// is a short decaying noise burst; each Play rewinds the envelope to its
// attack so rapid clicks always start from the beginning.
package audio

import (
	"math/rand"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 44100
	bufferSize = 512

	// Click envelope: ~8ms of noise with an exponential tail.
	clickSamples = sampleRate / 125
	clickDecay   = 0.9985
	clickVolume  = 0.4
)

// Click is an output-only portaudio stream that stays silent until
// triggered. The TUI goroutine talks to the audio thread through a single
// atomic word, so neither ever blocks the other.
type Click struct {
	stream *portaudio.Stream

	// remaining samples of the current click; <=0 means silence.
	remaining atomic.Int64
	envelope  float64
	rng       *rand.Rand

	active bool
}

// NewClick opens the default output device. On any failure the returned
// Click is inert: Play and Halt are safe no-ops and the dashboard simply
// runs silent.
func NewClick() (*Click, error) {
	c := &Click{rng: rand.New(rand.NewSource(1))}

	if err := portaudio.Initialize(); err != nil {
		return c, err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, bufferSize, c.process)
	if err != nil {
		portaudio.Terminate()
		return c, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return c, err
	}

	c.stream = stream
	c.active = true
	return c, nil
}

// Play restarts the click from its beginning.
func (c *Click) Play() {
	if !c.active {
		return
	}
	c.remaining.Store(clickSamples)
}

// Halt silences and rewinds the click.
func (c *Click) Halt() {
	if !c.active {
		return
	}
	c.remaining.Store(0)
}

// Close tears down the stream and portaudio.
func (c *Click) Close() {
	if !c.active {
		return
	}
	c.active = false
	c.stream.Stop()
	c.stream.Close()
	portaudio.Terminate()
}

func (c *Click) process(out [][]float32) {
	left, right := out[0], out[1]
	for i := range left {
		rem := c.remaining.Load()
		if rem <= 0 {
			left[i], right[i] = 0, 0
			continue
		}
		if rem == clickSamples {
			c.envelope = 1
		}
		c.envelope *= clickDecay
		sample := float32((c.rng.Float64()*2 - 1) * c.envelope * clickVolume)
		left[i], right[i] = sample, sample
		c.remaining.Store(rem - 1)
	}
}
