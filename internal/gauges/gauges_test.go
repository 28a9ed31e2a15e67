package gauges_test

import (
	"math/rand"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/citysense/internal/gauges"
)

var _ = Describe("Speedometer", func() {
	DescribeTable("needle angle",
		func(speed, want float64) {
			Expect(gauges.SpeedometerAngle(speed)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("standstill", 0.0, -90.0),
		Entry("half scale", 60.0, 0.0),
		Entry("full scale", 120.0, 90.0),
		Entry("clamped above", 200.0, 90.0),
		Entry("clamped below", -10.0, -90.0),
	)

	It("jitters only when traffic is moving", func() {
		Expect(gauges.SpeedometerJitter(5)).To(BeFalse())
		Expect(gauges.SpeedometerJitter(5.1)).To(BeTrue())
		Expect(gauges.SpeedometerJitter(0)).To(BeFalse())
	})
})

var _ = Describe("Geiger counter", func() {
	DescribeTable("needle angle is linear and unclamped",
		func(sentiment, want float64) {
			Expect(gauges.GeigerAngle(sentiment)).To(BeNumerically("~", want, 1e-9))
		},
		Entry("calm", 0.0, -45.0),
		Entry("neutral", 0.5, 0.0),
		Entry("chaos", 1.0, 45.0),
		Entry("extrapolates past one", 1.5, 90.0),
	)

	DescribeTable("click delay",
		func(sentiment float64, want time.Duration) {
			d, ok := gauges.ClickDelay(sentiment)
			Expect(ok).To(BeTrue())
			Expect(d).To(BeNumerically("~", want, time.Millisecond))
		},
		Entry("threshold", 0.1, 1500*time.Millisecond),
		Entry("midpoint", 0.55, 800*time.Millisecond),
		Entry("maximum", 1.0, 100*time.Millisecond),
	)

	It("schedules no clicks below the threshold", func() {
		_, ok := gauges.ClickDelay(0.05)
		Expect(ok).To(BeFalse())
	})
})

type countingSound struct {
	plays, halts atomic.Int32
}

func (s *countingSound) Play() { s.plays.Add(1) }
func (s *countingSound) Halt() { s.halts.Add(1) }

var _ = Describe("Clicker", func() {
	It("never schedules for quiet news", func() {
		snd := &countingSound{}
		c := gauges.NewClicker(snd)
		c.Start(0.05)
		Expect(c.Running()).To(BeFalse())
		Consistently(func() int32 { return snd.plays.Load() }, 200*time.Millisecond).Should(BeZero())
		c.Stop()
	})

	It("clicks repeatedly at high sentiment until stopped", func() {
		snd := &countingSound{}
		c := gauges.NewClicker(snd)
		c.Start(1.0) // 100ms cadence
		defer c.Stop()

		Eventually(func() int32 { return snd.plays.Load() }, 2*time.Second).Should(BeNumerically(">=", 3))
	})

	It("stop cancels the pending click and rewinds the sound", func() {
		snd := &countingSound{}
		c := gauges.NewClicker(snd)
		c.Start(1.0)
		Eventually(func() int32 { return snd.plays.Load() }, 2*time.Second).Should(BeNumerically(">=", 1))

		c.Stop()
		Expect(snd.halts.Load()).To(BeNumerically(">=", 1))
		settled := snd.plays.Load()
		Consistently(func() int32 { return snd.plays.Load() }, 400*time.Millisecond).Should(Equal(settled))
	})
})

var _ = Describe("Radar", func() {
	It("places no blips for an empty sky", func() {
		rng := rand.New(rand.NewSource(1))
		Expect(gauges.RadarBlips(rng, 0)).To(BeEmpty())
	})

	It("places exactly one blip per flight, inside the face margins", func() {
		rng := rand.New(rand.NewSource(7))
		blips := gauges.RadarBlips(rng, 40)
		Expect(blips).To(HaveLen(40))
		for _, b := range blips {
			Expect(b.X).To(And(BeNumerically(">=", 0.2), BeNumerically("<=", 0.8)))
			Expect(b.Y).To(And(BeNumerically(">=", 0.2), BeNumerically("<=", 0.8)))
		}
	})
})

var _ = Describe("Mascot", func() {
	It("keys art by condition", func() {
		Expect(gauges.Mascot("rain")).NotTo(Equal(gauges.Mascot("sunny")))
		Expect(gauges.Mascot("cold")).To(HaveLen(5))
	})

	It("falls back to sunny for unknown conditions", func() {
		Expect(gauges.Mascot("hail")).To(Equal(gauges.Mascot("sunny")))
		Expect(gauges.Mascot("")).To(Equal(gauges.Mascot("sunny")))
	})
})
