package viz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/citysense/internal/gauges"
	"github.com/san-kum/citysense/internal/life"
	"github.com/san-kum/citysense/internal/particles"
)

// drawDial draws a semicircular gauge face spanning [minDeg, maxDeg] with
// the needle at needleDeg. Angles are dashboard convention: 0° points up,
// negative left, positive right.
func (d *Dashboard) drawDial(minDeg, maxDeg, needleDeg float64) {
	c := d.canvas
	cw, ch := c.PixelWidth(), c.PixelHeight()
	cx, cy := cw/2, ch*3/4
	r := float64(ch) * 0.6
	if float64(cw)*0.45 < r {
		r = float64(cw) * 0.45
	}

	// face arc with tick marks at both ends and the middle
	for deg := minDeg; deg <= maxDeg; deg += 2 {
		rad := deg * math.Pi / 180
		c.Set(cx+int(r*math.Sin(rad)), cy-int(r*math.Cos(rad)))
	}
	for _, deg := range []float64{minDeg, (minDeg + maxDeg) / 2, maxDeg} {
		rad := deg * math.Pi / 180
		c.DrawLine(
			cx+int((r-4)*math.Sin(rad)), cy-int((r-4)*math.Cos(rad)),
			cx+int(r*math.Sin(rad)), cy-int(r*math.Cos(rad)),
		)
	}

	rad := needleDeg * math.Pi / 180
	c.DrawLineColored(cx, cy,
		cx+int((r-6)*math.Sin(rad)), cy-int((r-6)*math.Cos(rad)),
		d.theme.Accent)
	c.FillCircle(cx, cy, 2, d.theme.Primary)
}

func (d *Dashboard) viewTraffic() string {
	speed := d.snap.Traffic.SpeedKMH
	angle := gauges.SpeedometerAngle(speed)
	if gauges.SpeedometerJitter(speed) {
		angle += d.rng.Float64()*4 - 2
	}

	d.canvas.Clear()
	d.drawDial(-90, 90, angle)

	stats := []string{
		headerStyle(d.theme).Render("TRAFFIC"), "",
		d.statLine("Speed", fmt.Sprintf("%.0f km/h", speed)),
		d.statLine("Needle", fmt.Sprintf("%+.1f°", gauges.SpeedometerAngle(speed))),
		d.statLine("Jitter", onOff(gauges.SpeedometerJitter(speed))), "",
		ProgressBar(speed/120, 24, d.theme),
	}
	return d.compose(d.canvas.Render(d.theme.Muted), stats, "esc close · q quit")
}

func (d *Dashboard) viewNews() string {
	sentiment := d.snap.NewsSentiment

	d.canvas.Clear()
	d.drawDial(-45, 45, gauges.GeigerAngle(sentiment))

	cadence := "silent"
	if delay, ok := gauges.ClickDelay(sentiment); ok {
		cadence = fmt.Sprintf("every %dms", delay.Milliseconds())
	}
	clicking := "off"
	if d.clicker.clicker.Running() {
		clicking = "clicking"
	}

	stats := []string{
		headerStyle(d.theme).Render("NEWS GEIGER"), "",
		d.statLine("Chaos", fmt.Sprintf("%.2f", sentiment)),
		d.statLine("Needle", fmt.Sprintf("%+.1f°", gauges.GeigerAngle(sentiment))),
		d.statLine("Cadence", cadence),
		d.statLine("Sound", clicking), "",
		ProgressBar(sentiment, 24, d.theme),
	}
	return d.compose(d.canvas.Render(d.theme.Muted), stats, "esc close · q quit")
}

func (d *Dashboard) viewRadar() string {
	c := d.canvas
	c.Clear()
	cw, ch := c.PixelWidth(), c.PixelHeight()
	cx, cy := cw/2, ch/2
	r := float64(ch) / 2
	if float64(cw)/2 < r {
		r = float64(cw) / 2
	}
	r -= 2

	c.Circle(cx, cy, r)
	c.Circle(cx, cy, r*2/3)
	c.Circle(cx, cy, r/3)
	c.DrawLine(cx-int(r), cy, cx+int(r), cy)
	c.DrawLine(cx, cy-int(r), cx, cy+int(r))

	// sweep line, one revolution every few seconds
	sweep := float64(d.frame) * 0.06
	c.DrawLineColored(cx, cy,
		cx+int(r*math.Cos(sweep)), cy+int(r*math.Sin(sweep)),
		d.theme.Secondary)

	for _, b := range d.blips {
		c.FillCircle(int(b.X*float64(cw)), int(b.Y*float64(ch)), 1.5, d.theme.Blip)
	}

	stats := []string{
		headerStyle(d.theme).Render("FLIGHT RADAR"), "",
		d.statLine("Aircraft", fmt.Sprintf("%d", d.snap.FlightCount)),
		d.statLine("Blips", fmt.Sprintf("%d", len(d.blips))),
	}
	return d.compose(c.Render(d.theme.Muted), stats, "esc close · q quit")
}

func (d *Dashboard) viewWeather() string {
	art := gauges.Mascot(d.snap.Weather.Condition)
	style := lipgloss.NewStyle().Foreground(d.theme.Accent)

	var face string
	for _, line := range art {
		face += style.Render(line) + "\n"
	}

	stats := []string{
		headerStyle(d.theme).Render("WEATHER"), "",
		d.statLine("Condition", d.snap.Weather.Condition),
		d.statLine("Temp", fmt.Sprintf("%.1f°C", d.snap.Weather.Temp)),
	}
	return d.compose(face, stats, "esc close · q quit")
}

func (d *Dashboard) viewAQI() string {
	c := d.canvas
	c.Clear()

	grid := d.lifeEng.Grid()
	if grid != nil {
		// center the square colony in the pane
		offX := (c.PixelWidth() - grid.Width()*life.CellResolution) / 2
		if offX < 0 {
			offX = 0
		}
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				if grid.Alive(x, y) {
					c.FillRect(
						offX+x*life.CellResolution, y*life.CellResolution,
						life.CellResolution-1, life.CellResolution-1,
						d.theme.CellAlive)
				}
			}
		}
	}

	stats := []string{
		headerStyle(d.theme).Render("AIR PETRI DISH"), "",
		d.statLine("AQI", fmt.Sprintf("%d", d.snap.AQI)),
		d.statLine("Seed", fmt.Sprintf("%.0f%%", life.Density(d.snap.AQI)*100)),
		d.statLine("Smog kill", fmt.Sprintf("%.0f%%", life.DeathChance(d.snap.AQI)*100)),
		d.statLine("Status", runPaused(d.lifeEng.Running())),
	}
	if grid != nil {
		stats = append(stats, d.statLine("Alive", fmt.Sprintf("%d", grid.Population())))
	}
	if len(d.popHistory) > 1 {
		chart := asciigraph.Plot(d.popHistory,
			asciigraph.Height(5), asciigraph.Width(26), asciigraph.Caption("population"))
		stats = append(stats, "", chart)
	}
	return d.compose(c.Render(d.theme.Muted), stats, "space pause · esc close")
}

func (d *Dashboard) viewMetro() string {
	c := d.canvas
	c.Clear()

	for _, p := range d.metro.Particles() {
		if p.Alpha <= 0 {
			continue
		}
		color := d.theme.O2
		if p.Kind == particles.CO2 {
			color = d.theme.CO2
		}
		if p.Alpha < 0.4 {
			color = d.theme.Muted
		}
		c.FillCircle(int(p.X), int(p.Y), p.Size/2, color)
	}

	stats := []string{
		headerStyle(d.theme).Render("METRO BREATH"), "",
		d.statLine("Density", d.snap.MetroDensity),
		d.statLine("CO2 odds", fmt.Sprintf("%.0f%%", particles.CO2Probability(d.snap.MetroDensity)*100)),
		d.statLine("Particles", fmt.Sprintf("%d / %d", d.metro.Count(), particles.MaxParticles)),
		d.statLine("Status", runPaused(d.metro.Running())),
	}
	if len(d.countHistory) > 1 {
		stats = append(stats, "", Sparkline(d.countHistory, 30, d.theme))
	}
	return d.compose(c.Render(d.theme.Muted), stats, "space pause · esc close")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runPaused(running bool) string {
	if running {
		return "running"
	}
	return "paused"
}
