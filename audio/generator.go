package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/super-goalie/vmath"
)

// sweepGenerator is a sine whose pitch falls exponentially from start to end
type sweepGenerator struct {
	sr         beep.SampleRate
	start, end float64
	phase      float64
	pos        int
	samples    int
}

func newSweepGenerator(sr beep.SampleRate, start, end float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{sr: sr, start: start, end: end, samples: sr.N(d)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.samples)
		freq := g.start * math.Pow(g.end/g.start, t)

		v := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// slapGenerator is exponentially decaying noise over a low body tone
type slapGenerator struct {
	sr      beep.SampleRate
	decay   float64
	pos     int
	samples int
	rng     *vmath.FastRand
}

func newSlapGenerator(sr beep.SampleRate, decay float64, d time.Duration, seed uint64) *slapGenerator {
	return &slapGenerator{sr: sr, decay: decay, samples: sr.N(d), rng: vmath.NewFastRand(seed)}
}

func (g *slapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * g.decay)

		noise := g.rng.Range(-1, 1)
		body := 0.4 * math.Sin(2*math.Pi*180*t)
		v := env * (0.6*noise + body)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *slapGenerator) Err() error { return nil }

// warbleGenerator is a referee whistle: a carrier with fast vibrato
type warbleGenerator struct {
	sr      beep.SampleRate
	freq    float64
	rate    float64
	phase   float64
	pos     int
	samples int
}

func newWarbleGenerator(sr beep.SampleRate, freq, rate float64, d time.Duration) *warbleGenerator {
	return &warbleGenerator{sr: sr, freq: freq, rate: rate, samples: sr.N(d)}
}

func (g *warbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		freq := g.freq * (1 + 0.04*math.Sin(2*math.Pi*g.rate*t))

		v := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *warbleGenerator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sr.N(attack),
		release:  sr.N(release),
		total:    sr.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, math.Max(float64(left)/float64(e.release), 0))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
