package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Synthesize renders every sound of the game into memory buffers.
func Synthesize(sr beep.SampleRate) map[SoundID]*beep.Buffer {
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	rng := rand.New(rand.NewSource(1))

	render := func(s beep.Streamer) *beep.Buffer {
		buf := beep.NewBuffer(format)
		buf.Append(s)
		return buf
	}

	return map[SoundID]*beep.Buffer{
		SoundAmbient:   render(newDrone(sr, 4*time.Second, rng)),
		SoundFire:      render(newCrackle(sr, 3*time.Second, rng)),
		SoundMatch:     render(newStrike(sr, 600*time.Millisecond, rng)),
		SoundGhost:     render(newWail(sr, 1500*time.Millisecond)),
		SoundJumpscare: render(newShriek(sr, 2500*time.Millisecond, rng)),
	}
}

// generator streams a fixed number of samples computed by fn from the
// elapsed time in seconds.
type generator struct {
	sr    beep.SampleRate
	pos   int
	total int
	fn    func(t float64) float64
}

func newGenerator(sr beep.SampleRate, d time.Duration, fn func(t float64) float64) *generator {
	return &generator{sr: sr, total: sr.N(d), fn: fn}
}

func (g *generator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		v := g.fn(float64(g.pos) / float64(g.sr))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *generator) Err() error {
	return nil
}

// newDrone is a low beating hum with a little air, shaped to loop without a click.
func newDrone(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	length := d.Seconds()
	return newGenerator(sr, d, func(t float64) float64 {
		swell := 0.5 - 0.5*math.Cos(2*math.Pi*t/length)
		hum := 0.12*math.Sin(2*math.Pi*55*t) + 0.08*math.Sin(2*math.Pi*55.5*t)
		air := 0.02 * (rng.Float64()*2 - 1)
		return (hum + air) * (0.6 + 0.4*swell)
	})
}

// newCrackle is sparse random pops over a soft noise bed.
func newCrackle(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	pop := 0.0
	return newGenerator(sr, d, func(t float64) float64 {
		if rng.Float64() < 0.0008 {
			pop = 0.6 + 0.4*rng.Float64()
		}
		pop *= 0.995
		return 0.03*(rng.Float64()*2-1) + pop*(rng.Float64()*2-1)*0.3
	})
}

// newStrike is a noise burst with a fast attack and a flame tail.
func newStrike(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	return newGenerator(sr, d, func(t float64) float64 {
		burst := math.Exp(-t*25) * (rng.Float64()*2 - 1) * 0.6
		flame := math.Exp(-t*4) * math.Sin(2*math.Pi*90*t) * 0.1
		return burst + flame
	})
}

// newWail is a falling sine with vibrato.
func newWail(sr beep.SampleRate, d time.Duration) beep.Streamer {
	length := d.Seconds()
	phase := 0.0
	step := 1 / float64(sr)
	return newGenerator(sr, d, func(t float64) float64 {
		freq := 420 - 160*(t/length) + 12*math.Sin(2*math.Pi*6*t)
		phase += 2 * math.Pi * freq * step
		env := math.Sin(math.Pi * t / length)
		return 0.25 * env * math.Sin(phase)
	})
}

// newShriek is a loud detuned square cluster over noise.
func newShriek(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	return newGenerator(sr, d, func(t float64) float64 {
		square := func(f float64) float64 {
			if math.Sin(2*math.Pi*f*t) >= 0 {
				return 1
			}
			return -1
		}
		cluster := square(880) + square(932) + square(1245)
		env := math.Exp(-t * 1.2)
		return env * (0.12*cluster + 0.25*(rng.Float64()*2-1))
	})
}
