// Package particles simulates the embers that drift up from the player,
// lit candles and the ghost.
package particles

import (
	"image/color"
	"math/rand"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
)

var (
	ColorEmber  = color.RGBA{128, 128, 128, 255}
	ColorBright = color.RGBA{255, 255, 0, 255}
	ColorGhost  = color.RGBA{255, 0, 0, 255}
)

// Particle is one mote. It is alive while Lifetime is below the configured
// dead lifetime.
type Particle struct {
	Pos        geom.PointF
	Lifetime   int
	Color      color.RGBA
	EmitsLight bool
}

// Field owns every live particle of a scene.
type Field struct {
	config    simulation.ParticleConfig
	viewSize  int
	rng       *rand.Rand
	particles []Particle
}

// NewField creates an empty field drawing its randomness from rng.
func NewField(cfg *simulation.Config, rng *rand.Rand) *Field {
	return &Field{
		config:   cfg.Particles,
		viewSize: cfg.World.ViewSize,
		rng:      rng,
	}
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns the live particles. The slice is only valid until the
// next call that changes the field.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Emit spawns a particle near (x, y) with a one-pixel horizontal jitter.
func (f *Field) Emit(x, y float64, clr color.RGBA, emitsLight bool) {
	f.particles = append(f.particles, Particle{
		Pos:        geom.PointF{X: x + float64(f.rng.Intn(3)-1), Y: y + 2},
		Lifetime:   f.config.SpawnLifetime,
		Color:      clr,
		EmitsLight: emitsLight,
	})
}

// EmitEmber spawns a grey ember, or with a 1-in-R chance (R drawn from
// [BrightMinRoll, BrightMaxRoll) per call) a bright one that emits light.
func (f *Field) EmitEmber(x, y float64) {
	roll := f.config.BrightMinRoll + f.rng.Intn(f.config.BrightMaxRoll-f.config.BrightMinRoll)
	if f.rng.Intn(roll) == 0 {
		f.Emit(x, y, ColorBright, true)
		return
	}
	f.Emit(x, y, ColorEmber, false)
}

// Advance ages every particle by one frame and lets it rise, whether or
// not it is on screen.
func (f *Field) Advance() {
	for i := range f.particles {
		f.particles[i].Lifetime++
		f.particles[i].Pos.Y -= f.config.Rise
	}
}

// Alive reports whether p has lifetime left.
func (f *Field) Alive(p *Particle) bool {
	return p.Lifetime < f.config.DeadLifetime
}

// Visible reports whether p lies inside the viewport whose top-left
// corner is cam. The left and top edges are excluded.
func (f *Field) Visible(p *Particle, cam geom.Point) bool {
	return p.Pos.X > float64(cam.X) && p.Pos.Y > float64(cam.Y) &&
		p.Pos.X <= float64(cam.X+f.viewSize) && p.Pos.Y <= float64(cam.Y+f.viewSize)
}

// Draw plots every live, visible particle as one tinted pixel.
func (f *Field) Draw(dst, pixel render.Image, cam geom.Point) {
	for i := range f.particles {
		p := &f.particles[i]
		if !f.Alive(p) || !f.Visible(p, cam) {
			continue
		}
		opts := &render.DrawImageOptions{}
		opts.GeoM.Translate(float64(int(p.Pos.X)-cam.X), float64(int(p.Pos.Y)-cam.Y))
		opts.ColorScale.ScaleWithColor(p.Color)
		dst.DrawImage(pixel, opts)
	}
}

// Lights calls fn with the position of every live, visible particle that
// emits light.
func (f *Field) Lights(cam geom.Point, fn func(pos geom.PointF)) {
	for i := range f.particles {
		p := &f.particles[i]
		if !p.EmitsLight || !f.Alive(p) || !f.Visible(p, cam) {
			continue
		}
		fn(p.Pos)
	}
}

// Compact drops dead particles, keeping the survivors in order. It runs
// after the frame's aging and drawing so removal never shifts an entry
// that has not been processed yet.
func (f *Field) Compact() int {
	kept := f.particles[:0]
	for _, p := range f.particles {
		if f.Alive(&p) {
			kept = append(kept, p)
		}
	}
	removed := len(f.particles) - len(kept)
	for i := len(kept); i < len(f.particles); i++ {
		f.particles[i] = Particle{}
	}
	f.particles = kept
	return removed
}
