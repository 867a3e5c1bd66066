package game

import (
	"image/color"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
	"chosenoffset.com/candlewake/internal/world"
)

var (
	barBackground = color.RGBA{255, 0, 0, 255}
	barForeground = color.RGBA{0, 255, 0, 255}
)

// CandleMinigame lights candles while the player holds the interact key
// on them. Each candle keeps its own progress.
type CandleMinigame struct {
	Candles []world.Candle

	config        simulation.CandleConfig
	framesToLight int
	sprite        render.Image
	pixel         render.Image
}

// NewCandleMinigame takes ownership of candles. sprite is the candle
// image and pixel the 1x1 white image the progress bar is drawn with.
func NewCandleMinigame(cfg *simulation.Config, candles []world.Candle, sprite, pixel render.Image) *CandleMinigame {
	return &CandleMinigame{
		Candles:       candles,
		config:        cfg.Candles,
		framesToLight: cfg.FramesToLight(),
		sprite:        sprite,
		pixel:         pixel,
	}
}

// Progress returns candle i's progress in [0,1].
func (m *CandleMinigame) Progress(i int) float64 {
	return float64(m.Candles[i].HeldFrames()) * m.config.ProgressStep
}

// LitCount returns how many candles are lit.
func (m *CandleMinigame) LitCount() int {
	n := 0
	for i := range m.Candles {
		if m.Candles[i].Lit {
			n++
		}
	}
	return n
}

// Step draws every candle and advances its minigame by one frame, in
// order. onLit is called for each candle completed this frame.
func (m *CandleMinigame) Step(dst render.Image, cam Camera, hitbox geom.Rect, interact bool, onLit func(c *world.Candle)) {
	for i := range m.Candles {
		c := &m.Candles[i]
		x, y := c.Rect.X-cam.X, c.Rect.Y-cam.Y

		opts := &render.DrawImageOptions{}
		opts.GeoM.Translate(float64(x), float64(y))
		dst.DrawImage(m.sprite, opts)

		if !c.Lit && interact && c.Rect.Intersects(hitbox) {
			held := c.Hold()
			m.drawBar(dst, x, y-m.config.BarOffsetY, float64(held)*m.config.ProgressStep)

			if held >= m.framesToLight {
				c.Lit = true
				c.Release()
				if onLit != nil {
					onLit(c)
				}
			}
		} else if !interact {
			c.Release()
		}
	}
}

func (m *CandleMinigame) drawBar(dst render.Image, x, y int, progress float64) {
	m.drawPixelRect(dst, x, y, m.config.BarWidth, barBackground)
	m.drawPixelRect(dst, x, y, int(progress*float64(m.config.BarWidth)), barForeground)
}

func (m *CandleMinigame) drawPixelRect(dst render.Image, x, y, w int, clr color.RGBA) {
	if w <= 0 {
		return
	}
	opts := &render.DrawImageOptions{}
	opts.GeoM.Scale(float64(w), 1)
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(m.pixel, opts)
}
