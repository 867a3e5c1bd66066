// Package lighting builds the per-frame light mask that limits what the
// player can see.
package lighting

import (
	"image/color"
	"math"

	"chosenoffset.com/candlewake/internal/render"
)

var maskBlack = color.RGBA{0, 0, 0, 255}

// LightSource is one blob of light in screen space.
type LightSource struct {
	X    float64 // Centre X (in pixels)
	Y    float64 // Centre Y (in pixels)
	Size float64 // Blob side length (in pixels)
}

// Flicker returns base + amount*sin(t).
func Flicker(base, amount, t float64) float64 {
	return base + amount*math.Sin(t)
}

// Compositor collects the frame's light sources, rasterises them into an
// opaque black mask and multiplies the mask onto the scene.
type Compositor struct {
	mask   render.Image
	blob   render.Image
	lights []LightSource
}

// NewCompositor creates a compositor with a size×size mask. blob is the
// light sprite stamped for every source.
func NewCompositor(r render.Renderer, blob render.Image, size int) *Compositor {
	return &Compositor{
		mask: r.NewImage(size, size),
		blob: blob,
	}
}

// Reset forgets the previous frame's sources.
func (c *Compositor) Reset() {
	c.lights = c.lights[:0]
}

// Add queues a light centred on (x, y).
func (c *Compositor) Add(x, y, size float64) {
	c.lights = append(c.lights, LightSource{X: x, Y: y, Size: size})
}

// Lights returns the queued sources.
func (c *Compositor) Lights() []LightSource {
	return c.lights
}

// Mask returns the mask image.
func (c *Compositor) Mask() render.Image {
	return c.mask
}

// Build clears the mask to opaque black and adds every queued light.
func (c *Compositor) Build() {
	c.mask.Fill(maskBlack)

	bw, bh := c.blob.Size()
	for _, l := range c.lights {
		if l.Size <= 0 {
			continue
		}
		opts := &render.DrawImageOptions{Blend: render.BlendAdd}
		opts.GeoM.Scale(l.Size/float64(bw), l.Size/float64(bh))
		half := math.Floor(l.Size / 2)
		opts.GeoM.Translate(l.X-half, l.Y-half)
		c.mask.DrawImage(c.blob, opts)
	}
}

// Apply multiplies the mask onto dst.
func (c *Compositor) Apply(dst render.Image) {
	dst.DrawImage(c.mask, &render.DrawImageOptions{Blend: render.BlendMultiply})
}

// Dispose releases the mask.
func (c *Compositor) Dispose() {
	c.mask.Dispose()
}
