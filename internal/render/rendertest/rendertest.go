// Package rendertest provides in-memory implementations of the render
// interfaces for tests. Images record every draw call instead of
// rasterising.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/candlewake/internal/render"
)

// DrawCall is one recorded DrawImage call.
type DrawCall struct {
	Src  *Image
	Opts render.DrawImageOptions
}

// Position returns where the source's top-left corner lands.
func (d DrawCall) Position() (float64, float64) {
	return d.Opts.GeoM.Apply(0, 0)
}

// Renderer creates recording images.
type Renderer struct {
	Created int
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewImage creates a named blank image.
func (r *Renderer) NewImage(width, height int) render.Image {
	r.Created++
	return NewImage(fmt.Sprintf("image-%d", r.Created), width, height)
}

// NewImageFromImage creates an image the size of src.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	r.Created++
	b := src.Bounds()
	return NewImage(fmt.Sprintf("image-%d", r.Created), b.Dx(), b.Dy())
}

// Image records fills and draws.
type Image struct {
	Name     string
	bounds   image.Rectangle
	parent   *Image
	Draws    []DrawCall
	Fills    []color.Color
	Clears   int
	Disposed bool
}

// NewImage creates a recording image with a name used in assertions.
func NewImage(name string, width, height int) *Image {
	return &Image{Name: name, bounds: image.Rect(0, 0, width, height)}
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return i.bounds
}

// Size returns the width and height of the image.
func (i *Image) Size() (int, int) {
	return i.bounds.Dx(), i.bounds.Dy()
}

// SubImage returns a named view of the image; draws through it are not
// forwarded to the parent.
func (i *Image) SubImage(r image.Rectangle) render.Image {
	r = r.Intersect(i.bounds)
	return &Image{Name: i.Name, bounds: r, parent: i}
}

// Root returns the image a sub-image was cut from.
func (i *Image) Root() *Image {
	if i.parent == nil {
		return i
	}
	return i.parent.Root()
}

// Fill records the fill colour and forgets earlier draws.
func (i *Image) Fill(clr color.Color) {
	i.Fills = append(i.Fills, clr)
	i.Draws = nil
}

// Clear records a clear and forgets earlier draws.
func (i *Image) Clear() {
	i.Clears++
	i.Draws = nil
}

// DrawImage records the call.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src.(*Image)}
	if opts != nil {
		call.Opts = *opts
	}
	i.Draws = append(i.Draws, call)
}

// Dispose marks the image as disposed.
func (i *Image) Dispose() {
	i.Disposed = true
}

// DrawsOf returns the recorded draws whose source was cut from an image
// with the given name.
func (i *Image) DrawsOf(name string) []DrawCall {
	var out []DrawCall
	for _, d := range i.Draws {
		if d.Src.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// Input is a scripted keyboard. Set Held for keys that are down this frame
// and call Advance between frames so the just-pressed and just-released
// queries compare against the previous frame.
type Input struct {
	Held map[render.Key]bool
	prev map[render.Key]bool
	Quit bool
}

// NewInput creates an input with no keys held.
func NewInput() *Input {
	return &Input{
		Held: make(map[render.Key]bool),
		prev: make(map[render.Key]bool),
	}
}

// Press holds the given keys from this frame on.
func (in *Input) Press(keys ...render.Key) {
	for _, k := range keys {
		in.Held[k] = true
	}
}

// Release lets go of the given keys from this frame on.
func (in *Input) Release(keys ...render.Key) {
	for _, k := range keys {
		delete(in.Held, k)
	}
}

// Advance ends the frame.
func (in *Input) Advance() {
	in.prev = make(map[render.Key]bool, len(in.Held))
	for k, v := range in.Held {
		in.prev[k] = v
	}
}

// IsKeyPressed reports whether the key is held.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.Held[key]
}

// IsKeyJustPressed reports whether the key went down this frame.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.Held[key] && !in.prev[key]
}

// IsKeyJustReleased reports whether the key went up this frame.
func (in *Input) IsKeyJustReleased(key render.Key) bool {
	return !in.Held[key] && in.prev[key]
}

// IsQuitRequested reports the scripted quit flag.
func (in *Input) IsQuitRequested() bool {
	return in.Quit
}
