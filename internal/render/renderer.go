package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop normally.
var ErrTerminated = errors.New("render: game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// NewImage creates a blank off-screen image.
	NewImage(width, height int) Image

	// NewImageFromImage uploads a decoded or generated image.
	NewImageFromImage(src image.Image) Image
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// Blend selects how source pixels combine with the destination.
type Blend int

const (
	// BlendSourceOver is regular alpha blending.
	BlendSourceOver Blend = iota
	// BlendAdd adds the source colour to the destination.
	BlendAdd
	// BlendMultiply multiplies the destination colour by the source colour.
	BlendMultiply
)

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM       GeoM
	ColorScale ColorScale
	Blend      Blend
}

// GeoM is a 2D affine transformation. The zero value is the identity.
type GeoM struct {
	a1, b, c, d1 float64 // a and d are stored minus one
	tx, ty       float64
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

// Scale scales the image by (sx, sy). Negative values mirror it.
func (g *GeoM) Scale(sx, sy float64) {
	a := (g.a1 + 1) * sx
	b := g.b * sx
	c := g.c * sy
	d := (g.d1 + 1) * sy
	g.a1, g.b, g.c, g.d1 = a-1, b, c, d-1
	g.tx *= sx
	g.ty *= sy
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	*g = GeoM{}
}

// Element returns the matrix element at row i, column j (0 <= i < 2, 0 <= j < 3).
func (g *GeoM) Element(i, j int) float64 {
	switch {
	case i == 0 && j == 0:
		return g.a1 + 1
	case i == 0 && j == 1:
		return g.b
	case i == 0 && j == 2:
		return g.tx
	case i == 1 && j == 0:
		return g.c
	case i == 1 && j == 1:
		return g.d1 + 1
	case i == 1 && j == 2:
		return g.ty
	default:
		panic("render: GeoM element out of range")
	}
}

// Apply transforms the point (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return (g.a1+1)*x + g.b*y + g.tx, g.c*x + (g.d1+1)*y + g.ty
}

// ColorScale multiplies the source colour channels. The zero value is the identity.
type ColorScale struct {
	r1, g1, b1, a1 float32 // stored minus one
}

// Scale multiplies the scale by the given factors.
func (c *ColorScale) Scale(r, g, b, a float32) {
	c.r1 = (c.r1+1)*r - 1
	c.g1 = (c.g1+1)*g - 1
	c.b1 = (c.b1+1)*b - 1
	c.a1 = (c.a1+1)*a - 1
}

// ScaleAlpha multiplies every channel by a, as premultiplied alpha requires.
func (c *ColorScale) ScaleAlpha(a float32) {
	c.Scale(a, a, a, a)
}

// ScaleWithColor tints the image with clr.
func (c *ColorScale) ScaleWithColor(clr color.Color) {
	r, g, b, a := clr.RGBA()
	c.Scale(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// Values returns the four channel multipliers.
func (c *ColorScale) Values() (r, g, b, a float32) {
	return c.r1 + 1, c.g1 + 1, c.b1 + 1, c.a1 + 1
}

// InputManager handles input from the user. Key state is sampled once per
// tick by the backend, so every query is stable within a frame.
type InputManager interface {
	// IsKeyPressed reports whether the key is currently held.
	IsKeyPressed(key Key) bool
	// IsKeyJustPressed reports whether the key went down this frame.
	IsKeyJustPressed(key Key) bool
	// IsKeyJustReleased reports whether the key went up this frame.
	IsKeyJustReleased(key Key) bool
	// IsQuitRequested reports whether the user asked to close the program.
	IsQuitRequested() bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyZ // Interact key
	KeyA // Minimap toggle key
	KeyEscape
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminated ends the loop without an error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the fixed number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
