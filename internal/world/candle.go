package world

import "chosenoffset.com/candlewake/internal/core/geom"

// Candle is an interactable placed on an empty tile. Once lit it stays lit
// until the scene is regenerated.
type Candle struct {
	Rect geom.Rect
	Lit  bool

	held int // Consecutive frames the interact key was held on it
}

// NewCandle creates an unlit candle anchored at tile (tx, ty).
func NewCandle(tx, ty, tileSize, size int) Candle {
	return Candle{Rect: geom.NewRect(tx*tileSize, ty*tileSize, size, size)}
}

// Tile returns the tile the candle is anchored to.
func (c *Candle) Tile(tileSize int) (int, int) {
	return c.Rect.X / tileSize, c.Rect.Y / tileSize
}

// HeldFrames returns the current streak of held frames.
func (c *Candle) HeldFrames() int {
	return c.held
}

// Hold extends the held streak by one frame and returns the new length.
func (c *Candle) Hold() int {
	c.held++
	return c.held
}

// Release drops any partial progress.
func (c *Candle) Release() {
	c.held = 0
}
