package world

import "testing"

func TestGridAccessors(t *testing.T) {
	g := NewGrid(64)

	if g.At(0, 0) != TileEmpty {
		t.Error("Expected new grid to be empty")
	}

	if err := g.Set(63, 63, TileWall); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if g.At(63, 63) != TileWall {
		t.Error("Expected wall at (63, 63)")
	}

	if err := g.Set(64, 0, TileWall); err == nil {
		t.Error("Expected error writing outside the grid")
	}
	if err := g.Set(0, -1, TileWall); err == nil {
		t.Error("Expected error writing outside the grid")
	}

	if g.At(-1, 5) != TileWall || g.At(5, 64) != TileWall {
		t.Error("Expected out-of-bounds reads to report walls")
	}
}

func TestGridRowMajorLayout(t *testing.T) {
	g := NewGrid(64)
	if err := g.Set(3, 2, TileWall); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if g.tiles[3+2*64] != TileWall {
		t.Error("Expected tile (3, 2) at index 3 + 2*64")
	}
}

func TestForEachInViewClipsToGrid(t *testing.T) {
	g := NewGrid(64)
	visited := 0
	g.ForEachInView(62, 62, 5, 5, func(x, y int, _ Tile) {
		if !g.InBounds(x, y) {
			t.Errorf("Visited out-of-bounds cell (%d, %d)", x, y)
		}
		visited++
	})
	if visited != 4 {
		t.Errorf("Expected 4 cells in the clipped view, got %d", visited)
	}
}

func TestCandleHoldAndRelease(t *testing.T) {
	c := NewCandle(2, 3, 16, 8)
	if c.Rect.X != 32 || c.Rect.Y != 48 {
		t.Errorf("Expected candle at (32, 48), got (%d, %d)", c.Rect.X, c.Rect.Y)
	}
	c.Hold()
	c.Hold()
	if c.HeldFrames() != 2 {
		t.Errorf("Expected 2 held frames, got %d", c.HeldFrames())
	}
	c.Release()
	if c.HeldFrames() != 0 {
		t.Errorf("Expected release to clear progress, got %d", c.HeldFrames())
	}
}
