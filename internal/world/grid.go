// Package world holds the tile grid, the candles placed on it and the
// random generator that builds both at scene entry.
package world

import "fmt"

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	// TileReserved has a minimap colour but is never generated.
	TileReserved
)

// Grid is a fixed-size square of tiles stored row-major (index = x + y*size).
type Grid struct {
	size  int
	tiles []Tile
}

// NewGrid creates an all-empty grid of size×size tiles.
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		tiles: make([]Tile, size*size),
	}
}

// Size returns the number of tiles per side.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the tile at (x, y). Out-of-bounds cells read as walls.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[x+y*g.size]
}

// Set writes the tile at (x, y).
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("tile (%d, %d) outside %dx%d grid", x, y, g.size, g.size)
	}
	g.tiles[x+y*g.size] = t
	return nil
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// EmptyCells lists the coordinates of every empty cell in row-major order.
func (g *Grid) EmptyCells() [][2]int {
	var cells [][2]int
	for i, v := range g.tiles {
		if v == TileEmpty {
			cells = append(cells, [2]int{i % g.size, i / g.size})
		}
	}
	return cells
}

// ForEachInView calls fn for the cells of the cols×rows window whose
// top-left tile is (x0, y0), skipping cells outside the grid.
func (g *Grid) ForEachInView(x0, y0, cols, rows int, fn func(x, y int, t Tile)) {
	for x := x0; x < x0+cols; x++ {
		for y := y0; y < y0+rows; y++ {
			if !g.InBounds(x, y) {
				continue
			}
			fn(x, y, g.tiles[x+y*g.size])
		}
	}
}
