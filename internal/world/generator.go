package world

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/simulation"
)

// ErrNoFloor is returned when a candle cannot be placed because the grid
// has no empty cell.
var ErrNoFloor = errors.New("world: grid has no empty tile for a candle")

// Layout is everything a freshly generated scene starts from.
type Layout struct {
	Grid        *Grid
	PlayerSpawn geom.PointF
	GhostSpawn  geom.PointF
	Candles     []Candle
}

// Generator builds random layouts.
type Generator struct {
	config *simulation.Config
	rng    *rand.Rand

	// Fallbacks counts candles placed from the empty-cell list after
	// rejection sampling ran out of attempts.
	Fallbacks int
}

// NewGenerator creates a generator. A zero seed uses the current time.
func NewGenerator(cfg *simulation.Config, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		config: cfg,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Rand exposes the generator's source so the scene can keep drawing from
// the same seeded stream after generation.
func (gen *Generator) Rand() *rand.Rand {
	return gen.rng
}

// Generate fills a new grid and places the player, the ghost and the candles.
func (gen *Generator) Generate() (*Layout, error) {
	w := gen.config.World
	grid := NewGrid(w.GridSize)
	gen.FillGrid(grid)

	player := gen.PlayerSpawn()
	ghost := gen.GhostSpawn(player)

	count := w.MinCandles + gen.rng.Intn(w.MaxCandles-w.MinCandles)
	candles, err := gen.PlaceCandles(grid, count)
	if err != nil {
		return nil, err
	}

	return &Layout{
		Grid:        grid,
		PlayerSpawn: player,
		GhostSpawn:  ghost,
		Candles:     candles,
	}, nil
}

// FillGrid sets every cell to empty or wall with equal probability.
func (gen *Generator) FillGrid(grid *Grid) {
	size := grid.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			grid.tiles[x+y*size] = Tile(gen.rng.Intn(2))
		}
	}
}

// PlayerSpawn picks a random tile-aligned position anywhere on the grid.
func (gen *Generator) PlayerSpawn() geom.PointF {
	w := gen.config.World
	return geom.PointF{
		X: float64(gen.rng.Intn(w.GridSize) * w.TileSize),
		Y: float64(gen.rng.Intn(w.GridSize) * w.TileSize),
	}
}

// GhostSpawn offsets each axis of the player position by
// sin(angle) * distance, with angle and distance drawn per axis. The angle
// is a whole number used directly as radians, so the result is not a point
// on a circle.
func (gen *Generator) GhostSpawn(player geom.PointF) geom.PointF {
	return geom.PointF{
		X: player.X + gen.spawnOffset(),
		Y: player.Y + gen.spawnOffset(),
	}
}

func (gen *Generator) spawnOffset() float64 {
	w := gen.config.World
	angle := float64(gen.rng.Intn(w.GhostAngles))
	dist := w.GhostMinDist + gen.rng.Intn(w.GhostMaxDist-w.GhostMinDist)
	return math.Sin(angle) * float64(dist*w.TileSize)
}

// PlaceCandles places count candles on empty tiles. Each candle is found by
// rejection sampling; two candles may land on the same tile. After
// MaxPlacement misses the candle is taken uniformly from the list of empty
// cells instead, so placement always terminates.
func (gen *Generator) PlaceCandles(grid *Grid, count int) ([]Candle, error) {
	w := gen.config.World
	size := grid.Size()
	candles := make([]Candle, 0, count)

	var empty [][2]int
	for i := 0; i < count; i++ {
		tx, ty, found := -1, -1, false
		for attempt := 0; attempt < w.MaxPlacement; attempt++ {
			x, y := gen.rng.Intn(size), gen.rng.Intn(size)
			if grid.At(x, y) == TileEmpty {
				tx, ty, found = x, y, true
				break
			}
		}

		if !found {
			if empty == nil {
				empty = grid.EmptyCells()
			}
			if len(empty) == 0 {
				return nil, ErrNoFloor
			}
			cell := empty[gen.rng.Intn(len(empty))]
			tx, ty = cell[0], cell[1]
			gen.Fallbacks++
		}

		candles = append(candles, NewCandle(tx, ty, w.TileSize, gen.config.Candles.Size))
	}
	return candles, nil
}
