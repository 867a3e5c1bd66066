package game

import (
	"image"
	"image/color"

	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/world"
)

// Minimap colours
var (
	minimapWall     = color.RGBA{0, 94, 41, 255}
	minimapReserved = color.RGBA{94, 25, 0, 255}
	minimapEmpty    = color.RGBA{0, 0, 0, 255}
	minimapCandle   = color.RGBA{219, 227, 0, 255}
	minimapPlayer   = color.RGBA{230, 11, 0, 255}
)

// drawMap draws the tiles under the viewport.
func (e *Exploration) drawMap(dst render.Image) {
	tile := e.config.World.TileSize
	span := e.config.World.ViewSize/tile + 1
	e.grid.ForEachInView(e.camera.X/tile, e.camera.Y/tile, span, span, func(x, y int, t world.Tile) {
		if t == world.TileEmpty {
			return
		}
		opts := &render.DrawImageOptions{}
		opts.GeoM.Translate(float64(x*tile-e.camera.X), float64(y*tile-e.camera.Y))
		dst.DrawImage(e.assets.Tile(int(t)), opts)
	})
}

// minimapColor returns the minimap colour of a tile.
func minimapColor(t world.Tile) color.RGBA {
	switch t {
	case world.TileWall:
		return minimapWall
	case world.TileReserved:
		return minimapReserved
	default:
		return minimapEmpty
	}
}

// buildMinimap rasterises the grid at one pixel per tile. The grid does
// not change during a scene, so this runs once per generation.
func (e *Exploration) buildMinimap() {
	if e.minimapTiles != nil {
		e.minimapTiles.Dispose()
	}
	size := e.grid.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, minimapColor(e.grid.At(x, y)))
		}
	}
	e.minimapTiles = e.renderer.NewImageFromImage(img)
}

// drawMinimap replaces the frame with the full-grid overview.
func (e *Exploration) drawMinimap(dst render.Image) {
	dst.Fill(minimapEmpty)
	dst.DrawImage(e.minimapTiles, nil)

	tile := e.config.World.TileSize
	for i := range e.candles.Candles {
		c := &e.candles.Candles[i]
		if c.Lit {
			continue
		}
		e.drawPixel(dst, c.Rect.X/tile, c.Rect.Y/tile, minimapCandle)
	}

	hb := e.config.Player.HitboxOffset
	e.drawPixel(dst, (int(e.player.Pos.X)+hb)/tile, (int(e.player.Pos.Y)+hb)/tile, minimapPlayer)
}

func (e *Exploration) drawPixel(dst render.Image, x, y int, clr color.RGBA) {
	opts := &render.DrawImageOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(e.assets.Pixel, opts)
}
