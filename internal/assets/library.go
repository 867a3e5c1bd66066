// Package assets provides the sprite sheets the scenes draw from. Sheets
// are decoded from PNG files when present and synthesized otherwise, so the
// game runs from a bare checkout.
package assets

import (
	"image"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/candlewake/internal/logger"
	"chosenoffset.com/candlewake/internal/render"
)

// DefaultDir is where the binary looks for sprite sheets.
const DefaultDir = "assets/sprites"

// Sprite sheet file names
const (
	FileObjects   = "objects.png"
	FilePlayer    = "player.png"
	FileGhost     = "ghost.png"
	FileLight     = "light.png"
	FileJumpscare = "jumpscare.png"
)

// Library holds every image a scene needs.
type Library struct {
	Objects   render.Image
	Player    render.Image
	Ghost     render.Image
	Light     render.Image
	Pixel     render.Image
	Jumpscare render.Image
}

// Load decodes each sheet from dir through loader, falling back to the
// generated placeholder when the file is missing or has the wrong size.
// A nil loader always uses placeholders.
func Load(r render.Renderer, loader render.ResourceLoader, dir string) *Library {
	lib := &Library{Pixel: r.NewImageFromImage(GeneratePixel())}
	targets := map[string]*render.Image{
		FileObjects:   &lib.Objects,
		FilePlayer:    &lib.Player,
		FileGhost:     &lib.Ghost,
		FileLight:     &lib.Light,
		FileJumpscare: &lib.Jumpscare,
	}

	generated := 0
	for _, s := range sheets {
		placeholder := s.generate()
		*targets[s.file] = loadOrGenerate(r, loader, filepath.Join(dir, s.file), placeholder, &generated)
	}

	logger.Log.WithFields(logrus.Fields{
		"dir":          dir,
		"placeholders": generated,
		"sheets":       len(sheets),
	}).Info("Sprite sheets ready")
	return lib
}

func loadOrGenerate(r render.Renderer, loader render.ResourceLoader, path string, placeholder *image.RGBA, generated *int) render.Image {
	if loader != nil {
		img, err := loader.LoadImage(path)
		switch {
		case err != nil:
			logger.Log.WithField("path", path).Debugf("Using placeholder: %v", err)
		case img.Bounds().Size() != placeholder.Bounds().Size():
			logger.Log.WithFields(logrus.Fields{
				"path": path,
				"got":  img.Bounds().Size(),
				"want": placeholder.Bounds().Size(),
			}).Warn("Sprite sheet has unexpected size, using placeholder")
			img.Dispose()
		default:
			return img
		}
	}
	*generated++
	return r.NewImageFromImage(placeholder)
}

// PlayerFrame returns the player animation frame at index.
func (l *Library) PlayerFrame(index int) render.Image {
	x := index * PlayerFrameW
	return l.Player.SubImage(image.Rect(x, 0, x+PlayerFrameW, PlayerFrameH))
}

// Tile returns the map tile for a non-empty tile value.
func (l *Library) Tile(value int) render.Image {
	x := (value - 1) * TileSize
	return l.Objects.SubImage(image.Rect(x, 0, x+TileSize, TileSize))
}

// Candle returns the candle sprite.
func (l *Library) Candle() render.Image {
	return l.Objects.SubImage(CandleSrc)
}

// JumpscareFrame returns the jumpscare frame at index.
func (l *Library) JumpscareFrame(index int) render.Image {
	x := index * JumpscareSize
	return l.Jumpscare.SubImage(image.Rect(x, 0, x+JumpscareSize, JumpscareSize))
}
