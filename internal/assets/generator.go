package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// Sheet geometry shared by the generator and the code that cuts frames.
const (
	TileSize       = 16
	PlayerFrameW   = 16
	PlayerFrameH   = 10
	PlayerFrames   = 8
	GhostSize      = 8
	LightSize      = 64
	JumpscareSize  = 64
	JumpscareCount = 5
)

// CandleSrc is where the candle sprite sits on the objects sheet.
var CandleSrc = image.Rect(32, 0, 38, 4)

// Palette defines the placeholder colours
var Palette = struct {
	WallStone  color.RGBA
	WallMortar color.RGBA
	Wax        color.RGBA
	Wick       color.RGBA
	Cloak      color.RGBA
	Skin       color.RGBA
	Boots      color.RGBA
	Ghost      color.RGBA
	GhostEye   color.RGBA
	Scream     color.RGBA
}{
	WallStone:  color.RGBA{110, 104, 96, 255},
	WallMortar: color.RGBA{70, 64, 58, 255},
	Wax:        color.RGBA{235, 225, 200, 255},
	Wick:       color.RGBA{40, 30, 20, 255},
	Cloak:      color.RGBA{60, 70, 140, 255},
	Skin:       color.RGBA{230, 190, 160, 255},
	Boots:      color.RGBA{50, 35, 25, 255},
	Ghost:      color.RGBA{220, 225, 235, 255},
	GhostEye:   color.RGBA{10, 10, 10, 255},
	Scream:     color.RGBA{200, 200, 210, 255},
}

func newTransparent(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return img
}

func fillRect(img *image.RGBA, r image.Rectangle, clr color.RGBA) {
	draw.Draw(img, r, &image.Uniform{clr}, image.Point{}, draw.Src)
}

// GenerateObjects builds the objects sheet: the wall tile at x=0 and the
// candle at CandleSrc.
func GenerateObjects() *image.RGBA {
	img := newTransparent(3*TileSize, TileSize)

	// Brick wall with staggered mortar lines
	fillRect(img, image.Rect(0, 0, TileSize, TileSize), Palette.WallStone)
	for y := 0; y < TileSize; y += 4 {
		fillRect(img, image.Rect(0, y, TileSize, y+1), Palette.WallMortar)
		offset := 0
		if (y/4)%2 == 1 {
			offset = 4
		}
		for x := offset; x < TileSize; x += 8 {
			fillRect(img, image.Rect(x, y, x+1, y+4), Palette.WallMortar)
		}
	}

	fillRect(img, image.Rect(CandleSrc.Min.X+2, CandleSrc.Min.Y, CandleSrc.Min.X+4, CandleSrc.Min.Y+1), Palette.Wick)
	fillRect(img, image.Rect(CandleSrc.Min.X+1, CandleSrc.Min.Y+1, CandleSrc.Max.X-1, CandleSrc.Max.Y), Palette.Wax)
	return img
}

// GeneratePlayer builds the player strip. Frames 0-3 are idle, 4-7 walk.
func GeneratePlayer() *image.RGBA {
	img := newTransparent(PlayerFrameW*PlayerFrames, PlayerFrameH)
	for f := 0; f < PlayerFrames; f++ {
		x0 := f * PlayerFrameW
		bob := 0
		if f%2 == 1 {
			bob = 1
		}
		fillRect(img, image.Rect(x0+6, bob, x0+10, bob+3), Palette.Skin)
		fillRect(img, image.Rect(x0+5, bob+3, x0+11, 8), Palette.Cloak)

		stride := 0
		if f >= 4 {
			stride = (f % 2) * 2
		}
		fillRect(img, image.Rect(x0+5+stride, 8, x0+7+stride, PlayerFrameH), Palette.Boots)
		fillRect(img, image.Rect(x0+9-stride, 8, x0+11-stride, PlayerFrameH), Palette.Boots)
	}
	return img
}

// GenerateGhost builds the ghost sprite.
func GenerateGhost() *image.RGBA {
	img := newTransparent(GhostSize, GhostSize)
	fillRect(img, image.Rect(2, 0, 6, 1), Palette.Ghost)
	fillRect(img, image.Rect(1, 1, 7, 7), Palette.Ghost)
	for x := 1; x < 7; x += 2 {
		img.Set(x, 7, Palette.Ghost)
	}
	img.Set(2, 3, Palette.GhostEye)
	img.Set(5, 3, Palette.GhostEye)
	return img
}

// GenerateLight builds a white radial blob with a smooth falloff. Colour
// channels equal alpha so additive blending behaves.
func GenerateLight() *image.RGBA {
	img := newTransparent(LightSize, LightSize)
	c := float64(LightSize) / 2
	for y := 0; y < LightSize; y++ {
		for x := 0; x < LightSize; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d >= 1 {
				continue
			}
			v := uint8(255 * (1 - d*d))
			img.SetRGBA(x, y, color.RGBA{v, v, v, v})
		}
	}
	return img
}

// GeneratePixel builds the 1x1 white pixel that particles and bars are
// tinted from.
func GeneratePixel() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	return img
}

// GenerateJumpscare builds the jumpscare strip: a face that grows frame by
// frame until it fills the screen.
func GenerateJumpscare() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, JumpscareSize*JumpscareCount, JumpscareSize))
	fillRect(img, img.Bounds(), color.RGBA{0, 0, 0, 255})

	half := JumpscareSize / 2
	for f := 0; f < JumpscareCount; f++ {
		x0 := f * JumpscareSize
		r := 8 + f*6
		for y := 0; y < JumpscareSize; y++ {
			for x := 0; x < JumpscareSize; x++ {
				dx, dy := x-half, y-half
				if dx*dx+dy*dy <= r*r {
					img.SetRGBA(x0+x, y, Palette.Scream)
				}
			}
		}
		eye := r / 3
		fillRect(img, image.Rect(x0+half-eye-eye/2, half-eye, x0+half-eye/2, half), Palette.GhostEye)
		fillRect(img, image.Rect(x0+half+eye/2, half-eye, x0+half+eye+eye/2, half), Palette.GhostEye)
		fillRect(img, image.Rect(x0+half-eye/2, half+eye/2, x0+half+eye/2, half+r/2+1), Palette.GhostEye)
	}
	return img
}

// sheet names a sprite sheet file and the generator for its placeholder.
type sheet struct {
	file     string
	generate func() *image.RGBA
}

var sheets = []sheet{
	{FileObjects, GenerateObjects},
	{FilePlayer, GeneratePlayer},
	{FileGhost, GenerateGhost},
	{FileLight, GenerateLight},
	{FileJumpscare, GenerateJumpscare},
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SavePlaceholders writes every generated sheet into dir and returns the
// paths written.
func SavePlaceholders(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, s := range sheets {
		path := filepath.Join(dir, s.file)
		if err := SavePNG(s.generate(), path); err != nil {
			return written, fmt.Errorf("saving %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
