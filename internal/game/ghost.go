package game

import (
	"math"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
)

// Ghost pursues the player one small step per axis each frame. Alpha is
// both its visibility and the cooldown of its audio cue.
type Ghost struct {
	Pos   geom.PointF
	Speed float64
	Alpha int

	config simulation.GhostConfig
}

// NewGhost creates a ghost at pos moving at base speed.
func NewGhost(cfg *simulation.Config, pos geom.PointF) *Ghost {
	return &Ghost{
		Pos:    pos,
		Speed:  cfg.Ghost.BaseSpeed,
		config: cfg.Ghost,
	}
}

// Pursue steps towards the player's target point and ages the cue
// cooldown.
func (g *Ghost) Pursue(player geom.PointF) {
	step := g.config.StepScale * g.Speed
	g.Pos.X += geom.Sign(player.X+g.config.TargetOffsetX-g.Pos.X) * step
	g.Pos.Y += geom.Sign(player.Y+g.config.TargetOffsetY-g.Pos.Y) * step

	if g.Alpha > 0 {
		g.Alpha--
	}
}

// Accelerate raises the speed by one step, up to the cap.
func (g *Ghost) Accelerate() {
	g.Speed = math.Min(g.Speed+g.config.SpeedStep, g.config.MaxSpeed)
}

// OnGridLine reports whether the truncated position lies on the cue grid
// on either axis.
func (g *Ghost) OnGridLine() bool {
	return int(g.Pos.X)%g.config.CueGrid == 0 || int(g.Pos.Y)%g.config.CueGrid == 0
}

// CueReady reports whether the audio cue should fire this frame.
func (g *Ghost) CueReady() bool {
	return g.Alpha == 0 && g.OnGridLine()
}

// TriggerCue makes the ghost fully visible and starts the cooldown.
func (g *Ghost) TriggerCue() {
	g.Alpha = g.config.CueCooldown
}

// Stereo returns the left and right gains and the volume of the ghost's
// sound as heard by the player, each in [0,1].
func (g *Ghost) Stereo(player geom.PointF) (left, right, volume float64) {
	c := g.config
	dx := g.Pos.X - player.X
	dy := g.Pos.Y - player.Y

	a := geom.Clamp(dx, -c.PanRange, c.PanRange) / c.PanRange
	left = geom.Clamp(math.Abs(a*255-255), 0, 255) / 255
	right = geom.Clamp(a*255, 0, 255) / 255
	volume = (c.Hearing - geom.Clamp(math.Abs(dx+dy), 0, c.Hearing)) / c.Hearing
	return left, right, volume
}

// Hitbox returns the ghost's collision rectangle.
func (g *Ghost) Hitbox() geom.Rect {
	return geom.NewRect(int(g.Pos.X), int(g.Pos.Y), g.config.Size, g.config.Size)
}

// EmitterPos returns where the ghost sheds its particles.
func (g *Ghost) EmitterPos() (float64, float64) {
	return g.Pos.X + 2, g.Pos.Y + 1
}

// Draw draws the ghost snapped to its grid, faded by Alpha.
func (g *Ghost) Draw(dst, sprite render.Image, cam Camera) {
	if g.Alpha == 0 {
		return
	}
	grid := g.config.CueGrid
	opts := &render.DrawImageOptions{}
	opts.GeoM.Translate(float64(int(g.Pos.X)/grid*grid-cam.X), float64(int(g.Pos.Y)/grid*grid-cam.Y))
	opts.ColorScale.ScaleAlpha(float32(g.Alpha) / 255)
	dst.DrawImage(sprite, opts)
}
