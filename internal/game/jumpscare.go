package game

import (
	"chosenoffset.com/candlewake/internal/assets"
	"chosenoffset.com/candlewake/internal/audio"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
)

// Jumpscare plays the capture animation and then starts a new
// exploration.
type Jumpscare struct {
	config simulation.JumpscareConfig
	ticks  int
	limit  int

	assets *assets.Library
	audio  audio.Service
	canvas render.Image
}

// NewJumpscare creates the scene.
func NewJumpscare(env *Env) *Jumpscare {
	view := env.Config.World.ViewSize
	return &Jumpscare{
		config: env.Config.Jumpscare,
		limit:  env.Config.JumpscareTicks(),
		assets: env.Assets,
		audio:  env.Audio,
		canvas: env.Renderer.NewImage(view, view),
	}
}

// Enter restarts the animation and plays the scream.
func (j *Jumpscare) Enter() {
	j.ticks = 0
	j.audio.Play(audio.ChannelEffect, audio.SoundJumpscare, false)
	j.render()
}

// Counter returns the animation counter.
func (j *Jumpscare) Counter() float64 {
	return float64(j.ticks) * j.config.Step
}

// FrameIndex returns the strip frame shown for the current counter.
func (j *Jumpscare) FrameIndex() int {
	idx := int(j.Counter())
	if idx < 0 {
		return 0
	}
	if idx > j.config.Frames-1 {
		return j.config.Frames - 1
	}
	return idx
}

// Step shows the current frame and advances the counter.
func (j *Jumpscare) Step(Frame) State {
	j.render()
	j.ticks++
	if j.ticks > j.limit {
		return StateExploration
	}
	return StateJumpscare
}

func (j *Jumpscare) render() {
	j.canvas.Fill(clearColor)
	j.canvas.DrawImage(j.assets.JumpscareFrame(j.FrameIndex()), nil)
}

// Draw presents the last rendered frame.
func (j *Jumpscare) Draw(screen render.Image) {
	screen.DrawImage(j.canvas, nil)
}

// Dispose releases the canvas.
func (j *Jumpscare) Dispose() {
	j.canvas.Dispose()
}
