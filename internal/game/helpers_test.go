package game

import (
	"chosenoffset.com/candlewake/internal/assets"
	"chosenoffset.com/candlewake/internal/audio/audiotest"
	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render/rendertest"
	"chosenoffset.com/candlewake/internal/simulation"
	"chosenoffset.com/candlewake/internal/world"
)

func newTestEnv() (*Env, *audiotest.Recorder) {
	r := rendertest.NewRenderer()
	rec := &audiotest.Recorder{}
	return &Env{
		Config:   simulation.DefaultConfig(),
		Renderer: r,
		Assets:   assets.Load(r, nil, ""),
		Audio:    rec,
		Seed:     42,
	}, rec
}

// newTestExploration returns an entered scene reset to an open floor with
// the player at player, the ghost at ghost and the given candles.
func newTestExploration(env *Env, player, ghost geom.PointF, candles ...world.Candle) *Exploration {
	e := NewExploration(env, 7)
	e.Enter()

	layout := &world.Layout{
		Grid:        world.NewGrid(env.Config.World.GridSize),
		PlayerSpawn: player,
		GhostSpawn:  ghost,
		Candles:     candles,
	}
	e.load(layout, world.NewGenerator(env.Config, 7))
	return e
}

// step runs frames ticks and returns the last state.
func step(e *Exploration, in *rendertest.Input, frames int) State {
	state := StateExploration
	for i := 0; i < frames; i++ {
		state = e.Step(Frame{Input: in})
		in.Advance()
		if state != StateExploration {
			return state
		}
	}
	return state
}
