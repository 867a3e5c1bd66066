package game

import (
	"image/color"
	"math"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/candlewake/internal/assets"
	"chosenoffset.com/candlewake/internal/audio"
	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/logger"
	"chosenoffset.com/candlewake/internal/particles"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/render/lighting"
	"chosenoffset.com/candlewake/internal/simulation"
	"chosenoffset.com/candlewake/internal/world"
)

// ambientVolume is the ambient loop's level on entry.
const ambientVolume = 32.0 / 128.0

var clearColor = color.RGBA{0, 0, 0, 255}

// Exploration is the main scene: walk the map, light the candles and
// avoid the ghost.
type Exploration struct {
	config   *simulation.Config
	renderer render.Renderer
	assets   *assets.Library
	audio    audio.Service
	seed     int64

	canvas       render.Image
	lights       *lighting.Compositor
	minimapTiles render.Image

	grid      *world.Grid
	player    *Player
	ghost     *Ghost
	candles   *CandleMinigame
	particles *particles.Field
	camera    Camera
	timer     float64
	minimap   bool
}

// NewExploration creates the scene. Nothing is generated until Enter.
func NewExploration(env *Env, seed int64) *Exploration {
	view := env.Config.World.ViewSize
	return &Exploration{
		config:   env.Config,
		renderer: env.Renderer,
		assets:   env.Assets,
		audio:    env.Audio,
		seed:     seed,
		canvas:   env.Renderer.NewImage(view, view),
		lights:   lighting.NewCompositor(env.Renderer, env.Assets.Light, view),
	}
}

// Enter generates a fresh map and starts the ambient sound.
func (e *Exploration) Enter() {
	gen := world.NewGenerator(e.config, e.seed)
	layout := e.generate(gen)
	e.load(layout, gen)

	e.audio.SetVolume(audio.ChannelAmbient, ambientVolume)
	e.audio.Play(audio.ChannelAmbient, audio.SoundAmbient, true)
	e.audio.Play(audio.ChannelMusic, audio.SoundFire, true)

	logger.Log.WithFields(logrus.Fields{
		"candles":   len(layout.Candles),
		"walls":     layout.Grid.Count(world.TileWall),
		"fallbacks": gen.Fallbacks,
		"player":    layout.PlayerSpawn,
		"ghost":     layout.GhostSpawn,
	}).Info("Exploration generated")
}

// generate retries until the grid has floor for the candles.
func (e *Exploration) generate(gen *world.Generator) *world.Layout {
	for attempt := 1; ; attempt++ {
		layout, err := gen.Generate()
		if err == nil {
			return layout
		}
		logger.Log.WithError(err).WithField("attempt", attempt).Warn("Regenerating map")
	}
}

// load resets the scene to layout. Randomness after generation keeps
// drawing from gen's stream.
func (e *Exploration) load(layout *world.Layout, gen *world.Generator) {
	e.grid = layout.Grid
	e.player = NewPlayer(e.config, layout.PlayerSpawn)
	e.ghost = NewGhost(e.config, layout.GhostSpawn)
	e.candles = NewCandleMinigame(e.config, layout.Candles, e.assets.Candle(), e.assets.Pixel)
	e.particles = particles.NewField(e.config, gen.Rand())
	e.camera = e.player.Camera()
	e.timer = 0
	e.minimap = false
	e.buildMinimap()
}

// Step runs one frame of the scene and draws it to the canvas.
func (e *Exploration) Step(f Frame) State {
	in := f.Input
	e.canvas.Fill(clearColor)

	e.camera = e.player.Update(in)
	emitting := int(e.timer)%2 == 0
	if emitting && e.player.Walking {
		e.particles.EmitEmber(e.player.EmitterPos())
	}

	e.drawMap(e.canvas)

	e.candles.Step(e.canvas, e.camera, e.player.Hitbox(), in.IsKeyPressed(render.KeyZ), e.candleLit)
	if emitting {
		for i := range e.candles.Candles {
			c := &e.candles.Candles[i]
			if c.Lit {
				e.particles.EmitEmber(float64(c.Rect.X)+2, float64(c.Rect.Y))
			}
		}
	}

	if e.player.Hitbox().Intersects(e.ghost.Hitbox()) {
		e.audio.Stop(audio.ChannelAmbient)
		e.audio.Stop(audio.ChannelMusic)
		logger.Log.WithFields(logrus.Fields{
			"lit":   e.candles.LitCount(),
			"speed": e.ghost.Speed,
		}).Info("Caught by the ghost")
		return StateJumpscare
	}

	e.particles.Advance()
	e.particles.Draw(e.canvas, e.assets.Pixel, e.camera.Point())
	e.particles.Compact()

	e.buildLights()

	e.stepGhost()
	e.ghost.Draw(e.canvas, e.assets.Ghost, e.camera)

	e.player.Draw(e.canvas, e.assets.PlayerFrame(e.player.Frame()), e.camera)

	e.timer += e.config.Particles.TimerStep

	if in.IsKeyJustPressed(render.KeyA) {
		e.minimap = !e.minimap
	}
	if e.minimap {
		e.drawMinimap(e.canvas)
	} else {
		e.lights.Apply(e.canvas)
	}
	return StateExploration
}

func (e *Exploration) candleLit(c *world.Candle) {
	e.ghost.Accelerate()
	e.audio.Play(audio.ChannelEffect, audio.SoundMatch, false)

	tx, ty := c.Tile(e.config.World.TileSize)
	logger.Log.WithFields(logrus.Fields{
		"tile":  [2]int{tx, ty},
		"lit":   e.candles.LitCount(),
		"speed": e.ghost.Speed,
	}).Debug("Candle lit")
}

func (e *Exploration) buildLights() {
	lc := e.config.Lighting
	cam := e.camera
	e.lights.Reset()

	px, py := e.player.LightCentre(cam)
	e.lights.Add(px, py, math.Trunc(lighting.Flicker(lc.PlayerRadius, lc.Flicker, e.timer)))

	size := float64(lc.ParticleRadius)
	e.particles.Lights(cam.Point(), func(pos geom.PointF) {
		e.lights.Add(float64(int(pos.X)-cam.X), float64(int(pos.Y)-cam.Y), size)
	})

	view := geom.NewRect(cam.X, cam.Y, e.config.World.ViewSize, e.config.World.ViewSize)
	candleSize := math.Trunc(lighting.Flicker(lc.CandleRadius, lc.Flicker, e.timer))
	for i := range e.candles.Candles {
		c := &e.candles.Candles[i]
		if !c.Lit || !c.Rect.Intersects(view) {
			continue
		}
		e.lights.Add(float64(c.Rect.X+3-cam.X), float64(c.Rect.Y+2-cam.Y), candleSize)
	}

	e.lights.Build()
}

func (e *Exploration) stepGhost() {
	g := e.ghost
	g.Pursue(e.player.Pos)

	if g.OnGridLine() {
		x, y := g.EmitterPos()
		e.particles.Emit(x, y, particles.ColorGhost, true)
	}
	if g.CueReady() {
		e.audio.Play(audio.ChannelPursuit, audio.SoundGhost, false)
		g.TriggerCue()
	}

	left, right, volume := g.Stereo(e.player.Pos)
	e.audio.SetPan(audio.ChannelPursuit, left, right)
	e.audio.SetVolume(audio.ChannelPursuit, volume)
}

// Draw presents the last rendered frame.
func (e *Exploration) Draw(screen render.Image) {
	screen.DrawImage(e.canvas, nil)
}

// Dispose releases the scene's images.
func (e *Exploration) Dispose() {
	e.canvas.Dispose()
	e.lights.Dispose()
	if e.minimapTiles != nil {
		e.minimapTiles.Dispose()
	}
}
