// Package game runs the scenes: exploration with the player, the ghost and
// the candles, and the jumpscare when the ghost catches the player.
package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/candlewake/internal/assets"
	"chosenoffset.com/candlewake/internal/audio"
	"chosenoffset.com/candlewake/internal/logger"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
)

// Env holds what every scene is built from.
type Env struct {
	Config   *simulation.Config
	Renderer render.Renderer
	Assets   *assets.Library
	Audio    audio.Service
	Seed     int64 // Zero seeds from the clock
}

// Manager owns the active scene and switches scenes on the state each
// step returns.
type Manager struct {
	env   *Env
	input render.InputManager
	seeds *rand.Rand

	state State
	scene Scene
	ticks int
}

// NewManager creates a manager and enters the first exploration.
func NewManager(env *Env, input render.InputManager) *Manager {
	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := &Manager{
		env:   env,
		input: input,
		seeds: rand.New(rand.NewSource(seed)),
		state: StateIdle,
	}
	m.transition(StateExploration)
	return m
}

// State returns the active state.
func (m *Manager) State() State {
	return m.state
}

// Scene returns the active scene, nil when idle or exiting.
func (m *Manager) Scene() Scene {
	return m.scene
}

// Update runs one tick. A quit request wins over anything the scene would
// do this tick.
func (m *Manager) Update() error {
	m.ticks++

	if m.input.IsQuitRequested() {
		m.transition(StateExit)
		return render.ErrTerminated
	}

	if m.scene != nil {
		if next := m.scene.Step(Frame{Input: m.input}); next != m.state {
			m.transition(next)
		}
	}

	if m.state == StateExit {
		return render.ErrTerminated
	}
	return nil
}

func (m *Manager) transition(next State) {
	if next == m.state && m.scene != nil {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"from": m.state,
		"to":   next,
		"tick": m.ticks,
	}).Info("Scene transition")

	if d, ok := m.scene.(interface{ Dispose() }); ok {
		d.Dispose()
	}
	m.state = next
	m.scene = m.newScene(next)
	if m.scene != nil {
		m.scene.Enter()
	}
}

func (m *Manager) newScene(s State) Scene {
	switch s {
	case StateExploration:
		// Never zero, which would mean a clock seed.
		return NewExploration(m.env, m.seeds.Int63()|1)
	case StateJumpscare:
		return NewJumpscare(m.env)
	default:
		return nil
	}
}

// Draw presents the active scene.
func (m *Manager) Draw(screen render.Image) {
	if m.scene != nil {
		m.scene.Draw(screen)
	}
}

// Layout keeps the logical screen at the viewport size; the window scales it.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	view := m.env.Config.World.ViewSize
	return view, view
}
