package game

import (
	"math"
	"testing"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render/rendertest"
	"chosenoffset.com/candlewake/internal/simulation"
)

func TestGhostPursuit(t *testing.T) {
	cfg := simulation.DefaultConfig()

	tests := []struct {
		name   string
		ghost  geom.PointF
		player geom.PointF
		speed  float64
		want   geom.PointF
	}{
		{"Towards down-right", geom.PointF{X: 0, Y: 0}, geom.PointF{X: 100, Y: 100}, 1, geom.PointF{X: 0.1, Y: 0.1}},
		{"Towards up-left", geom.PointF{X: 200, Y: 200}, geom.PointF{X: 0, Y: 0}, 2, geom.PointF{X: 199.8, Y: 199.8}},
		{"Aligned on target", geom.PointF{X: 108, Y: 50}, geom.PointF{X: 100, Y: 100}, 1, geom.PointF{X: 108, Y: 50.1}},
		{"Capped speed", geom.PointF{X: 0, Y: 0}, geom.PointF{X: 100, Y: 100}, 4, geom.PointF{X: 0.4, Y: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGhost(cfg, tt.ghost)
			g.Speed = tt.speed

			g.Pursue(tt.player)

			if math.Abs(g.Pos.X-tt.want.X) > 1e-9 || math.Abs(g.Pos.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, g.Pos)
			}
		})
	}
}

func TestGhostSpeedCap(t *testing.T) {
	g := NewGhost(simulation.DefaultConfig(), geom.PointF{})

	if g.Speed != 1.0 {
		t.Fatalf("Expected base speed 1.0, got %v", g.Speed)
	}
	for i := 0; i < 6; i++ {
		g.Accelerate()
	}
	if g.Speed != 4.0 {
		t.Errorf("Expected speed 4.0 after six candles, got %v", g.Speed)
	}
	g.Accelerate()
	if g.Speed != 4.0 {
		t.Errorf("Expected speed to stay at 4.0, got %v", g.Speed)
	}
}

func TestGhostCueCooldown(t *testing.T) {
	g := NewGhost(simulation.DefaultConfig(), geom.PointF{X: 16.5, Y: 3})

	if !g.CueReady() {
		t.Fatal("Expected the cue to be ready on a grid line with zero alpha")
	}
	g.TriggerCue()
	if g.Alpha != 255 {
		t.Fatalf("Expected alpha 255 after the cue, got %d", g.Alpha)
	}
	if g.CueReady() {
		t.Error("Expected the cue to cool down")
	}

	// Chase a target directly below so x stays on the grid line.
	target := geom.PointF{X: 16.5 - 8, Y: 500}
	for i := 0; i < 255; i++ {
		g.Pursue(target)
	}
	if g.Alpha != 0 {
		t.Errorf("Expected alpha to decay to 0 after 255 frames, got %d", g.Alpha)
	}
	g.Pursue(target)
	if g.Alpha != 0 {
		t.Errorf("Alpha went below zero: %d", g.Alpha)
	}
	if !g.CueReady() {
		t.Error("Expected the cue to be ready again")
	}
}

func TestGhostOffGridLine(t *testing.T) {
	g := NewGhost(simulation.DefaultConfig(), geom.PointF{X: 13, Y: 21})
	if g.OnGridLine() || g.CueReady() {
		t.Error("Expected no cue off the grid lines")
	}
}

func TestGhostStereo(t *testing.T) {
	cfg := simulation.DefaultConfig()
	player := geom.PointF{X: 500, Y: 500}

	tests := []struct {
		name                string
		ghost               geom.PointF
		left, right, volume float64
	}{
		{"Far left", geom.PointF{X: 460, Y: 500}, 1, 0, 88.0 / 128},
		{"Far right", geom.PointF{X: 540, Y: 500}, 0, 1, 88.0 / 128},
		{"Half right", geom.PointF{X: 516, Y: 500}, 0.5, 0.5, 112.0 / 128},
		{"Same spot", player, 1, 0, 1},
		{"Out of hearing", geom.PointF{X: 600, Y: 600}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGhost(cfg, tt.ghost)
			left, right, volume := g.Stereo(player)
			if math.Abs(left-tt.left) > 1e-9 || math.Abs(right-tt.right) > 1e-9 || math.Abs(volume-tt.volume) > 1e-9 {
				t.Errorf("Expected (%v, %v, %v), got (%v, %v, %v)", tt.left, tt.right, tt.volume, left, right, volume)
			}
		})
	}
}

func TestGhostDrawSnapsToGrid(t *testing.T) {
	g := NewGhost(simulation.DefaultConfig(), geom.PointF{X: 21.7, Y: 13.2})
	sprite := rendertest.NewImage("ghost", 8, 8)
	dst := rendertest.NewImage("screen", 64, 64)

	g.Draw(dst, sprite, Camera{})
	if len(dst.Draws) != 0 {
		t.Fatal("Expected an invisible ghost not to be drawn")
	}

	g.Alpha = 51
	g.Draw(dst, sprite, Camera{X: 4, Y: 2})
	if len(dst.Draws) != 1 {
		t.Fatalf("Expected one draw, got %d", len(dst.Draws))
	}
	x, y := dst.Draws[0].Position()
	if x != 12 || y != 6 {
		t.Errorf("Expected snapped position (12, 6), got (%v, %v)", x, y)
	}
	if _, _, _, a := dst.Draws[0].Opts.ColorScale.Values(); math.Abs(float64(a)-0.2) > 1e-6 {
		t.Errorf("Expected alpha scale 0.2, got %v", a)
	}
}
