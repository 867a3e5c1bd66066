package game

import (
	"math"
	"testing"

	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/render/rendertest"
	"chosenoffset.com/candlewake/internal/simulation"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name       string
		keys       []render.Key
		wantX      float64
		wantY      float64
		wantFacing bool
		wantWalk   bool
	}{
		{"Idle", nil, 100, 100, false, false},
		{"Left", []render.Key{render.KeyLeft}, 99.5, 100, false, true},
		{"Right", []render.Key{render.KeyRight}, 100.5, 100, true, true},
		{"Left wins over Right", []render.Key{render.KeyLeft, render.KeyRight}, 99.5, 100, false, true},
		{"Up wins over Down", []render.Key{render.KeyUp, render.KeyDown}, 100, 99.5, false, true},
		{"Diagonal", []render.Key{render.KeyRight, render.KeyDown}, 100.5, 100.5, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(simulation.DefaultConfig(), geom.PointF{X: 100, Y: 100})
			in := rendertest.NewInput()
			in.Press(tt.keys...)

			p.Update(in)

			if p.Pos.X != tt.wantX || p.Pos.Y != tt.wantY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, p.Pos.X, p.Pos.Y)
			}
			if p.Facing != tt.wantFacing {
				t.Errorf("Expected facing %v, got %v", tt.wantFacing, p.Facing)
			}
			if p.Walking != tt.wantWalk {
				t.Errorf("Expected walking %v, got %v", tt.wantWalk, p.Walking)
			}
		})
	}
}

func TestPlayerPositionClamped(t *testing.T) {
	cfg := simulation.DefaultConfig()

	tests := []struct {
		name  string
		start geom.PointF
		keys  []render.Key
		want  geom.PointF
	}{
		{"Top-left corner", geom.PointF{X: -4, Y: -4}, []render.Key{render.KeyLeft, render.KeyUp}, geom.PointF{X: -5, Y: -5}},
		{"Bottom-right corner", geom.PointF{X: 1018, Y: 1018}, []render.Key{render.KeyRight, render.KeyDown}, geom.PointF{X: 1019, Y: 1019}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg, tt.start)
			in := rendertest.NewInput()
			in.Press(tt.keys...)

			for i := 0; i < 20; i++ {
				p.Update(in)
			}

			if p.Pos != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, p.Pos)
			}
		})
	}
}

func TestCameraFollowsAndClamps(t *testing.T) {
	cfg := simulation.DefaultConfig()

	tests := []struct {
		name string
		pos  geom.PointF
		want Camera
	}{
		{"Origin", geom.PointF{X: 0, Y: 0}, Camera{0, 0}},
		{"Middle", geom.PointF{X: 500, Y: 500}, Camera{476, 473}},
		{"Fraction truncated", geom.PointF{X: 500.5, Y: 500.5}, Camera{476, 473}},
		{"Far edge", geom.PointF{X: 1019, Y: 1019}, Camera{944, 944}},
		{"Below zero", geom.PointF{X: -5, Y: -5}, Camera{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg, tt.pos)
			if got := p.Camera(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlayerAnimation(t *testing.T) {
	cfg := simulation.DefaultConfig()
	p := NewPlayer(cfg, geom.PointF{X: 100, Y: 100})
	in := rendertest.NewInput()

	in.Press(render.KeyRight)
	p.Update(in)
	if math.Abs(p.Phase-4.2) > 1e-9 {
		t.Fatalf("Expected walking to jump to phase 4.2, got %v", p.Phase)
	}

	for i := 0; i < 200; i++ {
		p.Update(in)
		if p.Phase < 4 || p.Phase > 7 {
			t.Fatalf("Walking phase %v left [4, 7]", p.Phase)
		}
	}

	in.Release(render.KeyRight)
	p.Update(in)
	if math.Abs(p.Phase-0.2) > 1e-9 {
		t.Fatalf("Expected idle to restart at 0.2, got %v", p.Phase)
	}

	for i := 0; i < 200; i++ {
		p.Update(in)
		if p.Phase < 0 || p.Phase > 3 {
			t.Fatalf("Idle phase %v left [0, 3]", p.Phase)
		}
	}
}

func TestPlayerHitboxAndEmitter(t *testing.T) {
	p := NewPlayer(simulation.DefaultConfig(), geom.PointF{X: 10.5, Y: 20.25})

	if got, want := p.Hitbox(), geom.NewRect(15, 25, 6, 5); got != want {
		t.Errorf("Expected hitbox %v, got %v", want, got)
	}

	if x, y := p.EmitterPos(); x != 14.5 || y != 22.25 {
		t.Errorf("Expected left-facing emitter (14.5, 22.25), got (%v, %v)", x, y)
	}
	p.Facing = true
	if x, _ := p.EmitterPos(); x != 21.5 {
		t.Errorf("Expected right-facing emitter x 21.5, got %v", x)
	}
}

func TestPlayerDrawMirrorsWhenFacingRight(t *testing.T) {
	p := NewPlayer(simulation.DefaultConfig(), geom.PointF{X: 100, Y: 50})
	frame := rendertest.NewImage("player", 16, 10)
	cam := Camera{X: 80, Y: 30}

	tests := []struct {
		name   string
		facing bool
		left   float64
	}{
		{"Facing left", false, 24},
		{"Facing right", true, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := rendertest.NewImage("screen", 64, 64)
			p.Facing = tt.facing

			p.Draw(dst, frame, cam)

			if len(dst.Draws) != 1 {
				t.Fatalf("Expected one draw, got %d", len(dst.Draws))
			}
			g := dst.Draws[0].Opts.GeoM
			x0, y0 := g.Apply(0, 0)
			x1, _ := g.Apply(16, 0)
			if math.Min(x0, x1) != tt.left || y0 != 20 {
				t.Errorf("Expected sprite at (%v, 20), got x in [%v, %v], y %v", tt.left, x0, x1, y0)
			}
			if mirrored := x1 < x0; mirrored != tt.facing {
				t.Errorf("Expected mirrored %v", tt.facing)
			}
		})
	}
}
