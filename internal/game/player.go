package game

import (
	"chosenoffset.com/candlewake/internal/core/geom"
	"chosenoffset.com/candlewake/internal/render"
	"chosenoffset.com/candlewake/internal/simulation"
)

// Player is the avatar the camera follows.
type Player struct {
	Pos     geom.PointF
	Facing  bool    // true when facing right; the sprite is mirrored
	Phase   float64 // Animation phase, idle in [0,4), walking in [4,8)
	Walking bool    // Whether a direction key moved the player this frame

	config    simulation.PlayerConfig
	viewSize  int
	cameraMax int
}

// NewPlayer creates a player standing at pos.
func NewPlayer(cfg *simulation.Config, pos geom.PointF) *Player {
	return &Player{
		Pos:       pos,
		config:    cfg.Player,
		viewSize:  cfg.World.ViewSize,
		cameraMax: cfg.World.CameraMax,
	}
}

// Update moves the player from the held keys, animates it and returns the
// camera that follows it. Left beats Right and Up beats Down when both
// are held; the axes are independent.
func (p *Player) Update(in render.InputManager) Camera {
	p.Walking = false

	if in.IsKeyPressed(render.KeyLeft) {
		p.Pos.X -= p.config.Step
		p.Facing = false
		p.Walking = true
	} else if in.IsKeyPressed(render.KeyRight) {
		p.Pos.X += p.config.Step
		p.Facing = true
		p.Walking = true
	}

	if in.IsKeyPressed(render.KeyUp) {
		p.Pos.Y -= p.config.Step
		p.Walking = true
	} else if in.IsKeyPressed(render.KeyDown) {
		p.Pos.Y += p.config.Step
		p.Walking = true
	}

	p.animate()

	p.Pos.X = geom.Clamp(p.Pos.X, p.config.MinPos, p.config.MaxPos)
	p.Pos.Y = geom.Clamp(p.Pos.Y, p.config.MinPos, p.config.MaxPos)

	return p.Camera()
}

func (p *Player) animate() {
	c := p.config
	if p.Walking {
		if p.Phase < c.WalkStart {
			p.Phase = c.WalkStart
		}
		p.Phase += c.AnimStep
		if p.Phase > c.WalkWrap {
			p.Phase = c.WalkStart
		}
		return
	}

	if p.Phase >= c.WalkStart {
		p.Phase = 0
	}
	p.Phase += c.AnimStep
	if p.Phase > c.IdleWrap {
		p.Phase = 0
	}
}

// Camera centres the viewport on the player, kept inside the world.
func (p *Player) Camera() Camera {
	half := float64(p.viewSize / 2)
	limit := float64(p.cameraMax)
	return Camera{
		X: int(geom.Clamp(p.Pos.X-half+p.config.CameraBiasX, 0, limit)),
		Y: int(geom.Clamp(p.Pos.Y-half+p.config.CameraBiasY, 0, limit)),
	}
}

// Hitbox returns the player's collision rectangle.
func (p *Player) Hitbox() geom.Rect {
	c := p.config
	return geom.NewRect(int(p.Pos.X)+c.HitboxOffset, int(p.Pos.Y)+c.HitboxOffset, c.HitboxW, c.HitboxH)
}

// EmitterPos returns where the player's embers spawn.
func (p *Player) EmitterPos() (float64, float64) {
	offset := 4.0
	if p.Facing {
		offset = 11.0
	}
	return p.Pos.X + offset, p.Pos.Y + 2
}

// LightCentre returns the screen position the player's light is centred on.
func (p *Player) LightCentre(cam Camera) (float64, float64) {
	return float64(int(p.Pos.X) + 8 - cam.X), float64(int(p.Pos.Y) + 5 - cam.Y)
}

// Frame returns the animation frame index.
func (p *Player) Frame() int {
	return int(p.Phase)
}

// Draw draws the current animation frame, mirrored when facing right.
func (p *Player) Draw(dst, frame render.Image, cam Camera) {
	w, _ := frame.Size()
	opts := &render.DrawImageOptions{}
	if p.Facing {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(float64(w), 0)
		opts.GeoM.Translate(float64(int(p.Pos.X)-4-cam.X), float64(int(p.Pos.Y)-cam.Y))
	} else {
		opts.GeoM.Translate(float64(int(p.Pos.X)+4-cam.X), float64(int(p.Pos.Y)-cam.Y))
	}
	dst.DrawImage(frame, opts)
}
