// Package simulation holds the fixed rules of the scene: world size,
// movement speeds, minigame timing, particle and light parameters.
// The values are constants of the game feel; there is no file loading.
package simulation

import "math"

// Config holds all simulation rules for a scene
type Config struct {
	World     WorldConfig
	Player    PlayerConfig
	Ghost     GhostConfig
	Candles   CandleConfig
	Particles ParticleConfig
	Lighting  LightingConfig
	Jumpscare JumpscareConfig
}

// WorldConfig defines the grid and viewport dimensions
type WorldConfig struct {
	GridSize     int // Tiles per side
	TileSize     int // Pixels per tile side
	ViewSize     int // Viewport side in pixels
	CameraMax    int // Largest camera offset per axis
	MinCandles   int // Inclusive
	MaxCandles   int // Exclusive
	MaxPlacement int // Rejection-sampling attempts per candle before falling back
	GhostMinDist int // Spawn distance in tiles, inclusive
	GhostMaxDist int // Spawn distance in tiles, exclusive
	GhostAngles  int // Spawn angle is drawn from [0, GhostAngles)
}

// PlayerConfig defines player movement and its camera lead
type PlayerConfig struct {
	Step         float64 // World units per frame per axis
	MinPos       float64
	MaxPos       float64
	AnimStep     float64 // Phase advance per frame
	IdleWrap     float64 // Idle phase wraps to 0 above this
	WalkStart    float64 // Walking phase range start
	WalkWrap     float64 // Walking phase wraps to WalkStart above this
	CameraBiasX  float64
	CameraBiasY  float64
	HitboxOffset int
	HitboxW      int
	HitboxH      int
}

// GhostConfig defines the pursuer
type GhostConfig struct {
	BaseSpeed     float64
	SpeedStep     float64 // Added per lit candle
	MaxSpeed      float64
	StepScale     float64 // Distance per frame = sign * StepScale * speed
	TargetOffsetX float64
	TargetOffsetY float64
	Size          int
	CueGrid       int // Cue and flicker grid, in pixels
	CueCooldown   int // Alpha set when the cue fires
	PanRange      float64
	Hearing       float64 // Distance at which the cue goes silent
}

// CandleConfig defines the lighting minigame
type CandleConfig struct {
	Size         int
	ProgressStep float64 // Progress per held frame
	BarWidth     int
	BarOffsetY   int
}

// ParticleConfig defines embers
type ParticleConfig struct {
	TimerStep     float64
	SpawnLifetime int
	DeadLifetime  int
	Rise          float64 // Upward drift per frame
	BrightMinRoll int     // Inclusive
	BrightMaxRoll int     // Exclusive
}

// LightingConfig defines the light mask
type LightingConfig struct {
	PlayerRadius   float64
	CandleRadius   float64
	Flicker        float64
	ParticleRadius int
}

// JumpscareConfig defines the terminal scene
type JumpscareConfig struct {
	Step      float64 // Counter advance per frame
	Duration  float64 // Scene ends once the counter exceeds this
	Frames    int
	FrameSize int
}

// TargetTPS is the simulation rate the per-frame constants are tuned for.
const TargetTPS = 60

// DefaultConfig returns the rules the scene is tuned for
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			GridSize:     64,
			TileSize:     16,
			ViewSize:     64,
			CameraMax:    944,
			MinCandles:   8,
			MaxCandles:   12,
			MaxPlacement: 64 * 64,
			GhostMinDist: 4,
			GhostMaxDist: 8,
			GhostAngles:  360,
		},
		Player: PlayerConfig{
			Step:         0.5,
			MinPos:       -5,
			MaxPos:       64*16 - 5,
			AnimStep:     0.2,
			IdleWrap:     3,
			WalkStart:    4,
			WalkWrap:     7,
			CameraBiasX:  8,
			CameraBiasY:  5,
			HitboxOffset: 5,
			HitboxW:      6,
			HitboxH:      5,
		},
		Ghost: GhostConfig{
			BaseSpeed:     1.0,
			SpeedStep:     0.5,
			MaxSpeed:      4.0,
			StepScale:     0.1,
			TargetOffsetX: 8,
			TargetOffsetY: 5,
			Size:          8,
			CueGrid:       8,
			CueCooldown:   255,
			PanRange:      32,
			Hearing:       128,
		},
		Candles: CandleConfig{
			Size:         8,
			ProgressStep: 0.01,
			BarWidth:     6,
			BarOffsetY:   8,
		},
		Particles: ParticleConfig{
			TimerStep:     0.5,
			SpawnLifetime: 200,
			DeadLifetime:  255,
			Rise:          0.7,
			BrightMinRoll: 20,
			BrightMaxRoll: 30,
		},
		Lighting: LightingConfig{
			PlayerRadius:   45,
			CandleRadius:   16,
			Flicker:        3,
			ParticleRadius: 6,
		},
		Jumpscare: JumpscareConfig{
			Step:      0.2,
			Duration:  30,
			Frames:    5,
			FrameSize: 64,
		},
	}
}

// WorldPixels returns the world side length in pixels.
func (c *Config) WorldPixels() int {
	return c.World.GridSize * c.World.TileSize
}

// FramesToLight returns how many consecutive held frames complete a candle.
func (c *Config) FramesToLight() int {
	return int(math.Round(1 / c.Candles.ProgressStep))
}

// JumpscareTicks returns how many frames the jumpscare counter takes to
// reach its duration.
func (c *Config) JumpscareTicks() int {
	return int(math.Round(c.Jumpscare.Duration / c.Jumpscare.Step))
}

// LifetimeSpan returns how many frames a particle stays alive.
func (c *Config) LifetimeSpan() int {
	return c.Particles.DeadLifetime - c.Particles.SpawnLifetime
}
