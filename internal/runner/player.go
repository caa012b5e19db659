package runner

import (
	"github.com/vovakirdan/shadow-runner/internal/config"
	"github.com/vovakirdan/shadow-runner/internal/core"
)

// Sprite rows in the player sheet.
const (
	rowRunning = 0
	rowJumping = 1
)

// Player is the runner controlled by input.
type Player struct {
	Actor
	Speed   float64 // Horizontal px this tick, derived from input
	VY      float64 // Vertical velocity, negative is up
	Gravity float64

	cfg    config.PlayerConfig
	hitbox config.HitboxConfig
	gameW  float64
	gameH  float64
}

// NewPlayer creates a player standing on the floor at the left edge.
func NewPlayer(cfg config.RunnerConfig) *Player {
	p := &Player{
		Actor: Actor{
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
			Sheet:  SheetPlayer,
			Anim:   NewAnimation(cfg.Player.FPS, cfg.Player.GroundFrames, rowRunning),
		},
		Gravity: cfg.Player.Gravity,
		cfg:     cfg.Player,
		hitbox:  cfg.Hitbox,
		gameW:   cfg.World.Width,
		gameH:   cfg.World.Height,
	}
	p.Y = p.floor()
	return p
}

// floor is the y at which the player stands on the ground.
func (p *Player) floor() float64 {
	return p.gameH - p.Height
}

// OnGround reports exact floor contact.
func (p *Player) OnGround() bool {
	return p.Y >= p.floor()
}

// Restart puts the player back at the start position.
func (p *Player) Restart() {
	p.X = p.cfg.StartX
	p.Y = p.floor()
	p.Speed = 0
	p.VY = 0
	p.Anim.Use(p.cfg.GroundFrames, rowRunning)
	p.Anim.Reset()
}

// Collides runs the circle hitbox test against one obstacle.
// Both centres use the actor width on the vertical axis, and the offsets
// come from the hitbox tuning config.
func (p *Player) Collides(o *Obstacle) bool {
	ox := o.X + o.Width/2 + p.hitbox.ObstacleOffsetX
	oy := o.Y + o.Width/2
	px := p.X + p.Width/2
	py := p.Y + p.Width/2 + p.hitbox.PlayerOffsetY

	d := core.Distance(ox, oy, px, py)
	return d <= o.Width/p.hitbox.RadiusDivisor+p.Width/p.hitbox.RadiusDivisor
}

// Update advances the player by one tick and flags GameOver on collision.
func (p *Player) Update(in *core.InputState, deltaMs float64, st *State) {
	for _, o := range st.Obstacles {
		if p.Collides(o) {
			st.GameOver = true
		}
	}

	p.Anim.Advance(deltaMs)

	// Horizontal: right wins when both are held
	switch {
	case in.Has(core.IntentMoveRight):
		p.Speed = p.cfg.Speed
	case in.Has(core.IntentMoveLeft):
		p.Speed = -p.cfg.Speed
	default:
		p.Speed = 0
	}
	p.X = core.ClampF(p.X+p.Speed, 0, p.gameW-p.Width)

	// Vertical
	if in.Jumping() && p.OnGround() {
		p.VY -= p.cfg.JumpImpulse
	}
	p.Y += p.VY
	if !p.OnGround() {
		p.VY += p.Gravity
		p.Anim.Use(p.cfg.AirFrames, rowJumping)
	} else {
		p.VY = 0
		p.Anim.Use(p.cfg.GroundFrames, rowRunning)
	}
	if p.Y > p.floor() {
		p.Y = p.floor()
	}
}
