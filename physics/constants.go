package physics

import "github.com/milk9111/cavernfall/fx"

// Tile geometry. Collision is resolved against a grid of 16x16 pixel
// metatiles.
const (
	TileSize  = 16
	TileShift = 4 // log2(TileSize)
)

// TileSizeFx is the metatile size in fixed point.
var TileSizeFx = fx.FromInt(TileSize)

// Gravity constants per environment, in pixels/frame^2. These are the
// exact NTSC subpixel values; the frame-count tests depend on them.
const (
	GravityAir   fx.F32 = 0x125C // 0.07168 px/f^2
	GravityWater fx.F32 = 0x053F // 0.02048 px/f^2
	GravityLava  fx.F32 = 0x05E6 // 0.02304 px/f^2
)

// Terminal fall velocity, pixels/frame. Applied downward only.
const (
	TerminalVelAir   fx.F32 = 0x50000
	TerminalVelWater fx.F32 = 0x50000
	TerminalVelLava  fx.F32 = 0x50000
)

// Jump launch velocities (upward = negative Y, set by the caller).
const (
	JumpVelNormal     fx.F32 = 0x49000 // 4.5625 px/f ground jump
	JumpVelSpin       fx.F32 = 0x48000 // ~4.5 px/f spin jump
	JumpVelHiJump     fx.F32 = 0x58000 // ~5.5 px/f with hi-jump boots
	JumpVelSpringBall fx.F32 = 0x3A000 // ~3.625 px/f
)

// Horizontal movement speeds, pixels/frame.
const (
	WalkSpeed      fx.F32 = 0x18000 // 1.5
	RunSpeed       fx.F32 = 0x20000 // 2.0
	MorphBallSpeed fx.F32 = 0x20000 // 2.0
)

// Damage response.
const (
	KnockbackVelX   fx.F32 = 0x20000 // 2.0 px/f away from source
	KnockbackVelY   fx.F32 = 0x30000 // 3.0 px/f upward
	KnockbackFrames        = 24
	InvulnFrames           = 60
)

// Bomb timing.
const (
	BombTimerFrames        = 87
	BombJumpVel     fx.F32 = 0x28000 // ~2.5 px/f upward from a blast
)
