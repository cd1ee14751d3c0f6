package sim

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
)

// PlayerState is one node of the player state machine. States carry no
// per-player data; everything mutable lives on Player.
type PlayerState interface {
	Name() string
	HalfHeight() fx.F32
	Enter(p *Player, w *World)
	Exit(p *Player, w *World)
	HandleInput(p *Player, w *World, in Input)
	Update(p *Player, w *World, in Input)
}

// State singletons (avoid allocations on transitions).
var (
	stateStanding         PlayerState = &standingState{}
	stateRunning          PlayerState = &runningState{}
	stateJumping          PlayerState = &jumpingState{}
	stateSpinJumping      PlayerState = &spinJumpingState{}
	stateFalling          PlayerState = &fallingState{}
	stateCrouching        PlayerState = &crouchingState{}
	stateMorphball        PlayerState = &morphballState{}
	stateSpringBall       PlayerState = &springBallState{}
	stateWallJump         PlayerState = &wallJumpState{}
	stateDamage           PlayerState = &damageState{}
	stateDeath            PlayerState = &deathState{}
	stateShinesparkCharge PlayerState = &shinesparkChargeState{}
	stateShinespark       PlayerState = &shinesparkState{}
	stateGrapple          PlayerState = &grappleState{}
)

const (
	shinesparkChargeRunFrames = 90
	shinesparkChargeFrames    = 180
	shinesparkSpeed           = 8
)

// moveSpeed picks walk or run speed from the held run button.
func moveSpeed(in Input) fx.F32 {
	if in.Run {
		return physics.RunSpeed
	}
	return physics.WalkSpeed
}

// steer applies horizontal input: velocity and facing.
func steer(p *Player, in Input, speed fx.F32) {
	mx := in.MoveX()
	p.Body.Vel.X = fx.F32(mx) * speed
	if mx > 0 {
		p.FacingLeft = false
	} else if mx < 0 {
		p.FacingLeft = true
	}
}

// clampRise implements the variable-height jump: releasing the jump
// button caps upward speed at one pixel per frame.
func clampRise(p *Player, in Input) {
	if !in.Jump && p.Body.Vel.Y < -fx.One {
		p.Body.Vel.Y = -fx.One
	}
}

type standingState struct{}

func (standingState) Name() string              { return "standing" }
func (standingState) HalfHeight() fx.F32        { return playerHalfHStand }
func (standingState) Enter(p *Player, w *World) {}
func (standingState) Exit(p *Player, w *World)  {}
func (standingState) HandleInput(p *Player, w *World, in Input) {
	if in.JumpPressed {
		p.ChangeState(stateJumping, w)
		return
	}
	if in.Down {
		p.ChangeState(stateCrouching, w)
		return
	}
	if in.MoveX() != 0 {
		p.ChangeState(stateRunning, w)
	}
}
func (standingState) Update(p *Player, w *World, in Input) {
	p.Body.Vel.X = 0
}

type runningState struct{}

func (runningState) Name() string              { return "running" }
func (runningState) HalfHeight() fx.F32        { return playerHalfHStand }
func (runningState) Enter(p *Player, w *World) { p.runFrames = 0 }
func (runningState) Exit(p *Player, w *World)  {}
func (runningState) HandleInput(p *Player, w *World, in Input) {
	if in.JumpPressed {
		p.ChangeState(stateSpinJumping, w)
		return
	}
	if in.DownPressed && p.runFrames >= shinesparkChargeRunFrames {
		p.ChangeState(stateShinesparkCharge, w)
		return
	}
	if in.Down {
		p.ChangeState(stateCrouching, w)
		return
	}
	if in.MoveX() == 0 {
		p.ChangeState(stateStanding, w)
	}
}
func (runningState) Update(p *Player, w *World, in Input) {
	steer(p, in, moveSpeed(in))
	if in.Run && in.MoveX() != 0 {
		p.runFrames++
	} else {
		p.runFrames = 0
	}
}

type jumpingState struct{}

func (jumpingState) Name() string       { return "jumping" }
func (jumpingState) HalfHeight() fx.F32 { return playerHalfHStand }
func (jumpingState) Enter(p *Player, w *World) {
	p.Body.Vel.Y = -p.jumpVelocity(false)
}
func (jumpingState) Exit(p *Player, w *World)                  {}
func (jumpingState) HandleInput(p *Player, w *World, in Input) {}
func (jumpingState) Update(p *Player, w *World, in Input) {
	steer(p, in, physics.WalkSpeed)
	clampRise(p, in)
}

type spinJumpingState struct{}

func (spinJumpingState) Name() string       { return "spin_jumping" }
func (spinJumpingState) HalfHeight() fx.F32 { return playerHalfHStand }
func (spinJumpingState) Enter(p *Player, w *World) {
	p.Body.Vel.Y = -p.jumpVelocity(true)
	dir := fx.One
	if p.FacingLeft {
		dir = -fx.One
	}
	p.Body.Vel.X = fx.Mul(dir, physics.RunSpeed)
}
func (spinJumpingState) Exit(p *Player, w *World) {}
func (spinJumpingState) HandleInput(p *Player, w *World, in Input) {
	if in.JumpPressed && (p.Body.Contact.WallLeft || p.Body.Contact.WallRight) {
		p.ChangeState(stateWallJump, w)
	}
}
func (spinJumpingState) Update(p *Player, w *World, in Input) {
	steer(p, in, physics.RunSpeed)
	clampRise(p, in)
}

type fallingState struct{}

func (fallingState) Name() string                              { return "falling" }
func (fallingState) HalfHeight() fx.F32                        { return playerHalfHStand }
func (fallingState) Enter(p *Player, w *World)                 {}
func (fallingState) Exit(p *Player, w *World)                  {}
func (fallingState) HandleInput(p *Player, w *World, in Input) {}
func (fallingState) Update(p *Player, w *World, in Input) {
	steer(p, in, physics.WalkSpeed)
}

type crouchingState struct{}

func (crouchingState) Name() string              { return "crouching" }
func (crouchingState) HalfHeight() fx.F32        { return playerHalfHCrouch }
func (crouchingState) Enter(p *Player, w *World) {}
func (crouchingState) Exit(p *Player, w *World)  {}
func (crouchingState) HandleInput(p *Player, w *World, in Input) {
	if in.DownPressed && p.Equipment.Has(EquipMorphBall) {
		p.ChangeState(stateMorphball, w)
		return
	}
	if (in.Up || in.JumpPressed) && p.headroomFor(playerHalfHStand, w.Room) {
		p.ChangeState(stateStanding, w)
		if in.JumpPressed {
			p.ChangeState(stateJumping, w)
		}
	}
}
func (crouchingState) Update(p *Player, w *World, in Input) {
	p.Body.Vel.X = 0
}

type morphballState struct{}

func (morphballState) Name() string              { return "morphball" }
func (morphballState) HalfHeight() fx.F32        { return playerHalfHMorph }
func (morphballState) Enter(p *Player, w *World) {}
func (morphballState) Exit(p *Player, w *World)  {}
func (morphballState) HandleInput(p *Player, w *World, in Input) {
	if in.Up && p.headroomFor(playerHalfHCrouch, w.Room) {
		p.ChangeState(stateCrouching, w)
		return
	}
	if in.JumpPressed && p.Equipment.Has(EquipSpringBall) && p.Body.Contact.Ground {
		p.ChangeState(stateSpringBall, w)
	}
}
func (morphballState) Update(p *Player, w *World, in Input) {
	steer(p, in, physics.MorphBallSpeed)
}

type springBallState struct{}

func (springBallState) Name() string       { return "spring_ball" }
func (springBallState) HalfHeight() fx.F32 { return playerHalfHMorph }
func (springBallState) Enter(p *Player, w *World) {
	p.Body.Vel.Y = -physics.JumpVelSpringBall
}
func (springBallState) Exit(p *Player, w *World)                  {}
func (springBallState) HandleInput(p *Player, w *World, in Input) {}
func (springBallState) Update(p *Player, w *World, in Input) {
	steer(p, in, physics.MorphBallSpeed)
	clampRise(p, in)
}

type wallJumpState struct{}

func (wallJumpState) Name() string       { return "wall_jump" }
func (wallJumpState) HalfHeight() fx.F32 { return playerHalfHStand }
func (wallJumpState) Enter(p *Player, w *World) {
	p.Body.Vel.Y = -p.jumpVelocity(true)
	if p.Body.Contact.WallRight {
		p.Body.Vel.X = -physics.RunSpeed
		p.FacingLeft = true
	} else {
		p.Body.Vel.X = physics.RunSpeed
		p.FacingLeft = false
	}
}
func (wallJumpState) Exit(p *Player, w *World)                  {}
func (wallJumpState) HandleInput(p *Player, w *World, in Input) {}
func (wallJumpState) Update(p *Player, w *World, in Input) {
	clampRise(p, in)
}

type damageState struct{}

func (damageState) Name() string       { return "damage" }
func (damageState) HalfHeight() fx.F32 { return playerHalfHStand }
func (damageState) Enter(p *Player, w *World) {
	p.DamageTimer = physics.KnockbackFrames
}
func (damageState) Exit(p *Player, w *World)                  {}
func (damageState) HandleInput(p *Player, w *World, in Input) {}
func (damageState) Update(p *Player, w *World, in Input) {
	p.DamageTimer--
	if p.DamageTimer <= 0 {
		p.ChangeState(stateFalling, w)
	}
}

type deathState struct{}

func (deathState) Name() string                              { return "death" }
func (deathState) HalfHeight() fx.F32                        { return playerHalfHStand }
func (deathState) Enter(p *Player, w *World)                 { p.Body.Vel = fx.Vec2{} }
func (deathState) Exit(p *Player, w *World)                  {}
func (deathState) HandleInput(p *Player, w *World, in Input) {}
func (deathState) Update(p *Player, w *World, in Input)      {}

type shinesparkChargeState struct{}

func (shinesparkChargeState) Name() string       { return "shinespark_charge" }
func (shinesparkChargeState) HalfHeight() fx.F32 { return playerHalfHCrouch }
func (shinesparkChargeState) Enter(p *Player, w *World) {
	p.DamageTimer = 0
	p.runFrames = shinesparkChargeFrames
}
func (shinesparkChargeState) Exit(p *Player, w *World) {}
func (shinesparkChargeState) HandleInput(p *Player, w *World, in Input) {
	if in.JumpPressed {
		p.ChangeState(stateShinespark, w)
	}
}
func (shinesparkChargeState) Update(p *Player, w *World, in Input) {
	p.Body.Vel.X = 0
	p.runFrames--
	if p.runFrames <= 0 {
		p.ChangeState(stateCrouching, w)
	}
}

type shinesparkState struct{}

func (shinesparkState) Name() string       { return "shinespark" }
func (shinesparkState) HalfHeight() fx.F32 { return playerHalfHStand }
func (shinesparkState) Enter(p *Player, w *World) {
	p.Body.Vel = fx.Vec2{Y: -fx.FromInt(shinesparkSpeed)}
}
func (shinesparkState) Exit(p *Player, w *World)                  {}
func (shinesparkState) HandleInput(p *Player, w *World, in Input) {}
func (shinesparkState) Update(p *Player, w *World, in Input) {
	// sparking overrides gravity until something stops the rise
	if p.Body.Contact.Ceiling || p.Body.Vel.Y >= 0 {
		p.Body.Vel = fx.Vec2{}
		p.ChangeState(stateFalling, w)
		return
	}
	p.Body.Vel.Y = -fx.FromInt(shinesparkSpeed)
}

type grappleState struct{}

func (grappleState) Name() string                              { return "grapple" }
func (grappleState) HalfHeight() fx.F32                        { return playerHalfHStand }
func (grappleState) Enter(p *Player, w *World)                 {}
func (grappleState) Exit(p *Player, w *World)                  {}
func (grappleState) HandleInput(p *Player, w *World, in Input) {}
func (grappleState) Update(p *Player, w *World, in Input) {
	p.ChangeState(stateFalling, w)
}
