package sim

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
	"github.com/milk9111/cavernfall/rooms"
)

// Equipment is the player's acquired-upgrades bitmask.
type Equipment uint32

const (
	EquipMorphBall Equipment = 1 << iota
	EquipBombs
	EquipHiJump
	EquipSpringBall
	EquipVaria
	EquipGravity
	EquipIceBeam
	EquipWaveBeam
	EquipSpazer
	EquipPlasma
	EquipScrewAttack
)

// Has reports whether every bit of q is equipped.
func (e Equipment) Has(q Equipment) bool { return e&q == q }

// Ammo tracks consumable weapon stock.
type Ammo struct {
	Missiles      int
	MaxMissiles   int
	Supers        int
	MaxSupers     int
	PowerBombs    int
	MaxPowerBombs int
}

// Weapon is the armed weapon slot.
type Weapon uint8

const (
	WeaponBeam Weapon = iota
	WeaponMissile
	WeaponSuper
)

// Player hitbox half extents per stance. The bottom edge stays fixed
// across stance changes.
var (
	playerHalfW       = fx.FromInt(8)
	playerHalfHStand  = fx.FromInt(20)
	playerHalfHCrouch = fx.FromInt(14)
	playerHalfHMorph  = fx.FromInt(4)
)

const (
	playerDeathFrames   = 120
	spikeDamage         = 60
	lavaDamage          = 10
	lavaDamagePeriod    = 30
	beamCooldownFrames  = 8
	heavyCooldownFrames = 12
)

// Tank pickup values.
const (
	energyTankValue    = 100
	missileTankValue   = 5
	superTankValue     = 5
	powerBombTankValue = 5
)

// Player is the singleton controllable character.
type Player struct {
	Body  physics.Body
	HP    int
	MaxHP int
	Alive bool

	Equipment Equipment
	Ammo      Ammo
	Weapon    Weapon

	FacingLeft bool

	state        PlayerState
	Invuln       int
	DamageTimer  int
	DeathTimer   int
	FireCooldown int
	lavaTimer    int
	runFrames    int
}

// NewPlayer returns a player standing at pos with base energy.
func NewPlayer(pos fx.Vec2) Player {
	p := Player{
		HP:    99,
		MaxHP: 99,
		Alive: true,
		state: stateStanding,
	}
	p.Body.Pos = pos
	p.Body.Hitbox = fx.AABB{HalfW: playerHalfW, HalfH: playerHalfHStand}
	return p
}

// StateName returns the active state's name, for HUD and logs.
func (p *Player) StateName() string { return p.state.Name() }

// InState reports whether the active state is s.
func (p *Player) InState(s PlayerState) bool { return p.state == s }

// ChangeState exits the current state and enters the next. Every
// transition re-applies the stance hitbox so a stale crouch or morph
// box can never leak into another state.
func (p *Player) ChangeState(next PlayerState, w *World) {
	if next == nil || next == p.state {
		return
	}
	p.state.Exit(p, w)
	p.state = next
	p.setHalfHeight(next.HalfHeight())
	p.state.Enter(p, w)
}

// setHalfHeight resizes the hitbox keeping the bottom edge in place.
func (p *Player) setHalfHeight(halfH fx.F32) {
	p.Body.Pos.Y += p.Body.Hitbox.HalfH - halfH
	p.Body.Hitbox.HalfH = halfH
}

// headroomFor reports whether the body could grow to the given half
// height without intersecting solid tiles above.
func (p *Player) headroomFor(halfH fx.F32, room *rooms.Room) bool {
	grown := p.Body
	grown.Pos.Y += p.Body.Hitbox.HalfH - halfH
	grown.Hitbox.HalfH = halfH

	top := grown.Pos.Y - halfH
	bottom := grown.Pos.Y + halfH
	left := grown.Pos.X - grown.Hitbox.HalfW

	tileT := fx.ToInt(top) >> physics.TileShift
	tileB := fx.ToInt(bottom-1) >> physics.TileShift
	tileL := fx.ToInt(left) >> physics.TileShift
	tileR := fx.ToInt(grown.Pos.X+grown.Hitbox.HalfW-1) >> physics.TileShift

	for ty := tileT; ty <= tileB; ty++ {
		for tx := tileL; tx <= tileR; tx++ {
			if room.Tile(tx, ty).BlocksBody() {
				return false
			}
		}
	}
	return true
}

// jumpVelocity picks the launch speed for a jump, spin or not, with
// hi-jump boots applied.
func (p *Player) jumpVelocity(spin bool) fx.F32 {
	if p.Equipment.Has(EquipHiJump) {
		return physics.JumpVelHiJump
	}
	if spin {
		return physics.JumpVelSpin
	}
	return physics.JumpVelNormal
}

// Update runs one player frame: state input/logic, physics, stance
// corrections, hazards, pickups, and timers.
func (p *Player) Update(w *World, in Input) {
	if !p.Alive {
		if p.DeathTimer > 0 {
			p.DeathTimer--
		}
		return
	}

	if in.SelectPressed {
		p.cycleWeapon()
	}

	p.state.HandleInput(p, w, in)
	p.state.Update(p, w, in)

	p.Body.Env = w.Room.EnvAt(p.Body.Pos)
	if p.Equipment.Has(EquipGravity) && p.Body.Env != physics.EnvAir {
		// gravity suit restores air movement underwater and in lava
		p.Body.Env = physics.EnvAir
	}
	p.Body.Step(w.Room)

	p.postPhysicsCheck(w, in)

	if p.Body.Contact.Ground {
		tx, ty := p.Body.TileUnder()
		w.Room.StandOn(tx, ty)
	}

	p.checkHazards(w)
	p.collectItems(w)
	p.fireWeapons(w, in)

	if p.Invuln > 0 {
		p.Invuln--
	}
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
}

// postPhysicsCheck reconciles the state machine with what collision
// just did: landing, walking off ledges, and passing the jump apex.
func (p *Player) postPhysicsCheck(w *World, in Input) {
	switch p.state {
	case stateJumping, stateSpinJumping, stateFalling, stateWallJump:
		if p.Body.Contact.Ground {
			if in.MoveX() != 0 {
				p.ChangeState(stateRunning, w)
			} else {
				p.ChangeState(stateStanding, w)
			}
			return
		}
		if (p.state == stateJumping || p.state == stateWallJump) && p.Body.Vel.Y >= 0 {
			p.ChangeState(stateFalling, w)
		}
	case stateStanding, stateRunning, stateCrouching:
		if !p.Body.Contact.Ground {
			p.ChangeState(stateFalling, w)
		}
	case stateSpringBall:
		if p.Body.Contact.Ground {
			p.ChangeState(stateMorphball, w)
		}
	}
}

// checkHazards applies spike and lava damage.
func (p *Player) checkHazards(w *World) {
	feet := fx.Vec2{X: p.Body.Pos.X, Y: p.Body.Pos.Y + p.Body.Hitbox.HalfH}
	if tile, bad := w.Room.HazardAt(feet); bad && tile == physics.TileSpike {
		p.Damage(w, spikeDamage, p.Body.Pos.X+fx.One)
		// spikes always bounce the player up, even during i-frames
		p.Body.Vel.Y = -physics.KnockbackVelY
		return
	}

	if p.Body.Env == physics.EnvLava && !p.Equipment.Has(EquipGravity) {
		p.lavaTimer++
		if p.lavaTimer >= lavaDamagePeriod {
			p.lavaTimer = 0
			dmg := lavaDamage
			if p.Equipment.Has(EquipVaria) {
				dmg /= 2
			}
			p.hurt(w, dmg)
		}
	} else {
		p.lavaTimer = 0
	}
}

// collectItems picks up anything the hitbox overlaps and applies it.
func (p *Player) collectItems(w *World) {
	kind := w.Room.CollectAt(p.Body.Pos, p.Body.Hitbox)
	if kind == rooms.ItemNone {
		return
	}
	p.ApplyItem(kind)
}

// ApplyItem mutates equipment, energy, or ammo for a pickup.
func (p *Player) ApplyItem(kind rooms.ItemKind) {
	switch kind {
	case rooms.ItemEnergyTank:
		p.MaxHP += energyTankValue
		p.HP = p.MaxHP
	case rooms.ItemMissileTank:
		p.Ammo.MaxMissiles += missileTankValue
		p.Ammo.Missiles += missileTankValue
	case rooms.ItemSuperTank:
		p.Ammo.MaxSupers += superTankValue
		p.Ammo.Supers += superTankValue
	case rooms.ItemPowerBombTank:
		p.Ammo.MaxPowerBombs += powerBombTankValue
		p.Ammo.PowerBombs += powerBombTankValue
	case rooms.ItemMorphBall:
		p.Equipment |= EquipMorphBall
	case rooms.ItemBombs:
		p.Equipment |= EquipBombs
	case rooms.ItemHiJump:
		p.Equipment |= EquipHiJump
	case rooms.ItemSpringBall:
		p.Equipment |= EquipSpringBall
	case rooms.ItemVaria:
		p.Equipment |= EquipVaria
	case rooms.ItemGravity:
		p.Equipment |= EquipGravity
	case rooms.ItemIceBeam:
		p.Equipment |= EquipIceBeam
	case rooms.ItemWaveBeam:
		p.Equipment |= EquipWaveBeam
	case rooms.ItemSpazer:
		p.Equipment |= EquipSpazer
	case rooms.ItemPlasma:
		p.Equipment |= EquipPlasma
	case rooms.ItemScrewAttack:
		p.Equipment |= EquipScrewAttack
	}
}

func (p *Player) cycleWeapon() {
	for i := 0; i < 3; i++ {
		p.Weapon = (p.Weapon + 1) % 3
		switch p.Weapon {
		case WeaponBeam:
			return
		case WeaponMissile:
			if p.Ammo.Missiles > 0 {
				return
			}
		case WeaponSuper:
			if p.Ammo.Supers > 0 {
				return
			}
		}
	}
	p.Weapon = WeaponBeam
}

// beamType resolves the fired beam by equipment priority.
func (p *Player) beamType() ProjectileType {
	switch {
	case p.Equipment.Has(EquipPlasma):
		return ProjPlasma
	case p.Equipment.Has(EquipSpazer):
		return ProjSpazer
	case p.Equipment.Has(EquipWaveBeam):
		return ProjWaveBeam
	case p.Equipment.Has(EquipIceBeam):
		return ProjIceBeam
	}
	return ProjPowerBeam
}

// fireWeapons spawns projectiles for this frame's fire input. Morph
// ball lays bombs; every other stance that can shoot fires the armed
// weapon, and the plain beam keeps firing while the button is held.
// Damage and death states cannot fire.
func (p *Player) fireWeapons(w *World, in Input) {
	if p.FireCooldown > 0 {
		return
	}
	switch p.state {
	case stateDamage, stateDeath:
		return
	case stateMorphball, stateSpringBall:
		if !in.FirePressed || !p.Equipment.Has(EquipBombs) {
			return
		}
		w.Projectiles.Spawn(ProjBomb, OwnerPlayer, p.Body.Pos, fx.Vec2{})
		p.FireCooldown = heavyCooldownFrames
		return
	}

	// the beam autofires while held; missiles, supers, and bombs need
	// a fresh press per shot
	if !in.FirePressed && !(in.Fire && p.Weapon == WeaponBeam) {
		return
	}

	typ := p.beamType()
	cooldown := beamCooldownFrames
	switch p.Weapon {
	case WeaponMissile:
		if p.Ammo.Missiles <= 0 {
			return
		}
		p.Ammo.Missiles--
		typ = ProjMissile
		cooldown = heavyCooldownFrames
	case WeaponSuper:
		if p.Ammo.Supers <= 0 {
			return
		}
		p.Ammo.Supers--
		typ = ProjSuper
		cooldown = heavyCooldownFrames
	}

	speed := projectileDefs[typ].Speed
	muzzle := p.Body.Pos
	var vel fx.Vec2
	if in.Up {
		muzzle.Y -= p.Body.Hitbox.HalfH
		vel.Y = -speed
	} else {
		dir := fx.One
		if p.FacingLeft {
			dir = -fx.One
		}
		muzzle.X += fx.Mul(dir, p.Body.Hitbox.HalfW)
		muzzle.Y -= fx.FromInt(4)
		vel.X = fx.Mul(dir, speed)
	}

	w.Projectiles.Spawn(typ, OwnerPlayer, muzzle, vel)
	p.FireCooldown = cooldown
}

// hurt deducts energy without knockback or i-frames (hazard ticks).
func (p *Player) hurt(w *World, dmg int) {
	if !p.Alive {
		return
	}
	p.HP -= dmg
	if p.HP <= 0 {
		p.HP = 0
		p.die(w)
	}
}

// Damage applies contact or projectile damage from a source at fromX,
// with knockback away from it. A no-op during i-frames.
func (p *Player) Damage(w *World, dmg int, fromX fx.F32) {
	if !p.Alive || p.Invuln > 0 {
		return
	}

	p.HP -= dmg
	p.Invuln = physics.InvulnFrames

	if p.HP <= 0 {
		p.HP = 0
		p.die(w)
		return
	}

	away := physics.KnockbackVelX
	if fromX > p.Body.Pos.X {
		away = -away
	}
	p.Body.Vel.X = away
	p.Body.Vel.Y = -physics.KnockbackVelY
	p.ChangeState(stateDamage, w)
}

func (p *Player) die(w *World) {
	p.Alive = false
	p.Body.Vel = fx.Vec2{}
	p.DeathTimer = playerDeathFrames
	p.ChangeState(stateDeath, w)
}
