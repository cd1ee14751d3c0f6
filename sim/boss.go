package sim

import (
	"github.com/milk9111/cavernfall/fx"
)

// BossType selects one of the boss machines.
type BossType uint8

const (
	BossNone BossType = iota
	BossSporeSpawn
	BossCrocomire
	BossBombTorizo
	BossKraid
	BossBotwoon
	BossPhantoon
	BossDraygon
	BossGoldenTorizo
	BossRidley
	BossMotherBrain
	bossTypeCount
)

// bossHitFlashFrames is the post-hit invulnerability window. A burst
// that lands inside it deals no extra damage.
const bossHitFlashFrames = 10

// bossMachine drives one boss type. A fresh machine is built per
// spawn; each keeps its own fields instead of sharing scratch space.
type bossMachine interface {
	enter(b *Boss, w *World)
	update(b *Boss, w *World)
	// kill runs when hp reaches zero. Returning false suppresses the
	// generic death sequence (phase transitions).
	kill(b *Boss, w *World) bool
}

// hitInterceptor is an optional machine hook that runs before damage
// is applied. Returning true consumes the hit entirely.
type hitInterceptor interface {
	interceptHit(b *Boss, w *World, dmg int) bool
}

// bossTemplate is static per-type data.
type bossTemplate struct {
	HP           int
	HalfW, HalfH fx.F32
	DeathFrames  int
	Make         func() bossMachine
}

var bossTemplates = [bossTypeCount]bossTemplate{
	BossSporeSpawn:   {HP: 960, HalfW: fx.FromInt(16), HalfH: fx.FromInt(16), DeathFrames: 60, Make: func() bossMachine { return &sporeSpawnMachine{} }},
	BossCrocomire:    {HP: 4000, HalfW: fx.FromInt(24), HalfH: fx.FromInt(24), DeathFrames: 90, Make: func() bossMachine { return &crocomireMachine{} }},
	BossBombTorizo:   {HP: 800, HalfW: fx.FromInt(12), HalfH: fx.FromInt(24), DeathFrames: 60, Make: func() bossMachine { return &bombTorizoMachine{} }},
	BossKraid:        {HP: 1000, HalfW: fx.FromInt(32), HalfH: fx.FromInt(48), DeathFrames: 120, Make: func() bossMachine { return &kraidMachine{} }},
	BossBotwoon:      {HP: 3000, HalfW: fx.FromInt(12), HalfH: fx.FromInt(12), DeathFrames: 90, Make: func() bossMachine { return &botwoonMachine{} }},
	BossPhantoon:     {HP: 2500, HalfW: fx.FromInt(16), HalfH: fx.FromInt(16), DeathFrames: 90, Make: func() bossMachine { return &phantoonMachine{} }},
	BossDraygon:      {HP: 6000, HalfW: fx.FromInt(24), HalfH: fx.FromInt(16), DeathFrames: 90, Make: func() bossMachine { return &draygonMachine{} }},
	BossGoldenTorizo: {HP: 8000, HalfW: fx.FromInt(12), HalfH: fx.FromInt(24), DeathFrames: 90, Make: func() bossMachine { return &goldenTorizoMachine{} }},
	BossRidley:       {HP: 18000, HalfW: fx.FromInt(16), HalfH: fx.FromInt(24), DeathFrames: 150, Make: func() bossMachine { return &ridleyMachine{} }},
	BossMotherBrain:  {HP: 3000, HalfW: fx.FromInt(16), HalfH: fx.FromInt(24), DeathFrames: 180, Make: func() bossMachine { return &motherBrainMachine{} }},
}

// bossTypeNames maps room spawn names to types.
var bossTypeNames = map[string]BossType{
	"spore_spawn":   BossSporeSpawn,
	"crocomire":     BossCrocomire,
	"bomb_torizo":   BossBombTorizo,
	"kraid":         BossKraid,
	"botwoon":       BossBotwoon,
	"phantoon":      BossPhantoon,
	"draygon":       BossDraygon,
	"golden_torizo": BossGoldenTorizo,
	"ridley":        BossRidley,
	"mother_brain":  BossMotherBrain,
}

// Boss is the room's singleton boss. Spawning replaces any active one.
type Boss struct {
	Type       BossType
	Active     bool
	Vulnerable bool
	HP         int
	MaxHP      int

	Pos      fx.Vec2
	Vel      fx.Vec2
	Hitbox   fx.AABB
	SpawnPos fx.Vec2

	FacingLeft bool
	Invuln     int
	Dying      bool
	DeathTimer int

	machine bossMachine
}

// Spawn activates a boss of the given type at pos, replacing whatever
// was there. Unknown types deactivate the slot.
func (b *Boss) Spawn(w *World, typ BossType, pos fx.Vec2) {
	if typ == BossNone || typ >= bossTypeCount {
		*b = Boss{}
		return
	}

	tpl := bossTemplates[typ]
	*b = Boss{
		Type:       typ,
		Active:     true,
		Vulnerable: true,
		HP:         tpl.HP,
		MaxHP:      tpl.HP,
		Pos:        pos,
		SpawnPos:   pos,
		Hitbox:     fx.AABB{HalfW: tpl.HalfW, HalfH: tpl.HalfH},
		machine:    tpl.Make(),
	}
	b.machine.enter(b, w)
}

// Update runs one boss frame.
func (b *Boss) Update(w *World) {
	if !b.Active {
		return
	}

	if b.Dying {
		b.DeathTimer--
		if b.DeathTimer <= 0 {
			b.Active = false
		}
		return
	}

	if b.Invuln > 0 {
		b.Invuln--
	}

	b.FacingLeft = w.Player.Body.Pos.X < b.Pos.X
	b.machine.update(b, w)
	b.contactCheck(w)
}

// contactCheck hurts the player on body contact.
func (b *Boss) contactCheck(w *World) {
	pl := &w.Player
	if !pl.Alive {
		return
	}
	if fx.Overlaps(b.Pos, b.Hitbox, pl.Body.Pos, pl.Body.Hitbox) {
		pl.Damage(w, 40, b.Pos.X)
	}
}

// Damage applies one hit through the vulnerability gate. Reports
// whether the hit registered.
func (b *Boss) Damage(w *World, dmg int) bool {
	if !b.Active || b.Dying || !b.Vulnerable || b.Invuln > 0 {
		return false
	}

	if ic, ok := b.machine.(hitInterceptor); ok {
		if ic.interceptHit(b, w, dmg) {
			b.Invuln = bossHitFlashFrames
			return true
		}
	}

	b.HP -= dmg
	b.Invuln = bossHitFlashFrames
	w.shake(4)

	if b.HP <= 0 {
		b.HP = 0
		if b.machine.kill(b, w) {
			b.startDeath()
		}
	}
	return true
}

// startDeath begins the fixed-length death sequence.
func (b *Boss) startDeath() {
	b.Dying = true
	b.Vulnerable = false
	b.Vel = fx.Vec2{}
	b.DeathTimer = bossTemplates[b.Type].DeathFrames
}

// fireAt spawns an enemy bullet from the boss toward the player,
// aiming by axis sign.
func (b *Boss) fireAt(w *World, speed fx.F32) {
	var vel fx.Vec2
	if w.Player.Body.Pos.X > b.Pos.X {
		vel.X = speed
	} else {
		vel.X = -speed
	}
	if w.Player.Body.Pos.Y > b.Pos.Y {
		vel.Y = speed >> 1
	} else {
		vel.Y = -(speed >> 1)
	}
	w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, b.Pos, vel)
}
