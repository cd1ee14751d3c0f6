package sim

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
	"github.com/milk9111/cavernfall/rooms"
)

// MaxProjectiles is the projectile pool capacity.
const MaxProjectiles = 32

// ProjectileType selects an entry in the static definition table.
type ProjectileType uint8

const (
	ProjNone ProjectileType = iota
	ProjPowerBeam
	ProjIceBeam
	ProjWaveBeam
	ProjSpazer
	ProjPlasma
	ProjMissile
	ProjSuper
	ProjBomb
	ProjPowerBomb
	ProjEnemyBullet
	projTypeCount
)

// Owner filters who a projectile can hit.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// projDef is the static per-type template.
type projDef struct {
	Damage       int
	Speed        fx.F32
	Lifetime     int
	HalfW, HalfH fx.F32
	WallPass     bool
	Pierce       bool
	IsBomb       bool
	BlastHalf    fx.F32 // bombs only
}

var projectileDefs = [projTypeCount]projDef{
	ProjPowerBeam:   {Damage: 20, Speed: fx.FromInt(4), Lifetime: 30, HalfW: fx.FromInt(2), HalfH: fx.FromInt(2)},
	ProjIceBeam:     {Damage: 30, Speed: fx.FromInt(3), Lifetime: 30, HalfW: fx.FromInt(2), HalfH: fx.FromInt(2)},
	ProjWaveBeam:    {Damage: 50, Speed: fx.FromInt(4), Lifetime: 45, HalfW: fx.FromInt(2), HalfH: fx.FromInt(2), WallPass: true},
	ProjSpazer:      {Damage: 40, Speed: fx.FromInt(4), Lifetime: 30, HalfW: fx.FromInt(3), HalfH: fx.FromInt(3)},
	ProjPlasma:      {Damage: 150, Speed: fx.FromInt(4), Lifetime: 30, HalfW: fx.FromInt(3), HalfH: fx.FromInt(3), Pierce: true},
	ProjMissile:     {Damage: 100, Speed: fx.FromInt(5), Lifetime: 60, HalfW: fx.FromInt(3), HalfH: fx.FromInt(3)},
	ProjSuper:       {Damage: 300, Speed: fx.FromInt(5), Lifetime: 60, HalfW: fx.FromInt(4), HalfH: fx.FromInt(4)},
	ProjBomb:        {Damage: 30, Lifetime: physics.BombTimerFrames, HalfW: fx.FromInt(4), HalfH: fx.FromInt(4), IsBomb: true, BlastHalf: fx.FromInt(16)},
	ProjPowerBomb:   {Damage: 200, Lifetime: physics.BombTimerFrames, HalfW: fx.FromInt(16), HalfH: fx.FromInt(16), IsBomb: true, BlastHalf: fx.FromInt(48)},
	ProjEnemyBullet: {Damage: 10, Speed: fx.FromInt(2), Lifetime: 120, HalfW: fx.FromInt(3), HalfH: fx.FromInt(3)},
}

// Projectile is one live pool slot.
type Projectile struct {
	Type   ProjectileType
	Owner  Owner
	Pos    fx.Vec2
	Vel    fx.Vec2
	Hitbox fx.AABB
	Damage int
	Timer  int // remaining lifetime, or the bomb fuse
}

// ProjectilePool mirrors EnemyPool: fixed capacity, swap-removal,
// backward iteration.
type ProjectilePool struct {
	slots [MaxProjectiles]Projectile
	count int
}

// Count returns the number of live projectiles.
func (p *ProjectilePool) Count() int { return p.count }

// At returns the projectile in a live slot.
func (p *ProjectilePool) At(i int) *Projectile { return &p.slots[i] }

// Spawn initializes a slot and returns its index, or InvalidSlot.
// Bombs ignore vel and sit where they are laid.
func (p *ProjectilePool) Spawn(typ ProjectileType, owner Owner, pos, vel fx.Vec2) int {
	if typ == ProjNone || typ >= projTypeCount || p.count >= MaxProjectiles {
		return InvalidSlot
	}

	def := projectileDefs[typ]
	i := p.count
	p.slots[i] = Projectile{
		Type:   typ,
		Owner:  owner,
		Pos:    pos,
		Vel:    vel,
		Hitbox: fx.AABB{HalfW: def.HalfW, HalfH: def.HalfH},
		Damage: def.Damage,
		Timer:  def.Lifetime,
	}
	if def.IsBomb {
		p.slots[i].Vel = fx.Vec2{}
	}
	p.count++
	return i
}

// Remove swaps the last live slot into i and zeroes the tail.
func (p *ProjectilePool) Remove(i int) {
	if i < 0 || i >= p.count {
		return
	}
	p.count--
	p.slots[i] = p.slots[p.count]
	p.slots[p.count] = Projectile{}
}

// ClearAll empties the pool.
func (p *ProjectilePool) ClearAll() {
	for i := range p.slots {
		p.slots[i] = Projectile{}
	}
	p.count = 0
}

// Update moves every projectile and resolves its collisions. Backward
// iteration keeps swap-removal safe.
func (p *ProjectilePool) Update(w *World) {
	for i := p.count - 1; i >= 0; i-- {
		pr := &p.slots[i]
		if pr.update(w) {
			p.Remove(i)
		}
	}
}

// update advances one projectile; reports whether it is spent.
func (pr *Projectile) update(w *World) bool {
	def := projectileDefs[pr.Type]

	if def.IsBomb {
		pr.Timer--
		if pr.Timer <= 0 {
			pr.explode(w, def)
			return true
		}
		return false
	}

	pr.Pos.X += pr.Vel.X
	pr.Pos.Y += pr.Vel.Y

	pr.Timer--
	if pr.Timer <= 0 {
		return true
	}

	if !def.WallPass && pr.hitTile(w) {
		return true
	}

	return pr.hitEntities(w, def)
}

// hitTile tests the projectile center against the grid. Breakable
// blocks count as solid to shots; player shots break shot blocks.
func (pr *Projectile) hitTile(w *World) bool {
	tx := fx.ToInt(pr.Pos.X) >> physics.TileShift
	ty := fx.ToInt(pr.Pos.Y) >> physics.TileShift
	tile := w.Room.Tile(tx, ty)
	if !tile.BlocksBody() {
		return false
	}
	if pr.Owner == OwnerPlayer && tile == physics.TileShot {
		w.Room.Break(tx, ty, rooms.BreakByShot)
	}
	return true
}

// hitEntities applies damage to whatever the owner is allowed to hit.
// Reports whether the projectile is consumed.
func (pr *Projectile) hitEntities(w *World, def projDef) bool {
	if pr.Owner == OwnerEnemy {
		pl := &w.Player
		if pl.Alive && fx.Overlaps(pr.Pos, pr.Hitbox, pl.Body.Pos, pl.Body.Hitbox) {
			pl.Damage(w, pr.Damage, pr.Pos.X)
			return true
		}
		return false
	}

	for i := w.Enemies.Count() - 1; i >= 0; i-- {
		e := w.Enemies.At(i)
		if e.Dying {
			continue
		}
		if fx.Overlaps(pr.Pos, pr.Hitbox, e.Body.Pos, e.Body.Hitbox) {
			e.Damage(pr.Damage)
			if !def.Pierce {
				return true
			}
		}
	}

	b := &w.Boss
	if b.Active && fx.Overlaps(pr.Pos, pr.Hitbox, b.Pos, b.Hitbox) {
		b.Damage(w, pr.Damage)
		if !def.Pierce {
			return true
		}
	}

	return false
}

// explode resolves a bomb: blast damage to enemies and the boss, bomb
// blocks broken around the blast, and the bomb-jump impulse when the
// player is close enough.
func (pr *Projectile) explode(w *World, def projDef) {
	blast := fx.AABB{HalfW: def.BlastHalf, HalfH: def.BlastHalf}

	for i := w.Enemies.Count() - 1; i >= 0; i-- {
		e := w.Enemies.At(i)
		if !e.Dying && fx.Overlaps(pr.Pos, blast, e.Body.Pos, e.Body.Hitbox) {
			e.Damage(pr.Damage)
		}
	}

	b := &w.Boss
	if b.Active && fx.Overlaps(pr.Pos, blast, b.Pos, b.Hitbox) {
		b.Damage(w, pr.Damage)
	}

	radius := fx.ToInt(def.BlastHalf) >> physics.TileShift
	if radius < 1 {
		radius = 1
	}
	cx := fx.ToInt(pr.Pos.X) >> physics.TileShift
	cy := fx.ToInt(pr.Pos.Y) >> physics.TileShift
	for ty := cy - radius; ty <= cy+radius; ty++ {
		for tx := cx - radius; tx <= cx+radius; tx++ {
			w.Room.Break(tx, ty, rooms.BreakByBomb)
		}
	}

	pl := &w.Player
	if pl.Alive {
		near := fx.AABB{HalfW: fx.FromInt(16), HalfH: fx.FromInt(16)}
		if fx.Overlaps(pr.Pos, near, pl.Body.Pos, pl.Body.Hitbox) {
			pl.Body.Vel.Y = -physics.BombJumpVel
		}
	}
}
