package sim

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
)

// MaxEnemies is the enemy pool capacity.
const MaxEnemies = 16

// InvalidSlot is returned by Spawn when nothing was spawned.
const InvalidSlot = -1

const (
	enemyDeathFrames  = 15
	rinkaLifetime     = 300
	sidehopperIdle    = 60
	screwAttackDamage = 200
)

// EnemyType selects an entry in the static definition table.
type EnemyType uint8

const (
	EnemyNone EnemyType = iota
	EnemyZoomer
	EnemyGeemer
	EnemyWaver
	EnemyRinka
	EnemySidehopper
	EnemyKiHunter
	EnemyZebesian
	enemyTypeCount
)

// enemyDef is the static per-type template applied on spawn.
type enemyDef struct {
	HP            int
	ContactDamage int
	Speed         fx.F32
	HalfW, HalfH  fx.F32
}

var enemyDefs = [enemyTypeCount]enemyDef{
	EnemyZoomer:     {HP: 20, ContactDamage: 8, Speed: fx.Half, HalfW: fx.FromInt(6), HalfH: fx.FromInt(6)},
	EnemyGeemer:     {HP: 60, ContactDamage: 20, Speed: fx.Half + fx.One/4, HalfW: fx.FromInt(6), HalfH: fx.FromInt(6)},
	EnemyWaver:      {HP: 40, ContactDamage: 16, Speed: fx.One, HalfW: fx.FromInt(6), HalfH: fx.FromInt(6)},
	EnemyRinka:      {HP: 1, ContactDamage: 16, Speed: fx.One + fx.Half, HalfW: fx.FromInt(4), HalfH: fx.FromInt(4)},
	EnemySidehopper: {HP: 200, ContactDamage: 40, Speed: fx.One + fx.Half, HalfW: fx.FromInt(8), HalfH: fx.FromInt(12)},
	EnemyKiHunter:   {HP: 600, ContactDamage: 48, Speed: fx.One, HalfW: fx.FromInt(8), HalfH: fx.FromInt(12)},
	EnemyZebesian:   {HP: 400, ContactDamage: 32, Speed: fx.One, HalfW: fx.FromInt(8), HalfH: fx.FromInt(12)},
}

// enemyTypeNames maps room spawn names to types.
var enemyTypeNames = map[string]EnemyType{
	"zoomer":     EnemyZoomer,
	"geemer":     EnemyGeemer,
	"waver":      EnemyWaver,
	"rinka":      EnemyRinka,
	"sidehopper": EnemySidehopper,
	"ki_hunter":  EnemyKiHunter,
	"zebesian":   EnemyZebesian,
}

// Enemy is one live pool slot.
type Enemy struct {
	Type          EnemyType
	Body          physics.Body
	HP            int
	ContactDamage int
	FacingLeft    bool
	Timer         int
	Dying         bool
	DeathTimer    int
}

// EnemyPool is a fixed-capacity pool with swap-removal. Slot indices
// are stable within a frame but not across removals.
type EnemyPool struct {
	slots [MaxEnemies]Enemy
	count int
}

// Count returns the number of live enemies.
func (p *EnemyPool) Count() int { return p.count }

// At returns the enemy in a live slot.
func (p *EnemyPool) At(i int) *Enemy { return &p.slots[i] }

// Spawn initializes a slot from the type's definition and returns its
// index, or InvalidSlot when the type is unusable or the pool is full.
func (p *EnemyPool) Spawn(typ EnemyType, pos fx.Vec2) int {
	if typ == EnemyNone || typ >= enemyTypeCount || p.count >= MaxEnemies {
		return InvalidSlot
	}

	def := enemyDefs[typ]
	i := p.count
	p.slots[i] = Enemy{
		Type:          typ,
		HP:            def.HP,
		ContactDamage: def.ContactDamage,
	}
	p.slots[i].Body.Pos = pos
	p.slots[i].Body.Hitbox = fx.AABB{HalfW: def.HalfW, HalfH: def.HalfH}
	p.count++
	return i
}

// Remove swaps the last live slot into i and zeroes the vacated tail.
func (p *EnemyPool) Remove(i int) {
	if i < 0 || i >= p.count {
		return
	}
	p.count--
	p.slots[i] = p.slots[p.count]
	p.slots[p.count] = Enemy{}
}

// ClearAll empties the pool.
func (p *EnemyPool) ClearAll() {
	for i := range p.slots {
		p.slots[i] = Enemy{}
	}
	p.count = 0
}

// Update steps every enemy. Iteration runs backward so swap-removals
// never skip a slot.
func (p *EnemyPool) Update(w *World) {
	for i := p.count - 1; i >= 0; i-- {
		e := &p.slots[i]

		if e.Dying {
			e.DeathTimer--
			if e.DeathTimer <= 0 {
				p.Remove(i)
			}
			continue
		}

		enemyBrains[e.Type].update(e, w)
		e.contactCheck(w)

		if e.HP <= 0 {
			e.Dying = true
			e.DeathTimer = enemyDeathFrames
		}
	}
}

// Damage applies projectile or screw-attack damage.
func (e *Enemy) Damage(dmg int) {
	if e.Dying {
		return
	}
	e.HP -= dmg
}

// contactCheck resolves touching the player: screw attack kills the
// enemy, anything else hurts the player with knockback away from us.
func (e *Enemy) contactCheck(w *World) {
	pl := &w.Player
	if !pl.Alive {
		return
	}
	if !fx.Overlaps(e.Body.Pos, e.Body.Hitbox, pl.Body.Pos, pl.Body.Hitbox) {
		return
	}
	if pl.InState(stateSpinJumping) && pl.Equipment.Has(EquipScrewAttack) {
		e.Damage(screwAttackDamage)
		return
	}
	pl.Damage(w, e.ContactDamage, e.Body.Pos.X)
}

// enemyBrain is per-type behavior, dispatched by a type-indexed table.
type enemyBrain interface {
	update(e *Enemy, w *World)
}

// Brain singletons. EnemyNone gets the no-op brain so dispatch never
// needs a nil check; the stub types reuse simpler behaviors until they
// get their own.
var (
	brainNoop    enemyBrain = &noopBrain{}
	brainCrawler enemyBrain = &crawlerBrain{}
	brainWaver   enemyBrain = &waverBrain{}
	brainRinka   enemyBrain = &rinkaBrain{}
	brainHopper  enemyBrain = &sidehopperBrain{}
)

var enemyBrains = [enemyTypeCount]enemyBrain{
	EnemyNone:       brainNoop,
	EnemyZoomer:     brainCrawler,
	EnemyGeemer:     brainCrawler,
	EnemyWaver:      brainWaver,
	EnemyRinka:      brainRinka,
	EnemySidehopper: brainHopper,
	EnemyKiHunter:   brainWaver,
	EnemyZebesian:   brainCrawler,
}

// noopBrain applies physics and nothing else.
type noopBrain struct{}

func (noopBrain) update(e *Enemy, w *World) {
	e.Body.Step(w.Room)
}

// crawlerBrain walks along the ground, reversing at walls and ledges.
type crawlerBrain struct{}

func (crawlerBrain) update(e *Enemy, w *World) {
	speed := enemyDefs[e.Type].Speed
	if e.FacingLeft {
		e.Body.Vel.X = -speed
	} else {
		e.Body.Vel.X = speed
	}

	e.Body.Step(w.Room)

	if e.Body.Contact.WallLeft {
		e.FacingLeft = false
	} else if e.Body.Contact.WallRight {
		e.FacingLeft = true
	} else if e.Body.Contact.Ground && !floorAhead(e, w) {
		e.FacingLeft = !e.FacingLeft
	}
}

// floorAhead probes the tile below the leading foot.
func floorAhead(e *Enemy, w *World) bool {
	lead := e.Body.Pos.X + e.Body.Hitbox.HalfW
	if e.FacingLeft {
		lead = e.Body.Pos.X - e.Body.Hitbox.HalfW - 1
	}
	tx := fx.ToInt(lead) >> physics.TileShift
	ty := fx.ToInt(e.Body.Pos.Y+e.Body.Hitbox.HalfH) >> physics.TileShift
	return w.Room.Tile(tx, ty).BlocksBody()
}

// waverBrain flies a sine ribbon across the room, ignoring gravity.
type waverBrain struct{}

func (waverBrain) update(e *Enemy, w *World) {
	speed := enemyDefs[e.Type].Speed
	if e.FacingLeft {
		e.Body.Vel.X = -speed
	} else {
		e.Body.Vel.X = speed
	}
	e.Body.Vel.Y = fx.Sin(e.Timer) >> 1
	e.Timer++

	e.Body.Integrate()

	min := fx.FromInt(physics.TileSize) + e.Body.Hitbox.HalfW
	max := fx.FromInt(w.Room.PixelWidth()-physics.TileSize) - e.Body.Hitbox.HalfW
	if e.Body.Pos.X <= min {
		e.Body.Pos.X = min
		e.FacingLeft = false
	} else if e.Body.Pos.X >= max {
		e.Body.Pos.X = max
		e.FacingLeft = true
	}
}

// rinkaBrain homes on the player by velocity sign and burns out after
// a fixed lifetime.
type rinkaBrain struct{}

func (rinkaBrain) update(e *Enemy, w *World) {
	speed := enemyDefs[e.Type].Speed

	e.Body.Vel = fx.Vec2{}
	if w.Player.Body.Pos.X > e.Body.Pos.X {
		e.Body.Vel.X = speed
	} else if w.Player.Body.Pos.X < e.Body.Pos.X {
		e.Body.Vel.X = -speed
	}
	if w.Player.Body.Pos.Y > e.Body.Pos.Y {
		e.Body.Vel.Y = speed
	} else if w.Player.Body.Pos.Y < e.Body.Pos.Y {
		e.Body.Vel.Y = -speed
	}

	e.Body.Integrate()

	e.Timer++
	if e.Timer >= rinkaLifetime {
		e.HP = 0
	}
}

// sidehopperBrain waits on the ground, then leaps toward the player.
type sidehopperBrain struct{}

func (sidehopperBrain) update(e *Enemy, w *World) {
	if e.Body.Contact.Ground {
		e.Body.Vel.X = 0
		e.Timer++
		if e.Timer >= sidehopperIdle {
			e.Timer = 0
			e.FacingLeft = w.Player.Body.Pos.X < e.Body.Pos.X
			speed := enemyDefs[e.Type].Speed
			if e.FacingLeft {
				speed = -speed
			}
			e.Body.Vel.X = speed
			e.Body.Vel.Y = -(physics.JumpVelNormal >> 1)
		}
	}

	e.Body.Step(w.Room)
}
