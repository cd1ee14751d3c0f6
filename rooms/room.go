// Package rooms holds the loaded room: the collision grid the physics
// bodies resolve against, plus the room's doors, item pickups, enemy
// spawn list, and crumble-block timers.
package rooms

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
)

// crumbleFrames is how long a crumble block holds after being stood on.
const crumbleFrames = 30

// Direction of travel through a door.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Door is a transition region in tile coordinates.
type Door struct {
	TileX, TileY int
	Dir          Direction
	Dest         string // destination room name
	DestDoor     int    // door index in the destination room
}

// ItemKind identifies a pickup.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemEnergyTank
	ItemMissileTank
	ItemSuperTank
	ItemPowerBombTank
	ItemMorphBall
	ItemBombs
	ItemHiJump
	ItemSpringBall
	ItemVaria
	ItemGravity
	ItemIceBeam
	ItemWaveBeam
	ItemSpazer
	ItemPlasma
	ItemScrewAttack
)

// Item is a pickup placed in the room. Collected items stay in the
// slice so indices remain stable for save flags.
type Item struct {
	TileX, TileY int
	Kind         ItemKind
	Collected    bool
}

// Spawn places an enemy when the room loads. Type names are owned by
// the simulation layer; rooms only carries them.
type Spawn struct {
	TileX, TileY int
	Type         string
	Boss         bool
}

// Room is the loaded play area. It implements physics.TileSource.
type Room struct {
	Name   string
	Width  int // tiles
	Height int // tiles

	grid []physics.Tile

	Doors  []Door
	Items  []Item
	Spawns []Spawn

	// crumble timers keyed by tile index, counting down to collapse
	crumbling map[int]int
}

// New returns an empty (all air) room of the given tile dimensions.
func New(name string, width, height int) *Room {
	return &Room{
		Name:      name,
		Width:     width,
		Height:    height,
		grid:      make([]physics.Tile, width*height),
		crumbling: make(map[int]int),
	}
}

func (r *Room) inRange(tx, ty int) bool {
	return tx >= 0 && tx < r.Width && ty >= 0 && ty < r.Height
}

// Tile returns the collision class at a tile coordinate. Out-of-range
// coordinates read as solid so bodies can never leave the room.
func (r *Room) Tile(tx, ty int) physics.Tile {
	if !r.inRange(tx, ty) {
		return physics.TileSolid
	}
	return r.grid[ty*r.Width+tx]
}

// SetTile overwrites a tile in range; out-of-range writes are dropped.
func (r *Room) SetTile(tx, ty int, t physics.Tile) {
	if !r.inRange(tx, ty) {
		return
	}
	idx := ty*r.Width + tx
	r.grid[idx] = t
	if t != physics.TileCrumble {
		delete(r.crumbling, idx)
	}
}

// BreakCause says what is trying to break a block.
type BreakCause uint8

const (
	BreakByShot BreakCause = iota
	BreakByBomb
)

// Break clears a breakable block if the cause matches its class.
// Reports whether a block was broken.
func (r *Room) Break(tx, ty int, cause BreakCause) bool {
	t := r.Tile(tx, ty)
	switch {
	case t == physics.TileShot && cause == BreakByShot,
		t == physics.TileBomb && cause == BreakByBomb:
		r.SetTile(tx, ty, physics.TileAir)
		return true
	}
	return false
}

// StandOn notifies the room that something is standing on a tile. A
// crumble block starts its collapse timer on the first touch.
func (r *Room) StandOn(tx, ty int) {
	if r.Tile(tx, ty) != physics.TileCrumble {
		return
	}
	idx := ty*r.Width + tx
	if _, started := r.crumbling[idx]; !started {
		r.crumbling[idx] = crumbleFrames
	}
}

// Update advances crumble timers one frame. Expired blocks turn to air.
func (r *Room) Update() {
	for idx, frames := range r.crumbling {
		frames--
		if frames <= 0 {
			r.grid[idx] = physics.TileAir
			delete(r.crumbling, idx)
			continue
		}
		r.crumbling[idx] = frames
	}
}

// EnvAt returns the environment for a body whose center sits at the
// given world position.
func (r *Room) EnvAt(pos fx.Vec2) physics.Env {
	tx := fx.ToInt(pos.X) >> physics.TileShift
	ty := fx.ToInt(pos.Y) >> physics.TileShift
	switch r.Tile(tx, ty) {
	case physics.TileWater:
		return physics.EnvWater
	case physics.TileLava:
		return physics.EnvLava
	}
	return physics.EnvAir
}

// HazardAt reports whether the tile at a world position hurts, and
// which tile it is.
func (r *Room) HazardAt(pos fx.Vec2) (physics.Tile, bool) {
	tx := fx.ToInt(pos.X) >> physics.TileShift
	ty := fx.ToInt(pos.Y) >> physics.TileShift
	t := r.Tile(tx, ty)
	return t, t.Hazard()
}

// DoorAt returns the index of the door whose tile the position is in,
// or -1.
func (r *Room) DoorAt(pos fx.Vec2) int {
	tx := fx.ToInt(pos.X) >> physics.TileShift
	ty := fx.ToInt(pos.Y) >> physics.TileShift
	for i, d := range r.Doors {
		if d.TileX == tx && d.TileY == ty {
			return i
		}
	}
	return -1
}

// CollectAt collects the first uncollected item overlapping the given
// box and returns its kind. Returns ItemNone when nothing is there.
func (r *Room) CollectAt(pos fx.Vec2, box fx.AABB) ItemKind {
	half := fx.FromInt(physics.TileSize / 2)
	itemBox := fx.AABB{HalfW: half, HalfH: half}
	for i := range r.Items {
		it := &r.Items[i]
		if it.Collected {
			continue
		}
		center := fx.Vec2{
			X: fx.FromInt(it.TileX*physics.TileSize) + half,
			Y: fx.FromInt(it.TileY*physics.TileSize) + half,
		}
		if fx.Overlaps(pos, box, center, itemBox) {
			it.Collected = true
			return it.Kind
		}
	}
	return ItemNone
}

// PixelWidth returns the room width in pixels.
func (r *Room) PixelWidth() int { return r.Width * physics.TileSize }

// PixelHeight returns the room height in pixels.
func (r *Room) PixelHeight() int { return r.Height * physics.TileSize }
