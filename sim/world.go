// Package sim is the deterministic gameplay core: one World stepped
// one frame at a time from an Input snapshot. No goroutines, no
// randomness, no wall-clock time; the same room and input sequence
// always replays the same run.
package sim

import (
	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
	"github.com/milk9111/cavernfall/rooms"
)

// ShakeFunc receives camera shake requests from combat. The sim never
// renders; the frontend decides what a magnitude means.
type ShakeFunc func(magnitude int)

// World is the explicit simulation context. Everything the tick
// touches hangs off it; there is no package-level mutable state.
type World struct {
	Room        *rooms.Room
	Player      Player
	Enemies     EnemyPool
	Projectiles ProjectilePool
	Boss        Boss
	Frame       int

	// OnShake is optional; nil is safe.
	OnShake ShakeFunc
}

// New builds a world around a room, placing the player and spawning
// the room's enemy and boss list.
func New(room *rooms.Room) *World {
	w := &World{Room: room}
	w.Player = NewPlayer(playerStart(room))
	w.populate()
	return w
}

// playerStart picks the player position: centered above the room
// floor unless the room is degenerate.
func playerStart(room *rooms.Room) fx.Vec2 {
	return fx.Vec2{
		X: fx.FromInt(2*physics.TileSize + physics.TileSize/2),
		Y: fx.FromInt((room.Height-2)*physics.TileSize) - playerHalfHStand,
	}
}

// populate spawns the room's listed enemies and boss.
func (w *World) populate() {
	for _, sp := range w.Room.Spawns {
		pos := fx.Vec2{
			X: fx.FromInt(sp.TileX*physics.TileSize + physics.TileSize/2),
			Y: fx.FromInt(sp.TileY*physics.TileSize + physics.TileSize/2),
		}
		if sp.Boss {
			if typ, ok := bossTypeNames[sp.Type]; ok {
				w.Boss.Spawn(w, typ, pos)
			}
			continue
		}
		if typ, ok := enemyTypeNames[sp.Type]; ok {
			w.Enemies.Spawn(typ, pos)
		}
	}
}

// ChangeRoom swaps the loaded room and repopulates the pools. The
// player keeps health, ammo, and equipment.
func (w *World) ChangeRoom(room *rooms.Room, at fx.Vec2) {
	w.Room = room
	w.Player.Body.Pos = at
	w.Player.Body.Vel = fx.Vec2{}
	w.Enemies.ClearAll()
	w.Projectiles.ClearAll()
	w.Boss = Boss{}
	w.populate()
}

// Update advances the simulation one frame in fixed order: player,
// room timers, enemies, boss, projectiles. Single threaded; the tile
// grid's writers all run inside this call.
func (w *World) Update(in Input) {
	w.Frame++

	w.Player.Update(w, in)
	w.Room.Update()
	w.Enemies.Update(w)
	w.Boss.Update(w)
	w.Projectiles.Update(w)
}

// IsBossActive reports whether a boss fight is running.
func (w *World) IsBossActive() bool { return w.Boss.Active }

// shake forwards a camera shake request to the frontend hook.
func (w *World) shake(magnitude int) {
	if w.OnShake != nil {
		w.OnShake(magnitude)
	}
}
