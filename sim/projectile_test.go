package sim

import (
	"testing"

	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
)

func TestProjectileSpawnSentinel(t *testing.T) {
	var p ProjectilePool

	if got := p.Spawn(ProjNone, OwnerPlayer, fx.Vec2{}, fx.Vec2{}); got != InvalidSlot {
		t.Errorf("Spawn(none) = %d, want sentinel", got)
	}
	if got := p.Spawn(projTypeCount, OwnerPlayer, fx.Vec2{}, fx.Vec2{}); got != InvalidSlot {
		t.Errorf("Spawn(out of range) = %d, want sentinel", got)
	}

	for i := 0; i < MaxProjectiles; i++ {
		if got := p.Spawn(ProjPowerBeam, OwnerPlayer, fx.Vec2{}, fx.Vec2{}); got != i {
			t.Fatalf("spawn %d returned %d", i, got)
		}
	}
	if got := p.Spawn(ProjPowerBeam, OwnerPlayer, fx.Vec2{}, fx.Vec2{}); got != InvalidSlot {
		t.Error("spawn on a full pool should fail")
	}

	p.ClearAll()
	if p.Count() != 0 {
		t.Errorf("count = %d after ClearAll", p.Count())
	}
	if got := p.Spawn(ProjMissile, OwnerPlayer, fx.Vec2{}, fx.Vec2{}); got != 0 {
		t.Errorf("first spawn after ClearAll = %d, want 0", got)
	}
}

func TestProjectileLifetimeExpires(t *testing.T) {
	w := newTestWorld()
	w.Projectiles.Spawn(ProjPowerBeam, OwnerPlayer, tileCenter(10, 7), fx.Vec2{})

	for f := 0; f < projectileDefs[ProjPowerBeam].Lifetime; f++ {
		w.Projectiles.Update(w)
	}
	if w.Projectiles.Count() != 0 {
		t.Error("beam outlived its lifetime")
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	w := newTestWorld()
	// fire straight at the right wall from next to it
	pos := tileCenter(18, 7)
	w.Projectiles.Spawn(ProjPowerBeam, OwnerPlayer, pos, fx.Vec2{X: projectileDefs[ProjPowerBeam].Speed})

	for f := 0; f < 10 && w.Projectiles.Count() > 0; f++ {
		w.Projectiles.Update(w)
	}
	if w.Projectiles.Count() != 0 {
		t.Error("beam passed through a solid wall")
	}
}

func TestWaveBeamPassesWalls(t *testing.T) {
	w := newTestWorld()
	// a wall column in the middle of the room
	for ty := 1; ty < 14; ty++ {
		w.Room.SetTile(10, ty, physics.TileSolid)
	}

	i := w.Projectiles.Spawn(ProjWaveBeam, OwnerPlayer, tileCenter(8, 7), fx.Vec2{X: projectileDefs[ProjWaveBeam].Speed})
	pr := w.Projectiles.At(i)

	for f := 0; f < 12; f++ {
		w.Projectiles.Update(w)
	}
	if w.Projectiles.Count() != 1 {
		t.Fatal("wave beam died inside the wall")
	}
	if pr.Pos.X <= fx.FromInt(11*physics.TileSize) {
		t.Error("wave beam did not cross the wall")
	}
}

func TestPlayerShotBreaksShotBlock(t *testing.T) {
	w := newTestWorld()
	w.Room.SetTile(12, 7, physics.TileShot)

	w.Projectiles.Spawn(ProjPowerBeam, OwnerPlayer, tileCenter(11, 7), fx.Vec2{X: fx.FromInt(4)})

	for f := 0; f < 8; f++ {
		w.Projectiles.Update(w)
	}
	if w.Room.Tile(12, 7) != physics.TileAir {
		t.Error("shot block survived a player beam")
	}
	if w.Projectiles.Count() != 0 {
		t.Error("beam should be consumed by the block")
	}
}

func TestEnemyShotDoesNotBreakBlocks(t *testing.T) {
	w := newTestWorld()
	w.Room.SetTile(12, 7, physics.TileShot)

	w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, tileCenter(11, 7), fx.Vec2{X: fx.FromInt(2)})

	for f := 0; f < 16; f++ {
		w.Projectiles.Update(w)
	}
	if w.Room.Tile(12, 7) != physics.TileShot {
		t.Error("enemy bullet broke a shot block")
	}
}

func TestBeamHitsEnemy(t *testing.T) {
	w := newTestWorld()
	w.Enemies.ClearAll()
	ei := w.Enemies.Spawn(EnemySidehopper, tileCenter(12, 7))
	e := w.Enemies.At(ei)

	w.Projectiles.Spawn(ProjPowerBeam, OwnerPlayer, tileCenter(10, 7), fx.Vec2{X: fx.FromInt(4)})

	hpBefore := e.HP
	for f := 0; f < 12; f++ {
		w.Projectiles.Update(w)
	}
	if e.HP != hpBefore-projectileDefs[ProjPowerBeam].Damage {
		t.Errorf("enemy hp = %d, want %d", e.HP, hpBefore-projectileDefs[ProjPowerBeam].Damage)
	}
	if w.Projectiles.Count() != 0 {
		t.Error("beam should be consumed on hit")
	}
}

func TestPlasmaPierces(t *testing.T) {
	w := newTestWorld()
	w.Enemies.ClearAll()
	a := w.Enemies.At(w.Enemies.Spawn(EnemySidehopper, tileCenter(11, 7)))
	b := w.Enemies.At(w.Enemies.Spawn(EnemySidehopper, tileCenter(14, 7)))

	w.Projectiles.Spawn(ProjPlasma, OwnerPlayer, tileCenter(9, 7), fx.Vec2{X: fx.FromInt(4)})

	for f := 0; f < 20; f++ {
		w.Projectiles.Update(w)
	}
	if a.HP == enemyDefs[EnemySidehopper].HP {
		t.Error("plasma missed the first enemy")
	}
	if b.HP == enemyDefs[EnemySidehopper].HP {
		t.Error("plasma should pierce through to the second enemy")
	}
}

func TestEnemyBulletHitsOnlyPlayer(t *testing.T) {
	w := newTestWorld()
	w.Enemies.ClearAll()
	w.Player.Body.Pos = tileCenter(12, 13)
	w.Player.Body.Pos.Y = fx.FromInt(14*physics.TileSize) - playerHalfHStand
	ei := w.Enemies.Spawn(EnemySidehopper, tileCenter(10, 13))
	e := w.Enemies.At(ei)

	// bullet fired from the enemy's spot toward the player passes
	// through its owner's kind
	w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, e.Body.Pos, fx.Vec2{X: fx.FromInt(2)})

	hpBefore := w.Player.HP
	for f := 0; f < 30 && w.Projectiles.Count() > 0; f++ {
		w.Projectiles.Update(w)
	}
	if e.HP != enemyDefs[EnemySidehopper].HP {
		t.Error("enemy bullet hurt an enemy")
	}
	if w.Player.HP != hpBefore-projectileDefs[ProjEnemyBullet].Damage {
		t.Errorf("player hp = %d, want %d", w.Player.HP, hpBefore-projectileDefs[ProjEnemyBullet].Damage)
	}
}

func TestBombExplosion(t *testing.T) {
	w := newTestWorld()
	w.Enemies.ClearAll()
	w.Room.SetTile(11, 13, physics.TileBomb)

	bombPos := tileCenter(10, 13)
	w.Projectiles.Spawn(ProjBomb, OwnerPlayer, bombPos, fx.Vec2{})

	// park the player on the bomb in ball form for the bomb jump
	w.Player.Body.Pos = bombPos
	w.Player.Invuln = 0

	ei := w.Enemies.Spawn(EnemyZoomer, tileCenter(10, 13))
	e := w.Enemies.At(ei)

	for f := 0; f < physics.BombTimerFrames-1; f++ {
		w.Projectiles.Update(w)
	}
	if w.Projectiles.Count() != 1 {
		t.Fatal("bomb went off early")
	}
	if e.HP != enemyDefs[EnemyZoomer].HP {
		t.Fatal("bomb damaged before the fuse ran out")
	}

	w.Projectiles.Update(w)

	if w.Projectiles.Count() != 0 {
		t.Error("bomb should be consumed by its explosion")
	}
	if e.HP != enemyDefs[EnemyZoomer].HP-projectileDefs[ProjBomb].Damage {
		t.Errorf("enemy hp = %d after blast", e.HP)
	}
	if w.Room.Tile(11, 13) != physics.TileAir {
		t.Error("bomb block survived an adjacent blast")
	}
	if w.Player.Body.Vel.Y != -physics.BombJumpVel {
		t.Errorf("bomb jump vel = %#x, want %#x", w.Player.Body.Vel.Y, -physics.BombJumpVel)
	}
}

func TestBombIsStationary(t *testing.T) {
	w := newTestWorld()
	pos := tileCenter(10, 13)
	i := w.Projectiles.Spawn(ProjBomb, OwnerPlayer, pos, fx.Vec2{X: fx.FromInt(5), Y: fx.FromInt(5)})
	pr := w.Projectiles.At(i)

	for f := 0; f < 20; f++ {
		w.Projectiles.Update(w)
	}
	if pr.Pos != pos {
		t.Errorf("bomb drifted to %+v", pr.Pos)
	}
}
