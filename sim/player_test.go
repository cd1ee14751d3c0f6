package sim

import (
	"testing"

	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
	"github.com/milk9111/cavernfall/rooms"
)

// standPlayer parks the player exactly on the arena floor.
func standPlayer(w *World) {
	w.Player.Body.Pos = fx.Vec2{
		X: fx.FromInt(10 * physics.TileSize),
		Y: fx.FromInt(14*physics.TileSize) - playerHalfHStand,
	}
	w.Player.Body.Vel = fx.Vec2{}
}

func TestPlayerStandsOnFloor(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)

	for i := 0; i < 10; i++ {
		w.Player.Update(w, Input{})
	}
	if !w.Player.InState(stateStanding) {
		t.Errorf("state = %s, want standing", w.Player.StateName())
	}
	if bottom := w.Player.Body.Pos.Y + playerHalfHStand; bottom != fx.FromInt(14*physics.TileSize) {
		t.Errorf("player bottom = %#x, want the floor top", bottom)
	}
}

func TestPlayerRunAndReturnToStand(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Right: true})
	if !w.Player.InState(stateRunning) {
		t.Fatalf("state = %s, want running", w.Player.StateName())
	}
	if w.Player.FacingLeft {
		t.Error("moving right should face right")
	}

	w.Player.Update(w, Input{Right: true})
	if w.Player.Body.Vel.X != physics.WalkSpeed {
		t.Errorf("walk vel = %#x, want %#x", w.Player.Body.Vel.X, physics.WalkSpeed)
	}

	w.Player.Update(w, Input{Right: true, Run: true})
	if w.Player.Body.Vel.X != physics.RunSpeed {
		t.Errorf("run vel = %#x, want %#x", w.Player.Body.Vel.X, physics.RunSpeed)
	}

	w.Player.Update(w, Input{})
	if !w.Player.InState(stateStanding) {
		t.Errorf("state = %s, want standing after input release", w.Player.StateName())
	}
}

func TestPlayerJumpAndVariableHeight(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Jump: true, JumpPressed: true})
	if !w.Player.InState(stateJumping) {
		t.Fatalf("state = %s, want jumping", w.Player.StateName())
	}
	wantVel := -physics.JumpVelNormal + physics.GravityAir
	if w.Player.Body.Vel.Y != wantVel {
		t.Errorf("launch vel after gravity = %#x, want %#x", w.Player.Body.Vel.Y, wantVel)
	}

	// releasing jump caps the rise at one pixel per frame
	w.Player.Update(w, Input{})
	if w.Player.Body.Vel.Y < -fx.One {
		t.Errorf("released-jump vel = %#x, should be clamped to -1.0", w.Player.Body.Vel.Y)
	}

	// it falls back and lands
	for i := 0; i < 200 && !w.Player.InState(stateStanding); i++ {
		w.Player.Update(w, Input{})
	}
	if !w.Player.InState(stateStanding) {
		t.Error("player never landed")
	}
}

func TestPlayerSpinJumpFromRun(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})
	w.Player.Update(w, Input{Right: true})

	w.Player.Update(w, Input{Right: true, Jump: true, JumpPressed: true})
	if !w.Player.InState(stateSpinJumping) {
		t.Errorf("state = %s, want spin_jumping", w.Player.StateName())
	}
}

func TestPlayerHiJumpBoots(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Equipment |= EquipHiJump
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Jump: true, JumpPressed: true})
	want := -physics.JumpVelHiJump + physics.GravityAir
	if w.Player.Body.Vel.Y != want {
		t.Errorf("hi-jump vel = %#x, want %#x", w.Player.Body.Vel.Y, want)
	}
}

func TestPlayerApexTransitionsToFalling(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})
	w.Player.Update(w, Input{Jump: true, JumpPressed: true})

	for i := 0; i < 120; i++ {
		w.Player.Update(w, Input{Jump: true})
		if w.Player.Body.Vel.Y >= 0 {
			break
		}
	}
	if !w.Player.InState(stateFalling) {
		t.Errorf("state = %s at apex, want falling", w.Player.StateName())
	}
}

func TestPlayerCrouchAndMorph(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Down: true, DownPressed: true})
	if !w.Player.InState(stateCrouching) {
		t.Fatalf("state = %s, want crouching", w.Player.StateName())
	}
	if w.Player.Body.Hitbox.HalfH != playerHalfHCrouch {
		t.Errorf("crouch half height = %#x", w.Player.Body.Hitbox.HalfH)
	}

	// no morph ball yet: second down press does nothing
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	if !w.Player.InState(stateCrouching) {
		t.Fatal("morphed without the morph ball")
	}

	w.Player.Equipment |= EquipMorphBall
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	if !w.Player.InState(stateMorphball) {
		t.Fatalf("state = %s, want morphball", w.Player.StateName())
	}
	if w.Player.Body.Hitbox.HalfH != playerHalfHMorph {
		t.Errorf("morph half height = %#x", w.Player.Body.Hitbox.HalfH)
	}

	// bottom edge must not have moved across stance changes
	if bottom := w.Player.Body.Pos.Y + w.Player.Body.Hitbox.HalfH; bottom != fx.FromInt(14*physics.TileSize) {
		t.Errorf("bottom edge drifted to %#x", bottom)
	}

	w.Player.Update(w, Input{Up: true})
	if !w.Player.InState(stateCrouching) {
		t.Errorf("state = %s, want crouching after unmorph", w.Player.StateName())
	}
}

func TestPlayerCannotStandWithoutHeadroom(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Equipment |= EquipMorphBall
	w.Player.Update(w, Input{})
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	if !w.Player.InState(stateMorphball) {
		t.Fatal("setup: expected morphball")
	}

	// seal a ceiling low enough for a ball but not a crouch
	for tx := 0; tx < 20; tx++ {
		w.Room.SetTile(tx, 12, physics.TileSolid)
	}

	w.Player.Update(w, Input{Up: true})
	if !w.Player.InState(stateMorphball) {
		t.Errorf("state = %s, should stay morphed under a low ceiling", w.Player.StateName())
	}
}

func TestPlayerDamageKnockbackAndInvuln(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	from := w.Player.Body.Pos.X + fx.FromInt(10)
	w.Player.Damage(w, 30, from)

	if w.Player.HP != 69 {
		t.Errorf("hp = %d, want 69", w.Player.HP)
	}
	if !w.Player.InState(stateDamage) {
		t.Fatalf("state = %s, want damage", w.Player.StateName())
	}
	if w.Player.Body.Vel.X != -physics.KnockbackVelX {
		t.Errorf("knockback x = %#x, want %#x", w.Player.Body.Vel.X, -physics.KnockbackVelX)
	}
	if w.Player.Body.Vel.Y != -physics.KnockbackVelY {
		t.Errorf("knockback y = %#x, want %#x", w.Player.Body.Vel.Y, -physics.KnockbackVelY)
	}

	// i-frames absorb the second hit completely
	w.Player.Damage(w, 30, from)
	if w.Player.HP != 69 {
		t.Errorf("hp = %d after invulnerable hit, want 69", w.Player.HP)
	}

	// knockback window runs out and control returns
	for i := 0; i < physics.KnockbackFrames+1; i++ {
		w.Player.Update(w, Input{})
	}
	if w.Player.InState(stateDamage) {
		t.Error("damage state never expired")
	}
}

func TestPlayerDeath(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	w.Player.Damage(w, 999, 0)

	if w.Player.Alive {
		t.Fatal("player should be dead")
	}
	if w.Player.HP != 0 {
		t.Errorf("hp = %d, want 0", w.Player.HP)
	}
	if !w.Player.InState(stateDeath) {
		t.Errorf("state = %s, want death", w.Player.StateName())
	}
	if w.Player.DeathTimer != playerDeathFrames {
		t.Errorf("death timer = %d", w.Player.DeathTimer)
	}

	// dead players ignore input
	w.Player.Update(w, Input{Right: true, JumpPressed: true})
	if w.Player.Body.Vel.X != 0 {
		t.Error("corpse moved")
	}
}

func TestPlayerSpikeDamageAndBounce(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})
	w.Room.SetTile(10, 14, physics.TileSpike)

	hpBefore := w.Player.HP
	w.Player.Update(w, Input{})

	if w.Player.HP != hpBefore-spikeDamage {
		t.Errorf("hp = %d, want %d", w.Player.HP, hpBefore-spikeDamage)
	}
	if w.Player.Body.Vel.Y != -physics.KnockbackVelY {
		t.Errorf("spike bounce vel = %#x", w.Player.Body.Vel.Y)
	}
}

func TestPlayerItemPickups(t *testing.T) {
	w := newTestWorld()
	p := &w.Player

	cases := []struct {
		name  string
		kind  rooms.ItemKind
		check func() bool
	}{
		{"energy_tank", rooms.ItemEnergyTank, func() bool { return p.MaxHP == 199 && p.HP == 199 }},
		{"missile_tank", rooms.ItemMissileTank, func() bool { return p.Ammo.MaxMissiles == 5 && p.Ammo.Missiles == 5 }},
		{"super_tank", rooms.ItemSuperTank, func() bool { return p.Ammo.MaxSupers == 5 }},
		{"power_bomb_tank", rooms.ItemPowerBombTank, func() bool { return p.Ammo.MaxPowerBombs == 5 }},
		{"morph_ball", rooms.ItemMorphBall, func() bool { return p.Equipment.Has(EquipMorphBall) }},
		{"plasma", rooms.ItemPlasma, func() bool { return p.Equipment.Has(EquipPlasma) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.ApplyItem(c.kind)
			if !c.check() {
				t.Errorf("pickup %s not applied", c.name)
			}
		})
	}
}

func TestPlayerBeamPriority(t *testing.T) {
	w := newTestWorld()
	p := &w.Player

	cases := []struct {
		name  string
		equip Equipment
		want  ProjectileType
	}{
		{"power", 0, ProjPowerBeam},
		{"ice", EquipIceBeam, ProjIceBeam},
		{"wave_over_ice", EquipIceBeam | EquipWaveBeam, ProjWaveBeam},
		{"spazer_over_wave", EquipWaveBeam | EquipSpazer, ProjSpazer},
		{"plasma_over_all", EquipIceBeam | EquipWaveBeam | EquipSpazer | EquipPlasma, ProjPlasma},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p.Equipment = c.equip
			if got := p.beamType(); got != c.want {
				t.Errorf("beamType() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPlayerFireSpawnsProjectile(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Fire: true, FirePressed: true})
	if w.Projectiles.Count() != 1 {
		t.Fatalf("projectile count = %d, want 1", w.Projectiles.Count())
	}
	pr := w.Projectiles.At(0)
	if pr.Type != ProjPowerBeam || pr.Owner != OwnerPlayer {
		t.Errorf("spawned %v owned by %v", pr.Type, pr.Owner)
	}
	if pr.Vel.X <= 0 {
		t.Error("facing right, shot should travel right")
	}

	// cooldown swallows an immediate second press
	w.Player.Update(w, Input{Fire: true, FirePressed: true})
	if w.Projectiles.Count() != 1 {
		t.Error("fire cooldown ignored")
	}
}

func TestPlayerBeamAutofiresWhileHeld(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Update(w, Input{})

	// one press, then hold: a shot every time the cooldown runs out
	w.Player.Update(w, Input{Fire: true, FirePressed: true})
	for i := 0; i < 2*beamCooldownFrames; i++ {
		w.Player.Update(w, Input{Fire: true})
	}
	if got := w.Projectiles.Count(); got != 3 {
		t.Errorf("held beam fired %d shots, want 3", got)
	}
}

func TestPlayerMissileNeedsPressPerShot(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Ammo.Missiles = 5
	w.Player.Ammo.MaxMissiles = 5
	w.Player.Weapon = WeaponMissile
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{Fire: true, FirePressed: true})
	for i := 0; i < 30; i++ {
		w.Player.Update(w, Input{Fire: true})
	}
	if w.Player.Ammo.Missiles != 4 {
		t.Errorf("held fire spent %d missiles, want 1", 5-w.Player.Ammo.Missiles)
	}
}

func TestPlayerMissileConsumesAmmo(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Ammo.Missiles = 2
	w.Player.Ammo.MaxMissiles = 2
	w.Player.Weapon = WeaponMissile
	w.Player.Update(w, Input{})

	w.Player.Update(w, Input{FirePressed: true})
	if w.Player.Ammo.Missiles != 1 {
		t.Errorf("missiles = %d, want 1", w.Player.Ammo.Missiles)
	}
	if w.Projectiles.Count() != 1 || w.Projectiles.At(0).Type != ProjMissile {
		t.Fatal("missile not spawned")
	}

	// out of ammo: nothing fires
	w.Player.Ammo.Missiles = 0
	w.Player.FireCooldown = 0
	w.Player.Update(w, Input{FirePressed: true})
	if w.Projectiles.Count() != 1 {
		t.Error("fired a missile with empty ammo")
	}
}

func TestPlayerBombsOnlyInMorph(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	w.Player.Equipment = EquipMorphBall | EquipBombs
	w.Player.Update(w, Input{})
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	w.Player.Update(w, Input{Down: true, DownPressed: true})
	if !w.Player.InState(stateMorphball) {
		t.Fatal("setup: expected morphball")
	}

	w.Player.Update(w, Input{FirePressed: true})
	if w.Projectiles.Count() != 1 || w.Projectiles.At(0).Type != ProjBomb {
		t.Fatal("morph ball with bombs should lay a bomb")
	}

	// without the bombs upgrade nothing comes out
	w.Player.Equipment = EquipMorphBall
	w.Player.FireCooldown = 0
	w.Player.Update(w, Input{FirePressed: true})
	if w.Projectiles.Count() != 1 {
		t.Error("laid a bomb without the upgrade")
	}
}

func TestPlayerLavaTicksDamage(t *testing.T) {
	w := newTestWorld()
	standPlayer(w)
	// flood the floor tiles the player stands in with lava
	for tx := 0; tx < 20; tx++ {
		w.Room.SetTile(tx, 12, physics.TileLava)
		w.Room.SetTile(tx, 13, physics.TileLava)
	}

	hpBefore := w.Player.HP
	for i := 0; i < lavaDamagePeriod+2; i++ {
		w.Player.Update(w, Input{})
	}
	if w.Player.HP >= hpBefore {
		t.Error("lava never hurt the player")
	}

	// gravity suit makes lava safe
	standPlayer(w)
	w.Player.HP = w.Player.MaxHP
	w.Player.Equipment |= EquipGravity
	for i := 0; i < lavaDamagePeriod*3; i++ {
		w.Player.Update(w, Input{})
	}
	if w.Player.HP != w.Player.MaxHP {
		t.Error("gravity suit should negate lava")
	}
}
