package sim

import "github.com/milk9111/cavernfall/fx"

// Bomb Torizo plays dead as a statue until the player walks close,
// then alternates bomb throws with lunges.
type bombTorizoMachine struct {
	phase   int
	timer   int
	attacks int
}

const (
	btDormant = iota
	btWake
	btIdle
	btThrow
	btLunge
)

const (
	btWakeRange   = 80 // pixels
	btWakeFrames  = 60
	btIdleBase    = 30
	btLungeFrames = 20
)

func (m *bombTorizoMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = btDormant
}

func (m *bombTorizoMachine) update(b *Boss, w *World) {
	switch m.phase {
	case btDormant:
		if fx.Abs(w.Player.Body.Pos.X-b.Pos.X) < fx.FromInt(btWakeRange) {
			m.phase = btWake
			m.timer = btWakeFrames
		}
	case btWake:
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = true
			m.startIdle()
		}
	case btIdle:
		m.timer--
		if m.timer <= 0 {
			m.attacks++
			if m.attacks%2 == 0 {
				m.phase = btLunge
				m.timer = btLungeFrames
			} else {
				m.phase = btThrow
			}
		}
	case btThrow:
		// lobbed bomb: forward and upward, gravity is faked by the
		// halved vertical aim of fireAt
		dir := fx.FromInt(2)
		if w.Player.Body.Pos.X < b.Pos.X {
			dir = -dir
		}
		w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, b.Pos, fx.Vec2{X: dir, Y: -fx.One})
		m.startIdle()
	case btLunge:
		step := fx.FromInt(2)
		if w.Player.Body.Pos.X < b.Pos.X {
			step = -step
		}
		b.Pos.X += step
		m.timer--
		if m.timer <= 0 {
			m.startIdle()
		}
	}
}

func (m *bombTorizoMachine) startIdle() {
	m.phase = btIdle
	m.timer = btIdleBase + m.attacks%60
}

func (m *bombTorizoMachine) kill(b *Boss, w *World) bool { return true }

// Golden Torizo runs the same statue-warrior cycle but catches any
// single hit heavy enough to matter and throws it back.
type goldenTorizoMachine struct {
	bombTorizoMachine
	counterShots int
}

// gtCatchThreshold is the damage a single hit needs before the catch
// triggers instead of normal damage.
const gtCatchThreshold = 300

func (m *goldenTorizoMachine) interceptHit(b *Boss, w *World, dmg int) bool {
	if dmg < gtCatchThreshold {
		return false
	}
	// caught: no HP change, answer with a volley
	m.counterShots += 3
	return true
}

func (m *goldenTorizoMachine) update(b *Boss, w *World) {
	if m.counterShots > 0 && b.Vulnerable {
		m.counterShots--
		b.fireAt(w, fx.FromInt(3))
	}
	m.bombTorizoMachine.update(b, w)
}
