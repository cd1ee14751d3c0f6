package sim

import "github.com/milk9111/cavernfall/fx"

// Kraid rises out of the floor, then cycles belly-spike volleys with a
// mouth-open window that is the only time he can be hurt.
type kraidMachine struct {
	phase int
	timer int
}

const (
	kraidRise = iota
	kraidVolley
	kraidMouthOpen
)

const (
	kraidRiseFrames  = 90
	kraidRiseHeight  = 64
	kraidCycleFrames = 120
	kraidMouthFrames = 90
	kraidVolleyEvery = 40
)

func (m *kraidMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = kraidRise
	m.timer = kraidRiseFrames
}

func (m *kraidMachine) update(b *Boss, w *World) {
	switch m.phase {
	case kraidRise:
		b.Pos.Y -= fx.Div(fx.FromInt(kraidRiseHeight), fx.FromInt(kraidRiseFrames))
		m.timer--
		if m.timer <= 0 {
			m.phase = kraidVolley
			m.timer = kraidCycleFrames
		}
	case kraidVolley:
		if m.timer%kraidVolleyEvery == 0 {
			// three-spike spread off the belly
			for _, vy := range []fx.F32{-fx.One, 0, fx.One} {
				dir := fx.FromInt(3)
				if w.Player.Body.Pos.X < b.Pos.X {
					dir = -dir
				}
				w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, b.Pos, fx.Vec2{X: dir, Y: vy})
			}
		}
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = true
			m.phase = kraidMouthOpen
			m.timer = kraidMouthFrames
		}
	case kraidMouthOpen:
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = false
			m.phase = kraidVolley
			m.timer = kraidCycleFrames
		}
	}
}

func (m *kraidMachine) kill(b *Boss, w *World) bool { return true }
