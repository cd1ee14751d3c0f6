package sim

import "github.com/milk9111/cavernfall/fx"

// Ridley is always vulnerable; the fight instead escalates. His idle
// gaps shrink and his fireball volleys grow as his health drops.
type ridleyMachine struct {
	phase int
	timer int
	angle int
	shots int
}

const (
	ridIdle = iota
	ridSwoop
	ridVolley
)

const (
	ridIdleMin     = 20
	ridIdleSpan    = 40 // extra idle frames at full health
	ridSwoopFrames = 60
	ridSwoopSpeed  = 2
	ridVolleyMin   = 2
	ridVolleySpan  = 4 // extra shots at zero health
	ridShotGap     = 8
)

// ridIdleFrames scales the idle gap with the remaining HP fraction:
// full health idles longest.
func ridIdleFrames(b *Boss) int {
	return ridIdleMin + ridIdleSpan*b.HP/b.MaxHP
}

// ridVolleySize scales shot count with missing health.
func ridVolleySize(b *Boss) int {
	return ridVolleyMin + ridVolleySpan*(b.MaxHP-b.HP)/b.MaxHP
}

func (m *ridleyMachine) enter(b *Boss, w *World) {
	b.Vulnerable = true
	m.phase = ridIdle
	m.timer = ridIdleFrames(b)
}

func (m *ridleyMachine) update(b *Boss, w *World) {
	switch m.phase {
	case ridIdle:
		m.timer--
		if m.timer <= 0 {
			m.phase = ridSwoop
			m.timer = ridSwoopFrames
		}
	case ridSwoop:
		step := fx.FromInt(ridSwoopSpeed)
		if w.Player.Body.Pos.X < b.Pos.X {
			step = -step
		}
		b.Pos.X += step
		m.angle += 6
		b.Pos.Y = b.SpawnPos.Y + fx.Mul(fx.Sin(m.angle), fx.FromInt(24))
		m.timer--
		if m.timer <= 0 {
			m.phase = ridVolley
			m.shots = ridVolleySize(b)
			m.timer = 0
		}
	case ridVolley:
		if m.timer%ridShotGap == 0 && m.shots > 0 {
			m.shots--
			b.fireAt(w, fx.FromInt(3))
		}
		m.timer++
		if m.shots <= 0 {
			m.phase = ridIdle
			m.timer = ridIdleFrames(b)
		}
	}
}

func (m *ridleyMachine) kill(b *Boss, w *World) bool { return true }
