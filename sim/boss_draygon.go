package sim

import "github.com/milk9111/cavernfall/fx"

// Draygon alternates wall perches with swooping passes across the
// arena. It can only be hurt mid-swoop; each perch spits a gunk shot.
type draygonMachine struct {
	phase     int
	timer     int
	angle     int
	leftPerch bool
}

const (
	drPerch = iota
	drSwoop
)

const (
	drPerchFrames = 80
	drSwoopSpeed  = 3
	drSwoopArc    = 32
	drPerchInset  = 32 // pixels from the room edge
)

func (m *draygonMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = drPerch
	m.timer = drPerchFrames
	m.leftPerch = true
	b.Pos.X = fx.FromInt(drPerchInset)
	b.Pos.Y = b.SpawnPos.Y
}

func (m *draygonMachine) perchX(w *World) fx.F32 {
	if m.leftPerch {
		return fx.FromInt(drPerchInset)
	}
	return fx.FromInt(w.Room.PixelWidth() - drPerchInset)
}

func (m *draygonMachine) update(b *Boss, w *World) {
	switch m.phase {
	case drPerch:
		m.timer--
		if m.timer == drPerchFrames/2 {
			b.fireAt(w, fx.FromInt(2))
		}
		if m.timer <= 0 {
			m.leftPerch = !m.leftPerch
			b.Vulnerable = true
			m.phase = drSwoop
			m.angle = 0
		}
	case drSwoop:
		step := fx.FromInt(drSwoopSpeed)
		target := m.perchX(w)
		if target < b.Pos.X {
			step = -step
		}
		b.Pos.X += step
		m.angle += 4
		b.Pos.Y = b.SpawnPos.Y + fx.Mul(fx.Sin(m.angle), fx.FromInt(drSwoopArc))

		if fx.Abs(b.Pos.X-target) <= fx.FromInt(drSwoopSpeed) {
			b.Pos.X = target
			b.Pos.Y = b.SpawnPos.Y
			b.Vulnerable = false
			m.phase = drPerch
			m.timer = drPerchFrames
		}
	}
}

func (m *draygonMachine) kill(b *Boss, w *World) bool { return true }
