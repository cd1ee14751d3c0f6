package sim

import "github.com/milk9111/cavernfall/fx"

// Phantoon drifts invisibly, materializes, then opens its eye for a
// long vulnerable window while raining flames. Below half health the
// whole rhythm doubles in speed.
type phantoonMachine struct {
	phase int
	timer int
	angle int
}

const (
	phDrift = iota
	phMaterialize
	phEyeOpen
)

const (
	phDriftFrames       = 160
	phMaterializeFrames = 40
	phEyeFrames         = 100
	phFlameInterval     = 20
	phDriftRadius       = 40
)

// enraged reports the faster second-half rhythm.
func phEnraged(b *Boss) bool { return b.HP < b.MaxHP/2 }

func phScale(b *Boss, frames int) int {
	if phEnraged(b) {
		return frames / 2
	}
	return frames
}

func (m *phantoonMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = phDrift
	m.timer = phDriftFrames
}

func (m *phantoonMachine) update(b *Boss, w *World) {
	switch m.phase {
	case phDrift:
		m.angle += 2
		b.Pos.X = b.SpawnPos.X + fx.Mul(fx.Sin(m.angle), fx.FromInt(phDriftRadius))
		b.Pos.Y = b.SpawnPos.Y + fx.Mul(fx.Cos(m.angle), fx.FromInt(phDriftRadius/2))
		m.timer--
		if m.timer <= 0 {
			m.phase = phMaterialize
			m.timer = phMaterializeFrames
		}
	case phMaterialize:
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = true
			m.phase = phEyeOpen
			m.timer = phScale(b, phEyeFrames)
		}
	case phEyeOpen:
		if m.timer%phFlameInterval == 0 {
			b.fireAt(w, fx.FromInt(2))
		}
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = false
			m.phase = phDrift
			m.timer = phScale(b, phDriftFrames)
		}
	}
}

func (m *phantoonMachine) kill(b *Boss, w *World) bool { return true }
