package sim

import "github.com/milk9111/cavernfall/fx"

// Mother Brain fights in three escalating phases. Draining a phase's
// health bar refills it at the next tier instead of killing her; only
// the third bar runs the death sequence.
type motherBrainMachine struct {
	phase int // 1..3
	timer int
}

// mbPhaseHP holds the bar for each phase, indexed by phase number.
var mbPhaseHP = [4]int{0, 3000, 18000, 36000}

const mbPhaseCount = 3

// mbFireInterval shrinks per phase.
var mbFireInterval = [4]int{0, 60, 40, 25}

func (m *motherBrainMachine) enter(b *Boss, w *World) {
	b.Vulnerable = true
	m.phase = 1
	m.timer = mbFireInterval[m.phase]
}

func (m *motherBrainMachine) update(b *Boss, w *World) {
	m.timer--
	if m.timer <= 0 {
		b.fireAt(w, fx.FromInt(2))
		m.timer = mbFireInterval[m.phase]
	}
}

// kill advances the phase instead of dying until the final bar.
func (m *motherBrainMachine) kill(b *Boss, w *World) bool {
	if m.phase < mbPhaseCount {
		m.phase++
		b.HP = mbPhaseHP[m.phase]
		b.MaxHP = mbPhaseHP[m.phase]
		b.Invuln = 60
		w.shake(8)
		return false
	}
	return true
}

// Phase exposes the current phase for the HUD.
func (m *motherBrainMachine) Phase() int { return m.phase }
