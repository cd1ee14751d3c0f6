package sim

import "github.com/milk9111/cavernfall/fx"

// Crocomire is never worn down by damage. Every registered hit shoves
// it back toward the lava pit behind it, while its own advance walks
// the ground back; only pushing it past the threshold line wins.
type crocomireMachine struct {
	phase int
	timer int
	spits int
}

const (
	crocAdvance = iota
	crocSpit
	crocLunge
	crocFlinch
	crocFalling
)

const (
	crocPushPerHit   = 8   // pixels toward the pit per hit
	crocThreshold    = 160 // pixels past spawn where it topples
	crocFlinchFrames = 20
	crocSpitInterval = 90
	crocLungeFrames  = 30
	crocFallFrames   = 45
	crocLungeEvery   = 3
)

func (m *crocomireMachine) enter(b *Boss, w *World) {
	m.phase = crocAdvance
	m.timer = crocSpitInterval
}

// interceptHit consumes every hit: the push replaces the HP deduction.
// The fall triggers on position, not hit count, so ground the boss
// wins back between hits counts against the player.
func (m *crocomireMachine) interceptHit(b *Boss, w *World, dmg int) bool {
	if m.phase == crocFalling {
		return true
	}

	b.Pos.X += fx.FromInt(crocPushPerHit)

	m.phase = crocFlinch
	m.timer = crocFlinchFrames
	w.shake(2)

	edge := b.SpawnPos.X + fx.FromInt(crocThreshold)
	if b.Pos.X >= edge {
		b.Pos.X = edge
		m.phase = crocFalling
		m.timer = crocFallFrames
		b.Vulnerable = false
	}
	return true
}

func (m *crocomireMachine) update(b *Boss, w *World) {
	switch m.phase {
	case crocAdvance:
		step := fx.Half
		if w.Player.Body.Pos.X < b.Pos.X {
			step = -step
		}
		b.Pos.X += step
		m.timer--
		if m.timer <= 0 {
			m.spits++
			if m.spits%crocLungeEvery == 0 {
				m.phase = crocLunge
				m.timer = crocLungeFrames
			} else {
				m.phase = crocSpit
			}
		}
	case crocSpit:
		b.fireAt(w, fx.FromInt(2))
		m.phase = crocAdvance
		m.timer = crocSpitInterval
	case crocLunge:
		step := fx.FromInt(2)
		if w.Player.Body.Pos.X < b.Pos.X {
			step = -step
		}
		b.Pos.X += step
		m.timer--
		if m.timer <= 0 {
			m.phase = crocAdvance
			m.timer = crocSpitInterval
		}
	case crocFlinch:
		m.timer--
		if m.timer <= 0 {
			m.phase = crocAdvance
			m.timer = crocSpitInterval
		}
	case crocFalling:
		b.Pos.Y += fx.FromInt(2)
		m.timer--
		if m.timer <= 0 {
			b.startDeath()
		}
	}
}

func (m *crocomireMachine) kill(b *Boss, w *World) bool { return true }
