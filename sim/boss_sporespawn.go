package sim

import "github.com/milk9111/cavernfall/fx"

// Spore Spawn swings from a ceiling anchor, descends, opens up for a
// vulnerability window while shedding spores, then closes and climbs
// back up.
type sporeSpawnMachine struct {
	phase int
	timer int
	angle int
}

const (
	ssSwing = iota
	ssDescend
	ssOpen
	ssVulnerable
	ssClose
	ssAscend
)

const (
	ssSwingFrames   = 180
	ssOpenFrames    = 30
	ssVulnFrames    = 120
	ssSporeInterval = 45
	ssDropDepth     = 64
	ssSwingRadius   = 48
)

func (m *sporeSpawnMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = ssSwing
}

func (m *sporeSpawnMachine) update(b *Boss, w *World) {
	switch m.phase {
	case ssSwing:
		m.angle += 2
		b.Pos.X = b.SpawnPos.X + fx.Mul(fx.Sin(m.angle), fx.FromInt(ssSwingRadius))
		m.timer++
		if m.timer >= ssSwingFrames {
			m.timer = 0
			b.Pos.X = b.SpawnPos.X
			m.phase = ssDescend
		}
	case ssDescend:
		b.Pos.Y += fx.One
		if b.Pos.Y >= b.SpawnPos.Y+fx.FromInt(ssDropDepth) {
			b.Pos.Y = b.SpawnPos.Y + fx.FromInt(ssDropDepth)
			m.timer = ssOpenFrames
			m.phase = ssOpen
		}
	case ssOpen:
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = true
			m.timer = ssVulnFrames
			m.phase = ssVulnerable
		}
	case ssVulnerable:
		if m.timer%ssSporeInterval == 0 {
			b.fireAt(w, fx.FromInt(2))
		}
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = false
			m.timer = ssOpenFrames
			m.phase = ssClose
		}
	case ssClose:
		m.timer--
		if m.timer <= 0 {
			m.phase = ssAscend
		}
	case ssAscend:
		b.Pos.Y -= fx.One
		if b.Pos.Y <= b.SpawnPos.Y {
			b.Pos.Y = b.SpawnPos.Y
			m.timer = 0
			m.phase = ssSwing
		}
	}
}

func (m *sporeSpawnMachine) kill(b *Boss, w *World) bool { return true }
