package sim

import "github.com/milk9111/cavernfall/fx"

// Botwoon weaves a serpentine figure around its anchor, untouchable
// until it surfaces to spit, which is the player's opening.
type botwoonMachine struct {
	phase int
	timer int
	angle int
}

const (
	botWeave = iota
	botSurfaced
)

const (
	botWeaveFrames   = 240
	botSurfaceFrames = 90
	botWeaveRadiusX  = 48
	botWeaveRadiusY  = 24
	botSpreadShots   = 4
)

func (m *botwoonMachine) enter(b *Boss, w *World) {
	b.Vulnerable = false
	m.phase = botWeave
	m.timer = botWeaveFrames
}

func (m *botwoonMachine) update(b *Boss, w *World) {
	switch m.phase {
	case botWeave:
		m.angle += 3
		b.Pos.X = b.SpawnPos.X + fx.Mul(fx.Sin(m.angle), fx.FromInt(botWeaveRadiusX))
		b.Pos.Y = b.SpawnPos.Y + fx.Mul(fx.Sin(m.angle*2), fx.FromInt(botWeaveRadiusY))
		m.timer--
		if m.timer <= 0 {
			b.Pos = b.SpawnPos
			b.Vulnerable = true
			m.phase = botSurfaced
			m.timer = botSurfaceFrames

			// four-shot spread on surfacing
			for i := 0; i < botSpreadShots; i++ {
				angle := 160 + i*12 // fan across the lower-left arc
				vel := fx.Vec2{
					X: fx.Mul(fx.Cos(angle), fx.FromInt(2)),
					Y: fx.Mul(fx.Sin(angle), fx.FromInt(2)),
				}
				if w.Player.Body.Pos.X > b.Pos.X {
					vel.X = -vel.X
				}
				w.Projectiles.Spawn(ProjEnemyBullet, OwnerEnemy, b.Pos, vel)
			}
		}
	case botSurfaced:
		m.timer--
		if m.timer <= 0 {
			b.Vulnerable = false
			m.phase = botWeave
			m.timer = botWeaveFrames
		}
	}
}

func (m *botwoonMachine) kill(b *Boss, w *World) bool { return true }
