package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
	"github.com/milk9111/cavernfall/rooms"
	"github.com/milk9111/cavernfall/sim"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the loaded room in a window",
	Long: `Open a window and play the loaded room.

Controls:
  Arrows     - Move / aim up / crouch
  Z          - Jump
  X          - Fire
  Shift      - Run
  A          - Cycle weapon
  Esc        - Pause`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Hot-reload the room spec on change")
}

func loadRoom() (*rooms.Room, error) {
	if flagRoom == "" {
		return rooms.TestRoom(), nil
	}
	return rooms.LoadRoom(flagRoom)
}

func runPlay(cmd *cobra.Command, args []string) error {
	room, err := loadRoom()
	if err != nil {
		return err
	}

	g := &game{world: sim.New(room)}
	g.world.OnShake = g.startShake
	g.pauseUI = newPauseUI(g)

	if flagWatch && flagRoom != "" {
		watcher, err := rooms.NewWatcher(filepath.Dir(flagRoom))
		if err != nil {
			return fmt.Errorf("watch %s: %w", flagRoom, err)
		}
		defer watcher.Close()
		g.watcher = watcher
		log.Info("watching room spec", "path", flagRoom)
	}

	log.Info("starting", "room", room.Name, "size", fmt.Sprintf("%dx%d", room.Width, room.Height))

	ebiten.SetWindowSize(room.PixelWidth()*3, room.PixelHeight()*3)
	ebiten.SetWindowTitle("cavernfall")
	return ebiten.RunGame(g)
}

type game struct {
	world   *sim.World
	watcher *rooms.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	frame     int
	shake     *gween.Tween
	shakeX    float32
	shakeY    float32
	fade      *gween.Tween
	fadeAlpha float32
}

// startShake retriggers the camera shake tween; magnitude is pixels.
func (g *game) startShake(magnitude int) {
	g.shake = gween.New(float32(magnitude), 0, 0.4, ease.OutQuad)
}

func (g *game) readInput() sim.Input {
	return sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Run:   ebiten.IsKeyPressed(ebiten.KeyShift),

		Jump:        ebiten.IsKeyPressed(ebiten.KeyZ),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyZ),

		Fire:        ebiten.IsKeyPressed(ebiten.KeyX),
		FirePressed: inpututil.IsKeyJustPressed(ebiten.KeyX),

		DownPressed:   inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		SelectPressed: inpututil.IsKeyJustPressed(ebiten.KeyA),
	}
}

func (g *game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.pollWatcher()

	g.frame++
	g.world.Update(g.readInput())

	if g.shake != nil {
		mag, done := g.shake.Update(1.0 / 60.0)
		if done {
			g.shake = nil
			g.shakeX, g.shakeY = 0, 0
		} else {
			// alternate direction every frame for a rattle
			if g.frame%2 == 0 {
				mag = -mag
			}
			g.shakeX, g.shakeY = mag, mag/2
		}
	}

	if g.fade != nil {
		a, done := g.fade.Update(1.0 / 60.0)
		g.fadeAlpha = a
		if done {
			g.fade = nil
			g.fadeAlpha = 0
		}
	}

	if !g.world.Player.Alive && g.world.Player.DeathTimer == 1 {
		g.fade = gween.New(1, 0, 1.0, ease.InQuad)
		g.reload()
	}

	return nil
}

// pollWatcher applies pending hot-reload events.
func (g *game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Info("room spec changed", "path", path)
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Error("watcher", "err", err)
			}
		default:
			return
		}
	}
}

// reload rebuilds the world from the room spec, with a fade.
func (g *game) reload() {
	room, err := loadRoom()
	if err != nil {
		log.Error("reload room", "err", err)
		return
	}
	g.world = sim.New(room)
	g.world.OnShake = g.startShake
	g.fade = gween.New(1, 0, 0.5, ease.InQuad)
}

var tileColors = map[physics.Tile]color.RGBA{
	physics.TileSolid:   colornames.Dimgray,
	physics.TileShot:    colornames.Peru,
	physics.TileBomb:    colornames.Sienna,
	physics.TileCrumble: colornames.Tan,
	physics.TileSave:    colornames.Lightseagreen,
	physics.TileSpike:   colornames.Crimson,
	physics.TileLava:    colornames.Orangered,
	physics.TileWater:   colornames.Steelblue,
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	ox, oy := g.shakeX, g.shakeY
	room := g.world.Room

	for ty := 0; ty < room.Height; ty++ {
		for tx := 0; tx < room.Width; tx++ {
			c, ok := tileColors[room.Tile(tx, ty)]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(tx*physics.TileSize)+ox, float32(ty*physics.TileSize)+oy,
				physics.TileSize, physics.TileSize, c, false)
		}
	}

	for i := range room.Items {
		it := &room.Items[i]
		if it.Collected {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(it.TileX*physics.TileSize)+4+ox, float32(it.TileY*physics.TileSize)+4+oy,
			8, 8, colornames.Gold, false)
	}

	pl := &g.world.Player
	if pl.Alive || pl.DeathTimer > 0 {
		c := colornames.Orange
		if pl.Invuln > 0 && g.frame%4 < 2 {
			c = colornames.White
		}
		drawBoxAt(screen, pl.Body.Pos, pl.Body.Hitbox, c, ox, oy)
	}

	for i := 0; i < g.world.Enemies.Count(); i++ {
		e := g.world.Enemies.At(i)
		c := colornames.Yellowgreen
		if e.Dying {
			c = colornames.Lightyellow
		}
		drawBoxAt(screen, e.Body.Pos, e.Body.Hitbox, c, ox, oy)
	}

	if g.world.Boss.Active {
		b := &g.world.Boss
		c := colornames.Mediumpurple
		if b.Invuln > 0 {
			c = colornames.White
		}
		drawBoxAt(screen, b.Pos, b.Hitbox, c, ox, oy)

		// eye marker on the facing edge
		ex := float32(fx.Float(b.Pos.X+b.Hitbox.HalfW)) - 4 + ox
		if b.FacingLeft {
			ex = float32(fx.Float(b.Pos.X-b.Hitbox.HalfW)) + ox
		}
		ey := float32(fx.Float(b.Pos.Y-b.Hitbox.HalfH)) + 4 + oy
		vector.DrawFilledRect(screen, ex, ey, 4, 4, colornames.Yellow, false)
	}

	for i := 0; i < g.world.Projectiles.Count(); i++ {
		pr := g.world.Projectiles.At(i)
		c := colornames.Skyblue
		if pr.Owner == sim.OwnerEnemy {
			c = colornames.Salmon
		}
		drawBoxAt(screen, pr.Pos, pr.Hitbox, c, ox, oy)
	}

	if g.fadeAlpha > 0 {
		overlay := color.RGBA{A: uint8(g.fadeAlpha * 255)}
		vector.DrawFilledRect(screen, 0, 0,
			float32(room.PixelWidth()), float32(room.PixelHeight()), overlay, false)
	}

	hud := fmt.Sprintf("HP %d/%d  M %d  S %d  %s",
		pl.HP, pl.MaxHP, pl.Ammo.Missiles, pl.Ammo.Supers, pl.StateName())
	if g.world.IsBossActive() {
		hud += fmt.Sprintf("  BOSS %d/%d", g.world.Boss.HP, g.world.Boss.MaxHP)
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func drawBoxAt(screen *ebiten.Image, pos fx.Vec2, box fx.AABB, c color.RGBA, ox, oy float32) {
	x := float32(fx.Float(pos.X-box.HalfW)) + ox
	y := float32(fx.Float(pos.Y-box.HalfH)) + oy
	w := float32(fx.Float(box.HalfW * 2))
	h := float32(fx.Float(box.HalfH * 2))
	vector.DrawFilledRect(screen, x, y, w, h, c, false)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Room.PixelWidth(), g.world.Room.PixelHeight()
}
