package rooms

import (
	"testing"

	"github.com/milk9111/cavernfall/fx"
	"github.com/milk9111/cavernfall/physics"
)

func TestOutOfRangeIsSolid(t *testing.T) {
	r := New("r", 4, 4)
	cases := []struct {
		name   string
		tx, ty int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Tile(c.tx, c.ty); got != physics.TileSolid {
				t.Errorf("Tile(%d, %d) = %#x, want solid", c.tx, c.ty, got)
			}
		})
	}
	if r.Tile(1, 1) != physics.TileAir {
		t.Error("interior tile should start as air")
	}
}

func TestBreakRespectsCause(t *testing.T) {
	r := New("r", 4, 4)
	r.SetTile(1, 1, physics.TileShot)
	r.SetTile(2, 1, physics.TileBomb)

	if r.Break(1, 1, BreakByBomb) {
		t.Error("bomb must not break a shot block")
	}
	if !r.Break(1, 1, BreakByShot) {
		t.Error("shot should break a shot block")
	}
	if r.Tile(1, 1) != physics.TileAir {
		t.Error("broken block should read as air")
	}

	if r.Break(2, 1, BreakByShot) {
		t.Error("shot must not break a bomb block")
	}
	if !r.Break(2, 1, BreakByBomb) {
		t.Error("bomb should break a bomb block")
	}
}

func TestCrumbleTimer(t *testing.T) {
	r := New("r", 4, 4)
	r.SetTile(2, 2, physics.TileCrumble)

	// Untouched crumble blocks never expire.
	for i := 0; i < 100; i++ {
		r.Update()
	}
	if r.Tile(2, 2) != physics.TileCrumble {
		t.Fatal("untouched crumble block decayed")
	}

	r.StandOn(2, 2)
	for i := 0; i < crumbleFrames-1; i++ {
		r.Update()
		if r.Tile(2, 2) != physics.TileCrumble {
			t.Fatalf("crumble block collapsed early on frame %d", i)
		}
		// Standing on it again must not reset the timer.
		r.StandOn(2, 2)
	}
	r.Update()
	if r.Tile(2, 2) != physics.TileAir {
		t.Error("crumble block should be air after the timer expires")
	}
}

func TestStandOnIgnoresOtherTiles(t *testing.T) {
	r := New("r", 4, 4)
	r.SetTile(1, 1, physics.TileSolid)
	r.StandOn(1, 1)
	for i := 0; i < 100; i++ {
		r.Update()
	}
	if r.Tile(1, 1) != physics.TileSolid {
		t.Error("solid tile must never crumble")
	}
}

func TestEnvAt(t *testing.T) {
	r := New("r", 4, 4)
	r.SetTile(1, 1, physics.TileWater)
	r.SetTile(2, 1, physics.TileLava)

	at := func(tx, ty int) fx.Vec2 {
		return fx.Vec2{
			X: fx.FromInt(tx*physics.TileSize + 8),
			Y: fx.FromInt(ty*physics.TileSize + 8),
		}
	}

	if got := r.EnvAt(at(1, 1)); got != physics.EnvWater {
		t.Errorf("water tile env = %d", got)
	}
	if got := r.EnvAt(at(2, 1)); got != physics.EnvLava {
		t.Errorf("lava tile env = %d", got)
	}
	if got := r.EnvAt(at(0, 0)); got != physics.EnvAir {
		t.Errorf("air tile env = %d", got)
	}
}

func TestCollectAt(t *testing.T) {
	r := New("r", 4, 4)
	r.Items = append(r.Items, Item{TileX: 1, TileY: 1, Kind: ItemEnergyTank})

	box := fx.AABB{HalfW: fx.FromInt(8), HalfH: fx.FromInt(8)}
	far := fx.Vec2{X: fx.FromInt(56), Y: fx.FromInt(56)}
	if got := r.CollectAt(far, box); got != ItemNone {
		t.Errorf("collected %v from across the room", got)
	}

	on := fx.Vec2{X: fx.FromInt(24), Y: fx.FromInt(24)}
	if got := r.CollectAt(on, box); got != ItemEnergyTank {
		t.Errorf("CollectAt = %v, want energy tank", got)
	}
	if got := r.CollectAt(on, box); got != ItemNone {
		t.Error("item collected twice")
	}
}

func TestSpecBuild(t *testing.T) {
	spec := &RoomSpec{
		Name:   "two_by_two",
		Width:  2,
		Height: 2,
		Tiles: []string{
			"00 41",
			"01 23",
		},
		Doors: []DoorSpec{{X: 0, Y: 0, Dir: "left", Dest: "next", DestDoor: 1}},
		Items: []ItemSpec{{X: 1, Y: 0, Kind: "varia"}},
		Spawns: []SpawnSpec{
			{X: 1, Y: 1, Type: "waver"},
			{X: 0, Y: 1, Type: "kraid", Boss: true},
		},
	}

	r, err := spec.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if r.Tile(0, 0) != physics.TileAir || r.Tile(1, 0) != physics.TileWater ||
		r.Tile(0, 1) != physics.TileSolid || r.Tile(1, 1) != physics.TileCrumble {
		t.Error("tile codes did not round-trip")
	}
	if len(r.Doors) != 1 || r.Doors[0].Dir != DirLeft || r.Doors[0].Dest != "next" {
		t.Errorf("doors = %+v", r.Doors)
	}
	if len(r.Items) != 1 || r.Items[0].Kind != ItemVaria {
		t.Errorf("items = %+v", r.Items)
	}
	if len(r.Spawns) != 2 || !r.Spawns[1].Boss {
		t.Errorf("spawns = %+v", r.Spawns)
	}
}

func TestSpecBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		spec RoomSpec
	}{
		{"bad_dims", RoomSpec{Name: "x", Width: 0, Height: 2}},
		{"row_count", RoomSpec{Name: "x", Width: 1, Height: 2, Tiles: []string{"00"}}},
		{"row_width", RoomSpec{Name: "x", Width: 2, Height: 1, Tiles: []string{"00"}}},
		{"bad_code", RoomSpec{Name: "x", Width: 1, Height: 1, Tiles: []string{"zz"}}},
		{"bad_dir", RoomSpec{
			Name: "x", Width: 1, Height: 1, Tiles: []string{"00"},
			Doors: []DoorSpec{{Dir: "sideways"}},
		}},
		{"bad_item", RoomSpec{
			Name: "x", Width: 1, Height: 1, Tiles: []string{"00"},
			Items: []ItemSpec{{Kind: "hyper_beam"}},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.spec.Build(); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestLoadEmbeddedRoom(t *testing.T) {
	r, err := LoadRoom("test_room.yaml")
	if err != nil {
		t.Fatalf("LoadRoom: %v", err)
	}
	if r.Width != 20 || r.Height != 15 {
		t.Errorf("dimensions = %dx%d", r.Width, r.Height)
	}
	if r.Tile(8, 10) != physics.TileCrumble {
		t.Error("embedded room is missing its crumble block")
	}
	if r.Tile(-1, 0) != physics.TileSolid {
		t.Error("embedded room must still be solid out of range")
	}
}
