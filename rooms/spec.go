package rooms

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cavernfall/physics"
)

// RoomSpec is the on-disk YAML form of a room. Tiles are rows of
// space-separated hex collision codes, top to bottom.
type RoomSpec struct {
	Name   string      `yaml:"name"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Tiles  []string    `yaml:"tiles"`
	Doors  []DoorSpec  `yaml:"doors"`
	Items  []ItemSpec  `yaml:"items"`
	Spawns []SpawnSpec `yaml:"spawns"`
}

type DoorSpec struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Dir      string `yaml:"dir"`
	Dest     string `yaml:"dest"`
	DestDoor int    `yaml:"dest_door"`
}

type ItemSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

type SpawnSpec struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Type string `yaml:"type"`
	Boss bool   `yaml:"boss"`
}

// LoadSpec reads and unmarshals a room spec, checking embedded data
// when no file exists on disk.
func LoadSpec(filename string) (*RoomSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("rooms: load %s: %w", filename, err)
	}

	var spec RoomSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("rooms: unmarshal %s: %w", filename, err)
	}

	return &spec, nil
}

var itemKinds = map[string]ItemKind{
	"energy_tank":     ItemEnergyTank,
	"missile_tank":    ItemMissileTank,
	"super_tank":      ItemSuperTank,
	"power_bomb_tank": ItemPowerBombTank,
	"morph_ball":      ItemMorphBall,
	"bombs":           ItemBombs,
	"hi_jump":         ItemHiJump,
	"spring_ball":     ItemSpringBall,
	"varia":           ItemVaria,
	"gravity":         ItemGravity,
	"ice_beam":        ItemIceBeam,
	"wave_beam":       ItemWaveBeam,
	"spazer":          ItemSpazer,
	"plasma":          ItemPlasma,
	"screw_attack":    ItemScrewAttack,
}

var doorDirs = map[string]Direction{
	"left":  DirLeft,
	"right": DirRight,
	"up":    DirUp,
	"down":  DirDown,
}

// Build converts a spec into a playable Room.
func (s *RoomSpec) Build() (*Room, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("rooms: %s: bad dimensions %dx%d", s.Name, s.Width, s.Height)
	}
	if len(s.Tiles) != s.Height {
		return nil, fmt.Errorf("rooms: %s: %d tile rows, want %d", s.Name, len(s.Tiles), s.Height)
	}

	r := New(s.Name, s.Width, s.Height)

	for ty, row := range s.Tiles {
		codes := strings.Fields(row)
		if len(codes) != s.Width {
			return nil, fmt.Errorf("rooms: %s: row %d has %d tiles, want %d", s.Name, ty, len(codes), s.Width)
		}
		for tx, code := range codes {
			v, err := strconv.ParseUint(code, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("rooms: %s: row %d tile %q: %w", s.Name, ty, code, err)
			}
			r.SetTile(tx, ty, physics.Tile(v))
		}
	}

	for _, d := range s.Doors {
		dir, ok := doorDirs[d.Dir]
		if !ok {
			return nil, fmt.Errorf("rooms: %s: unknown door dir %q", s.Name, d.Dir)
		}
		r.Doors = append(r.Doors, Door{
			TileX: d.X, TileY: d.Y,
			Dir:      dir,
			Dest:     d.Dest,
			DestDoor: d.DestDoor,
		})
	}

	for _, it := range s.Items {
		kind, ok := itemKinds[it.Kind]
		if !ok {
			return nil, fmt.Errorf("rooms: %s: unknown item kind %q", s.Name, it.Kind)
		}
		r.Items = append(r.Items, Item{TileX: it.X, TileY: it.Y, Kind: kind})
	}

	for _, sp := range s.Spawns {
		r.Spawns = append(r.Spawns, Spawn{TileX: sp.X, TileY: sp.Y, Type: sp.Type, Boss: sp.Boss})
	}

	return r, nil
}

// LoadRoom loads and builds a room in one step.
func LoadRoom(filename string) (*Room, error) {
	spec, err := LoadSpec(filename)
	if err != nil {
		return nil, err
	}
	return spec.Build()
}

// TestRoom returns a small built-in room used when no spec file is
// given: a 20x15 box with a floor, a platform, one crumble block, and
// a pair of breakable blocks.
func TestRoom() *Room {
	r := New("test_room", 20, 15)

	for tx := 0; tx < 20; tx++ {
		r.SetTile(tx, 0, physics.TileSolid)
		r.SetTile(tx, 14, physics.TileSolid)
	}
	for ty := 0; ty < 15; ty++ {
		r.SetTile(0, ty, physics.TileSolid)
		r.SetTile(19, ty, physics.TileSolid)
	}

	// platform with a crumble gap
	for tx := 6; tx <= 10; tx++ {
		r.SetTile(tx, 10, physics.TileSolid)
	}
	r.SetTile(8, 10, physics.TileCrumble)

	r.SetTile(14, 13, physics.TileShot)
	r.SetTile(15, 13, physics.TileBomb)

	r.Spawns = append(r.Spawns, Spawn{TileX: 15, TileY: 12, Type: "zoomer"})
	r.Items = append(r.Items, Item{TileX: 3, TileY: 13, Kind: ItemMissileTank})

	return r
}
