package rooms

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var RoomsFS embed.FS

// Load reads a room spec, preferring an on-disk copy (so edits made
// while running with a watcher take effect) and falling back to the
// embedded data.
func Load(name string) ([]byte, error) {
	clean := cleanRoomPath(name)
	if data, err := os.ReadFile(diskRoomPath(clean)); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return RoomsFS.ReadFile(clean)
}

func cleanRoomPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "rooms/"); ok {
		return after
	}
	return filepath.Base(s)
}

func diskRoomPath(clean string) string {
	return filepath.Join("rooms", filepath.FromSlash(clean))
}
