package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/milk9111/purplenight/common"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrUnknownLevel        = errors.New("levels: unknown level")
	ErrInvalidDimensions   = errors.New("levels: invalid dimensions")
	ErrLayerSize           = errors.New("levels: layer size does not match dimensions")
	ErrTileOutOfRange      = errors.New("levels: tile id has no entry in tile_types")
	ErrSpawnOutOfBounds    = errors.New("levels: spawn outside the map")
	ErrInvalidTileProperty = errors.New("levels: tile property must be 0 or 1")
)

// Level is the compiled tile data for one map. Layers are flat row-major
// arrays of Width*Height tile ids. TileTypes maps a tile id to its property
// byte: 0 passable, 1 solid.
type Level struct {
	Name        string   `json:"name"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Clouds      []uint16 `json:"clouds,omitempty"`
	Background  []uint16 `json:"background"`
	Foreground  []uint16 `json:"foreground"`
	TileTypes   []int    `json:"tile_types"`
	SlimeSpawns []Spawn  `json:"slime_spawns,omitempty"`
	BatSpawns   []Spawn  `json:"bat_spawns,omitempty"`
}

// Spawn is a pixel coordinate placed in the level editor.
type Spawn struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Names lists the embedded levels without extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out
}

// LoadLevelFromFS loads an embedded level by basename; the .json suffix is
// optional.
func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
		}
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks that the layers, tile table and spawns agree with the
// declared dimensions.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, l.Width, l.Height)
	}
	n := l.Width * l.Height
	layers := []struct {
		name  string
		tiles []uint16
		must  bool
	}{
		{"background", l.Background, true},
		{"foreground", l.Foreground, true},
		{"clouds", l.Clouds, false},
	}
	for _, layer := range layers {
		if !layer.must && layer.tiles == nil {
			continue
		}
		if len(layer.tiles) != n {
			return fmt.Errorf("%w: %s has %d tiles, want %d", ErrLayerSize, layer.name, len(layer.tiles), n)
		}
		if layer.name == "clouds" {
			continue
		}
		for i, id := range layer.tiles {
			if int(id) >= len(l.TileTypes) {
				return fmt.Errorf("%w: %s[%d] = %d", ErrTileOutOfRange, layer.name, i, id)
			}
		}
	}
	for id, prop := range l.TileTypes {
		if prop < 0 || prop > 1 {
			return fmt.Errorf("%w: tile %d = %d", ErrInvalidTileProperty, id, prop)
		}
	}
	for _, spawns := range [][]Spawn{l.SlimeSpawns, l.BatSpawns} {
		for _, s := range spawns {
			if s.X < 0 || s.Y < 0 || s.X >= l.Width*common.TileSize || s.Y >= l.Height*common.TileSize {
				return fmt.Errorf("%w: (%d, %d)", ErrSpawnOutOfBounds, s.X, s.Y)
			}
		}
	}
	return nil
}
