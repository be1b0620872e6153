package obj

import (
	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/fixed"
	"github.com/milk9111/purplenight/levels"
)

// Collider answers whether a point lies inside solid geometry and, if so,
// which rectangle it hit.
type Collider interface {
	Collides(p fixed.Vector) (fixed.FixedRect, bool)
}

// TileMap is the read-only collision view of a level. A cell is solid if
// either the background or foreground tile is marked solid in the tile
// table. Everything outside the map is solid.
type TileMap struct {
	width      int
	height     int
	background []uint16
	foreground []uint16
	tileTypes  []int
}

// NewTileMap wraps a validated level.
func NewTileMap(lvl *levels.Level) *TileMap {
	return &TileMap{
		width:      lvl.Width,
		height:     lvl.Height,
		background: lvl.Background,
		foreground: lvl.Foreground,
		tileTypes:  lvl.TileTypes,
	}
}

func (m *TileMap) Width() int  { return m.width }
func (m *TileMap) Height() int { return m.height }

// PixelSize is the map extent in pixels.
func (m *TileMap) PixelSize() fixed.Point {
	return fixed.P(m.width*common.TileSize, m.height*common.TileSize)
}

func (m *TileMap) solidTile(id uint16) bool {
	i := int(id)
	return i < len(m.tileTypes) && m.tileTypes[i] == 1
}

// Solid reports whether the tile cell (x, y) blocks movement.
func (m *TileMap) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return true
	}
	i := y*m.width + x
	return m.solidTile(m.background[i]) || m.solidTile(m.foreground[i])
}

// Collides implements Collider. The returned rectangle is the 8x8 tile
// containing p.
func (m *TileMap) Collides(p fixed.Vector) (fixed.FixedRect, bool) {
	cell := fixed.Floor(fixed.Scale(p, fixed.Ratio(1, common.TileSize)))
	if !m.Solid(cell.X, cell.Y) {
		return fixed.FixedRect{}, false
	}
	return fixed.R(cell.X*common.TileSize, cell.Y*common.TileSize, common.TileSize, common.TileSize), true
}
