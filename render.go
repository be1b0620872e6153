package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/purplenight/assets"
	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/fixed"
	"github.com/milk9111/purplenight/obj"
)

// spriteState is what a sprite shows once committed.
type spriteState struct {
	pos     fixed.Point
	tile    int
	hflip   bool
	visible bool
}

// sprite is one slot in the sprite pool. Setters stage changes; Draw only
// ever sees the committed state.
type sprite struct {
	staged    spriteState
	committed spriteState
	free      bool
}

func (s *sprite) SetPosition(p fixed.Point) { s.staged.pos = p }
func (s *sprite) SetTileID(id int)          { s.staged.tile = id }
func (s *sprite) SetHFlip(flip bool)        { s.staged.hflip = flip }
func (s *sprite) Show()                     { s.staged.visible = true }
func (s *sprite) Hide()                     { s.staged.visible = false }
func (s *sprite) Commit()                   { s.committed = s.staged }

func (s *sprite) Release() {
	s.staged = spriteState{}
	s.committed = spriteState{}
	s.free = true
}

// spritePool allocates sprites and draws them in allocation order.
type spritePool struct {
	slots []*sprite
}

func (p *spritePool) NewSprite() obj.Sprite {
	for _, s := range p.slots {
		if s.free {
			s.free = false
			return s
		}
	}
	s := &sprite{}
	p.slots = append(p.slots, s)
	return s
}

// Reset frees every slot.
func (p *spritePool) Reset() {
	for _, s := range p.slots {
		s.Release()
	}
}

func (p *spritePool) InUse() int {
	n := 0
	for _, s := range p.slots {
		if !s.free {
			n++
		}
	}
	return n
}

func (p *spritePool) Draw(screen *ebiten.Image, atlas *assets.Atlas) {
	for _, s := range p.slots {
		st := s.committed
		if s.free || !st.visible {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		if st.hflip {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(assets.FrameSize, 0)
		}
		op.GeoM.Translate(float64(st.pos.X), float64(st.pos.Y))
		screen.DrawImage(atlas.Frame(st.tile), op)
	}
}

// tileLayer is a scrolling map layer. Position is the top-left of the
// viewport in layer pixels.
type tileLayer struct {
	tiles     []uint16
	width     int
	height    int
	staged    fixed.Point
	committed fixed.Point
}

func newTileLayer(tiles []uint16, width, height int) *tileLayer {
	return &tileLayer{tiles: tiles, width: width, height: height}
}

func (l *tileLayer) SetPosition(p fixed.Point) { l.staged = p }
func (l *tileLayer) Commit()                   { l.committed = l.staged }

func (l *tileLayer) Draw(screen *ebiten.Image, atlas *assets.Atlas) {
	if l == nil || len(l.tiles) == 0 {
		return
	}
	ts := common.TileSize
	x0 := floorDiv(l.committed.X, ts)
	y0 := floorDiv(l.committed.Y, ts)
	x1 := floorDiv(l.committed.X+common.ScreenWidth, ts)
	y1 := floorDiv(l.committed.Y+common.ScreenHeight, ts)

	for ty := max(y0, 0); ty <= min(y1, l.height-1); ty++ {
		for tx := max(x0, 0); tx <= min(x1, l.width-1); tx++ {
			img := atlas.Tile(int(l.tiles[ty*l.width+tx]))
			if img == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(tx*ts-l.committed.X), float64(ty*ts-l.committed.Y))
			screen.DrawImage(img, op)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
