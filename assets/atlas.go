package assets

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/purplenight/common"
	"github.com/milk9111/purplenight/prefabs"
)

// FrameSize is the edge length of one sprite frame. A sprite tile id
// addresses 8x8 cells, four to a frame.
const FrameSize = 16

// Atlas draws the sprite frames and map tiles from a palette on first use.
type Atlas struct {
	palette prefabs.PaletteSpec
	frames  map[int]*ebiten.Image
	tiles   map[int]*ebiten.Image
}

func NewAtlas(p prefabs.PaletteSpec) *Atlas {
	return &Atlas{
		palette: p,
		frames:  make(map[int]*ebiten.Image),
		tiles:   make(map[int]*ebiten.Image),
	}
}

// Sky is the clear colour behind every layer.
func (a *Atlas) Sky() color.Color {
	if a.palette.Sky.Color == nil {
		return colornames.Black
	}
	return a.palette.Sky.Color
}

// Frame returns the 16x16 image for a sprite tile id.
func (a *Atlas) Frame(tileID int) *ebiten.Image {
	frame := tileID / 4
	if img, ok := a.frames[frame]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(DrawFrame(a.palette, frame))
	a.frames[frame] = img
	return img
}

// Tile returns the 8x8 image for a map tile id, or nil when the id is
// transparent.
func (a *Atlas) Tile(id int) *ebiten.Image {
	if img, ok := a.tiles[id]; ok {
		return img
	}
	var img *ebiten.Image
	if src := DrawTile(a.palette, id); src != nil {
		img = ebiten.NewImageFromImage(src)
	}
	a.tiles[id] = img
	return img
}

// DrawTile paints map tile id. Ids without a palette entry are transparent
// and return nil.
func DrawTile(p prefabs.PaletteSpec, id int) *image.NRGBA {
	c, ok := p.Tiles[id]
	if !ok || id == 0 || c.Color == nil {
		return nil
	}
	fill := nrgba(c.Color)
	edge := shade(fill, 3, 4)
	img := image.NewNRGBA(image.Rect(0, 0, common.TileSize, common.TileSize))
	for y := 0; y < common.TileSize; y++ {
		for x := 0; x < common.TileSize; x++ {
			if x == common.TileSize-1 || y == common.TileSize-1 {
				img.SetNRGBA(x, y, edge)
				continue
			}
			img.SetNRGBA(x, y, fill)
		}
	}
	return img
}

// DrawFrame paints sprite frame (tile id / 4) using the actor palette that
// covers it. Frames outside every range get a magenta outline.
func DrawFrame(p prefabs.PaletteSpec, frame int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	actor, ok := p.Actor(frame)
	if !ok || actor.Body.Color == nil {
		outline(img, nrgba(colornames.Magenta))
		return img
	}
	body := nrgba(actor.Body.Color)
	accent := body
	if actor.Accent.Color != nil {
		accent = nrgba(actor.Accent.Color)
	}
	i := frame - actor.First

	switch actor.Name {
	case "player_long", "player_short":
		fillRect(img, 6, 5, 10, 15, body)
		fillRect(img, 6, 2, 10, 5, accent)
		// Legs alternate through the walk cycle.
		leg := i % 2
		fillRect(img, 6+leg, 15, 7+leg, 16, body)
		fillRect(img, 9-leg, 15, 10-leg, 16, body)
		if reach := i % 6; i >= 4 && reach > 0 {
			fillRect(img, 10, 9, 10+reach, 10, accent)
		}
	case "slime":
		ry := 3 + i%3
		fillEllipse(img, 8, 15-ry, 5, ry, body)
		img.SetNRGBA(6, 14-ry, accent)
		img.SetNRGBA(10, 14-ry, accent)
	case "bat":
		wing := 6 + (i%2)*2
		fillRect(img, 2, wing, 14, wing+2, body)
		fillEllipse(img, 8, 8, 2, 2, body)
		img.SetNRGBA(7, 7, accent)
		img.SetNRGBA(9, 7, accent)
	case "dust":
		fillEllipse(img, 8, 12, max(4-i/2, 1), max(3-i/2, 1), body)
	case "heal_orb":
		r := 3 + i%2
		fillEllipse(img, 8, 8, r, r, body)
		fillEllipse(img, 8, 8, 1, 1, accent)
	default:
		fillRect(img, 4, 4, 12, 12, body)
	}
	return img
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// shade scales the colour channels by num/den and keeps alpha.
func shade(c color.NRGBA, num, den int) color.NRGBA {
	return color.NRGBA{
		R: uint8(int(c.R) * num / den),
		G: uint8(int(c.G) * num / den),
		B: uint8(int(c.B) * num / den),
		A: c.A,
	}
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// fillEllipse fills pixels whose centre lies inside the ellipse centred on
// the pixel corner (cx, cy).
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry int, c color.NRGBA) {
	for y := cy - ry; y < cy+ry; y++ {
		for x := cx - rx; x < cx+rx; x++ {
			dx := 2*(x-cx) + 1
			dy := 2*(y-cy) + 1
			if dx*dx*ry*ry+dy*dy*rx*rx <= 4*rx*rx*ry*ry {
				if (image.Point{X: x, Y: y}).In(img.Bounds()) {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
}

func outline(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		img.SetNRGBA(x, b.Min.Y, c)
		img.SetNRGBA(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.SetNRGBA(b.Min.X, y, c)
		img.SetNRGBA(b.Max.X-1, y, c)
	}
}
