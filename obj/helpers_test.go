package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
	"github.com/milk9111/purplenight/levels"
)

// gridLevel builds a level from rows of ASCII: '#' is a solid foreground
// tile, 'b' a solid background tile, anything else is empty.
func gridLevel(t *testing.T, rows ...string) *levels.Level {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	fg := make([]uint16, w*h)
	bg := make([]uint16, w*h)
	for y, row := range rows {
		require.Len(t, row, w, "row %d", y)
		for x, c := range row {
			switch c {
			case '#':
				fg[y*w+x] = 1
			case 'b':
				bg[y*w+x] = 1
			}
		}
	}
	lvl := &levels.Level{
		Name:       "test",
		Width:      w,
		Height:     h,
		Background: bg,
		Foreground: fg,
		TileTypes:  []int{0, 1},
	}
	require.NoError(t, lvl.Validate())
	return lvl
}

// floorLevel is 30 tiles wide with a solid floor whose top is at y=40.
func floorLevel(t *testing.T) *levels.Level {
	t.Helper()
	empty := ".............................."
	floor := "##############################"
	return gridLevel(t, empty, empty, empty, empty, empty, floor, floor)
}

type fakeSprite struct {
	pos      fixed.Point
	tile     int
	hflip    bool
	visible  bool
	commits  int
	released bool
}

func (s *fakeSprite) SetPosition(p fixed.Point) { s.pos = p }
func (s *fakeSprite) SetTileID(id int)          { s.tile = id }
func (s *fakeSprite) SetHFlip(flip bool)        { s.hflip = flip }
func (s *fakeSprite) Show()                     { s.visible = true }
func (s *fakeSprite) Hide()                     { s.visible = false }
func (s *fakeSprite) Commit()                   { s.commits++ }
func (s *fakeSprite) Release()                  { s.released = true }

type fakeSprites struct {
	all []*fakeSprite
}

func (f *fakeSprites) NewSprite() Sprite {
	s := &fakeSprite{}
	f.all = append(f.all, s)
	return s
}

func (f *fakeSprites) released() int {
	n := 0
	for _, s := range f.all {
		if s.released {
			n++
		}
	}
	return n
}

type fakeLayer struct {
	pos     fixed.Point
	commits int
}

func (l *fakeLayer) SetPosition(p fixed.Point) { l.pos = p }
func (l *fakeLayer) Commit()                   { l.commits++ }

type fakeAudio struct {
	sounds []Clip
	music  []Clip
	stops  int
	ticks  int
}

func (a *fakeAudio) PlaySound(c Clip) { a.sounds = append(a.sounds, c) }
func (a *fakeAudio) PlayMusic(c Clip) { a.music = append(a.music, c) }
func (a *fakeAudio) StopMusic()       { a.stops++ }
func (a *fakeAudio) VBlank()          { a.ticks++ }

func (a *fakeAudio) played(c Clip) int {
	n := 0
	for _, s := range a.sounds {
		if s == c {
			n++
		}
	}
	return n
}

// scriptedInput replays one sample per frame and then holds nothing.
type scriptedInput struct {
	buttons Buttons
	frames  []inputFrame
	next    int
}

type inputFrame struct {
	x    Tri
	a, b bool
}

func (s *scriptedInput) step() Input {
	f := inputFrame{}
	if s.next < len(s.frames) {
		f = s.frames[s.next]
	}
	s.next++
	s.buttons.Update(f.x, f.a, f.b)
	return &s.buttons
}

// idle is an Input with nothing held.
var idle Input = &Buttons{}

// press returns an Input where btn went down this frame.
func press(btn Button) Input {
	b := &Buttons{}
	b.Update(TriZero, btn == ButtonA, btn == ButtonB)
	return b
}

func newTestGame(t *testing.T, lvl *levels.Level, opts ...Option) (*Game, *fakeSprites, *fakeAudio) {
	t.Helper()
	sprites := &fakeSprites{}
	audio := &fakeAudio{}
	g, err := NewGame(lvl, sprites, Layers{}, audio, 1, opts...)
	require.NoError(t, err)
	return g, sprites, audio
}

// groundedTuning spawns the player standing on floorLevel's floor.
func groundedTuning() Tuning {
	tu := DefaultTuning()
	tu.PlayerSpawn = fixed.V(20, 34)
	return tu
}
