package obj

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/purplenight/fixed"
)

func wallLevel(t *testing.T) *TileMap {
	return NewTileMap(gridLevel(t,
		"....#.",
		"....#.",
		"....#.",
		"....#.",
		"....#.",
		"######",
	))
}

func newBody(pos fixed.Vector) Entity {
	e := NewEntity(nil, fixed.Rect[int]{Size: fixed.P(4, 12)}, fixed.Ratio(1, 16))
	e.Position = pos
	return e
}

func TestCollider(t *testing.T) {
	e := NewEntity(nil, fixed.Rect[int]{Position: fixed.P(1, 0), Size: fixed.P(4, 12)}, 0)
	e.Position = fixed.V(20, 20)
	require.Equal(t, fixed.R(19, 14, 4, 12), e.Collider())
}

func TestCollisionInDirection(t *testing.T) {
	m := wallLevel(t)
	cases := []struct {
		name      string
		dir       fixed.Vector
		distance  fixed.Num
		wantMove  fixed.Vector
		wantHit   bool
		startPosY int
	}{
		{"down_free", fixed.V(0, 1), fixed.FromInt(5), fixed.V(0, 5), false, 24},
		{"down_stops_at_floor", fixed.V(0, 1), fixed.FromInt(12), fixed.V(0, 10), true, 24},
		{"down_resting", fixed.V(0, 1), fixed.FromInt(1), fixed.V(0, 0), true, 34},
		{"right_stops_at_wall", fixed.V(1, 0), fixed.FromInt(12), fixed.V(10, 0), true, 20},
		{"right_free", fixed.V(1, 0), fixed.FromInt(3), fixed.V(3, 0), false, 20},
		{"left_map_edge", fixed.V(-1, 0), fixed.FromInt(20), fixed.V(-18, 0), true, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newBody(fixed.V(20, c.startPosY))
			move, hit := e.CollisionInDirection(c.dir, c.distance, m)
			require.Equal(t, c.wantMove, move)
			require.Equal(t, c.wantHit, hit)
		})
	}
}

func TestUpdatePositionZeroesBlockedAxis(t *testing.T) {
	m := wallLevel(t)
	e := newBody(fixed.V(20, 24))
	e.Velocity = fixed.V(12, 12)

	moved := e.UpdatePosition(m)

	require.Equal(t, fixed.V(10, 10), moved)
	require.Equal(t, fixed.V(30, 34), e.Position)
	require.Equal(t, fixed.Vector{}, e.Velocity)
}

func TestUpdatePositionWithoutCollisionIgnoresTiles(t *testing.T) {
	e := newBody(fixed.V(20, 24))
	e.Velocity = fixed.V(0, 40)
	require.Equal(t, fixed.V(0, 40), e.UpdatePositionWithoutCollision())
	require.Equal(t, fixed.V(20, 64), e.Position)
}

func TestCommitWithFudge(t *testing.T) {
	cases := []struct {
		name    string
		pos     fixed.Vector
		offset  fixed.Vector
		fudge   fixed.Point
		visible bool
		want    fixed.Point
		shown   bool
	}{
		{"on_screen", fixed.V(50, 40), fixed.Vector{}, fixed.Point{}, true, fixed.P(42, 32), true},
		{"camera_offset", fixed.V(50, 40), fixed.V(10, 0), fixed.P(3, 0), true, fixed.P(35, 32), true},
		{"far_left", fixed.V(-20, 40), fixed.Vector{}, fixed.Point{}, true, fixed.P(-28, 32), false},
		{"far_below", fixed.V(50, 200), fixed.Vector{}, fixed.Point{}, true, fixed.P(42, 192), false},
		{"invisible", fixed.V(50, 40), fixed.Vector{}, fixed.Point{}, false, fixed.Point{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sprites := &fakeSprites{}
			e := NewEntity(sprites, fixed.Rect[int]{}, 0)
			e.Position = c.pos
			e.Visible = c.visible
			e.CommitWithFudge(c.offset, c.fudge)

			s := sprites.all[0]
			require.Equal(t, c.want, s.pos)
			require.Equal(t, c.shown, s.visible)
			require.Equal(t, 1, s.commits)
		})
	}
}
