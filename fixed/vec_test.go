package fixed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecOps(t *testing.T) {
	require.Equal(t, V(4, 6), V(1, 2).Add(V(3, 4)))
	require.Equal(t, V(-2, -2), V(1, 2).Sub(V(3, 4)))
	require.Equal(t, V(2, 1), V(1, 2).Swap())
	require.Equal(t, V(-1, 2), V(1, -2).Neg())
	require.Equal(t, V(2, 6), V(4, 12).DivInt(2))
	require.Equal(t, P(3, -9), P(1, -3).MulInt(3))
	require.Equal(t, FromInt(7), V(-3, 4).ManhattanDistance())
	require.Equal(t, 7, P(-3, -4).ManhattanDistance())
	require.True(t, Vector{}.IsZero())
}

func TestHadamard(t *testing.T) {
	cases := []struct {
		name string
		a, b Vector
		want Vector
	}{
		{"vertical_axis", V(4, 12), V(0, 1), V(0, 12)},
		{"negative_axis", V(4, 12), V(-1, 0), V(-4, 0)},
		{"fractional", Vector{X: Ratio(1, 2), Y: FromInt(3)}, V(2, 2), V(1, 6)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Hadamard(c.a, c.b))
		})
	}
}

func TestFloorVector(t *testing.T) {
	v := Vector{X: FromRaw(-1), Y: FromRaw(511)}
	require.Equal(t, P(-1, 1), Floor(v))
	require.Equal(t, P(-1, 0), Floor(Scale(V(-3, 7), Ratio(1, 8))))
}

func TestNormalise(t *testing.T) {
	require.Equal(t, FromInt(5), Magnitude(V(3, 4)))

	n := Normalise(V(3, 4))
	require.Equal(t, int32(153), n.X.Raw())
	require.Equal(t, int32(204), n.Y.Raw())

	require.Equal(t, Vector{}, Normalise(Vector{}))
}

func TestRectTouches(t *testing.T) {
	base := R(0, 0, 8, 8)
	cases := []struct {
		name  string
		other FixedRect
		want  bool
	}{
		{"overlap", R(4, 4, 8, 8), true},
		{"shared_edge", R(8, 0, 8, 8), true},
		{"shared_corner", R(8, 8, 2, 2), true},
		{"gap_x", R(9, 0, 8, 8), false},
		{"gap_y", R(0, -9, 8, 8), false},
		{"contained", R(2, 2, 1, 1), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, base.Touches(c.other))
			require.Equal(t, c.want, c.other.Touches(base))
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := R(1, 2, 4, 6).Translate(V(1, 1))
	require.Equal(t, V(2, 3), r.Position)
	require.Equal(t, V(4, 6), r.Center())
}
