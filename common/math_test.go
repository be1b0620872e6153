package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPingPong(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 3},
		{6, 5, 2},
		{8, 5, 0},
		{9, 5, 1},
		{1, 2, 1},
		{2, 2, 0},
		{0, 1, 0},
		{7, 1, 0},
		{3, 0, 0},
		{3, -2, 0},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, PingPong(c.i, c.n), "PingPong(%d, %d)", c.i, c.n)
	}
}

func TestPingPongPeriod(t *testing.T) {
	const n = 5
	period := 2 * (n - 1)
	for i := 0; i < 3*period; i++ {
		require.Equal(t, PingPong(i, n), PingPong(i+period, n))
	}
}
