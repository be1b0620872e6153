package levels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedPlayground(t *testing.T) {
	lvl, err := LoadLevelFromFS("playground")
	require.NoError(t, err)
	require.Equal(t, "playground", lvl.Name)
	require.Len(t, lvl.Foreground, lvl.Width*lvl.Height)
	require.Len(t, lvl.Background, lvl.Width*lvl.Height)
	require.NotEmpty(t, lvl.SlimeSpawns)
	require.NotEmpty(t, lvl.BatSpawns)

	same, err := LoadLevelFromFS("playground.json")
	require.NoError(t, err)
	require.Equal(t, lvl, same)

	require.Contains(t, Names(), "playground")
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := LoadLevelFromFS("nope")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		json string
		want error
	}{
		{
			name: "zero_width",
			json: `{"width":0,"height":1,"background":[],"foreground":[],"tile_types":[0]}`,
			want: ErrInvalidDimensions,
		},
		{
			name: "short_layer",
			json: `{"width":2,"height":1,"background":[0],"foreground":[0,0],"tile_types":[0]}`,
			want: ErrLayerSize,
		},
		{
			name: "short_clouds",
			json: `{"width":2,"height":1,"clouds":[0],"background":[0,0],"foreground":[0,0],"tile_types":[0]}`,
			want: ErrLayerSize,
		},
		{
			name: "unknown_tile",
			json: `{"width":2,"height":1,"background":[0,3],"foreground":[0,0],"tile_types":[0,1]}`,
			want: ErrTileOutOfRange,
		},
		{
			name: "bad_property",
			json: `{"width":1,"height":1,"background":[0],"foreground":[0],"tile_types":[2]}`,
			want: ErrInvalidTileProperty,
		},
		{
			name: "spawn_outside",
			json: `{"width":1,"height":1,"background":[0],"foreground":[0],"tile_types":[0],"slime_spawns":[{"x":8,"y":0}]}`,
			want: ErrSpawnOutOfBounds,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.json))
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestParseValid(t *testing.T) {
	lvl, err := Parse([]byte(`{"width":2,"height":1,"background":[0,1],"foreground":[1,0],"tile_types":[0,1],"bat_spawns":[{"x":3,"y":4}]}`))
	require.NoError(t, err)
	require.Equal(t, []Spawn{{X: 3, Y: 4}}, lvl.BatSpawns)
	require.Nil(t, lvl.Clouds)
}
