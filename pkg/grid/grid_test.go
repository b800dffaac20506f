package grid

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
	_, err = New(-3)
	assert.Error(t, err)

	g, err := New(50)
	require.NoError(t, err)
	assert.Equal(t, 50, g.Size())
	assert.Equal(t, 2500, g.Cells())
	assert.Equal(t, types.Position{X: 25, Y: 25}, g.Center())
}

func TestGrid_Wrap(t *testing.T) {
	g, err := New(20)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   types.Position
		want types.Position
	}{
		{name: "inside", in: types.Position{X: 3, Y: 4}, want: types.Position{X: 3, Y: 4}},
		{name: "right edge", in: types.Position{X: 20, Y: 5}, want: types.Position{X: 0, Y: 5}},
		{name: "bottom edge", in: types.Position{X: 5, Y: 20}, want: types.Position{X: 5, Y: 0}},
		{name: "far positive", in: types.Position{X: 45, Y: 61}, want: types.Position{X: 5, Y: 1}},
		{name: "left edge", in: types.Position{X: -1, Y: 5}, want: types.Position{X: 19, Y: 5}},
		{name: "top edge", in: types.Position{X: 5, Y: -1}, want: types.Position{X: 5, Y: 19}},
		{name: "both negative", in: types.Position{X: -3, Y: -22}, want: types.Position{X: 17, Y: 18}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Wrap(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, g.InBounds(got))
		})
	}
}

func TestGrid_InBounds(t *testing.T) {
	g, err := New(10)
	require.NoError(t, err)

	assert.True(t, g.InBounds(types.Position{X: 0, Y: 0}))
	assert.True(t, g.InBounds(types.Position{X: 9, Y: 9}))
	assert.False(t, g.InBounds(types.Position{X: 10, Y: 0}))
	assert.False(t, g.InBounds(types.Position{X: 0, Y: 10}))
	assert.False(t, g.InBounds(types.Position{X: -1, Y: 3}))
	assert.False(t, g.InBounds(types.Position{X: 3, Y: -1}))
}

func TestGrid_Distance(t *testing.T) {
	g, err := New(10)
	require.NoError(t, err)

	a := types.Position{X: 0, Y: 0}
	b := types.Position{X: 9, Y: 8}
	assert.Equal(t, 17, g.Distance(a, b, false))
	assert.Equal(t, 3, g.Distance(a, b, true))
	assert.Equal(t, 0, g.Distance(b, b, true))
}

func TestOccupancy(t *testing.T) {
	g, err := New(8)
	require.NoError(t, err)
	occ := g.NewOccupancy()

	snake := types.Position{X: 1, Y: 1}
	obstacle := types.Position{X: 2, Y: 1}
	food := types.Position{X: 7, Y: 7}
	occ.Mark(snake, TagSnake)
	occ.Mark(obstacle, TagObstacle)
	occ.Mark(food, TagFood)
	occ.Mark(types.Position{X: 8, Y: 0}, TagFood)

	assert.True(t, occ.Occupied(snake))
	assert.True(t, occ.Occupied(snake, TagSnake))
	assert.False(t, occ.Occupied(snake, TagObstacle, TagFood))
	assert.True(t, occ.Occupied(obstacle, TagFood, TagObstacle))
	assert.True(t, occ.Occupied(food, TagFood))

	// neighbours of marked cells stay free
	assert.True(t, occ.Free(types.Position{X: 0, Y: 1}))
	assert.True(t, occ.Free(types.Position{X: 3, Y: 1}))
	assert.True(t, occ.Free(types.Position{X: 1, Y: 2}))
	assert.True(t, occ.Free(types.Position{X: 6, Y: 7}))

	assert.False(t, occ.Free(types.Position{X: 8, Y: 0}))
	assert.False(t, occ.Occupied(types.Position{X: 8, Y: 0}))
}

func TestGrid_PlaceRandom(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))

	occ := g.NewOccupancy()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			occ.Mark(types.Position{X: x, Y: y}, TagObstacle)
		}
	}

	p, err := g.PlaceRandom(rng, occ, 10_000)
	require.NoError(t, err)
	assert.Equal(t, types.Position{X: 2, Y: 1}, p)

	occ.Mark(p, TagFood)
	_, err = g.PlaceRandom(rng, occ, 50)
	assert.True(t, errors.Is(err, ErrPlacementExhausted))
}
