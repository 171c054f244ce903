package voxel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	w, h, d := Bounds(nil)
	require.Zero(t, w+h+d)

	w, h, d = Bounds([]Voxel{{X: 2, Y: 0, Z: 9}, {X: 0, Y: 4, Z: 1}})
	require.Equal(t, []int{3, 5, 10}, []int{w, h, d})
}

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3, 4)
	_, ok := g.At(1, 2, 3)
	require.False(t, ok)

	g.Set(1, 2, 3, 0)
	c, ok := g.At(1, 2, 3)
	require.True(t, ok)
	require.Equal(t, uint8(0), c)

	g.Set(0, 0, 0, 255)
	c, ok = g.At(0, 0, 0)
	require.True(t, ok)
	require.Equal(t, uint8(255), c)

	g.Set(5, 0, 0, 1) // dropped
	_, ok = g.At(5, 0, 0)
	require.False(t, ok)
	require.Equal(t, 2, g.Count())
}

func TestGridFromVoxels(t *testing.T) {
	// Z up in VOX becomes Y up in the grid; VOX Y runs backwards along grid Z.
	g := GridFromVoxels([]Voxel{{X: 1, Y: 0, Z: 2, Color: 7}, {X: 0, Y: 2, Z: 0, Color: 3}})
	require.Equal(t, []int{2, 3, 3}, []int{g.W, g.H, g.D})

	c, ok := g.At(1, 2, 2)
	require.True(t, ok)
	require.Equal(t, uint8(7), c)
	c, ok = g.At(0, 0, 0)
	require.True(t, ok)
	require.Equal(t, uint8(3), c)
	require.Equal(t, 2, g.Count())
}
