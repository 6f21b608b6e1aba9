package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStage_AllWalls verifies a fresh stage is solid wall with no regions.
func TestNewStage_AllWalls(t *testing.T) {
	s := NewStage(5, 3)

	require.Equal(t, 15, s.Count(Wall))
	s.Each(func(p Point, tile TileType, region int) {
		assert.Equal(t, Wall, tile, "cell %v", p)
		assert.Equal(t, NoRegion, region, "cell %v", p)
	})
}

// TestStage_CarveAndFill checks that carving tags a region and filling clears it.
func TestStage_CarveAndFill(t *testing.T) {
	s := NewStage(5, 5)
	p := Point{2, 2}

	s.Carve(p, 3)
	assert.Equal(t, Empty, s.Tile(p))
	assert.Equal(t, 3, s.Region(p))

	s.CarveTile(p, Door, 1)
	assert.Equal(t, Door, s.Tile(p))
	assert.Equal(t, 1, s.Region(p))

	s.Fill(p)
	assert.Equal(t, Wall, s.Tile(p))
	assert.Equal(t, NoRegion, s.Region(p))
}

// TestStage_OutOfBoundsPanics treats access outside the grid as a defect.
func TestStage_OutOfBoundsPanics(t *testing.T) {
	s := NewStage(3, 3)

	require.Panics(t, func() { s.Tile(Point{3, 0}) })
	require.Panics(t, func() { s.Carve(Point{-1, 1}, 0) })
	require.NotPanics(t, func() { s.Tile(Point{2, 2}) })
}

func TestStage_InteriorAndBounds(t *testing.T) {
	s := NewStage(5, 5)

	assert.True(t, s.InBounds(Point{0, 0}))
	assert.False(t, s.Interior(Point{0, 0}))
	assert.True(t, s.Interior(Point{1, 3}))
	assert.False(t, s.Interior(Point{4, 2}))
	assert.False(t, s.InBounds(Point{5, 2}))
}

func TestStage_OpenNeighbors(t *testing.T) {
	s := NewStage(5, 5)
	s.CarveRect(Bounds{1, 1, 3, 1}, 0)
	s.CarveTile(Point{2, 2}, Door, 0)

	assert.Equal(t, 3, s.OpenNeighbors(Point{2, 1}))
	assert.Equal(t, 1, s.OpenNeighbors(Point{1, 1}))
	assert.Equal(t, 1, s.OpenNeighbors(Point{2, 2}))
	// border cells ignore neighbors outside the grid
	assert.Equal(t, 1, s.OpenNeighbors(Point{0, 1}))
}

func TestStage_CloneIsIndependent(t *testing.T) {
	s := NewStage(3, 3)
	s.Carve(Point{1, 1}, 0)

	c := s.Clone()
	c.Fill(Point{1, 1})

	assert.Equal(t, Empty, s.Tile(Point{1, 1}))
	assert.Equal(t, Wall, c.Tile(Point{1, 1}))
}

func TestStage_String(t *testing.T) {
	s := NewStage(5, 3)
	s.Carve(Point{1, 1}, 0)
	s.CarveTile(Point{2, 1}, Door, 0)
	s.Carve(Point{3, 1}, 1)

	assert.Equal(t, "#####\n#.+.#\n#####\n", s.String())
}

func TestStage_FloodFill(t *testing.T) {
	s := NewStage(7, 3)
	s.CarveRect(Bounds{1, 1, 2, 1}, 0)
	s.Carve(Point{5, 1}, 1)

	reach := s.FloodFill(Point{1, 1})
	assert.Len(t, reach, 2)
	assert.True(t, reach[Point{2, 1}])
	assert.False(t, reach[Point{5, 1}])

	assert.Empty(t, s.FloodFill(Point{0, 0}), "walls reach nothing")
}

func TestStage_FindPath(t *testing.T) {
	s := NewStage(5, 5)
	s.CarveRect(Bounds{1, 1, 3, 1}, 0)
	s.CarveRect(Bounds{3, 2, 3, 3}, 0)

	path := s.FindPath(Point{1, 1}, Point{3, 3})
	require.Equal(t, []Point{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}, path)

	assert.Equal(t, []Point{{2, 1}}, s.FindPath(Point{2, 1}, Point{2, 1}))
	assert.Nil(t, s.FindPath(Point{1, 1}, Point{1, 3}), "target is wall")

	s.Carve(Point{1, 3}, 1)
	assert.Nil(t, s.FindPath(Point{1, 1}, Point{1, 3}), "target is cut off")
}
