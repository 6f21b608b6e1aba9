package generation

import (
	"fmt"
	"strings"
)

// NoRegion is the region id of every cell that is still wall
const NoRegion = -1

// Stage is the tile grid a generation session carves into.
// Tiles and region ids are stored row-major in parallel slices.
type Stage struct {
	Width, Height int

	tiles   []TileType
	regions []int
}

// NewStage creates a stage filled with walls
func NewStage(width, height int) *Stage {
	s := &Stage{
		Width:   width,
		Height:  height,
		tiles:   make([]TileType, width*height),
		regions: make([]int, width*height),
	}
	s.Reset()
	return s
}

// Reset turns every cell back into an unclaimed wall
func (s *Stage) Reset() {
	for i := range s.tiles {
		s.tiles[i] = Wall
		s.regions[i] = NoRegion
	}
}

// InBounds checks if a point is within the stage
func (s *Stage) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Interior checks if a point is inside the one-cell border
func (s *Stage) Interior(p Point) bool {
	return p.X > 0 && p.X < s.Width-1 && p.Y > 0 && p.Y < s.Height-1
}

// index maps p to its row-major slot. Callers must never pass a point
// outside the stage; doing so is a bug in the caller.
func (s *Stage) index(p Point) int {
	if !s.InBounds(p) {
		panic(fmt.Sprintf("generation: cell (%d,%d) outside %dx%d stage", p.X, p.Y, s.Width, s.Height))
	}
	return p.Y*s.Width + p.X
}

// Tile returns the tile type at a position
func (s *Stage) Tile(p Point) TileType {
	return s.tiles[s.index(p)]
}

// Region returns the region id a position was last carved with
func (s *Stage) Region(p Point) int {
	return s.regions[s.index(p)]
}

// Carve makes a cell empty and tags it with region
func (s *Stage) Carve(p Point, region int) {
	s.CarveTile(p, Empty, region)
}

// CarveTile sets a cell to an open tile type tagged with region
func (s *Stage) CarveTile(p Point, t TileType, region int) {
	i := s.index(p)
	s.tiles[i] = t
	s.regions[i] = region
}

// Fill turns a cell back into wall
func (s *Stage) Fill(p Point) {
	i := s.index(p)
	s.tiles[i] = Wall
	s.regions[i] = NoRegion
}

// CarveRect carves every cell of b with region
func (s *Stage) CarveRect(b Bounds, region int) {
	for y := b.MinY; y <= b.MaxY; y++ {
		for x := b.MinX; x <= b.MaxX; x++ {
			s.Carve(Point{x, y}, region)
		}
	}
}

// OpenNeighbors counts the non-wall cells orthogonally adjacent to p
func (s *Stage) OpenNeighbors(p Point) int {
	exits := 0
	for _, adj := range p.Adjacent() {
		if s.InBounds(adj) && s.Tile(adj).Open() {
			exits++
		}
	}
	return exits
}

// Each calls fn for every cell in row-major order
func (s *Stage) Each(fn func(p Point, t TileType, region int)) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			i := y*s.Width + x
			fn(Point{x, y}, s.tiles[i], s.regions[i])
		}
	}
}

// Count returns how many cells hold tile type t
func (s *Stage) Count(t TileType) int {
	n := 0
	for _, tile := range s.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the stage
func (s *Stage) Clone() *Stage {
	c := &Stage{
		Width:   s.Width,
		Height:  s.Height,
		tiles:   make([]TileType, len(s.tiles)),
		regions: make([]int, len(s.regions)),
	}
	copy(c.tiles, s.tiles)
	copy(c.regions, s.regions)
	return c
}

// FloodFill returns every open cell reachable from start
func (s *Stage) FloodFill(start Point) map[Point]bool {
	reachable := make(map[Point]bool)
	if !s.InBounds(start) || !s.Tile(start).Open() {
		return reachable
	}

	queue := []Point{start}
	reachable[start] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, adj := range p.Adjacent() {
			if reachable[adj] || !s.InBounds(adj) || !s.Tile(adj).Open() {
				continue
			}
			reachable[adj] = true
			queue = append(queue, adj)
		}
	}

	return reachable
}

// String renders the stage as ASCII
func (s *Stage) String() string {
	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			switch s.tiles[y*s.Width+x] {
			case Empty:
				sb.WriteByte('.')
			case Door:
				sb.WriteByte('+')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
