package generation

// Dungeon is the finished, read-only result of one Generate call
type Dungeon struct {
	// Seed reproduces this dungeon when set on the same Config
	Seed   uint64
	Config Config
	Stats  Stats

	stage       *Stage
	rooms       []Room
	roomRegions []int
}

// Width returns the stage width
func (d *Dungeon) Width() int { return d.stage.Width }

// Height returns the stage height
func (d *Dungeon) Height() int { return d.stage.Height }

// InBounds checks if (x,y) lies on the stage
func (d *Dungeon) InBounds(x, y int) bool { return d.stage.InBounds(Point{x, y}) }

// Tile returns the tile type at (x,y)
func (d *Dungeon) Tile(x, y int) TileType { return d.stage.Tile(Point{x, y}) }

// Region returns the region id (x,y) was last carved with, NoRegion for walls
func (d *Dungeon) Region(x, y int) int { return d.stage.Region(Point{x, y}) }

// Each calls fn for every cell in row-major order
func (d *Dungeon) Each(fn func(p Point, t TileType, region int)) {
	d.stage.Each(fn)
}

// Rooms returns a copy of the placed rooms in placement order
func (d *Dungeon) Rooms() []Room {
	out := make([]Room, len(d.rooms))
	copy(out, d.rooms)
	return out
}

// RoomRegion returns the region id room i was carved with
func (d *Dungeon) RoomRegion(i int) int {
	return d.roomRegions[i]
}

// Stage returns an independent copy of the tile grid
func (d *Dungeon) Stage() *Stage {
	return d.stage.Clone()
}

// String renders the dungeon as ASCII
func (d *Dungeon) String() string {
	return d.stage.String()
}
