package generation

// Point represents a cell coordinate on the stage
type Point struct {
	X, Y int
}

// Step returns the point n cells away in direction d
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx*n, p.Y + dy*n}
}

// Adjacent returns the 4 cardinal neighbors in Directions order
func (p Point) Adjacent() [4]Point {
	return [4]Point{
		{p.X, p.Y - 1}, // N
		{p.X, p.Y + 1}, // S
		{p.X - 1, p.Y}, // W
		{p.X + 1, p.Y}, // E
	}
}

// IsLattice reports whether both coordinates are odd
func (p Point) IsLattice() bool {
	return p.X%2 == 1 && p.Y%2 == 1
}

// Direction represents cardinal directions
type Direction int

const (
	North Direction = iota
	South
	West
	East

	// NoDirection marks the start of a corridor run
	NoDirection Direction = -1
)

// Directions lists the cardinal directions in scan order
var Directions = [4]Direction{North, South, West, East}

// Delta returns the x,y offset for moving in this direction
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "none"
}

// TileType is the state of a single stage cell
type TileType uint8

const (
	Wall TileType = iota
	Empty
	Door
)

func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Empty:
		return "empty"
	case Door:
		return "door"
	}
	return "unknown"
}

// Open reports whether the tile can be walked through
func (t TileType) Open() bool {
	return t == Empty || t == Door
}

// Bounds represents an inclusive rectangular region
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the width of the bounds
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the height of the bounds
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Contains checks if a point is within bounds
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Center returns the center point of the bounds
func (b Bounds) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Expand returns the smallest bounds containing both b and p
func (b Bounds) Expand(p Point) Bounds {
	return Bounds{min(b.MinX, p.X), min(b.MinY, p.Y), max(b.MaxX, p.X), max(b.MaxY, p.Y)}
}
