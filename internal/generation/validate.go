package generation

import "fmt"

func (g *Generator) validate() error {
	return validateLayout(g.stage, g.rooms)
}

// validateLayout checks the invariants every finished dungeon holds:
// rooms fit, sit on the lattice and never overlap; the open cells form a
// single connected area; no interior cell is a dead end.
func validateLayout(s *Stage, rooms []Room) error {
	for i, room := range rooms {
		b := room.Bounds()
		if !s.Interior(Point{b.MinX, b.MinY}) || !s.Interior(Point{b.MaxX, b.MaxY}) {
			return fmt.Errorf("room %d at (%d,%d) leaves the stage: %w", i, room.X, room.Y, ErrInvalidLayout)
		}
		if !(Point{room.X, room.Y}).IsLattice() || room.Width%2 == 0 || room.Height%2 == 0 {
			return fmt.Errorf("room %d at (%d,%d) is off the lattice: %w", i, room.X, room.Y, ErrInvalidLayout)
		}
		for j := i + 1; j < len(rooms); j++ {
			if room.Overlaps(rooms[j]) {
				return fmt.Errorf("rooms %d and %d overlap: %w", i, j, ErrInvalidLayout)
			}
		}
	}

	var start Point
	open := 0
	s.Each(func(p Point, t TileType, region int) {
		if !t.Open() {
			return
		}
		if open == 0 {
			start = p
		}
		open++
	})
	if open > 0 {
		if reached := len(s.FloodFill(start)); reached != open {
			return fmt.Errorf("only %d of %d open cells reachable: %w", reached, open, ErrInvalidLayout)
		}
	}

	if ends := deadEnds(s); len(ends) > 0 {
		return fmt.Errorf("dead end at (%d,%d): %w", ends[0].X, ends[0].Y, ErrInvalidLayout)
	}

	return nil
}
