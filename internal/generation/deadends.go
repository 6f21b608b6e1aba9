package generation

// removeDeadEnds keeps filling in corridor cells with a single exit until
// none are left. Returns how many cells were filled.
func (g *Generator) removeDeadEnds() int {
	return pruneDeadEnds(g.stage)
}

// pruneDeadEnds runs full passes over the interior until a pass changes nothing.
// A cell with no exits at all is an isolated room or corridor and is kept.
func pruneDeadEnds(s *Stage) int {
	filled := 0
	for done := false; !done; {
		done = true
		for y := 1; y < s.Height-1; y++ {
			for x := 1; x < s.Width-1; x++ {
				pos := Point{x, y}
				if !s.Tile(pos).Open() {
					continue
				}
				if s.OpenNeighbors(pos) != 1 {
					continue
				}
				s.Fill(pos)
				filled++
				done = false
			}
		}
	}
	return filled
}

// deadEnds returns every interior open cell with exactly one exit
func deadEnds(s *Stage) []Point {
	var ends []Point
	for y := 1; y < s.Height-1; y++ {
		for x := 1; x < s.Width-1; x++ {
			pos := Point{x, y}
			if s.Tile(pos).Open() && s.OpenNeighbors(pos) == 1 {
				ends = append(ends, pos)
			}
		}
	}
	return ends
}
