package generation

import "container/heap"

// pathNode is an entry in the A* open set
type pathNode struct {
	point  Point
	fScore int // cost so far + heuristic
	index  int
}

// pathQueue implements heap.Interface ordered by fScore
type pathQueue []*pathNode

func (pq pathQueue) Len() int           { return len(pq) }
func (pq pathQueue) Less(i, j int) bool { return pq[i].fScore < pq[j].fScore }
func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}
func (pq *pathQueue) Push(x interface{}) {
	n := x.(*pathNode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}
func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*pq = old[:len(old)-1]
	return n
}

// FindPath returns the shortest walk between two open cells, both ends included.
// Returns nil if either end is not open or no walk exists.
func (s *Stage) FindPath(from, to Point) []Point {
	if !s.InBounds(from) || !s.InBounds(to) || !s.Tile(from).Open() || !s.Tile(to).Open() {
		return nil
	}

	openSet := &pathQueue{}
	heap.Init(openSet)

	gScore := map[Point]int{from: 0}
	cameFrom := make(map[Point]Point)
	closed := make(map[Point]bool)

	heap.Push(openSet, &pathNode{point: from, fScore: manhattanDist(from, to)})

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode).point
		if closed[current] {
			continue
		}
		closed[current] = true

		if current == to {
			path := []Point{to}
			for curr := to; curr != from; {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, neighbor := range current.Adjacent() {
			if !s.InBounds(neighbor) || !s.Tile(neighbor).Open() || closed[neighbor] {
				continue
			}

			tentativeG := gScore[current] + 1
			if oldG, exists := gScore[neighbor]; !exists || tentativeG < oldG {
				cameFrom[neighbor] = current
				gScore[neighbor] = tentativeG
				heap.Push(openSet, &pathNode{
					point:  neighbor,
					fScore: tentativeG + manhattanDist(neighbor, to),
				})
			}
		}
	}

	return nil
}

// FindPath returns the shortest walk between two open cells of the dungeon
func (d *Dungeon) FindPath(from, to Point) []Point {
	return d.stage.FindPath(from, to)
}
