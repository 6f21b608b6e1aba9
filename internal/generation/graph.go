package generation

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// NodeType identifies what kind of region a node stands for
type NodeType int

const (
	NodeRoom     NodeType = iota // A placed room
	NodeCorridor                 // A maze run that survived pruning
)

func (t NodeType) String() string {
	if t == NodeRoom {
		return "room"
	}
	return "corridor"
}

// Node is one carved region of the finished dungeon
type Node struct {
	ID       int      `json:"id"`
	Type     NodeType `json:"-"`
	Kind     string   `json:"kind"`
	Position Point    `json:"-"` // First cell of the region in row-major order
	Bounds   Bounds   `json:"-"` // Bounding box of the region's floor cells
	Cells    int      `json:"cells"`
}

// Edge is a door joining two regions
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"` // Manhattan distance between the node positions
	Door   Point   `json:"-"`
}

// Graph indexes a dungeon's regions and the doors between them
type Graph struct {
	Nodes map[int]*Node
	Edges []*Edge

	// Adjacency list for quick lookups
	Adjacent map[int][]int
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		Nodes:    make(map[int]*Node),
		Edges:    make([]*Edge, 0),
		Adjacent: make(map[int][]int),
	}
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(n *Node) {
	g.Nodes[n.ID] = n
	if g.Adjacent[n.ID] == nil {
		g.Adjacent[n.ID] = make([]int, 0)
	}
}

// AddEdge records a door between two nodes
func (g *Graph) AddEdge(fromID, toID int, door Point) error {
	from, ok := g.Nodes[fromID]
	if !ok {
		return fmt.Errorf("node %d not found", fromID)
	}
	to, ok := g.Nodes[toID]
	if !ok {
		return fmt.Errorf("node %d not found", toID)
	}

	edge := &Edge{
		From:   fromID,
		To:     toID,
		Weight: float64(manhattanDist(from.Position, to.Position)),
		Door:   door,
	}

	g.Edges = append(g.Edges, edge)
	g.Adjacent[fromID] = append(g.Adjacent[fromID], toID)
	g.Adjacent[toID] = append(g.Adjacent[toID], fromID)

	return nil
}

// IDs returns the node ids in ascending order
func (g *Graph) IDs() []int {
	ids := make([]int, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// reach runs a BFS from startID over door edges
func (g *Graph) reach(startID int) mapset.Set[int] {
	visited := mapset.New[int]()
	if _, ok := g.Nodes[startID]; !ok {
		return visited
	}

	queue := []int{startID}
	visited.Put(startID)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighborID := range g.Adjacent[current] {
			if !visited.Has(neighborID) {
				visited.Put(neighborID)
				queue = append(queue, neighborID)
			}
		}
	}

	return visited
}

// IsConnected checks if all nodes are reachable from a starting node
func (g *Graph) IsConnected(startID int) bool {
	if len(g.Nodes) == 0 {
		return true
	}
	return g.reach(startID).Size() == len(g.Nodes)
}

// FindUnreachable returns the ids of nodes not reachable from the start node, ascending
func (g *Graph) FindUnreachable(startID int) []int {
	visited := g.reach(startID)

	unreachable := make([]int, 0)
	for _, id := range g.IDs() {
		if !visited.Has(id) {
			unreachable = append(unreachable, id)
		}
	}
	return unreachable
}

// Rooms returns all room nodes, ascending by id
func (g *Graph) Rooms() []*Node {
	rooms := make([]*Node, 0)
	for _, id := range g.IDs() {
		if n := g.Nodes[id]; n.Type == NodeRoom {
			rooms = append(rooms, n)
		}
	}
	return rooms
}

// MST computes a minimum spanning tree using Kruskal's algorithm.
// Returns the doors that keep every region reachable with the least total length.
func (g *Graph) MST() []*Edge {
	parent := make(map[int]int)
	rank := make(map[int]int)

	var find func(x int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	union := func(x, y int) bool {
		rootX, rootY := find(x), find(y)
		if rootX == rootY {
			return false
		}
		if rank[rootX] < rank[rootY] {
			rootX, rootY = rootY, rootX
		}
		parent[rootY] = rootX
		if rank[rootX] == rank[rootY] {
			rank[rootX]++
		}
		return true
	}

	for id := range g.Nodes {
		parent[id] = id
	}

	sortedEdges := make([]*Edge, len(g.Edges))
	copy(sortedEdges, g.Edges)
	sort.SliceStable(sortedEdges, func(i, j int) bool {
		return sortedEdges[i].Weight < sortedEdges[j].Weight
	})

	mst := make([]*Edge, 0)
	for _, edge := range sortedEdges {
		if union(edge.From, edge.To) {
			mst = append(mst, edge)
		}
	}

	return mst
}

// RegionGraph builds the graph of surviving regions joined by doors.
// Adjacent doors are treated as one junction.
func (d *Dungeon) RegionGraph() *Graph {
	s := d.stage
	g := NewGraph()

	rooms := mapset.New[int]()
	for _, r := range d.roomRegions {
		rooms.Put(r)
	}

	// 1. One node per region that still has floor cells
	s.Each(func(p Point, t TileType, region int) {
		if t != Empty {
			return
		}
		n, ok := g.Nodes[region]
		if !ok {
			n = &Node{
				ID:       region,
				Type:     NodeCorridor,
				Position: p,
				Bounds:   Bounds{p.X, p.Y, p.X, p.Y},
			}
			if rooms.Has(region) {
				n.Type = NodeRoom
			}
			n.Kind = n.Type.String()
			g.AddNode(n)
		}
		n.Cells++
		n.Bounds = n.Bounds.Expand(p)
	})

	// 2. One edge per pair of regions a junction of doors touches
	seen := mapset.New[Point]()
	s.Each(func(p Point, t TileType, region int) {
		if t != Door || seen.Has(p) {
			return
		}
		touched := doorJunction(s, p, seen)
		for i := 0; i < len(touched); i++ {
			for j := i + 1; j < len(touched); j++ {
				// both ids were registered in step 1
				_ = g.AddEdge(touched[i], touched[j], p)
			}
		}
	})

	return g
}

// doorJunction walks the run of doors containing start and returns the
// floor regions it touches, in first-seen order
func doorJunction(s *Stage, start Point, seen mapset.Set[Point]) []int {
	regions := mapset.New[int]()
	touched := make([]int, 0, 2)

	stack := []Point{start}
	seen.Put(start)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, adj := range p.Adjacent() {
			if !s.InBounds(adj) {
				continue
			}
			switch s.Tile(adj) {
			case Door:
				if !seen.Has(adj) {
					seen.Put(adj)
					stack = append(stack, adj)
				}
			case Empty:
				if r := s.Region(adj); !regions.Has(r) {
					regions.Put(r)
					touched = append(touched, r)
				}
			}
		}
	}
	return touched
}

func manhattanDist(a, b Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
