package generation

import "github.com/zyedidia/generic/mapset"

// regionCounter hands out region ids for one generation session
type regionCounter struct {
	current int
}

func newRegionCounter() *regionCounter {
	return &regionCounter{current: NoRegion}
}

// start opens a new region and returns its id
func (c *regionCounter) start() int {
	c.current++
	return c.current
}

// Count returns how many regions have been issued
func (c *regionCounter) Count() int {
	return c.current + 1
}

// mergeTable tracks which representative every region id has been merged into.
// find compresses paths; merge always keeps the destination as representative.
type mergeTable struct {
	parent    []int
	remaining int
}

func newMergeTable(regions int) *mergeTable {
	m := &mergeTable{
		parent:    make([]int, regions),
		remaining: regions,
	}
	for i := range m.parent {
		m.parent[i] = i
	}
	return m
}

// find returns the current representative of region
func (m *mergeTable) find(region int) int {
	root := region
	for m.parent[root] != root {
		root = m.parent[root]
	}
	for m.parent[region] != root {
		next := m.parent[region]
		m.parent[region] = root
		region = next
	}
	return root
}

// merge repoints every source representative to dest.
// Returns how many representatives disappeared.
func (m *mergeTable) merge(dest int, sources ...int) int {
	dest = m.find(dest)
	merged := 0
	for _, src := range sources {
		src = m.find(src)
		if src == dest {
			continue
		}
		m.parent[src] = dest
		merged++
	}
	m.remaining -= merged
	return merged
}

// resolve maps raw region ids to their representatives, keeping first-seen order
func (m *mergeTable) resolve(regions []int) []int {
	seen := mapset.New[int]()
	out := make([]int, 0, len(regions))
	for _, r := range regions {
		rep := m.find(r)
		if seen.Has(rep) {
			continue
		}
		seen.Put(rep)
		out = append(out, rep)
	}
	return out
}

// joined reports whether every region in regions shares one representative
func (m *mergeTable) joined(regions []int) bool {
	if len(regions) == 0 {
		return true
	}
	rep := m.find(regions[0])
	for _, r := range regions[1:] {
		if m.find(r) != rep {
			return false
		}
	}
	return true
}

// count returns how many distinct representatives remain
func (m *mergeTable) count() int {
	return m.remaining
}
