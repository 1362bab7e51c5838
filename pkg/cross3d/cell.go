package cross3d

import "container/list"

// noChild is the sentinel value for an absent child slot.
const noChild = -1

// Link is a directed adjacency edge from the owning cell to a neighbor.
// Reverse points at the list element holding the paired back-link stored in
// the neighbor's AdjacentCells[opposite(side)] list. The pairing invariant
// is: L.Reverse.Value.(*Link).Reverse is the list element holding L itself.
//
// Go's container/list guarantees that an *Element remains valid — is never
// moved or reallocated — across insertions and removals of other elements
// in the same or a different list. That is exactly the iterator-stability
// property a Link pairing needs, so a *list.Element plays the role an
// std::list<Link>::iterator would in an implementation that used one.
type Link struct {
	ToIndex int
	Reverse *list.Element
}

// Cell is one node of the cell arena: a prism, its position in the tree,
// and the bookkeeping the density policy and adjacency manager need.
type Cell struct {
	Prism Prism
	Index int
	Depth int

	// Children holds up to 4 child indices. Slots 0/1 are the xy split in
	// the lower z half; slots 2/3 are the same xy pair in the upper z half
	// (unused, holding noChild, for half-cube prisms). A negative value in
	// Children[0] means this cell is a leaf.
	Children [4]int

	IsSubdivided bool

	Volume                   float64
	FilledVolumeAllowance    float64
	MinimallyRequiredDensity float64

	// AdjacentCells holds one doubly linked list of Link per Direction.
	AdjacentCells [numberOfSides]*list.List
}

// newCell allocates a Cell with empty per-side adjacency lists and all
// child slots marked absent.
func newCell(prism Prism, index, depth int) *Cell {
	c := &Cell{
		Prism: prism,
		Index: index,
		Depth: depth,
	}
	for i := range c.Children {
		c.Children[i] = noChild
	}
	for i := range c.AdjacentCells {
		c.AdjacentCells[i] = list.New()
	}
	return c
}

// IsLeaf reports whether the cell has no children.
func (c *Cell) IsLeaf() bool {
	return c.Children[0] < 0
}

// ChildCount returns 2 or 4, matching the prism's classification. Only
// meaningful once the cell has been populated by the tree builder.
func (c *Cell) ChildCount() int {
	if c.Children[2] < 0 {
		return 2
	}
	return 4
}
