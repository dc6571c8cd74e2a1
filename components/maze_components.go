package components

// VisitState tracks a maze node during carving
type VisitState int

const (
	// VisitAbsent means no carver has reached the node yet
	VisitAbsent VisitState = iota
	// VisitFrontier means an edge into the node is queued
	VisitFrontier
	// VisitVisited means the node is part of a carved tree
	VisitVisited
)

// String returns a printable name for the state
func (s VisitState) String() string {
	switch s {
	case VisitFrontier:
		return "frontier"
	case VisitVisited:
		return "visited"
	default:
		return "absent"
	}
}

// Edge joins a maze node to the grid-adjacent node at (DX, DY) coarse cells away
type Edge struct {
	DX, DY int
	Weight float64
	Open   bool
}

// MazeNode is one coarse vertex of the maze graph. Node (cx, cy) sits on
// fine cell (2*cx, 2*cy).
type MazeNode struct {
	X, Y  int
	State VisitState
	Edges []Edge
}

// NewMazeNode creates an unvisited node at coarse (cx, cy)
func NewMazeNode(cx, cy int) *MazeNode {
	return &MazeNode{X: cx, Y: cy, State: VisitAbsent}
}

// EdgeTo returns the edge towards direction (dx, dy), or nil
func (n *MazeNode) EdgeTo(dx, dy int) *Edge {
	for i := range n.Edges {
		if n.Edges[i].DX == dx && n.Edges[i].DY == dy {
			return &n.Edges[i]
		}
	}
	return nil
}

// OpenEdges counts edges already carved into passages
func (n *MazeNode) OpenEdges() int {
	count := 0
	for _, e := range n.Edges {
		if e.Open {
			count++
		}
	}
	return count
}

// CoarsePoint addresses a maze node on the coarse grid
type CoarsePoint struct {
	X, Y int
}
