package generation

import (
	"github.com/zyedidia/generic/mapset"

	"cave-dungeons/components"
)

// Cardinal directions between coarse cells, in N, E, S, W order
var cardinalDirections = []components.CoarsePoint{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// MazeGraph is the coarse graph laid over a cave grid. Coarse cell (cx, cy)
// covers fine cell (2*cx, 2*cy); absent nodes are nil.
type MazeGraph struct {
	Width  int
	Height int
	Nodes  [][]*components.MazeNode
}

// NewMazeGraph creates an empty graph covering a fine grid of the given size
func NewMazeGraph(gridWidth, gridHeight int) *MazeGraph {
	w := (gridWidth + 1) / 2
	h := (gridHeight + 1) / 2
	g := &MazeGraph{
		Width:  w,
		Height: h,
		Nodes:  make([][]*components.MazeNode, h),
	}
	for cy := range g.Nodes {
		g.Nodes[cy] = make([]*components.MazeNode, w)
	}
	return g
}

// Node returns the node at coarse (cx, cy), or nil
func (g *MazeGraph) Node(cx, cy int) *components.MazeNode {
	if cx < 0 || cx >= g.Width || cy < 0 || cy >= g.Height {
		return nil
	}
	return g.Nodes[cy][cx]
}

// AddNode places a node at coarse (cx, cy) if none exists and returns it
func (g *MazeGraph) AddNode(cx, cy int) *components.MazeNode {
	if cx < 0 || cx >= g.Width || cy < 0 || cy >= g.Height {
		return nil
	}
	if g.Nodes[cy][cx] == nil {
		g.Nodes[cy][cx] = components.NewMazeNode(cx, cy)
	}
	return g.Nodes[cy][cx]
}

// LinkNeighbours gives every node one closed edge per cardinal direction
// that holds another node. Each direction gets its own random weight, so a
// pair of nodes carries two independent edge records.
func (g *MazeGraph) LinkNeighbours(rng RandomSource) {
	g.EachNode(func(n *components.MazeNode) {
		for _, d := range cardinalDirections {
			if g.Node(n.X+d.X, n.Y+d.Y) == nil {
				continue
			}
			n.Edges = append(n.Edges, components.Edge{
				DX:     d.X,
				DY:     d.Y,
				Weight: rng.Float64(),
			})
		}
	})
}

// EachNode calls fn for every present node in raster order
func (g *MazeGraph) EachNode(fn func(n *components.MazeNode)) {
	for cy := 0; cy < g.Height; cy++ {
		for cx := 0; cx < g.Width; cx++ {
			if n := g.Nodes[cy][cx]; n != nil {
				fn(n)
			}
		}
	}
}

// NodeCount returns the number of present nodes
func (g *MazeGraph) NodeCount() int {
	count := 0
	g.EachNode(func(*components.MazeNode) { count++ })
	return count
}

// OpenEdgeCount returns the number of carved passages. Each passage is
// stored on both of its nodes and counted once.
func (g *MazeGraph) OpenEdgeCount() int {
	count := 0
	g.EachNode(func(n *components.MazeNode) { count += n.OpenEdges() })
	return count / 2
}

// Components returns the connected components of the graph, following all
// edges whether open or not
func (g *MazeGraph) Components() []mapset.Set[components.CoarsePoint] {
	return g.components(false)
}

// OpenComponents returns the connected components reachable over open edges only
func (g *MazeGraph) OpenComponents() []mapset.Set[components.CoarsePoint] {
	return g.components(true)
}

func (g *MazeGraph) components(openOnly bool) []mapset.Set[components.CoarsePoint] {
	seen := mapset.New[components.CoarsePoint]()
	var result []mapset.Set[components.CoarsePoint]

	g.EachNode(func(root *components.MazeNode) {
		start := components.CoarsePoint{X: root.X, Y: root.Y}
		if seen.Has(start) {
			return
		}
		comp := mapset.New[components.CoarsePoint]()
		stack := []components.CoarsePoint{start}
		seen.Put(start)
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp.Put(p)
			for _, e := range g.Nodes[p.Y][p.X].Edges {
				if openOnly && !e.Open {
					continue
				}
				q := components.CoarsePoint{X: p.X + e.DX, Y: p.Y + e.DY}
				if g.Node(q.X, q.Y) == nil || seen.Has(q) {
					continue
				}
				seen.Put(q)
				stack = append(stack, q)
			}
		}
		result = append(result, comp)
	})
	return result
}

// InsertNodes builds the maze graph for a cave. Every fine cell with both
// coordinates even that is ancient becomes a node and is forced open.
func InsertNodes(grid *components.Grid, ancient AncientPredicate, rng RandomSource) *MazeGraph {
	g := NewMazeGraph(grid.Width, grid.Height)
	for y := 0; y < grid.Height; y += 2 {
		for x := 0; x < grid.Width; x += 2 {
			if !ancient(x, y) {
				continue
			}
			g.AddNode(x/2, y/2)
			grid.Clear(x, y)
		}
	}
	g.LinkNeighbours(rng)
	return g
}
