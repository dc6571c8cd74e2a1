package generation

import (
	"github.com/pkg/errors"

	"cave-dungeons/components"
	"cave-dungeons/pqueue"
)

// queuedEdge is a candidate passage waiting in the carver's queue
type queuedEdge struct {
	from *components.MazeNode
	edge *components.Edge
}

func lighterEdge(a, b queuedEdge) bool {
	return a.edge.Weight < b.edge.Weight
}

// MazeCarver turns a maze graph into passages on the fine grid using
// randomized Prim's algorithm, one spanning tree per connected component
type MazeCarver struct {
	graph *MazeGraph
	grid  *components.Grid
}

// NewMazeCarver creates a carver over the given graph and grid
func NewMazeCarver(graph *MazeGraph, grid *components.Grid) *MazeCarver {
	return &MazeCarver{graph: graph, grid: grid}
}

// GeneratePerfectMaze roots a Prim run at every node not yet visited, in
// raster order. Separate components are never joined.
func (c *MazeCarver) GeneratePerfectMaze() error {
	for cy := 0; cy < c.graph.Height; cy++ {
		for cx := 0; cx < c.graph.Width; cx++ {
			n := c.graph.Nodes[cy][cx]
			if n == nil || n.State == components.VisitVisited {
				continue
			}
			if err := c.DoPrim(n); err != nil {
				return errors.Wrapf(err, "carving maze from node (%d,%d)", cx, cy)
			}
		}
	}
	return nil
}

// DoPrim grows a minimum spanning tree from root. Edges whose destination
// was visited after they were queued are dropped when popped.
func (c *MazeCarver) DoPrim(root *components.MazeNode) error {
	root.State = components.VisitVisited
	queue := pqueue.New(c.outgoing(root), lighterEdge)

	for queue.Len() > 0 {
		next, err := queue.Pop()
		if err != nil {
			return errors.Wrap(err, "prim frontier")
		}
		dest := c.graph.Node(next.from.X+next.edge.DX, next.from.Y+next.edge.DY)
		if dest == nil {
			return errors.Errorf("edge from (%d,%d) points at missing node", next.from.X, next.from.Y)
		}
		if dest.State == components.VisitVisited {
			continue
		}

		dest.State = components.VisitVisited
		c.openPassage(next.from, next.edge, dest)
		for _, q := range c.outgoing(dest) {
			queue.Push(q)
		}
	}
	return nil
}

// outgoing lists n's edges into nodes not yet visited and marks those
// nodes as frontier
func (c *MazeCarver) outgoing(n *components.MazeNode) []queuedEdge {
	var out []queuedEdge
	for i := range n.Edges {
		e := &n.Edges[i]
		dest := c.graph.Node(n.X+e.DX, n.Y+e.DY)
		if dest == nil || dest.State == components.VisitVisited {
			continue
		}
		dest.State = components.VisitFrontier
		out = append(out, queuedEdge{from: n, edge: e})
	}
	return out
}

// openPassage flags the edge and its mirror open and clears the wall cell
// between the two nodes
func (c *MazeCarver) openPassage(from *components.MazeNode, e *components.Edge, dest *components.MazeNode) {
	e.Open = true
	if back := dest.EdgeTo(-e.DX, -e.DY); back != nil {
		back.Open = true
	}
	c.grid.Clear(2*from.X+e.DX, 2*from.Y+e.DY)
}
