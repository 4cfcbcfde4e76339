package geo

import (
	"container/heap"
	"math"

	"github.com/udisondev/ghostchase/internal/model"
	"github.com/udisondev/ghostchase/internal/vecmath"
)

// FindPath finds a route between two world positions using A*.
//
// Complete: the goal cell was reached; the last waypoint is the exact goal.
// Partial: the goal is blocked or unreachable (or the iteration cap was hit);
// the route ends at the reachable cell closest to the goal.
// Invalid: start or goal is outside the grid, or start is a wall.
func (g *Grid) FindPath(from, to vecmath.Vec3) model.Path {
	start := g.CellOf(from)
	goal := g.CellOf(to)

	if !g.InBounds(start) || !g.InBounds(goal) || g.Blocked(start) {
		return model.Path{Status: model.PathInvalid}
	}

	// Same cell, already there
	if start == goal {
		return model.Path{Status: model.PathComplete, Points: []vecmath.Vec3{to.Horizontal()}}
	}

	end, reached := g.astar(start, goal)

	cells := make([]Cell, 0, 32)
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}

	// Reverse (A* builds path backward)
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	cells = g.smoothPath(cells)

	// Drop the start cell; the agent is already there
	points := make([]vecmath.Vec3, 0, len(cells))
	for _, c := range cells[1:] {
		points = append(points, g.CellCenter(c))
	}

	if !reached {
		return model.Path{Status: model.PathPartial, Points: points}
	}

	if len(points) > 0 {
		points[len(points)-1] = to.Horizontal()
	}
	return model.Path{Status: model.PathComplete, Points: points}
}

// smoothPath removes unnecessary intermediate cells from an A* path.
// If cell N can be reached directly from N-2 (no wall), cell N-1 is removed.
// Runs up to MaxSmoothPasses passes to progressively simplify the path.
func (g *Grid) smoothPath(path []Cell) []Cell {
	for range MaxSmoothPasses {
		if len(path) <= 2 {
			return path
		}

		changed := false
		smoothed := make([]Cell, 0, len(path))
		smoothed = append(smoothed, path[0])

		for i := 1; i < len(path)-1; i++ {
			prev := smoothed[len(smoothed)-1]
			next := path[i+1]

			if g.canMoveCells(prev, next) {
				changed = true
				continue
			}
			smoothed = append(smoothed, path[i])
		}
		smoothed = append(smoothed, path[len(path)-1])
		path = smoothed

		if !changed {
			break
		}
	}
	return path
}

// gridNode represents a node in the A* search graph.
type gridNode struct {
	cell   Cell
	parent *gridNode
	gCost  float64 // Actual cost from start
	hCost  float64 // Heuristic cost to target
	fCost  float64 // gCost + hCost
	index  int     // heap index
}

// astar runs A* from start to goal. When the goal is not reached it returns
// the expanded node closest to the goal and false.
func (g *Grid) astar(start, goal Cell) (*gridNode, bool) {
	startNode := &gridNode{cell: start}
	startNode.hCost = heuristic(start, goal)
	startNode.fCost = startNode.hCost

	openList := &nodeHeap{}
	heap.Init(openList)
	heap.Push(openList, startNode)

	closed := make(map[Cell]struct{}, 256)
	best := startNode

	for range MaxPathfindIterations {
		if openList.Len() == 0 {
			return best, false
		}

		current := heap.Pop(openList).(*gridNode)

		if current.cell == goal {
			return current, true
		}

		if _, exists := closed[current.cell]; exists {
			continue
		}
		closed[current.cell] = struct{}{}

		if current.hCost < best.hCost {
			best = current
		}

		g.expandNeighbors(current, goal, openList, closed)
	}

	return best, false // Max iterations exceeded
}

// expandNeighbors adds valid adjacent cells to the open list.
func (g *Grid) expandNeighbors(current *gridNode, goal Cell, openList *nodeHeap, closed map[Cell]struct{}) {
	// Cardinal directions: N, E, S, W
	cardinals := [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	passable := [4]bool{}

	for i, d := range cardinals {
		next := Cell{X: current.cell.X + d.X, Z: current.cell.Z + d.Z}
		if g.Blocked(next) {
			continue
		}
		passable[i] = true
		g.pushNeighbor(current, next, WeightCardinal, goal, openList, closed)
	}

	// Diagonal directions (anti-corner-cut: both adjacent cardinals must be passable)
	diagonals := [4]struct {
		d          Cell
		adj1, adj2 int
	}{
		{Cell{1, -1}, 0, 1},  // NE: need N(0) and E(1)
		{Cell{1, 1}, 1, 2},   // SE: need E(1) and S(2)
		{Cell{-1, 1}, 2, 3},  // SW: need S(2) and W(3)
		{Cell{-1, -1}, 3, 0}, // NW: need W(3) and N(0)
	}

	for _, diag := range diagonals {
		if !passable[diag.adj1] || !passable[diag.adj2] {
			continue
		}
		next := Cell{X: current.cell.X + diag.d.X, Z: current.cell.Z + diag.d.Z}
		if g.Blocked(next) {
			continue
		}
		g.pushNeighbor(current, next, WeightDiagonal, goal, openList, closed)
	}
}

func (g *Grid) pushNeighbor(current *gridNode, next Cell, weight float64, goal Cell, openList *nodeHeap, closed map[Cell]struct{}) {
	if _, exists := closed[next]; exists {
		return
	}
	node := &gridNode{
		cell:   next,
		parent: current,
		gCost:  current.gCost + weight,
		hCost:  heuristic(next, goal),
	}
	node.fCost = node.gCost + node.hCost
	heap.Push(openList, node)
}

// heuristic is the euclidean distance in cells.
func heuristic(a, b Cell) float64 {
	dx := float64(a.X - b.X)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// nodeHeap implements container/heap for A* open list (min-heap by fCost).
type nodeHeap []*gridNode

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x any)        { n := x.(*gridNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}
