package srp

import "sort"

type Arc struct {
	To     int
	Weight float64
}

// Graph is a sparse weighted digraph. Arcs of a node are kept sorted by target.
type Graph struct {
	adj   map[int][]Arc
	order int
	arcs  int
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[int][]Arc)}
}

// GraphFromMap builds a graph from a from -> to -> weight literal.
func GraphFromMap(m map[int]map[int]float64) *Graph {
	g := NewGraph()
	for from, row := range m {
		for to, w := range row {
			g.SetArc(from, to, w)
		}
	}
	return g
}

// SetArc adds the arc from -> to or replaces its weight.
func (g *Graph) SetArc(from, to int, weight float64) {
	arcs := g.adj[from]
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= to })
	if i < len(arcs) && arcs[i].To == to {
		arcs[i].Weight = weight
		return
	}
	arcs = append(arcs, Arc{})
	copy(arcs[i+1:], arcs[i:])
	arcs[i] = Arc{To: to, Weight: weight}
	g.adj[from] = arcs
	g.arcs++
	if from > g.order {
		g.order = from
	}
	if to > g.order {
		g.order = to
	}
}

// AddNode makes node part of the dense range 1..Order without adding arcs.
func (g *Graph) AddNode(node int) {
	if node > g.order {
		g.order = node
	}
}

func (g *Graph) Weight(from, to int) (float64, bool) {
	arcs := g.adj[from]
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].To >= to })
	if i < len(arcs) && arcs[i].To == to {
		return arcs[i].Weight, true
	}
	return 0, false
}

// Arcs returns the outgoing arcs of a node. The slice must not be modified.
func (g *Graph) Arcs(from int) []Arc {
	return g.adj[from]
}

func (g *Graph) Degree(from int) int {
	return len(g.adj[from])
}

// Order is the largest node id seen, the dense dimension N of graph.txt.
func (g *Graph) Order() int {
	return g.order
}

// Len is the number of arcs.
func (g *Graph) Len() int {
	return g.arcs
}

func (g *Graph) HasNode(node int) bool {
	return node >= 1 && node <= g.order
}
