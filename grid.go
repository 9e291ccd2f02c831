package srp

import (
	"fmt"
	"math/rand"
)

type GridLayout string

const (
	// CellLayout places one node per cell: rows*cols nodes.
	CellLayout GridLayout = "cell"
	// LatticeLayout places one node per lattice point: (rows+1)*(cols+1) nodes.
	LatticeLayout GridLayout = "lattice"

	DefaultGridDemand = 10
)

type GridConfig struct {
	Rows         int
	Cols         int
	Vehicles     int
	CustomerProb float64
	// Demand per customer, DefaultGridDemand when zero.
	Demand int
	// Capacity per vehicle, Demand times the customer count when zero.
	Capacity int
	Layout   GridLayout
}

// GridInstance returns an instance of a rows x cols grid city with unit edges.
// Every node except the depot becomes a customer with probability CustomerProb.
func GridInstance(rng *rand.Rand, cfg GridConfig) (*Instance, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, cfg.Rows, cfg.Cols)
	}
	if cfg.Vehicles <= 0 {
		cfg.Vehicles = 1
	}
	if cfg.Demand == 0 {
		cfg.Demand = DefaultGridDemand
	}

	var graph *Graph
	switch cfg.Layout {
	case "", CellLayout:
		graph = CellGrid(cfg.Rows, cfg.Cols)
	case LatticeLayout:
		graph = LatticeGrid(cfg.Rows, cfg.Cols)
	default:
		return nil, fmt.Errorf("unknown grid layout %q", cfg.Layout)
	}

	depot := 1
	var packages []Package
	for node := 1; node <= graph.Order(); node++ {
		if !bernoulli(rng, cfg.CustomerProb) || node == depot {
			continue
		}
		packages = append(packages, Package{Key: NodeKey(node), Demand: cfg.Demand})
	}
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = len(packages) * cfg.Demand
	}

	return &Instance{
		Name:     fmt.Sprintf("grid_%d_%d", cfg.Rows, cfg.Cols),
		Vehicles: cfg.Vehicles,
		Depot:    depot,
		Capacity: capacity,
		Graph:    graph,
		Packages: packages,
	}, nil
}

// CellGrid connects every cell of a rows x cols grid to its in-range 4-neighbors.
func CellGrid(rows, cols int) *Graph {
	graph := NewGraph()
	graph.AddNode(rows * cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			node := NodeID(i, j, cols)
			if j != cols-1 {
				graph.SetArc(node, node+1, 1)
			}
			if j != 0 {
				graph.SetArc(node, node-1, 1)
			}
			if i != rows-1 {
				graph.SetArc(node, node+cols, 1)
			}
			if i != 0 {
				graph.SetArc(node, node-cols, 1)
			}
		}
	}
	return graph
}

// LatticeGrid connects the (rows+1) x (cols+1) corner points of a rows x cols
// grid along every cell side, in both directions.
func LatticeGrid(rows, cols int) *Graph {
	graph := NewGraph()
	for _, e := range LatticeEdges(rows, cols) {
		graph.SetArc(e.From, e.To, 1)
		graph.SetArc(e.To, e.From, 1)
	}
	return graph
}

// LatticeEdges lists the edges of a rows x cols cell lattice ordered by id.
func LatticeEdges(rows, cols int) []Key {
	edges := make([]Key, 0, LatticeEdgeCount(rows, cols))
	width := cols + 1
	for i := 0; i <= rows; i++ {
		for j := 0; j < cols; j++ {
			edges = append(edges, EdgeKey(HorizontalEdgeID(i, j, rows, cols), NodeID(i, j, width), NodeID(i, j+1, width)))
		}
	}
	for i := 0; i < rows; i++ {
		for j := 0; j <= cols; j++ {
			edges = append(edges, EdgeKey(VerticalEdgeID(i, j, rows, cols), NodeID(i, j, width), NodeID(i+1, j, width)))
		}
	}
	return edges
}

func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
